package marketdata

import (
	"context"

	"github.com/alejandrodnm/etfadvisor/internal/domain"
)

// changeSource es el subconjunto del client de Yahoo que usa el Provider.
type changeSource interface {
	IndexChanges(ctx context.Context, symbols []string) (domain.Readings, error)
	FuturesChanges(ctx context.Context, symbols []string) (domain.Readings, error)
}

// premiumSource es el subconjunto del client de Sina que usa el Provider.
type premiumSource interface {
	ETFPremiums(ctx context.Context, pairs []domain.Pair) (domain.Readings, error)
}

// Provider implementa ports.MarketDataProvider combinando una fuente de
// cambios (índices, futuros) y una fuente de primas de ETF.
type Provider struct {
	changes  changeSource
	premiums premiumSource
}

// New crea un Provider con las fuentes dadas.
func New(changes changeSource, premiums premiumSource) *Provider {
	return &Provider{changes: changes, premiums: premiums}
}

// IndexChanges delega en la fuente de cambios.
func (p *Provider) IndexChanges(ctx context.Context, symbols []string) (domain.Readings, error) {
	return p.changes.IndexChanges(ctx, symbols)
}

// ETFPremiums delega en la fuente de primas.
func (p *Provider) ETFPremiums(ctx context.Context, pairs []domain.Pair) (domain.Readings, error) {
	return p.premiums.ETFPremiums(ctx, pairs)
}

// FuturesChanges delega en la fuente de cambios.
func (p *Provider) FuturesChanges(ctx context.Context, symbols []string) (domain.Readings, error) {
	return p.changes.FuturesChanges(ctx, symbols)
}
