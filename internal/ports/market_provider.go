package ports

import (
	"context"

	"github.com/alejandrodnm/etfadvisor/internal/domain"
)

// MarketDataProvider obtiene las tres lecturas de mercado que usa el evaluador.
// Cada método falla completo (domain.ErrDataUnavailable) si no puede obtener el batch.
type MarketDataProvider interface {
	// IndexChanges devuelve el cambio % de cada índice spot vs. su cierre anterior.
	IndexChanges(ctx context.Context, symbols []string) (domain.Readings, error)

	// ETFPremiums devuelve la magnitud de la prima de cada ETF, indexada por código.
	// Los ETFs sin precio de referencia válido se omiten del resultado.
	ETFPremiums(ctx context.Context, pairs []domain.Pair) (domain.Readings, error)

	// FuturesChanges devuelve el cambio % de cada futuro vs. su cierre anterior.
	FuturesChanges(ctx context.Context, symbols []string) (domain.Readings, error)
}
