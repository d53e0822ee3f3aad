package advisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/alejandrodnm/etfadvisor/internal/domain"
	"github.com/alejandrodnm/etfadvisor/internal/ports"
)

// Config contiene la configuración del advisor.
type Config struct {
	Rules     domain.Rules
	Keywords  []string       // keywords de eventos de riesgo; nil = por defecto
	Themes    []domain.Theme // temas sectoriales; nil = por defecto
	TopThemes int
}

// DefaultConfig devuelve la configuración estándar.
func DefaultConfig() Config {
	return Config{
		Rules:     domain.DefaultRules(),
		Keywords:  domain.DefaultEventKeywords(),
		Themes:    domain.DefaultThemes(),
		TopThemes: domain.DefaultTopThemes,
	}
}

// Advisor obtiene las lecturas de mercado y aplica las reglas a cada par.
// No guarda estado entre llamadas.
type Advisor struct {
	cfg    Config
	market ports.MarketDataProvider
	news   domain.NewsFilter
	pairs  [domain.PairCount]domain.Pair
	now    func() time.Time
}

// New crea un Advisor con el proveedor de datos dado.
func New(cfg Config, market ports.MarketDataProvider) *Advisor {
	if cfg.Keywords == nil {
		cfg.Keywords = domain.DefaultEventKeywords()
	}
	if cfg.Themes == nil {
		cfg.Themes = domain.DefaultThemes()
	}
	if cfg.TopThemes <= 0 {
		cfg.TopThemes = domain.DefaultTopThemes
	}
	return &Advisor{
		cfg:    cfg,
		market: market,
		news:   domain.NewNewsFilter(cfg.Keywords),
		pairs:  domain.Pairs(),
		now:    time.Now,
	}
}

// snapshot agrupa los tres batches de lecturas de una evaluación.
type snapshot struct {
	index    domain.Readings
	premiums domain.Readings
	futures  domain.Readings
}

// Evaluate obtiene los tres batches en orden (índices, primas, futuros) y
// devuelve una decisión por par. Si cualquier batch falla, o falta el cambio
// de un índice, devuelve un error que envuelve domain.ErrDataUnavailable y
// ninguna decisión.
func (a *Advisor) Evaluate(ctx context.Context, headlines []string) (domain.Report, error) {
	start := a.now()
	runID := uuid.NewString()
	log := slog.With("run_id", runID)

	log.Info("evaluation starting", "headlines", len(headlines))

	snap, err := a.fetch(ctx)
	if err != nil {
		log.Error("market data unavailable", "err", err)
		return domain.Report{}, fmt.Errorf("advisor.Evaluate: %w", err)
	}

	var event *domain.EventMatch
	if m, ok := a.news.FirstMatch(headlines); ok {
		event = &m
		log.Warn("major event detected", "keyword", m.Keyword, "headline", m.Headline)
	}

	themes := domain.ScanThemes(a.cfg.Themes, headlines, a.cfg.TopThemes)
	report := domain.Report{
		RunID:       runID,
		GeneratedAt: start.UTC(),
		Events:      a.news.Matches(headlines),
		Themes:      domain.ThemesOrFallback(themes, headlines),
	}

	for i, pair := range a.pairs {
		in, err := inputsFor(pair, snap, event)
		if err != nil {
			log.Error("incomplete market data", "pair", pair.ID, "err", err)
			return domain.Report{}, fmt.Errorf("advisor.Evaluate: %w", err)
		}
		d := domain.Evaluate(a.cfg.Rules, in)
		report.Decisions[i] = d

		log.Info("pair evaluated",
			"pair", pair.ID,
			"outcome", d.Outcome,
			"reason", d.Reason,
			"index_pct", fmt.Sprintf("%.2f", d.IndexChangePct),
			"premium_pct", fmt.Sprintf("%.1f", d.ETFPremiumPct),
			"futures_pct", fmt.Sprintf("%.2f", d.FuturesChangePct),
		)
	}

	var changes []float64
	for _, d := range report.Decisions {
		changes = append(changes, d.IndexChangePct)
	}
	report.Trend = domain.TrendFrom(changes...)
	report.Domestic = domain.DomesticSuggestions(report.Trend)

	log.Info("evaluation complete",
		"execute", report.CountOutcome(domain.OutcomeExecute),
		"defer", report.CountOutcome(domain.OutcomeDefer),
		"abstain", report.CountOutcome(domain.OutcomeAbstain),
		"events", len(report.Events),
		"themes", len(report.Themes),
		"trend", report.Trend,
		"duration", a.now().Sub(start).Round(time.Millisecond),
	)
	return report, nil
}

// fetch obtiene los tres batches secuencialmente; el primero que falla aborta.
func (a *Advisor) fetch(ctx context.Context) (snapshot, error) {
	pairs := a.pairs[:]

	index, err := a.market.IndexChanges(ctx, domain.IndexSymbols(pairs))
	if err != nil {
		return snapshot{}, dataUnavailable("index changes", err)
	}
	premiums, err := a.market.ETFPremiums(ctx, pairs)
	if err != nil {
		return snapshot{}, dataUnavailable("etf premiums", err)
	}
	futures, err := a.market.FuturesChanges(ctx, domain.FuturesSymbols(pairs))
	if err != nil {
		return snapshot{}, dataUnavailable("futures changes", err)
	}
	return snapshot{index: index, premiums: premiums, futures: futures}, nil
}

// inputsFor arma las entradas de un par. El índice es obligatorio; la prima
// cae a 0 si falta y los futuros faltantes se marcan con HasFutures=false.
func inputsFor(pair domain.Pair, snap snapshot, event *domain.EventMatch) (domain.Inputs, error) {
	idx, ok := snap.index.Get(pair.IndexSymbol)
	if !ok {
		return domain.Inputs{}, fmt.Errorf("%w: no index reading for %s", domain.ErrDataUnavailable, pair.IndexSymbol)
	}
	fut, hasFut := snap.futures.Get(pair.FuturesSymbol)
	return domain.Inputs{
		Pair:             pair,
		IndexChangePct:   idx,
		ETFPremiumPct:    snap.premiums.GetOr(pair.ETFCode, 0),
		FuturesChangePct: fut,
		HasFutures:       hasFut,
		Event:            event,
	}, nil
}

// dataUnavailable garantiza que el error envuelva domain.ErrDataUnavailable,
// aunque el proveedor no lo haya hecho.
func dataUnavailable(what string, err error) error {
	if errors.Is(err, domain.ErrDataUnavailable) {
		return fmt.Errorf("fetch %s: %w", what, err)
	}
	return fmt.Errorf("fetch %s: %w: %w", what, domain.ErrDataUnavailable, err)
}
