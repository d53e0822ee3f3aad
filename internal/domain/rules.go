package domain

// Rules contiene los umbrales de entrada, en puntos porcentuales.
type Rules struct {
	// IndexDropLimit: cambio del índice igual o menor a esto → no entrar.
	IndexDropLimit float64
	// MaxPremium: prima del ETF igual o mayor a esto → no entrar.
	MaxPremium float64
	// MinFuturesDrop: los futuros deben caer al menos esto (≤) para seguir.
	MinFuturesDrop float64
}

// DefaultRules devuelve los umbrales estándar: -1% índice, 3% prima, -0.5% futuros.
func DefaultRules() Rules {
	return Rules{
		IndexDropLimit: -1.0,
		MaxPremium:     3.0,
		MinFuturesDrop: -0.5,
	}
}

// Inputs son las lecturas de un par en una evaluación.
type Inputs struct {
	Pair             Pair
	IndexChangePct   float64
	ETFPremiumPct    float64 // magnitud, 0 si no hubo lectura
	FuturesChangePct float64
	HasFutures       bool
	Event            *EventMatch // nil = sin eventos relevantes
}

// Evaluate aplica las reglas en orden de prioridad; la primera que dispara gana.
//
//  1. índice ≤ IndexDropLimit          → Abstain
//  2. prima ≥ MaxPremium               → Abstain
//  3. futuros > 0                      → Abstain
//     futuros ≤ MinFuturesDrop         → sigue a 4
//     resto (o sin futuros)            → Abstain
//  4. evento pendiente                 → Defer, si no → Execute
func Evaluate(rules Rules, in Inputs) Decision {
	d := Decision{
		Pair:             in.Pair,
		Outcome:          OutcomeAbstain,
		IndexChangePct:   in.IndexChangePct,
		ETFPremiumPct:    in.ETFPremiumPct,
		FuturesChangePct: in.FuturesChangePct,
		HasFutures:       in.HasFutures,
	}

	// Un único umbral: no hay límite superior para la subida del índice.
	if in.IndexChangePct <= rules.IndexDropLimit {
		d.Reason = ReasonIndexChange
		return d
	}
	if in.ETFPremiumPct >= rules.MaxPremium {
		d.Reason = ReasonPremiumTooHigh
		return d
	}
	switch {
	case in.HasFutures && in.FuturesChangePct > 0:
		d.Reason = ReasonFuturesRising
		return d
	case in.HasFutures && in.FuturesChangePct <= rules.MinFuturesDrop:
		// condición de entrada cumplida, pasa al filtro de noticias
	default:
		d.Reason = ReasonFuturesShallow
		return d
	}

	if in.Event != nil {
		ev := *in.Event
		d.Outcome = OutcomeDefer
		d.Reason = ReasonEventPending
		d.Event = &ev
		return d
	}

	d.Outcome = OutcomeExecute
	d.Reason = ReasonAllConditionsMet
	return d
}
