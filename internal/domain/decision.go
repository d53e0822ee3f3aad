package domain

import "fmt"

// Outcome es el resultado discreto de la evaluación de un par.
type Outcome int

const (
	OutcomeAbstain Outcome = iota // no aumentar posición
	OutcomeExecute                // aumentar posición
	OutcomeDefer                  // esperar a que se resuelva un evento
)

// String devuelve el identificador estable del outcome (logs, JSON).
func (o Outcome) String() string {
	switch o {
	case OutcomeExecute:
		return "execute"
	case OutcomeDefer:
		return "defer"
	default:
		return "abstain"
	}
}

// Label devuelve la etiqueta localizada para el usuario.
func (o Outcome) Label() string {
	switch o {
	case OutcomeExecute:
		return "建议加仓"
	case OutcomeDefer:
		return "暂缓加仓"
	default:
		return "不建议加仓"
	}
}

// Icon devuelve el indicador visual del outcome.
func (o Outcome) Icon() string {
	switch o {
	case OutcomeExecute:
		return "✅"
	case OutcomeDefer:
		return "⏸️"
	default:
		return "❌"
	}
}

// Reason identifica qué regla decidió el outcome.
type Reason int

const (
	ReasonIndexChange     Reason = iota // índice ≤ -1% o subida insuficiente
	ReasonPremiumTooHigh                // prima del ETF demasiado alta
	ReasonFuturesRising                 // futuros al alza
	ReasonFuturesShallow                // caída de futuros < 0.5% o sin datos
	ReasonEventPending                  // evento relevante pendiente
	ReasonAllConditionsMet              // todas las condiciones cumplidas
)

// String devuelve el identificador estable de la razón.
func (r Reason) String() string {
	switch r {
	case ReasonIndexChange:
		return "index_change"
	case ReasonPremiumTooHigh:
		return "premium_too_high"
	case ReasonFuturesRising:
		return "futures_rising"
	case ReasonFuturesShallow:
		return "futures_shallow"
	case ReasonEventPending:
		return "event_pending"
	case ReasonAllConditionsMet:
		return "all_conditions_met"
	default:
		return "unknown"
	}
}

// Text devuelve la explicación localizada de la razón.
func (r Reason) Text() string {
	switch r {
	case ReasonIndexChange:
		return "美股跌幅≤-1%或涨幅不足"
	case ReasonPremiumTooHigh:
		return "ETF溢价过高"
	case ReasonFuturesRising:
		return "期货上涨"
	case ReasonFuturesShallow:
		return "期货跌幅<0.5%"
	case ReasonEventPending:
		return "存在重大事件，等待落地"
	case ReasonAllConditionsMet:
		return "满足全部加仓条件"
	default:
		return "未知原因"
	}
}

// Decision es la recomendación para un par con los datos que la justifican.
type Decision struct {
	Pair    Pair
	Outcome Outcome
	Reason  Reason

	IndexChangePct   float64
	ETFPremiumPct    float64
	FuturesChangePct float64
	HasFutures       bool        // false = no hubo lectura de futuros
	Event            *EventMatch // solo en OutcomeDefer
}

// Headline devuelve la línea principal de la recomendación.
func (d Decision) Headline() string {
	s := fmt.Sprintf("%s %s: %s (%s)", d.Outcome.Icon(), d.Pair.DisplayName, d.Outcome.Label(), d.Reason.Text())
	if d.Event != nil {
		s += fmt.Sprintf(" ⚠️ 事件: %s", d.Event.Keyword)
	}
	return s
}

// Detail devuelve la línea con los tres porcentajes subyacentes.
func (d Decision) Detail() string {
	futures := "--"
	if d.HasFutures {
		futures = fmt.Sprintf("%+.2f%%", d.FuturesChangePct)
	}
	return fmt.Sprintf("美股%+.2f%% | 国内%s溢价%.1f%% | 期货%s",
		d.IndexChangePct, d.Pair.ETFLabel(), d.ETFPremiumPct, futures)
}

// Message devuelve headline y detail en dos líneas.
func (d Decision) Message() string {
	return d.Headline() + "\n" + d.Detail()
}
