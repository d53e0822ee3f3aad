package domain

// Trend es la dirección del mercado estadounidense en la sesión evaluada.
type Trend int

const (
	TrendUp Trend = iota
	TrendDown
)

// String devuelve el identificador estable de la tendencia.
func (t Trend) String() string {
	if t == TrendDown {
		return "down"
	}
	return "up"
}

// Label devuelve la etiqueta localizada.
func (t Trend) Label() string {
	if t == TrendDown {
		return "下跌"
	}
	return "上涨"
}

// TrendFrom es TrendDown si algún índice cerró en negativo.
func TrendFrom(indexChanges ...float64) Trend {
	for _, c := range indexChanges {
		if c < 0 {
			return TrendDown
		}
	}
	return TrendUp
}

// DomesticSuggestion es una sugerencia informativa para un canal de compra doméstico.
type DomesticSuggestion struct {
	Channel string // 场内美股ETF | 场内A股ETF | 场外基金
	Advice  []string
}

// DomesticSuggestions devuelve las sugerencias por canal para la tendencia dada,
// en orden fijo: ETFs de EE.UU. en bolsa, ETFs de acciones A, fondos QDII.
// No interviene en la decisión de cada par.
func DomesticSuggestions(trend Trend) []DomesticSuggestion {
	if trend == TrendDown {
		return []DomesticSuggestion{
			{Channel: "场内美股ETF", Advice: []string{
				"🎯 推荐: 513500(标普500)、159834(纳斯达克100)",
				"优势: T+0交易，管理费0.6%",
				"操作: 美股下跌时关注溢价率",
			}},
			{Channel: "场内A股ETF", Advice: []string{
				"🏠 A股联动: 159919(沪深300)、159922(中证500)",
				"策略: 美股下跌关注A股联动机会",
			}},
			{Channel: "场外基金", Advice: []string{
				"💰 定投加码: 支付宝/天天基金买入QDII基金",
				"费率: 申购0.15%(1折)，管理费1.5%",
				"操作: 下跌时加大定投",
			}},
		}
	}
	return []DomesticSuggestion{
		{Channel: "场内美股ETF", Advice: []string{"⚠️ 谨慎: 美股上涨时QDII ETF溢价可能走高，建议等回调"}},
		{Channel: "场内A股ETF", Advice: []string{"🏠 关注: 美股上涨时若A股滞涨可考虑配置159919"}},
		{Channel: "场外基金", Advice: []string{"📈 保持: 继续定投，高位不建议大额申购QDII"}},
	}
}
