package domain

import (
	"sort"
	"strings"
)

// Theme es un tema de inversión con sus keywords y ETFs recomendados.
type Theme struct {
	Name        string
	Keywords    []string
	ETFs        []ThemeETF
	Performance string // comentario breve sobre el comportamiento reciente
}

// ThemeETF es un ETF doméstico asociado a un tema.
type ThemeETF struct {
	Code string
	Name string
}

// Heat es el nivel de atención de un tema según cuántos titulares lo mencionan.
type Heat int

const (
	HeatLow Heat = iota + 1
	HeatMedium
	HeatHigh
)

// Label devuelve la etiqueta localizada del nivel de atención.
func (h Heat) Label() string {
	switch h {
	case HeatHigh:
		return "🔥 高度关注"
	case HeatMedium:
		return "📈 适度关注"
	default:
		return "📌 一般关注"
	}
}

// Strategy devuelve la sugerencia operativa asociada al nivel.
func (h Heat) Strategy() string {
	switch h {
	case HeatHigh:
		return "重点配置，分批建仓"
	case HeatMedium:
		return "适量配置，观察趋势"
	default:
		return "小仓位试探"
	}
}

// HeatFor clasifica un score: ≥3 alto, 2 medio, 1 bajo.
func HeatFor(score int) Heat {
	switch {
	case score >= 3:
		return HeatHigh
	case score >= 2:
		return HeatMedium
	default:
		return HeatLow
	}
}

// ThemeSignal es el resultado del escaneo de un tema.
type ThemeSignal struct {
	Theme     Theme
	Score     int      // titulares que mencionan el tema
	Headlines []string // titulares coincidentes, sin duplicados
	Heat      Heat
	Fallback  bool // sin temas detectados: sugerencia de ETFs amplios
}

// Strategy devuelve la sugerencia operativa del tema.
func (s ThemeSignal) Strategy() string {
	if s.Fallback {
		return "均衡配置，等待明确趋势"
	}
	return s.Heat.Strategy()
}

// NoHotspotSignal es la señal que se muestra cuando hay titulares pero
// ningún tema coincide.
func NoHotspotSignal() ThemeSignal {
	return ThemeSignal{
		Theme: Theme{
			Name: "无明显热点",
			ETFs: []ThemeETF{
				{Code: "513500", Name: "标普500"},
				{Code: "159919", Name: "沪深300"},
				{Code: "159922", Name: "中证500"},
			},
			Performance: "当前新闻中未发现明显的主题投资热点，建议关注大盘ETF",
		},
		Fallback: true,
	}
}

// ThemesOrFallback devuelve los temas detectados o, si hay titulares y ninguno
// coincide, la señal sin hotspot. Sin titulares no hay sección de temas.
func ThemesOrFallback(signals []ThemeSignal, headlines []string) []ThemeSignal {
	if len(signals) > 0 || len(headlines) == 0 {
		return signals
	}
	return []ThemeSignal{NoHotspotSignal()}
}

// DefaultTopThemes es cuántos temas se muestran por defecto.
const DefaultTopThemes = 3

// ScanThemes puntúa cada tema con los titulares que lo mencionan (sin distinguir
// mayúsculas) y devuelve los top con score > 0, de mayor a menor.
// Informativo: no interviene en la decisión de cada par.
func ScanThemes(themes []Theme, headlines []string, top int) []ThemeSignal {
	var signals []ThemeSignal
	for _, th := range themes {
		sig := ThemeSignal{Theme: th}
		seen := make(map[string]bool)
		for _, h := range headlines {
			lower := strings.ToLower(h)
			for _, k := range th.Keywords {
				if k == "" || !strings.Contains(lower, strings.ToLower(k)) {
					continue
				}
				sig.Score++
				if !seen[h] {
					seen[h] = true
					sig.Headlines = append(sig.Headlines, h)
				}
				break
			}
		}
		if sig.Score > 0 {
			sig.Heat = HeatFor(sig.Score)
			signals = append(signals, sig)
		}
	}

	sort.SliceStable(signals, func(i, j int) bool {
		return signals[i].Score > signals[j].Score
	})
	if top > 0 && len(signals) > top {
		signals = signals[:top]
	}
	return signals
}

// DefaultThemes devuelve los temas sectoriales por defecto.
func DefaultThemes() []Theme {
	return []Theme{
		{
			Name:        "医疗",
			Keywords:    []string{"医疗", "医药", "生物科技", "疫苗", "新药", "医院", "诊疗", "健康"},
			ETFs:        []ThemeETF{{"512170", "中证医疗ETF"}, {"159928", "中证消费ETF"}, {"512010", "医药100ETF"}},
			Performance: "今年医疗ETF涨幅显著，关注政策利好",
		},
		{
			Name:        "科技",
			Keywords:    []string{"人工智能", "AI", "芯片", "半导体", "5G", "科技", "数字化", "云计算"},
			ETFs:        []ThemeETF{{"515050", "5G通信ETF"}, {"512980", "传媒ETF"}, {"159995", "芯片ETF"}},
			Performance: "AI热潮推动科技ETF持续走强",
		},
		{
			Name:        "新能源",
			Keywords:    []string{"新能源", "电动车", "光伏", "风电", "储能", "锂电池", "碳中和"},
			ETFs:        []ThemeETF{{"515030", "新能源ETF"}, {"516950", "新能源车ETF"}, {"159824", "光伏ETF"}},
			Performance: "政策扶持下新能源板块机会持续",
		},
		{
			Name:        "消费",
			Keywords:    []string{"消费", "零售", "白酒", "食品", "旅游", "餐饮", "奢侈品"},
			ETFs:        []ThemeETF{{"159928", "中证消费ETF"}, {"159934", "黄金ETF"}, {"512690", "白酒ETF"}},
			Performance: "消费复苏带动相关ETF表现",
		},
		{
			Name:        "金融",
			Keywords:    []string{"银行", "保险", "证券", "房地产", "金融", "降准", "利率"},
			ETFs:        []ThemeETF{{"510230", "金融ETF"}, {"512800", "银行ETF"}, {"512200", "房地产ETF"}},
			Performance: "金融政策调整影响板块走势",
		},
		{
			Name:        "军工",
			Keywords:    []string{"军工", "国防", "航空", "航天", "军事", "武器"},
			ETFs:        []ThemeETF{{"512660", "军工ETF"}, {"512810", "中证军工ETF"}},
			Performance: "地缘政治影响军工板块关注度",
		},
	}
}
