package domain

import "strings"

// DefaultEventKeywords devuelve las palabras clave de riesgo por defecto:
// política monetaria, datos macro, geopolítica, resultados y catástrofes.
func DefaultEventKeywords() []string {
	return []string{
		"美联储", "加息", "降息", "通胀", "CPI", "PPI", "非农",
		"就业", "GDP", "贸易战", "制裁", "地缘", "战争", "冲突",
		"央行", "财报", "重大事故", "天灾", "疫情", "封锁",
	}
}

// EventMatch es una coincidencia de keyword dentro de un titular.
type EventMatch struct {
	Keyword  string
	Headline string
}

// NewsFilter detecta eventos relevantes por coincidencia de substrings.
// Sin estado: mismo input, mismo resultado.
type NewsFilter struct {
	keywords []string
}

// NewNewsFilter crea un filtro con las keywords dadas, en ese orden.
// Las keywords vacías se descartan (coincidirían con cualquier titular).
func NewNewsFilter(keywords []string) NewsFilter {
	kw := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k != "" {
			kw = append(kw, k)
		}
	}
	return NewsFilter{keywords: kw}
}

// Keywords devuelve una copia de las keywords configuradas.
func (f NewsFilter) Keywords() []string {
	return append([]string(nil), f.keywords...)
}

// FirstMatch devuelve la primera coincidencia recorriendo titular por titular
// y, dentro de cada uno, keyword por keyword.
func (f NewsFilter) FirstMatch(headlines []string) (EventMatch, bool) {
	for _, h := range headlines {
		for _, k := range f.keywords {
			if strings.Contains(h, k) {
				return EventMatch{Keyword: k, Headline: h}, true
			}
		}
	}
	return EventMatch{}, false
}

// HasMajorEvent devuelve true en cuanto algún titular contiene alguna keyword.
func (f NewsFilter) HasMajorEvent(headlines []string) bool {
	_, ok := f.FirstMatch(headlines)
	return ok
}

// Matches devuelve todas las coincidencias keyword/titular, para el reporte.
func (f NewsFilter) Matches(headlines []string) []EventMatch {
	var out []EventMatch
	for _, h := range headlines {
		for _, k := range f.keywords {
			if strings.Contains(h, k) {
				out = append(out, EventMatch{Keyword: k, Headline: h})
			}
		}
	}
	return out
}
