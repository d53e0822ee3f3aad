package domain

import "time"

// Report es el resultado completo de una evaluación.
type Report struct {
	RunID       string
	GeneratedAt time.Time
	Decisions   [PairCount]Decision
	Events      []EventMatch  // todas las coincidencias de keywords de riesgo
	Themes      []ThemeSignal // temas sectoriales detectados en los titulares
	Trend       Trend         // dirección de los índices de EE.UU.
	Domestic    []DomesticSuggestion
}

// Decision devuelve la decisión del par dado.
func (r Report) Decision(id PairID) (Decision, bool) {
	for _, d := range r.Decisions {
		if d.Pair.ID == id {
			return d, true
		}
	}
	return Decision{}, false
}

// CountOutcome cuenta cuántos pares terminaron con el outcome dado.
func (r Report) CountOutcome(o Outcome) int {
	n := 0
	for _, d := range r.Decisions {
		if d.Outcome == o {
			n++
		}
	}
	return n
}
