package domain

import "math"

// Readings mapea símbolo → cambio porcentual.
// Un símbolo ausente es un dato faltante, distinto de un 0% real.
type Readings map[string]float64

// Get devuelve la lectura y si existe.
func (r Readings) Get(symbol string) (float64, bool) {
	v, ok := r[symbol]
	return v, ok
}

// GetOr devuelve la lectura o def si falta.
func (r Readings) GetOr(symbol string, def float64) float64 {
	if v, ok := r[symbol]; ok {
		return v
	}
	return def
}

// PercentChange calcula (current - previous) / previous × 100.
// Devuelve false si previous no es un precio de referencia válido.
func PercentChange(current, previous float64) (float64, bool) {
	if previous <= 0 || math.IsNaN(previous) || math.IsNaN(current) {
		return 0, false
	}
	return (current - previous) / previous * 100, true
}

// PremiumMagnitude devuelve |price - reference| / reference × 100.
// Solo interesa el tamaño del desvío, el signo se descarta.
func PremiumMagnitude(price, reference float64) (float64, bool) {
	pct, ok := PercentChange(price, reference)
	if !ok {
		return 0, false
	}
	return math.Abs(pct), true
}
