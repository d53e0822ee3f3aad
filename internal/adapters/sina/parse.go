package sina

import (
	"fmt"
	"strconv"
	"strings"
)

// Formato de hq.sinajs.cn, una línea por código:
//
//	var hq_str_sh513500="标普500ETF,1.712,1.709,1.725,...";
//
// Campos: 0 nombre, 1 apertura, 2 cierre anterior, 3 precio actual.
const (
	linePrefix     = "var hq_str_"
	fieldName      = 0
	fieldPrevClose = 2
	fieldPrice     = 3
	minFields      = 4
)

// quote es una cotización parseada de Sina.
type quote struct {
	Key       string // ej. "sh513500"
	Name      string
	Price     float64
	PrevClose float64
}

// parseQuotes parsea el body completo. Las líneas con datos vacíos o
// malformados se devuelven en invalid con el motivo.
func parseQuotes(body string) (quotes map[string]quote, invalid map[string]string) {
	quotes = make(map[string]quote)
	invalid = make(map[string]string)

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, linePrefix) {
			continue
		}
		key, payload, ok := splitLine(line)
		if !ok {
			continue
		}
		q, err := parseFields(key, payload)
		if err != nil {
			invalid[key] = err.Error()
			continue
		}
		quotes[key] = q
	}
	return quotes, invalid
}

// splitLine separa `var hq_str_<key>="<payload>";` en key y payload.
func splitLine(line string) (key, payload string, ok bool) {
	rest := strings.TrimPrefix(line, linePrefix)
	eq := strings.Index(rest, "=")
	if eq <= 0 {
		return "", "", false
	}
	key = rest[:eq]
	payload = strings.TrimSuffix(strings.TrimSpace(rest[eq+1:]), ";")
	payload = strings.Trim(payload, `"`)
	return key, payload, true
}

func parseFields(key, payload string) (quote, error) {
	if payload == "" {
		return quote{}, fmt.Errorf("empty quote")
	}
	fields := strings.Split(payload, ",")
	if len(fields) < minFields {
		return quote{}, fmt.Errorf("only %d fields", len(fields))
	}
	prev, err := strconv.ParseFloat(strings.TrimSpace(fields[fieldPrevClose]), 64)
	if err != nil {
		return quote{}, fmt.Errorf("prev close: %w", err)
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(fields[fieldPrice]), 64)
	if err != nil {
		return quote{}, fmt.Errorf("price: %w", err)
	}
	return quote{Key: key, Name: fields[fieldName], Price: price, PrevClose: prev}, nil
}
