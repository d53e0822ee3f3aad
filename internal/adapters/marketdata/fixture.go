package marketdata

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alejandrodnm/etfadvisor/internal/domain"
)

// Fixture es un proveedor estático cargado desde YAML, para --dry-run y tests.
//
//	index:   {"^GSPC": -0.5, "^IXIC": -0.8}
//	premium: {"513500": 1.0}
//	futures: {"ES=F": -1.0, "NQ=F": -1.2}
type Fixture struct {
	Index   map[string]float64 `yaml:"index"`
	Premium map[string]float64 `yaml:"premium"`
	Futures map[string]float64 `yaml:"futures"`
}

// LoadFixture lee un Fixture desde el archivo dado.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("marketdata.LoadFixture: read %q: %w", path, err)
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("marketdata.LoadFixture: parse YAML: %w", err)
	}
	return &f, nil
}

// IndexChanges devuelve las lecturas del fixture; un índice faltante falla el batch.
func (f *Fixture) IndexChanges(_ context.Context, symbols []string) (domain.Readings, error) {
	return pick(f.Index, symbols, true)
}

// ETFPremiums devuelve las primas presentes; las ausentes se omiten.
func (f *Fixture) ETFPremiums(_ context.Context, pairs []domain.Pair) (domain.Readings, error) {
	codes := make([]string, len(pairs))
	for i, p := range pairs {
		codes[i] = p.ETFCode
	}
	return pick(f.Premium, codes, false)
}

// FuturesChanges devuelve los futuros presentes; los ausentes se omiten y el
// par correspondiente se evalúa sin lectura de futuros.
func (f *Fixture) FuturesChanges(_ context.Context, symbols []string) (domain.Readings, error) {
	return pick(f.Futures, symbols, false)
}

func pick(src map[string]float64, keys []string, required bool) (domain.Readings, error) {
	out := make(domain.Readings, len(keys))
	for _, k := range keys {
		v, ok := src[k]
		if !ok {
			if required {
				return nil, fmt.Errorf("%w: fixture has no reading for %s", domain.ErrDataUnavailable, k)
			}
			continue
		}
		out[k] = v
	}
	return out, nil
}
