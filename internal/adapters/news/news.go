package news

import (
	"context"
	"errors"
	"strings"
)

// Static devuelve titulares fijos (ej. pasados por CLI).
type Static []string

// FetchHeadlines devuelve los titulares no vacíos, recortados.
func (s Static) FetchHeadlines(_ context.Context) ([]string, error) {
	return clean(s), nil
}

// Source es la interfaz que combina Multi (igual a ports.HeadlineSource).
type Source interface {
	FetchHeadlines(ctx context.Context) ([]string, error)
}

// Multi concatena los titulares de varias fuentes, en orden.
// Si alguna falla, devuelve lo recogido junto con los errores agregados.
type Multi []Source

// FetchHeadlines implementa ports.HeadlineSource.
func (m Multi) FetchHeadlines(ctx context.Context) ([]string, error) {
	var all []string
	var errs []error
	for _, src := range m {
		if src == nil {
			continue
		}
		h, err := src.FetchHeadlines(ctx)
		if err != nil {
			errs = append(errs, err)
		}
		all = append(all, h...)
	}
	return all, errors.Join(errs...)
}

func clean(in []string) []string {
	out := make([]string, 0, len(in))
	for _, h := range in {
		if h = strings.TrimSpace(h); h != "" {
			out = append(out, h)
		}
	}
	return out
}
