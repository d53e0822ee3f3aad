package ports

import "context"

// HeadlineSource suministra los titulares de noticias para el filtro de eventos.
type HeadlineSource interface {
	FetchHeadlines(ctx context.Context) ([]string, error)
}
