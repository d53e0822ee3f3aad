package news

// rss.go — titulares desde feeds RSS/Atom.
//
// Un feed caído no invalida los demás: se loguea y se sigue. Si fallan todos,
// se devuelve el error agregado junto con lo que se haya obtenido (nada).

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmcdole/gofeed"
)

const defaultMaxItems = 30

// fetcher es el subconjunto de httpx.Client que usa RSS.
type fetcher interface {
	GetBytes(ctx context.Context, rawURL string, headers map[string]string) ([]byte, error)
}

// RSS obtiene titulares de una lista de feeds.
type RSS struct {
	http     fetcher
	feeds    []string
	maxItems int
}

// NewRSS crea una fuente RSS. maxItems <= 0 usa el límite por defecto por feed.
func NewRSS(http fetcher, feeds []string, maxItems int) *RSS {
	if maxItems <= 0 {
		maxItems = defaultMaxItems
	}
	return &RSS{http: http, feeds: feeds, maxItems: maxItems}
}

// FetchHeadlines implementa ports.HeadlineSource.
func (r *RSS) FetchHeadlines(ctx context.Context) ([]string, error) {
	var all []string
	var errs []error
	for _, feedURL := range r.feeds {
		titles, err := r.fetchFeed(ctx, feedURL)
		if err != nil {
			slog.Warn("rss feed failed, skipping", "feed", feedURL, "err", err)
			errs = append(errs, err)
			continue
		}
		slog.Debug("rss feed fetched", "feed", feedURL, "headlines", len(titles))
		all = append(all, titles...)
	}
	if len(errs) > 0 && len(errs) == len(r.feeds) {
		return all, fmt.Errorf("news.RSS: all %d feeds failed: %w", len(errs), errors.Join(errs...))
	}
	return all, nil
}

func (r *RSS) fetchFeed(ctx context.Context, feedURL string) ([]string, error) {
	body, err := r.http.GetBytes(ctx, feedURL, map[string]string{
		"Accept": "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8",
	})
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", feedURL, err)
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", feedURL, err)
	}

	titles := make([]string, 0, len(feed.Items))
	for _, item := range feed.Items {
		if len(titles) >= r.maxItems {
			break
		}
		if item == nil {
			continue
		}
		// los títulos vacíos no cuentan para maxItems
		if title := strings.TrimSpace(item.Title); title != "" {
			titles = append(titles, title)
		}
	}
	return titles, nil
}
