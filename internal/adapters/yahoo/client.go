package yahoo

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/alejandrodnm/etfadvisor/internal/adapters/httpx"
	"github.com/alejandrodnm/etfadvisor/internal/domain"
)

const (
	defaultBase = "https://query1.finance.yahoo.com"
	chartPath   = "/v8/finance/chart/"
)

// Client obtiene cambios porcentuales de índices y futuros desde Yahoo Finance.
type Client struct {
	http *httpx.Client
	base string
}

// NewClient crea un Client sobre el HTTP client dado.
// Si base está vacío usa el host de producción.
func NewClient(http *httpx.Client, base string) *Client {
	if base == "" {
		base = defaultBase
	}
	return &Client{http: http, base: strings.TrimRight(base, "/")}
}

// Quote es el par de precios de referencia de un símbolo.
type Quote struct {
	Symbol        string
	Price         float64
	PreviousClose float64
}

// FetchQuote obtiene el último precio y el cierre anterior de un símbolo.
func (c *Client) FetchQuote(ctx context.Context, symbol string) (Quote, error) {
	u := c.base + chartPath + url.PathEscape(symbol)

	var resp chartResponse
	if err := c.http.GetJSON(ctx, u, map[string]string{"Accept": "application/json"}, &resp); err != nil {
		return Quote{}, fmt.Errorf("yahoo.FetchQuote %s: %w", symbol, err)
	}
	if resp.Chart.Error != nil {
		return Quote{}, fmt.Errorf("yahoo.FetchQuote %s: %s: %s", symbol, resp.Chart.Error.Code, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return Quote{}, fmt.Errorf("yahoo.FetchQuote %s: empty result", symbol)
	}

	meta := resp.Chart.Result[0].Meta
	return Quote{
		Symbol:        symbol,
		Price:         meta.RegularMarketPrice,
		PreviousClose: meta.PreviousClose,
	}, nil
}

// Changes devuelve el cambio % de cada símbolo. Si cualquier símbolo falla,
// el batch completo falla con domain.ErrDataUnavailable. Un precio actual
// ausente decodifica como 0 y también falla: no es un -100% real.
func (c *Client) Changes(ctx context.Context, symbols []string) (domain.Readings, error) {
	out := make(domain.Readings, len(symbols))
	for _, sym := range symbols {
		q, err := c.FetchQuote(ctx, sym)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrDataUnavailable, err)
		}
		if q.Price <= 0 {
			return nil, fmt.Errorf("%w: %s: price %.4f: %w", domain.ErrDataUnavailable, sym, q.Price, domain.ErrInvalidReading)
		}
		pct, ok := domain.PercentChange(q.Price, q.PreviousClose)
		if !ok {
			return nil, fmt.Errorf("%w: %s: previous close %.4f: %w", domain.ErrDataUnavailable, sym, q.PreviousClose, domain.ErrInvalidReading)
		}
		out[sym] = pct
		slog.Debug("yahoo change fetched", "symbol", sym, "change_pct", fmt.Sprintf("%.2f", pct))
	}
	return out, nil
}

// IndexChanges implementa la parte de índices spot de ports.MarketDataProvider.
func (c *Client) IndexChanges(ctx context.Context, symbols []string) (domain.Readings, error) {
	return c.Changes(ctx, symbols)
}

// FuturesChanges implementa la parte de futuros de ports.MarketDataProvider.
func (c *Client) FuturesChanges(ctx context.Context, symbols []string) (domain.Readings, error) {
	return c.Changes(ctx, symbols)
}
