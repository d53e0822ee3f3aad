package sina

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/alejandrodnm/etfadvisor/internal/adapters/httpx"
	"github.com/alejandrodnm/etfadvisor/internal/domain"
)

const (
	defaultBase = "http://hq.sinajs.cn"
	// Sina rechaza requests sin Referer de su propio dominio.
	referer = "https://finance.sina.com.cn"
)

// Client obtiene cotizaciones de ETFs domésticos desde Sina Finance.
type Client struct {
	http *httpx.Client
	base string
}

// NewClient crea un Client sobre el HTTP client dado.
func NewClient(http *httpx.Client, base string) *Client {
	if base == "" {
		base = defaultBase
	}
	return &Client{http: http, base: strings.TrimRight(base, "/")}
}

// ETFPremiums devuelve la magnitud de la prima de cada ETF vs. su cierre anterior,
// indexada por código de ETF. Un fallo del batch, o una respuesta sin ninguna
// línea de cotización, es domain.ErrDataUnavailable; una cotización vacía o sin
// cierre anterior válido solo omite ese ETF.
func (c *Client) ETFPremiums(ctx context.Context, pairs []domain.Pair) (domain.Readings, error) {
	if len(pairs) == 0 {
		return domain.Readings{}, nil
	}

	keys := make([]string, len(pairs))
	for i, p := range pairs {
		keys[i] = p.ETFQuoteKey()
	}
	u := fmt.Sprintf("%s/list=%s", c.base, strings.Join(keys, ","))

	body, err := c.http.GetBytes(ctx, u, map[string]string{"Referer": referer})
	if err != nil {
		return nil, fmt.Errorf("%w: sina.ETFPremiums: %w", domain.ErrDataUnavailable, err)
	}

	quotes, invalid := parseQuotes(decodeBody(body))
	if len(quotes) == 0 && len(invalid) == 0 {
		// Ninguna línea hq_str_: página anti-scraping, HTML de error o body vacío.
		return nil, fmt.Errorf("%w: sina.ETFPremiums: no quote lines in response (%d bytes)", domain.ErrDataUnavailable, len(body))
	}
	out := make(domain.Readings, len(pairs))
	for _, p := range pairs {
		key := p.ETFQuoteKey()
		q, ok := quotes[key]
		if !ok {
			slog.Warn("etf quote unavailable, premium omitted",
				"etf", p.ETFLabel(),
				"reason", reasonFor(invalid, key),
			)
			continue
		}
		prem, ok := premium(q)
		if !ok {
			slog.Warn("etf reference price invalid, premium omitted",
				"etf", p.ETFLabel(),
				"price", q.Price,
				"prev_close", q.PrevClose,
				"err", domain.ErrInvalidReading,
			)
			continue
		}
		out[p.ETFCode] = prem
		slog.Debug("etf premium fetched",
			"etf", p.ETFLabel(),
			"quote_name", q.Name,
			"premium_pct", fmt.Sprintf("%.2f", prem),
		)
	}
	return out, nil
}

// decodeBody pasa el body de GBK a UTF-8. Si no decodifica se usa tal cual:
// los campos numéricos son ASCII en ambos casos.
func decodeBody(body []byte) string {
	utf, err := simplifiedchinese.GBK.NewDecoder().Bytes(body)
	if err != nil {
		slog.Debug("sina body not gbk, using raw bytes", "err", err)
		return string(body)
	}
	return string(utf)
}

// premium exige precio actual > 0: Sina devuelve 0 para ETFs suspendidos o antes de abrir.
func premium(q quote) (float64, bool) {
	if q.Price <= 0 {
		return 0, false
	}
	return domain.PremiumMagnitude(q.Price, q.PrevClose)
}

func reasonFor(invalid map[string]string, key string) string {
	if r, ok := invalid[key]; ok {
		return r
	}
	return "missing from response"
}
