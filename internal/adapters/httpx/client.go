package httpx

// client.go — HTTP client compartido por los adapters de datos de mercado y noticias.
//
// El proxy se configura explícitamente en el transport: nunca se leen ni se
// modifican las variables de entorno HTTP_PROXY/HTTPS_PROXY del proceso.

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultTimeout      = 10 * time.Second
	defaultRatePerSec   = 5
	defaultBurst        = 5
	defaultUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	maxRetries          = 3
	baseRetryWait       = 500 * time.Millisecond
	maxErrorBodyPreview = 512
)

// ProxyConfig es la configuración de proxy, fijada al construir el client.
type ProxyConfig struct {
	Enabled bool
	URL     string
}

// Options controla timeout, rate limit y proxy del client.
type Options struct {
	Timeout       time.Duration
	RatePerSecond float64
	Burst         int
	Proxy         ProxyConfig
	UserAgent     string
}

// Client es un HTTP client con rate limiting, retries y proxy explícito.
type Client struct {
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
	retryWait time.Duration
}

// New crea un Client. Devuelve error si el proxy está activo con una URL inválida.
func New(opts Options) (*Client, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.RatePerSecond <= 0 {
		opts.RatePerSecond = defaultRatePerSec
	}
	if opts.Burst <= 0 {
		opts.Burst = defaultBurst
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}

	transport, err := newTransport(opts.Proxy)
	if err != nil {
		return nil, fmt.Errorf("httpx.New: %w", err)
	}

	return &Client{
		http:      &http.Client{Timeout: opts.Timeout, Transport: transport},
		limiter:   rate.NewLimiter(rate.Limit(opts.RatePerSecond), opts.Burst),
		userAgent: opts.UserAgent,
		retryWait: baseRetryWait,
	}, nil
}

// newTransport clona el transport por defecto y fija el proxy.
// Sin proxy activo la conexión es directa, ignorando el entorno.
func newTransport(cfg ProxyConfig) (*http.Transport, error) {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.Proxy = nil
	if !cfg.Enabled {
		return t, nil
	}
	if cfg.URL == "" {
		return nil, fmt.Errorf("proxy enabled without url")
	}
	u, err := url.Parse(cfg.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid proxy url %q", cfg.URL)
	}
	t.Proxy = http.ProxyURL(u)
	return t, nil
}

// ProxyFor devuelve el proxy que usaría el client para la request dada (nil = directo).
func (c *Client) ProxyFor(req *http.Request) (*url.URL, error) {
	t, ok := c.http.Transport.(*http.Transport)
	if !ok || t.Proxy == nil {
		return nil, nil
	}
	return t.Proxy(req)
}

// GetJSON hace un GET y decodifica la respuesta JSON en out.
func (c *Client) GetJSON(ctx context.Context, rawURL string, headers map[string]string, out any) error {
	body, err := c.GetBytes(ctx, rawURL, headers)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// GetBytes hace un GET con rate limiting y retries, y devuelve el body completo.
func (c *Client) GetBytes(ctx context.Context, rawURL string, headers map[string]string) ([]byte, error) {
	return c.doWithRetry(ctx, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", c.userAgent)
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		return c.http.Do(req)
	})
}

// doWithRetry ejecuta la función con backoff exponencial.
// Reintenta errores de red, 429 y 5xx; los 4xx fallan inmediatamente.
func (c *Client) doWithRetry(ctx context.Context, fn func() (*http.Response, error)) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}

		resp, err := fn()
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				return nil, fmt.Errorf("request canceled: %w", ctx.Err())
			}
			c.sleep(ctx, attempt)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("server status %d", resp.StatusCode)
			slog.Debug("retryable http status", "status", resp.StatusCode, "attempt", attempt+1)
			c.sleep(ctx, attempt)
			continue
		}

		if resp.StatusCode >= 400 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyPreview))
			resp.Body.Close()
			return nil, fmt.Errorf("client error %d: %s", resp.StatusCode, string(body))
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}
		return body, nil
	}
	return nil, fmt.Errorf("request failed after %d retries: %w", maxRetries, lastErr)
}

// sleep espera con backoff exponencial, respetando el contexto.
func (c *Client) sleep(ctx context.Context, attempt int) {
	wait := time.Duration(math.Pow(2, float64(attempt))) * c.retryWait
	select {
	case <-time.After(wait):
	case <-ctx.Done():
	}
}
