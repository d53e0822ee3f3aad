package yahoo_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alejandrodnm/etfadvisor/internal/adapters/httpx"
	"github.com/alejandrodnm/etfadvisor/internal/adapters/yahoo"
	"github.com/alejandrodnm/etfadvisor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chartJSON(price, prev float64) string {
	return fmt.Sprintf(`{"chart":{"result":[{"meta":{"symbol":"X","regularMarketPrice":%g,"previousClose":%g,"chartPreviousClose":%g}}],"error":null}}`, price, prev, prev)
}

func newChartServer(t *testing.T, quotes map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sym := strings.TrimPrefix(r.URL.Path, "/v8/finance/chart/")
		body, ok := quotes[sym]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func newTestClient(t *testing.T, srv *httptest.Server) *yahoo.Client {
	t.Helper()
	h, err := httpx.New(httpx.Options{RatePerSecond: 1000, Burst: 100})
	require.NoError(t, err)
	return yahoo.NewClient(h, srv.URL)
}

func TestIndexChanges_Success(t *testing.T) {
	srv := newChartServer(t, map[string]string{
		"^GSPC": chartJSON(4950, 5000),
		"^IXIC": chartJSON(16160, 16000),
	})
	defer srv.Close()

	c := newTestClient(t, srv)
	got, err := c.IndexChanges(context.Background(), []string{"^GSPC", "^IXIC"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.InDelta(t, -1.0, got["^GSPC"], 1e-9)
	assert.InDelta(t, 1.0, got["^IXIC"], 1e-9)
}

func TestIndexChanges_MissingSymbolFailsBatch(t *testing.T) {
	srv := newChartServer(t, map[string]string{
		"^GSPC": chartJSON(4950, 5000),
	})
	defer srv.Close()

	c := newTestClient(t, srv)
	got, err := c.IndexChanges(context.Background(), []string{"^GSPC", "^IXIC"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
	assert.Nil(t, got)
}

func TestIndexChanges_ZeroPreviousCloseFailsBatch(t *testing.T) {
	srv := newChartServer(t, map[string]string{
		"^GSPC": chartJSON(4950, 0),
	})
	defer srv.Close()

	c := newTestClient(t, srv)
	_, err := c.IndexChanges(context.Background(), []string{"^GSPC"})
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
	assert.ErrorIs(t, err, domain.ErrInvalidReading)
}

func TestFuturesChanges_RequiresPrice(t *testing.T) {
	srv := newChartServer(t, map[string]string{
		"ES=F": chartJSON(0, 5000),
	})
	defer srv.Close()

	c := newTestClient(t, srv)
	_, err := c.FuturesChanges(context.Background(), []string{"ES=F"})
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
}

func TestIndexChanges_MissingPriceFailsBatch(t *testing.T) {
	srv := newChartServer(t, map[string]string{
		"^GSPC": `{"chart":{"result":[{"meta":{"symbol":"^GSPC","previousClose":5000}}],"error":null}}`,
	})
	defer srv.Close()

	c := newTestClient(t, srv)
	got, err := c.IndexChanges(context.Background(), []string{"^GSPC"})
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
	assert.ErrorIs(t, err, domain.ErrInvalidReading)
	assert.Nil(t, got)
}

func TestIndexChanges_ErrorIsSingleLine(t *testing.T) {
	srv := newChartServer(t, map[string]string{})
	defer srv.Close()

	c := newTestClient(t, srv)
	_, err := c.IndexChanges(context.Background(), []string{"^GSPC"})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "\n")
	assert.Equal(t, 1, strings.Count(err.Error(), domain.ErrDataUnavailable.Error()))
}

func TestFuturesChanges_Success(t *testing.T) {
	srv := newChartServer(t, map[string]string{
		"ES=F": chartJSON(4975, 5000),
		"NQ=F": chartJSON(17640, 18000),
	})
	defer srv.Close()

	c := newTestClient(t, srv)
	got, err := c.FuturesChanges(context.Background(), []string{"ES=F", "NQ=F"})
	require.NoError(t, err)
	assert.InDelta(t, -0.5, got["ES=F"], 1e-9)
	assert.InDelta(t, -2.0, got["NQ=F"], 1e-9)
}

func TestFetchQuote_EmptyResult(t *testing.T) {
	srv := newChartServer(t, map[string]string{
		"^GSPC": `{"chart":{"result":[],"error":null}}`,
	})
	defer srv.Close()

	c := newTestClient(t, srv)
	_, err := c.FetchQuote(context.Background(), "^GSPC")
	assert.Error(t, err)
}
