package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alejandrodnm/etfadvisor/config"
	"github.com/alejandrodnm/etfadvisor/internal/adapters/httpx"
	"github.com/alejandrodnm/etfadvisor/internal/adapters/marketdata"
	"github.com/alejandrodnm/etfadvisor/internal/adapters/news"
	"github.com/alejandrodnm/etfadvisor/internal/adapters/notify"
	"github.com/alejandrodnm/etfadvisor/internal/adapters/sina"
	"github.com/alejandrodnm/etfadvisor/internal/adapters/yahoo"
	"github.com/alejandrodnm/etfadvisor/internal/advisor"
	"github.com/alejandrodnm/etfadvisor/internal/domain"
	"github.com/alejandrodnm/etfadvisor/internal/ports"
)

// headlineFlags acumula -news repetidos.
type headlineFlags []string

func (h *headlineFlags) String() string { return strings.Join(*h, "; ") }

func (h *headlineFlags) Set(v string) error {
	*h = append(*h, v)
	return nil
}

func main() {
	var headlines headlineFlags
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	flag.Var(&headlines, "news", "headline to screen for risk events (repeatable)")
	fixturePath := flag.String("fixture", "", "read market data from a YAML fixture instead of the real APIs")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	table := flag.Bool("table", false, "print decisions as a table (default: compact 2-line)")
	noRSS := flag.Bool("no-rss", false, "skip configured RSS feeds")
	proxy := flag.String("proxy", "", "proxy URL; enables the proxy (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}

	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	if *proxy != "" {
		cfg.Proxy.Enabled = true
		cfg.Proxy.URL = *proxy
	}
	setupLogger(cfg.Log)

	slog.Info("etfadvisor starting",
		"config", *configPath,
		"proxy", cfg.Proxy.Enabled,
		"fixture", *fixturePath,
		"headlines", len(headlines),
		"feeds", len(cfg.News.Feeds),
	)

	client, err := httpx.New(httpx.Options{
		Timeout:       cfg.Timeout(),
		RatePerSecond: cfg.API.RequestsPerSecond,
		Proxy:         httpx.ProxyConfig{Enabled: cfg.Proxy.Enabled, URL: cfg.Proxy.URL},
	})
	if err != nil {
		slog.Error("failed to build http client", "err", err)
		os.Exit(1)
	}

	market, err := buildMarket(client, cfg, *fixturePath)
	if err != nil {
		slog.Error("failed to build market data provider", "err", err)
		os.Exit(1)
	}

	sources := news.Multi{news.Static(headlines)}
	if !*noRSS && len(cfg.News.Feeds) > 0 {
		sources = append(sources, news.NewRSS(client, cfg.News.Feeds, cfg.News.MaxItems))
	}

	advCfg := advisor.DefaultConfig()
	advCfg.Rules = domain.Rules{
		IndexDropLimit: cfg.Rules.IndexDropLimit,
		MaxPremium:     cfg.Rules.MaxPremium,
		MinFuturesDrop: cfg.Rules.MinFuturesDrop,
	}
	if len(cfg.News.Keywords) > 0 {
		advCfg.Keywords = cfg.News.Keywords
	}

	a := advisor.New(advCfg, market)
	notifier := notify.NewConsole(*table)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := a.Run(ctx, sources, notifier); err != nil {
		if errors.Is(err, domain.ErrDataUnavailable) {
			slog.Error("market data unavailable, no recommendation issued", "err", err)
		} else {
			slog.Error("advisor exited with error", "err", err)
		}
		os.Exit(1)
	}

	slog.Info("etfadvisor finished")
}

// buildMarket devuelve el fixture si se pasó uno, o el provider Yahoo + Sina.
func buildMarket(client *httpx.Client, cfg *config.Config, fixturePath string) (ports.MarketDataProvider, error) {
	if fixturePath != "" {
		f, err := marketdata.LoadFixture(fixturePath)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	return marketdata.New(
		yahoo.NewClient(client, cfg.API.YahooBase),
		sina.NewClient(client, cfg.API.SinaBase),
	), nil
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// stdout queda para el reporte; los logs van a stderr
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
