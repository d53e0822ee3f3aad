package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultProxyURL = "http://127.0.0.1:10809"

// Config es la configuración completa del advisor.
type Config struct {
	Proxy ProxyConfig `yaml:"proxy"`
	API   APIConfig   `yaml:"api"`
	Rules RulesConfig `yaml:"rules"`
	News  NewsConfig  `yaml:"news"`
	Log   LogConfig   `yaml:"log"`
}

// ProxyConfig controla el proxy HTTP de los clients de datos.
type ProxyConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
}

// APIConfig contiene los base URLs y límites de las APIs de mercado.
type APIConfig struct {
	YahooBase         string  `yaml:"yahoo_base"`
	SinaBase          string  `yaml:"sina_base"`
	TimeoutSeconds    int     `yaml:"timeout_seconds"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

// RulesConfig contiene los umbrales de entrada, en puntos porcentuales.
type RulesConfig struct {
	IndexDropLimit float64 `yaml:"index_drop_limit"` // ≤ → no entrar
	MaxPremium     float64 `yaml:"max_premium"`      // ≥ → no entrar
	MinFuturesDrop float64 `yaml:"min_futures_drop"` // futuros ≤ esto para entrar
}

// NewsConfig controla las fuentes de titulares y las keywords de riesgo.
type NewsConfig struct {
	Feeds    []string `yaml:"feeds"`
	MaxItems int      `yaml:"max_items"` // por feed
	Keywords []string `yaml:"keywords"`  // vacío = keywords por defecto
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load carga la configuración desde el archivo YAML y el archivo .env si existe.
// Los valores del .env sobreescriben los del YAML para las keys que correspondan.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	setDefaults(&cfg)

	return &cfg, nil
}

// Timeout devuelve el timeout HTTP como time.Duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están presentes.
// En GitHub Actions el proxy local no existe: se fuerza conexión directa.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("PROXY_URL"); v != "" {
		cfg.Proxy.URL = v
	}
	if v := os.Getenv("USE_PROXY"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("USE_PROXY=%q: %w", v, err)
		}
		cfg.Proxy.Enabled = enabled
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		cfg.Proxy.Enabled = false
	}
	return nil
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
func setDefaults(cfg *Config) {
	if cfg.Proxy.URL == "" {
		cfg.Proxy.URL = defaultProxyURL
	}
	if cfg.API.YahooBase == "" {
		cfg.API.YahooBase = "https://query1.finance.yahoo.com"
	}
	if cfg.API.SinaBase == "" {
		cfg.API.SinaBase = "http://hq.sinajs.cn"
	}
	if cfg.API.TimeoutSeconds <= 0 {
		cfg.API.TimeoutSeconds = 10
	}
	if cfg.API.RequestsPerSecond <= 0 {
		cfg.API.RequestsPerSecond = 5
	}
	// 0 no es un umbral útil en ninguna regla: se interpreta como "no configurado"
	if cfg.Rules.IndexDropLimit == 0 {
		cfg.Rules.IndexDropLimit = -1.0
	}
	if cfg.Rules.MaxPremium <= 0 {
		cfg.Rules.MaxPremium = 3.0
	}
	if cfg.Rules.MinFuturesDrop == 0 {
		cfg.Rules.MinFuturesDrop = -0.5
	}
	if cfg.News.MaxItems <= 0 {
		cfg.News.MaxItems = 30
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
