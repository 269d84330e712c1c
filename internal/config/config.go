package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// the pipeline and its upstream providers, billing, and graceful shutdown
// behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// RateLimitRPS is the per-client request budget per second on the v1 API
		RateLimitRPS float64 `env:"HTTP_RATE_LIMIT_RPS" env-default:"10" yaml:"rateLimitRPS"`
		// RateLimitBurst is the per-client burst allowance on the v1 API
		RateLimitBurst int `env:"HTTP_RATE_LIMIT_BURST" env-default:"20" yaml:"rateLimitBurst"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"gemflush" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT holds the RS256 key pair used for API authentication. The server only
	// needs the public key; the private key is used by the jwt subcommand.
	JWT struct {
		// PrivateKey is the PEM-encoded RSA private key used to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM-encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
	} `yaml:"jwt"`

	// Pipeline configures the crawl, fingerprint and publish orchestration
	Pipeline struct {
		// MaxAttempts is the maximum number of attempts per pipeline run before the
		// affected businesses are marked failed
		MaxAttempts int `env:"PIPELINE_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// ResultCacheTTL is the period during which a completed run is reused for
		// new businesses tracking the same URL
		ResultCacheTTL time.Duration `env:"PIPELINE_RESULT_CACHE_TTL" env-default:"24h" yaml:"resultCacheTTL"`
		// MaxWorkers limits how many pipeline jobs run concurrently
		MaxWorkers int `env:"PIPELINE_MAX_WORKERS" env-default:"20" yaml:"maxWorkers"`
	} `yaml:"pipeline"`

	// Crawler configures the upstream scraping API
	Crawler struct {
		// BaseURL is the crawl provider endpoint
		BaseURL string `env:"CRAWLER_BASE_URL" env-default:"https://api.firecrawl.dev" yaml:"baseURL"`
		// APIKey authenticates against the crawl provider
		APIKey string `env:"CRAWLER_API_KEY" yaml:"apiKey"`
		// Timeout bounds a single scrape request
		Timeout time.Duration `env:"CRAWLER_TIMEOUT" env-default:"60s" yaml:"timeout"`
	} `yaml:"crawler"`

	// LLM configures the model gateway used for fingerprint generation
	LLM struct {
		// BaseURL is the gateway endpoint
		BaseURL string `env:"LLM_BASE_URL" env-default:"https://openrouter.ai/api/v1" yaml:"baseURL"`
		// APIKey authenticates against the gateway
		APIKey string `env:"LLM_API_KEY" yaml:"apiKey"`
		// Models is a comma separated list of model identifiers, each one is
		// queried independently per fingerprint
		Models string `env:"LLM_MODELS" env-default:"openai/gpt-4o,anthropic/claude-3.5-sonnet,google/gemini-pro-1.5" yaml:"models"` //nolint: lll
		// Timeout bounds a single model call
		Timeout time.Duration `env:"LLM_TIMEOUT" env-default:"2m" yaml:"timeout"`
		// MaxTokens caps the completion size per model call
		MaxTokens int `env:"LLM_MAX_TOKENS" env-default:"1024" yaml:"maxTokens"`
	} `yaml:"llm"`

	// Wikidata configures entity publishing. Disabled by default so development
	// environments never write to the live wiki.
	Wikidata struct {
		// Enabled gates the publish stage globally
		Enabled bool `env:"WIKIDATA_ENABLED" env-default:"false" yaml:"enabled"`
		// APIURL is the MediaWiki action API endpoint
		APIURL string `env:"WIKIDATA_API_URL" env-default:"https://www.wikidata.org/w/api.php" yaml:"apiURL"`
		// Token is the OAuth bearer token used for authenticated edits
		Token string `env:"WIKIDATA_TOKEN" yaml:"token"`
		// Timeout bounds a single action API request
		Timeout time.Duration `env:"WIKIDATA_TIMEOUT" env-default:"30s" yaml:"timeout"`
	} `yaml:"wikidata"`

	// Stripe configures billing.
	Stripe Stripe `yaml:"stripe"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Stripe holds the billing configuration. It is a named section so the billing
// service can take it as a dependency on its own. The redirect URLs are where
// checkout and the customer portal send users back to.
type Stripe struct {
	// SecretKey is the Stripe API secret key
	SecretKey string `env:"STRIPE_SECRET_KEY" yaml:"secretKey"`
	// WebhookSecret verifies webhook signatures
	WebhookSecret string `env:"STRIPE_WEBHOOK_SECRET" yaml:"webhookSecret"`
	// ProPriceID is the Stripe price of the pro plan
	ProPriceID string `env:"STRIPE_PRO_PRICE_ID" yaml:"proPriceID"`
	// AgencyPriceID is the Stripe price of the agency plan
	AgencyPriceID string `env:"STRIPE_AGENCY_PRICE_ID" yaml:"agencyPriceID"`
	// SuccessURL is where checkout redirects after payment
	SuccessURL string `env:"STRIPE_SUCCESS_URL" yaml:"successURL"`
	// CancelURL is where checkout redirects when abandoned
	CancelURL string `env:"STRIPE_CANCEL_URL" yaml:"cancelURL"`
	// ReturnURL is where the customer portal redirects back to
	ReturnURL string `env:"STRIPE_RETURN_URL" yaml:"returnURL"`
}

// Models splits the configured LLM model list, dropping empty entries.
func (c *Config) Models() []string {
	parts := strings.Split(c.LLM.Models, ",")
	models := make([]string, 0, len(parts))
	for _, part := range parts {
		if model := strings.TrimSpace(part); model != "" {
			models = append(models, model)
		}
	}

	return models
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
