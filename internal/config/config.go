package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// the discovery pipeline (resolver, search, prober) and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel optionally overrides the environment's default log level
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"5m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request.
		// Synchronous lookups probe mail servers, so this is generous.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"4m" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// JWT contains the keys used to issue and verify API tokens
	JWT struct {
		// PublicKey is the PEM encoded RSA public key verifying bearer tokens.
		// Authentication is disabled when empty.
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA private key used by the jwt command
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

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
		DatabaseName string `env:"DATABASE_NAME" env-default:"emailfinder" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
		// PingTimeout bounds the connectivity check made on startup, zero skips it
		PingTimeout time.Duration `env:"DATABASE_PING_TIMEOUT" env-default:"5s" yaml:"pingTimeout"`
	} `yaml:"database"`

	// Worker configures background lookup processing
	Worker struct {
		// MaxWorkers is the number of lookups processed concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// MaxAttempts is the number of times a failing lookup job is tried
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// JobTimeout bounds a single lookup job
		JobTimeout time.Duration `env:"WORKER_JOB_TIMEOUT" env-default:"5m" yaml:"jobTimeout"`
		// ResultCacheTTL is how long a completed lookup is reused for identical queries
		ResultCacheTTL time.Duration `env:"WORKER_RESULT_CACHE_TTL" env-default:"24h" yaml:"resultCacheTTL"`
	} `yaml:"worker"`

	// Finder configures the orchestration of a lookup
	Finder struct {
		// MaxParallelDomains bounds how many domains are inferred and probed at once
		MaxParallelDomains int `env:"FINDER_MAX_PARALLEL_DOMAINS" env-default:"4" yaml:"maxParallelDomains"`
		// ExpandDiscovered also generates assumed formats after discovered ones
		ExpandDiscovered bool `env:"FINDER_EXPAND_DISCOVERED" env-default:"false" yaml:"expandDiscovered"`
	} `yaml:"finder"`

	// Resolver configures company domain resolution
	Resolver struct {
		// ReachabilityCheck additionally accepts a direct guess answering HTTP HEAD
		ReachabilityCheck bool `env:"RESOLVER_REACHABILITY_CHECK" env-default:"false" yaml:"reachabilityCheck"`
		// SearchResults is the number of ranked results scanned for a company website
		SearchResults int `env:"RESOLVER_SEARCH_RESULTS" env-default:"5" yaml:"searchResults"`
		// ExtraDenylist adds aggregator domains to the built-in list
		ExtraDenylist []string `env:"RESOLVER_EXTRA_DENYLIST" env-separator:"," yaml:"extraDenylist"`
	} `yaml:"resolver"`

	// DNS configures name resolution
	DNS struct {
		// Provider is "system" or "doh"
		Provider string `env:"DNS_PROVIDER" env-default:"system" yaml:"provider"`
		// DoHEndpoint is the JSON DNS-over-HTTPS endpoint used by the doh provider
		DoHEndpoint string `env:"DNS_DOH_ENDPOINT" env-default:"https://dns.google/resolve" yaml:"dohEndpoint"`
		// Timeout bounds a single lookup
		Timeout time.Duration `env:"DNS_TIMEOUT" env-default:"5s" yaml:"timeout"`
		// MXCacheTTL caches mail exchanger lookups, zero disables
		MXCacheTTL time.Duration `env:"DNS_MX_CACHE_TTL" env-default:"10m" yaml:"mxCacheTTL"`
	} `yaml:"dns"`

	// Search configures the web search capability
	Search struct {
		// Engine is "duckduckgo" (plain HTTP) or "browser" (rendered)
		Engine string `env:"SEARCH_ENGINE" env-default:"duckduckgo" yaml:"engine"`
		// BaseURL overrides the DuckDuckGo HTML endpoint
		BaseURL string `env:"SEARCH_BASE_URL" yaml:"baseURL"`
		// UserAgent overrides the default browser-like user agent
		UserAgent string `env:"SEARCH_USER_AGENT" yaml:"userAgent"`
		// Timeout bounds a single search or fetch
		Timeout time.Duration `env:"SEARCH_TIMEOUT" env-default:"20s" yaml:"timeout"`
		// RateLimit is the process wide number of search requests per second
		RateLimit float64 `env:"SEARCH_RATE_LIMIT" env-default:"0.5" yaml:"rateLimit"`
		// Burst is the number of requests allowed at once
		Burst int `env:"SEARCH_BURST" env-default:"2" yaml:"burst"`
		// MaxResults caps results returned per search
		MaxResults int `env:"SEARCH_MAX_RESULTS" env-default:"10" yaml:"maxResults"`
	} `yaml:"search"`

	// Browser configures the Chromium transport used by the browser engine
	Browser struct {
		// Bin is the Chromium executable, empty lets the launcher find one
		Bin string `env:"BROWSER_BIN" yaml:"bin"`
		// Headless is the default display mode
		Headless bool `env:"BROWSER_HEADLESS" env-default:"true" yaml:"headless"`
		// NavigationTimeout bounds loading a page
		NavigationTimeout time.Duration `env:"BROWSER_NAVIGATION_TIMEOUT" env-default:"30s" yaml:"navigationTimeout"`
	} `yaml:"browser"`

	// Format configures email format inference
	Format struct {
		// MaxDiscovered is the number of distinct discovered formats kept
		MaxDiscovered int `env:"FORMAT_MAX_DISCOVERED" env-default:"1" yaml:"maxDiscovered"`
		// FetchPages is the number of result pages fetched when snippets have no evidence
		FetchPages int `env:"FORMAT_FETCH_PAGES" env-default:"2" yaml:"fetchPages"`
		// Memo enables the in-process domain to format memo
		Memo bool `env:"FORMAT_MEMO" env-default:"true" yaml:"memo"`
		// PersistMemo stores discovered formats in the database
		PersistMemo bool `env:"FORMAT_PERSIST_MEMO" env-default:"false" yaml:"persistMemo"`
	} `yaml:"format"`

	// Prober configures SMTP mailbox probing
	Prober struct {
		// Port is the SMTP port of mail exchangers
		Port int `env:"PROBER_PORT" env-default:"25" yaml:"port"`
		// HeloName is announced in EHLO/HELO
		HeloName string `env:"PROBER_HELO_NAME" env-default:"localhost" yaml:"heloName"`
		// MailFrom is the envelope sender, empty uses verify@<probed domain>
		MailFrom string `env:"PROBER_MAIL_FROM" yaml:"mailFrom"`
		// Timeout bounds a whole probe dialogue
		Timeout time.Duration `env:"PROBER_TIMEOUT" env-default:"10s" yaml:"timeout"`
		// InterProbeDelay is the minimum spacing between probes to one mail exchanger
		InterProbeDelay time.Duration `env:"PROBER_INTER_PROBE_DELAY" env-default:"750ms" yaml:"interProbeDelay"`
		// MaxConsecutiveFailures abandons a domain after this many timeouts or connection errors
		MaxConsecutiveFailures int `env:"PROBER_MAX_CONSECUTIVE_FAILURES" env-default:"3" yaml:"maxConsecutiveFailures"`
		// CatchAllCheck probes a random control address before the candidates
		CatchAllCheck bool `env:"PROBER_CATCH_ALL_CHECK" env-default:"true" yaml:"catchAllCheck"`
		// StartTLS upgrades the connection when the server offers it
		StartTLS bool `env:"PROBER_STARTTLS" env-default:"true" yaml:"startTLS"`
	} `yaml:"prober"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
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

// LoadEnv fills a Config from environment variables and defaults only. It is
// used when no config file exists, e.g. for one-off CLI lookups.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read env config: %w", err)
	}

	return &cfg, nil
}
