package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultRegistryURL    = "http://localhost:8761"
	DefaultGatewayService = "gateway-server"
	DefaultFrontendOrigin = "http://localhost:3000"
)

type Config struct {
	ListenPort      string        // ex: ":3000"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per inbound request, 0 disables

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Discovery
	RegistryURL    string // Eureka base URL, no trailing slash
	GatewayService string // logical name looked up in Eureka
	GatewayURL     string // optional override, wins over the resolved address
	FrontendOrigin string // Origin/Referer sent upstream

	// Redis (optional, empty addr disables search history)
	RedisAddr           string
	RedisUser           string
	RedisPassword       string
	RedisDB             int
	RedisDialTimeout    time.Duration
	RedisReadTimeout    time.Duration
	RedisWriteTimeout   time.Duration
	RedisPoolSize       int
	RedisConnectTimeout time.Duration // total time to retry connecting
	RedisRetryInterval  time.Duration // initial wait between retries, doubles up to RedisMaxWait
	RedisMaxWait        time.Duration
	HistorySize         int // length of the recent searches list

	// Access restrictions
	AllowedHosts []string
	AllowedCIDRS []string
	TrustProxy   bool

	RateBurst  int // search requests allowed in a burst per client IP
	RatePerMin int // refill rate per client IP
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	return &Config{
		ListenPort:      ":3000",
		ShutdownTimeout: 5 * time.Second,
		RequestTimeout:  30 * time.Second,

		LogLevel:  "info",
		PrettyLog: true,

		RegistryURL:    DefaultRegistryURL,
		GatewayService: DefaultGatewayService,
		FrontendOrigin: DefaultFrontendOrigin,

		RedisUser:           "default",
		RedisDialTimeout:    5 * time.Second,
		RedisReadTimeout:    3 * time.Second,
		RedisWriteTimeout:   3 * time.Second,
		RedisPoolSize:       10,
		RedisConnectTimeout: 10 * time.Second,
		RedisRetryInterval:  time.Second,
		RedisMaxWait:        5 * time.Second,
		HistorySize:         50,

		RateBurst:  20,
		RatePerMin: 60,
	}
}

// Load builds the configuration: defaults, then SOCCER_CONFIG_FILE (YAML)
// if set, then environment variables.
func Load() *Config {
	cfg := Defaults()

	if path := os.Getenv("SOCCER_CONFIG_FILE"); path != "" {
		if err := applyFile(cfg, path); err != nil {
			panic(fmt.Sprintf("❌ FATAL: %v", err))
		}
	}

	applyEnv(cfg)
	cfg.RegistryURL = strings.TrimRight(cfg.RegistryURL, "/")
	cfg.GatewayURL = strings.TrimRight(cfg.GatewayURL, "/")

	if cfg.GatewayService == "" {
		panic("❌ FATAL: SOCCER_GATEWAY_SERVICE must not be empty")
	}

	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfgCopy.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

func applyEnv(cfg *Config) {
	cfg.ListenPort = getenv("SOCCER_LISTEN_PORT", cfg.ListenPort)
	cfg.ShutdownTimeout = mustDuration("SOCCER_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	cfg.RequestTimeout = mustDuration("SOCCER_REQUEST_TIMEOUT", cfg.RequestTimeout)

	cfg.LogLevel = getenv("SOCCER_LOG_LEVEL", cfg.LogLevel)
	cfg.PrettyLog = mustBool("SOCCER_PRETTY_LOG", cfg.PrettyLog)

	cfg.RegistryURL = getenv("SOCCER_EUREKA_URL", cfg.RegistryURL)
	cfg.GatewayService = getenv("SOCCER_GATEWAY_SERVICE", cfg.GatewayService)
	cfg.GatewayURL = getenv("SOCCER_API_GATEWAY_URL", cfg.GatewayURL)
	cfg.FrontendOrigin = getenv("SOCCER_FRONTEND_ORIGIN", cfg.FrontendOrigin)

	cfg.RedisAddr = getenv("SOCCER_REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisUser = getenv("SOCCER_REDIS_USERNAME", cfg.RedisUser)
	cfg.RedisPassword = getenv("SOCCER_REDIS_PASSWORD", cfg.RedisPassword)
	cfg.RedisDB = getenvInt("SOCCER_REDIS_DB", cfg.RedisDB)
	cfg.RedisDialTimeout = mustDuration("SOCCER_REDIS_DIAL_TIMEOUT", cfg.RedisDialTimeout)
	cfg.RedisReadTimeout = mustDuration("SOCCER_REDIS_READ_TIMEOUT", cfg.RedisReadTimeout)
	cfg.RedisWriteTimeout = mustDuration("SOCCER_REDIS_WRITE_TIMEOUT", cfg.RedisWriteTimeout)
	cfg.RedisPoolSize = getenvInt("SOCCER_REDIS_POOL_SIZE", cfg.RedisPoolSize)
	cfg.RedisConnectTimeout = mustDuration("SOCCER_REDIS_CONNECT_TIMEOUT", cfg.RedisConnectTimeout)
	cfg.RedisRetryInterval = mustDuration("SOCCER_REDIS_RETRY_INTERVAL", cfg.RedisRetryInterval)
	cfg.RedisMaxWait = mustDuration("SOCCER_REDIS_MAX_WAIT", cfg.RedisMaxWait)
	cfg.HistorySize = getenvInt("SOCCER_HISTORY_SIZE", cfg.HistorySize)

	if v := os.Getenv("SOCCER_ALLOWED_HOSTS"); v != "" {
		cfg.AllowedHosts = splitAndTrim(v)
	}
	if v := os.Getenv("SOCCER_ALLOWED_CIDRS"); v != "" {
		cfg.AllowedCIDRS = splitAndTrim(v)
	}
	cfg.TrustProxy = mustBool("SOCCER_TRUST_PROXY", cfg.TrustProxy)

	cfg.RateBurst = getenvInt("SOCCER_RATE_BURST", cfg.RateBurst)
	cfg.RatePerMin = getenvInt("SOCCER_RATE_PER_MIN", cfg.RatePerMin)
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.Trim(strings.TrimSpace(part), `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
