package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.RegistryURL != DefaultRegistryURL {
		t.Errorf("RegistryURL = %q, want %q", cfg.RegistryURL, DefaultRegistryURL)
	}
	if cfg.GatewayService != DefaultGatewayService {
		t.Errorf("GatewayService = %q, want %q", cfg.GatewayService, DefaultGatewayService)
	}
	if cfg.GatewayURL != "" {
		t.Errorf("GatewayURL = %q, want empty", cfg.GatewayURL)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr = %q, want empty (history disabled)", cfg.RedisAddr)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SOCCER_EUREKA_URL", "http://eureka:8761/")
	t.Setenv("SOCCER_API_GATEWAY_URL", "http://gateway:8080/")
	t.Setenv("SOCCER_GATEWAY_SERVICE", "edge")
	t.Setenv("SOCCER_REQUEST_TIMEOUT", "3s")
	t.Setenv("SOCCER_ALLOWED_CIDRS", "10.0.0.0/8, '192.168.1.1'")

	cfg := Load()

	if cfg.RegistryURL != "http://eureka:8761" {
		t.Errorf("RegistryURL = %q, want trailing slash trimmed", cfg.RegistryURL)
	}
	if cfg.GatewayURL != "http://gateway:8080" {
		t.Errorf("GatewayURL = %q, want trailing slash trimmed", cfg.GatewayURL)
	}
	if cfg.GatewayService != "edge" {
		t.Errorf("GatewayService = %q, want edge", cfg.GatewayService)
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Errorf("RequestTimeout = %v, want 3s", cfg.RequestTimeout)
	}
	if len(cfg.AllowedCIDRS) != 2 || cfg.AllowedCIDRS[1] != "192.168.1.1" {
		t.Errorf("AllowedCIDRS = %v, want [10.0.0.0/8 192.168.1.1]", cfg.AllowedCIDRS)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "soccerfront.yaml")

	content := `server:
  listen: ":9000"
  request_timeout: 12s
log:
  pretty: false
discovery:
  eureka_url: http://file-eureka:8761
  gateway_url: http://file-gateway:8080
redis:
  addr: redis:6379
  history_size: 10
access:
  trust_proxy: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("SOCCER_CONFIG_FILE", path)
	t.Setenv("SOCCER_API_GATEWAY_URL", "http://env-gateway:8080")

	cfg := Load()

	if cfg.ListenPort != ":9000" {
		t.Errorf("ListenPort = %q, want :9000", cfg.ListenPort)
	}
	if cfg.RequestTimeout != 12*time.Second {
		t.Errorf("RequestTimeout = %v, want 12s", cfg.RequestTimeout)
	}
	if cfg.PrettyLog {
		t.Error("PrettyLog = true, want false from file")
	}
	if cfg.RegistryURL != "http://file-eureka:8761" {
		t.Errorf("RegistryURL = %q, want value from file", cfg.RegistryURL)
	}
	if cfg.GatewayURL != "http://env-gateway:8080" {
		t.Errorf("GatewayURL = %q, env should win over file", cfg.GatewayURL)
	}
	if cfg.RedisAddr != "redis:6379" || cfg.HistorySize != 10 {
		t.Errorf("redis = %q/%d, want redis:6379/10", cfg.RedisAddr, cfg.HistorySize)
	}
	if !cfg.TrustProxy {
		t.Error("TrustProxy = false, want true from file")
	}
}

func TestLoadMissingFilePanics(t *testing.T) {
	t.Setenv("SOCCER_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	defer func() {
		if r := recover(); r == nil {
			t.Error("Load() should have panicked on a missing config file")
		}
	}()
	Load()
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      time.Duration
		expected time.Duration
	}{
		{
			name:     "valid duration",
			key:      "TEST_DURATION",
			value:    "5s",
			def:      1 * time.Second,
			expected: 5 * time.Second,
		},
		{
			name:     "invalid duration uses default",
			key:      "TEST_DURATION_INVALID",
			value:    "invalid",
			def:      10 * time.Second,
			expected: 10 * time.Second,
		},
		{
			name:     "missing variable uses default",
			key:      "TEST_DURATION_MISSING",
			def:      15 * time.Second,
			expected: 15 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}
			if got := mustDuration(tt.key, tt.def); got != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      bool
		expected bool
	}{
		{name: "true value", key: "TEST_BOOL", value: "true", def: false, expected: true},
		{name: "false value", key: "TEST_BOOL_FALSE", value: "false", def: true, expected: false},
		{name: "invalid value uses default", key: "TEST_BOOL_INVALID", value: "invalid", def: true, expected: true},
		{name: "missing variable uses default", key: "TEST_BOOL_MISSING", def: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}
			if got := mustBool(tt.key, tt.def); got != tt.expected {
				t.Errorf("mustBool() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: nil},
		{name: "single", input: "a", expected: []string{"a"}},
		{name: "spaces and quotes", input: ` "a" , 'b',, c `, expected: []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitAndTrim(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("splitAndTrim() = %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("splitAndTrim()[%d] = %q, want %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}
