package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional YAML configuration file. Zero values
// leave the corresponding default untouched.
//
//	server:
//	  listen: ":3000"
//	  request_timeout: 30s
//	discovery:
//	  eureka_url: http://eureka:8761
//	  gateway_service: gateway-server
//	  gateway_url: ""
//	redis:
//	  addr: redis:6379
type fileConfig struct {
	Server struct {
		Listen          string        `yaml:"listen"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		RequestTimeout  time.Duration `yaml:"request_timeout"`
		FrontendOrigin  string        `yaml:"frontend_origin"`
	} `yaml:"server"`

	Log struct {
		Level  string `yaml:"level"`
		Pretty *bool  `yaml:"pretty"`
	} `yaml:"log"`

	Discovery struct {
		EurekaURL      string `yaml:"eureka_url"`
		GatewayService string `yaml:"gateway_service"`
		GatewayURL     string `yaml:"gateway_url"`
	} `yaml:"discovery"`

	Redis struct {
		Addr        string `yaml:"addr"`
		Username    string `yaml:"username"`
		Password    string `yaml:"password"`
		DB          int    `yaml:"db"`
		HistorySize int    `yaml:"history_size"`
	} `yaml:"redis"`

	Access struct {
		AllowedHosts []string `yaml:"allowed_hosts"`
		AllowedCIDRS []string `yaml:"allowed_cidrs"`
		TrustProxy   *bool    `yaml:"trust_proxy"`
		RateBurst    int      `yaml:"rate_burst"`
		RatePerMin   int      `yaml:"rate_per_min"`
	} `yaml:"access"`
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config yaml: %w", err)
	}

	setString(&cfg.ListenPort, fc.Server.Listen)
	setDuration(&cfg.ShutdownTimeout, fc.Server.ShutdownTimeout)
	setDuration(&cfg.RequestTimeout, fc.Server.RequestTimeout)
	setString(&cfg.FrontendOrigin, fc.Server.FrontendOrigin)

	setString(&cfg.LogLevel, fc.Log.Level)
	if fc.Log.Pretty != nil {
		cfg.PrettyLog = *fc.Log.Pretty
	}

	setString(&cfg.RegistryURL, fc.Discovery.EurekaURL)
	setString(&cfg.GatewayService, fc.Discovery.GatewayService)
	setString(&cfg.GatewayURL, fc.Discovery.GatewayURL)

	setString(&cfg.RedisAddr, fc.Redis.Addr)
	setString(&cfg.RedisUser, fc.Redis.Username)
	setString(&cfg.RedisPassword, fc.Redis.Password)
	setInt(&cfg.RedisDB, fc.Redis.DB)
	setInt(&cfg.HistorySize, fc.Redis.HistorySize)

	if len(fc.Access.AllowedHosts) > 0 {
		cfg.AllowedHosts = fc.Access.AllowedHosts
	}
	if len(fc.Access.AllowedCIDRS) > 0 {
		cfg.AllowedCIDRS = fc.Access.AllowedCIDRS
	}
	if fc.Access.TrustProxy != nil {
		cfg.TrustProxy = *fc.Access.TrustProxy
	}
	setInt(&cfg.RateBurst, fc.Access.RateBurst)
	setInt(&cfg.RatePerMin, fc.Access.RatePerMin)

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v time.Duration) {
	if v != 0 {
		*dst = v
	}
}
