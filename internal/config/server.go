package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pkgconfig "tldr/internal/pkg/config"
)

// ServerConfig holds the HTTP API server settings.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`
	// ReadTimeout and WriteTimeout bound request processing.
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	// ShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// RateLimitRPS and RateLimitBurst parameterize the global token
	// bucket guarding the API.
	RateLimitRPS   int `yaml:"rate_limit_rps"`
	RateLimitBurst int `yaml:"rate_limit_burst"`
	// MaxBodyBytes caps request body size on the summarize endpoint.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

// defaultServerConfig returns the built-in server defaults.
func defaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:            ":8080",
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		RateLimitRPS:    20,
		RateLimitBurst:  40,
		MaxBodyBytes:    10 << 20, // 10 MiB of document text
	}
}

// LoadServerConfig loads the server settings. Precedence, lowest to
// highest: built-in defaults, the YAML file named by TLDR_CONFIG (when
// set), then individual environment variables. A missing or malformed
// YAML file is an error; invalid individual env values fall back with
// warnings.
//
// Environment variables: TLDR_ADDR, TLDR_READ_TIMEOUT,
// TLDR_WRITE_TIMEOUT, TLDR_SHUTDOWN_TIMEOUT, TLDR_RATE_LIMIT_RPS,
// TLDR_RATE_LIMIT_BURST, TLDR_MAX_BODY_BYTES.
func LoadServerConfig() (ServerConfig, []string, error) {
	cfg := defaultServerConfig()
	var warnings []string

	if path := os.Getenv("TLDR_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, warnings, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, warnings, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	cfg.Addr = pkgconfig.LoadEnvString("TLDR_ADDR", cfg.Addr)

	readTimeout := pkgconfig.LoadEnvDuration("TLDR_READ_TIMEOUT", cfg.ReadTimeout, pkgconfig.ValidatePositiveDuration)
	warnings = append(warnings, readTimeout.Warnings...)
	cfg.ReadTimeout = readTimeout.Value.(time.Duration)

	writeTimeout := pkgconfig.LoadEnvDuration("TLDR_WRITE_TIMEOUT", cfg.WriteTimeout, pkgconfig.ValidatePositiveDuration)
	warnings = append(warnings, writeTimeout.Warnings...)
	cfg.WriteTimeout = writeTimeout.Value.(time.Duration)

	shutdownTimeout := pkgconfig.LoadEnvDuration("TLDR_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout, pkgconfig.ValidatePositiveDuration)
	warnings = append(warnings, shutdownTimeout.Warnings...)
	cfg.ShutdownTimeout = shutdownTimeout.Value.(time.Duration)

	rps := pkgconfig.LoadEnvInt("TLDR_RATE_LIMIT_RPS", cfg.RateLimitRPS, pkgconfig.ValidatePositiveInt)
	warnings = append(warnings, rps.Warnings...)
	cfg.RateLimitRPS = rps.Value.(int)

	burst := pkgconfig.LoadEnvInt("TLDR_RATE_LIMIT_BURST", cfg.RateLimitBurst, pkgconfig.ValidatePositiveInt)
	warnings = append(warnings, burst.Warnings...)
	cfg.RateLimitBurst = burst.Value.(int)

	maxBody := pkgconfig.LoadEnvInt("TLDR_MAX_BODY_BYTES", int(cfg.MaxBodyBytes), pkgconfig.ValidatePositiveInt)
	warnings = append(warnings, maxBody.Warnings...)
	cfg.MaxBodyBytes = int64(maxBody.Value.(int))

	if err := cfg.Validate(); err != nil {
		return cfg, warnings, err
	}
	return cfg, warnings, nil
}

// Validate checks the assembled configuration for internal consistency.
func (c ServerConfig) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	if c.RateLimitBurst < c.RateLimitRPS {
		return fmt.Errorf("rate limit burst %d must be at least the rps %d", c.RateLimitBurst, c.RateLimitRPS)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("max body bytes must be positive")
	}
	return nil
}
