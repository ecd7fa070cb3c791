package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvCI          Environment = "ci"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// Conformance checker
	Conformance ConformanceConfig

	// Observability
	Observability ObservabilityConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string
	Environment Environment
	Version     string
}

// ConformanceConfig holds the sampling settings of the barrier checker.
type ConformanceConfig struct {
	// Random inputs tried per law
	Samples int

	// Seed for the sample generator; 0 means derive one from the clock
	Seed int64

	// Bound on |n| and |d| of sampled rationals
	MaxMagnitude int64

	// Significant digits for decimal expansion in reports
	DecimalPrecision uint32
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text
}

// maxSafeMagnitude keeps the product of two sampled values inside int64.
const maxSafeMagnitude = 1<<31 - 1

// maxDecimalPrecision bounds the digits requested from the decimal expansion.
const maxDecimalPrecision = 1000

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App:           loadAppConfig(),
		Observability: loadObservabilityConfig(),
	}

	var err error
	cfg.Conformance, err = loadConformanceConfig()
	if err != nil {
		return nil, fmt.Errorf("conformance config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when no environment is set.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:        "data-abstraction",
			Environment: EnvDevelopment,
			Version:     "0.1.0",
		},
		Conformance: ConformanceConfig{
			Samples:          200,
			Seed:             0,
			MaxMagnitude:     10000,
			DecimalPrecision: 34,
		},
		Observability: ObservabilityConfig{
			LogLevel:  "info",
			LogFormat: "text",
		},
	}
}

func loadAppConfig() AppConfig {
	def := Default().App
	return AppConfig{
		Name:        getEnv("APP_NAME", def.Name),
		Environment: Environment(getEnv("APP_ENV", string(def.Environment))),
		Version:     getEnv("APP_VERSION", def.Version),
	}
}

func loadConformanceConfig() (ConformanceConfig, error) {
	def := Default().Conformance

	precision := getEnvInt("CONFORMANCE_DECIMAL_PRECISION", int(def.DecimalPrecision))
	if precision <= 0 || precision > maxDecimalPrecision {
		return ConformanceConfig{}, fmt.Errorf("CONFORMANCE_DECIMAL_PRECISION must be 1-%d, got %d", maxDecimalPrecision, precision)
	}

	return ConformanceConfig{
		Samples:          getEnvInt("CONFORMANCE_SAMPLES", def.Samples),
		Seed:             getEnvInt64("CONFORMANCE_SEED", def.Seed),
		MaxMagnitude:     getEnvInt64("CONFORMANCE_MAX_MAGNITUDE", def.MaxMagnitude),
		DecimalPrecision: uint32(precision),
	}, nil
}

func loadObservabilityConfig() ObservabilityConfig {
	def := Default().Observability
	return ObservabilityConfig{
		LogLevel:  getEnv("LOG_LEVEL", def.LogLevel),
		LogFormat: getEnv("LOG_FORMAT", def.LogFormat),
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	if c.Conformance.Samples <= 0 {
		errs = append(errs, "CONFORMANCE_SAMPLES must be positive")
	}

	if c.Conformance.MaxMagnitude <= 0 || c.Conformance.MaxMagnitude > maxSafeMagnitude {
		errs = append(errs, fmt.Sprintf("CONFORMANCE_MAX_MAGNITUDE must be 1-%d", maxSafeMagnitude))
	}

	if c.Conformance.DecimalPrecision == 0 || c.Conformance.DecimalPrecision > maxDecimalPrecision {
		errs = append(errs, fmt.Sprintf("CONFORMANCE_DECIMAL_PRECISION must be 1-%d", maxDecimalPrecision))
	}

	switch c.Observability.LogFormat {
	case "json", "text":
	default:
		errs = append(errs, "LOG_FORMAT must be json or text")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// SeedOrNow returns the configured seed, or one derived from the clock when unset.
func (c ConformanceConfig) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

// --- Helper functions for environment variable parsing ---

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvInt64(key string, defaultVal int64) int64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return defaultVal
	}
	return i
}
