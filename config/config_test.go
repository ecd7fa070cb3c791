package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_NAME", "APP_ENV", "APP_VERSION",
		"CONFORMANCE_SAMPLES", "CONFORMANCE_SEED", "CONFORMANCE_MAX_MAGNITUDE", "CONFORMANCE_DECIMAL_PRECISION",
		"LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "ci")
	t.Setenv("CONFORMANCE_SAMPLES", "50")
	t.Setenv("CONFORMANCE_SEED", "42")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvCI, cfg.App.Environment)
	assert.Equal(t, 50, cfg.Conformance.Samples)
	assert.Equal(t, int64(42), cfg.Conformance.SeedOrNow())
	assert.Equal(t, "debug", cfg.Observability.LogLevel)
	assert.Equal(t, "json", cfg.Observability.LogFormat)
}

func TestLoad_BadValueFallsBackToDefault(t *testing.T) {
	t.Setenv("CONFORMANCE_SAMPLES", "many")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default().Conformance.Samples, cfg.Conformance.Samples)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Conformance.Samples = 0
	cfg.Conformance.MaxMagnitude = maxSafeMagnitude + 1
	cfg.Observability.LogFormat = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONFORMANCE_SAMPLES")
	assert.Contains(t, err.Error(), "CONFORMANCE_MAX_MAGNITUDE")
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}

func TestLoad_RejectsOutOfRangePrecision(t *testing.T) {
	for _, val := range []string{"-1", "0", "1001"} {
		t.Setenv("CONFORMANCE_DECIMAL_PRECISION", val)

		cfg, err := Load()
		require.Error(t, err, val)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "CONFORMANCE_DECIMAL_PRECISION")
	}
}

func TestValidate_PrecisionUpperBound(t *testing.T) {
	cfg := Default()
	cfg.Conformance.DecimalPrecision = maxDecimalPrecision + 1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONFORMANCE_DECIMAL_PRECISION")
}
