package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"ADMIN_IDS", "EXCHANGE_RATE", "REFERRAL_BONUS", "HTTP_PORT", "LOG_LEVEL", "APP_ENV", "MATURITY_CHECK_INTERVAL"} {
		t.Setenv(k, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.AdminIDs)
	assert.True(t, cfg.ExchangeRate.Equal(decimal.RequireFromString("57.5")))
	assert.True(t, cfg.ReferralBonus.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "10000", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, time.Hour, cfg.MaturityCheck)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ADMIN_IDS", "6248473298, 42")
	t.Setenv("EXCHANGE_RATE", "60")
	t.Setenv("REFERRAL_BONUS", "2.5")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_ENV", "production")
	t.Setenv("MATURITY_CHECK_INTERVAL", "15m")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []int64{6248473298, 42}, cfg.AdminIDs)
	assert.True(t, cfg.ExchangeRate.Equal(decimal.NewFromInt(60)))
	assert.True(t, cfg.ReferralBonus.Equal(decimal.RequireFromString("2.5")))
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 15*time.Minute, cfg.MaturityCheck)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"admin id", "ADMIN_IDS", "12,abc"},
		{"rate", "EXCHANGE_RATE", "lots"},
		{"zero rate", "EXCHANGE_RATE", "0"},
		{"bonus", "REFERRAL_BONUS", "ten"},
		{"negative bonus", "REFERRAL_BONUS", "-10"},
		{"interval", "MATURITY_CHECK_INTERVAL", "hourly"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
