package config

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	AdminIDs      []int64
	ExchangeRate  decimal.Decimal
	ReferralBonus decimal.Decimal
	HTTPPort      string
	LogLevel      string
	Env           string
	MaturityCheck time.Duration
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("ADMIN_IDS", "")
	v.SetDefault("EXCHANGE_RATE", "57.5")
	v.SetDefault("REFERRAL_BONUS", "10")
	v.SetDefault("HTTP_PORT", "10000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("MATURITY_CHECK_INTERVAL", "1h")

	admins, err := parseIDs(v.GetString("ADMIN_IDS"))
	if err != nil {
		return nil, fmt.Errorf("ADMIN_IDS: %w", err)
	}
	rate, err := decimal.NewFromString(v.GetString("EXCHANGE_RATE"))
	if err != nil {
		return nil, fmt.Errorf("EXCHANGE_RATE: %w", err)
	}
	if !rate.IsPositive() {
		return nil, fmt.Errorf("EXCHANGE_RATE must be positive, got %s", rate)
	}
	bonus, err := decimal.NewFromString(v.GetString("REFERRAL_BONUS"))
	if err != nil {
		return nil, fmt.Errorf("REFERRAL_BONUS: %w", err)
	}
	if bonus.IsNegative() {
		return nil, fmt.Errorf("REFERRAL_BONUS must not be negative, got %s", bonus)
	}

	interval, err := time.ParseDuration(v.GetString("MATURITY_CHECK_INTERVAL"))
	if err != nil || interval <= 0 {
		return nil, fmt.Errorf("MATURITY_CHECK_INTERVAL: invalid duration %q", v.GetString("MATURITY_CHECK_INTERVAL"))
	}

	return &Config{
		AdminIDs:      admins,
		ExchangeRate:  rate,
		ReferralBonus: bonus,
		HTTPPort:      v.GetString("HTTP_PORT"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		Env:           v.GetString("APP_ENV"),
		MaturityCheck: interval,
	}, nil
}

// parseIDs reads a comma-separated list of chat ids. Blank entries are skipped.
func parseIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
