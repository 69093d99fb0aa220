package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Log       LogConfig
	Stock     StockConfig
	Reporting ReportingConfig
}

// LogConfig holds event-log related options.
type LogConfig struct {
	EventLogPath string
}

// StockConfig holds the stock-level policy knobs.
type StockConfig struct {
	LowThreshold      int
	HighThreshold     int
	ReplenishQuantity int
	AllowNegative     bool
}

// ReportingConfig holds settings for the optional read-only reporting
// database and the scheduled stock audit. An empty DatabasePath disables
// both.
type ReportingConfig struct {
	DatabasePath      string
	AuditCronSchedule string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	low, err := getenvInt("STOCK_LOW_THRESHOLD", 5)
	if err != nil {
		return nil, err
	}
	high, err := getenvInt("STOCK_HIGH_THRESHOLD", 20)
	if err != nil {
		return nil, err
	}
	replenish, err := getenvInt("STOCK_REPLENISH_QUANTITY", 10)
	if err != nil {
		return nil, err
	}
	allowNegative, err := getenvBool("STOCK_ALLOW_NEGATIVE", true)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Log: LogConfig{
			EventLogPath: getenvWithDefault("EVENT_LOG_PATH", "inventory.log"),
		},
		Stock: StockConfig{
			LowThreshold:      low,
			HighThreshold:     high,
			ReplenishQuantity: replenish,
			AllowNegative:     allowNegative,
		},
		Reporting: ReportingConfig{
			DatabasePath:      os.Getenv("REPORT_DB_PATH"),
			AuditCronSchedule: getenvWithDefault("AUDIT_CRON_SCHEDULE", "0 20 * * *"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are coherent.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Log.EventLogPath == "" {
		return errors.New("EVENT_LOG_PATH must not be empty")
	}

	if c.Stock.LowThreshold > c.Stock.HighThreshold {
		return fmt.Errorf("STOCK_LOW_THRESHOLD (%d) must not exceed STOCK_HIGH_THRESHOLD (%d)",
			c.Stock.LowThreshold, c.Stock.HighThreshold)
	}

	if c.Stock.ReplenishQuantity <= 0 {
		return errors.New("STOCK_REPLENISH_QUANTITY must be positive")
	}

	if c.Reporting.DatabasePath != "" && c.Reporting.AuditCronSchedule == "" {
		return errors.New("AUDIT_CRON_SCHEDULE must be provided when REPORT_DB_PATH is set")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q: %w", key, value, err)
	}
	return parsed, nil
}

func getenvBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q: %w", key, value, err)
	}
	return parsed, nil
}
