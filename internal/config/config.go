// Package config loads the process configuration into an explicit struct:
// .env file first (non-fatal if absent), then environment variables via
// envconfig. Nothing else in the program reads the environment.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/yourusername/streak-guardian/internal/models"
	"go.uber.org/zap"
)

// ConfigError reports a missing required credential or an invalid value.
type ConfigError struct {
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("config: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

type Config struct {
	// Credentials. Opaque strings passed through to the collaborators.
	ApeKey           string `envconfig:"APE_KEY" required:"true"`
	TelegramBotToken string `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`
	TelegramChatID   int64  `envconfig:"TELEGRAM_CHAT_ID" required:"true"`

	// ReminderOverride forces a category for manual runs. Empty or "current"
	// keeps the time-derived resolution.
	ReminderOverride string `envconfig:"REMINDER_OVERRIDE"`

	// History storage. DatabaseDSN switches from the JSON file to Postgres.
	HistoryFile   string `envconfig:"HISTORY_FILE" default:"streak-history.json"`
	DatabaseDSN   string `envconfig:"DATABASE_DSN"`
	MigrationsDir string `envconfig:"MIGRATIONS_DIR" default:"migrations"`

	// StrictExit makes a failed run exit non-zero after the error
	// notification. Off by default: historically the job reported failures
	// to the chat and still exited 0.
	StrictExit bool `envconfig:"STRICT_EXIT" default:"false"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		zap.S().Debug("load .env file", zap.Error(err))
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, &ConfigError{Message: "process environment", Err: err}
	}

	if err := validateOverride(cfg.ReminderOverride); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validateOverride(override string) error {
	switch models.TimeSlotCategory(override) {
	case "", "current",
		models.CategoryMorning, models.CategoryMidday, models.CategoryAfternoon,
		models.CategoryEvening, models.CategoryFinalWarning,
		models.CategoryWeeklyReport, models.CategoryGeneric:
		return nil
	default:
		return &ConfigError{Message: fmt.Sprintf("unknown REMINDER_OVERRIDE value %q", override)}
	}
}
