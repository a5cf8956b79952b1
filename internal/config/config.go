package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string `env:"TELEGRAM_TOKEN,required,notEmpty"`
	GroupChatID   int64  `env:"GROUP_CHAT_ID,required,notEmpty"`
	Timezone      string `env:"TIMEZONE" envDefault:"Africa/Douala"`

	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"json"`
	DataFile      string `env:"DATA_FILE" envDefault:"./meetings.json"`
	DatabasePath  string `env:"DATABASE_PATH" envDefault:"./meetings.db"`

	// Day of month and local hour of the monthly announcement.
	AnnouncementDay  int `env:"ANNOUNCEMENT_DAY" envDefault:"1"`
	AnnouncementHour int `env:"ANNOUNCEMENT_HOUR" envDefault:"8"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads .env (when present) and the environment, then validates the
// result. The parsed timezone is also returned so callers never re-parse it.
func Load() (*Config, *time.Location, error) {
	// A missing .env is fine in production, where the environment is set
	// by the process manager.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}

	// Day 29+ would silently skip short months.
	if cfg.AnnouncementDay < 1 || cfg.AnnouncementDay > 28 {
		return nil, nil, fmt.Errorf("ANNOUNCEMENT_DAY must be between 1 and 28, got %d", cfg.AnnouncementDay)
	}
	if cfg.AnnouncementHour < 0 || cfg.AnnouncementHour > 23 {
		return nil, nil, fmt.Errorf("ANNOUNCEMENT_HOUR must be between 0 and 23, got %d", cfg.AnnouncementHour)
	}

	return &cfg, loc, nil
}
