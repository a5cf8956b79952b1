package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	tele "gopkg.in/telebot.v4"

	"github.com/themonkeyd/devmeetingbot/internal/config"
	"github.com/themonkeyd/devmeetingbot/internal/domain/service"
	"github.com/themonkeyd/devmeetingbot/internal/handlers"
	"github.com/themonkeyd/devmeetingbot/internal/scheduler"
	"github.com/themonkeyd/devmeetingbot/internal/storage"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, loc, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	} else {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, keeping default")
	}

	store, err := storage.Open(storage.Config{
		Driver:       cfg.StorageDriver,
		DataFile:     cfg.DataFile,
		DatabasePath: cfg.DatabasePath,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open state storage")
	}
	defer store.Close()

	services, err := service.New(store, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize rotation service")
	}

	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.TelegramToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create telegram bot")
	}

	handler := handlers.New(bot, services.Rotation, cfg.GroupChatID, loc, log)
	handler.Register()

	sched := scheduler.New(
		scheduler.Config{Day: cfg.AnnouncementDay, Hour: cfg.AnnouncementHour},
		handler, loc, log,
	)
	if err := sched.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start scheduler")
	}
	defer sched.Stop()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info().Msg("shutting down")
		bot.Stop()
	}()

	log.Info().Str("timezone", loc.String()).Str("storage", cfg.StorageDriver).Msg("bot started")
	bot.Start()
}
