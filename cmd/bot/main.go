package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ilo80/esiee-plus-bot/internal/ade"
	"github.com/ilo80/esiee-plus-bot/internal/application"
	"github.com/ilo80/esiee-plus-bot/internal/config"
	"github.com/ilo80/esiee-plus-bot/internal/discord"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A .env file is a development convenience; production injects the
	// environment directly.
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file loaded", "reason", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	timetables := newTimetableOpener(cfg)
	service := application.NewAvailabilityServiceWithLogger(
		timetables,
		nil, // query IDs default to uuids
		time.Now,
		application.Policy{DayCutoff: cfg.DayCutoff, MinYear: cfg.MinYear, MaxYear: cfg.MaxYear},
		logger,
	)

	bot, err := discord.New(discord.Options{
		Token:   cfg.DiscordToken,
		GuildID: cfg.DiscordGuildID,
		Queries: service,
		Now:     time.Now,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("failed to build the bot", "error", err)
		os.Exit(1)
	}

	if err := bot.Start(); err != nil {
		logger.Error("failed to connect to the gateway", "error", err)
		os.Exit(1)
	}
	logger.Info("bot started", "guild_id", cfg.DiscordGuildID)

	<-ctx.Done()
	logger.Info("shutting down")

	if err := bot.Close(); err != nil {
		logger.Error("failed to close the gateway session", "error", err)
		os.Exit(1)
	}
}

// timetableOpener adapts the concrete ADE client to the session interface the
// application consumes, keeping the orchestrator free of network types.
type timetableOpener struct {
	client *ade.Client
}

func newTimetableOpener(cfg config.Config) timetableOpener {
	credentials := ade.Credentials{Username: cfg.ADEUsername, Password: cfg.ADEPassword}
	return timetableOpener{client: ade.NewClient(cfg.ADEBaseURL, credentials, nil)}
}

func (o timetableOpener) Open(ctx context.Context) (application.TimetableSession, error) {
	return o.client.Open(ctx)
}
