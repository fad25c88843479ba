package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/drezniev/lol-game-spy/internal/bot"
	"github.com/drezniev/lol-game-spy/internal/config"
	"github.com/drezniev/lol-game-spy/internal/roster"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	slog.Info("Starting lol-game-spy")

	// Reconstruct the roster from the working snapshot
	store := loadRoster(cfg)

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create and start the bot
	b, err := bot.New(cfg, store)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	if err := b.Start(ctx); err != nil {
		slog.Error("Failed to start bot", "error", err)
		os.Exit(1)
	}

	// Start the snapshot scheduler
	scheduler, err := roster.NewScheduler(store, cfg.DatabasePath, cfg.BackupPath, cfg.SaveInterval, cfg.BackupInterval)
	if err != nil {
		slog.Error("Failed to create snapshot scheduler", "error", err)
		os.Exit(1)
	}
	scheduler.Start()

	slog.Info("Bot is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	slog.Info("Shutting down...")
	cancel()

	scheduler.Stop()
	if err := b.Stop(); err != nil {
		slog.Error("Error during shutdown", "error", err)
	}

	// One last working snapshot so nothing since the previous flush is lost.
	if err := store.Save(cfg.DatabasePath); err != nil {
		slog.Error("Final roster snapshot failed", "error", err)
	}

	slog.Info("Bot stopped")
}

// loadRoster reconstructs the store from the working snapshot. A missing file
// is a fresh start. A corrupt file is fatal only under ROSTER_STRICT_LOAD;
// otherwise the bot starts with an empty roster and logs the condition.
func loadRoster(cfg *config.Config) *roster.Store {
	store, err := roster.Load(cfg.DatabasePath)
	if err == nil {
		slog.Info("Roster loaded", "path", cfg.DatabasePath)
		return store
	}
	if os.IsNotExist(err) {
		slog.Info("No roster snapshot found, starting fresh", "path", cfg.DatabasePath)
		return roster.NewStore()
	}
	if cfg.StrictLoad {
		slog.Error("Failed to load roster", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}
	slog.Error("Failed to load roster, starting with an empty one", "path", cfg.DatabasePath, "error", err)
	return roster.NewStore()
}

func setupLogging(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
