package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sandovabarbora/articles-checker/internal/config"
	"github.com/sandovabarbora/articles-checker/internal/feeds"
	"github.com/sandovabarbora/articles-checker/internal/logging"
	"github.com/sandovabarbora/articles-checker/internal/monitor"
	"github.com/sandovabarbora/articles-checker/internal/notifier"
	"github.com/sandovabarbora/articles-checker/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel, cfg.LogFile)

	store := storage.NewFileStore(cfg.StatePath)
	email := notifier.NewEmail(cfg.EmailSender, cfg.EmailPassword, cfg.EmailReceiver, cfg.SMTPHost, cfg.SMTPPort, log)
	mon := monitor.New(feeds.Default(), store, email, cfg.TitleFilters, log)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("starting journal monitor")

	if err := mon.Run(ctx); err != nil {
		log.Error("run failed", "error", err)
		os.Exit(1)
	}

	log.Info("journal monitor completed successfully")
}
