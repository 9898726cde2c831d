package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/example/vocabu/internal/bot"
	"github.com/example/vocabu/internal/export"
	"github.com/example/vocabu/internal/plan"
	"github.com/example/vocabu/internal/progress"
	"github.com/example/vocabu/internal/scheduler"
	"github.com/example/vocabu/internal/session"
	"github.com/example/vocabu/internal/srs"
	"github.com/example/vocabu/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using environment as-is")
	}

	if os.Getenv("LOG_LEVEL") == "debug" {
		logrus.SetLevel(logrus.DebugLevel)
	}

	store, err := storage.Open(storage.ConfigFromEnv())
	if err != nil {
		logrus.WithError(err).Fatal("failed to open storage")
	}
	defer store.Close()

	reviewLog := storage.NewReviewLog(store)
	sched := srs.NewScheduler(store, reviewLog)
	tracker := progress.NewTracker(store)
	syncer := plan.NewSynchronizer(store, sched, tracker)
	svc := session.New(store, sched, tracker, syncer, reviewLog)
	exporter := export.New(store, reviewLog)

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		logrus.Fatal("TELEGRAM_BOT_TOKEN environment variable is not set")
	}

	b, err := bot.New(token, svc, exporter)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create bot")
	}

	reminder := scheduler.New(svc, b)
	reminder.Start()
	defer reminder.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logrus.WithField("signal", sig.String()).Info("shutting down")
		b.Stop()
	}()

	logrus.Info("bot starting, press Ctrl+C to stop")
	if err := b.Start(); err != nil {
		logrus.WithError(err).Fatal("bot terminated")
	}
	logrus.Info("stopped")
}
