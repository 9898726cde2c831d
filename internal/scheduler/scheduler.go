// Package scheduler runs the periodic due-word reminder.
package scheduler

import (
	"os"
	"strconv"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// Default reminder window (local hours).
const (
	DefaultStartHour = 9
	DefaultEndHour   = 21
)

// DueCounter reports how many cards are currently due.
type DueCounter interface {
	DueCount() int
}

// Notifier delivers a reminder about due words.
type Notifier interface {
	SendReminder(count int) error
}

// Reminder checks hourly for due cards and notifies inside the configured
// window.
type Reminder struct {
	scheduler *gocron.Scheduler
	due       DueCounter
	notifier  Notifier
	startHour int
	endHour   int
}

// New creates a reminder with the window taken from REMINDER_START_HOUR
// and REMINDER_END_HOUR, falling back to the defaults.
func New(due DueCounter, notifier Notifier) *Reminder {
	return &Reminder{
		scheduler: gocron.NewScheduler(time.Local),
		due:       due,
		notifier:  notifier,
		startHour: hourFromEnv("REMINDER_START_HOUR", DefaultStartHour),
		endHour:   hourFromEnv("REMINDER_END_HOUR", DefaultEndHour),
	}
}

// Start begins the hourly check in the background.
func (r *Reminder) Start() {
	r.scheduler.Every(1).Hour().Do(r.check)
	r.scheduler.StartAsync()
}

// Stop terminates the scheduled checks.
func (r *Reminder) Stop() {
	r.scheduler.Stop()
}

// RunManualCheck forces a reminder check regardless of the window.
func (r *Reminder) RunManualCheck() error {
	if count := r.due.DueCount(); count > 0 {
		return r.notifier.SendReminder(count)
	}
	return nil
}

func (r *Reminder) check() {
	hour := time.Now().Hour()
	if hour < r.startHour || hour > r.endHour {
		logrus.WithFields(logrus.Fields{
			"hour":  hour,
			"start": r.startHour,
			"end":   r.endHour,
		}).Debug("outside reminder window, skipping")
		return
	}

	count := r.due.DueCount()
	if count == 0 {
		return
	}
	if err := r.notifier.SendReminder(count); err != nil {
		logrus.WithError(err).Warn("failed to send reminder")
	}
}

func hourFromEnv(name string, fallback int) int {
	if raw := os.Getenv(name); raw != "" {
		if h, err := strconv.Atoi(raw); err == nil && h >= 0 && h <= 23 {
			return h
		}
	}
	return fallback
}
