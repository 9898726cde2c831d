package storage

import (
	"fmt"

	"github.com/example/vocabu/pkg/models"
)

// ReviewLog handles database operations for the append-only review history
type ReviewLog struct {
	s *Store
}

// NewReviewLog creates a new repository instance over the given store
func NewReviewLog(s *Store) *ReviewLog {
	return &ReviewLog{s: s}
}

// Append inserts a new review event. Events are never updated.
func (r *ReviewLog) Append(ev models.ReviewEvent) error {
	_, err := r.s.db.Exec(
		"INSERT INTO review_events (id, item_id, grade, reviewed_at) VALUES ($1, $2, $3, $4)",
		ev.ID, ev.ItemID, ev.Grade, ev.ReviewedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append review event: %v", err)
	}
	return nil
}

// All returns the full history in review order.
func (r *ReviewLog) All() ([]models.ReviewEvent, error) {
	var events []models.ReviewEvent
	err := r.s.db.Select(&events, "SELECT * FROM review_events ORDER BY reviewed_at ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to load review events: %v", err)
	}
	return events, nil
}

// Count returns the total number of recorded reviews.
func (r *ReviewLog) Count() (int, error) {
	var n int
	if err := r.s.db.Get(&n, "SELECT COUNT(*) FROM review_events"); err != nil {
		return 0, fmt.Errorf("failed to count review events: %v", err)
	}
	return n, nil
}

// CountOn returns the number of reviews recorded on the given calendar day.
func (r *ReviewLog) CountOn(date models.Date) (int, error) {
	// Day extraction differs between drivers
	var query string
	if r.s.driver == "sqlite3" {
		query = "SELECT COUNT(*) FROM review_events WHERE date(reviewed_at) = $1"
	} else {
		query = "SELECT COUNT(*) FROM review_events WHERE reviewed_at::date = $1::date"
	}
	var n int
	if err := r.s.db.Get(&n, query, string(date)); err != nil {
		return 0, fmt.Errorf("failed to count review events: %v", err)
	}
	return n, nil
}
