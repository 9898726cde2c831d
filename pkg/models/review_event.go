package models

import "time"

// ReviewEvent is one entry of the append-only review history. Events are
// never mutated or removed except by a full reset.
type ReviewEvent struct {
	ID         string    `json:"id" db:"id"`
	ItemID     string    `json:"item_id" db:"item_id"`
	Grade      string    `json:"grade" db:"grade"`
	ReviewedAt time.Time `json:"reviewed_at" db:"reviewed_at"`
}
