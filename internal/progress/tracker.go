// Package progress maintains the per-day counter of distinct items
// reviewed against a daily target. The record rolls over lazily: the first
// read on a new local day replaces yesterday's record with a zeroed one.
package progress

import (
	"math"

	"github.com/example/vocabu/internal/storage"
	"github.com/example/vocabu/pkg/models"
)

// KV is the slice of the durable store the tracker persists through.
type KV interface {
	GetJSON(key string, v interface{}) bool
	SetJSON(key string, v interface{})
}

// Tracker exclusively owns the DailyProgress record. Persistence is
// best-effort: the in-memory record stays authoritative for the session
// even when writes fail.
type Tracker struct {
	store KV
	today func() models.Date
}

// NewTracker creates a tracker over the given store.
func NewTracker(store KV) *Tracker {
	return &Tracker{store: store, today: models.Today}
}

// ReadToday returns today's progress record. A stored record for any other
// date (or an absent/corrupt one) is replaced by a fresh zeroed record and
// persisted. The target is intentionally dropped on rollover; the caller
// re-sets it after syncing the plan.
func (t *Tracker) ReadToday() models.DailyProgress {
	today := t.today()

	var rec models.DailyProgress
	if t.store.GetJSON(storage.KeyProgress, &rec) && rec.Date == today {
		if rec.CountedIDs == nil {
			rec.CountedIDs = []string{}
		}
		return rec
	}

	fresh := models.NewDailyProgress(today)
	t.store.SetJSON(storage.KeyProgress, fresh)
	return fresh
}

// SetTarget updates today's daily quota, clamped to a non-negative whole
// number. Done and CountedIDs are untouched.
func (t *Tracker) SetTarget(n int) models.DailyProgress {
	rec := t.ReadToday()
	rec.Target = int(math.Max(0, math.Floor(float64(n))))
	t.store.SetJSON(storage.KeyProgress, rec)
	return rec
}

// Increment counts the item toward today's progress, at most once per item
// per calendar day. Repeated calls for the same item are no-ops that
// return the current record unchanged.
func (t *Tracker) Increment(itemID string) models.DailyProgress {
	rec := t.ReadToday()
	if itemID == "" || rec.Counted(itemID) {
		return rec
	}
	rec.CountedIDs = append(rec.CountedIDs, itemID)
	rec.Done++
	t.store.SetJSON(storage.KeyProgress, rec)
	return rec
}
