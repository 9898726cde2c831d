package plan

import (
	"github.com/sirupsen/logrus"

	"github.com/example/vocabu/internal/progress"
	"github.com/example/vocabu/internal/srs"
	"github.com/example/vocabu/internal/storage"
	"github.com/example/vocabu/pkg/models"
)

// KV is the slice of the durable store the synchronizer persists the plan
// through.
type KV interface {
	GetJSON(key string, v interface{}) bool
	SetJSON(key string, v interface{})
}

// SyncResult summarizes one reconciliation pass.
type SyncResult struct {
	PoolOrder []string // deduped item ids, todaySet first, first-seen order
	Seeded    int      // newly created card states
	Target    int      // daily target applied to the progress tracker
}

// Synchronizer reconciles an externally produced plan with the
// scheduler's card pool. Each pass is a single read-merge-write: new items
// are seeded, existing card states are never removed even when a plan
// edit drops their words, and the daily target is recomputed.
type Synchronizer struct {
	store   KV
	sched   *srs.Scheduler
	tracker *progress.Tracker
}

// NewSynchronizer wires the synchronizer to its collaborators.
func NewSynchronizer(store KV, sched *srs.Scheduler, tracker *progress.Tracker) *Synchronizer {
	return &Synchronizer{store: store, sched: sched, tracker: tracker}
}

// LoadPlan returns the persisted plan, if any. A corrupt plan reads as
// absent.
func (s *Synchronizer) LoadPlan() (models.Plan, bool) {
	var p models.Plan
	if !s.store.GetJSON(storage.KeyPlan, &p) || p.CreatedAt == 0 {
		return models.Plan{}, false
	}
	return p, true
}

// SavePlan persists the plan and immediately reconciles it.
func (s *Synchronizer) SavePlan(p models.Plan) SyncResult {
	s.store.SetJSON(storage.KeyPlan, p)
	return s.Sync(p)
}

// Sync seeds card state for every plan word not yet known to the scheduler
// and recomputes the daily target. Safe to call repeatedly on an unchanged
// plan: no duplicate seeding, no target churn.
func (s *Synchronizer) Sync(p models.Plan) SyncResult {
	order := PoolOrder(p)
	seeded := s.sched.SeedAll(order)

	target := p.Recommendation.PerDay
	if target <= 0 {
		target = len(p.TodaySet)
	}
	s.tracker.SetTarget(target)

	if seeded > 0 {
		logrus.WithFields(logrus.Fields{
			"seeded": seeded,
			"target": target,
		}).Info("plan synced into card pool")
	}

	return SyncResult{PoolOrder: order, Seeded: seeded, Target: target}
}

// PoolOrder returns the plan's item ids with todaySet first, then the
// pool, deduplicated in first-seen order. This ordering is what due-queue
// building preserves.
func PoolOrder(p models.Plan) []string {
	seen := make(map[string]bool, len(p.Pool)+len(p.TodaySet))
	order := make([]string, 0, len(p.Pool)+len(p.TodaySet))
	add := func(items []models.VocabItem) {
		for _, w := range items {
			if w.ID == "" || seen[w.ID] {
				continue
			}
			seen[w.ID] = true
			order = append(order, w.ID)
		}
	}
	add(p.TodaySet)
	add(p.Pool)
	return order
}
