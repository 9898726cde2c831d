// Package session drives one review session at a time: queue building,
// card grading with daily-progress accounting, and progress snapshots for
// display.
package session

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/example/vocabu/internal/plan"
	"github.com/example/vocabu/internal/progress"
	"github.com/example/vocabu/internal/srs"
	"github.com/example/vocabu/internal/storage"
	"github.com/example/vocabu/pkg/models"
)

// Default session shape.
const (
	DefaultSessionLimit = 10
)

// ErrNoPlan is returned when a session is requested before any plan
// exists.
var ErrNoPlan = errors.New("session: no plan configured")

// Service wires the scheduling core together for the UI layer. A new plan
// enters through ApplyPlan, which reconciles it and notifies observers —
// there is no polling.
type Service struct {
	store   *storage.Store
	sched   *srs.Scheduler
	tracker *progress.Tracker
	syncer  *plan.Synchronizer
	log     *storage.ReviewLog

	SessionLimit int
	FallbackSize int

	planObservers []func(models.Plan)
}

// Snapshot is the progress summary shown on the dashboard
type Snapshot struct {
	Done             int
	Target           int
	DueCount         int
	TodayReviewCount int
	TotalReviewCount int
}

// Feedback describes the outcome of grading one card
type Feedback struct {
	ItemID          string
	NewDue          models.Date
	NewIntervalDays int
	// FirstTouchHint is the advertised delay for a card's very first
	// review; zero for later reviews.
	FirstTouchHint time.Duration
	Progress       models.DailyProgress
}

// New creates the session service over the given collaborators.
func New(store *storage.Store, sched *srs.Scheduler, tracker *progress.Tracker, syncer *plan.Synchronizer, log *storage.ReviewLog) *Service {
	return &Service{
		store:        store,
		sched:        sched,
		tracker:      tracker,
		syncer:       syncer,
		log:          log,
		SessionLimit: DefaultSessionLimit,
		FallbackSize: srs.DefaultFallbackSize,
	}
}

// OnPlanChanged registers a callback invoked whenever a new plan is
// applied.
func (s *Service) OnPlanChanged(fn func(models.Plan)) {
	s.planObservers = append(s.planObservers, fn)
}

// ApplyPlan persists the plan, reconciles the card pool and daily target,
// and notifies observers.
func (s *Service) ApplyPlan(p models.Plan) plan.SyncResult {
	res := s.syncer.SavePlan(p)
	for _, fn := range s.planObservers {
		fn(p)
	}
	return res
}

// Plan returns the current plan, if one exists.
func (s *Service) Plan() (models.Plan, bool) {
	return s.syncer.LoadPlan()
}

// Resync re-reconciles the stored plan with the card pool. Idempotent on
// an unchanged plan.
func (s *Service) Resync() {
	if p, ok := s.syncer.LoadPlan(); ok {
		s.syncer.Sync(p)
	}
}

// StartReview builds the working set for a review session from the
// current plan. The session consumes the queue strictly in order; a graded
// card does not reappear within the same session.
func (s *Service) StartReview() (*Review, error) {
	p, ok := s.syncer.LoadPlan()
	if !ok {
		return nil, ErrNoPlan
	}
	res := s.syncer.Sync(p) // guarantee seeding before grading

	queue := srs.BuildDueQueue(res.PoolOrder, s.sched.Cards(), models.Today(), s.FallbackSize)
	if s.SessionLimit > 0 && len(queue.Items) > s.SessionLimit {
		queue.Items = queue.Items[:s.SessionLimit]
	}

	terms := make(map[string]models.VocabItem, len(p.Pool))
	for _, w := range append(append([]models.VocabItem{}, p.TodaySet...), p.Pool...) {
		if _, ok := terms[w.ID]; !ok {
			terms[w.ID] = w
		}
	}

	return &Review{svc: s, queue: queue, words: terms, comfort: p.ComfortMode}, nil
}

// DueCount returns how many cards in the current plan's pool are due
// today.
func (s *Service) DueCount() int {
	p, ok := s.syncer.LoadPlan()
	if !ok {
		return 0
	}
	cards := s.sched.Cards()
	today := models.Today()
	n := 0
	for _, id := range plan.PoolOrder(p) {
		if card, ok := cards[id]; ok && card.DueOn(today) {
			n++
		}
	}
	return n
}

// Snapshot assembles the progress dashboard numbers. Review-history
// counts degrade to zero when the log is unreadable.
func (s *Service) Snapshot() Snapshot {
	rec := s.tracker.ReadToday()
	snap := Snapshot{
		Done:     rec.Done,
		Target:   rec.Target,
		DueCount: s.DueCount(),
	}
	if n, err := s.log.CountOn(models.Today()); err == nil {
		snap.TodayReviewCount = n
	} else {
		logrus.WithError(err).Warn("failed to count today's reviews")
	}
	if n, err := s.log.Count(); err == nil {
		snap.TotalReviewCount = n
	} else {
		logrus.WithError(err).Warn("failed to count review history")
	}
	return snap
}

// SetUIStep persists the last screen the user was on.
func (s *Service) SetUIStep(step string) {
	s.store.Set(storage.KeyUIStep, step)
}

// UIStep returns the persisted last screen, if any.
func (s *Service) UIStep() (string, bool) {
	return s.store.Get(storage.KeyUIStep)
}

// Reset wipes all persisted state: plan, cards, progress, history and UI
// position. The nuclear restart behind the top-level recovery notice.
func (s *Service) Reset() error {
	return s.store.Reset()
}

// Review is one in-flight review session
type Review struct {
	svc     *Service
	queue   srs.Queue
	words   map[string]models.VocabItem
	comfort bool
	idx     int
}

// Fallback reports whether the session shows upcoming words because
// nothing was due.
func (r *Review) Fallback() bool {
	return r.queue.Fallback
}

// Len returns the total session size.
func (r *Review) Len() int {
	return len(r.queue.Items)
}

// Position returns the 1-based index of the current card.
func (r *Review) Position() int {
	if r.idx >= len(r.queue.Items) {
		return len(r.queue.Items)
	}
	return r.idx + 1
}

// Current returns the word under review.
func (r *Review) Current() (models.VocabItem, bool) {
	if r.idx >= len(r.queue.Items) {
		return models.VocabItem{}, false
	}
	id := r.queue.Items[r.idx]
	if w, ok := r.words[id]; ok {
		return w, true
	}
	return models.VocabItem{ID: id, Term: id}, true
}

// Done reports whether the session is exhausted.
func (r *Review) Done() bool {
	return r.idx >= len(r.queue.Items)
}

// Grade applies the grade to the current card, counts it toward daily
// progress (at most once per item per day) and advances the session.
func (r *Review) Grade(grade srs.Grade) (Feedback, error) {
	word, ok := r.Current()
	if !ok {
		return Feedback{}, srs.ErrNotFound
	}
	// reject invalid input before any state changes
	if !grade.Valid() {
		return Feedback{}, srs.ErrInvalidGrade
	}
	card, seeded := r.svc.sched.Get(word.ID)
	if !seeded {
		return Feedback{}, srs.ErrNotFound
	}
	firstTouch := card.Repetitions == 0

	rec := r.svc.tracker.Increment(word.ID)

	next, err := r.svc.sched.Grade(word.ID, grade)
	if err != nil {
		return Feedback{}, err
	}
	r.idx++

	fb := Feedback{
		ItemID:          word.ID,
		NewDue:          next.Due,
		NewIntervalDays: next.IntervalDays,
		Progress:        rec,
	}
	if firstTouch {
		fb.FirstTouchHint = srs.FirstTouchDelay(grade, r.comfort)
	}
	return fb, nil
}
