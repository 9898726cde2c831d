package srs

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/example/vocabu/internal/storage"
	"github.com/example/vocabu/pkg/models"
)

// CardStore is the slice of the durable store the scheduler persists
// its card map through.
type CardStore interface {
	GetJSON(key string, v interface{}) bool
	SetJSON(key string, v interface{})
}

// EventSink receives append-only review events.
type EventSink interface {
	Append(ev models.ReviewEvent) error
}

// Scheduler exclusively owns the card-state map: one CardState per
// vocabulary item, keyed by item id. Cards are updated one at a time by
// a single active session, so no locking is needed.
type Scheduler struct {
	store  CardStore
	events EventSink
	cards  map[string]models.CardState

	today func() models.Date // injectable for tests
}

// NewScheduler loads the persisted card map, falling back to an empty map
// when the stored value is absent or corrupt.
func NewScheduler(store CardStore, events EventSink) *Scheduler {
	s := &Scheduler{
		store:  store,
		events: events,
		cards:  make(map[string]models.CardState),
		today:  models.Today,
	}
	if !store.GetJSON(storage.KeyCards, &s.cards) || s.cards == nil {
		s.cards = make(map[string]models.CardState)
	}
	return s
}

// Seed creates card state for an item if none exists yet. Seeding is
// idempotent: an already-progressing card is never reset. Reports whether
// a new card was created.
func (s *Scheduler) Seed(itemID string) bool {
	if _, exists := s.cards[itemID]; exists {
		return false
	}
	s.cards[itemID] = NewCard(s.today())
	s.persist()
	return true
}

// SeedAll seeds every missing id and returns the number of cards created.
// The map is persisted once, after the whole batch.
func (s *Scheduler) SeedAll(itemIDs []string) int {
	created := 0
	for _, id := range itemIDs {
		if _, exists := s.cards[id]; exists {
			continue
		}
		s.cards[id] = NewCard(s.today())
		created++
	}
	if created > 0 {
		s.persist()
	}
	return created
}

// Get returns the card state for an item, if seeded.
func (s *Scheduler) Get(itemID string) (models.CardState, bool) {
	card, ok := s.cards[itemID]
	return card, ok
}

// Cards returns a copy of the card map for queue building.
func (s *Scheduler) Cards() map[string]models.CardState {
	out := make(map[string]models.CardState, len(s.cards))
	for id, card := range s.cards {
		out[id] = card
	}
	return out
}

// Size returns the number of seeded cards.
func (s *Scheduler) Size() int {
	return len(s.cards)
}

// Grade applies one review to the item's card, persists the map and
// appends a review event. Grading an unseeded item fails with ErrNotFound.
func (s *Scheduler) Grade(itemID string, grade Grade) (models.CardState, error) {
	card, ok := s.cards[itemID]
	if !ok {
		return models.CardState{}, fmt.Errorf("%w: %s", ErrNotFound, itemID)
	}

	next, err := Advance(card, grade, s.today())
	if err != nil {
		return models.CardState{}, err
	}

	s.cards[itemID] = next
	s.persist()

	ev := models.ReviewEvent{
		ID:         uuid.NewString(),
		ItemID:     itemID,
		Grade:      string(grade),
		ReviewedAt: time.Now(),
	}
	if err := s.events.Append(ev); err != nil {
		logrus.WithError(err).WithField("item", itemID).Warn("failed to record review event")
	}

	return next, nil
}

// persist writes the whole card map in one shot. Each logical operation
// follows read-compute-write; related fields are never split across
// writes.
func (s *Scheduler) persist() {
	s.store.SetJSON(storage.KeyCards, s.cards)
}
