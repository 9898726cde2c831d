package srs

import "github.com/example/vocabu/pkg/models"

// DefaultFallbackSize bounds how many not-yet-due items a session may
// surface when nothing is due.
const DefaultFallbackSize = 5

// Queue is the ordered working set for one review session. Fallback marks
// a queue assembled from not-yet-due items because nothing was due; the
// caller may present it differently ("nothing due, here are upcoming
// words") but the scheduling semantics are identical.
type Queue struct {
	Items    []string
	Fallback bool
}

// BuildDueQueue filters the pool down to items due on or before today,
// preserving pool order. Items without seeded card state are not due.
// When the due set is empty and the pool is not, a bounded prefix of the
// pool is returned instead so a session is never empty while words exist.
func BuildDueQueue(pool []string, cards map[string]models.CardState, today models.Date, fallbackSize int) Queue {
	due := make([]string, 0, len(pool))
	for _, id := range pool {
		card, ok := cards[id]
		if !ok {
			continue
		}
		if card.DueOn(today) {
			due = append(due, id)
		}
	}
	if len(due) > 0 || len(pool) == 0 {
		return Queue{Items: due}
	}

	if fallbackSize <= 0 {
		fallbackSize = DefaultFallbackSize
	}
	if fallbackSize > len(pool) {
		fallbackSize = len(pool)
	}
	items := make([]string, fallbackSize)
	copy(items, pool[:fallbackSize])
	return Queue{Items: items, Fallback: true}
}
