// Package plan produces word packages from placement results and user
// word lists, and reconciles them with the scheduler's card pool.
package plan

import (
	"strings"
	"time"

	"github.com/example/vocabu/pkg/models"
)

// TodaySetSize caps how many words a fresh plan assigns to the first day.
const TodaySetSize = 10

// Goals captures the user's plan configuration.
type Goals struct {
	Context     string
	Style       string
	Pair        string
	Horizon     int // days: 30, 60 or 90
	Name        string
	ComfortMode bool
}

// Build assembles a plan from the placement outcome and any user-supplied
// words. Placement words come first, then user words; duplicates by
// term+translation are dropped. Returns false when there is nothing to
// build a plan from.
func Build(goals Goals, placement *models.PlacementResult, placementWords, userWords []models.VocabItem) (models.Plan, bool) {
	pool := dedupeWords(append(append([]models.VocabItem{}, placementWords...), userWords...))
	if len(pool) == 0 {
		return models.Plan{}, false
	}

	level := models.LevelB1
	if placement != nil && placement.Level != "" {
		level = placement.Level
	}
	rec := Recommend(level, goals.Horizon, goals.ComfortMode)

	today := pool
	if len(today) > TodaySetSize {
		today = today[:TodaySetSize]
	}

	return models.Plan{
		CreatedAt:      time.Now().UnixMilli(),
		Context:        goals.Context,
		Style:          goals.Style,
		Pair:           goals.Pair,
		Horizon:        goals.Horizon,
		Name:           goals.Name,
		Recommendation: rec,
		TodaySet:       today,
		Pool:           pool,
		ComfortMode:    goals.ComfortMode,
	}, true
}

// dedupeWords removes duplicates by lowercased term+translation,
// preserving first-seen order.
func dedupeWords(words []models.VocabItem) []models.VocabItem {
	seen := make(map[string]bool, len(words))
	out := make([]models.VocabItem, 0, len(words))
	for _, w := range words {
		key := strings.ToLower(w.Term) + "|" + strings.ToLower(w.Translation)
		if w.Term == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, w)
	}
	return out
}
