package srs

import (
	"math"

	"github.com/example/vocabu/pkg/models"
)

// SM-2 parameters.
const (
	// DefaultEaseFactor is the ease assigned to a freshly seeded card.
	DefaultEaseFactor = 2.5
	// MinEaseFactor is the floor below which ease never drops.
	MinEaseFactor = 1.3

	firstInterval  = 1 // days after the first successful review
	secondInterval = 6 // days after the second successful review
)

// NewCard returns the scheduling state for a freshly seeded item: due
// immediately, no history.
func NewCard(today models.Date) models.CardState {
	return models.CardState{
		EaseFactor:   DefaultEaseFactor,
		Repetitions:  0,
		IntervalDays: 0,
		Due:          today,
	}
}

// Advance applies one review to a card and returns the updated state.
// It is a pure function: no card interacts with any other card.
//
// The ease factor is updated first and the new value drives interval
// growth. Again resets the repetition streak and schedules a retry
// tomorrow, so a card graded Again never re-qualifies within the same
// session.
func Advance(card models.CardState, grade Grade, today models.Date) (models.CardState, error) {
	if !grade.Valid() {
		return card, ErrInvalidGrade
	}

	next := card
	next.EaseFactor = nextEase(card.EaseFactor, grade.Quality())

	if grade == GradeAgain {
		next.Repetitions = 0
		next.IntervalDays = 1
	} else {
		switch card.Repetitions {
		case 0:
			next.IntervalDays = firstInterval
		case 1:
			next.IntervalDays = secondInterval
		default:
			next.IntervalDays = roundHalfUp(float64(card.IntervalDays) * next.EaseFactor)
		}
		next.Repetitions = card.Repetitions + 1
	}

	next.Due = today.AddDays(next.IntervalDays)
	return next, nil
}

// nextEase applies the SM-2 ease update for quality q, clamped at the floor.
func nextEase(ef float64, q int) float64 {
	d := float64(5 - q)
	ef += 0.1 - d*(0.08+d*0.02)
	if ef < MinEaseFactor {
		ef = MinEaseFactor
	}
	return ef
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
