package srs

import (
	"errors"
	"strings"
)

// Errors returned by the scheduling core.
var (
	// ErrInvalidGrade marks a grade outside the Again/Hard/Good/Easy set.
	// It is fatal to the operation, never silently coerced.
	ErrInvalidGrade = errors.New("srs: invalid grade")
	// ErrNotFound marks an attempt to grade an item with no seeded card
	// state. The synchronizer must seed before any session runs.
	ErrNotFound = errors.New("srs: no card state for item")
)

// Grade is the user-supplied recall-quality signal for one review
type Grade string

const (
	GradeAgain Grade = "again"
	GradeHard  Grade = "hard"
	GradeGood  Grade = "good"
	GradeEasy  Grade = "easy"
)

// ParseGrade converts user input into a Grade, case-insensitively.
func ParseGrade(s string) (Grade, error) {
	switch Grade(strings.ToLower(strings.TrimSpace(s))) {
	case GradeAgain:
		return GradeAgain, nil
	case GradeHard:
		return GradeHard, nil
	case GradeGood:
		return GradeGood, nil
	case GradeEasy:
		return GradeEasy, nil
	}
	return "", ErrInvalidGrade
}

// Valid reports whether g is one of the four known grades.
func (g Grade) Valid() bool {
	switch g {
	case GradeAgain, GradeHard, GradeGood, GradeEasy:
		return true
	}
	return false
}

// Quality maps the grade onto the SM-2 quality scale used by the ease
// update. Again counts as quality 2: a failed recall still lowers the
// ease factor.
func (g Grade) Quality() int {
	switch g {
	case GradeAgain:
		return 2
	case GradeHard:
		return 3
	case GradeGood:
		return 4
	case GradeEasy:
		return 5
	}
	return 0
}

// Label returns the display form of the grade.
func (g Grade) Label() string {
	if g == "" {
		return ""
	}
	return strings.ToUpper(string(g[:1])) + string(g[1:])
}
