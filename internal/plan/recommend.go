package plan

import (
	"math"

	"github.com/example/vocabu/pkg/models"
)

// Recommend derives the suggested learning pace from the placement level
// and the plan horizon. Comfort mode narrows the pace to a gentle 5..8
// words per day.
func Recommend(level string, horizonDays int, comfort bool) models.Recommendation {
	var base float64
	switch level {
	case models.LevelA2:
		base = 8
	case models.LevelB2:
		base = 16
	default:
		base = 12 // B1 when the placement quiz was skipped
	}

	factor := 1.0
	switch horizonDays {
	case 30:
		factor = 1.2
	case 90:
		factor = 0.85
	}

	perDay := int(math.Floor(base*factor + 0.5))
	if perDay < 5 {
		perDay = 5
	}
	if comfort && perDay > 8 {
		perDay = 8
	}

	return models.Recommendation{
		PerDay:  perDay,
		PerWeek: perDay * 7,
		Total:   perDay * horizonDays,
	}
}
