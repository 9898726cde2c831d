package srs

import "time"

// First-touch review delays shown to the user when a card is reviewed for
// the very first time. Comfort mode softens the steps. These presets are a
// presentation hint only: the persisted due dates always come from the
// SM-2 update in Advance.
var (
	standardFirstTouch = map[Grade]time.Duration{
		GradeAgain: 10 * time.Minute,
		GradeHard:  24 * time.Hour,
		GradeGood:  3 * 24 * time.Hour,
		GradeEasy:  7 * 24 * time.Hour,
	}
	comfortFirstTouch = map[Grade]time.Duration{
		GradeAgain: 15 * time.Minute,
		GradeHard:  12 * time.Hour,
		GradeGood:  2 * 24 * time.Hour,
		GradeEasy:  5 * 24 * time.Hour,
	}
)

// FirstTouchDelay returns the advertised delay until the next encounter
// for a card's first review under the given grade.
func FirstTouchDelay(grade Grade, comfort bool) time.Duration {
	if comfort {
		return comfortFirstTouch[grade]
	}
	return standardFirstTouch[grade]
}
