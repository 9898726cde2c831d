package models

// CardState tracks the SM-2 scheduling state of a single vocabulary item
type CardState struct {
	EaseFactor   float64 `json:"ef"`       // SM-2 EF parameter, floor 1.3
	Repetitions  int     `json:"reps"`     // consecutive successful reviews
	IntervalDays int     `json:"interval"` // days until next due
	Due          Date    `json:"due"`      // next review date, local calendar
}

// DueOn reports whether the card is eligible for review on the given date.
func (c CardState) DueOn(today Date) bool {
	return !c.Due.After(today)
}
