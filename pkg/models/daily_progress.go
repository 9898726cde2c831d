package models

// DailyProgress counts distinct items reviewed today against a daily target.
// CountedIDs guards at-most-one increment per item per calendar day, so
// Done always equals len(CountedIDs).
type DailyProgress struct {
	Date       Date     `json:"date"`
	Done       int      `json:"done"`
	Target     int      `json:"target"`
	CountedIDs []string `json:"countedIds"`
}

// NewDailyProgress returns a zeroed record for the given date.
func NewDailyProgress(date Date) DailyProgress {
	return DailyProgress{Date: date, CountedIDs: []string{}}
}

// Counted reports whether the item was already counted today.
func (p DailyProgress) Counted(itemID string) bool {
	for _, id := range p.CountedIDs {
		if id == itemID {
			return true
		}
	}
	return false
}
