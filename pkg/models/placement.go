package models

// CEFR-ish levels produced by the placement quiz.
const (
	LevelA2 = "A2"
	LevelB1 = "B1"
	LevelB2 = "B2"
)

// PlacementResult summarizes one placement quiz run
type PlacementResult struct {
	Level      string  `json:"level"`
	Confidence float64 `json:"confidence"` // 0..1
	Score      int     `json:"score"`      // weighted percent, 0..100
	Correct    int     `json:"correct"`
	Total      int     `json:"total"`
}
