package plan

import (
	"testing"

	"github.com/example/vocabu/pkg/models"
)

func TestRecommend(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		horizon int
		comfort bool
		wantDay int
	}{
		{"A2 60d", models.LevelA2, 60, false, 8},
		{"A2 30d accelerated", models.LevelA2, 30, false, 10}, // 8 * 1.2
		{"A2 90d relaxed", models.LevelA2, 90, false, 7},      // round(8 * 0.85)
		{"B1 60d", models.LevelB1, 60, false, 12},
		{"B2 60d", models.LevelB2, 60, false, 16},
		{"B2 90d", models.LevelB2, 90, false, 14}, // round(16 * 0.85)
		{"unknown level defaults to B1", "", 60, false, 12},
		{"comfort caps at 8", models.LevelB2, 30, true, 8},
		{"comfort leaves small pace alone", models.LevelA2, 90, true, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Recommend(tt.level, tt.horizon, tt.comfort)
			if rec.PerDay != tt.wantDay {
				t.Errorf("PerDay = %d, want %d", rec.PerDay, tt.wantDay)
			}
			if rec.PerWeek != tt.wantDay*7 {
				t.Errorf("PerWeek = %d, want %d", rec.PerWeek, tt.wantDay*7)
			}
			if rec.Total != tt.wantDay*tt.horizon {
				t.Errorf("Total = %d, want %d", rec.Total, tt.wantDay*tt.horizon)
			}
		})
	}
}

func TestRecommendMinimumPace(t *testing.T) {
	// even the slowest combination never drops below 5 words a day
	rec := Recommend(models.LevelA2, 90, false)
	if rec.PerDay < 5 {
		t.Errorf("PerDay = %d, want >= 5", rec.PerDay)
	}
}
