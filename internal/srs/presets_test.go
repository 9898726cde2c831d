package srs

import (
	"testing"
	"time"
)

func TestFirstTouchDelay(t *testing.T) {
	tests := []struct {
		grade   Grade
		comfort bool
		want    time.Duration
	}{
		{GradeAgain, false, 10 * time.Minute},
		{GradeAgain, true, 15 * time.Minute},
		{GradeHard, false, 24 * time.Hour},
		{GradeHard, true, 12 * time.Hour},
		{GradeGood, false, 72 * time.Hour},
		{GradeGood, true, 48 * time.Hour},
		{GradeEasy, false, 168 * time.Hour},
		{GradeEasy, true, 120 * time.Hour},
	}
	for _, tt := range tests {
		if got := FirstTouchDelay(tt.grade, tt.comfort); got != tt.want {
			t.Errorf("FirstTouchDelay(%s, comfort=%v) = %v, want %v", tt.grade, tt.comfort, got, tt.want)
		}
	}
}
