package models

import (
	"testing"
	"time"
)

func TestDateOf(t *testing.T) {
	ts := time.Date(2026, 8, 30, 23, 59, 0, 0, time.Local)
	if got := DateOf(ts); got != "2026-08-30" {
		t.Errorf("DateOf = %s, want 2026-08-30", got)
	}
}

func TestAddDaysCrossesMonth(t *testing.T) {
	if got := Date("2026-08-30").AddDays(6); got != "2026-09-05" {
		t.Errorf("AddDays = %s, want 2026-09-05", got)
	}
}

func TestDateOrdering(t *testing.T) {
	a, b := Date("2026-08-30"), Date("2026-09-01")
	if !a.Before(b) || !b.After(a) {
		t.Error("ISO dates should order lexicographically")
	}
	if a.After(a) || a.Before(a) {
		t.Error("a date is neither before nor after itself")
	}
}

func TestIsZero(t *testing.T) {
	if !Date("").IsZero() {
		t.Error("empty date should be zero")
	}
	if Date("2026-08-30").IsZero() {
		t.Error("set date should not be zero")
	}
}
