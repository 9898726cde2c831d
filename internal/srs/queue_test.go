package srs

import (
	"reflect"
	"testing"

	"github.com/example/vocabu/pkg/models"
)

func TestBuildDueQueueFiltersAndPreservesOrder(t *testing.T) {
	today := models.Date("2026-08-30")
	cards := map[string]models.CardState{
		"a": {Due: "2026-08-29"}, // overdue
		"b": {Due: "2026-08-31"}, // not yet
		"c": {Due: "2026-08-30"}, // due today
		"d": {Due: "2026-08-28"},
	}
	pool := []string{"d", "a", "b", "c", "unseeded"}

	q := BuildDueQueue(pool, cards, today, DefaultFallbackSize)
	if q.Fallback {
		t.Error("unexpected fallback with due items present")
	}
	if want := []string{"d", "a", "c"}; !reflect.DeepEqual(q.Items, want) {
		t.Errorf("items = %v, want %v", q.Items, want)
	}
}

func TestBuildDueQueueFallback(t *testing.T) {
	today := models.Date("2026-08-30")
	cards := make(map[string]models.CardState)
	pool := []string{"w1", "w2", "w3", "w4", "w5", "w6", "w7"}
	for _, id := range pool {
		cards[id] = models.CardState{Due: "2026-09-02"}
	}

	q := BuildDueQueue(pool, cards, today, 5)
	if !q.Fallback {
		t.Fatal("expected fallback queue")
	}
	if want := []string{"w1", "w2", "w3", "w4", "w5"}; !reflect.DeepEqual(q.Items, want) {
		t.Errorf("items = %v, want %v", q.Items, want)
	}
}

func TestBuildDueQueueFallbackSmallPool(t *testing.T) {
	today := models.Date("2026-08-30")
	cards := map[string]models.CardState{
		"only": {Due: "2026-09-02"},
	}

	q := BuildDueQueue([]string{"only"}, cards, today, 5)
	if !q.Fallback || len(q.Items) != 1 {
		t.Errorf("queue = %+v, want one-item fallback", q)
	}
}

func TestBuildDueQueueEmptyPool(t *testing.T) {
	q := BuildDueQueue(nil, nil, models.Date("2026-08-30"), 5)
	if q.Fallback {
		t.Error("empty pool must not fall back")
	}
	if len(q.Items) != 0 {
		t.Errorf("items = %v, want empty", q.Items)
	}
}

func TestBuildDueQueueUnseededNotDue(t *testing.T) {
	q := BuildDueQueue([]string{"x"}, map[string]models.CardState{}, models.Date("2026-08-30"), 5)
	if !q.Fallback {
		t.Error("unseeded-only pool should fall back, not count as due")
	}
}
