package plan

import (
	"testing"

	"github.com/example/vocabu/pkg/models"
)

func word(id, term, translation string) models.VocabItem {
	return models.VocabItem{ID: id, Term: term, Translation: translation}
}

func TestBuildEmptyInput(t *testing.T) {
	_, ok := Build(Goals{Horizon: 60}, nil, nil, nil)
	if ok {
		t.Fatal("Build with no words should fail")
	}
}

func TestBuildPlacementFirstThenUserWords(t *testing.T) {
	placementWords := []models.VocabItem{
		word("contract", "contract", "договор"),
		word("witness", "witness", "свидетель"),
	}
	userWords := []models.VocabItem{
		word("appeal", "appeal", "апелляция"),
	}

	p, ok := Build(Goals{Context: models.ContextLaw, Horizon: 60}, nil, placementWords, userWords)
	if !ok {
		t.Fatal("Build failed")
	}
	if len(p.Pool) != 3 {
		t.Fatalf("pool = %d words, want 3", len(p.Pool))
	}
	if p.Pool[0].ID != "contract" || p.Pool[2].ID != "appeal" {
		t.Errorf("pool order = %v, want placement words first", p.Pool)
	}
	if p.CreatedAt == 0 {
		t.Error("CreatedAt must be set")
	}
}

func TestBuildDedupes(t *testing.T) {
	words := []models.VocabItem{
		word("visa", "visa", "виза"),
		word("visa2", "Visa", "виза"), // same term+translation, case-insensitive
		word("visa3", "visa", "разрешение"),
	}
	p, ok := Build(Goals{Horizon: 60}, nil, words, nil)
	if !ok {
		t.Fatal("Build failed")
	}
	if len(p.Pool) != 2 {
		t.Errorf("pool = %d words, want 2 after dedupe", len(p.Pool))
	}
}

func TestBuildTodaySetCapped(t *testing.T) {
	var many []models.VocabItem
	for i := 0; i < 25; i++ {
		id := string(rune('a' + i))
		many = append(many, word(id, id, "перевод "+id))
	}
	p, ok := Build(Goals{Horizon: 60}, nil, many, nil)
	if !ok {
		t.Fatal("Build failed")
	}
	if len(p.TodaySet) != TodaySetSize {
		t.Errorf("todaySet = %d, want %d", len(p.TodaySet), TodaySetSize)
	}
	if len(p.Pool) != 25 {
		t.Errorf("pool = %d, want 25", len(p.Pool))
	}
}

func TestBuildUsesPlacementLevel(t *testing.T) {
	words := []models.VocabItem{word("w", "w", "t")}
	placement := &models.PlacementResult{Level: models.LevelB2}

	p, _ := Build(Goals{Horizon: 60}, placement, words, nil)
	if p.Recommendation.PerDay != 16 {
		t.Errorf("PerDay = %d, want 16 for B2", p.Recommendation.PerDay)
	}

	// skipped quiz defaults to B1 pace
	p, _ = Build(Goals{Horizon: 60}, nil, words, nil)
	if p.Recommendation.PerDay != 12 {
		t.Errorf("PerDay = %d, want 12 without placement", p.Recommendation.PerDay)
	}
}

func TestPoolOrder(t *testing.T) {
	p := models.Plan{
		TodaySet: []models.VocabItem{word("b", "b", ""), word("a", "a", "")},
		Pool: []models.VocabItem{
			word("a", "a", ""), word("b", "b", ""), word("c", "c", ""), word("", "blank", ""),
		},
	}
	got := PoolOrder(p)
	want := []string{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}
