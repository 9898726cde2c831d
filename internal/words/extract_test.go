package words

import (
	"reflect"
	"testing"

	"github.com/example/vocabu/pkg/models"
)

func TestExtractFrequencyOrder(t *testing.T) {
	got := Extract("visa passport visa boarding visa passport")
	want := []string{"visa", "passport", "boarding"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestExtractLowercasesAndFiltersShort(t *testing.T) {
	got := Extract("A Visa to X")
	want := []string{"visa", "to"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestExtractEmpty(t *testing.T) {
	if got := Extract(""); got != nil {
		t.Errorf("Extract(\"\") = %v, want nil", got)
	}
}

func TestExtractCyrillic(t *testing.T) {
	got := Extract("виза паспорт виза")
	want := []string{"виза", "паспорт"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestParseList(t *testing.T) {
	raw := "airport - аэропорт\n" +
		"luggage: багаж\n" +
		"visa\n" +
		"\n" +
		"Airport - повтор\n" // duplicate term, case-insensitive

	got := ParseList(raw)
	want := []models.VocabItem{
		{ID: "airport", Term: "airport", Translation: "аэропорт", Source: models.SourceUserText},
		{ID: "luggage", Term: "luggage", Translation: "багаж", Source: models.SourceUserText},
		{ID: "visa", Term: "visa", Translation: "", Source: models.SourceUserText},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseList = %+v, want %+v", got, want)
	}
}

func TestParseListEmDash(t *testing.T) {
	got := ParseList("ticket — билет")
	if len(got) != 1 || got[0].Translation != "билет" {
		t.Errorf("ParseList = %+v, want em-dash separated pair", got)
	}
}

func TestFromTextListShaped(t *testing.T) {
	got := FromText("airport - аэропорт\nluggage: багаж")
	if len(got) != 2 || got[0].Translation != "аэропорт" {
		t.Errorf("FromText = %+v, want parsed list entries", got)
	}
}

func TestFromTextProseFallsBackToExtraction(t *testing.T) {
	got := FromText("the visa queue at the airport was long and the visa officer was slow")
	if len(got) == 0 {
		t.Fatal("FromText on prose returned nothing")
	}
	if got[0].Term != "the" && got[0].Term != "visa" {
		t.Errorf("first term = %q, want a frequency-ordered token", got[0].Term)
	}
	for _, w := range got {
		if w.Translation != "" {
			t.Errorf("%q: extracted tokens carry no translation", w.Term)
		}
		if w.Source != models.SourceUserText {
			t.Errorf("%q: source = %s, want userText", w.Term, w.Source)
		}
	}
}

func TestFromTextProseFrequencyOrder(t *testing.T) {
	got := FromText("passport control passport check passport desk near the gate area")
	if len(got) == 0 || got[0].Term != "passport" {
		t.Errorf("FromText = %+v, want passport first by frequency", got)
	}
}

func TestFromTextEmpty(t *testing.T) {
	if got := FromText(""); len(got) != 0 {
		t.Errorf("FromText(\"\") = %+v, want empty", got)
	}
}

func TestParseListBlank(t *testing.T) {
	if got := ParseList("\n  \n"); len(got) != 0 {
		t.Errorf("ParseList = %+v, want empty", got)
	}
}
