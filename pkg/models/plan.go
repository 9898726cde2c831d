package models

// Learning contexts supported by the placement banks.
const (
	ContextLaw    = "law"
	ContextTravel = "travel"
	ContextIT     = "it"
	ContextSenior = "senior"
)

// Presentation styles for sample sentences.
const (
	StyleSimple       = "simple"
	StyleProfessional = "professional"
	StyleAcademic     = "academic"
)

// Recommendation is the suggested learning pace derived from placement
type Recommendation struct {
	PerDay  int `json:"perDay"`
	PerWeek int `json:"perWeek"`
	Total   int `json:"total"`
}

// Plan is the externally produced word package: a daily quota
// recommendation, today's ordered subset and the full word pool for the
// chosen context. A new CreatedAt marks a plan refresh; refreshes merge
// into the card pool, they never discard existing scheduling state.
type Plan struct {
	CreatedAt      int64          `json:"createdAt"` // unix millis
	Context        string         `json:"context"`
	Style          string         `json:"style"`
	Pair           string         `json:"pair"`
	Horizon        int            `json:"horizon"` // days: 30, 60 or 90
	Name           string         `json:"name,omitempty"`
	Recommendation Recommendation `json:"recommendation"`
	TodaySet       []VocabItem    `json:"todaySet"`
	Pool           []VocabItem    `json:"pool"`
	ComfortMode    bool           `json:"comfortMode,omitempty"`
}
