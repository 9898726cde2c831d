package models

// Word sources within a plan.
const (
	SourcePlacement = "placement"
	SourceUserText  = "userText"
	SourcePool      = "pool"
)

// VocabItem represents a single vocabulary entry known to a plan
type VocabItem struct {
	ID          string `json:"id"`
	Term        string `json:"term"`
	Translation string `json:"translation"`
	Source      string `json:"source"` // placement, userText or pool
}
