// Package words turns free-form user text into vocabulary entries.
package words

import (
	"regexp"
	"sort"
	"strings"

	"github.com/example/vocabu/pkg/models"
)

var (
	tokenRe     = regexp.MustCompile(`[a-zа-яё\-']{2,}`)
	separatorRe = regexp.MustCompile(`\s*[-—:;|]\s+|\t`)
)

// Extract tokenizes the text and returns lowercase words ordered by
// descending frequency. Stop-word filtering and lemmatization are out of
// scope; frequency order alone is good enough for seeding a pool.
func Extract(text string) []string {
	if text == "" {
		return nil
	}
	tokens := tokenRe.FindAllString(strings.ToLower(text), -1)
	freq := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if freq[t] == 0 {
			order = append(order, t)
		}
		freq[t]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})
	return order
}

// proseTermWords is the word count at which a parsed "term" stops
// looking like a vocabulary entry and starts looking like a sentence.
const proseTermWords = 3

// FromText converts free-form user input into vocabulary entries.
// Line-per-entry lists go through ParseList; input that reads like prose
// is tokenized instead and yields terms ordered by frequency, without
// translations.
func FromText(raw string) []models.VocabItem {
	parsed := ParseList(raw)
	if len(parsed) > 0 && !looksLikeProse(parsed) {
		return parsed
	}

	var out []models.VocabItem
	for _, token := range Extract(raw) {
		out = append(out, models.VocabItem{
			ID:     token,
			Term:   token,
			Source: models.SourceUserText,
		})
	}
	return out
}

func looksLikeProse(items []models.VocabItem) bool {
	for _, it := range items {
		if len(strings.Fields(it.Term)) >= proseTermWords {
			return true
		}
	}
	return false
}

// ParseList parses a user-supplied word list, one entry per line, in the
// form "term - translation", "term — translation", "term: translation" or
// a bare term. Duplicate terms are dropped, first occurrence wins.
func ParseList(raw string) []models.VocabItem {
	var out []models.VocabItem
	seen := make(map[string]bool)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := separatorRe.Split(line, 2)
		term := strings.TrimSpace(parts[0])
		if term == "" {
			continue
		}
		translation := ""
		if len(parts) > 1 {
			translation = strings.TrimSpace(parts[1])
		}
		id := strings.ToLower(term)
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, models.VocabItem{
			ID:          id,
			Term:        term,
			Translation: translation,
			Source:      models.SourceUserText,
		})
	}
	return out
}
