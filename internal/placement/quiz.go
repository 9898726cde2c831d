// Package placement builds and scores the multiple-choice placement quiz
// that estimates a learner's level for a chosen domain context.
package placement

import (
	"math/rand"
	"strings"

	"github.com/example/vocabu/pkg/models"
)

// Quiz lengths. Comfort mode runs the shorter, gentler variant.
const (
	DefaultQuestionCount = 15
	ComfortQuestionCount = 10
)

// Level thresholds on the weighted percent score.
const (
	levelB2MinScore = 75
	levelB1MinScore = 45
)

// Question is a single multiple-choice quiz item
type Question struct {
	ID      string
	Term    string   // the prompted term
	Options []string // candidate translations
	Answer  string   // the correct translation
	Weight  int      // difficulty weight, 1-3
}

// Quiz is one placement run: a fixed question list consumed in order
type Quiz struct {
	Context  string
	Comfort  bool
	Question []Question

	idx             int
	correct         int
	correctWeighted int
	maxWeighted     int
}

// NewQuiz samples the context's bank into a shuffled multiple-choice quiz.
func NewQuiz(context string, comfort bool, rnd *rand.Rand) *Quiz {
	total := DefaultQuestionCount
	if comfort {
		total = ComfortQuestionCount
	}

	bank := Bank(context)
	picked := make([]bankEntry, len(bank))
	copy(picked, bank)
	rnd.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	if len(picked) > total {
		picked = picked[:total]
	}

	q := &Quiz{Context: context, Comfort: comfort}
	for _, entry := range picked {
		question := Question{
			ID:      context + "-" + strings.ToLower(entry.Term),
			Term:    entry.Term,
			Options: buildOptions(entry, bank, rnd),
			Answer:  entry.Translation,
			Weight:  entry.Weight,
		}
		q.Question = append(q.Question, question)
		q.maxWeighted += entry.Weight
	}
	return q
}

// Current returns the question awaiting an answer.
func (q *Quiz) Current() (Question, bool) {
	if q.idx >= len(q.Question) {
		return Question{}, false
	}
	return q.Question[q.idx], true
}

// Answer records the chosen option for the current question and advances.
// Reports whether the choice was correct.
func (q *Quiz) Answer(choice string) bool {
	current, ok := q.Current()
	if !ok {
		return false
	}
	q.idx++
	if choice == current.Answer {
		q.correct++
		q.correctWeighted += current.Weight
		return true
	}
	return false
}

// Position returns the 1-based index of the current question.
func (q *Quiz) Position() int {
	if q.idx >= len(q.Question) {
		return len(q.Question)
	}
	return q.idx + 1
}

// Done reports whether every question has been answered.
func (q *Quiz) Done() bool {
	return q.idx >= len(q.Question)
}

// Result scores the quiz: weighted percent score, level mapping and a
// confidence estimate. Comfort mode nudges confidence up slightly.
func (q *Quiz) Result() models.PlacementResult {
	ratio := 0.0
	if q.maxWeighted > 0 {
		ratio = float64(q.correctWeighted) / float64(q.maxWeighted)
	}
	score := int(ratio*100 + 0.5)

	level := models.LevelA2
	switch {
	case score >= levelB2MinScore:
		level = models.LevelB2
	case score >= levelB1MinScore:
		level = models.LevelB1
	}

	confidence := 0.72 + ratio*0.2
	if q.Comfort {
		confidence += 0.06
	}
	if confidence > 0.98 {
		confidence = 0.98
	}
	if confidence < 0.55 {
		confidence = 0.55
	}

	return models.PlacementResult{
		Level:      level,
		Confidence: confidence,
		Score:      score,
		Correct:    q.correct,
		Total:      len(q.Question),
	}
}

// Words converts the quiz's questions into plan words, id-ed by lowercased
// term.
func (q *Quiz) Words() []models.VocabItem {
	out := make([]models.VocabItem, 0, len(q.Question))
	for _, question := range q.Question {
		out = append(out, models.VocabItem{
			ID:          strings.ToLower(question.Term),
			Term:        question.Term,
			Translation: question.Answer,
			Source:      models.SourcePlacement,
		})
	}
	return out
}

// buildOptions picks three incorrect translations from the same bank and
// shuffles them in with the correct one.
func buildOptions(entry bankEntry, bank []bankEntry, rnd *rand.Rand) []string {
	distractors := make([]string, 0, len(bank))
	seen := map[string]bool{entry.Translation: true}
	for _, other := range bank {
		if other.Term == entry.Term || seen[other.Translation] {
			continue
		}
		seen[other.Translation] = true
		distractors = append(distractors, other.Translation)
	}
	rnd.Shuffle(len(distractors), func(i, j int) {
		distractors[i], distractors[j] = distractors[j], distractors[i]
	})
	if len(distractors) > 3 {
		distractors = distractors[:3]
	}

	options := append([]string{entry.Translation}, distractors...)
	rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
