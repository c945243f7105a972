// Package classify scores free-text chat messages against fixed keyword
// tables to decide how much portfolio context a generated answer should
// carry. Classification is stateless; the tables are process-wide
// constants.
package classify

import (
	"math"
	"strings"
)

// ResponseType selects the prompt strategy for a classified message.
type ResponseType string

const (
	// PortfolioFocused answers strictly from portfolio context.
	PortfolioFocused ResponseType = "portfolio_focused"
	// Hybrid blends portfolio context with general knowledge.
	Hybrid ResponseType = "hybrid"
	// GeneralKnowledge answers from general knowledge only.
	GeneralKnowledge ResponseType = "general_knowledge"
)

// Result is the outcome of classifying a single message. It is created
// fresh per request and never mutated afterwards.
type Result struct {
	Message            string         `json:"message"`
	MatchedCategory    string         `json:"matchedCategory,omitempty"`
	ConfidenceScore    int            `json:"confidenceScore"`
	CategoryScores     map[string]int `json:"categoryScores"`
	IsPortfolioRelated bool           `json:"isPortfolioRelated"`
	ResponseType       ResponseType   `json:"responseType"`
}

// Classify scores message against the category and phrase tables and
// returns a Result. It always succeeds; an empty message yields a zero
// score and GeneralKnowledge (callers reject empty messages before
// classification).
func Classify(message string) Result {
	query := strings.ToLower(message)

	// Keyword matching: 10 points per keyword hit, plus 5 for every hit
	// after the first within the same category.
	scores := make(map[string]int, len(categoryTable))
	maxScore := 0
	matched := ""

	for _, cat := range categoryTable {
		score := 0
		matchCount := 0
		for _, kw := range cat.keywords {
			if strings.Contains(query, kw) {
				score += 10
				matchCount++
				if matchCount > 1 {
					score += 5
				}
			}
		}
		if score > maxScore {
			maxScore = score
			matched = cat.name
		}
		scores[cat.name] = score
	}

	// Semantic phrase boosts. Every matching phrase contributes its
	// intent's boost independently.
	boost := 0.0
	for _, p := range phraseTable {
		for _, phrase := range p.phrases {
			if strings.Contains(query, phrase) {
				boost += p.boost
			}
		}
	}

	confidence := math.Min(float64(maxScore)+boost, 100)

	// Length adjustment: very short messages are discounted, very long
	// ones slightly. The checks are independent; at most one can apply
	// to a given message.
	wordCount := len(strings.Fields(query))
	if wordCount < 3 {
		confidence *= 0.8
	}
	if wordCount > 50 {
		confidence *= 0.95
	}

	// A question-word opener with no category hit signals a general
	// question; dock it, floored at zero.
	if matched == "" && startsWithInterrogative(query) {
		confidence = math.Max(0, confidence-20)
	}

	score := int(math.Round(confidence))

	return Result{
		Message:            message,
		MatchedCategory:    matched,
		ConfidenceScore:    score,
		CategoryScores:     scores,
		IsPortfolioRelated: score >= 40,
		ResponseType:       responseTypeFor(score),
	}
}

func responseTypeFor(score int) ResponseType {
	switch {
	case score >= 80:
		return PortfolioFocused
	case score >= 40:
		return Hybrid
	default:
		return GeneralKnowledge
	}
}

func startsWithInterrogative(query string) bool {
	for _, w := range interrogatives {
		if strings.HasPrefix(query, w) {
			return true
		}
	}
	return false
}
