package chat

import (
	"strings"

	"github.com/aravindvh/portfolio-api/internal/classify"
)

// Outcome is the result of validating a backend response.
type Outcome struct {
	Valid       bool
	Reason      string
	ShouldRetry bool
	Trimmed     string // non-empty when the response was cut to one sentence
}

// genericRefusals are phrases that mark a response as unhelpful when the
// query was classified as general knowledge. Matching is case-insensitive
// substring.
var genericRefusals = []string{
	"i cannot help with that",
	"i don't have information",
	"i'm unable to",
	"i can't provide",
	"contact aravind",
}

// maxSentences is the terminator count beyond which a response is
// trimmed to its first sentence.
const maxSentences = 5

// ValidateResponse checks a backend response against the classification.
// Empty responses are invalid; generic refusals in general-knowledge mode
// are invalid but retryable on the next model; overlong responses stay
// valid but carry a single-sentence trimmed form.
func ValidateResponse(text string, cls classify.Result) Outcome {
	if strings.TrimSpace(text) == "" {
		return Outcome{Valid: false, Reason: "empty response"}
	}

	if cls.ResponseType == classify.GeneralKnowledge {
		lower := strings.ToLower(text)
		for _, phrase := range genericRefusals {
			if strings.Contains(lower, phrase) {
				return Outcome{
					Valid:       false,
					Reason:      "too generic for general knowledge mode",
					ShouldRetry: true,
				}
			}
		}
	}

	if countSentences(text) > maxSentences {
		return Outcome{
			Valid:   true,
			Reason:  "response too long",
			Trimmed: firstSentence(text),
		}
	}

	return Outcome{Valid: true, Reason: "response is valid"}
}

func countSentences(text string) int {
	return strings.Count(text, ".") + strings.Count(text, "!") + strings.Count(text, "?")
}

// firstSentence returns the text up to the first sentence terminator,
// normalised to end with a period.
func firstSentence(text string) string {
	if i := strings.IndexAny(text, ".!?"); i >= 0 {
		return text[:i] + "."
	}
	return text + "."
}
