// Package chat implements the portfolio chat endpoint: classification,
// prompt construction, model fallback and response validation.
package chat

import (
	"fmt"
	"strings"

	"github.com/aravindvh/portfolio-api/internal/classify"
	"github.com/aravindvh/portfolio-api/internal/profile"
)

// Turn is a single entry of the caller-supplied conversation history.
type Turn struct {
	Sender string `json:"sender"` // "user" or "bot"
	Text   string `json:"text"`
}

// maxPromptTurns caps how much history is embedded in a prompt.
const maxPromptTurns = 5

// PromptBuilder converts a classified message plus recent history into a
// single prompt string. It is pure; the context block is rendered once
// at construction.
type PromptBuilder struct {
	name         string
	title        string
	contextBlock string
}

// NewPromptBuilder builds prompts around the given portfolio profile.
func NewPromptBuilder(p *profile.Profile) *PromptBuilder {
	return &PromptBuilder{
		name:         p.Name,
		title:        p.Title,
		contextBlock: p.ContextBlock(),
	}
}

// Build assembles the backend prompt for message according to its
// classification, embedding up to the last five conversation turns.
func (b *PromptBuilder) Build(message string, cls classify.Result, history []Turn) string {
	var sb strings.Builder

	category := cls.MatchedCategory
	if category == "" {
		category = "profile"
	}

	switch cls.ResponseType {
	case classify.PortfolioFocused:
		sb.WriteString(b.contextBlock)
		sb.WriteString("\n\n")
		fmt.Fprintf(&sb, "[INSTRUCTION: User is asking about %s's %s. Use portfolio context. Keep response SHORT (2-3 sentences).]\n\n", b.name, category)
	case classify.Hybrid:
		sb.WriteString(b.contextBlock)
		sb.WriteString("\n\n")
		fmt.Fprintf(&sb, "[INSTRUCTION: This is somewhat related to %s's profile. Try to connect to portfolio where possible, but also use general knowledge. Keep response SHORT (2-3 sentences).]\n\n", b.name)
	default:
		fmt.Fprintf(&sb, "You are a helpful AI assistant. You can mention %s is a %s if relevant, but primarily provide helpful general knowledge responses.\n\n", b.name, b.title)
		fmt.Fprintf(&sb, "[INSTRUCTION: This question is not directly about %s's portfolio. Provide a helpful general answer. If the topic could relate to %s's skills, mention that context. Keep response SHORT (2-3 sentences).]\n\n", b.name, b.name)
	}

	if len(history) > 0 {
		sb.WriteString("CONVERSATION CONTEXT:\n")
		start := 0
		if len(history) > maxPromptTurns {
			start = len(history) - maxPromptTurns
		}
		for _, turn := range history[start:] {
			sender := "Assistant"
			if turn.Sender == "user" {
				sender = "User"
			}
			fmt.Fprintf(&sb, "%s: %s\n", sender, turn.Text)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "[User Query - Relevance: %d%%]\n", cls.ConfidenceScore)
	fmt.Fprintf(&sb, "User: %s\n", message)
	sb.WriteString("Assistant:")

	return sb.String()
}
