package chat

import (
	"fmt"
	"strings"
	"testing"

	"github.com/aravindvh/portfolio-api/internal/classify"
	"github.com/aravindvh/portfolio-api/internal/profile"
)

func testBuilder() *PromptBuilder {
	return NewPromptBuilder(profile.Default())
}

func TestBuildPortfolioFocusedPrompt(t *testing.T) {
	cls := classify.Result{
		MatchedCategory: "experience",
		ConfidenceScore: 85,
		ResponseType:    classify.PortfolioFocused,
	}
	prompt := testBuilder().Build("What is your experience?", cls, nil)

	if !strings.Contains(prompt, "PROFESSIONAL SUMMARY:") {
		t.Error("portfolio-focused prompt must embed the context block")
	}
	if !strings.Contains(prompt, "asking about Aravind V H's experience") {
		t.Error("prompt must name the matched category")
	}
	if !strings.Contains(prompt, "[User Query - Relevance: 85%]") {
		t.Error("prompt must state the confidence score")
	}
	if !strings.HasSuffix(prompt, "Assistant:") {
		t.Error("prompt must end with the open Assistant: cue")
	}
}

func TestBuildHybridPrompt(t *testing.T) {
	cls := classify.Result{ConfidenceScore: 50, ResponseType: classify.Hybrid}
	prompt := testBuilder().Build("how do microservices scale?", cls, nil)

	if !strings.Contains(prompt, "PROFESSIONAL SUMMARY:") {
		t.Error("hybrid prompt must embed the context block")
	}
	if !strings.Contains(prompt, "also use general knowledge") {
		t.Error("hybrid prompt must allow general knowledge")
	}
}

func TestBuildGeneralKnowledgePrompt(t *testing.T) {
	cls := classify.Result{ConfidenceScore: 5, ResponseType: classify.GeneralKnowledge}
	prompt := testBuilder().Build("what is the capital of France?", cls, nil)

	if strings.Contains(prompt, "PROFESSIONAL SUMMARY:") {
		t.Error("general prompt must not embed the full context block")
	}
	if !strings.Contains(prompt, "Aravind V H is a Full Stack Developer") {
		t.Error("general prompt keeps the minimal subject sentence")
	}
}

func TestBuildPromptHistoryLimitedToFive(t *testing.T) {
	var history []Turn
	for i := 1; i <= 8; i++ {
		history = append(history, Turn{Sender: "user", Text: fmt.Sprintf("message %d", i)})
	}

	cls := classify.Result{ResponseType: classify.GeneralKnowledge}
	prompt := testBuilder().Build("hi", cls, history)

	if strings.Contains(prompt, "message 3") {
		t.Error("prompt should only embed the last five turns")
	}
	for i := 4; i <= 8; i++ {
		if !strings.Contains(prompt, fmt.Sprintf("message %d", i)) {
			t.Errorf("prompt missing history turn %d", i)
		}
	}
	if !strings.Contains(prompt, "CONVERSATION CONTEXT:") {
		t.Error("prompt with history must carry the context header")
	}
}

func TestBuildPromptNoHistorySection(t *testing.T) {
	cls := classify.Result{ResponseType: classify.GeneralKnowledge}
	prompt := testBuilder().Build("hi", cls, nil)
	if strings.Contains(prompt, "CONVERSATION CONTEXT:") {
		t.Error("empty history must not add a context section")
	}
}

func TestBuildPromptSenderLabels(t *testing.T) {
	history := []Turn{
		{Sender: "user", Text: "hello there"},
		{Sender: "bot", Text: "hi, how can I help?"},
	}
	cls := classify.Result{ResponseType: classify.GeneralKnowledge}
	prompt := testBuilder().Build("hi", cls, history)

	if !strings.Contains(prompt, "User: hello there") {
		t.Error("user turns must be labelled User:")
	}
	if !strings.Contains(prompt, "Assistant: hi, how can I help?") {
		t.Error("bot turns must be labelled Assistant:")
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	cls := classify.Classify("tell me about your projects")
	b := testBuilder()
	if b.Build("tell me about your projects", cls, nil) != b.Build("tell me about your projects", cls, nil) {
		t.Error("prompt construction must be pure")
	}
}
