package tools

import (
	"context"
	"encoding/json"

	"github.com/comigor/portfolio-bot/internal/intent"
	"github.com/comigor/portfolio-bot/internal/logger"
	"github.com/comigor/portfolio-bot/internal/reply"
)

// ClassifyTool reports which category a question falls into.
type ClassifyTool struct{}

// NewClassifyTool creates a new ClassifyTool
func NewClassifyTool() *ClassifyTool {
	return &ClassifyTool{}
}

// Name returns the name of the tool
func (t *ClassifyTool) Name() string {
	return "classify_intent"
}

// Description returns the description of the tool
func (t *ClassifyTool) Description() string {
	return "Classifies a visitor question into one of the portfolio bot's topics (greeting, projects, skills, contact, availability, fallback) and reports the keyword that decided it."
}

// Run runs the tool
func (t *ClassifyTool) Run(_ context.Context, text string) (string, error) {
	category, keyword := intent.Match(text)
	logger.L.Debug("classify tool invoked", "category", category, "keyword", keyword)

	out, err := json.Marshal(struct {
		Category string `json:"category"`
		Keyword  string `json:"keyword,omitempty"`
	}{string(category), keyword})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// AskTool answers a question with a canned portfolio reply.
type AskTool struct {
	selector *reply.Selector
}

// NewAskTool creates a new AskTool
func NewAskTool(selector *reply.Selector) *AskTool {
	return &AskTool{selector: selector}
}

// Name returns the name of the tool
func (t *AskTool) Name() string {
	return "ask_portfolio_bot"
}

// Description returns the description of the tool
func (t *AskTool) Description() string {
	return "Asks the portfolio assistant about the developer's projects, skills, contact details or availability and returns its reply."
}

// Run runs the tool
func (t *AskTool) Run(_ context.Context, text string) (string, error) {
	category, answer := t.selector.Respond(text)
	logger.L.Debug("ask tool invoked", "category", category)
	return answer, nil
}
