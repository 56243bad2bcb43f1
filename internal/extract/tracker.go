package extract

import (
	"billex/internal/domain"
	"billex/internal/port"
)

// TokenTracker accumulates model token usage across every call made during
// one extraction request. It lives for exactly one request and is only
// touched from that request's sequential call chain, so it needs no locking.
type TokenTracker struct {
	usage domain.TokenUsage
}

// NewTokenTracker creates an empty tracker.
func NewTokenTracker() *TokenTracker {
	return &TokenTracker{}
}

// Add records the usage of one completed model call. Provider prompt and
// completion counts map to input and output tokens respectively.
func (t *TokenTracker) Add(u port.CompletionUsage) {
	t.usage.TotalTokens += u.TotalTokens
	t.usage.InputTokens += u.PromptTokens
	t.usage.OutputTokens += u.CompletionTokens
}

// Usage returns a snapshot of the accumulated totals.
func (t *TokenTracker) Usage() domain.TokenUsage {
	return t.usage
}
