package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"billex/internal/domain"
	"billex/internal/port"
)

func TestTokenTracker_Add(t *testing.T) {
	tracker := NewTokenTracker()

	tracker.Add(port.CompletionUsage{TotalTokens: 100, PromptTokens: 60, CompletionTokens: 40})
	tracker.Add(port.CompletionUsage{TotalTokens: 50, PromptTokens: 30, CompletionTokens: 20})

	assert.Equal(t, domain.TokenUsage{
		TotalTokens:  150,
		InputTokens:  90,
		OutputTokens: 60,
	}, tracker.Usage())
}

func TestTokenTracker_Empty(t *testing.T) {
	tracker := NewTokenTracker()
	assert.Equal(t, domain.TokenUsage{}, tracker.Usage())
}
