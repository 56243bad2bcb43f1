package port

import "context"

// ImageAttachment is an inline image sent along with a model request.
type ImageAttachment struct {
	Data      []byte
	MediaType string
}

// CompletionRequest carries one chat completion call to a vision-capable
// model. Image is optional; at most one image is sent per call.
type CompletionRequest struct {
	System      string
	User        string
	Image       *ImageAttachment
	MaxTokens   int
	Temperature float64
}

// CompletionUsage is the provider-reported token consumption for one call.
type CompletionUsage struct {
	TotalTokens      int
	PromptTokens     int
	CompletionTokens int
}

// CompletionResult is the raw output of one model call.
type CompletionResult struct {
	Text  string
	Usage CompletionUsage
}

// VisionModel abstracts a vision-capable chat completion model.
type VisionModel interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResult, error)
}
