package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billex/internal/port"
)

// MockVisionModel is a mock implementation of port.VisionModel.
type MockVisionModel struct {
	mock.Mock
}

func (m *MockVisionModel) Complete(ctx context.Context, req port.CompletionRequest) (*port.CompletionResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.CompletionResult), args.Error(1)
}
