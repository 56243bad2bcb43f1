package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billex/internal/domain"
)

// MockDocumentProcessor is a mock implementation of port.DocumentProcessor.
type MockDocumentProcessor struct {
	mock.Mock
}

func (m *MockDocumentProcessor) Process(ctx context.Context, documentURL string) ([]domain.PageImage, error) {
	args := m.Called(ctx, documentURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PageImage), args.Error(1)
}
