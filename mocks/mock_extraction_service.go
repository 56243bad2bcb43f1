package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billex/internal/domain"
)

// MockExtractionService is a mock implementation of extract.Service.
type MockExtractionService struct {
	mock.Mock
}

func (m *MockExtractionService) ExtractLineItems(ctx context.Context, pages []domain.PageImage) (*domain.ExtractionResult, error) {
	args := m.Called(ctx, pages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractionResult), args.Error(1)
}
