package mocks

import (
	"context"

	"github.com/pageza/recipe-chef/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockGenerator is a mock implementation of service.Generator
type MockGenerator struct {
	mock.Mock
}

// Generate mocks the Generate method
func (m *MockGenerator) Generate(ctx context.Context, prompt model.Prompt, cfg model.GenerationConfig) (*model.GenerationResult, error) {
	args := m.Called(ctx, prompt, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GenerationResult), args.Error(1)
}
