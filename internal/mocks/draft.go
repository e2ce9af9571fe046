package mocks

import (
	"context"

	"github.com/pageza/recipe-chef/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockDraftStore is a mock implementation of service.DraftStore
type MockDraftStore struct {
	mock.Mock
}

// SaveDraft mocks the SaveDraft method
func (m *MockDraftStore) SaveDraft(ctx context.Context, draft *model.RecipeDraft) error {
	args := m.Called(ctx, draft)
	return args.Error(0)
}

// GetDraft mocks the GetDraft method
func (m *MockDraftStore) GetDraft(ctx context.Context, id string) (*model.RecipeDraft, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RecipeDraft), args.Error(1)
}

// DeleteDraft mocks the DeleteDraft method
func (m *MockDraftStore) DeleteDraft(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
