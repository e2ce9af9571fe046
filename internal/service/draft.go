package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pageza/recipe-chef/internal/model"
)

// DraftTTL is how long an archived recipe is kept.
const DraftTTL = 24 * time.Hour

// ErrDraftNotFound is returned by GetDraft for unknown or expired IDs.
var ErrDraftNotFound = errors.New("draft not found")

// DraftStore archives generated recipes.
type DraftStore interface {
	SaveDraft(ctx context.Context, draft *model.RecipeDraft) error
	GetDraft(ctx context.Context, id string) (*model.RecipeDraft, error)
	DeleteDraft(ctx context.Context, id string) error
}

// RedisDraftStore keeps drafts in Redis under recipe:draft:<id>.
type RedisDraftStore struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewRedisDraftStore returns a DraftStore backed by client.
func NewRedisDraftStore(client *redis.Client) *RedisDraftStore {
	return &RedisDraftStore{redis: client, ttl: DraftTTL}
}

// DraftKey returns the Redis key for a draft ID.
func DraftKey(id string) string {
	return fmt.Sprintf("recipe:draft:%s", id)
}

// SaveDraft assigns an ID and timestamp and stores the draft.
func (s *RedisDraftStore) SaveDraft(ctx context.Context, draft *model.RecipeDraft) error {
	draft.ID = uuid.New()
	draft.CreatedAt = time.Now()

	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	if err := s.redis.Set(ctx, DraftKey(draft.ID.String()), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save draft to Redis: %w", err)
	}
	return nil
}

// GetDraft retrieves a recipe draft from Redis
func (s *RedisDraftStore) GetDraft(ctx context.Context, id string) (*model.RecipeDraft, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid draft id %q: %w", id, err)
	}

	data, err := s.redis.Get(ctx, DraftKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft from Redis: %w", err)
	}

	var draft model.RecipeDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &draft, nil
}

// DeleteDraft removes a recipe draft from Redis
func (s *RedisDraftStore) DeleteDraft(ctx context.Context, id string) error {
	if err := s.redis.Del(ctx, DraftKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft from Redis: %w", err)
	}
	return nil
}
