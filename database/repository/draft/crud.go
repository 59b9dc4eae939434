package draftRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"feastly/models"

	"github.com/go-redis/redis/v8"
)

// ErrDraftNotFound is returned when no snapshot exists for a draft id.
var ErrDraftNotFound = errors.New("draft not found")

// Drafts linger for 30 days of inactivity; every save renews the window.
const draftTTL = 30 * 24 * time.Hour

func draftKey(draftID string) string {
	return "draft:" + draftID
}

// Save stores the full draft snapshot under its id, replacing any previous
// snapshot.
func (r *redisDraftRepo) Save(ctx context.Context, draft models.BookingDraft) error {
	if draft.DraftID == "" {
		return errors.New("draft id is required")
	}
	draft.UpdatedAt = time.Now()

	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	if err := r.client.Set(ctx, draftKey(draft.DraftID), data, draftTTL).Err(); err != nil {
		return fmt.Errorf("failed to store draft: %w", err)
	}
	return nil
}

// Get reads back the stored snapshot verbatim.
func (r *redisDraftRepo) Get(ctx context.Context, draftID string) (*models.BookingDraft, error) {
	data, err := r.client.Get(ctx, draftKey(draftID)).Result()
	if err == redis.Nil {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read draft: %w", err)
	}

	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse draft: %w", err)
	}
	return &draft, nil
}

// Delete removes the draft snapshot, if any.
func (r *redisDraftRepo) Delete(ctx context.Context, draftID string) error {
	return r.client.Del(ctx, draftKey(draftID)).Err()
}
