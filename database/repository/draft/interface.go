package draftRepo

import (
	"context"

	"feastly/models"
	"feastly/utils"

	"github.com/go-redis/redis/v8"
)

// DraftRepository is the key-value store behind booking-draft autosave.
// Every write replaces the full snapshot for the draft id; the newest write
// wins and a write never partially applies.
type DraftRepository interface {
	Save(ctx context.Context, draft models.BookingDraft) error
	Get(ctx context.Context, draftID string) (*models.BookingDraft, error)
	Delete(ctx context.Context, draftID string) error
}

type redisDraftRepo struct {
	client *redis.Client
}

// NewRedisDraftRepo returns a DraftRepository backed by the draft Redis DB.
func NewRedisDraftRepo() DraftRepository {
	return &redisDraftRepo{client: utils.GetDraftCacheClient()}
}
