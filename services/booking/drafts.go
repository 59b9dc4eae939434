package booking

import (
	"context"
	"fmt"

	"feastly/models"
)

// SaveDraft persists the full booking snapshot under its draft id. Autosave
// is debounced client-side and fire-and-forget: the write replaces the
// whole snapshot, so a superseded save is simply overwritten by the next
// one (last write wins).
func (s *DefaultBookingService) SaveDraft(ctx context.Context, draft models.BookingDraft) error {
	draft.SelectedServices = normalizeServices(draft.SelectedServices)
	if err := s.DraftRepo.Save(ctx, draft); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// GetDraft restores an in-progress booking verbatim.
func (s *DefaultBookingService) GetDraft(ctx context.Context, draftID string) (*models.BookingDraft, error) {
	return s.DraftRepo.Get(ctx, draftID)
}

// DeleteDraft discards an in-progress booking.
func (s *DefaultBookingService) DeleteDraft(ctx context.Context, draftID string) error {
	return s.DraftRepo.Delete(ctx, draftID)
}
