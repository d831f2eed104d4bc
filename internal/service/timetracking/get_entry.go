package timetracking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

// GetEntry returns one entry. Workers may only read their own.
func (s *Service) GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.TimeEntry, error) {
	user, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := s.getVisible(ctx, user.OrganizationID, entryID)
	if err != nil {
		return nil, err
	}
	if !user.CanAccessEntryOf(entry.UserID) {
		return nil, domain.ForbiddenError("You can only view your own time entries")
	}

	return entry, nil
}

// GetRunningTimer returns the running entry of the authenticated user, or
// nil when no timer is running.
func (s *Service) GetRunningTimer(ctx context.Context) (*domain.TimeEntry, error) {
	user, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := s.entries.GetRunning(ctx, user.OrganizationID, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get running entry: %w", err)
	}

	return entry, nil
}
