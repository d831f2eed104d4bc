package timetracking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

// DeleteEntry permanently removes an entry and its tag associations.
// Workers may only delete their own entries; bosses any in the organization.
func (s *Service) DeleteEntry(ctx context.Context, entryID uuid.UUID) error {
	user, err := principal(ctx)
	if err != nil {
		return err
	}

	var ownerID uuid.UUID
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		entry, err := s.getVisible(txCtx, user.OrganizationID, entryID)
		if err != nil {
			return err
		}
		if !user.CanAccessEntryOf(entry.UserID) {
			return domain.ForbiddenError("You can only delete your own time entries")
		}
		ownerID = entry.UserID

		if err := s.entries.LockUser(txCtx, entry.UserID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}

		if err := s.entries.Delete(txCtx, user.OrganizationID, entryID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NotFoundError(msgEntryNotFound)
			}
			return fmt.Errorf("delete entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.written("delete")
	s.log.InfoContext(ctx, "time entry deleted",
		slog.String("user_id", user.ID.String()),
		slog.String("owner_id", ownerID.String()),
		slog.String("entry_id", entryID.String()),
	)

	return nil
}
