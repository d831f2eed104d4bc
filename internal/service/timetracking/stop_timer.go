package timetracking

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

// StopTimer stops a running entry at now(UTC). Only the owner may stop a
// timer, whatever their role.
func (s *Service) StopTimer(ctx context.Context, entryID uuid.UUID) (*domain.TimeEntry, error) {
	user, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	var entry *domain.TimeEntry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.entries.LockUser(txCtx, user.ID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}

		current, err := s.getVisible(txCtx, user.OrganizationID, entryID)
		if err != nil {
			return err
		}
		if current.UserID != user.ID {
			return domain.ForbiddenError("You can only stop your own timers")
		}
		if !current.IsRunning {
			s.rejected("stop", "stopped")
			return domain.BadRequestError("Timer is already stopped")
		}

		end := s.now()
		if end.Before(current.StartTime) {
			end = current.StartTime
		}

		entry, err = s.entries.Stop(txCtx, user.OrganizationID, entryID, end)
		if err != nil {
			if integrityViolation(err) {
				return domain.ConflictError("Timer could not be stopped")
			}
			return fmt.Errorf("stop entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.written("stop")
	s.log.InfoContext(ctx, "timer stopped",
		slog.String("user_id", user.ID.String()),
		slog.String("entry_id", entry.ID.String()),
		slog.Int64("duration_seconds", *entry.DurationSeconds()),
	)

	return entry, nil
}
