package timetracking

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

// CreateManualEntry records a completed entry for the authenticated user.
// Checks run in order: ordering, future, overlap, project, task, tags.
func (s *Service) CreateManualEntry(ctx context.Context, input ManualEntryInput) (*domain.TimeEntry, error) {
	user, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(s.cfg.MaxDescription); err != nil {
		return nil, err
	}

	start := domain.ToUTC(input.StartTime)
	end := domain.ToUTC(input.EndTime)

	if !end.After(start) {
		s.rejected("create", "order")
		return nil, domain.BadRequestError("end_time must be after start_time")
	}
	now := s.now()
	if start.After(now) || end.After(now) {
		s.rejected("create", "future")
		return nil, domain.BadRequestError("Times cannot be in the future")
	}

	var entry *domain.TimeEntry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.entries.LockUser(txCtx, user.ID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}

		overlap, err := s.overlaps.HasOverlap(txCtx, user.ID, start, end, nil)
		if err != nil {
			return fmt.Errorf("check overlap: %w", err)
		}
		if overlap {
			s.rejected("create", "overlap")
			return domain.BadRequestError(msgOverlap)
		}

		if err := s.checkProject(txCtx, user.OrganizationID, input.ProjectID); err != nil {
			return err
		}
		if input.TaskID != nil {
			if err := s.checkTask(txCtx, user.OrganizationID, input.ProjectID, *input.TaskID); err != nil {
				return err
			}
		}
		if _, err := s.tags.Validate(txCtx, user.OrganizationID, input.TagIDs); err != nil {
			return err
		}

		created, err := s.entries.Create(txCtx, domain.NewTimeEntry{
			UserID:         user.ID,
			ProjectID:      input.ProjectID,
			TaskID:         input.TaskID,
			OrganizationID: user.OrganizationID,
			StartTime:      start,
			EndTime:        &end,
			IsBillable:     input.IsBillable,
			Description:    nonEmpty(input.Description),
		})
		if err != nil {
			if integrityViolation(err) {
				s.rejected("create", "overlap")
				return domain.ConflictError(msgOverlap)
			}
			return fmt.Errorf("create entry: %w", err)
		}

		entry, err = s.attachTags(txCtx, created, input.TagIDs)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.written("create")
	s.log.InfoContext(ctx, "manual entry created",
		slog.String("user_id", user.ID.String()),
		slog.String("entry_id", entry.ID.String()),
		slog.Int64("duration_seconds", domain.DurationSeconds(start, end)),
	)

	return entry, nil
}
