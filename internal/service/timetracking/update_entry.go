package timetracking

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

// UpdateEntry applies a partial update. Workers may only edit their own
// entries. A running entry's times cannot change until it is stopped.
// Tags are replaced only when input.TagIDs is set.
func (s *Service) UpdateEntry(ctx context.Context, input UpdateEntryInput) (*domain.TimeEntry, error) {
	user, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(s.cfg.MaxDescription); err != nil {
		return nil, err
	}

	var entry *domain.TimeEntry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.getVisible(txCtx, user.OrganizationID, input.EntryID)
		if err != nil {
			return err
		}
		if !user.CanAccessEntryOf(current.UserID) {
			return domain.ForbiddenError("You can only edit your own time entries")
		}

		if err := s.entries.LockUser(txCtx, current.UserID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}
		// Re-read under the lock: a concurrent stop may have changed it.
		current, err = s.getVisible(txCtx, user.OrganizationID, input.EntryID)
		if err != nil {
			return err
		}

		params := input.params()
		if err := s.checkUpdateTimes(txCtx, current, &params); err != nil {
			return err
		}
		if err := s.checkUpdateRefs(txCtx, user.OrganizationID, current, params); err != nil {
			return err
		}
		if params.TagIDs != nil {
			if _, err := s.tags.Validate(txCtx, user.OrganizationID, *params.TagIDs); err != nil {
				return err
			}
		}

		entry, err = s.entries.Update(txCtx, user.OrganizationID, current.ID, params)
		if err != nil {
			if integrityViolation(err) {
				s.rejected("update", "overlap")
				return domain.ConflictError(msgUpdateOverlap)
			}
			return fmt.Errorf("update entry: %w", err)
		}

		if params.TagIDs != nil {
			if err := s.tags.Replace(txCtx, current.ID, *params.TagIDs); err != nil {
				return err
			}
			entry, err = s.entries.GetByID(txCtx, user.OrganizationID, current.ID)
			if err != nil {
				return fmt.Errorf("reload entry: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.written("update")
	s.log.InfoContext(ctx, "time entry updated",
		slog.String("user_id", user.ID.String()),
		slog.String("entry_id", entry.ID.String()),
	)

	return entry, nil
}

// checkUpdateTimes validates the effective interval after the patch and
// normalizes patched times to UTC in params.
func (s *Service) checkUpdateTimes(ctx context.Context, current *domain.TimeEntry, params *domain.TimeEntryUpdateParams) error {
	if !params.TouchesTimes() {
		if current.EndTime != nil && !current.EndTime.After(current.StartTime) {
			return domain.BadRequestError("start_time must be before end_time")
		}
		return nil
	}
	if current.IsRunning {
		s.rejected("update", "running")
		return domain.BadRequestError("Cannot update times of running timer. Stop it first.")
	}

	start := current.StartTime
	if params.StartTime != nil {
		start = domain.ToUTC(*params.StartTime)
		params.StartTime = &start
	}
	end := current.EndTime
	if params.EndTime != nil {
		e := domain.ToUTC(*params.EndTime)
		end = &e
		params.EndTime = end
	}

	if end == nil {
		return nil
	}
	if !end.After(start) {
		s.rejected("update", "order")
		return domain.BadRequestError("start_time must be before end_time")
	}

	overlap, err := s.overlaps.HasOverlap(ctx, current.UserID, start, *end, &current.ID)
	if err != nil {
		return fmt.Errorf("check overlap: %w", err)
	}
	if overlap {
		s.rejected("update", "overlap")
		return domain.BadRequestError(msgUpdateOverlap)
	}
	return nil
}

// checkUpdateRefs validates project and task references of the patch.
// A task must belong to the effective project; when only the project
// changes, the entry's current task is checked against the new project.
func (s *Service) checkUpdateRefs(ctx context.Context, orgID uuid.UUID, current *domain.TimeEntry, params domain.TimeEntryUpdateParams) error {
	projectID := current.ProjectID
	if params.ProjectID != nil {
		if err := s.checkProject(ctx, orgID, *params.ProjectID); err != nil {
			return err
		}
		projectID = *params.ProjectID
	}

	switch {
	case params.TaskID != nil && *params.TaskID != uuid.Nil:
		return s.checkTask(ctx, orgID, projectID, *params.TaskID)
	case params.TaskID == nil && current.TaskID != nil && projectID != current.ProjectID:
		return s.checkTask(ctx, orgID, projectID, *current.TaskID)
	}
	return nil
}
