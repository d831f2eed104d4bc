package timetracking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

// StartTimer starts a running entry for the authenticated user at now(UTC).
// Checks run in order: running timer, project, task, tags.
func (s *Service) StartTimer(ctx context.Context, input StartTimerInput) (*domain.TimeEntry, error) {
	user, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(s.cfg.MaxDescription); err != nil {
		return nil, err
	}

	var entry *domain.TimeEntry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.entries.LockUser(txCtx, user.ID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}

		_, err := s.entries.GetRunning(txCtx, user.OrganizationID, user.ID)
		switch {
		case err == nil:
			s.rejected("start", "running")
			return domain.ConflictError(msgTimerRunning)
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("get running entry: %w", err)
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
			StartTime:      s.now(),
			IsBillable:     input.IsBillable,
			Description:    nonEmpty(input.Description),
		})
		if err != nil {
			if integrityViolation(err) {
				return s.startRejected(err)
			}
			return fmt.Errorf("create entry: %w", err)
		}

		entry, err = s.attachTags(txCtx, created, input.TagIDs)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.written("start")
	s.log.InfoContext(ctx, "timer started",
		slog.String("user_id", user.ID.String()),
		slog.String("entry_id", entry.ID.String()),
		slog.String("project_id", entry.ProjectID.String()),
	)

	return entry, nil
}

// startRejected maps a constraint failure on insert. The one-running index
// surfaces as a duplicate. With the user lock held no timer can appear after
// GetRunning, so an exclusion hit means a completed entry covers now.
func (s *Service) startRejected(err error) error {
	if errors.Is(err, domain.ErrAlreadyExists) {
		s.rejected("start", "running")
		return domain.ConflictError(msgTimerRunning)
	}
	s.rejected("start", "overlap")
	return domain.ConflictError(msgOverlap)
}
