package timetracking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/config"
	"github.com/fpvlvr/esclavizador/internal/domain"
	"github.com/fpvlvr/esclavizador/pkg/ctxutil"
)

type entryStore interface {
	GetByID(ctx context.Context, orgID, entryID uuid.UUID) (*domain.TimeEntry, error)
	GetRunning(ctx context.Context, orgID, userID uuid.UUID) (*domain.TimeEntry, error)
	List(ctx context.Context, orgID uuid.UUID, filter domain.TimeEntryFilter, limit, offset int) ([]*domain.TimeEntry, int, error)
	Create(ctx context.Context, n domain.NewTimeEntry) (*domain.TimeEntry, error)
	Stop(ctx context.Context, orgID, entryID uuid.UUID, end time.Time) (*domain.TimeEntry, error)
	Update(ctx context.Context, orgID, entryID uuid.UUID, params domain.TimeEntryUpdateParams) (*domain.TimeEntry, error)
	Delete(ctx context.Context, orgID, entryID uuid.UUID) error
	LockUser(ctx context.Context, userID uuid.UUID) error
}

type overlapChecker interface {
	HasOverlap(ctx context.Context, userID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error)
}

type projectRepo interface {
	GetByID(ctx context.Context, orgID, projectID uuid.UUID) (*domain.Project, error)
}

type taskRepo interface {
	GetByID(ctx context.Context, orgID, taskID uuid.UUID) (*domain.Task, error)
}

type userRepo interface {
	GetByIDInOrg(ctx context.Context, orgID, userID uuid.UUID) (*domain.User, error)
}

type tagRepo interface {
	GetByIDs(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]domain.Tag, error)
	ReplaceForEntry(ctx context.Context, entryID uuid.UUID, tagIDs []uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type lifecycleMetrics interface {
	EntryWritten(op string)
	EntryRejected(op, reason string)
}

// Caller-facing messages.
const (
	msgTimerRunning    = "You already have a running timer. Stop it first."
	msgEntryNotFound   = "Time entry not found"
	msgProjectNotFound = "Project not found"
	msgTaskNotFound    = "Task not found or doesn't belong to project"
	msgUserNotFound    = "User not found"
	msgOverlap         = "Time entry overlaps with existing entry or running timer"
	msgUpdateOverlap   = "Updated times overlap with existing entry or running timer"
)

// Service implements the time entry lifecycle: timers, manual entries,
// listing, edits and deletion. All writes for one user are serialized by a
// per-user lock held for the length of the transaction.
type Service struct {
	entries  entryStore
	overlaps overlapChecker
	projects projectRepo
	tasks    taskRepo
	users    userRepo
	tags     *TagAssociator
	tx       txManager
	metrics  lifecycleMetrics
	cfg      config.TrackingConfig
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new time tracking service.
func NewService(
	log *slog.Logger,
	entries entryStore,
	overlaps overlapChecker,
	projects projectRepo,
	tasks taskRepo,
	users userRepo,
	tags tagRepo,
	tx txManager,
	metrics lifecycleMetrics,
	cfg config.TrackingConfig,
) *Service {
	return &Service{
		entries:  entries,
		overlaps: overlaps,
		projects: projects,
		tasks:    tasks,
		users:    users,
		tags:     NewTagAssociator(tags),
		tx:       tx,
		metrics:  metrics,
		cfg:      cfg,
		log:      log.With("service", "timetracking"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// principal returns the authenticated user of ctx.
func principal(ctx context.Context) (*domain.User, error) {
	u, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return u, nil
}

// checkProject resolves projectID inside orgID.
func (s *Service) checkProject(ctx context.Context, orgID, projectID uuid.UUID) error {
	if _, err := s.projects.GetByID(ctx, orgID, projectID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFoundError(msgProjectNotFound)
		}
		return err
	}
	return nil
}

// checkTask resolves taskID inside orgID and requires it to belong to projectID.
func (s *Service) checkTask(ctx context.Context, orgID, projectID, taskID uuid.UUID) error {
	task, err := s.tasks.GetByID(ctx, orgID, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFoundError(msgTaskNotFound)
		}
		return err
	}
	if task.ProjectID != projectID {
		return domain.NotFoundError(msgTaskNotFound)
	}
	return nil
}

// getVisible loads an entry of the caller's organization.
func (s *Service) getVisible(ctx context.Context, orgID, entryID uuid.UUID) (*domain.TimeEntry, error) {
	entry, err := s.entries.GetByID(ctx, orgID, entryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundError(msgEntryNotFound)
		}
		return nil, err
	}
	return entry, nil
}

// integrityViolation reports whether a store error is a constraint failure
// that slipped past validation, e.g. a concurrent request won a race.
func integrityViolation(err error) bool {
	var de *domain.Error
	if errors.As(err, &de) {
		return false
	}
	return errors.Is(err, domain.ErrAlreadyExists) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, domain.ErrValidation)
}

func (s *Service) rejected(op, reason string) {
	if s.metrics != nil {
		s.metrics.EntryRejected(op, reason)
	}
}

func (s *Service) written(op string) {
	if s.metrics != nil {
		s.metrics.EntryWritten(op)
	}
}

func ptr[T any](v T) *T {
	return &v
}

// attachTags writes tagIDs to a freshly created entry and reads it back.
// With no tags the created entry is returned as is.
func (s *Service) attachTags(ctx context.Context, created *domain.TimeEntry, tagIDs []uuid.UUID) (*domain.TimeEntry, error) {
	if len(tagIDs) == 0 {
		return created, nil
	}
	if err := s.tags.Replace(ctx, created.ID, tagIDs); err != nil {
		return nil, err
	}
	entry, err := s.entries.GetByID(ctx, created.OrganizationID, created.ID)
	if err != nil {
		return nil, fmt.Errorf("reload entry: %w", err)
	}
	return entry, nil
}

// nonEmpty maps an empty description to nil.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
