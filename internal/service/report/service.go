package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/config"
	"github.com/fpvlvr/esclavizador/internal/domain"
	"github.com/fpvlvr/esclavizador/pkg/ctxutil"
)

type completedReader interface {
	ListCompleted(ctx context.Context, orgID uuid.UUID, filter domain.ReportFilter, userIDs ...uuid.UUID) ([]domain.CompletedEntry, error)
}

type userRepo interface {
	GetByIDInOrg(ctx context.Context, orgID, userID uuid.UUID) (*domain.User, error)
	List(ctx context.Context, orgID uuid.UUID, filter domain.UserFilter, limit, offset int) ([]*domain.User, int, error)
}

// Service serves boss-only reports computed from completed entries.
type Service struct {
	entries completedReader
	users   userRepo
	cfg     config.TrackingConfig
	log     *slog.Logger
}

// NewService creates a new report service.
func NewService(log *slog.Logger, entries completedReader, users userRepo, cfg config.TrackingConfig) *Service {
	return &Service{
		entries: entries,
		users:   users,
		cfg:     cfg,
		log:     log.With("service", "report"),
	}
}

// requireBoss returns the principal of ctx if it holds the boss role.
func requireBoss(ctx context.Context) (*domain.User, error) {
	u, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !u.IsBoss() {
		return nil, domain.ForbiddenError("Boss role required")
	}
	return u, nil
}

// checkUser requires userID to be a member of orgID.
func (s *Service) checkUser(ctx context.Context, orgID, userID uuid.UUID) error {
	if _, err := s.users.GetByIDInOrg(ctx, orgID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFoundError("User not found")
		}
		return fmt.Errorf("get report user: %w", err)
	}
	return nil
}
