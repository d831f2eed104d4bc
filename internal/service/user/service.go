package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/config"
	"github.com/fpvlvr/esclavizador/internal/domain"
	"github.com/fpvlvr/esclavizador/pkg/ctxutil"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByIDInOrg(ctx context.Context, orgID, userID uuid.UUID) (*domain.User, error)
	List(ctx context.Context, orgID uuid.UUID, filter domain.UserFilter, limit, offset int) ([]*domain.User, int, error)
	Update(ctx context.Context, orgID, userID uuid.UUID, params domain.UserUpdateParams) (*domain.User, error)
	Delete(ctx context.Context, orgID, userID uuid.UUID) error
}

// auditLog records administrative changes.
type auditLog interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const msgUserNotFound = "User not found"

// Service implements organization member management.
type Service struct {
	log   *slog.Logger
	users userRepo
	audit auditLog
	tx    txManager
	cfg   config.TrackingConfig
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	audit auditLog,
	tx txManager,
	cfg config.TrackingConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		audit: audit,
		tx:    tx,
		cfg:   cfg,
	}
}

func principal(ctx context.Context) (*domain.User, error) {
	u, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return u, nil
}

func requireBoss(ctx context.Context) (*domain.User, error) {
	u, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if !u.IsBoss() {
		return nil, domain.ForbiddenError("Boss role required")
	}
	return u, nil
}
