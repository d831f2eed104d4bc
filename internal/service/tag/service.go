package tag

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/config"
	"github.com/fpvlvr/esclavizador/internal/domain"
	"github.com/fpvlvr/esclavizador/pkg/ctxutil"
)

type tagRepo interface {
	GetByID(ctx context.Context, orgID, tagID uuid.UUID) (*domain.Tag, error)
	GetByName(ctx context.Context, orgID uuid.UUID, name string) (*domain.Tag, error)
	List(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]domain.Tag, int, error)
	Create(ctx context.Context, orgID uuid.UUID, name string) (*domain.Tag, error)
	Delete(ctx context.Context, orgID, tagID uuid.UUID) error
}

type auditLog interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages the organization's tag vocabulary.
type Service struct {
	tags  tagRepo
	audit auditLog
	tx    txManager
	cfg   config.TrackingConfig
	log   *slog.Logger
}

// NewService creates a new tag service.
func NewService(log *slog.Logger, tags tagRepo, audit auditLog, tx txManager, cfg config.TrackingConfig) *Service {
	return &Service{
		tags:  tags,
		audit: audit,
		tx:    tx,
		cfg:   cfg,
		log:   log.With("service", "tag"),
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
