package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/auth"
	"github.com/fpvlvr/esclavizador/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type jwtManager interface {
	GenerateAccessToken(userID, orgID uuid.UUID, role string) (string, error)
	ValidateAccessToken(token string) (auth.Claims, error)
}

// Service resolves bearer tokens into principals and mints tokens for
// existing users. Accounts are managed outside this service.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
	}
}
