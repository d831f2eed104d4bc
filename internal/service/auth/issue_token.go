package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

// IssueToken mints an access token for an active user.
func (s *Service) IssueToken(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("get user: %w", err)
	}
	if !user.IsActive {
		return "", domain.ForbiddenError("Inactive account")
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.OrganizationID, user.Role.String())
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}

	s.log.InfoContext(ctx, "access token issued",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()),
	)

	return token, nil
}
