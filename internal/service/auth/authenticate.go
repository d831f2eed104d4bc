package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

// Authenticate validates an access token and loads its user. The stored row
// is authoritative for role, organization and activity: a token for a
// deactivated user is refused even while it has not expired.
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", slog.String("error", err.Error()))
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get principal: %w", err)
	}

	if claims.OrganizationID != uuid.Nil && claims.OrganizationID != user.OrganizationID {
		s.log.WarnContext(ctx, "token organization mismatch",
			slog.String("user_id", user.ID.String()),
			slog.String("token_org", claims.OrganizationID.String()),
		)
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ForbiddenError("Inactive account")
	}

	return user, nil
}
