package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

// GetUser returns a member of the caller's organization. Users of other
// organizations are reported as not found.
func (s *Service) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	boss, err := requireBoss(ctx)
	if err != nil {
		return nil, err
	}

	u, err := s.users.GetByIDInOrg(ctx, boss.OrganizationID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundError(msgUserNotFound)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
