package user

import (
	"context"
	"fmt"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

// ListUsers returns one page of the caller's organization members ordered
// by email. Only bosses may list.
func (s *Service) ListUsers(ctx context.Context, input ListUsersInput) (*domain.UserPage, error) {
	boss, err := requireBoss(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(s.cfg.MaxLimit); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.DefaultLimit
	}

	users, total, err := s.users.List(ctx, boss.OrganizationID, domain.UserFilter{
		IsActive: input.IsActive,
		Role:     input.Role,
	}, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return &domain.UserPage{Items: users, Total: total, Limit: limit, Offset: input.Offset}, nil
}
