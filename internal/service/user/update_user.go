package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

// UpdateUser changes the role or activity of a member. A boss can neither
// deactivate nor demote themselves. Every effective change is audited in the
// same transaction.
func (s *Service) UpdateUser(ctx context.Context, input UpdateUserInput) (*domain.User, error) {
	boss, err := requireBoss(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.GetUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if current.ID == boss.ID {
		if input.IsActive != nil && !*input.IsActive {
			return nil, domain.BadRequestError("Cannot deactivate your own account")
		}
		if input.Role != nil && *input.Role != domain.UserRoleBoss {
			return nil, domain.BadRequestError("Cannot demote your own account")
		}
	}

	changes := diff(current, input)
	if len(changes) == 0 {
		return current, nil
	}

	var updated *domain.User
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.users.Update(ctx, boss.OrganizationID, current.ID, input.params())
		if err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		if err := s.audit.Log(ctx, domain.AuditRecord{
			OrganizationID: boss.OrganizationID,
			ActorID:        boss.ID,
			EntityType:     domain.EntityTypeUser,
			EntityID:       current.ID,
			Action:         domain.AuditActionUpdate,
			Changes:        changes,
		}); err != nil {
			return fmt.Errorf("audit user update: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user updated",
		slog.String("user_id", boss.ID.String()),
		slog.String("target_user_id", current.ID.String()),
		slog.Any("changes", changes),
	)

	return updated, nil
}

// diff returns the fields input would change on u as {field: {from, to}}.
func diff(u *domain.User, input UpdateUserInput) map[string]any {
	changes := map[string]any{}
	if input.Role != nil && *input.Role != u.Role {
		changes["role"] = map[string]any{"from": u.Role.String(), "to": input.Role.String()}
	}
	if input.IsActive != nil && *input.IsActive != u.IsActive {
		changes["is_active"] = map[string]any{"from": u.IsActive, "to": *input.IsActive}
	}
	return changes
}
