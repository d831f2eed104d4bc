package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

// DeleteUser removes a member and, by cascade, their time entries. A boss
// cannot delete themselves.
func (s *Service) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	boss, err := requireBoss(ctx)
	if err != nil {
		return err
	}

	if userID == boss.ID {
		return domain.BadRequestError("Cannot delete your own account")
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		target, err := s.users.GetByIDInOrg(ctx, boss.OrganizationID, userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NotFoundError(msgUserNotFound)
			}
			return fmt.Errorf("get user: %w", err)
		}

		if err := s.users.Delete(ctx, boss.OrganizationID, userID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NotFoundError(msgUserNotFound)
			}
			return fmt.Errorf("delete user: %w", err)
		}

		if err := s.audit.Log(ctx, domain.AuditRecord{
			OrganizationID: boss.OrganizationID,
			ActorID:        boss.ID,
			EntityType:     domain.EntityTypeUser,
			EntityID:       userID,
			Action:         domain.AuditActionDelete,
			Changes:        map[string]any{"email": target.Email, "role": target.Role.String()},
		}); err != nil {
			return fmt.Errorf("audit user delete: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "user deleted",
		slog.String("user_id", boss.ID.String()),
		slog.String("target_user_id", userID.String()),
	)

	return nil
}
