package tag

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

// DeleteTag removes a tag and its entry associations. Entries stay.
// The deletion is audited in the same transaction.
func (s *Service) DeleteTag(ctx context.Context, tagID uuid.UUID) error {
	boss, err := requireBoss(ctx)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		tag, err := s.tags.GetByID(ctx, boss.OrganizationID, tagID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NotFoundError("Tag not found")
			}
			return fmt.Errorf("get tag: %w", err)
		}

		if err := s.tags.Delete(ctx, boss.OrganizationID, tagID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NotFoundError("Tag not found")
			}
			return fmt.Errorf("delete tag: %w", err)
		}

		if err := s.audit.Log(ctx, domain.AuditRecord{
			OrganizationID: boss.OrganizationID,
			ActorID:        boss.ID,
			EntityType:     domain.EntityTypeTag,
			EntityID:       tagID,
			Action:         domain.AuditActionDelete,
			Changes:        map[string]any{"name": tag.Name},
		}); err != nil {
			return fmt.Errorf("audit tag delete: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "tag deleted",
		slog.String("user_id", boss.ID.String()),
		slog.String("tag_id", tagID.String()),
	)

	return nil
}
