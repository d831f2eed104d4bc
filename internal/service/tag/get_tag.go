package tag

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

// GetTag returns one tag of the caller's organization.
func (s *Service) GetTag(ctx context.Context, tagID uuid.UUID) (*domain.Tag, error) {
	u, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	tag, err := s.tags.GetByID(ctx, u.OrganizationID, tagID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundError("Tag not found")
		}
		return nil, fmt.Errorf("get tag: %w", err)
	}
	return tag, nil
}
