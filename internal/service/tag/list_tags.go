package tag

import (
	"context"
	"fmt"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

// ListTags returns one page of the organization's tags. Any member may list.
func (s *Service) ListTags(ctx context.Context, input ListTagsInput) (*domain.TagPage, error) {
	user, err := principal(ctx)
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

	items, total, err := s.tags.List(ctx, user.OrganizationID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	return &domain.TagPage{Items: items, Total: total, Limit: limit, Offset: input.Offset}, nil
}
