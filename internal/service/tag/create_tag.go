package tag

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

// CreateTag adds a tag to the caller's organization. Names are unique per
// organization ignoring case. Only bosses may create tags.
func (s *Service) CreateTag(ctx context.Context, input CreateTagInput) (*domain.Tag, error) {
	boss, err := requireBoss(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)

	_, err = s.tags.GetByName(ctx, boss.OrganizationID, name)
	switch {
	case err == nil:
		return nil, duplicate(name)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("get tag by name: %w", err)
	}

	tag, err := s.tags.Create(ctx, boss.OrganizationID, name)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, duplicate(name)
		}
		return nil, fmt.Errorf("create tag: %w", err)
	}

	s.log.InfoContext(ctx, "tag created",
		slog.String("user_id", boss.ID.String()),
		slog.String("tag_id", tag.ID.String()),
	)

	return tag, nil
}

func duplicate(name string) error {
	return domain.ConflictError(fmt.Sprintf("Tag '%s' already exists in organization", name))
}
