package timetracking

import (
	"context"
	"errors"
	"fmt"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

// ListEntries returns one page of entries visible to the authenticated user.
// Workers always see only their own entries; asking for another user's
// entries is forbidden. Bosses see the whole organization and may narrow
// the listing to one of its users.
func (s *Service) ListEntries(ctx context.Context, input ListEntriesInput) (*domain.TimeEntryPage, error) {
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

	filter := input.Filter
	if user.IsBoss() {
		if filter.UserID != nil {
			if _, err := s.users.GetByIDInOrg(ctx, user.OrganizationID, *filter.UserID); err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return nil, domain.NotFoundError(msgUserNotFound)
				}
				return nil, fmt.Errorf("get filter user: %w", err)
			}
		}
	} else {
		if filter.UserID != nil && *filter.UserID != user.ID {
			return nil, domain.ForbiddenError("You can only view your own time entries")
		}
		filter.UserID = &user.ID
	}

	items, total, err := s.entries.List(ctx, user.OrganizationID, filter, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return &domain.TimeEntryPage{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: input.Offset,
	}, nil
}
