package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

// UserStats returns one page of the organization's users with their
// completed time in the date window. Only bosses may read it.
func (s *Service) UserStats(ctx context.Context, input UserStatsInput) (*domain.UserStatsPage, error) {
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

	page := &domain.UserStatsPage{
		Items:  make([]domain.UserStats, 0, len(users)),
		Total:  total,
		Limit:  limit,
		Offset: input.Offset,
	}
	if len(users) == 0 {
		return page, nil
	}

	ids := make([]uuid.UUID, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}

	entries, err := s.entries.ListCompleted(ctx, boss.OrganizationID, domain.ReportFilter{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}, ids...)
	if err != nil {
		return nil, fmt.Errorf("list completed entries: %w", err)
	}

	byUser := make(map[uuid.UUID][]domain.CompletedEntry, len(users))
	for _, e := range entries {
		byUser[e.UserID] = append(byUser[e.UserID], e)
	}

	for _, u := range users {
		own := byUser[u.ID]
		projects := AggregateByProject(own)

		stats := domain.UserStats{
			UserID:     u.ID,
			Email:      u.Email,
			Role:       u.Role,
			IsActive:   u.IsActive,
			EntryCount: len(own),
			Projects:   projects,
		}
		for _, p := range projects {
			stats.TotalSeconds += p.TotalSeconds
			stats.BillableSeconds += p.BillableSeconds
		}
		page.Items = append(page.Items, stats)
	}

	return page, nil
}
