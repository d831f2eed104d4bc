package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

// ProjectReport returns per-project totals over the completed entries of the
// caller's organization. Only bosses may read it.
func (s *Service) ProjectReport(ctx context.Context, input ProjectReportInput) ([]domain.ProjectAggregate, error) {
	boss, err := requireBoss(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.UserID != nil {
		if err := s.checkUser(ctx, boss.OrganizationID, *input.UserID); err != nil {
			return nil, err
		}
	}

	entries, err := s.entries.ListCompleted(ctx, boss.OrganizationID, domain.ReportFilter{
		UserID:    input.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("list completed entries: %w", err)
	}

	aggregates := AggregateByProject(entries)

	s.log.DebugContext(ctx, "project report computed",
		slog.String("user_id", boss.ID.String()),
		slog.Int("entries", len(entries)),
		slog.Int("projects", len(aggregates)),
	)

	return aggregates, nil
}
