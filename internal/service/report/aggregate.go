package report

import (
	"slices"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

// AggregateByProject sums completed entries per project. Billable seconds
// count only billable entries. The result is ordered by total seconds
// descending; projects with equal totals keep first-seen order.
func AggregateByProject(entries []domain.CompletedEntry) []domain.ProjectAggregate {
	index := make(map[uuid.UUID]int)
	out := []domain.ProjectAggregate{}

	for _, e := range entries {
		d := domain.DurationSeconds(e.StartTime, e.EndTime)
		if d < 0 {
			continue
		}

		i, ok := index[e.ProjectID]
		if !ok {
			i = len(out)
			index[e.ProjectID] = i
			out = append(out, domain.ProjectAggregate{ProjectID: e.ProjectID, ProjectName: e.ProjectName})
		}
		out[i].TotalSeconds += d
		if e.IsBillable {
			out[i].BillableSeconds += d
		}
	}

	slices.SortStableFunc(out, func(a, b domain.ProjectAggregate) int {
		switch {
		case a.TotalSeconds > b.TotalSeconds:
			return -1
		case a.TotalSeconds < b.TotalSeconds:
			return 1
		}
		return 0
	})
	return out
}
