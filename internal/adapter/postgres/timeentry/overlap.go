package timeentry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	postgres "github.com/fpvlvr/esclavizador/internal/adapter/postgres"
)

// A running entry occupies [start_time, +inf); a completed one uses the
// half-open test existing.start < end AND existing.end > start.
const overlapSQL = `
SELECT EXISTS (
    SELECT 1
    FROM time_entries
    WHERE user_id = $1
      AND ($4::uuid IS NULL OR id <> $4)
      AND start_time < $3
      AND (is_running OR end_time > $2)
)`

// HasOverlap reports whether [start, end) intersects any other entry of
// userID. excludeID skips the entry being updated. Both bounds are compared
// as UTC instants; the caller guarantees start < end.
func (r *Repo) HasOverlap(ctx context.Context, userID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, overlapSQL, userID, start.UTC(), end.UTC(), excludeID).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check overlap for user %s: %w", userID, err)
	}
	return exists, nil
}
