package timetracking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

// TagAssociator validates tag sets against an organization and replaces the
// tag set of an entry. It owns every write to the entry/tag join.
type TagAssociator struct {
	tags tagRepo
}

// NewTagAssociator creates a TagAssociator over the given tag repository.
func NewTagAssociator(tags tagRepo) *TagAssociator {
	return &TagAssociator{tags: tags}
}

// Validate resolves tagIDs inside orgID. Duplicate ids collapse. When any id
// does not resolve, the error lists every missing id in input order.
func (a *TagAssociator) Validate(ctx context.Context, orgID uuid.UUID, tagIDs []uuid.UUID) ([]domain.Tag, error) {
	ids := dedupe(tagIDs)
	if len(ids) == 0 {
		return []domain.Tag{}, nil
	}

	found, err := a.tags.GetByIDs(ctx, orgID, ids)
	if err != nil {
		return nil, fmt.Errorf("validate tags: %w", err)
	}
	if len(found) == len(ids) {
		return found, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(found))
	for _, t := range found {
		seen[t.ID] = struct{}{}
	}
	var missing []uuid.UUID
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			missing = append(missing, id)
		}
	}
	return nil, domain.MissingTagsError(missing)
}

// Replace makes tagIDs the exact tag set of entryID. An empty set clears it.
// Calling it twice with the same ids leaves the same state.
func (a *TagAssociator) Replace(ctx context.Context, entryID uuid.UUID, tagIDs []uuid.UUID) error {
	if err := a.tags.ReplaceForEntry(ctx, entryID, dedupe(tagIDs)); err != nil {
		return fmt.Errorf("replace entry tags: %w", err)
	}
	return nil
}

// dedupe drops repeated ids and keeps first-seen order. Never returns nil.
func dedupe(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
