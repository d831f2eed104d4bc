package timetracking

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

var _ tagRepo = &tagRepoMock{}

type tagRepoMock struct {
	GetByIDsFunc        func(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]domain.Tag, error)
	ReplaceForEntryFunc func(ctx context.Context, entryID uuid.UUID, tagIDs []uuid.UUID) error

	calls struct {
		GetByIDs []struct {
			Ctx   context.Context
			OrgID uuid.UUID
			Ids   []uuid.UUID
		}
		ReplaceForEntry []struct {
			Ctx     context.Context
			EntryID uuid.UUID
			TagIDs  []uuid.UUID
		}
	}
	lockGetByIDs        sync.RWMutex
	lockReplaceForEntry sync.RWMutex
}

func (mock *tagRepoMock) GetByIDs(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]domain.Tag, error) {
	if mock.GetByIDsFunc == nil {
		panic("tagRepoMock.GetByIDsFunc: method is nil but tagRepo.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OrgID uuid.UUID
		Ids   []uuid.UUID
	}{Ctx: ctx, OrgID: orgID, Ids: ids}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, orgID, ids)
}

func (mock *tagRepoMock) GetByIDsCalls() []struct {
	Ctx   context.Context
	OrgID uuid.UUID
	Ids   []uuid.UUID
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}

func (mock *tagRepoMock) ReplaceForEntry(ctx context.Context, entryID uuid.UUID, tagIDs []uuid.UUID) error {
	if mock.ReplaceForEntryFunc == nil {
		panic("tagRepoMock.ReplaceForEntryFunc: method is nil but tagRepo.ReplaceForEntry was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
		TagIDs  []uuid.UUID
	}{Ctx: ctx, EntryID: entryID, TagIDs: tagIDs}
	mock.lockReplaceForEntry.Lock()
	mock.calls.ReplaceForEntry = append(mock.calls.ReplaceForEntry, callInfo)
	mock.lockReplaceForEntry.Unlock()
	return mock.ReplaceForEntryFunc(ctx, entryID, tagIDs)
}

func (mock *tagRepoMock) ReplaceForEntryCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
	TagIDs  []uuid.UUID
} {
	mock.lockReplaceForEntry.RLock()
	calls := mock.calls.ReplaceForEntry
	mock.lockReplaceForEntry.RUnlock()
	return calls
}
