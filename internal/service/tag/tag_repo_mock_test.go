package tag

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

var _ tagRepo = &tagRepoMock{}

type tagRepoMock struct {
	CreateFunc    func(ctx context.Context, orgID uuid.UUID, name string) (*domain.Tag, error)
	DeleteFunc    func(ctx context.Context, orgID uuid.UUID, tagID uuid.UUID) error
	GetByIDFunc   func(ctx context.Context, orgID uuid.UUID, tagID uuid.UUID) (*domain.Tag, error)
	GetByNameFunc func(ctx context.Context, orgID uuid.UUID, name string) (*domain.Tag, error)
	ListFunc      func(ctx context.Context, orgID uuid.UUID, limit int, offset int) ([]domain.Tag, int, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			OrgID uuid.UUID
			Name  string
		}
		Delete []struct {
			Ctx   context.Context
			OrgID uuid.UUID
			TagID uuid.UUID
		}
		GetByID []struct {
			Ctx   context.Context
			OrgID uuid.UUID
			TagID uuid.UUID
		}
		GetByName []struct {
			Ctx   context.Context
			OrgID uuid.UUID
			Name  string
		}
		List []struct {
			Ctx    context.Context
			OrgID  uuid.UUID
			Limit  int
			Offset int
		}
	}
	lockCreate    sync.RWMutex
	lockDelete    sync.RWMutex
	lockGetByID   sync.RWMutex
	lockGetByName sync.RWMutex
	lockList      sync.RWMutex
}

func (mock *tagRepoMock) Create(ctx context.Context, orgID uuid.UUID, name string) (*domain.Tag, error) {
	if mock.CreateFunc == nil {
		panic("tagRepoMock.CreateFunc: method is nil but tagRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OrgID uuid.UUID
		Name  string
	}{Ctx: ctx, OrgID: orgID, Name: name}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, orgID, name)
}

func (mock *tagRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	OrgID uuid.UUID
	Name  string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *tagRepoMock) Delete(ctx context.Context, orgID uuid.UUID, tagID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("tagRepoMock.DeleteFunc: method is nil but tagRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OrgID uuid.UUID
		TagID uuid.UUID
	}{Ctx: ctx, OrgID: orgID, TagID: tagID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, orgID, tagID)
}

func (mock *tagRepoMock) DeleteCalls() []struct {
	Ctx   context.Context
	OrgID uuid.UUID
	TagID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *tagRepoMock) GetByID(ctx context.Context, orgID uuid.UUID, tagID uuid.UUID) (*domain.Tag, error) {
	if mock.GetByIDFunc == nil {
		panic("tagRepoMock.GetByIDFunc: method is nil but tagRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OrgID uuid.UUID
		TagID uuid.UUID
	}{Ctx: ctx, OrgID: orgID, TagID: tagID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, orgID, tagID)
}

func (mock *tagRepoMock) GetByIDCalls() []struct {
	Ctx   context.Context
	OrgID uuid.UUID
	TagID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *tagRepoMock) GetByName(ctx context.Context, orgID uuid.UUID, name string) (*domain.Tag, error) {
	if mock.GetByNameFunc == nil {
		panic("tagRepoMock.GetByNameFunc: method is nil but tagRepo.GetByName was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OrgID uuid.UUID
		Name  string
	}{Ctx: ctx, OrgID: orgID, Name: name}
	mock.lockGetByName.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, callInfo)
	mock.lockGetByName.Unlock()
	return mock.GetByNameFunc(ctx, orgID, name)
}

func (mock *tagRepoMock) GetByNameCalls() []struct {
	Ctx   context.Context
	OrgID uuid.UUID
	Name  string
} {
	mock.lockGetByName.RLock()
	calls := mock.calls.GetByName
	mock.lockGetByName.RUnlock()
	return calls
}

func (mock *tagRepoMock) List(ctx context.Context, orgID uuid.UUID, limit int, offset int) ([]domain.Tag, int, error) {
	if mock.ListFunc == nil {
		panic("tagRepoMock.ListFunc: method is nil but tagRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		OrgID  uuid.UUID
		Limit  int
		Offset int
	}{Ctx: ctx, OrgID: orgID, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, orgID, limit, offset)
}

func (mock *tagRepoMock) ListCalls() []struct {
	Ctx    context.Context
	OrgID  uuid.UUID
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
