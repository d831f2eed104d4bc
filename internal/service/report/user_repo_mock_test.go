package report

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDInOrgFunc func(ctx context.Context, orgID uuid.UUID, userID uuid.UUID) (*domain.User, error)
	ListFunc         func(ctx context.Context, orgID uuid.UUID, filter domain.UserFilter, limit int, offset int) ([]*domain.User, int, error)

	calls struct {
		GetByIDInOrg []struct {
			Ctx    context.Context
			OrgID  uuid.UUID
			UserID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			OrgID  uuid.UUID
			Filter domain.UserFilter
			Limit  int
			Offset int
		}
	}
	lockGetByIDInOrg sync.RWMutex
	lockList         sync.RWMutex
}

func (mock *userRepoMock) GetByIDInOrg(ctx context.Context, orgID uuid.UUID, userID uuid.UUID) (*domain.User, error) {
	if mock.GetByIDInOrgFunc == nil {
		panic("userRepoMock.GetByIDInOrgFunc: method is nil but userRepo.GetByIDInOrg was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		OrgID  uuid.UUID
		UserID uuid.UUID
	}{Ctx: ctx, OrgID: orgID, UserID: userID}
	mock.lockGetByIDInOrg.Lock()
	mock.calls.GetByIDInOrg = append(mock.calls.GetByIDInOrg, callInfo)
	mock.lockGetByIDInOrg.Unlock()
	return mock.GetByIDInOrgFunc(ctx, orgID, userID)
}

func (mock *userRepoMock) GetByIDInOrgCalls() []struct {
	Ctx    context.Context
	OrgID  uuid.UUID
	UserID uuid.UUID
} {
	mock.lockGetByIDInOrg.RLock()
	calls := mock.calls.GetByIDInOrg
	mock.lockGetByIDInOrg.RUnlock()
	return calls
}

func (mock *userRepoMock) List(ctx context.Context, orgID uuid.UUID, filter domain.UserFilter, limit int, offset int) ([]*domain.User, int, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		OrgID  uuid.UUID
		Filter domain.UserFilter
		Limit  int
		Offset int
	}{Ctx: ctx, OrgID: orgID, Filter: filter, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, orgID, filter, limit, offset)
}

func (mock *userRepoMock) ListCalls() []struct {
	Ctx    context.Context
	OrgID  uuid.UUID
	Filter domain.UserFilter
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
