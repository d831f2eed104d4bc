package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	DeleteFunc       func(ctx context.Context, orgID uuid.UUID, userID uuid.UUID) error
	GetByIDInOrgFunc func(ctx context.Context, orgID uuid.UUID, userID uuid.UUID) (*domain.User, error)
	ListFunc         func(ctx context.Context, orgID uuid.UUID, filter domain.UserFilter, limit int, offset int) ([]*domain.User, int, error)
	UpdateFunc       func(ctx context.Context, orgID uuid.UUID, userID uuid.UUID, params domain.UserUpdateParams) (*domain.User, error)

	calls struct {
		Delete []struct {
			Ctx    context.Context
			OrgID  uuid.UUID
			UserID uuid.UUID
		}
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
		Update []struct {
			Ctx    context.Context
			OrgID  uuid.UUID
			UserID uuid.UUID
			Params domain.UserUpdateParams
		}
	}
	lockDelete       sync.RWMutex
	lockGetByIDInOrg sync.RWMutex
	lockList         sync.RWMutex
	lockUpdate       sync.RWMutex
}

func (mock *userRepoMock) Delete(ctx context.Context, orgID uuid.UUID, userID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("userRepoMock.DeleteFunc: method is nil but userRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		OrgID  uuid.UUID
		UserID uuid.UUID
	}{Ctx: ctx, OrgID: orgID, UserID: userID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, orgID, userID)
}

func (mock *userRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	OrgID  uuid.UUID
	UserID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
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

func (mock *userRepoMock) Update(ctx context.Context, orgID uuid.UUID, userID uuid.UUID, params domain.UserUpdateParams) (*domain.User, error) {
	if mock.UpdateFunc == nil {
		panic("userRepoMock.UpdateFunc: method is nil but userRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		OrgID  uuid.UUID
		UserID uuid.UUID
		Params domain.UserUpdateParams
	}{Ctx: ctx, OrgID: orgID, UserID: userID, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, orgID, userID, params)
}

func (mock *userRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	OrgID  uuid.UUID
	UserID uuid.UUID
	Params domain.UserUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
