package timetracking

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDInOrgFunc func(ctx context.Context, orgID uuid.UUID, userID uuid.UUID) (*domain.User, error)

	calls struct {
		GetByIDInOrg []struct {
			Ctx    context.Context
			OrgID  uuid.UUID
			UserID uuid.UUID
		}
	}
	lockGetByIDInOrg sync.RWMutex
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
