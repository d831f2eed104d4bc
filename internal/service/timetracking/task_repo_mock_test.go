package timetracking

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

var _ taskRepo = &taskRepoMock{}

type taskRepoMock struct {
	GetByIDFunc func(ctx context.Context, orgID uuid.UUID, taskID uuid.UUID) (*domain.Task, error)

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			OrgID  uuid.UUID
			TaskID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *taskRepoMock) GetByID(ctx context.Context, orgID uuid.UUID, taskID uuid.UUID) (*domain.Task, error) {
	if mock.GetByIDFunc == nil {
		panic("taskRepoMock.GetByIDFunc: method is nil but taskRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		OrgID  uuid.UUID
		TaskID uuid.UUID
	}{Ctx: ctx, OrgID: orgID, TaskID: taskID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, orgID, taskID)
}

func (mock *taskRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	OrgID  uuid.UUID
	TaskID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
