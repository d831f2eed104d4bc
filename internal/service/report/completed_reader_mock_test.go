package report

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

var _ completedReader = &completedReaderMock{}

type completedReaderMock struct {
	ListCompletedFunc func(ctx context.Context, orgID uuid.UUID, filter domain.ReportFilter, userIDs ...uuid.UUID) ([]domain.CompletedEntry, error)

	calls struct {
		ListCompleted []struct {
			Ctx     context.Context
			OrgID   uuid.UUID
			Filter  domain.ReportFilter
			UserIDs []uuid.UUID
		}
	}
	lockListCompleted sync.RWMutex
}

func (mock *completedReaderMock) ListCompleted(ctx context.Context, orgID uuid.UUID, filter domain.ReportFilter, userIDs ...uuid.UUID) ([]domain.CompletedEntry, error) {
	if mock.ListCompletedFunc == nil {
		panic("completedReaderMock.ListCompletedFunc: method is nil but completedReader.ListCompleted was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OrgID   uuid.UUID
		Filter  domain.ReportFilter
		UserIDs []uuid.UUID
	}{Ctx: ctx, OrgID: orgID, Filter: filter, UserIDs: userIDs}
	mock.lockListCompleted.Lock()
	mock.calls.ListCompleted = append(mock.calls.ListCompleted, callInfo)
	mock.lockListCompleted.Unlock()
	return mock.ListCompletedFunc(ctx, orgID, filter, userIDs...)
}

func (mock *completedReaderMock) ListCompletedCalls() []struct {
	Ctx     context.Context
	OrgID   uuid.UUID
	Filter  domain.ReportFilter
	UserIDs []uuid.UUID
} {
	mock.lockListCompleted.RLock()
	calls := mock.calls.ListCompleted
	mock.lockListCompleted.RUnlock()
	return calls
}
