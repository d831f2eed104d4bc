package timetracking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

var _ overlapChecker = &overlapCheckerMock{}

type overlapCheckerMock struct {
	HasOverlapFunc func(ctx context.Context, userID uuid.UUID, start time.Time, end time.Time, excludeID *uuid.UUID) (bool, error)

	calls struct {
		HasOverlap []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			Start     time.Time
			End       time.Time
			ExcludeID *uuid.UUID
		}
	}
	lockHasOverlap sync.RWMutex
}

func (mock *overlapCheckerMock) HasOverlap(ctx context.Context, userID uuid.UUID, start time.Time, end time.Time, excludeID *uuid.UUID) (bool, error) {
	if mock.HasOverlapFunc == nil {
		panic("overlapCheckerMock.HasOverlapFunc: method is nil but overlapChecker.HasOverlap was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		Start     time.Time
		End       time.Time
		ExcludeID *uuid.UUID
	}{Ctx: ctx, UserID: userID, Start: start, End: end, ExcludeID: excludeID}
	mock.lockHasOverlap.Lock()
	mock.calls.HasOverlap = append(mock.calls.HasOverlap, callInfo)
	mock.lockHasOverlap.Unlock()
	return mock.HasOverlapFunc(ctx, userID, start, end, excludeID)
}

func (mock *overlapCheckerMock) HasOverlapCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	Start     time.Time
	End       time.Time
	ExcludeID *uuid.UUID
} {
	mock.lockHasOverlap.RLock()
	calls := mock.calls.HasOverlap
	mock.lockHasOverlap.RUnlock()
	return calls
}
