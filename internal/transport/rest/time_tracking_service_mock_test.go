package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
	"github.com/fpvlvr/esclavizador/internal/service/timetracking"
)

var _ timeTrackingService = &timeTrackingServiceMock{}

type timeTrackingServiceMock struct {
	CreateManualEntryFunc func(ctx context.Context, input timetracking.ManualEntryInput) (*domain.TimeEntry, error)
	DeleteEntryFunc       func(ctx context.Context, entryID uuid.UUID) error
	GetEntryFunc          func(ctx context.Context, entryID uuid.UUID) (*domain.TimeEntry, error)
	GetRunningTimerFunc   func(ctx context.Context) (*domain.TimeEntry, error)
	ListEntriesFunc       func(ctx context.Context, input timetracking.ListEntriesInput) (*domain.TimeEntryPage, error)
	StartTimerFunc        func(ctx context.Context, input timetracking.StartTimerInput) (*domain.TimeEntry, error)
	StopTimerFunc         func(ctx context.Context, entryID uuid.UUID) (*domain.TimeEntry, error)
	UpdateEntryFunc       func(ctx context.Context, input timetracking.UpdateEntryInput) (*domain.TimeEntry, error)

	calls struct {
		CreateManualEntry []struct {
			Ctx   context.Context
			Input timetracking.ManualEntryInput
		}
		DeleteEntry []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
		GetEntry []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
		GetRunningTimer []struct {
			Ctx context.Context
		}
		ListEntries []struct {
			Ctx   context.Context
			Input timetracking.ListEntriesInput
		}
		StartTimer []struct {
			Ctx   context.Context
			Input timetracking.StartTimerInput
		}
		StopTimer []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
		UpdateEntry []struct {
			Ctx   context.Context
			Input timetracking.UpdateEntryInput
		}
	}
	lockCreateManualEntry sync.RWMutex
	lockDeleteEntry       sync.RWMutex
	lockGetEntry          sync.RWMutex
	lockGetRunningTimer   sync.RWMutex
	lockListEntries       sync.RWMutex
	lockStartTimer        sync.RWMutex
	lockStopTimer         sync.RWMutex
	lockUpdateEntry       sync.RWMutex
}

func (mock *timeTrackingServiceMock) CreateManualEntry(ctx context.Context, input timetracking.ManualEntryInput) (*domain.TimeEntry, error) {
	if mock.CreateManualEntryFunc == nil {
		panic("timeTrackingServiceMock.CreateManualEntryFunc: method is nil but timeTrackingService.CreateManualEntry was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input timetracking.ManualEntryInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateManualEntry.Lock()
	mock.calls.CreateManualEntry = append(mock.calls.CreateManualEntry, callInfo)
	mock.lockCreateManualEntry.Unlock()
	return mock.CreateManualEntryFunc(ctx, input)
}

func (mock *timeTrackingServiceMock) CreateManualEntryCalls() []struct {
	Ctx   context.Context
	Input timetracking.ManualEntryInput
} {
	mock.lockCreateManualEntry.RLock()
	calls := mock.calls.CreateManualEntry
	mock.lockCreateManualEntry.RUnlock()
	return calls
}

func (mock *timeTrackingServiceMock) DeleteEntry(ctx context.Context, entryID uuid.UUID) error {
	if mock.DeleteEntryFunc == nil {
		panic("timeTrackingServiceMock.DeleteEntryFunc: method is nil but timeTrackingService.DeleteEntry was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{Ctx: ctx, EntryID: entryID}
	mock.lockDeleteEntry.Lock()
	mock.calls.DeleteEntry = append(mock.calls.DeleteEntry, callInfo)
	mock.lockDeleteEntry.Unlock()
	return mock.DeleteEntryFunc(ctx, entryID)
}

func (mock *timeTrackingServiceMock) DeleteEntryCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
} {
	mock.lockDeleteEntry.RLock()
	calls := mock.calls.DeleteEntry
	mock.lockDeleteEntry.RUnlock()
	return calls
}

func (mock *timeTrackingServiceMock) GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.TimeEntry, error) {
	if mock.GetEntryFunc == nil {
		panic("timeTrackingServiceMock.GetEntryFunc: method is nil but timeTrackingService.GetEntry was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{Ctx: ctx, EntryID: entryID}
	mock.lockGetEntry.Lock()
	mock.calls.GetEntry = append(mock.calls.GetEntry, callInfo)
	mock.lockGetEntry.Unlock()
	return mock.GetEntryFunc(ctx, entryID)
}

func (mock *timeTrackingServiceMock) GetEntryCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
} {
	mock.lockGetEntry.RLock()
	calls := mock.calls.GetEntry
	mock.lockGetEntry.RUnlock()
	return calls
}

func (mock *timeTrackingServiceMock) GetRunningTimer(ctx context.Context) (*domain.TimeEntry, error) {
	if mock.GetRunningTimerFunc == nil {
		panic("timeTrackingServiceMock.GetRunningTimerFunc: method is nil but timeTrackingService.GetRunningTimer was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetRunningTimer.Lock()
	mock.calls.GetRunningTimer = append(mock.calls.GetRunningTimer, callInfo)
	mock.lockGetRunningTimer.Unlock()
	return mock.GetRunningTimerFunc(ctx)
}

func (mock *timeTrackingServiceMock) GetRunningTimerCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetRunningTimer.RLock()
	calls := mock.calls.GetRunningTimer
	mock.lockGetRunningTimer.RUnlock()
	return calls
}

func (mock *timeTrackingServiceMock) ListEntries(ctx context.Context, input timetracking.ListEntriesInput) (*domain.TimeEntryPage, error) {
	if mock.ListEntriesFunc == nil {
		panic("timeTrackingServiceMock.ListEntriesFunc: method is nil but timeTrackingService.ListEntries was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input timetracking.ListEntriesInput
	}{Ctx: ctx, Input: input}
	mock.lockListEntries.Lock()
	mock.calls.ListEntries = append(mock.calls.ListEntries, callInfo)
	mock.lockListEntries.Unlock()
	return mock.ListEntriesFunc(ctx, input)
}

func (mock *timeTrackingServiceMock) ListEntriesCalls() []struct {
	Ctx   context.Context
	Input timetracking.ListEntriesInput
} {
	mock.lockListEntries.RLock()
	calls := mock.calls.ListEntries
	mock.lockListEntries.RUnlock()
	return calls
}

func (mock *timeTrackingServiceMock) StartTimer(ctx context.Context, input timetracking.StartTimerInput) (*domain.TimeEntry, error) {
	if mock.StartTimerFunc == nil {
		panic("timeTrackingServiceMock.StartTimerFunc: method is nil but timeTrackingService.StartTimer was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input timetracking.StartTimerInput
	}{Ctx: ctx, Input: input}
	mock.lockStartTimer.Lock()
	mock.calls.StartTimer = append(mock.calls.StartTimer, callInfo)
	mock.lockStartTimer.Unlock()
	return mock.StartTimerFunc(ctx, input)
}

func (mock *timeTrackingServiceMock) StartTimerCalls() []struct {
	Ctx   context.Context
	Input timetracking.StartTimerInput
} {
	mock.lockStartTimer.RLock()
	calls := mock.calls.StartTimer
	mock.lockStartTimer.RUnlock()
	return calls
}

func (mock *timeTrackingServiceMock) StopTimer(ctx context.Context, entryID uuid.UUID) (*domain.TimeEntry, error) {
	if mock.StopTimerFunc == nil {
		panic("timeTrackingServiceMock.StopTimerFunc: method is nil but timeTrackingService.StopTimer was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{Ctx: ctx, EntryID: entryID}
	mock.lockStopTimer.Lock()
	mock.calls.StopTimer = append(mock.calls.StopTimer, callInfo)
	mock.lockStopTimer.Unlock()
	return mock.StopTimerFunc(ctx, entryID)
}

func (mock *timeTrackingServiceMock) StopTimerCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
} {
	mock.lockStopTimer.RLock()
	calls := mock.calls.StopTimer
	mock.lockStopTimer.RUnlock()
	return calls
}

func (mock *timeTrackingServiceMock) UpdateEntry(ctx context.Context, input timetracking.UpdateEntryInput) (*domain.TimeEntry, error) {
	if mock.UpdateEntryFunc == nil {
		panic("timeTrackingServiceMock.UpdateEntryFunc: method is nil but timeTrackingService.UpdateEntry was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input timetracking.UpdateEntryInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateEntry.Lock()
	mock.calls.UpdateEntry = append(mock.calls.UpdateEntry, callInfo)
	mock.lockUpdateEntry.Unlock()
	return mock.UpdateEntryFunc(ctx, input)
}

func (mock *timeTrackingServiceMock) UpdateEntryCalls() []struct {
	Ctx   context.Context
	Input timetracking.UpdateEntryInput
} {
	mock.lockUpdateEntry.RLock()
	calls := mock.calls.UpdateEntry
	mock.lockUpdateEntry.RUnlock()
	return calls
}
