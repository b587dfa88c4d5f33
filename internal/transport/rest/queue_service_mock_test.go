package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

var _ queueService = &queueServiceMock{}

type queueServiceMock struct {
	StatsFunc       func(ctx context.Context) (domain.JobStats, error)
	ListFunc        func(ctx context.Context, status domain.JobStatus, limit int, offset int) ([]domain.Job, error)
	RetryFailedFunc func(ctx context.Context) (int, error)

	calls struct {
		Stats []struct {
			Ctx context.Context
		}
		List []struct {
			Ctx    context.Context
			Status domain.JobStatus
			Limit  int
			Offset int
		}
		RetryFailed []struct {
			Ctx context.Context
		}
	}
	lockStats       sync.RWMutex
	lockList        sync.RWMutex
	lockRetryFailed sync.RWMutex
}

func (mock *queueServiceMock) Stats(ctx context.Context) (domain.JobStats, error) {
	if mock.StatsFunc == nil {
		panic("queueServiceMock.StatsFunc: method is nil but queueService.Stats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *queueServiceMock) StatsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockStats.RLock()
	calls = mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

func (mock *queueServiceMock) List(ctx context.Context, status domain.JobStatus, limit int, offset int) ([]domain.Job, error) {
	if mock.ListFunc == nil {
		panic("queueServiceMock.ListFunc: method is nil but queueService.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Status domain.JobStatus
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		Status: status,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, status, limit, offset)
}

func (mock *queueServiceMock) ListCalls() []struct {
	Ctx    context.Context
	Status domain.JobStatus
	Limit  int
	Offset int
} {
	var calls []struct {
		Ctx    context.Context
		Status domain.JobStatus
		Limit  int
		Offset int
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *queueServiceMock) RetryFailed(ctx context.Context) (int, error) {
	if mock.RetryFailedFunc == nil {
		panic("queueServiceMock.RetryFailedFunc: method is nil but queueService.RetryFailed was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockRetryFailed.Lock()
	mock.calls.RetryFailed = append(mock.calls.RetryFailed, callInfo)
	mock.lockRetryFailed.Unlock()
	return mock.RetryFailedFunc(ctx)
}

func (mock *queueServiceMock) RetryFailedCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockRetryFailed.RLock()
	calls = mock.calls.RetryFailed
	mock.lockRetryFailed.RUnlock()
	return calls
}
