package queue

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

var _ jobRepo = &jobRepoMock{}

type jobRepoMock struct {
	EnqueueFunc         func(ctx context.Context, kind domain.JobKind, payload any) (*domain.Job, error)
	ClaimNextFunc       func(ctx context.Context) (*domain.Job, error)
	MarkDoneFunc        func(ctx context.Context, id uuid.UUID) error
	MarkFailedFunc      func(ctx context.Context, id uuid.UUID, errMsg string) error
	ReleaseFunc         func(ctx context.Context, id uuid.UUID) error
	ResetProcessingFunc func(ctx context.Context) (int, error)
	RetryFailedFunc     func(ctx context.Context) (int, error)
	StatsFunc           func(ctx context.Context) (domain.JobStats, error)
	ListFunc            func(ctx context.Context, status domain.JobStatus, limit int, offset int) ([]domain.Job, error)

	calls struct {
		Enqueue []struct {
			Ctx     context.Context
			Kind    domain.JobKind
			Payload any
		}
		ClaimNext []struct {
			Ctx context.Context
		}
		MarkDone []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		MarkFailed []struct {
			Ctx    context.Context
			ID     uuid.UUID
			ErrMsg string
		}
		Release []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ResetProcessing []struct {
			Ctx context.Context
		}
		RetryFailed []struct {
			Ctx context.Context
		}
		Stats []struct {
			Ctx context.Context
		}
		List []struct {
			Ctx    context.Context
			Status domain.JobStatus
			Limit  int
			Offset int
		}
	}
	lockEnqueue         sync.RWMutex
	lockClaimNext       sync.RWMutex
	lockMarkDone        sync.RWMutex
	lockMarkFailed      sync.RWMutex
	lockRelease         sync.RWMutex
	lockResetProcessing sync.RWMutex
	lockRetryFailed     sync.RWMutex
	lockStats           sync.RWMutex
	lockList            sync.RWMutex
}

func (mock *jobRepoMock) Enqueue(ctx context.Context, kind domain.JobKind, payload any) (*domain.Job, error) {
	if mock.EnqueueFunc == nil {
		panic("jobRepoMock.EnqueueFunc: method is nil but jobRepo.Enqueue was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Kind    domain.JobKind
		Payload any
	}{
		Ctx:     ctx,
		Kind:    kind,
		Payload: payload,
	}
	mock.lockEnqueue.Lock()
	mock.calls.Enqueue = append(mock.calls.Enqueue, callInfo)
	mock.lockEnqueue.Unlock()
	return mock.EnqueueFunc(ctx, kind, payload)
}

func (mock *jobRepoMock) EnqueueCalls() []struct {
	Ctx     context.Context
	Kind    domain.JobKind
	Payload any
} {
	var calls []struct {
		Ctx     context.Context
		Kind    domain.JobKind
		Payload any
	}
	mock.lockEnqueue.RLock()
	calls = mock.calls.Enqueue
	mock.lockEnqueue.RUnlock()
	return calls
}

func (mock *jobRepoMock) ClaimNext(ctx context.Context) (*domain.Job, error) {
	if mock.ClaimNextFunc == nil {
		panic("jobRepoMock.ClaimNextFunc: method is nil but jobRepo.ClaimNext was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockClaimNext.Lock()
	mock.calls.ClaimNext = append(mock.calls.ClaimNext, callInfo)
	mock.lockClaimNext.Unlock()
	return mock.ClaimNextFunc(ctx)
}

func (mock *jobRepoMock) ClaimNextCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockClaimNext.RLock()
	calls = mock.calls.ClaimNext
	mock.lockClaimNext.RUnlock()
	return calls
}

func (mock *jobRepoMock) MarkDone(ctx context.Context, id uuid.UUID) error {
	if mock.MarkDoneFunc == nil {
		panic("jobRepoMock.MarkDoneFunc: method is nil but jobRepo.MarkDone was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockMarkDone.Lock()
	mock.calls.MarkDone = append(mock.calls.MarkDone, callInfo)
	mock.lockMarkDone.Unlock()
	return mock.MarkDoneFunc(ctx, id)
}

func (mock *jobRepoMock) MarkDoneCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockMarkDone.RLock()
	calls = mock.calls.MarkDone
	mock.lockMarkDone.RUnlock()
	return calls
}

func (mock *jobRepoMock) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	if mock.MarkFailedFunc == nil {
		panic("jobRepoMock.MarkFailedFunc: method is nil but jobRepo.MarkFailed was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		ErrMsg string
	}{
		Ctx:    ctx,
		ID:     id,
		ErrMsg: errMsg,
	}
	mock.lockMarkFailed.Lock()
	mock.calls.MarkFailed = append(mock.calls.MarkFailed, callInfo)
	mock.lockMarkFailed.Unlock()
	return mock.MarkFailedFunc(ctx, id, errMsg)
}

func (mock *jobRepoMock) MarkFailedCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	ErrMsg string
} {
	var calls []struct {
		Ctx    context.Context
		ID     uuid.UUID
		ErrMsg string
	}
	mock.lockMarkFailed.RLock()
	calls = mock.calls.MarkFailed
	mock.lockMarkFailed.RUnlock()
	return calls
}

func (mock *jobRepoMock) Release(ctx context.Context, id uuid.UUID) error {
	if mock.ReleaseFunc == nil {
		panic("jobRepoMock.ReleaseFunc: method is nil but jobRepo.Release was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockRelease.Lock()
	mock.calls.Release = append(mock.calls.Release, callInfo)
	mock.lockRelease.Unlock()
	return mock.ReleaseFunc(ctx, id)
}

func (mock *jobRepoMock) ReleaseCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockRelease.RLock()
	calls = mock.calls.Release
	mock.lockRelease.RUnlock()
	return calls
}

func (mock *jobRepoMock) ResetProcessing(ctx context.Context) (int, error) {
	if mock.ResetProcessingFunc == nil {
		panic("jobRepoMock.ResetProcessingFunc: method is nil but jobRepo.ResetProcessing was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockResetProcessing.Lock()
	mock.calls.ResetProcessing = append(mock.calls.ResetProcessing, callInfo)
	mock.lockResetProcessing.Unlock()
	return mock.ResetProcessingFunc(ctx)
}

func (mock *jobRepoMock) ResetProcessingCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockResetProcessing.RLock()
	calls = mock.calls.ResetProcessing
	mock.lockResetProcessing.RUnlock()
	return calls
}

func (mock *jobRepoMock) RetryFailed(ctx context.Context) (int, error) {
	if mock.RetryFailedFunc == nil {
		panic("jobRepoMock.RetryFailedFunc: method is nil but jobRepo.RetryFailed was just called")
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

func (mock *jobRepoMock) RetryFailedCalls() []struct {
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

func (mock *jobRepoMock) Stats(ctx context.Context) (domain.JobStats, error) {
	if mock.StatsFunc == nil {
		panic("jobRepoMock.StatsFunc: method is nil but jobRepo.Stats was just called")
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

func (mock *jobRepoMock) StatsCalls() []struct {
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

func (mock *jobRepoMock) List(ctx context.Context, status domain.JobStatus, limit int, offset int) ([]domain.Job, error) {
	if mock.ListFunc == nil {
		panic("jobRepoMock.ListFunc: method is nil but jobRepo.List was just called")
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

func (mock *jobRepoMock) ListCalls() []struct {
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
