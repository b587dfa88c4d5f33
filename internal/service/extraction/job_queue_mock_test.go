package extraction

import (
	"context"
	"sync"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

var _ jobQueue = &jobQueueMock{}

type jobQueueMock struct {
	EnqueueFunc func(ctx context.Context, kind domain.JobKind, payload any) (*domain.Job, error)

	calls struct {
		Enqueue []struct {
			Ctx     context.Context
			Kind    domain.JobKind
			Payload any
		}
	}
	lockEnqueue sync.RWMutex
}

func (mock *jobQueueMock) Enqueue(ctx context.Context, kind domain.JobKind, payload any) (*domain.Job, error) {
	if mock.EnqueueFunc == nil {
		panic("jobQueueMock.EnqueueFunc: method is nil but jobQueue.Enqueue was just called")
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

func (mock *jobQueueMock) EnqueueCalls() []struct {
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
