package extraction

import (
	"context"
	"sync"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	ExtractionCompletedFunc func(ctx context.Context, summary domain.ExtractionSummary) error

	calls struct {
		ExtractionCompleted []struct {
			Ctx     context.Context
			Summary domain.ExtractionSummary
		}
	}
	lockExtractionCompleted sync.RWMutex
}

func (mock *notifierMock) ExtractionCompleted(ctx context.Context, summary domain.ExtractionSummary) error {
	if mock.ExtractionCompletedFunc == nil {
		panic("notifierMock.ExtractionCompletedFunc: method is nil but notifier.ExtractionCompleted was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Summary domain.ExtractionSummary
	}{
		Ctx:     ctx,
		Summary: summary,
	}
	mock.lockExtractionCompleted.Lock()
	mock.calls.ExtractionCompleted = append(mock.calls.ExtractionCompleted, callInfo)
	mock.lockExtractionCompleted.Unlock()
	return mock.ExtractionCompletedFunc(ctx, summary)
}

func (mock *notifierMock) ExtractionCompletedCalls() []struct {
	Ctx     context.Context
	Summary domain.ExtractionSummary
} {
	var calls []struct {
		Ctx     context.Context
		Summary domain.ExtractionSummary
	}
	mock.lockExtractionCompleted.RLock()
	calls = mock.calls.ExtractionCompleted
	mock.lockExtractionCompleted.RUnlock()
	return calls
}
