package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/deeplisten-backend/internal/domain"
	"github.com/heartmarshall/deeplisten-backend/internal/service/study"
)

var _ studyService = &studyServiceMock{}

type studyServiceMock struct {
	SubmitReviewFunc  func(ctx context.Context, input study.SubmitReviewInput) (*domain.UserWordStatus, error)
	GetStatusFunc     func(ctx context.Context, statusID uuid.UUID) (*domain.UserWordStatus, error)
	ListReviewsFunc   func(ctx context.Context, input study.ListReviewsInput) ([]domain.WordReview, error)
	TrashStatusFunc   func(ctx context.Context, statusID uuid.UUID) error
	RestoreStatusFunc func(ctx context.Context, statusID uuid.UUID) (*domain.UserWordStatus, error)

	calls struct {
		SubmitReview []struct {
			Ctx   context.Context
			Input study.SubmitReviewInput
		}
		GetStatus []struct {
			Ctx      context.Context
			StatusID uuid.UUID
		}
		ListReviews []struct {
			Ctx   context.Context
			Input study.ListReviewsInput
		}
		TrashStatus []struct {
			Ctx      context.Context
			StatusID uuid.UUID
		}
		RestoreStatus []struct {
			Ctx      context.Context
			StatusID uuid.UUID
		}
	}
	lockSubmitReview  sync.RWMutex
	lockGetStatus     sync.RWMutex
	lockListReviews   sync.RWMutex
	lockTrashStatus   sync.RWMutex
	lockRestoreStatus sync.RWMutex
}

func (mock *studyServiceMock) SubmitReview(ctx context.Context, input study.SubmitReviewInput) (*domain.UserWordStatus, error) {
	if mock.SubmitReviewFunc == nil {
		panic("studyServiceMock.SubmitReviewFunc: method is nil but studyService.SubmitReview was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.SubmitReviewInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSubmitReview.Lock()
	mock.calls.SubmitReview = append(mock.calls.SubmitReview, callInfo)
	mock.lockSubmitReview.Unlock()
	return mock.SubmitReviewFunc(ctx, input)
}

func (mock *studyServiceMock) SubmitReviewCalls() []struct {
	Ctx   context.Context
	Input study.SubmitReviewInput
} {
	var calls []struct {
		Ctx   context.Context
		Input study.SubmitReviewInput
	}
	mock.lockSubmitReview.RLock()
	calls = mock.calls.SubmitReview
	mock.lockSubmitReview.RUnlock()
	return calls
}

func (mock *studyServiceMock) GetStatus(ctx context.Context, statusID uuid.UUID) (*domain.UserWordStatus, error) {
	if mock.GetStatusFunc == nil {
		panic("studyServiceMock.GetStatusFunc: method is nil but studyService.GetStatus was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		StatusID uuid.UUID
	}{
		Ctx:      ctx,
		StatusID: statusID,
	}
	mock.lockGetStatus.Lock()
	mock.calls.GetStatus = append(mock.calls.GetStatus, callInfo)
	mock.lockGetStatus.Unlock()
	return mock.GetStatusFunc(ctx, statusID)
}

func (mock *studyServiceMock) GetStatusCalls() []struct {
	Ctx      context.Context
	StatusID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		StatusID uuid.UUID
	}
	mock.lockGetStatus.RLock()
	calls = mock.calls.GetStatus
	mock.lockGetStatus.RUnlock()
	return calls
}

func (mock *studyServiceMock) ListReviews(ctx context.Context, input study.ListReviewsInput) ([]domain.WordReview, error) {
	if mock.ListReviewsFunc == nil {
		panic("studyServiceMock.ListReviewsFunc: method is nil but studyService.ListReviews was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.ListReviewsInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListReviews.Lock()
	mock.calls.ListReviews = append(mock.calls.ListReviews, callInfo)
	mock.lockListReviews.Unlock()
	return mock.ListReviewsFunc(ctx, input)
}

func (mock *studyServiceMock) ListReviewsCalls() []struct {
	Ctx   context.Context
	Input study.ListReviewsInput
} {
	var calls []struct {
		Ctx   context.Context
		Input study.ListReviewsInput
	}
	mock.lockListReviews.RLock()
	calls = mock.calls.ListReviews
	mock.lockListReviews.RUnlock()
	return calls
}

func (mock *studyServiceMock) TrashStatus(ctx context.Context, statusID uuid.UUID) error {
	if mock.TrashStatusFunc == nil {
		panic("studyServiceMock.TrashStatusFunc: method is nil but studyService.TrashStatus was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		StatusID uuid.UUID
	}{
		Ctx:      ctx,
		StatusID: statusID,
	}
	mock.lockTrashStatus.Lock()
	mock.calls.TrashStatus = append(mock.calls.TrashStatus, callInfo)
	mock.lockTrashStatus.Unlock()
	return mock.TrashStatusFunc(ctx, statusID)
}

func (mock *studyServiceMock) TrashStatusCalls() []struct {
	Ctx      context.Context
	StatusID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		StatusID uuid.UUID
	}
	mock.lockTrashStatus.RLock()
	calls = mock.calls.TrashStatus
	mock.lockTrashStatus.RUnlock()
	return calls
}

func (mock *studyServiceMock) RestoreStatus(ctx context.Context, statusID uuid.UUID) (*domain.UserWordStatus, error) {
	if mock.RestoreStatusFunc == nil {
		panic("studyServiceMock.RestoreStatusFunc: method is nil but studyService.RestoreStatus was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		StatusID uuid.UUID
	}{
		Ctx:      ctx,
		StatusID: statusID,
	}
	mock.lockRestoreStatus.Lock()
	mock.calls.RestoreStatus = append(mock.calls.RestoreStatus, callInfo)
	mock.lockRestoreStatus.Unlock()
	return mock.RestoreStatusFunc(ctx, statusID)
}

func (mock *studyServiceMock) RestoreStatusCalls() []struct {
	Ctx      context.Context
	StatusID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		StatusID uuid.UUID
	}
	mock.lockRestoreStatus.RLock()
	calls = mock.calls.RestoreStatus
	mock.lockRestoreStatus.RUnlock()
	return calls
}
