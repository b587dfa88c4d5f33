package study

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

var _ reviewRepo = &reviewRepoMock{}

type reviewRepoMock struct {
	CreateFunc       func(ctx context.Context, r *domain.WordReview) error
	ListByStatusFunc func(ctx context.Context, userID uuid.UUID, statusID uuid.UUID, limit int) ([]domain.WordReview, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			R   *domain.WordReview
		}
		ListByStatus []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			StatusID uuid.UUID
			Limit    int
		}
	}
	lockCreate       sync.RWMutex
	lockListByStatus sync.RWMutex
}

func (mock *reviewRepoMock) Create(ctx context.Context, r *domain.WordReview) error {
	if mock.CreateFunc == nil {
		panic("reviewRepoMock.CreateFunc: method is nil but reviewRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		R   *domain.WordReview
	}{
		Ctx: ctx,
		R:   r,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, r)
}

func (mock *reviewRepoMock) CreateCalls() []struct {
	Ctx context.Context
	R   *domain.WordReview
} {
	var calls []struct {
		Ctx context.Context
		R   *domain.WordReview
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reviewRepoMock) ListByStatus(ctx context.Context, userID uuid.UUID, statusID uuid.UUID, limit int) ([]domain.WordReview, error) {
	if mock.ListByStatusFunc == nil {
		panic("reviewRepoMock.ListByStatusFunc: method is nil but reviewRepo.ListByStatus was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		StatusID uuid.UUID
		Limit    int
	}{
		Ctx:      ctx,
		UserID:   userID,
		StatusID: statusID,
		Limit:    limit,
	}
	mock.lockListByStatus.Lock()
	mock.calls.ListByStatus = append(mock.calls.ListByStatus, callInfo)
	mock.lockListByStatus.Unlock()
	return mock.ListByStatusFunc(ctx, userID, statusID, limit)
}

func (mock *reviewRepoMock) ListByStatusCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	StatusID uuid.UUID
	Limit    int
} {
	var calls []struct {
		Ctx      context.Context
		UserID   uuid.UUID
		StatusID uuid.UUID
		Limit    int
	}
	mock.lockListByStatus.RLock()
	calls = mock.calls.ListByStatus
	mock.lockListByStatus.RUnlock()
	return calls
}
