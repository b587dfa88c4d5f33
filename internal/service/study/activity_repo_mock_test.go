package study

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	IncrementFunc func(ctx context.Context, userID uuid.UUID, date time.Time, delta domain.ActivityDelta) error

	calls struct {
		Increment []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Date   time.Time
			Delta  domain.ActivityDelta
		}
	}
	lockIncrement sync.RWMutex
}

func (mock *activityRepoMock) Increment(ctx context.Context, userID uuid.UUID, date time.Time, delta domain.ActivityDelta) error {
	if mock.IncrementFunc == nil {
		panic("activityRepoMock.IncrementFunc: method is nil but activityRepo.Increment was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Date   time.Time
		Delta  domain.ActivityDelta
	}{
		Ctx:    ctx,
		UserID: userID,
		Date:   date,
		Delta:  delta,
	}
	mock.lockIncrement.Lock()
	mock.calls.Increment = append(mock.calls.Increment, callInfo)
	mock.lockIncrement.Unlock()
	return mock.IncrementFunc(ctx, userID, date, delta)
}

func (mock *activityRepoMock) IncrementCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Date   time.Time
	Delta  domain.ActivityDelta
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Date   time.Time
		Delta  domain.ActivityDelta
	}
	mock.lockIncrement.RLock()
	calls = mock.calls.Increment
	mock.lockIncrement.RUnlock()
	return calls
}
