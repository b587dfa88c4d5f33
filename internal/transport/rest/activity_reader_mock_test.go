package rest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

var _ activityReader = &activityReaderMock{}

type activityReaderMock struct {
	GetFunc func(ctx context.Context, userID uuid.UUID, date time.Time) (domain.DailyActivity, error)

	calls struct {
		Get []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Date   time.Time
		}
	}
	lockGet sync.RWMutex
}

func (mock *activityReaderMock) Get(ctx context.Context, userID uuid.UUID, date time.Time) (domain.DailyActivity, error) {
	if mock.GetFunc == nil {
		panic("activityReaderMock.GetFunc: method is nil but activityReader.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Date   time.Time
	}{
		Ctx:    ctx,
		UserID: userID,
		Date:   date,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID, date)
}

func (mock *activityReaderMock) GetCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Date   time.Time
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Date   time.Time
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}
