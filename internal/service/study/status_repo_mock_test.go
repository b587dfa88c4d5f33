package study

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

var _ statusRepo = &statusRepoMock{}

type statusRepoMock struct {
	GetByIDFunc      func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.UserWordStatus, error)
	GetForUpdateFunc func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.UserWordStatus, error)
	UpdateFunc       func(ctx context.Context, s *domain.UserWordStatus) error
	TrashFunc        func(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
	RestoreFunc      func(ctx context.Context, userID uuid.UUID, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		GetForUpdate []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			S   *domain.UserWordStatus
		}
		Trash []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		Restore []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
	}
	lockGetByID      sync.RWMutex
	lockGetForUpdate sync.RWMutex
	lockUpdate       sync.RWMutex
	lockTrash        sync.RWMutex
	lockRestore      sync.RWMutex
}

func (mock *statusRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.UserWordStatus, error) {
	if mock.GetByIDFunc == nil {
		panic("statusRepoMock.GetByIDFunc: method is nil but statusRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		ID:     id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *statusRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *statusRepoMock) GetForUpdate(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.UserWordStatus, error) {
	if mock.GetForUpdateFunc == nil {
		panic("statusRepoMock.GetForUpdateFunc: method is nil but statusRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		ID:     id,
	}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, userID, id)
}

func (mock *statusRepoMock) GetForUpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}
	mock.lockGetForUpdate.RLock()
	calls = mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *statusRepoMock) Update(ctx context.Context, s *domain.UserWordStatus) error {
	if mock.UpdateFunc == nil {
		panic("statusRepoMock.UpdateFunc: method is nil but statusRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.UserWordStatus
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, s)
}

func (mock *statusRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	S   *domain.UserWordStatus
} {
	var calls []struct {
		Ctx context.Context
		S   *domain.UserWordStatus
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *statusRepoMock) Trash(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if mock.TrashFunc == nil {
		panic("statusRepoMock.TrashFunc: method is nil but statusRepo.Trash was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		ID:     id,
	}
	mock.lockTrash.Lock()
	mock.calls.Trash = append(mock.calls.Trash, callInfo)
	mock.lockTrash.Unlock()
	return mock.TrashFunc(ctx, userID, id)
}

func (mock *statusRepoMock) TrashCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}
	mock.lockTrash.RLock()
	calls = mock.calls.Trash
	mock.lockTrash.RUnlock()
	return calls
}

func (mock *statusRepoMock) Restore(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if mock.RestoreFunc == nil {
		panic("statusRepoMock.RestoreFunc: method is nil but statusRepo.Restore was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		ID:     id,
	}
	mock.lockRestore.Lock()
	mock.calls.Restore = append(mock.calls.Restore, callInfo)
	mock.lockRestore.Unlock()
	return mock.RestoreFunc(ctx, userID, id)
}

func (mock *statusRepoMock) RestoreCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}
	mock.lockRestore.RLock()
	calls = mock.calls.Restore
	mock.lockRestore.RUnlock()
	return calls
}
