package extraction

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

var _ statusRepo = &statusRepoMock{}

type statusRepoMock struct {
	EnsureForWordsFunc func(ctx context.Context, userID uuid.UUID, wordIDs []uuid.UUID) (map[uuid.UUID]domain.StatusOutcome, error)

	calls struct {
		EnsureForWords []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			WordIDs []uuid.UUID
		}
	}
	lockEnsureForWords sync.RWMutex
}

func (mock *statusRepoMock) EnsureForWords(ctx context.Context, userID uuid.UUID, wordIDs []uuid.UUID) (map[uuid.UUID]domain.StatusOutcome, error) {
	if mock.EnsureForWordsFunc == nil {
		panic("statusRepoMock.EnsureForWordsFunc: method is nil but statusRepo.EnsureForWords was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		WordIDs []uuid.UUID
	}{
		Ctx:     ctx,
		UserID:  userID,
		WordIDs: wordIDs,
	}
	mock.lockEnsureForWords.Lock()
	mock.calls.EnsureForWords = append(mock.calls.EnsureForWords, callInfo)
	mock.lockEnsureForWords.Unlock()
	return mock.EnsureForWordsFunc(ctx, userID, wordIDs)
}

func (mock *statusRepoMock) EnsureForWordsCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	WordIDs []uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		UserID  uuid.UUID
		WordIDs []uuid.UUID
	}
	mock.lockEnsureForWords.RLock()
	calls = mock.calls.EnsureForWords
	mock.lockEnsureForWords.RUnlock()
	return calls
}
