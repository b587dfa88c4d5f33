package extraction

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

var _ materialRepo = &materialRepoMock{}

type materialRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Material, error)
	SetProcessedFunc      func(ctx context.Context, id uuid.UUID, processed bool) error
	ListLiveSentencesFunc func(ctx context.Context, materialID uuid.UUID) ([]domain.Sentence, error)
	MarkExtractedFunc     func(ctx context.Context, sentenceID uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		SetProcessed []struct {
			Ctx       context.Context
			ID        uuid.UUID
			Processed bool
		}
		ListLiveSentences []struct {
			Ctx        context.Context
			MaterialID uuid.UUID
		}
		MarkExtracted []struct {
			Ctx        context.Context
			SentenceID uuid.UUID
		}
	}
	lockGetByID           sync.RWMutex
	lockSetProcessed      sync.RWMutex
	lockListLiveSentences sync.RWMutex
	lockMarkExtracted     sync.RWMutex
}

func (mock *materialRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Material, error) {
	if mock.GetByIDFunc == nil {
		panic("materialRepoMock.GetByIDFunc: method is nil but materialRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *materialRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *materialRepoMock) SetProcessed(ctx context.Context, id uuid.UUID, processed bool) error {
	if mock.SetProcessedFunc == nil {
		panic("materialRepoMock.SetProcessedFunc: method is nil but materialRepo.SetProcessed was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		Processed bool
	}{
		Ctx:       ctx,
		ID:        id,
		Processed: processed,
	}
	mock.lockSetProcessed.Lock()
	mock.calls.SetProcessed = append(mock.calls.SetProcessed, callInfo)
	mock.lockSetProcessed.Unlock()
	return mock.SetProcessedFunc(ctx, id, processed)
}

func (mock *materialRepoMock) SetProcessedCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	Processed bool
} {
	var calls []struct {
		Ctx       context.Context
		ID        uuid.UUID
		Processed bool
	}
	mock.lockSetProcessed.RLock()
	calls = mock.calls.SetProcessed
	mock.lockSetProcessed.RUnlock()
	return calls
}

func (mock *materialRepoMock) ListLiveSentences(ctx context.Context, materialID uuid.UUID) ([]domain.Sentence, error) {
	if mock.ListLiveSentencesFunc == nil {
		panic("materialRepoMock.ListLiveSentencesFunc: method is nil but materialRepo.ListLiveSentences was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		MaterialID uuid.UUID
	}{
		Ctx:        ctx,
		MaterialID: materialID,
	}
	mock.lockListLiveSentences.Lock()
	mock.calls.ListLiveSentences = append(mock.calls.ListLiveSentences, callInfo)
	mock.lockListLiveSentences.Unlock()
	return mock.ListLiveSentencesFunc(ctx, materialID)
}

func (mock *materialRepoMock) ListLiveSentencesCalls() []struct {
	Ctx        context.Context
	MaterialID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		MaterialID uuid.UUID
	}
	mock.lockListLiveSentences.RLock()
	calls = mock.calls.ListLiveSentences
	mock.lockListLiveSentences.RUnlock()
	return calls
}

func (mock *materialRepoMock) MarkExtracted(ctx context.Context, sentenceID uuid.UUID) error {
	if mock.MarkExtractedFunc == nil {
		panic("materialRepoMock.MarkExtractedFunc: method is nil but materialRepo.MarkExtracted was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		SentenceID uuid.UUID
	}{
		Ctx:        ctx,
		SentenceID: sentenceID,
	}
	mock.lockMarkExtracted.Lock()
	mock.calls.MarkExtracted = append(mock.calls.MarkExtracted, callInfo)
	mock.lockMarkExtracted.Unlock()
	return mock.MarkExtractedFunc(ctx, sentenceID)
}

func (mock *materialRepoMock) MarkExtractedCalls() []struct {
	Ctx        context.Context
	SentenceID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		SentenceID uuid.UUID
	}
	mock.lockMarkExtracted.RLock()
	calls = mock.calls.MarkExtracted
	mock.lockMarkExtracted.RUnlock()
	return calls
}
