package content

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ occurrenceRepo = &occurrenceRepoMock{}

type occurrenceRepoMock struct {
	DeleteBySentenceFunc func(ctx context.Context, sentenceID uuid.UUID) ([]uuid.UUID, error)
	DeleteByMaterialFunc func(ctx context.Context, materialID uuid.UUID) ([]uuid.UUID, error)

	calls struct {
		DeleteBySentence []struct {
			Ctx        context.Context
			SentenceID uuid.UUID
		}
		DeleteByMaterial []struct {
			Ctx        context.Context
			MaterialID uuid.UUID
		}
	}
	lockDeleteBySentence sync.RWMutex
	lockDeleteByMaterial sync.RWMutex
}

func (mock *occurrenceRepoMock) DeleteBySentence(ctx context.Context, sentenceID uuid.UUID) ([]uuid.UUID, error) {
	if mock.DeleteBySentenceFunc == nil {
		panic("occurrenceRepoMock.DeleteBySentenceFunc: method is nil but occurrenceRepo.DeleteBySentence was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		SentenceID uuid.UUID
	}{
		Ctx:        ctx,
		SentenceID: sentenceID,
	}
	mock.lockDeleteBySentence.Lock()
	mock.calls.DeleteBySentence = append(mock.calls.DeleteBySentence, callInfo)
	mock.lockDeleteBySentence.Unlock()
	return mock.DeleteBySentenceFunc(ctx, sentenceID)
}

func (mock *occurrenceRepoMock) DeleteBySentenceCalls() []struct {
	Ctx        context.Context
	SentenceID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		SentenceID uuid.UUID
	}
	mock.lockDeleteBySentence.RLock()
	calls = mock.calls.DeleteBySentence
	mock.lockDeleteBySentence.RUnlock()
	return calls
}

func (mock *occurrenceRepoMock) DeleteByMaterial(ctx context.Context, materialID uuid.UUID) ([]uuid.UUID, error) {
	if mock.DeleteByMaterialFunc == nil {
		panic("occurrenceRepoMock.DeleteByMaterialFunc: method is nil but occurrenceRepo.DeleteByMaterial was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		MaterialID uuid.UUID
	}{
		Ctx:        ctx,
		MaterialID: materialID,
	}
	mock.lockDeleteByMaterial.Lock()
	mock.calls.DeleteByMaterial = append(mock.calls.DeleteByMaterial, callInfo)
	mock.lockDeleteByMaterial.Unlock()
	return mock.DeleteByMaterialFunc(ctx, materialID)
}

func (mock *occurrenceRepoMock) DeleteByMaterialCalls() []struct {
	Ctx        context.Context
	MaterialID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		MaterialID uuid.UUID
	}
	mock.lockDeleteByMaterial.RLock()
	calls = mock.calls.DeleteByMaterial
	mock.lockDeleteByMaterial.RUnlock()
	return calls
}
