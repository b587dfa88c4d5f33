package content

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

var _ materialRepo = &materialRepoMock{}

type materialRepoMock struct {
	CreateFunc             func(ctx context.Context, userID uuid.UUID, title string) (*domain.Material, error)
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Material, error)
	SoftDeleteFunc         func(ctx context.Context, id uuid.UUID) error
	GetSentenceFunc        func(ctx context.Context, id uuid.UUID) (*domain.Sentence, error)
	AppendSentencesFunc    func(ctx context.Context, materialID uuid.UUID, segments []domain.TranscriptSegment) (int, error)
	EditSentenceFunc       func(ctx context.Context, id uuid.UUID, edited *string) error
	SoftDeleteSentenceFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Title  string
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		SoftDelete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetSentence []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		AppendSentences []struct {
			Ctx        context.Context
			MaterialID uuid.UUID
			Segments   []domain.TranscriptSegment
		}
		EditSentence []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Edited *string
		}
		SoftDeleteSentence []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate             sync.RWMutex
	lockGetByID            sync.RWMutex
	lockSoftDelete         sync.RWMutex
	lockGetSentence        sync.RWMutex
	lockAppendSentences    sync.RWMutex
	lockEditSentence       sync.RWMutex
	lockSoftDeleteSentence sync.RWMutex
}

func (mock *materialRepoMock) Create(ctx context.Context, userID uuid.UUID, title string) (*domain.Material, error) {
	if mock.CreateFunc == nil {
		panic("materialRepoMock.CreateFunc: method is nil but materialRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Title  string
	}{
		Ctx:    ctx,
		UserID: userID,
		Title:  title,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, title)
}

func (mock *materialRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Title  string
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Title  string
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *materialRepoMock) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if mock.SoftDeleteFunc == nil {
		panic("materialRepoMock.SoftDeleteFunc: method is nil but materialRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, id)
}

func (mock *materialRepoMock) SoftDeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockSoftDelete.RLock()
	calls = mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

func (mock *materialRepoMock) GetSentence(ctx context.Context, id uuid.UUID) (*domain.Sentence, error) {
	if mock.GetSentenceFunc == nil {
		panic("materialRepoMock.GetSentenceFunc: method is nil but materialRepo.GetSentence was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetSentence.Lock()
	mock.calls.GetSentence = append(mock.calls.GetSentence, callInfo)
	mock.lockGetSentence.Unlock()
	return mock.GetSentenceFunc(ctx, id)
}

func (mock *materialRepoMock) GetSentenceCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetSentence.RLock()
	calls = mock.calls.GetSentence
	mock.lockGetSentence.RUnlock()
	return calls
}

func (mock *materialRepoMock) AppendSentences(ctx context.Context, materialID uuid.UUID, segments []domain.TranscriptSegment) (int, error) {
	if mock.AppendSentencesFunc == nil {
		panic("materialRepoMock.AppendSentencesFunc: method is nil but materialRepo.AppendSentences was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		MaterialID uuid.UUID
		Segments   []domain.TranscriptSegment
	}{
		Ctx:        ctx,
		MaterialID: materialID,
		Segments:   segments,
	}
	mock.lockAppendSentences.Lock()
	mock.calls.AppendSentences = append(mock.calls.AppendSentences, callInfo)
	mock.lockAppendSentences.Unlock()
	return mock.AppendSentencesFunc(ctx, materialID, segments)
}

func (mock *materialRepoMock) AppendSentencesCalls() []struct {
	Ctx        context.Context
	MaterialID uuid.UUID
	Segments   []domain.TranscriptSegment
} {
	var calls []struct {
		Ctx        context.Context
		MaterialID uuid.UUID
		Segments   []domain.TranscriptSegment
	}
	mock.lockAppendSentences.RLock()
	calls = mock.calls.AppendSentences
	mock.lockAppendSentences.RUnlock()
	return calls
}

func (mock *materialRepoMock) EditSentence(ctx context.Context, id uuid.UUID, edited *string) error {
	if mock.EditSentenceFunc == nil {
		panic("materialRepoMock.EditSentenceFunc: method is nil but materialRepo.EditSentence was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Edited *string
	}{
		Ctx:    ctx,
		ID:     id,
		Edited: edited,
	}
	mock.lockEditSentence.Lock()
	mock.calls.EditSentence = append(mock.calls.EditSentence, callInfo)
	mock.lockEditSentence.Unlock()
	return mock.EditSentenceFunc(ctx, id, edited)
}

func (mock *materialRepoMock) EditSentenceCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Edited *string
} {
	var calls []struct {
		Ctx    context.Context
		ID     uuid.UUID
		Edited *string
	}
	mock.lockEditSentence.RLock()
	calls = mock.calls.EditSentence
	mock.lockEditSentence.RUnlock()
	return calls
}

func (mock *materialRepoMock) SoftDeleteSentence(ctx context.Context, id uuid.UUID) error {
	if mock.SoftDeleteSentenceFunc == nil {
		panic("materialRepoMock.SoftDeleteSentenceFunc: method is nil but materialRepo.SoftDeleteSentence was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockSoftDeleteSentence.Lock()
	mock.calls.SoftDeleteSentence = append(mock.calls.SoftDeleteSentence, callInfo)
	mock.lockSoftDeleteSentence.Unlock()
	return mock.SoftDeleteSentenceFunc(ctx, id)
}

func (mock *materialRepoMock) SoftDeleteSentenceCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockSoftDeleteSentence.RLock()
	calls = mock.calls.SoftDeleteSentence
	mock.lockSoftDeleteSentence.RUnlock()
	return calls
}
