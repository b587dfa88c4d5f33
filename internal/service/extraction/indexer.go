package extraction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

// Indexer replaces the occurrence links of one sentence at a time.
type Indexer struct {
	occurrences occurrenceRepo
	words       wordRepo
	materials   materialRepo
	tx          txManager
}

// NewIndexer creates a new Indexer.
func NewIndexer(occurrences occurrenceRepo, words wordRepo, materials materialRepo, tx txManager) *Indexer {
	return &Indexer{
		occurrences: occurrences,
		words:       words,
		materials:   materials,
		tx:          tx,
	}
}

// Replace swaps the occurrence set of sentenceID for occs in one transaction
// and returns the ids of words that were linked before but are not any more.
// Words referenced by occs that were soft-deleted meanwhile are revived.
//
// The sentence row is locked first. If it was deleted since it was listed,
// live is false, nothing is inserted, and both the previously linked words and
// the words of occs are returned as lost.
func (x *Indexer) Replace(ctx context.Context, sentenceID uuid.UUID, occs []domain.WordOccurrence) (lost []uuid.UUID, live bool, err error) {
	err = x.tx.RunInTx(ctx, func(txCtx context.Context) error {
		lost, live = nil, true

		if err := x.materials.MarkExtracted(txCtx, sentenceID); err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("mark extracted: %w", err)
			}
			live = false
		}

		previous, err := x.occurrences.DeleteBySentence(txCtx, sentenceID)
		if err != nil {
			return fmt.Errorf("delete occurrences: %w", err)
		}
		if !live {
			lost = distinctWordIDs(previous, occs)
			return nil
		}

		if _, err := x.occurrences.Insert(txCtx, occs); err != nil {
			return fmt.Errorf("insert occurrences: %w", err)
		}

		kept := make(map[uuid.UUID]struct{}, len(occs))
		ids := make([]uuid.UUID, 0, len(occs))
		for _, o := range occs {
			if _, ok := kept[o.WordID]; ok {
				continue
			}
			kept[o.WordID] = struct{}{}
			ids = append(ids, o.WordID)
		}

		if len(ids) > 0 {
			if _, err := x.words.Revive(txCtx, ids); err != nil {
				return fmt.Errorf("revive words: %w", err)
			}
		}

		for _, id := range previous {
			if _, ok := kept[id]; !ok {
				lost = append(lost, id)
			}
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return lost, live, nil
}

func distinctWordIDs(ids []uuid.UUID, occs []domain.WordOccurrence) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids)+len(occs))
	out := make([]uuid.UUID, 0, len(ids)+len(occs))
	add := func(id uuid.UUID) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	for _, id := range ids {
		add(id)
	}
	for _, o := range occs {
		add(o.WordID)
	}
	return out
}
