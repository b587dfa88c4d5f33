package extraction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

const defaultLookupBatchSize = 100

// Resolution is the result of resolving a set of normalized tokens.
type Resolution struct {
	// WordIDs maps each normalized token to its canonical word.
	WordIDs map[string]uuid.UUID
	// Words holds what the create step did for tokens that had no live word.
	Words map[string]domain.CreateOutcome
	// Statuses holds what happened to the user's status of every resolved word.
	Statuses map[uuid.UUID]domain.StatusOutcome
}

// Count returns how many statuses ended with outcome o.
func (r *Resolution) Count(o domain.StatusOutcome) int {
	n := 0
	for _, got := range r.Statuses {
		if got == o {
			n++
		}
	}
	return n
}

// Resolver maps normalized tokens to canonical words, creating the missing ones
// from dictionary lookups, and makes sure the user has a status for each word.
type Resolver struct {
	words     wordRepo
	statuses  statusRepo
	lookup    lookuper
	log       *slog.Logger
	batchSize int
}

// NewResolver creates a Resolver that asks the dictionary for at most
// batchSize words per call.
func NewResolver(log *slog.Logger, words wordRepo, statuses statusRepo, lookup lookuper, batchSize int) *Resolver {
	if batchSize <= 0 {
		batchSize = defaultLookupBatchSize
	}
	return &Resolver{
		words:     words,
		statuses:  statuses,
		lookup:    lookup,
		log:       log.With("service", "resolver"),
		batchSize: batchSize,
	}
}

// Resolve returns the canonical word of every token in tokens.
// Word creation tolerates concurrent creators of the same text. A failing
// dictionary lookup only costs enrichment; a failing store aborts the call.
func (r *Resolver) Resolve(ctx context.Context, userID uuid.UUID, tokens []string) (*Resolution, error) {
	tokens = distinctTexts(tokens)
	res := &Resolution{
		WordIDs:  make(map[string]uuid.UUID, len(tokens)),
		Words:    make(map[string]domain.CreateOutcome),
		Statuses: map[uuid.UUID]domain.StatusOutcome{},
	}
	if len(tokens) == 0 {
		return res, nil
	}

	live, err := r.words.GetLiveByTexts(ctx, tokens)
	if err != nil {
		return nil, fmt.Errorf("get live words: %w", err)
	}
	for _, w := range live {
		res.WordIDs[w.Text] = w.ID
	}

	missing := make([]string, 0, len(tokens)-len(live))
	for _, t := range tokens {
		if _, ok := res.WordIDs[t]; !ok {
			missing = append(missing, t)
		}
	}

	for start := 0; start < len(missing); start += r.batchSize {
		end := min(start+r.batchSize, len(missing))
		if err := r.createBatch(ctx, missing[start:end], res); err != nil {
			return nil, err
		}
	}

	ids := make([]uuid.UUID, 0, len(res.WordIDs))
	for _, t := range tokens {
		ids = append(ids, res.WordIDs[t])
	}
	statuses, err := r.statuses.EnsureForWords(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("ensure statuses: %w", err)
	}
	res.Statuses = statuses

	r.log.DebugContext(ctx, "tokens resolved",
		slog.String("user_id", userID.String()),
		slog.Int("tokens", len(tokens)),
		slog.Int("missing", len(missing)),
	)
	return res, nil
}

func (r *Resolver) createBatch(ctx context.Context, batch []string, res *Resolution) error {
	enrichments, err := r.lookup.Lookup(ctx, batch)
	if err != nil {
		r.log.WarnContext(ctx, "dictionary lookup failed, creating words without enrichment",
			slog.Int("batch", len(batch)),
			slog.String("error", err.Error()),
		)
	}

	for _, text := range batch {
		e := enrichments[text]
		if e.Lemma == nil {
			lemma := text
			e.Lemma = &lemma
		}

		id, outcome, err := r.words.Create(ctx, text, e)
		if err != nil {
			return fmt.Errorf("create word %q: %w", text, err)
		}
		res.WordIDs[text] = id
		res.Words[text] = outcome
	}
	return nil
}

func distinctTexts(texts []string) []string {
	seen := make(map[string]struct{}, len(texts))
	out := make([]string, 0, len(texts))
	for _, t := range texts {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
