package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
	"github.com/heartmarshall/deeplisten-backend/internal/service/extraction/tokenizer"
)

// Service runs the extraction pipeline for a material. Running it again over
// unchanged sentences leaves words, statuses and occurrences as they were.
type Service struct {
	materials materialRepo
	resolver  *Resolver
	indexer   *Indexer
	orphans   *OrphanCollector
	jobs      jobQueue
	activity  activityRepo
	notify    notifier
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new extraction Service.
func NewService(
	log *slog.Logger,
	materials materialRepo,
	resolver *Resolver,
	indexer *Indexer,
	orphans *OrphanCollector,
	jobs jobQueue,
	activity activityRepo,
	notify notifier,
) *Service {
	return &Service{
		materials: materials,
		resolver:  resolver,
		indexer:   indexer,
		orphans:   orphans,
		jobs:      jobs,
		activity:  activity,
		notify:    notify,
		log:       log.With("service", "extraction"),
		now:       time.Now,
	}
}

// ExtractMaterial extracts the vocabulary of every live sentence of a material.
//
// The material is marked unprocessed first and processed only after every
// sentence has been indexed, so a failure part way leaves it unprocessed and
// the whole run can be repeated.
func (s *Service) ExtractMaterial(ctx context.Context, materialID uuid.UUID) (*domain.ExtractionSummary, error) {
	material, err := s.materials.GetByID(ctx, materialID)
	if err != nil {
		return nil, fmt.Errorf("get material: %w", err)
	}

	if err := s.materials.SetProcessed(ctx, materialID, false); err != nil {
		return nil, fmt.Errorf("mark unprocessed: %w", err)
	}

	sentences, err := s.materials.ListLiveSentences(ctx, materialID)
	if err != nil {
		return nil, fmt.Errorf("list sentences: %w", err)
	}

	tokens := make([][]tokenizer.Token, len(sentences))
	var all []tokenizer.Token
	for i := range sentences {
		tokens[i] = tokenizer.Tokenize(sentences[i].EffectiveContent())
		all = append(all, tokens[i]...)
	}
	distinct := tokenizer.Distinct(all)

	res, err := s.resolver.Resolve(ctx, material.UserID, distinct)
	if err != nil {
		return nil, fmt.Errorf("resolve words: %w", err)
	}

	var (
		lost      = make(map[uuid.UUID]struct{})
		firstTime int
		rows      int
		indexed   int
	)
	for i := range sentences {
		sentence := &sentences[i]
		occs := buildOccurrences(sentence.ID, tokens[i], res.WordIDs)

		removed, live, err := s.indexer.Replace(ctx, sentence.ID, occs)
		if err != nil {
			return nil, fmt.Errorf("index sentence %s: %w", sentence.ID, err)
		}
		for _, id := range removed {
			lost[id] = struct{}{}
		}
		if !live {
			s.log.InfoContext(ctx, "sentence deleted during extraction",
				slog.String("sentence_id", sentence.ID.String()),
			)
			continue
		}
		indexed++
		if sentence.ExtractedAt == nil {
			firstTime++
		}
		rows += len(occs)
	}

	if len(lost) > 0 {
		if err := s.EnqueueSweep(ctx, keys(lost)); err != nil {
			return nil, err
		}
	}

	created := 0
	for _, o := range res.Words {
		if o == domain.CreateOutcomeCreated {
			created++
		}
	}
	restored := res.Count(domain.StatusOutcomeRestored)
	delta := domain.ActivityDelta{
		WordsAdded:     res.Count(domain.StatusOutcomeCreated) + restored,
		SentencesAdded: firstTime,
	}
	if err := s.activity.Increment(ctx, material.UserID, s.now(), delta); err != nil {
		return nil, fmt.Errorf("increment activity: %w", err)
	}

	if err := s.materials.SetProcessed(ctx, materialID, true); err != nil {
		return nil, fmt.Errorf("mark processed: %w", err)
	}

	summary := domain.ExtractionSummary{
		MaterialID:     materialID,
		UserID:         material.UserID,
		SentenceCount:  indexed,
		WordCount:      len(distinct),
		NewWords:       created,
		RestoredWords:  restored,
		OccurrenceRows: rows,
		FinishedAt:     s.now(),
	}

	if err := s.notify.ExtractionCompleted(ctx, summary); err != nil {
		s.log.WarnContext(ctx, "extraction notification failed",
			slog.String("material_id", materialID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "material extracted",
		slog.String("material_id", materialID.String()),
		slog.String("user_id", material.UserID.String()),
		slog.Int("sentences", indexed),
		slog.Int("words", len(distinct)),
		slog.Int("new_words", created),
		slog.Int("orphan_candidates", len(lost)),
	)

	return &summary, nil
}

// EnqueueSweep queues an orphan check of wordIDs behind the work already queued.
func (s *Service) EnqueueSweep(ctx context.Context, wordIDs []uuid.UUID) error {
	if len(wordIDs) == 0 {
		return nil
	}
	if _, err := s.jobs.Enqueue(ctx, domain.JobKindSweepOrphans, domain.SweepOrphansPayload{WordIDs: wordIDs}); err != nil {
		return fmt.Errorf("enqueue orphan sweep: %w", err)
	}
	return nil
}

// CollectOrphans runs the orphan check for wordIDs.
func (s *Service) CollectOrphans(ctx context.Context, wordIDs []uuid.UUID) (int, error) {
	return s.orphans.Collect(ctx, wordIDs)
}

// SweepAll soft-deletes every unreferenced word untouched for at least grace.
func (s *Service) SweepAll(ctx context.Context, grace time.Duration) (int, error) {
	return s.orphans.Sweep(ctx, grace)
}

func buildOccurrences(sentenceID uuid.UUID, tokens []tokenizer.Token, wordIDs map[string]uuid.UUID) []domain.WordOccurrence {
	occs := make([]domain.WordOccurrence, 0, len(tokens))
	for _, t := range tokens {
		id, ok := wordIDs[t.Normalized]
		if !ok {
			continue
		}
		occs = append(occs, domain.WordOccurrence{
			WordID:     id,
			SentenceID: sentenceID,
			StartIndex: t.Start,
			EndIndex:   t.End,
		})
	}
	return occs
}

func keys(m map[uuid.UUID]struct{}) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	return out
}
