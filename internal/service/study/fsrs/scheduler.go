package fsrs

import (
	"fmt"
	"math"
	"time"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

const day = 24 * time.Hour

// Card is the scheduling state of one (user, word) pair.
type Card struct {
	State         domain.CardState
	Step          int
	Stability     float64
	Difficulty    float64
	Due           time.Time
	LastReview    *time.Time
	Reps          int
	Lapses        int
	ScheduledDays int
	ElapsedDays   int
}

// Parameters configures the scheduler.
type Parameters struct {
	W                Weights
	DesiredRetention float64
	MaxIntervalDays  int
	EnableFuzz       bool
	LearningSteps    []time.Duration
	RelearningSteps  []time.Duration
}

// DefaultParameters returns the defaults used when no configuration is given.
// Fuzz is off so identical reviews produce identical schedules.
func DefaultParameters() Parameters {
	return Parameters{
		W:                DefaultWeights,
		DesiredRetention: 0.9,
		MaxIntervalDays:  365,
		EnableFuzz:       false,
		LearningSteps:    []time.Duration{time.Minute, 10 * time.Minute},
		RelearningSteps:  []time.Duration{10 * time.Minute},
	}
}

// Validate checks the parameters for values the model cannot use.
func (p Parameters) Validate() error {
	if err := p.W.Validate(); err != nil {
		return err
	}
	if p.DesiredRetention <= 0 || p.DesiredRetention >= 1 {
		return fmt.Errorf("desired retention must be in (0, 1), got %v", p.DesiredRetention)
	}
	if p.MaxIntervalDays < 1 {
		return fmt.Errorf("max interval must be >= 1 day, got %d", p.MaxIntervalDays)
	}
	return nil
}

// Schedule applies one review with rating at time now and returns the new card.
// Elapsed days are measured from card.LastReview; a now earlier than the last
// review is treated as the last review time so schedules never move backwards.
func Schedule(p Parameters, card Card, rating Rating, now time.Time) (Card, error) {
	if !rating.IsValid() {
		return Card{}, fmt.Errorf("invalid rating: %d", rating)
	}
	if card.LastReview != nil && now.Before(*card.LastReview) {
		now = *card.LastReview
	}
	card.ElapsedDays = ElapsedDays(card.LastReview, now)

	switch card.State {
	case domain.CardStateNew:
		return scheduleNew(p, card, rating, now), nil
	case domain.CardStateLearning:
		return scheduleLearning(p, card, rating, now, learningSteps(p.LearningSteps)), nil
	case domain.CardStateRelearning:
		return scheduleLearning(p, card, rating, now, learningSteps(p.RelearningSteps)), nil
	case domain.CardStateReview:
		return scheduleReview(p, card, rating, now), nil
	default:
		return Card{}, fmt.Errorf("unknown card state: %q", card.State)
	}
}

// ElapsedDays returns the whole days between last and now, 0 for a first review.
func ElapsedDays(last *time.Time, now time.Time) int {
	if last == nil || !now.After(*last) {
		return 0
	}
	return int(math.Floor(now.Sub(*last).Hours() / 24))
}

func scheduleNew(p Parameters, card Card, rating Rating, now time.Time) Card {
	stamp(&card, now)
	card.Stability = p.W.InitialStability(rating)
	card.Difficulty = p.W.InitialDifficulty(rating)

	steps := learningSteps(p.LearningSteps)

	switch rating {
	case Again:
		card.Lapses++
		return atStep(card, domain.CardStateLearning, 0, now.Add(steps[0]))
	case Hard:
		delay := steps[0]
		if len(steps) > 1 {
			delay = (steps[0] + steps[1]) / 2
		}
		return atStep(card, domain.CardStateLearning, 0, now.Add(delay))
	case Good:
		if len(steps) > 1 {
			return atStep(card, domain.CardStateLearning, 1, now.Add(steps[1]))
		}
		return graduate(p, card, now)
	default:
		goodIvl := interval(p, p.W.InitialStability(Good))
		return graduateAbove(p, card, now, goodIvl)
	}
}

func scheduleLearning(p Parameters, card Card, rating Rating, now time.Time, steps []time.Duration) Card {
	stamp(&card, now)
	prevStability := card.Stability
	card.Stability = p.W.ShortTermStability(card.Stability, rating)
	card.Difficulty = p.W.NextDifficulty(card.Difficulty, rating)

	switch rating {
	case Again:
		card.Lapses++
		return atStep(card, card.State, 0, now.Add(steps[0]))
	case Hard:
		step := min(card.Step, len(steps)-1)
		return atStep(card, card.State, card.Step, now.Add(steps[step]))
	case Good:
		next := card.Step + 1
		if next >= len(steps) {
			return graduate(p, card, now)
		}
		return atStep(card, card.State, next, now.Add(steps[next]))
	default:
		goodIvl := interval(p, p.W.ShortTermStability(prevStability, Good))
		return graduateAbove(p, card, now, goodIvl)
	}
}

func scheduleReview(p Parameters, card Card, rating Rating, now time.Time) Card {
	stamp(&card, now)

	elapsed := max(card.ElapsedDays, 1)
	r := Retrievability(elapsed, card.Stability)
	prevDifficulty := card.Difficulty
	card.Difficulty = p.W.NextDifficulty(card.Difficulty, rating)

	if rating == Again {
		card.Lapses++
		card.Stability = p.W.ForgetStability(card.Stability, prevDifficulty, r)
		steps := learningSteps(p.RelearningSteps)
		return atStep(card, domain.CardStateRelearning, 0, now.Add(steps[0]))
	}

	stabilities := map[Rating]float64{
		Hard: p.W.RecallStability(card.Stability, prevDifficulty, r, Hard),
		Good: p.W.RecallStability(card.Stability, prevDifficulty, r, Good),
		Easy: p.W.RecallStability(card.Stability, prevDifficulty, r, Easy),
	}
	ivl := intervalSet{
		hard: interval(p, stabilities[Hard]),
		good: interval(p, stabilities[Good]),
		easy: interval(p, stabilities[Easy]),
	}
	ivl.order()
	ivl.clamp(p.MaxIntervalDays)

	if p.EnableFuzz {
		seed := FuzzSeed(now, card.Reps, prevDifficulty, card.Stability)
		ivl.fuzz(float64(elapsed), float64(p.MaxIntervalDays), seed)
		ivl.order()
	}

	days := clampInterval(ivl.pick(rating), p.MaxIntervalDays)
	card.Stability = stabilities[rating]
	return inReview(card, days, now)
}

// graduate moves a card into Review using its current stability.
func graduate(p Parameters, card Card, now time.Time) Card {
	return inReview(card, interval(p, card.Stability), now)
}

// graduateAbove graduates a card and keeps its interval strictly above floor.
func graduateAbove(p Parameters, card Card, now time.Time, floor int) Card {
	days := interval(p, card.Stability)
	if days <= floor {
		days = clampInterval(floor+1, p.MaxIntervalDays)
	}
	return inReview(card, days, now)
}

func inReview(card Card, days int, now time.Time) Card {
	card.State = domain.CardStateReview
	card.Step = 0
	card.ScheduledDays = days
	card.Due = now.Add(time.Duration(days) * day)
	return card
}

func atStep(card Card, state domain.CardState, step int, due time.Time) Card {
	card.State = state
	card.Step = step
	card.ScheduledDays = 0
	card.Due = due
	return card
}

func stamp(card *Card, now time.Time) {
	card.Reps++
	reviewed := now
	card.LastReview = &reviewed
}

func interval(p Parameters, stability float64) int {
	return clampInterval(NextInterval(stability, p.DesiredRetention), p.MaxIntervalDays)
}

func learningSteps(steps []time.Duration) []time.Duration {
	if len(steps) == 0 {
		return []time.Duration{time.Minute}
	}
	return steps
}

func clampInterval(days, maxDays int) int {
	return max(1, min(days, maxDays))
}

// intervalSet holds the candidate intervals of a Review card, in days.
type intervalSet struct {
	hard, good, easy int
}

// order enforces hard <= good < easy.
func (s *intervalSet) order() {
	s.hard = min(s.hard, s.good)
	if s.good <= s.hard {
		s.good = s.hard + 1
	}
	if s.easy <= s.good {
		s.easy = s.good + 1
	}
}

func (s *intervalSet) clamp(maxDays int) {
	s.hard = clampInterval(s.hard, maxDays)
	s.good = clampInterval(s.good, maxDays)
	s.easy = clampInterval(s.easy, maxDays)
}

func (s *intervalSet) fuzz(elapsed, maxDays float64, seed int64) {
	s.hard = int(applyFuzz(float64(s.hard), elapsed, maxDays, seed))
	s.good = int(applyFuzz(float64(s.good), elapsed, maxDays, seed+1))
	s.easy = int(applyFuzz(float64(s.easy), elapsed, maxDays, seed+2))
}

func (s intervalSet) pick(r Rating) int {
	switch r {
	case Hard:
		return s.hard
	case Easy:
		return s.easy
	default:
		return s.good
	}
}
