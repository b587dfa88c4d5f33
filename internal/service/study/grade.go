package study

import (
	"github.com/heartmarshall/deeplisten-backend/internal/domain"
	"github.com/heartmarshall/deeplisten-backend/internal/service/study/fsrs"
)

// gradeFromResponse derives a grade from correctness and response time.
// A correct answer without a timing counts as GOOD.
func gradeFromResponse(correct bool, responseMs *int, fastMs, slowMs int) domain.ReviewGrade {
	switch {
	case !correct:
		return domain.ReviewGradeAgain
	case responseMs == nil:
		return domain.ReviewGradeGood
	case *responseMs <= fastMs:
		return domain.ReviewGradeEasy
	case *responseMs <= slowMs:
		return domain.ReviewGradeGood
	default:
		return domain.ReviewGradeHard
	}
}

func mapGradeToRating(grade domain.ReviewGrade) fsrs.Rating {
	switch grade {
	case domain.ReviewGradeAgain:
		return fsrs.Again
	case domain.ReviewGradeHard:
		return fsrs.Hard
	case domain.ReviewGradeEasy:
		return fsrs.Easy
	default:
		return fsrs.Good
	}
}

func toCard(s *domain.UserWordStatus) fsrs.Card {
	return fsrs.Card{
		State:         s.State,
		Step:          s.Step,
		Stability:     s.Stability,
		Difficulty:    s.Difficulty,
		Due:           s.Due,
		LastReview:    s.LastReview,
		Reps:          s.Reps,
		Lapses:        s.Lapses,
		ScheduledDays: s.ScheduledDays,
		ElapsedDays:   s.ElapsedDays,
	}
}

func applyCard(s *domain.UserWordStatus, c fsrs.Card) {
	s.State = c.State
	s.Step = c.Step
	s.Stability = c.Stability
	s.Difficulty = c.Difficulty
	s.Due = c.Due
	s.LastReview = c.LastReview
	s.Reps = c.Reps
	s.Lapses = c.Lapses
	s.ScheduledDays = c.ScheduledDays
	s.ElapsedDays = c.ElapsedDays
}
