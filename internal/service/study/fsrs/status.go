package fsrs

import "github.com/heartmarshall/deeplisten-backend/internal/domain"

// DefaultMasteredStability is the stability, in days, at which a Review card
// counts as mastered.
const DefaultMasteredStability = 21.0

// LearningStatus derives the coarse label for a card that was just rated.
//
//	NEW       card never reviewed
//	MASTERED  card in Review with stability >= masteredStability
//	LEARNING  everything else
//
// A previously MASTERED status stays MASTERED unless the rating is Again.
func LearningStatus(prev domain.LearningStatus, card Card, rating Rating, masteredStability float64) domain.LearningStatus {
	if prev == domain.LearningStatusMastered && rating != Again {
		return domain.LearningStatusMastered
	}
	switch {
	case card.State == domain.CardStateNew:
		return domain.LearningStatusNew
	case card.State == domain.CardStateReview && card.Stability >= masteredStability:
		return domain.LearningStatusMastered
	default:
		return domain.LearningStatusLearning
	}
}
