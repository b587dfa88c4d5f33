package domain

// CardState represents the FSRS-5 scheduler state of a user word status.
type CardState string

const (
	CardStateNew        CardState = "NEW"
	CardStateLearning   CardState = "LEARNING"
	CardStateReview     CardState = "REVIEW"
	CardStateRelearning CardState = "RELEARNING"
)

func (s CardState) String() string { return string(s) }

func (s CardState) IsValid() bool {
	switch s {
	case CardStateNew, CardStateLearning, CardStateReview, CardStateRelearning:
		return true
	}
	return false
}

// LearningStatus is the coarse, user-facing label derived from the scheduler state.
type LearningStatus string

const (
	LearningStatusNew      LearningStatus = "NEW"
	LearningStatusLearning LearningStatus = "LEARNING"
	LearningStatusMastered LearningStatus = "MASTERED"
)

func (s LearningStatus) String() string { return string(s) }

func (s LearningStatus) IsValid() bool {
	switch s {
	case LearningStatusNew, LearningStatusLearning, LearningStatusMastered:
		return true
	}
	return false
}

// ReviewGrade represents the user's recall quality for one review.
type ReviewGrade string

const (
	ReviewGradeAgain ReviewGrade = "AGAIN"
	ReviewGradeHard  ReviewGrade = "HARD"
	ReviewGradeGood  ReviewGrade = "GOOD"
	ReviewGradeEasy  ReviewGrade = "EASY"
)

func (g ReviewGrade) String() string { return string(g) }

func (g ReviewGrade) IsValid() bool {
	switch g {
	case ReviewGradeAgain, ReviewGradeHard, ReviewGradeGood, ReviewGradeEasy:
		return true
	}
	return false
}

// ReviewMode identifies the exercise a review was submitted from.
type ReviewMode string

const (
	ReviewModeFlashcard ReviewMode = "FLASHCARD"
	ReviewModeSpelling  ReviewMode = "SPELLING"
	ReviewModeListening ReviewMode = "LISTENING"
	ReviewModeChoice    ReviewMode = "CHOICE"
)

func (m ReviewMode) String() string { return string(m) }

func (m ReviewMode) IsValid() bool {
	switch m {
	case ReviewModeFlashcard, ReviewModeSpelling, ReviewModeListening, ReviewModeChoice:
		return true
	}
	return false
}

// JobKind identifies the handler a queued job is dispatched to.
type JobKind string

const (
	JobKindExtractMaterial JobKind = "extract_material"
	JobKindSweepOrphans    JobKind = "sweep_orphans"
)

func (k JobKind) String() string { return string(k) }

func (k JobKind) IsValid() bool {
	switch k {
	case JobKindExtractMaterial, JobKindSweepOrphans:
		return true
	}
	return false
}

// JobStatus is the lifecycle state of a queued job.
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusDone       JobStatus = "done"
	JobStatusFailed     JobStatus = "failed"
)

func (s JobStatus) String() string { return string(s) }

func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusPending, JobStatusProcessing, JobStatusDone, JobStatusFailed:
		return true
	}
	return false
}
