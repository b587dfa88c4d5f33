package content

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// CreateMaterialInput
// ---------------------------------------------------------------------------

// CreateMaterialInput holds a new material and, optionally, its first transcript segments.
type CreateMaterialInput struct {
	Title    string
	Segments []domain.TranscriptSegment
}

// Validate checks all fields and collects all errors.
func (i CreateMaterialInput) Validate() error {
	var v domain.ValidationError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		v.Add("title", "required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		v.Add("title", fmt.Sprintf("too long (max %d)", MaxTitleLength))
	}
	validateSegments(&v, i.Segments)

	return v.Err()
}

// ---------------------------------------------------------------------------
// AppendTranscriptInput
// ---------------------------------------------------------------------------

// AppendTranscriptInput holds speech-to-text segments to add to a material.
type AppendTranscriptInput struct {
	MaterialID uuid.UUID
	Segments   []domain.TranscriptSegment
}

// Validate checks all fields and collects all errors.
func (i AppendTranscriptInput) Validate() error {
	var v domain.ValidationError

	if i.MaterialID == uuid.Nil {
		v.Add("material_id", "required")
	}
	if len(i.Segments) == 0 {
		v.Add("segments", "required")
	}
	validateSegments(&v, i.Segments)

	return v.Err()
}

// ---------------------------------------------------------------------------
// EditSentenceInput
// ---------------------------------------------------------------------------

// EditSentenceInput sets a sentence's edit override. A nil Content removes
// the override so the original transcript text applies again.
type EditSentenceInput struct {
	SentenceID uuid.UUID
	Content    *string
}

// Validate checks all fields and collects all errors.
func (i EditSentenceInput) Validate() error {
	var v domain.ValidationError

	if i.SentenceID == uuid.Nil {
		v.Add("sentence_id", "required")
	}
	if i.Content != nil {
		c := strings.TrimSpace(*i.Content)
		if c == "" {
			v.Add("content", "must not be blank")
		}
		if utf8.RuneCountInString(c) > MaxSentenceLength {
			v.Add("content", fmt.Sprintf("too long (max %d)", MaxSentenceLength))
		}
	}

	return v.Err()
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validateSegments(v *domain.ValidationError, segments []domain.TranscriptSegment) {
	if len(segments) > MaxSegments {
		v.Add("segments", fmt.Sprintf("too many (max %d)", MaxSegments))
		return
	}
	for idx, seg := range segments {
		if utf8.RuneCountInString(strings.TrimSpace(seg.Text)) > MaxSentenceLength {
			v.Add(fmt.Sprintf("segments[%d].text", idx), fmt.Sprintf("too long (max %d)", MaxSentenceLength))
		}
	}
}

// sanitizeSegments trims segment text, drops empty segments and replaces
// non-finite timestamps with 0.
func sanitizeSegments(segments []domain.TranscriptSegment) []domain.TranscriptSegment {
	out := make([]domain.TranscriptSegment, 0, len(segments))
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		out = append(out, domain.TranscriptSegment{
			Start: finiteOrZero(seg.Start),
			End:   finiteOrZero(seg.End),
			Text:  text,
		})
	}
	return out
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
