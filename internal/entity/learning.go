package entity

import "time"

// FeedbackType says whether a learning entry corrects a record or confirms it.
type FeedbackType string

const (
	FeedbackCorrection   FeedbackType = "correction"
	FeedbackConfirmation FeedbackType = "confirmation"
)

// ContextPattern is a generalized extraction pattern inferred from where a
// corrected value occurred in the source text.
type ContextPattern struct {
	Before    string `json:"before"`     // up to 20 runes preceding the value
	After     string `json:"after"`      // up to 20 runes following the value
	FullMatch string `json:"full_match"` // value with surrounding context
	Label     string `json:"label"`      // trailing label token from the before-context
	Pattern   string `json:"pattern"`    // synthesized regexp source
}

// LearningEntry is one recorded human correction (or confirmation) of an
// extraction, kept for prompt seeding and pattern inference.
type LearningEntry struct {
	ID                 int64                       `json:"id"` // monotonic unix-milli timestamp
	Timestamp          time.Time                   `json:"timestamp"`
	InputText          string                      `json:"input_text"`
	CorrectData        OrderFields                 `json:"correct_data"`
	FeedbackType       FeedbackType                `json:"feedback_type"`
	Confidence         int                         `json:"confidence,omitempty"` // confidence of the original extraction, if any
	ExtractionPatterns map[string][]ContextPattern `json:"extraction_patterns,omitempty"`
}
