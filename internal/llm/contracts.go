package llm

import (
	"context"

	"github.com/orderdocs/order-extractor/constants"
	"github.com/orderdocs/order-extractor/internal/entity"
)

// TextGenerator is the opaque generative capability boundary: one prompt in,
// one response out. A nil TextGenerator means the capability is not
// configured.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ExampleSource supplies recent learning entries for prompt context.
type ExampleSource interface {
	Recent(n int) []entity.LearningEntry
}

// Status says which branch of the fallback chain produced a Result. All
// three branches return a well-shaped record; none raises to the caller.
type Status string

const (
	StatusOK          Status = "ok"           // response parsed and validated
	StatusParseFailed Status = "parse_failed" // model responded, output unusable
	StatusUnavailable Status = "unavailable"  // no capability, or the call failed
)

// Result is the adapter's outcome for one extraction attempt.
type Result struct {
	Fields     entity.OrderFields
	Confidence int // 0-100
	Method     constants.ExtractionMethod
	Status     Status
	Note       string
	RawJSON    []byte // the JSON block taken from the response, when any
}
