package constants

// Fixed keys for blobs in the durable key-value store.
const (
	LearningHistoryKey = "learning_history"
	CustomFormatsKey   = "custom_formats"
)

// Learning history bounds: when the history grows past HistoryMaxEntries it
// is truncated to the HistoryTrimTo most recent entries.
const (
	HistoryMaxEntries = 100
	HistoryTrimTo     = 50
)

// Prompt construction limits for the generative path.
const (
	PromptTextLimit    = 2000 // max characters of document text embedded in a prompt
	PromptMaxExamples  = 5    // most recent learning entries included as examples
	ExampleTextPreview = 200  // characters of each example's input text shown
)

// GenericFormatID identifies the built-in fallback format with no indicators.
const GenericFormatID = "GENERIC"
