package constants

// ExtractionMethod records which strategy produced a field record.
type ExtractionMethod string

// Stable values (stored verbatim in persisted records).
const (
	MethodDeterministic ExtractionMethod = "DETERMINISTIC" // pattern-library extraction
	MethodAI            ExtractionMethod = "AI"            // generative model, response parsed OK
	MethodAIFailed      ExtractionMethod = "AI_FAILED"     // generative model responded, response unusable
	MethodSimulated     ExtractionMethod = "SIMULATED"     // heuristic fallback, no model involved
)
