package llm

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/orderdocs/order-extractor/constants"
	"github.com/orderdocs/order-extractor/internal/entity"
)

// defaultAIConfidence is assumed when a parsed response carries no
// confidence of its own.
const defaultAIConfidence = 70

// Adapter runs the generative extraction path with its two-tier fallback:
// an unusable response degrades to AI_FAILED, an unavailable capability
// degrades to the simulated heuristic. Extract never returns an error.
type Adapter struct {
	logger   *slog.Logger
	gen      TextGenerator
	examples ExampleSource
}

// NewAdapter builds an adapter. gen may be nil (capability not configured)
// and examples may be nil (no learning history available).
func NewAdapter(gen TextGenerator, examples ExampleSource, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{logger: logger, gen: gen, examples: examples}
}

// wireFields mirrors the response JSON after sanitization; quantity arrives
// as a JSON number.
type wireFields struct {
	OrderNumber  string  `json:"orderNumber"`
	CustomerName string  `json:"customerName"`
	ProductCode  string  `json:"productCode"`
	ProductName  string  `json:"productName"`
	Material     string  `json:"material"`
	UnitWeight   float64 `json:"unitWeight"`
	Quantity     float64 `json:"quantity"`
	OrderDate    string  `json:"orderDate"`
	DeliveryDate string  `json:"deliveryDate"`
	Notes        string  `json:"notes"`
	Confidence   float64 `json:"confidence"`
}

// Extract performs one generative extraction attempt. The single external
// call is the only cancellable unit: callers apply their timeout to ctx and
// a timeout routes to the simulated fallback like any other call failure.
func (a *Adapter) Extract(ctx context.Context, text, partnerHint string) Result {
	rid := uuid.New().String()
	start := time.Now()

	if a.gen == nil {
		a.logger.Info("llm.extract.not_configured", "req_id", rid)
		return simulateExtraction(text)
	}

	var examples []entity.LearningEntry
	if a.examples != nil {
		examples = a.examples.Recent(constants.PromptMaxExamples)
	}
	prompt := BuildPrompt(text, partnerHint, examples)

	a.logger.Info("llm.extract.start",
		"req_id", rid,
		"text_len", len(text),
		"examples", len(examples),
		"prompt_len", len(prompt),
	)

	response, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		a.logger.Warn("llm.extract.call_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return simulateExtraction(text)
	}

	result := a.parseResponse(rid, response)
	a.logger.Info("llm.extract.done",
		"req_id", rid,
		"status", string(result.Status),
		"method", string(result.Method),
		"confidence", result.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result
}

func (a *Adapter) parseResponse(rid, response string) Result {
	raw, err := FirstJSONObject(response)
	if err != nil {
		a.logger.Warn("llm.extract.no_json", "req_id", rid, "error", err, "response_len", len(response))
		return parseFailure("response contained no parseable JSON object")
	}

	cleaned, _, err := NormalizeAndSanitizeJSON(raw, a.logger)
	if err != nil {
		a.logger.Warn("llm.extract.sanitize_failed", "req_id", rid, "error", err)
		return parseFailure("response JSON could not be normalized")
	}

	if err := ValidateJSONAgainstSchema(BuildOrderJSONSchema(), cleaned); err != nil {
		a.logger.Warn("llm.extract.schema_validation_failed", "req_id", rid, "error", err)
		r := parseFailure("response JSON did not match the expected shape")
		r.RawJSON = cleaned
		return r
	}

	var w wireFields
	if err := json.Unmarshal(cleaned, &w); err != nil {
		a.logger.Warn("llm.extract.unmarshal_failed", "req_id", rid, "error", err)
		r := parseFailure("response JSON did not decode into order fields")
		r.RawJSON = cleaned
		return r
	}

	confidence := int(w.Confidence)
	if confidence <= 0 {
		confidence = defaultAIConfidence
	}
	if confidence > 100 {
		confidence = 100
	}

	return Result{
		Fields: entity.OrderFields{
			OrderNumber:  w.OrderNumber,
			CustomerName: w.CustomerName,
			ProductCode:  w.ProductCode,
			ProductName:  w.ProductName,
			Material:     w.Material,
			UnitWeight:   w.UnitWeight,
			Quantity:     int(w.Quantity),
			OrderDate:    w.OrderDate,
			DeliveryDate: w.DeliveryDate,
			Notes:        w.Notes,
		},
		Confidence: confidence,
		Method:     constants.MethodAI,
		Status:     StatusOK,
		RawJSON:    cleaned,
	}
}

func parseFailure(note string) Result {
	var fields entity.OrderFields
	fields.Notes = note
	return Result{
		Fields:     fields,
		Confidence: 0,
		Method:     constants.MethodAIFailed,
		Status:     StatusParseFailed,
		Note:       note,
	}
}
