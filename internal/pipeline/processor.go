package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/orderdocs/order-extractor/constants"
	"github.com/orderdocs/order-extractor/internal/entity"
	"github.com/orderdocs/order-extractor/internal/extract"
	"github.com/orderdocs/order-extractor/internal/format"
	"github.com/orderdocs/order-extractor/internal/learning"
	"github.com/orderdocs/order-extractor/internal/llm"
)

// Processor runs one document through classification, deterministic
// extraction, quality evaluation, and, when quality falls short, the
// generative second pass. One synchronous pipeline per document; the only
// shared state is the registry (read) and the learning store (serialized).
type Processor struct {
	logger            *slog.Logger
	classifier        *format.Classifier
	extractor         *extract.Extractor
	adapter           *llm.Adapter
	store             *learning.Store
	qualityThreshold  int
	generativeTimeout time.Duration
}

type Option func(*Processor)

// WithQualityThreshold sets the score below which the generative pass runs.
func WithQualityThreshold(score int) Option {
	return func(p *Processor) {
		if score >= 0 && score <= 100 {
			p.qualityThreshold = score
		}
	}
}

// WithGenerativeTimeout bounds the single external generation call.
func WithGenerativeTimeout(d time.Duration) Option {
	return func(p *Processor) {
		if d > 0 {
			p.generativeTimeout = d
		}
	}
}

func NewProcessor(
	registry *format.Registry,
	adapter *llm.Adapter,
	store *learning.Store,
	logger *slog.Logger,
	opts ...Option,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Processor{
		logger:            logger,
		classifier:        format.NewClassifier(registry, logger),
		extractor:         extract.NewExtractor(logger),
		adapter:           adapter,
		store:             store,
		qualityThreshold:  constants.QualityGoodMin,
		generativeTimeout: 60 * time.Second,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Process extracts a structured record from one document text. The result
// is always fully populated with defaults; a poor extraction is a
// low-quality record, never an error.
func (p *Processor) Process(ctx context.Context, text, partnerHint string) entity.ExtractionResult {
	rid := uuid.New().String()
	start := time.Now()

	sel := p.classifier.Classify(text)
	fields := p.extractor.Extract(text, sel.Format)
	score, level := extract.EvaluateQuality(fields)

	result := entity.ExtractionResult{
		Fields:            fields,
		DetectedFormat:    sel.Format.ID,
		Method:            constants.MethodDeterministic,
		QualityScore:      score,
		QualityLevel:      level,
		MatchedIndicators: sel.MatchedIndicators,
	}

	p.logger.Info("pipeline.deterministic",
		"req_id", rid,
		"format", sel.Format.ID,
		"quality_score", score,
		"quality_level", string(level),
	)

	if score < p.qualityThreshold {
		genCtx, cancel := context.WithTimeout(ctx, p.generativeTimeout)
		gen := p.adapter.Extract(genCtx, text, partnerHint)
		cancel()

		genScore, genLevel := extract.EvaluateQuality(gen.Fields)
		result = entity.ExtractionResult{
			Fields:            gen.Fields,
			DetectedFormat:    sel.Format.ID,
			Confidence:        gen.Confidence,
			Method:            gen.Method,
			QualityScore:      genScore,
			QualityLevel:      genLevel,
			MatchedIndicators: sel.MatchedIndicators,
		}
		p.logger.Info("pipeline.generative",
			"req_id", rid,
			"method", string(gen.Method),
			"status", string(gen.Status),
			"confidence", gen.Confidence,
			"quality_score", genScore,
		)
	}

	p.logger.Info("pipeline.done",
		"req_id", rid,
		"method", string(result.Method),
		"format", result.DetectedFormat,
		"quality_level", string(result.QualityLevel),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result
}

// Correct records a human-corrected (or confirmed) record for a document and
// returns the inferred candidate patterns per field. Merging candidates into
// the format registry is an approval decision left to the caller.
func (p *Processor) Correct(ctx context.Context, text string, corrected entity.OrderFields, feedback entity.FeedbackType, confidence int) (entity.LearningEntry, map[string][]entity.ContextPattern) {
	entry := p.store.Add(ctx, text, corrected, feedback, confidence)
	return entry, entry.ExtractionPatterns
}
