package format

import (
	"log/slog"

	"github.com/orderdocs/order-extractor/constants"
)

// Selection is the classifier's decision for one document, with the
// indicator trail kept for auditing.
type Selection struct {
	Format            *FormatDefinition
	Confidence        float64
	MatchedIndicators []string
}

// IsGeneric reports whether classification fell through to the fallback.
func (s Selection) IsGeneric() bool {
	return s.Format != nil && s.Format.ID == constants.GenericFormatID
}

// Classifier scores registered formats against a document text.
type Classifier struct {
	reg    *Registry
	logger *slog.Logger
}

func NewClassifier(reg *Registry, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{reg: reg, logger: logger}
}

// Classify picks the best-matching format for text, or GENERIC when no
// indicator of any format matches. For each format with indicators,
// confidence = (matched / total indicators) * priority. Ties resolve to the
// first-registered format: a later format must score strictly higher to win.
// Greedy and one-shot; repeated calls on the same text are deterministic.
func (c *Classifier) Classify(text string) Selection {
	best := Selection{}
	for _, def := range c.reg.All() {
		if len(def.Indicators) == 0 {
			continue
		}
		matched := def.MatchIndicators(text)
		if len(matched) == 0 {
			continue
		}
		confidence := float64(len(matched)) / float64(len(def.Indicators)) * float64(def.Priority)
		if confidence <= 0 || confidence <= best.Confidence {
			continue
		}
		best = Selection{
			Format:            def,
			Confidence:        confidence,
			MatchedIndicators: matched,
		}
	}
	if best.Format == nil {
		best.Format = c.reg.Generic()
		c.logger.Debug("classify.fallback", "format", best.Format.ID)
		return best
	}
	c.logger.Debug("classify.ok",
		"format", best.Format.ID,
		"confidence", best.Confidence,
		"matched_indicators", len(best.MatchedIndicators),
	)
	return best
}
