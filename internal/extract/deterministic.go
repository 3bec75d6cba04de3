package extract

import (
	"log/slog"
	"strings"

	"github.com/orderdocs/order-extractor/constants"
	"github.com/orderdocs/order-extractor/internal/entity"
	"github.com/orderdocs/order-extractor/internal/format"
)

// Extractor applies a format's field patterns to document text.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract runs the chosen format's patterns field by field, in declaration
// order; the first pattern with a non-empty capture wins and later patterns
// for that field are skipped. Fields without a matching pattern (or without
// patterns at all, as under GENERIC) keep their zero defaults; a non-match
// is not an error.
func (e *Extractor) Extract(text string, def *format.FormatDefinition) entity.OrderFields {
	var fields entity.OrderFields
	if def == nil || len(def.FieldPatterns) == 0 {
		return fields
	}

	filled := 0
	for _, name := range constants.AllFields {
		patterns, ok := def.FieldPatterns[name]
		if !ok {
			continue
		}
		for i := range patterns {
			value, matched := patterns[i].Extract(text)
			if !matched {
				continue
			}
			e.setField(&fields, name, value)
			filled++
			break
		}
	}

	e.logger.Debug("extract.deterministic",
		"format", def.ID,
		"filled_fields", filled,
	)
	return fields
}

func (e *Extractor) setField(fields *entity.OrderFields, name, value string) {
	switch name {
	case constants.FieldUnitWeight:
		fields.UnitWeight = ParseFloat(value)
	case constants.FieldQuantity:
		fields.Quantity = ParseInt(value)
	default:
		fields.SetStringField(name, strings.TrimSpace(value))
	}
}
