package format

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/orderdocs/order-extractor/constants"
	"github.com/orderdocs/order-extractor/internal/common"
)

// Registry holds every known format definition. Reads are concurrent; writes
// (registering formats, merging custom patterns) are serialized. The GENERIC
// fallback format is seeded at construction and can never be removed or
// replaced.
type Registry struct {
	mu     sync.RWMutex
	logger *slog.Logger
	byID   map[string]*FormatDefinition
	order  []string // registration order; classifier tie-break depends on it
}

// NewRegistry creates a registry seeded with the GENERIC fallback format.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{
		logger: logger,
		byID:   make(map[string]*FormatDefinition),
	}
	generic := &FormatDefinition{
		ID:       constants.GenericFormatID,
		Name:     "Generic document",
		Priority: 0,
	}
	_ = generic.compile()
	r.byID[generic.ID] = generic
	r.order = append(r.order, generic.ID)
	return r
}

// Register adds a format definition, or replaces an existing one with the
// same ID (keeping its registration-order slot). The GENERIC format cannot
// be replaced.
func (r *Registry) Register(def FormatDefinition) error {
	if def.ID == "" {
		return common.NewAppError("FORMAT_INVALID", "format id is required", common.ErrInvalidInput)
	}
	if def.ID == constants.GenericFormatID {
		return common.NewAppError("FORMAT_INVALID", "the GENERIC format cannot be replaced", common.ErrInvalidInput)
	}
	if err := def.compile(); err != nil {
		return common.NewAppError("FORMAT_INVALID", "format does not compile", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[def.ID]; !exists {
		r.order = append(r.order, def.ID)
	}
	r.byID[def.ID] = &def
	r.logger.Info("format.registered", "id", def.ID, "name", def.Name, "indicators", len(def.Indicators))
	return nil
}

// Get returns the format with the given ID.
func (r *Registry) Get(id string) (*FormatDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.byID[id]
	if !ok {
		return nil, common.NewAppError("FORMAT_NOT_FOUND", fmt.Sprintf("format %s is not registered", id), common.ErrNotFound)
	}
	return def, nil
}

// Generic returns the always-present fallback format.
func (r *Registry) Generic() *FormatDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[constants.GenericFormatID]
}

// All returns every registered format in registration order.
func (r *Registry) All() []*FormatDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*FormatDefinition, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// CustomPatternSet maps format ID -> field name -> additional patterns, as
// persisted in the custom_formats blob.
type CustomPatternSet map[string]map[string][]FieldPattern

// ParseCustomPatterns decodes a persisted custom pattern blob.
func ParseCustomPatterns(blob []byte) (CustomPatternSet, error) {
	var set CustomPatternSet
	if err := json.Unmarshal(blob, &set); err != nil {
		return nil, fmt.Errorf("decode custom patterns: %w", err)
	}
	return set, nil
}

// MergeCustomPatterns appends persisted patterns to the matching formats.
// Appending keeps originally authored patterns at first-match priority.
// Patterns for unknown formats or that fail to compile are skipped, logged.
func (r *Registry) MergeCustomPatterns(set CustomPatternSet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for formatID, fields := range set {
		def, ok := r.byID[formatID]
		if !ok {
			r.logger.Warn("format.merge.unknown_format", "id", formatID)
			continue
		}
		if def.FieldPatterns == nil {
			def.FieldPatterns = make(map[string][]FieldPattern)
		}
		for field, patterns := range fields {
			for _, p := range patterns {
				if err := p.compile(); err != nil {
					r.logger.Warn("format.merge.bad_pattern", "id", formatID, "field", field, "error", err)
					continue
				}
				def.FieldPatterns[field] = append(def.FieldPatterns[field], p)
			}
		}
		r.logger.Info("format.merge.ok", "id", formatID, "fields", len(fields))
	}
}
