package learning

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/orderdocs/order-extractor/constants"
	"github.com/orderdocs/order-extractor/internal/common"
	"github.com/orderdocs/order-extractor/internal/entity"
	"github.com/orderdocs/order-extractor/internal/repository"
)

// Store is the append-only history of corrected extractions. Appends are
// serialized under a single mutex so the truncation invariant holds and
// persisted writes never interleave.
type Store struct {
	mu      sync.Mutex
	logger  *slog.Logger
	blob    repository.BlobStore
	entries []entity.LearningEntry
	lastID  int64
}

// Stats summarizes the learning history.
type Stats struct {
	Total          int     `json:"total"`
	LastWeek       int     `json:"last_week"`
	MeanConfidence float64 `json:"mean_confidence"`
}

// NewStore loads the persisted history. A missing or corrupt blob degrades
// to an empty history with a log line, never an error.
func NewStore(ctx context.Context, blob repository.BlobStore, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{logger: logger, blob: blob}

	raw, err := blob.Get(ctx, constants.LearningHistoryKey)
	switch {
	case errors.Is(err, common.ErrNotFound):
		logger.Info("learning.load.empty")
	case err != nil:
		logger.Warn("learning.load.failed", "error", err)
	default:
		var entries []entity.LearningEntry
		if err := json.Unmarshal(raw, &entries); err != nil {
			logger.Warn("learning.load.corrupt", "error", err)
		} else {
			s.entries = entries
			for _, e := range entries {
				if e.ID > s.lastID {
					s.lastID = e.ID
				}
			}
			logger.Info("learning.load.ok", "entries", len(entries))
		}
	}
	return s
}

// Add records a correction (or confirmation), runs pattern inference over
// it, enforces the history bound, and persists. A persistence failure is
// logged and swallowed; the in-memory history stays authoritative.
func (s *Store) Add(ctx context.Context, inputText string, correct entity.OrderFields, feedback entity.FeedbackType, confidence int) entity.LearningEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	entry := entity.LearningEntry{
		ID:                 id,
		Timestamp:          time.Now().UTC(),
		InputText:          inputText,
		CorrectData:        correct,
		FeedbackType:       feedback,
		Confidence:         confidence,
		ExtractionPatterns: InferPatterns(inputText, correct),
	}
	s.entries = append(s.entries, entry)

	if len(s.entries) > constants.HistoryMaxEntries {
		trimmed := len(s.entries) - constants.HistoryTrimTo
		s.entries = append([]entity.LearningEntry(nil), s.entries[trimmed:]...)
		s.logger.Info("learning.history.trimmed", "kept", len(s.entries))
	}

	s.persist(ctx)
	s.logger.Info("learning.entry.added",
		"id", entry.ID,
		"feedback", string(feedback),
		"pattern_fields", len(entry.ExtractionPatterns),
		"history", len(s.entries),
	)
	return entry
}

// Recent returns the last n entries in chronological order.
func (s *Store) Recent(n int) []entity.LearningEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n <= 0 || len(s.entries) == 0 {
		return nil
	}
	if n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]entity.LearningEntry, n)
	copy(out, s.entries[len(s.entries)-n:])
	return out
}

// Stats reports history totals and the mean recorded confidence. An entry
// with no recorded confidence counts as 50 in the mean, a legacy
// approximation kept for compatibility, which skews the average toward the
// middle when deterministic records dominate.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{Total: len(s.entries)}
	if st.Total == 0 {
		return st
	}
	weekAgo := time.Now().UTC().AddDate(0, 0, -7)
	sum := 0
	for _, e := range s.entries {
		if e.Timestamp.After(weekAgo) {
			st.LastWeek++
		}
		c := e.Confidence
		if c == 0 {
			c = 50
		}
		sum += c
	}
	st.MeanConfidence = float64(sum) / float64(st.Total)
	return st
}

// Reset clears the whole history. This is the only way entries are ever
// removed besides the size bound.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	s.persist(ctx)
	s.logger.Info("learning.history.reset")
}

func (s *Store) persist(ctx context.Context) {
	raw, err := json.Marshal(s.entries)
	if err != nil {
		s.logger.Warn("learning.persist.encode_failed", "error", err)
		return
	}
	if err := s.blob.Put(ctx, constants.LearningHistoryKey, raw); err != nil {
		s.logger.Warn("learning.persist.write_failed", "error", err)
	}
}
