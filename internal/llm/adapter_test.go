package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/orderdocs/order-extractor/constants"
	"github.com/orderdocs/order-extractor/internal/entity"
)

type stubGenerator struct {
	response string
	err      error
	prompts  []string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

type stubExamples struct {
	entries []entity.LearningEntry
}

func (s *stubExamples) Recent(n int) []entity.LearningEntry {
	if n > len(s.entries) {
		n = len(s.entries)
	}
	return s.entries[len(s.entries)-n:]
}

func TestExtractWithoutGeneratorSimulates(t *testing.T) {
	a := NewAdapter(nil, nil, nil)

	r := a.Extract(context.Background(), "注文番号: B-42 品番: P-100", "")
	if r.Method != constants.MethodSimulated {
		t.Fatalf("method = %s, want SIMULATED", r.Method)
	}
	if r.Status != StatusUnavailable {
		t.Errorf("status = %s, want unavailable", r.Status)
	}
	if r.Confidence < 50 {
		t.Errorf("confidence = %d, want >= 50", r.Confidence)
	}
	// both heuristic fields hit: 50 + 10 + 10
	if r.Confidence != 70 {
		t.Errorf("confidence = %d, want 70", r.Confidence)
	}
	if r.Fields.OrderNumber != "B-42" || r.Fields.ProductCode != "P-100" {
		t.Errorf("heuristic fields = %q / %q", r.Fields.OrderNumber, r.Fields.ProductCode)
	}
}

func TestExtractGeneratorFailureSimulates(t *testing.T) {
	gen := &stubGenerator{err: errors.New("connection refused")}
	a := NewAdapter(gen, nil, nil)

	r := a.Extract(context.Background(), "no labels here", "")
	if r.Method != constants.MethodSimulated {
		t.Fatalf("method = %s, want SIMULATED", r.Method)
	}
	if r.Confidence != 50 {
		t.Errorf("confidence = %d, want base 50 with no heuristic hits", r.Confidence)
	}
}

func TestExtractUnparseableResponseIsAIFailed(t *testing.T) {
	gen := &stubGenerator{response: "I could not find any order information, sorry."}
	a := NewAdapter(gen, nil, nil)

	r := a.Extract(context.Background(), "some document", "")
	if r.Method != constants.MethodAIFailed {
		t.Fatalf("method = %s, want AI_FAILED", r.Method)
	}
	if r.Status != StatusParseFailed {
		t.Errorf("status = %s, want parse_failed", r.Status)
	}
	if r.Confidence != 0 {
		t.Errorf("confidence = %d, want 0", r.Confidence)
	}
	if r.Note == "" || r.Fields.Notes == "" {
		t.Error("parse failure must carry an explanatory note")
	}
}

func TestExtractParsesValidResponse(t *testing.T) {
	gen := &stubGenerator{response: "Result:\n" +
		`{"order_number":"A-000123","customerName":"A株式会社","productCode":"XYZ-123",` +
		`"productName":"フランジ","material":"SUS304","unitWeight":"2.5","quantity":"1200",` +
		`"orderDate":"2024-05-01","deliveryDate":"2024-05-20","notes":"labels were explicit",` +
		`"confidence":90}`}
	a := NewAdapter(gen, nil, nil)

	r := a.Extract(context.Background(), "document", "")
	if r.Method != constants.MethodAI {
		t.Fatalf("method = %s, want AI (note: %s)", r.Method, r.Note)
	}
	if r.Status != StatusOK {
		t.Errorf("status = %s", r.Status)
	}
	if r.Confidence != 90 {
		t.Errorf("confidence = %d, want 90", r.Confidence)
	}
	if r.Fields.OrderNumber != "A-000123" {
		t.Errorf("orderNumber = %q", r.Fields.OrderNumber)
	}
	if r.Fields.UnitWeight != 2.5 || r.Fields.Quantity != 1200 {
		t.Errorf("numerics = %v / %d", r.Fields.UnitWeight, r.Fields.Quantity)
	}
}

func TestExtractDefaultsMissingConfidence(t *testing.T) {
	gen := &stubGenerator{response: `{"orderNumber":"A-1"}`}
	a := NewAdapter(gen, nil, nil)

	r := a.Extract(context.Background(), "document", "")
	if r.Method != constants.MethodAI {
		t.Fatalf("method = %s, want AI", r.Method)
	}
	if r.Confidence != defaultAIConfidence {
		t.Errorf("confidence = %d, want default %d", r.Confidence, defaultAIConfidence)
	}
}

func TestExtractIncludesRecentExamplesInPrompt(t *testing.T) {
	examples := &stubExamples{entries: []entity.LearningEntry{
		{InputText: "過去の発注書テキスト", CorrectData: entity.OrderFields{OrderNumber: "OLD-99"}},
	}}
	gen := &stubGenerator{response: `{"orderNumber":"A-1"}`}
	a := NewAdapter(gen, examples, nil)

	a.Extract(context.Background(), "document", "")
	if len(gen.prompts) != 1 {
		t.Fatalf("expected one generation call, got %d", len(gen.prompts))
	}
	if !strings.Contains(gen.prompts[0], "OLD-99") {
		t.Error("prompt must embed recent corrected examples")
	}
	if !strings.Contains(gen.prompts[0], "過去の発注書テキスト") {
		t.Error("prompt must embed example input excerpts")
	}
}
