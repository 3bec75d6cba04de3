package format

import (
	"testing"
)

func builtinsRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry(nil)
	if err := RegisterBuiltins(r); err != nil {
		t.Fatalf("register builtins: %v", err)
	}
	return r
}

func TestClassifySelectsPartnerFormat(t *testing.T) {
	c := NewClassifier(builtinsRegistry(t), nil)

	text := "A株式会社 発注書 A-000123\n品番: XYZ-123"
	sel := c.Classify(text)

	if sel.Format.ID != "COMPANY_A" {
		t.Fatalf("expected COMPANY_A, got %s", sel.Format.ID)
	}
	if len(sel.MatchedIndicators) != 2 {
		t.Errorf("both indicators should match, got %d", len(sel.MatchedIndicators))
	}
	// all indicators matched: confidence = 1.0 * priority
	if sel.Confidence != float64(sel.Format.Priority) {
		t.Errorf("confidence = %v, want %v", sel.Confidence, float64(sel.Format.Priority))
	}
}

func TestClassifyFallsBackToGeneric(t *testing.T) {
	c := NewClassifier(builtinsRegistry(t), nil)

	sel := c.Classify("no recognizable partner markers here")
	if !sel.IsGeneric() {
		t.Fatalf("expected GENERIC, got %s", sel.Format.ID)
	}
	if sel.Confidence != 0 {
		t.Errorf("generic fallback confidence = %v, want 0", sel.Confidence)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	c := NewClassifier(builtinsRegistry(t), nil)
	text := "B工業 注文書 注文No. B-42"

	first := c.Classify(text)
	for i := 0; i < 10; i++ {
		again := c.Classify(text)
		if again.Format.ID != first.Format.ID || again.Confidence != first.Confidence {
			t.Fatalf("classification not deterministic: run %d got %s/%v, want %s/%v",
				i, again.Format.ID, again.Confidence, first.Format.ID, first.Confidence)
		}
	}
}

func TestClassifyTieBreaksByRegistrationOrder(t *testing.T) {
	r := NewRegistry(nil)
	// identical indicators and priority: the tie must go to the first registered
	for _, id := range []string{"FIRST", "SECOND"} {
		if err := r.Register(FormatDefinition{
			ID:         id,
			Priority:   5,
			Indicators: []string{`注文書`},
		}); err != nil {
			t.Fatalf("register %s: %v", id, err)
		}
	}
	c := NewClassifier(r, nil)

	sel := c.Classify("注文書")
	if sel.Format.ID != "FIRST" {
		t.Errorf("tie must resolve to first registered, got %s", sel.Format.ID)
	}
}

func TestClassifyScoresPartialIndicatorMatch(t *testing.T) {
	r := NewRegistry(nil)
	if err := r.Register(FormatDefinition{
		ID:         "HALF",
		Priority:   10,
		Indicators: []string{`alpha`, `beta`},
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.Register(FormatDefinition{
		ID:         "FULL",
		Priority:   6,
		Indicators: []string{`alpha`},
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	c := NewClassifier(r, nil)

	// HALF: 1/2 * 10 = 5; FULL: 1/1 * 6 = 6
	sel := c.Classify("alpha only")
	if sel.Format.ID != "FULL" {
		t.Errorf("expected FULL (higher ratio-weighted score), got %s", sel.Format.ID)
	}
	if sel.Confidence != 6 {
		t.Errorf("confidence = %v, want 6", sel.Confidence)
	}
}
