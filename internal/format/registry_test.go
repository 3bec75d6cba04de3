package format

import (
	"errors"
	"testing"

	"github.com/orderdocs/order-extractor/constants"
	"github.com/orderdocs/order-extractor/internal/common"
)

func TestRegistrySeedsGeneric(t *testing.T) {
	r := NewRegistry(nil)

	def, err := r.Get(constants.GenericFormatID)
	if err != nil {
		t.Fatalf("GENERIC must always be registered: %v", err)
	}
	if def.Priority != 0 || len(def.Indicators) != 0 {
		t.Errorf("GENERIC must have priority 0 and no indicators, got priority=%d indicators=%d",
			def.Priority, len(def.Indicators))
	}
	if err := r.Register(FormatDefinition{ID: constants.GenericFormatID}); err == nil {
		t.Error("replacing GENERIC must be rejected")
	}
}

func TestRegistryGetNotFound(t *testing.T) {
	r := NewRegistry(nil)
	_, err := r.Get("NOPE")
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRegistryRegisterRejectsBadPattern(t *testing.T) {
	r := NewRegistry(nil)
	err := r.Register(FormatDefinition{
		ID:         "BROKEN",
		Indicators: []string{`([`},
	})
	if err == nil {
		t.Fatal("expected compile error for invalid indicator")
	}
}

func TestRegistryAllKeepsRegistrationOrder(t *testing.T) {
	r := NewRegistry(nil)
	for _, id := range []string{"X", "Y", "Z"} {
		if err := r.Register(FormatDefinition{ID: id, Priority: 1, Indicators: []string{id}}); err != nil {
			t.Fatalf("register %s: %v", id, err)
		}
	}
	got := r.All()
	want := []string{constants.GenericFormatID, "X", "Y", "Z"}
	if len(got) != len(want) {
		t.Fatalf("got %d formats, want %d", len(got), len(want))
	}
	for i, def := range got {
		if def.ID != want[i] {
			t.Errorf("position %d: got %s, want %s", i, def.ID, want[i])
		}
	}

	// re-registering keeps the original slot
	if err := r.Register(FormatDefinition{ID: "X", Priority: 2, Indicators: []string{"x2"}}); err != nil {
		t.Fatalf("re-register: %v", err)
	}
	got = r.All()
	if got[1].ID != "X" || got[1].Priority != 2 {
		t.Errorf("re-registered format must keep its slot, got %s priority=%d", got[1].ID, got[1].Priority)
	}
}

func TestMergeCustomPatternsAppends(t *testing.T) {
	r := NewRegistry(nil)
	if err := r.Register(FormatDefinition{
		ID:         "P",
		Priority:   1,
		Indicators: []string{"P"},
		FieldPatterns: map[string][]FieldPattern{
			constants.FieldOrderNumber: {{Pattern: `No[.:]\s*([0-9]+)`}},
		},
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	r.MergeCustomPatterns(CustomPatternSet{
		"P": {
			constants.FieldOrderNumber: {{Pattern: `受注[:：]\s*([0-9]+)`}},
		},
		"UNKNOWN": {
			constants.FieldOrderNumber: {{Pattern: `x([0-9]+)`}},
		},
	})

	def, err := r.Get("P")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	patterns := def.FieldPatterns[constants.FieldOrderNumber]
	if len(patterns) != 2 {
		t.Fatalf("expected 2 patterns after merge, got %d", len(patterns))
	}
	// authored pattern keeps first-match priority
	if patterns[0].Pattern != `No[.:]\s*([0-9]+)` {
		t.Errorf("original pattern must stay first, got %q", patterns[0].Pattern)
	}
	if v, ok := patterns[1].Extract("受注: 778"); !ok || v != "778" {
		t.Errorf("merged pattern must be usable, got %q ok=%t", v, ok)
	}
}
