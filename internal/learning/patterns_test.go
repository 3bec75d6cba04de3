package learning

import (
	"regexp"
	"testing"

	"github.com/orderdocs/order-extractor/internal/entity"
)

func TestInferPatternsFromLabeledValue(t *testing.T) {
	text := "発注書\n品番: XYZ-123\n数量: 30個\n"
	fields := entity.OrderFields{ProductCode: "XYZ-123"}

	got := InferPatterns(text, fields)
	patterns, ok := got["productCode"]
	if !ok || len(patterns) != 1 {
		t.Fatalf("productCode patterns = %v", got)
	}

	p := patterns[0]
	if p.Label != "品番" {
		t.Errorf("label = %q, want 品番", p.Label)
	}
	if p.Pattern == "" {
		t.Fatal("expected a generated pattern")
	}
	re, err := regexp.Compile(p.Pattern)
	if err != nil {
		t.Fatalf("generated pattern does not compile: %v", err)
	}
	m := re.FindStringSubmatch(text)
	if m == nil || m[1] != "XYZ-123" {
		t.Errorf("pattern %q re-extracts %v, want XYZ-123", p.Pattern, m)
	}
}

func TestInferPatternsFullWidthSeparator(t *testing.T) {
	text := "注文番号：A-000456 納期：2024-06-01"
	fields := entity.OrderFields{OrderNumber: "A-000456"}

	got := InferPatterns(text, fields)
	patterns := got["orderNumber"]
	if len(patterns) != 1 {
		t.Fatalf("patterns = %v", patterns)
	}
	if patterns[0].Label != "注文番号" {
		t.Errorf("label = %q, want 注文番号", patterns[0].Label)
	}
}

func TestInferPatternsValueAbsentFromText(t *testing.T) {
	got := InferPatterns("nothing relevant here", entity.OrderFields{OrderNumber: "A-1"})
	if _, ok := got["orderNumber"]; ok {
		t.Errorf("absent value must produce no patterns, got %v", got)
	}
}

func TestInferPatternsSkipsEmptyFields(t *testing.T) {
	got := InferPatterns("品番: XYZ", entity.OrderFields{})
	if len(got) != 0 {
		t.Errorf("empty fields must infer nothing, got %v", got)
	}
}

func TestInferPatternsMultipleOccurrences(t *testing.T) {
	text := "品番: AB-1 ... 再掲 品番: AB-1"
	got := InferPatterns(text, entity.OrderFields{ProductCode: "AB-1"})
	if len(got["productCode"]) != 2 {
		t.Errorf("expected 2 occurrences, got %d", len(got["productCode"]))
	}
}

func TestInferPatternsContextWindow(t *testing.T) {
	long := "ああああああああああああああああああああああああああ品名:ボルトいいいいいいいいいいいいいいいいいいいいいいいいいい"
	got := InferPatterns(long, entity.OrderFields{ProductName: "ボルト"})
	patterns := got["productName"]
	if len(patterns) != 1 {
		t.Fatalf("patterns = %v", patterns)
	}
	if n := len([]rune(patterns[0].Before)); n != 20 {
		t.Errorf("before context = %d runes, want 20", n)
	}
	if n := len([]rune(patterns[0].After)); n != 20 {
		t.Errorf("after context = %d runes, want 20", n)
	}
}
