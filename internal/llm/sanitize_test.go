package llm

import (
	"encoding/json"
	"testing"
)

func sanitize(t *testing.T, in string) map[string]any {
	t.Helper()
	out, _, err := NormalizeAndSanitizeJSON([]byte(in), nil)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("decode sanitized: %v", err)
	}
	return m
}

func TestSanitizeRenamesSynonyms(t *testing.T) {
	m := sanitize(t, `{"order_number":"A-1","customer_name":"A株式会社"}`)
	if m["orderNumber"] != "A-1" {
		t.Errorf("orderNumber = %v", m["orderNumber"])
	}
	if m["customerName"] != "A株式会社" {
		t.Errorf("customerName = %v", m["customerName"])
	}
	if _, ok := m["order_number"]; ok {
		t.Error("snake_case key must be removed after rename")
	}
}

func TestSanitizeCoercesNumerics(t *testing.T) {
	m := sanitize(t, `{"unitWeight":"2.5","quantity":"１，２００","confidence":0.8}`)
	if m["unitWeight"] != 2.5 {
		t.Errorf("unitWeight = %v (%T)", m["unitWeight"], m["unitWeight"])
	}
	if m["quantity"] != 1200.0 {
		t.Errorf("quantity = %v (%T)", m["quantity"], m["quantity"])
	}
	// fractional confidence scales to 0-100
	if m["confidence"] != 80.0 {
		t.Errorf("confidence = %v", m["confidence"])
	}
}

func TestSanitizeDropsNullsAndUnknowns(t *testing.T) {
	m := sanitize(t, `{"orderNumber":null,"totally_made_up":"x","notes":" trimmed "}`)
	if _, ok := m["orderNumber"]; ok {
		t.Error("null field must be dropped")
	}
	if _, ok := m["totally_made_up"]; ok {
		t.Error("unknown key must be dropped")
	}
	if m["notes"] != "trimmed" {
		t.Errorf("notes = %q", m["notes"])
	}
}

func TestSanitizedOutputValidates(t *testing.T) {
	out, _, err := NormalizeAndSanitizeJSON([]byte(
		`{"order_number":"A-1","unitWeight":"3.5kg","quantity":"30","extra":null}`), nil)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if err := ValidateJSONAgainstSchema(BuildOrderJSONSchema(), out); err != nil {
		t.Errorf("sanitized output must validate: %v", err)
	}
}
