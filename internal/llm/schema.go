package llm

// BuildOrderJSONSchema returns the JSON-Schema (draft 2020-12 subset) for a
// generative response, as a generic map. Used locally to validate responses
// after sanitization.
func BuildOrderJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"orderNumber":  map[string]any{"type": "string"},
			"customerName": map[string]any{"type": "string"},
			"productCode":  map[string]any{"type": "string"},
			"productName":  map[string]any{"type": "string"},
			"material":     map[string]any{"type": "string"},
			"unitWeight":   map[string]any{"type": "number", "minimum": 0.0},
			"quantity":     map[string]any{"type": "number", "minimum": 0.0},
			"orderDate":    map[string]any{"type": "string"},
			"deliveryDate": map[string]any{"type": "string"},
			"notes":        map[string]any{"type": "string"},
			"confidence":   map[string]any{"type": "number", "minimum": 0.0, "maximum": 100.0},
		},
	}
}
