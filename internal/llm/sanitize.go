package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strings"

	"github.com/orderdocs/order-extractor/constants"
	"github.com/orderdocs/order-extractor/internal/extract"
)

// NormalizeAndSanitizeJSON
// - Renames known synonyms (order_number -> orderNumber, etc.)
// - Drops nulls and unknown keys (strict additionalProperties friendliness)
// - Coerces string/full-width numerics for unitWeight, quantity, confidence
// - Trims string fields
func NormalizeAndSanitizeJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)
	renamed := func(from, to string) {
		if v, ok := m[from]; ok {
			if _, exists := m[to]; !exists {
				m[to] = v
			}
			delete(m, from)
			dropped = append(dropped, from+"->"+to)
		}
	}

	// 1) snake_case and common synonyms back to the canonical keys
	renamed("order_number", constants.FieldOrderNumber)
	renamed("order_no", constants.FieldOrderNumber)
	renamed("customer_name", constants.FieldCustomerName)
	renamed("customer", constants.FieldCustomerName)
	renamed("product_code", constants.FieldProductCode)
	renamed("part_no", constants.FieldProductCode)
	renamed("product_name", constants.FieldProductName)
	renamed("unit_weight", constants.FieldUnitWeight)
	renamed("order_date", constants.FieldOrderDate)
	renamed("delivery_date", constants.FieldDeliveryDate)

	// 2) numeric coercion; strings like "12,500" or "１２個" still parse
	coerceNumber := func(k string) {
		v, ok := m[k]
		if !ok {
			return
		}
		switch t := v.(type) {
		case float64:
			// already a number
		case string:
			m[k] = extract.ParseFloat(t)
			dropped = append(dropped, k+"(coerced)")
		case nil:
			delete(m, k)
			dropped = append(dropped, k+"(null)")
		default:
			delete(m, k)
			dropped = append(dropped, k+"(type)")
		}
	}
	coerceNumber(constants.FieldUnitWeight)
	coerceNumber(constants.FieldQuantity)
	coerceNumber("confidence")

	// a fractional confidence (0..1) is scaled to the 0-100 range
	if c, ok := m["confidence"].(float64); ok && c > 0 && c <= 1 {
		m["confidence"] = c * 100
	}

	// 3) trim strings, drop nulls
	for _, k := range constants.AllFields {
		if k == constants.FieldUnitWeight || k == constants.FieldQuantity {
			continue
		}
		switch v := m[k].(type) {
		case string:
			m[k] = strings.TrimSpace(v)
		case nil:
			if _, present := m[k]; present {
				delete(m, k)
				dropped = append(dropped, k+"(null)")
			}
		}
	}

	// 4) remove unknown keys
	allowed := make(map[string]struct{}, len(constants.AllFields)+1)
	for _, k := range constants.AllFields {
		allowed[k] = struct{}{}
	}
	allowed["confidence"] = struct{}{}
	for k := range maps.Clone(m) {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Debug("llm.extract.normalize_sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}
