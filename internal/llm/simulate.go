package llm

import (
	"regexp"
	"strings"

	"github.com/orderdocs/order-extractor/constants"
	"github.com/orderdocs/order-extractor/internal/entity"
)

var (
	reSimOrderNumber = regexp.MustCompile(`(?:注文番号|発注番号|注文No[.．]?|Order\s*No[.:]?|PO[#:])[:：]?\s*([A-Za-z0-9０-９\-]+)`)
	reSimProductCode = regexp.MustCompile(`(?:品番|コード|Part\s*No[.:]?|Item\s*Code[.:]?)[:：]?\s*([A-Za-z0-9０-９\-]+)`)
)

// simulateExtraction is the last rung of the fallback chain: a minimal
// label-based pass used when no generation capability is available or the
// call failed. Confidence starts at 50 and gains 10 per matched field.
func simulateExtraction(text string) Result {
	var fields entity.OrderFields
	confidence := 50

	if m := reSimOrderNumber.FindStringSubmatch(text); m != nil {
		fields.OrderNumber = strings.TrimSpace(m[1])
		confidence += 10
	}
	if m := reSimProductCode.FindStringSubmatch(text); m != nil {
		fields.ProductCode = strings.TrimSpace(m[1])
		confidence += 10
	}
	fields.Notes = "simulated extraction: generation capability unavailable"

	return Result{
		Fields:     fields,
		Confidence: confidence,
		Method:     constants.MethodSimulated,
		Status:     StatusUnavailable,
		Note:       "generation capability unavailable; heuristic label extraction used",
	}
}
