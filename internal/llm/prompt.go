package llm

import (
	"encoding/json"
	"strings"

	"github.com/orderdocs/order-extractor/constants"
	"github.com/orderdocs/order-extractor/internal/entity"
)

// BuildPrompt composes the extraction prompt: domain framing, recent
// corrected examples, the (capped) document text, the exact output shape,
// and extraction rules.
func BuildPrompt(text, partnerHint string, examples []entity.LearningEntry) string {
	var b strings.Builder

	b.WriteString("You are an order-document parser for manufacturing purchase orders. ")
	b.WriteString("Documents come from different business partners, mix Japanese and English labels, ")
	b.WriteString("and follow no shared layout. Extract the order fields and return ONLY one JSON object.\n\n")

	if partnerHint != "" {
		b.WriteString("Known partner hint: " + partnerHint + "\n\n")
	}

	if len(examples) > 0 {
		b.WriteString("Recent corrected extractions (input excerpt, then the correct JSON):\n")
		for i, ex := range examples {
			b.WriteString("--- example ")
			b.WriteString(string(rune('1' + i)))
			b.WriteString(" ---\n")
			b.WriteString(excerpt(ex.InputText, constants.ExampleTextPreview))
			b.WriteString("\n")
			if raw, err := json.Marshal(ex.CorrectData); err == nil {
				b.Write(raw)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("Document text:\n")
	runes := []rune(text)
	if len(runes) > constants.PromptTextLimit {
		b.WriteString(string(runes[:constants.PromptTextLimit]))
		b.WriteString("\n...(text continues)")
	} else {
		b.WriteString(text)
	}
	b.WriteString("\n\n")

	b.WriteString("Return a JSON object with exactly these keys: ")
	b.WriteString(strings.Join(constants.AllFields, ", "))
	b.WriteString(". unitWeight and quantity are numbers; every other field is a string. ")
	b.WriteString("You may add a \"confidence\" number from 0 to 100.\n")
	b.WriteString("Rules: ")
	b.WriteString("treat full-width and half-width digits as equivalent; ")
	b.WriteString("leave a field as an empty string (or 0 for numbers) when you are not certain; ")
	b.WriteString("put a short rationale for your extraction into \"notes\"; ")
	b.WriteString("never output null and never wrap the JSON in markdown.")

	return b.String()
}

func excerpt(s string, n int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= n {
		return string(runes)
	}
	return string(runes[:n]) + "…"
}
