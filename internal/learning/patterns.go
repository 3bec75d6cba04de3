package learning

import (
	"regexp"
	"strings"

	"github.com/orderdocs/order-extractor/constants"
	"github.com/orderdocs/order-extractor/internal/entity"
)

// contextRunes is how much surrounding text is kept on each side of a
// located value when inferring patterns.
const contextRunes = 20

func isLabelSeparator(r rune) bool {
	return r == ':' || r == '：' || r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '　'
}

// InferPatterns locates every occurrence of each non-empty string field
// value in text and generalizes the preceding label token into a candidate
// extraction pattern ("label, optional separator, capture the next
// non-whitespace token"). No deduplication or ranking happens here; that
// judgement belongs to whoever reviews the candidates. A value that does not
// literally occur in the text yields nothing for that field, silently.
func InferPatterns(text string, fields entity.OrderFields) map[string][]entity.ContextPattern {
	out := make(map[string][]entity.ContextPattern)
	for _, name := range constants.AllFields {
		value := fields.StringField(name)
		if value == "" {
			continue
		}
		patterns := locateValue(text, value)
		if len(patterns) > 0 {
			out[name] = patterns
		}
	}
	return out
}

func locateValue(text, value string) []entity.ContextPattern {
	var found []entity.ContextPattern
	for start := 0; ; {
		idx := strings.Index(text[start:], value)
		if idx < 0 {
			break
		}
		idx += start
		before := tailRunes(text[:idx], contextRunes)
		after := headRunes(text[idx+len(value):], contextRunes)

		cp := entity.ContextPattern{
			Before:    before,
			After:     after,
			FullMatch: before + value + after,
			Label:     trailingLabel(before),
		}
		if cp.Label != "" {
			cp.Pattern = regexp.QuoteMeta(cp.Label) + `[:：]?\s*([^\s]+)`
		}
		found = append(found, cp)
		start = idx + len(value)
	}
	return found
}

// trailingLabel extracts the shortest trailing token of the before-context:
// separators directly preceding the value are skipped, then characters are
// collected until the next separator.
func trailingLabel(before string) string {
	runes := []rune(before)
	i := len(runes) - 1
	for i >= 0 && isLabelSeparator(runes[i]) {
		i--
	}
	end := i + 1
	for i >= 0 && !isLabelSeparator(runes[i]) {
		i--
	}
	return string(runes[i+1 : end])
}

func tailRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}

func headRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
