package extract

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

var reLeadingNumber = regexp.MustCompile(`-?[0-9]+(?:\.[0-9]+)?`)

// FoldWidth narrows full-width characters so "１２３" parses like "123".
// Partner documents mix full- and half-width digits freely.
func FoldWidth(s string) string {
	return width.Narrow.String(s)
}

// ParseFloat parses a numeric value out of free-form text: width-folded,
// comma separators removed, first numeric run taken. Returns 0 on failure.
func ParseFloat(s string) float64 {
	cleaned := strings.ReplaceAll(FoldWidth(strings.TrimSpace(s)), ",", "")
	m := reLeadingNumber.FindString(cleaned)
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseInt parses an integer count the same way, truncating any fraction.
// Returns 0 on failure.
func ParseInt(s string) int {
	return int(ParseFloat(s))
}
