package format

import (
	"fmt"
	"regexp"
)

// FieldPattern is one extraction rule: a regular expression plus the capture
// group that yields the field value. Patterns are plain data so format
// definitions can be serialized, persisted, and merged without code changes.
type FieldPattern struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Group   int    `json:"group,omitempty" yaml:"group,omitempty"` // capture group index, 1 when omitted

	re *regexp.Regexp
}

func (p *FieldPattern) compile() error {
	re, err := regexp.Compile(p.Pattern)
	if err != nil {
		return fmt.Errorf("compile pattern %q: %w", p.Pattern, err)
	}
	p.re = re
	if p.Group <= 0 {
		p.Group = 1
	}
	return nil
}

// Extract applies the pattern to text and returns the captured value.
// A match with an empty capture counts as no match.
func (p *FieldPattern) Extract(text string) (string, bool) {
	if p.re == nil {
		return "", false
	}
	m := p.re.FindStringSubmatch(text)
	if m == nil || p.Group >= len(m) || m[p.Group] == "" {
		return "", false
	}
	return m[p.Group], true
}

// FormatDefinition describes one partner document layout: indicators that
// identify it and per-field ordered pattern lists that extract from it.
// Immutable once registered, except for append-only pattern merges through
// the registry.
type FormatDefinition struct {
	ID            string                    `json:"id" yaml:"id"`
	Name          string                    `json:"name" yaml:"name"`
	Priority      int                       `json:"priority" yaml:"priority"`
	Indicators    []string                  `json:"indicators,omitempty" yaml:"indicators,omitempty"`
	FieldPatterns map[string][]FieldPattern `json:"field_patterns,omitempty" yaml:"field_patterns,omitempty"`

	indicators []*regexp.Regexp
}

func (f *FormatDefinition) compile() error {
	f.indicators = make([]*regexp.Regexp, 0, len(f.Indicators))
	for _, src := range f.Indicators {
		re, err := regexp.Compile(src)
		if err != nil {
			return fmt.Errorf("format %s: compile indicator %q: %w", f.ID, src, err)
		}
		f.indicators = append(f.indicators, re)
	}
	for field, patterns := range f.FieldPatterns {
		for i := range patterns {
			if err := patterns[i].compile(); err != nil {
				return fmt.Errorf("format %s: field %s: %w", f.ID, field, err)
			}
		}
		f.FieldPatterns[field] = patterns
	}
	return nil
}

// MatchIndicators evaluates every indicator against text independently and
// returns the sources of those that matched.
func (f *FormatDefinition) MatchIndicators(text string) []string {
	var matched []string
	for i, re := range f.indicators {
		if re.MatchString(text) {
			matched = append(matched, f.Indicators[i])
		}
	}
	return matched
}
