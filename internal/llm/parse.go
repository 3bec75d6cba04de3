package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FirstJSONObject scans a response for the first balanced top-level JSON
// object and returns it. Models wrap output in prose or code fences often
// enough that naive unmarshalling of the whole response is not reliable.
func FirstJSONObject(s string) ([]byte, error) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return nil, fmt.Errorf("no JSON object in response")
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				candidate := []byte(s[start : i+1])
				if !json.Valid(candidate) {
					return nil, fmt.Errorf("first JSON block is not valid JSON")
				}
				return candidate, nil
			}
		}
	}
	return nil, fmt.Errorf("unterminated JSON object in response")
}
