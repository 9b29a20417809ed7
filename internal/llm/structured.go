package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator checks a decoded reply; a non-nil error rejects it.
type SchemaValidator[T any] func(T) error

// ExtractJSON decodes the first JSON object in a model reply into T. Code
// fences, prose around the object, // and /* */ comments and numbers
// written as .5 are tolerated. Every failure is a *ParseError wrapping
// ErrInvalidOutput.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var result T

	obj := balancedObject(stripCodeFences(raw))
	if obj == "" {
		return result, &ParseError{Raw: raw, Err: fmt.Errorf("%w: no JSON object in reply", ErrInvalidOutput)}
	}
	if err := json.Unmarshal([]byte(cleanJSON(obj)), &result); err != nil {
		var zero T
		return zero, &ParseError{Raw: raw, Err: fmt.Errorf("%w: %v", ErrInvalidOutput, err)}
	}
	if validator != nil {
		if err := validator(result); err != nil {
			var zero T
			return zero, &ParseError{Raw: raw, Err: fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)}
		}
	}
	return result, nil
}

func stripCodeFences(s string) string {
	var b strings.Builder
	for line := range strings.Lines(s) {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		b.WriteString(line)
	}
	return b.String()
}

// quoteTracker follows JSON string literals one byte at a time.
type quoteTracker struct {
	inString, escaped bool
}

// feed reports whether c is part of a string literal, quotes included.
func (q *quoteTracker) feed(c byte) bool {
	switch {
	case q.escaped:
		q.escaped = false
		return true
	case q.inString && c == '\\':
		q.escaped = true
		return true
	case c == '"':
		q.inString = !q.inString
		return true
	}
	return q.inString
}

// balancedObject returns the first {...} span whose braces balance outside
// string literals, or "" when there is none.
func balancedObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}
	var q quoteTracker
	depth := 0
	for i := start; i < len(s); i++ {
		c := s[i]
		if q.feed(c) {
			continue
		}
		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// cleanJSON drops comments and rewrites .5 / -.5 to 0.5 / -0.5 outside
// string literals.
func cleanJSON(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	var q quoteTracker
	for i := 0; i < len(s); i++ {
		c := s[i]
		if q.feed(c) {
			b.WriteByte(c)
			continue
		}
		if c == '/' && i+1 < len(s) {
			switch s[i+1] {
			case '/':
				// Keep the newline itself.
				if nl := strings.IndexByte(s[i:], '\n'); nl >= 0 {
					i += nl - 1
				} else {
					i = len(s)
				}
				continue
			case '*':
				if end := strings.Index(s[i+2:], "*/"); end >= 0 {
					i += end + 3
				} else {
					i = len(s)
				}
				continue
			}
		}
		if c == '.' && i+1 < len(s) && isDigit(s[i+1]) && startsNumber(b.String()) {
			b.WriteByte('0')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// startsNumber reports whether a number beginning after out would start a
// new value, so a bare '.' there is a missing leading zero.
func startsNumber(out string) bool {
	out = strings.TrimRight(out, " \t\r\n")
	if out == "" {
		return true
	}
	return strings.ContainsRune(":,[{-", rune(out[len(out)-1]))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
