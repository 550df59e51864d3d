package fj

import (
	"fmt"

	"github.com/ferrowind/fj/pkg/truncate"
)

// invalidPreviewLength bounds how much of a malformed document gets quoted
// back in a ValidationError message; documents (and their error payloads)
// routinely dwarf anything worth putting in a log line.
const invalidPreviewLength = 120

var previewTruncator = truncate.NewTruncator().
	WithMaxLength(invalidPreviewLength).
	WithPosition(truncate.PositionMiddle).
	WithOmission(truncate.DefaultOmission).
	Build()

// ValidationError describes why Valid rejected a document: the full input
// is never retained, only a bounded preview, so holding onto the error
// doesn't pin an arbitrarily large payload in memory.
type ValidationError struct {
	Preview string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("fj: invalid JSON: %s", e.Preview)
}

// Describe validates json and, if invalid, returns a *ValidationError
// carrying a truncated preview of the offending document; it returns nil
// for valid input. Unlike Valid, which only answers yes/no, this gives a
// caller something reasonable to log or wrap.
func Describe(json string) error {
	if Valid(json) {
		return nil
	}
	return &ValidationError{Preview: previewTruncator.Truncate(json)}
}

// Valid reports whether json is a single, complete RFC-8259 JSON document:
// the grammar's top-level production must consume the entire (trimmed)
// input, with nothing trailing it but whitespace.
func Valid(json string) bool {
	i, ok := expectValue(json, skipWhitespace(json, 0))
	if !ok {
		return false
	}
	i = skipWhitespace(json, i)
	return i == len(json)
}

// ValidBytes is Valid for a byte slice; it converts json to a string
// (a copy) and calls Valid.
func ValidBytes(json []byte) bool {
	return Valid(string(json))
}

// expectValue recognizes exactly one JSON value starting at i and returns
// the index just past it. Every branch double-checks the shape it claims
// to have found — unlike the raw scanner, which trusts its caller, the
// validator's whole job is to not trust its input.
func expectValue(json string, i int) (next int, ok bool) {
	if i >= len(json) {
		return i, false
	}
	switch json[i] {
	case '{':
		return expectObject(json, i)
	case '[':
		return expectArray(json, i)
	case '"':
		return expectString(json, i)
	case 't':
		return expectLiteral(json, i, "true")
	case 'f':
		return expectLiteral(json, i, "false")
	case 'n':
		return expectLiteral(json, i, "null")
	default:
		return expectNumber(json, i)
	}
}

func expectLiteral(json string, i int, lit string) (int, bool) {
	if i+len(lit) > len(json) || json[i:i+len(lit)] != lit {
		return i, false
	}
	return i + len(lit), true
}

func expectString(json string, i int) (int, bool) {
	if i >= len(json) || json[i] != '"' {
		return i, false
	}
	i++
	for i < len(json) {
		switch json[i] {
		case '"':
			return i + 1, true
		case '\\':
			i++
			if i >= len(json) {
				return i, false
			}
			switch json[i] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				i++
			case 'u':
				if i+4 >= len(json) {
					return i, false
				}
				for j := 1; j <= 4; j++ {
					if !isHexDigit(json[i+j]) {
						return i, false
					}
				}
				i += 5
			default:
				return i, false
			}
		default:
			if json[i] < 0x20 {
				return i, false
			}
			i++
		}
	}
	return i, false
}

func expectNumber(json string, i int) (int, bool) {
	start := i
	if i < len(json) && json[i] == '-' {
		i++
	}
	if i >= len(json) || json[i] < '0' || json[i] > '9' {
		return start, false
	}
	if json[i] == '0' {
		i++
	} else {
		for i < len(json) && json[i] >= '0' && json[i] <= '9' {
			i++
		}
	}
	if i < len(json) && json[i] == '.' {
		i++
		if i >= len(json) || json[i] < '0' || json[i] > '9' {
			return start, false
		}
		for i < len(json) && json[i] >= '0' && json[i] <= '9' {
			i++
		}
	}
	if i < len(json) && (json[i] == 'e' || json[i] == 'E') {
		i++
		if i < len(json) && (json[i] == '+' || json[i] == '-') {
			i++
		}
		if i >= len(json) || json[i] < '0' || json[i] > '9' {
			return start, false
		}
		for i < len(json) && json[i] >= '0' && json[i] <= '9' {
			i++
		}
	}
	return i, true
}

func expectArray(json string, i int) (int, bool) {
	i++ // '['
	i = skipWhitespace(json, i)
	if i < len(json) && json[i] == ']' {
		return i + 1, true
	}
	for {
		var ok bool
		i, ok = expectValue(json, i)
		if !ok {
			return i, false
		}
		i = skipWhitespace(json, i)
		if i >= len(json) {
			return i, false
		}
		switch json[i] {
		case ',':
			i = skipWhitespace(json, i+1)
		case ']':
			return i + 1, true
		default:
			return i, false
		}
	}
}

func expectObject(json string, i int) (int, bool) {
	i++ // '{'
	i = skipWhitespace(json, i)
	if i < len(json) && json[i] == '}' {
		return i + 1, true
	}
	for {
		i = skipWhitespace(json, i)
		var ok bool
		i, ok = expectString(json, i)
		if !ok {
			return i, false
		}
		i = skipWhitespace(json, i)
		if i >= len(json) || json[i] != ':' {
			return i, false
		}
		i = skipWhitespace(json, i+1)
		i, ok = expectValue(json, i)
		if !ok {
			return i, false
		}
		i = skipWhitespace(json, i)
		if i >= len(json) {
			return i, false
		}
		switch json[i] {
		case ',':
			i++
		case '}':
			return i + 1, true
		default:
			return i, false
		}
	}
}
