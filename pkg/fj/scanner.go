package fj

// This file holds the three raw-scanner primitives the rest of the engine
// is built on. None of them validate; each terminates purely on the shape of
// the token in front of it and trusts the caller to have positioned i
// correctly. The path resolvers advance through JSON bytes only through
// these routines (the validator and Ugly keep their own byte loops), so any
// future performance work on resolution (the 256-entry
// "interesting byte" table the original engine uses for SIMD-style
// unrolling) belongs here.

// scanString advances over a JSON string literal starting at json[i] == '"'.
// It returns the index just past the closing quote and whether any
// backslash was seen along the way (the ESC flag). A backslash, wherever it
// appears, unconditionally consumes the following byte without
// interpreting it — the decode happens later, in Unescape.
//
// If the string is never closed, ok is false and next is len(json); callers
// must treat that as "no match" rather than use the partial span.
func scanString(json string, i int) (next int, esc bool, ok bool) {
	i++ // skip the opening quote
	for ; i < len(json); i++ {
		if json[i] == '"' {
			return i + 1, esc, true
		}
		if json[i] == '\\' {
			esc = true
			i++
		}
	}
	return len(json), esc, false
}

// numberFlags records which optional number features were present, the
// information Context needs to pick the fast coercion path without
// rescanning raw.
type numberFlags struct {
	sign bool // leading '-'
	dot  bool // a '.'
	exp  bool // an 'e'/'E' exponent marker
}

// scanNumber advances over a JSON number literal starting at json[i], one of
// '-' or a digit. It stops at the first byte that can't extend a number:
// whitespace, ',', ']', '}', or end of input. It does not validate grammar
// beyond that (e.g. "1.2.3" scans as a single malformed token, consistent
// with "malformed input: unspecified but no crash").
func scanNumber(json string, i int) (next int, flags numberFlags) {
	start := i
	if i < len(json) && json[i] == '-' {
		flags.sign = true
		i++
	}
	for ; i < len(json); i++ {
		c := json[i]
		switch {
		case c >= '0' && c <= '9':
		case c == '.':
			flags.dot = true
		case c == 'e' || c == 'E':
			flags.exp = true
			if i+1 < len(json) && (json[i+1] == '+' || json[i+1] == '-') {
				i++
			}
		default:
			if i == start {
				// lone sign or garbage: still consume one byte so callers
				// make forward progress instead of looping forever.
				return i + 1, flags
			}
			return i, flags
		}
	}
	return len(json), flags
}

// scanSquash skips a balanced '{…}', '[…]', or '(…)' starting at json[i],
// honoring quoted strings (via scanString) and backslash escapes outside
// them so that braces or brackets inside a string value don't throw off the
// depth count. It returns the index just past the matching close and true
// on success; on an unbalanced/truncated input it returns len(json), false.
func scanSquash(json string, i int) (next int, ok bool) {
	if i >= len(json) {
		return len(json), false
	}
	open := json[i]
	var close byte
	switch open {
	case '{':
		close = '}'
	case '[':
		close = ']'
	case '(':
		close = ')'
	default:
		return i, false
	}
	depth := 0
	for ; i < len(json); i++ {
		switch json[i] {
		case '"':
			var scanOK bool
			i, _, scanOK = scanString(json, i)
			i-- // the for loop's i++ re-aligns us to just past the string
			if !scanOK {
				return len(json), false
			}
			continue
		case '\\':
			i++ // skip the escaped byte so it can't open or close a group
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return len(json), false
}

// skipWhitespace returns the index of the first byte at or after i that
// isn't JSON-insignificant whitespace (space, tab, CR, LF).
func skipWhitespace(json string, i int) int {
	for i < len(json) {
		switch json[i] {
		case ' ', '\t', '\r', '\n':
			i++
			continue
		}
		break
	}
	return i
}

// isWhitespace reports whether c is JSON-insignificant whitespace.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// isHexDigit reports whether c is a valid hexadecimal digit, used when
// decoding \uXXXX escapes.
func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
