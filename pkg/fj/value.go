package fj

import (
	"strconv"
	"strings"
)

// parseValue recognizes exactly one JSON value at the start of json (after
// skipping leading whitespace) and returns it as a Context together with
// the index, within json, just past the value. idx on the returned Context
// is base plus that value's start offset, so callers threading base through
// recursive descent always get root-relative offsets for Path/Paths.
//
// Malformed input doesn't panic: a truncated string, number, or literal
// still returns a Context (possibly a zero one) and next == len(json), so
// the caller's scan terminates instead of looping.
func parseValue(json string, base int) (Context, int) {
	i := skipWhitespace(json, 0)
	if i >= len(json) {
		return Context{}, i
	}
	start := i
	switch json[i] {
	case '{':
		end, ok := scanSquash(json, i)
		if !ok {
			end = len(json)
		}
		return Context{kind: Object, raw: json[start:end], idx: base + start}, end
	case '[':
		end, ok := scanSquash(json, i)
		if !ok {
			end = len(json)
		}
		return Context{kind: Array, raw: json[start:end], idx: base + start}, end
	case '"':
		end, esc, ok := scanString(json, i)
		if !ok {
			return Context{}, end
		}
		raw := json[start:end]
		inner := raw[1 : len(raw)-1]
		str := inner
		if esc {
			str = Unescape(inner)
		}
		return Context{kind: String, raw: raw, str: str, esc: esc, idx: base + start}, end
	case 't':
		if strings.HasPrefix(json[i:], "true") {
			return Context{kind: True, raw: "true", idx: base + start}, start + 4
		}
		return Context{}, len(json)
	case 'f':
		if strings.HasPrefix(json[i:], "false") {
			return Context{kind: False, raw: "false", idx: base + start}, start + 5
		}
		return Context{}, len(json)
	case 'n':
		if strings.HasPrefix(json[i:], "null") {
			return Context{kind: Null, raw: "null", idx: base + start}, start + 4
		}
		return Context{}, len(json)
	default:
		end, flags := scanNumber(json, i)
		raw := json[start:end]
		num, _ := strconv.ParseFloat(raw, 64)
		return Context{
			kind: Number, raw: raw, num: num, idx: base + start,
			sign: flags.sign, dot: flags.dot, exp: flags.exp,
		}, end
	}
}
