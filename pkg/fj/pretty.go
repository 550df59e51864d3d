package fj

import (
	"github.com/sivaosorg/unify4g"

	"github.com/ferrowind/fj/pkg/mapsort"
)

// PrettyOptions controls Pretty's output. The zero value is usable (an
// empty Indent falls back to two spaces); it differs from
// DefaultPrettyOptions, which Pretty(json, nil) uses, in Width: 0 keeps
// nothing on one line, where the default of 80 keeps short containers.
type PrettyOptions struct {
	Indent   string // per-level indentation; "" falls back to "  "
	Prefix   string // written before the first byte of output and after every newline
	SortKeys bool   // emit object keys in ascending order instead of encounter order
	Width    int    // if > 0, a container whose one-line form fits within Width is kept on one line
}

// DefaultPrettyOptions is what Pretty uses when given a nil *PrettyOptions.
var DefaultPrettyOptions = PrettyOptions{Indent: "  ", Width: 80}

// Ugly returns json with all insignificant whitespace outside of string
// literals removed. ugly(pretty(x)) == ugly(x) for any valid x when
// SortKeys is off: Pretty then only inserts whitespace, never touching
// string contents or value order.
func Ugly(json string) string {
	buf := make([]byte, 0, len(json))
	for i := 0; i < len(json); i++ {
		c := json[i]
		if isWhitespace(c) {
			continue
		}
		buf = append(buf, c)
		if c == '"' {
			end, _, ok := scanString(json, i)
			if !ok {
				buf = append(buf, json[i+1:]...)
				break
			}
			buf = append(buf, json[i+1:end]...)
			i = end - 1
		}
	}
	return string(buf)
}

// Pretty reformats json with indentation and newlines. Depth beyond
// maxPrettyDepth is emitted via Ugly instead of being walked structurally,
// so pathological nesting can't exhaust the stack.
func Pretty(json string, opts *PrettyOptions) string {
	if opts == nil {
		o := DefaultPrettyOptions
		opts = &o
	}
	if opts.Indent == "" {
		o := *opts
		o.Indent = "  "
		opts = &o
	}
	buf := make([]byte, 0, len(json)+len(json)/4)
	buf = append(buf, opts.Prefix...)
	buf = writePretty(buf, json, 0, opts)
	return string(buf)
}

func writePretty(buf []byte, json string, depth int, opts *PrettyOptions) []byte {
	i := skipWhitespace(json, 0)
	if i >= len(json) {
		return buf
	}
	if depth >= maxPrettyDepth {
		return append(buf, Ugly(json[i:])...)
	}
	switch json[i] {
	case '{', '[':
		if opts.Width > 0 {
			one := Ugly(json[i:])
			if len(one)+depth*len(opts.Indent) <= opts.Width {
				return append(buf, one...)
			}
		}
		if json[i] == '{' {
			return writePrettyObject(buf, json, i+1, depth, opts)
		}
		return writePrettyArray(buf, json, i+1, depth, opts)
	default:
		v, _ := parseValue(json[i:], 0)
		return append(buf, v.raw...)
	}
}

func newline(buf []byte, depth int, opts *PrettyOptions) []byte {
	buf = append(buf, '\n')
	buf = append(buf, opts.Prefix...)
	for n := 0; n < depth; n++ {
		buf = append(buf, opts.Indent...)
	}
	return buf
}

func writePrettyObject(buf []byte, json string, i, depth int, opts *PrettyOptions) []byte {
	type entry struct{ key, val Context }
	var entries []entry
	forEachObjectEntry(json, 0, i, func(k, v Context) bool {
		entries = append(entries, entry{k, v})
		return true
	})
	if len(entries) == 0 {
		return append(buf, '{', '}')
	}
	if opts.SortKeys {
		m := make(map[string]entry, len(entries))
		for _, e := range entries {
			m[e.key.str] = e
		}
		sorted := mapsort.SortKey(m)
		entries = entries[:0]
		for _, k := range sorted.Keys() {
			entries = append(entries, m[k])
		}
	}
	buf = append(buf, '{')
	for n, e := range entries {
		if n > 0 {
			buf = append(buf, ',')
		}
		buf = newline(buf, depth+1, opts)
		buf = append(buf, e.key.raw...)
		buf = append(buf, ':', ' ')
		buf = writePretty(buf, e.val.raw, depth+1, opts)
	}
	buf = newline(buf, depth, opts)
	return append(buf, '}')
}

func writePrettyArray(buf []byte, json string, i, depth int, opts *PrettyOptions) []byte {
	var elems []Context
	forEachArrayElement(json, 0, i, false, func(_ int, v Context) bool {
		elems = append(elems, v)
		return true
	})
	if len(elems) == 0 {
		return append(buf, '[', ']')
	}
	buf = append(buf, '[')
	for n, e := range elems {
		if n > 0 {
			buf = append(buf, ',')
		}
		buf = newline(buf, depth+1, opts)
		buf = writePretty(buf, e.raw, depth+1, opts)
	}
	buf = newline(buf, depth, opts)
	return append(buf, ']')
}

// colorize renders json with ANSI escapes from style wrapped around each
// token kind, for terminal display. Unlike Pretty it doesn't reformat
// whitespace; it walks the document purely to classify each token.
func colorize(json string, style *unify4g.Style) []byte {
	if style == nil {
		style = DefaultStyle
	}
	var buf []byte
	return colorizeValue(buf, json, style)
}

func colorizeValue(buf []byte, json string, style *unify4g.Style) []byte {
	i := skipWhitespace(json, 0)
	if i >= len(json) {
		return buf
	}
	switch json[i] {
	case '{':
		return colorizeObject(buf, json, i+1, style)
	case '[':
		return colorizeArray(buf, json, i+1, style)
	case '"':
		v, _ := parseValue(json[i:], 0)
		return colorizeToken(buf, v.raw, style.String, style.Escape)
	case 't':
		return colorizeToken(buf, "true", style.True, [2]string{})
	case 'f':
		return colorizeToken(buf, "false", style.False, [2]string{})
	case 'n':
		return colorizeToken(buf, "null", style.Null, [2]string{})
	default:
		v, _ := parseValue(json[i:], 0)
		return colorizeToken(buf, v.raw, style.Number, [2]string{})
	}
}

func colorizeToken(buf []byte, raw string, wrap, escapeWrap [2]string) []byte {
	buf = append(buf, wrap[0]...)
	if escapeWrap[0] == "" {
		buf = append(buf, raw...)
	} else {
		for i := 0; i < len(raw); i++ {
			if raw[i] == '\\' {
				buf = append(buf, escapeWrap[0]...)
				buf = append(buf, raw[i])
				if i+1 < len(raw) {
					buf = append(buf, raw[i+1])
				}
				buf = append(buf, escapeWrap[1]...)
				i++
				continue
			}
			buf = append(buf, raw[i])
		}
	}
	buf = append(buf, wrap[1]...)
	return buf
}

func colorizeObject(buf []byte, json string, i int, style *unify4g.Style) []byte {
	buf = append(buf, style.Brackets[0]...)
	buf = append(buf, '{')
	buf = append(buf, style.Brackets[1]...)
	n := 0
	forEachObjectEntry(json, 0, i, func(k, v Context) bool {
		if n > 0 {
			buf = append(buf, style.Brackets[0]...)
			buf = append(buf, ',')
			buf = append(buf, style.Brackets[1]...)
		}
		buf = colorizeToken(buf, k.raw, style.Key, style.Escape)
		buf = append(buf, style.Brackets[0]...)
		buf = append(buf, ':')
		buf = append(buf, style.Brackets[1]...)
		buf = colorizeValue(buf, v.raw, style)
		n++
		return true
	})
	buf = append(buf, style.Brackets[0]...)
	buf = append(buf, '}')
	buf = append(buf, style.Brackets[1]...)
	return buf
}

func colorizeArray(buf []byte, json string, i int, style *unify4g.Style) []byte {
	buf = append(buf, style.Brackets[0]...)
	buf = append(buf, '[')
	buf = append(buf, style.Brackets[1]...)
	n := 0
	forEachArrayElement(json, 0, i, false, func(_ int, v Context) bool {
		if n > 0 {
			buf = append(buf, style.Brackets[0]...)
			buf = append(buf, ',')
			buf = append(buf, style.Brackets[1]...)
		}
		buf = colorizeValue(buf, v.raw, style)
		n++
		return true
	})
	buf = append(buf, style.Brackets[0]...)
	buf = append(buf, ']')
	buf = append(buf, style.Brackets[1]...)
	return buf
}
