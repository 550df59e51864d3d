package fj

import (
	"strconv"
	"strings"
)

// resolvePath is the engine's single recursive entry point: it resolves one
// path component against json (whose first byte, after whitespace, is
// base's absolute offset in the root document) and, unless that component
// already consumed the whole remaining path, recurses on whatever matched.
//
// Each call scans its own json exactly once; the recursion depth is bounded
// by the number of path components, not by document size, so this stays
// single-pass per level in the same sense the component-at-a-time scanners
// it's grounded on are.
func resolvePath(json string, base int, p string) Context {
	if p == "" {
		v, _ := parseValue(json, base)
		return v
	}
	comp, rest, sep := splitPath(p)

	if len(comp) > 0 && comp[0] == '@' && !DisableTransformers {
		in, _ := parseValue(json, base)
		out := applyModifier(parseComponent(comp), in)
		if rest == "" {
			return out
		}
		return resolvePath(out.raw, 0, rest)
	}
	if len(comp) > 0 && (comp[0] == '[' || comp[0] == '{') {
		out := resolveMultipath(json, base, comp)
		if rest == "" {
			return out
		}
		return resolvePath(out.raw, 0, rest)
	}

	matched, remaining := descendOnce(json, base, comp, sep, rest)
	if !matched.Exists() {
		return matched
	}
	if remaining == "" {
		return matched
	}
	return resolvePath(matched.raw, matched.idx, remaining)
}

// descendOnce applies comp, a single non-modifier, non-multipath component,
// to whatever container starts json. sep is the separator that followed comp
// in the original path ('.', '|', or 0) — array dispatch needs it to tell
// "#.sub" (project sub across every element) apart from "#|..." (count, then
// pipe the count itself onward). It returns the matched value together with
// whatever of rest the caller still needs to apply — for "#.sub" and
// "#(...)#.sub" that is only what follows the sub-path's first '|', since
// the sub-path itself has already been applied to each element.
func descendOnce(json string, base int, comp string, sep byte, rest string) (Context, string) {
	i := skipWhitespace(json, 0)
	if i >= len(json) {
		return Context{}, ""
	}
	switch json[i] {
	case '{':
		return descendObject(json, base, i+1, comp), rest
	case '[':
		return descendArray(json, base, i+1, comp, sep, rest, false)
	default:
		return Context{}, ""
	}
}

// descendObject scans a JSON object (i positioned just past '{') for a key
// matching comp, returning the associated value or a zero Context if none
// matched. A comp containing '*'/'?' is matched with pmatch against each
// decoded key rather than compared for equality.
func descendObject(json string, base, i int, comp string) Context {
	pc := parseComponent(comp)
	var key string
	if !pc.pat {
		key = unescapeComponent(comp)
	}
	for {
		i = skipWhitespace(json, i)
		if i >= len(json) || json[i] == '}' {
			return Context{}
		}
		if json[i] != '"' {
			return Context{}
		}
		keyStart := i
		end, esc, ok := scanString(json, i)
		if !ok {
			return Context{}
		}
		rawKey := json[keyStart:end]
		inner := rawKey[1 : len(rawKey)-1]
		var decodedKey string
		if esc {
			decodedKey = Unescape(inner)
		} else {
			decodedKey = inner
		}
		i = skipWhitespace(json, end)
		if i >= len(json) || json[i] != ':' {
			return Context{}
		}
		i = skipWhitespace(json, i+1)
		valStart := i
		var matched bool
		if pc.pat {
			matched = pmatch(comp, decodedKey)
		} else {
			matched = decodedKey == key
		}
		v, next := parseValue(json[valStart:], base+valStart)
		if matched {
			return v
		}
		i = valStart + next
		i = skipWhitespace(json, i)
		if i < len(json) && json[i] == ',' {
			i++
			continue
		}
		return Context{}
	}
}

// descendArray dispatches a JSON array (i positioned just past '[', or 0 in
// JSON-lines mode where there is no bracket to skip past) to one of its five
// modes: "#" alone (count — or, if sep isn't '.', count then let the caller
// pipe/descend into the count itself), "#" followed by '.' (project the
// dotted run gathered by nextGroup across every element, leaving anything
// past a trailing '|' to apply to the projected array as a whole),
// "#(...)" (first matching element), "#(...)#" (every matching element,
// same dotted-run-then-pipe split as bare "#."), or a plain/wildcard index.
// lines selects JSON-lines iteration (whitespace-delimited top-level values)
// over ordinary comma-delimited array elements.
func descendArray(json string, base, i int, comp string, sep byte, rest string, lines bool) (Context, string) {
	switch {
	case comp == "#":
		if sep != '.' {
			n := countElements(json, i, lines)
			return Context{kind: Number, raw: strconv.Itoa(n), num: float64(n)}, rest
		}
		sub, after, _ := nextGroup(rest)
		return projectChildren(json, base, i, sub, lines), after
	case strings.HasPrefix(comp, "#("):
		q := parseQuery(comp)
		if q.all {
			if sep == '.' {
				sub, after, _ := nextGroup(rest)
				return queryAll(json, base, i, q, sub, lines), after
			}
			return queryAll(json, base, i, q, "", lines), rest
		}
		return queryFirst(json, base, i, q, rest, lines)
	default:
		return descendArrayIndex(json, base, i, comp, rest, lines)
	}
}

// descendArrayIndex matches comp as a literal decimal index, or — when it
// contains '*'/'?' — as a pattern against each element's decimal index
// string, returning the first match.
func descendArrayIndex(json string, base, i int, comp, rest string, lines bool) (Context, string) {
	pc := parseComponent(comp)
	var found Context
	if pc.pat {
		forEachArrayElement(json, base, i, lines, func(idx int, v Context) bool {
			if pmatch(comp, strconv.Itoa(idx)) {
				found = v
				return false
			}
			return true
		})
		return found, rest
	}
	target, err := strconv.Atoi(comp)
	if err != nil {
		return Context{}, ""
	}
	forEachArrayElement(json, base, i, lines, func(idx int, v Context) bool {
		if idx == target {
			found = v
			return false
		}
		return true
	})
	return found, rest
}

// forEachArrayElement walks the elements of a JSON array (i positioned just
// past '[') calling fn with each element's zero-based index and parsed
// Context. fn returns false to stop early. Malformed input (a missing comma
// or closing bracket) simply ends the walk rather than panicking.
//
// With lines set, json (starting at i) is instead treated as a sequence of
// whitespace-delimited top-level values with no enclosing brackets and no
// separating commas — the shape this package's JSON-lines mode (the ".."
// path prefix) runs its array dispatch over.
func forEachArrayElement(json string, base, i int, lines bool, fn func(idx int, v Context) bool) {
	idx := 0
	for {
		i = skipWhitespace(json, i)
		if i >= len(json) {
			return
		}
		if !lines && json[i] == ']' {
			return
		}
		v, next := parseValue(json[i:], base+i)
		if !v.Exists() {
			return
		}
		if !fn(idx, v) {
			return
		}
		i += next
		if lines {
			idx++
			continue
		}
		i = skipWhitespace(json, i)
		if i < len(json) && json[i] == ',' {
			i++
			idx++
			continue
		}
		return
	}
}

// forEachObjectEntry walks the key/value pairs of a JSON object (i
// positioned just past '{') in encounter order, calling fn with the key (as
// a String-kind Context) and the parsed value. fn returns false to stop
// early.
func forEachObjectEntry(json string, base, i int, fn func(key, val Context) bool) {
	for {
		i = skipWhitespace(json, i)
		if i >= len(json) || json[i] == '}' {
			return
		}
		if json[i] != '"' {
			return
		}
		keyStart := i
		end, esc, ok := scanString(json, i)
		if !ok {
			return
		}
		rawKey := json[keyStart:end]
		inner := rawKey[1 : len(rawKey)-1]
		str := inner
		if esc {
			str = Unescape(inner)
		}
		keyCtx := Context{kind: String, raw: rawKey, str: str, esc: esc, idx: base + keyStart}
		i = skipWhitespace(json, end)
		if i >= len(json) || json[i] != ':' {
			return
		}
		i = skipWhitespace(json, i+1)
		valStart := i
		v, next := parseValue(json[valStart:], base+valStart)
		if !fn(keyCtx, v) {
			return
		}
		i = valStart + next
		i = skipWhitespace(json, i)
		if i < len(json) && json[i] == ',' {
			i++
			continue
		}
		return
	}
}

func countElements(json string, i int, lines bool) int {
	n := 0
	forEachArrayElement(json, 0, i, lines, func(int, Context) bool {
		n++
		return true
	})
	return n
}

// projectChildren builds a new JSON array by applying subpath to every
// element of json's array, dropping elements where subpath doesn't resolve
// rather than padding with null, so "friends.#.nickname" over a mix of
// friends with and without one yields just the nicknames that exist.
func projectChildren(json string, base, i int, subpath string, lines bool) Context {
	buf := []byte{'['}
	n := 0
	forEachArrayElement(json, base, i, lines, func(idx int, v Context) bool {
		res := resolvePath(v.raw, v.idx, subpath)
		if !res.Exists() {
			return true
		}
		if n > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, res.raw...)
		n++
		return true
	})
	buf = append(buf, ']')
	return Context{kind: Array, raw: string(buf)}
}

// queryFirst scans json's array for the first element satisfying q,
// returning it (with rest still to be applied by the caller, exactly like a
// plain index match) or a zero Context if none matches.
func queryFirst(json string, base, i int, q query, rest string, lines bool) (Context, string) {
	var found Context
	forEachArrayElement(json, base, i, lines, func(_ int, v Context) bool {
		if queryMatches(v, q) {
			found = v
			return false
		}
		return true
	})
	return found, rest
}

// queryAll builds a new JSON array from every element satisfying q, with
// sub (the dotted run collected by nextGroup, if any) applied to each match
// before it's appended; an element whose sub resolution doesn't exist is
// dropped rather than nulled, since "#(...)#.sub" describes a filtered
// projection, not a fixed-length one.
func queryAll(json string, base, i int, q query, sub string, lines bool) Context {
	buf := []byte{'['}
	n := 0
	var idxs []int
	forEachArrayElement(json, base, i, lines, func(_ int, v Context) bool {
		if !queryMatches(v, q) {
			return true
		}
		out := v
		if sub != "" {
			out = resolvePath(v.raw, v.idx, sub)
		}
		if !out.Exists() {
			return true
		}
		if n > 0 {
			buf = append(buf, ',')
		}
		raw := out.raw
		if raw == "" {
			raw = "null"
		}
		buf = append(buf, raw...)
		idxs = append(idxs, out.idx)
		n++
		return true
	})
	buf = append(buf, ']')
	return Context{kind: Array, raw: string(buf), idxs: idxs}
}

// parseQuery splits a "#(...)" or "#(...)#" component into its parenthesized
// predicate. The last byte (or the last two, for a trailing ")#") is taken
// as the closing paren; when scanSquash found no balanced close, splitPath
// keeps the unbalanced text as the component, and one too short to hold a
// predicate yields an empty one.
func parseQuery(comp string) query {
	all := strings.HasSuffix(comp, ")#")
	end := len(comp) - 1
	if all {
		end--
	}
	if end < 2 {
		end = 2
	}
	inner := comp[2:end]
	lh, op, rh := splitQueryParts(inner)
	return query{on: true, all: all, lhPath: lh, op: op, rh: rh}
}

// splitQueryParts finds the first comparison operator in inner that isn't
// inside a quoted string and splits on it. "==" normalizes to "=". A lone
// lhPath with no operator at all means "exists".
func splitQueryParts(inner string) (lh, op, rh string) {
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c == '"' {
			next, _, ok := scanString(inner, i)
			if !ok {
				break
			}
			i = next - 1
			continue
		}
		var found string
		switch {
		case c == '!' && i+1 < len(inner) && inner[i+1] == '=':
			found = "!="
		case c == '!' && i+1 < len(inner) && inner[i+1] == '%':
			found = "!%"
		case c == '<' && i+1 < len(inner) && inner[i+1] == '=':
			found = "<="
		case c == '>' && i+1 < len(inner) && inner[i+1] == '=':
			found = ">="
		case c == '=' && i+1 < len(inner) && inner[i+1] == '=':
			found = "=="
		case c == '=':
			found = "="
		case c == '<':
			found = "<"
		case c == '>':
			found = ">"
		case c == '%':
			found = "%"
		}
		if found != "" {
			op = found
			if op == "==" {
				op = "="
			}
			return strings.TrimSpace(inner[:i]), op, strings.TrimSpace(inner[i+len(found):])
		}
	}
	return strings.TrimSpace(inner), "", ""
}

// queryMatches evaluates q against one array element v, dispatching the
// comparison on lv.kind() rather than on the shape of the RHS literal —
// mirroring original_source/src/lib.rs's query_matches exactly (the quoted/
// "~"/true/false/numeric shape of rh only ever decides how to strip it down
// to a comparable string, never which comparison rule applies).
func queryMatches(v Context, q query) bool {
	lv := resolvePath(v.raw, v.idx, q.lhPath)
	rh := q.rh
	if len(rh) > 2 && rh[0] == '"' && rh[len(rh)-1] == '"' {
		if strings.IndexByte(rh, '\\') >= 0 {
			rh = Unescape(rh[1 : len(rh)-1])
		} else {
			rh = rh[1 : len(rh)-1]
		}
	}
	if strings.HasPrefix(rh, "~") {
		rh = rh[1:]
		if lv.Bool() {
			lv = Context{kind: True, raw: "true"}
		} else {
			lv = Context{kind: False, raw: "false"}
		}
	}
	if !lv.Exists() {
		return false
	}
	if q.op == "" {
		// Existence only, e.g. "#(name)": a present key matches regardless
		// of whether its value would itself coerce to true.
		return true
	}
	switch lv.kind {
	case String:
		return compareStringOrPattern(q.op, lv.String(), rh)
	case Number:
		rn, _ := strconv.ParseFloat(rh, 64)
		return compareNumbers(q.op, lv.Float64(), rn)
	case True:
		switch q.op {
		case "=":
			return rh == "true"
		case "!=":
			return rh != "true"
		case ">":
			return rh == "false"
		case ">=":
			return true
		default:
			return false
		}
	case False:
		switch q.op {
		case "=":
			return rh == "false"
		case "!=":
			return rh != "false"
		case "<":
			return rh == "true"
		case "<=":
			return true
		default:
			return false
		}
	default:
		return false
	}
}

func compareNumbers(op string, a, b float64) bool {
	switch op {
	case "=":
		return a == b
	case "!=":
		return a != b
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	case ">=":
		return a >= b
	default:
		return false
	}
}

func compareStringOrPattern(op string, a, pattern string) bool {
	switch op {
	case "=":
		return a == pattern
	case "!=":
		return a != pattern
	case "%":
		return pmatch(pattern, a)
	case "!%":
		return !pmatch(pattern, a)
	case "<":
		return a < pattern
	case "<=":
		return a <= pattern
	case ">":
		return a > pattern
	case ">=":
		return a >= pattern
	default:
		return false
	}
}
