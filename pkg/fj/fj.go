package fj

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ferrowind/fj/pkg/common"
)

// Parse parses json and returns a Context for the first value found at its
// start. It doesn't validate the rest of the document — call Valid first
// if json might come from an untrusted source and malformed trailing bytes
// would matter.
func Parse(json string) Context {
	v, _ := parseValue(json, 0)
	return v
}

// ParseBytes is Parse for a []byte, for callers that already have one and
// want to avoid a string conversion at the call site mattering semantically
// (Go still copies on the string(json) conversion below; there's no unsafe
// aliasing here).
func ParseBytes(json []byte) Context {
	return Parse(string(json))
}

// ParseReader reads all of in and parses the result. A read failure is
// reported through the returned Context's IsError/Cause rather than a
// second return value, consistent with the rest of this package never
// using an error return for "didn't match".
func ParseReader(in io.Reader) Context {
	json, err := common.SlurpLine(in)
	if err != nil {
		return Context{err: err}
	}
	return Parse(json)
}

// ParseJSONFile opens filepath, reads it in full, and parses the result.
// filepath must end in ".json"; anything else is reported as an error
// Context without ever opening the file.
func ParseJSONFile(filepath string) Context {
	if !strings.HasSuffix(filepath, ".json") {
		return Context{err: fmt.Errorf("fj: not a JSON file: %s", filepath)}
	}
	file, err := os.Open(filepath)
	if err != nil {
		return Context{err: err}
	}
	defer file.Close()
	return ParseReader(file)
}

// Get resolves path against json. path syntax:
//
//   - "." descends into an object key or array index; "|" pipes the
//     matched value through the remainder of path as a fresh root.
//   - "*"/"?" in a key or index component glob-match.
//   - "#" alone counts an array's elements; "#(expr)" finds the first
//     element matching expr; "#(expr)#" collects every matching element.
//   - "@name" or "@name:arg" runs a registered modifier.
//   - A path beginning with "[sel,...]" or "{sel,...}" composes a new
//     array/object from multiple sub-paths (a multipath).
//   - A path beginning with ".." treats the whole of json as a sequence of
//     concatenated top-level values and applies the rest of path to that
//     sequence as if it were one array: "..#" counts the values, "..#.sub"
//     projects sub across them, "..1" picks the second value, and so on.
//
// A path segment that doesn't match anything — a missing key, an
// out-of-range index, an unregistered modifier — makes Get return a
// not-found Context (Exists() false) rather than an error; this engine has
// no error channel for "the data didn't have that".
func Get(json, path string) Context {
	if strings.HasPrefix(path, "..") {
		return getAll(json, path[2:])
	}
	return resolvePath(json, 0, path)
}

// getAll backs the ".."-prefixed path form: it treats json as a sequence of
// concatenated top-level values (JSON-lines-style input, or any back-to-back
// sequence of values) and runs the same array-dispatch logic descendArray
// uses for a real array, with lines set so there's no enclosing bracket to
// skip past and no comma required between elements.
//
// rest (path with the leading ".." already stripped) is handled exactly like
// the first component descendOnce would peel off a '['-prefixed json: a bare
// "#" counts, "#.sub" projects sub across every element (with a trailing
// "|..." continuing against the synthesized array as a whole, not each
// element — see nextGroup), "#(...)"/"#(...)#" query, and anything else is
// treated as a literal element index.
func getAll(json, rest string) Context {
	if rest == "" {
		return linesAsArray(json)
	}
	comp, after, sep := splitPath(rest)
	if len(comp) > 0 && comp[0] == '@' && !DisableTransformers {
		in := linesAsArray(json)
		out := applyModifier(parseComponent(comp), in)
		if after == "" {
			return out
		}
		return resolvePath(out.raw, 0, after)
	}
	if len(comp) > 0 && (comp[0] == '[' || comp[0] == '{') {
		in := linesAsArray(json)
		out := resolveMultipath(in.raw, 0, comp)
		if after == "" {
			return out
		}
		return resolvePath(out.raw, 0, after)
	}
	matched, remaining := descendArray(json, 0, 0, comp, sep, after, true)
	if !matched.Exists() {
		return matched
	}
	if remaining == "" {
		return matched
	}
	return resolvePath(matched.raw, matched.idx, remaining)
}

// linesAsArray concatenates every top-level value in json into a single JSON
// array literal, the JSON-lines-mode equivalent of "what's already there" for
// a bare "..".
func linesAsArray(json string) Context {
	buf := []byte{'['}
	n := 0
	forEachArrayElement(json, 0, 0, true, func(_ int, v Context) bool {
		if n > 0 {
			buf = append(buf, ',')
		}
		raw := v.raw
		if raw == "" {
			raw = "null"
		}
		buf = append(buf, raw...)
		n++
		return true
	})
	buf = append(buf, ']')
	return Context{kind: Array, raw: string(buf)}
}

// GetMulti resolves each of path against json, returning results in the
// same order.
func GetMulti(json string, path ...string) []Context {
	out := make([]Context, len(path))
	for i, p := range path {
		out[i] = Get(json, p)
	}
	return out
}

// GetBytes is Get for a []byte json.
func GetBytes(json []byte, path string) Context {
	return Get(string(json), path)
}

// GetBytesMulti is GetMulti for a []byte json.
func GetBytesMulti(json []byte, path ...string) []Context {
	return GetMulti(string(json), path...)
}

// Foreach walks json as a sequence of back-to-back top-level JSON values
// (the shape used by http://jsonlines.org/, though this doesn't require
// newline separators — any whitespace between values works), calling
// iterator with each one in turn. iterator returning false stops the walk.
func Foreach(json string, iterator func(line Context) bool) {
	i := 0
	for {
		v, next := parseValue(json[i:], i)
		if !v.Exists() {
			return
		}
		if !iterator(v) {
			return
		}
		i += next
		if i >= len(json) {
			return
		}
	}
}
