package fj

import (
	"strconv"
	"strings"
	"sync"

	"github.com/ferrowind/fj/pkg/encoding"
)

// Transformer is the interface every modifier ("@name") in the pipeline
// implements: given the current JSON and whatever trailed the modifier's
// ':', it returns the transformed JSON. Implement it directly for stateful
// or configurable transformers; for a plain function, wrap it in
// TransformerFunc instead of writing a one-method type.
type Transformer interface {
	Apply(json, arg string) string
}

// TransformerFunc adapts a plain func(json, arg string) string to the
// Transformer interface, mirroring http.HandlerFunc.
type TransformerFunc func(json, arg string) string

// Apply calls f(json, arg).
func (f TransformerFunc) Apply(json, arg string) string { return f(json, arg) }

// transformerRegistry maps modifier names to their Transformer, guarded so
// AddTransformer can run concurrently with path evaluation.
type transformerRegistry struct {
	mu  sync.RWMutex
	set map[string]Transformer
}

func (r *transformerRegistry) register(name string, t Transformer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.set[name] = t
}

func (r *transformerRegistry) get(name string) (Transformer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.set[name]
	return t, ok
}

func (r *transformerRegistry) has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.set[name]
	return ok
}

var globalRegistry = &transformerRegistry{set: make(map[string]Transformer)}

func init() {
	globalRegistry.register("this", TransformerFunc(applyThis))
	globalRegistry.register("valid", TransformerFunc(applyValid))
	globalRegistry.register("ugly", TransformerFunc(applyUgly))
	globalRegistry.register("pretty", TransformerFunc(applyPretty))
	globalRegistry.register("reverse", TransformerFunc(applyReverse))
	globalRegistry.register("flatten", TransformerFunc(applyFlatten))
	globalRegistry.register("join", TransformerFunc(applyJoin))
	globalRegistry.register("keys", TransformerFunc(applyKeys))
	globalRegistry.register("values", TransformerFunc(applyValues))
	globalRegistry.register("json", TransformerFunc(applyJSON))
	globalRegistry.register("string", TransformerFunc(applyString))
}

// AddTransformer registers a custom modifier under name, making it available
// as "@name" in any path evaluated afterward. Registering an existing name
// (built-in or custom) replaces it.
func AddTransformer(name string, fn TransformerFunc) {
	globalRegistry.register(name, fn)
}

// IsTransformerRegistered reports whether name is available as a modifier,
// either built-in or added via AddTransformer.
func IsTransformerRegistered(name string) bool {
	return globalRegistry.has(name)
}

// applyModifier runs the modifier named by pc (an "@name" or "@name:arg"
// component) against in and re-parses the result as a Context. An unknown
// modifier name, with DisableTransformers unset, resolves to "not found"
// rather than an error — consistent with the engine having no error
// channel.
func applyModifier(pc path, in Context) Context {
	name := pc.comp[1:]
	arg := ""
	if pc.marg >= 0 {
		name = pc.comp[1:pc.marg]
		arg = pc.extra
	}
	t, ok := globalRegistry.get(name)
	if !ok {
		return Context{}
	}
	out := t.Apply(in.raw, arg)
	if out == "" {
		return Context{}
	}
	v, _ := parseValue(out, 0)
	return v
}

func applyThis(json, _ string) string {
	return json
}

func applyValid(json, _ string) string {
	if !Valid(json) {
		return ""
	}
	return json
}

func applyUgly(json, _ string) string {
	return Ugly(json)
}

func applyPretty(json, arg string) string {
	opts := DefaultPrettyOptions
	if arg != "" {
		if v := Get(arg, "indent"); v.Exists() {
			opts.Indent = v.String()
		}
		if v := Get(arg, "prefix"); v.Exists() {
			opts.Prefix = v.String()
		}
		if v := Get(arg, "sortKeys"); v.Exists() {
			opts.SortKeys = v.Bool()
		}
		if v := Get(arg, "width"); v.Exists() {
			opts.Width = v.Int()
		}
	}
	return Pretty(json, &opts)
}

// applyReverse reverses the element order of an array or the key order of
// an object; any other kind passes through unchanged, which keeps the
// modifier its own inverse (reverse(reverse(x)) == x) for every kind.
func applyReverse(json, _ string) string {
	ctx, _ := parseValue(json, 0)
	switch ctx.kind {
	case Array:
		elems := ctx.Array()
		buf := []byte{'['}
		for i := len(elems) - 1; i >= 0; i-- {
			if i != len(elems)-1 {
				buf = append(buf, ',')
			}
			buf = append(buf, elems[i].raw...)
		}
		buf = append(buf, ']')
		return string(buf)
	case Object:
		var keys, vals []Context
		ctx.Foreach(func(k, v Context) bool {
			keys = append(keys, k)
			vals = append(vals, v)
			return true
		})
		buf := []byte{'{'}
		for i := len(keys) - 1; i >= 0; i-- {
			if i != len(keys)-1 {
				buf = append(buf, ',')
			}
			buf = appendJSONString(buf, keys[i].str)
			buf = append(buf, ':')
			buf = append(buf, vals[i].raw...)
		}
		buf = append(buf, '}')
		return string(buf)
	default:
		return json
	}
}

// applyFlatten concatenates the elements of an array of arrays into a
// single array, one level deep by default. With arg {"deep":true} it
// flattens recursively. Non-array input, or an array containing no nested
// arrays, passes through unchanged.
func applyFlatten(json, arg string) string {
	ctx, _ := parseValue(json, 0)
	if ctx.kind != Array {
		return json
	}
	deep := arg != "" && Get(arg, "deep").Bool()
	buf := []byte{'['}
	n := 0
	var emit func(elems []Context)
	emit = func(elems []Context) {
		for _, e := range elems {
			if e.kind == Array && deep {
				emit(e.Array())
				continue
			}
			if e.kind == Array && !deep {
				for _, inner := range e.Array() {
					if n > 0 {
						buf = append(buf, ',')
					}
					buf = append(buf, inner.raw...)
					n++
				}
				continue
			}
			if n > 0 {
				buf = append(buf, ',')
			}
			buf = append(buf, e.raw...)
			n++
		}
	}
	emit(ctx.Array())
	buf = append(buf, ']')
	return string(buf)
}

// applyJoin merges an array of objects into a single object. By default
// duplicate keys are deduplicated, last occurrence wins, with keys ordered
// by first appearance. arg {"preserve":true} instead splices every object's
// raw key/value pairs together unchanged, so a duplicate key is genuinely
// kept twice in the output rather than collapsed. Either way, a non-object
// element is skipped rather than aborting the whole merge; non-array input
// is returned unchanged.
func applyJoin(json, arg string) string {
	ctx, _ := parseValue(json, 0)
	if ctx.kind != Array {
		return json
	}
	preserve := arg != "" && Get(arg, "preserve").Bool()
	buf := []byte{'{'}
	if preserve {
		n := 0
		for _, elem := range ctx.Array() {
			if elem.kind != Object {
				continue
			}
			if n > 0 {
				buf = append(buf, ',')
			}
			buf = append(buf, trimOuterBraces(elem.raw)...)
			n++
		}
		buf = append(buf, '}')
		return string(buf)
	}
	order := make([]string, 0)
	values := make(map[string]string)
	for _, elem := range ctx.Array() {
		if elem.kind != Object {
			continue
		}
		elem.Foreach(func(k, v Context) bool {
			key := k.str
			if _, seen := values[key]; !seen {
				order = append(order, key)
			}
			values[key] = v.raw
			return true
		})
	}
	for i, key := range order {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendJSONString(buf, key)
		buf = append(buf, ':')
		buf = append(buf, values[key]...)
	}
	buf = append(buf, '}')
	return string(buf)
}

// trimOuterBraces strips a leading '{' and trailing '}' from json, after
// trimming surrounding whitespace, leaving its raw key/value pairs ready to
// splice into another object literal. json unchanged if it isn't brace-
// wrapped.
func trimOuterBraces(json string) string {
	json = strings.TrimSpace(json)
	if len(json) >= 2 && json[0] == '{' && json[len(json)-1] == '}' {
		return json[1 : len(json)-1]
	}
	return json
}

// applyKeys returns an array of an object's keys, or an array of an array's
// zero-based indices (as numbers), mirroring what iterating with Foreach
// would yield as the "key" side.
func applyKeys(json, _ string) string {
	ctx, _ := parseValue(json, 0)
	buf := []byte{'['}
	n := 0
	ctx.Foreach(func(k, _ Context) bool {
		if n > 0 {
			buf = append(buf, ',')
		}
		if ctx.kind == Array {
			buf = append(buf, strconv.Itoa(n)...)
		} else {
			buf = appendJSONString(buf, k.str)
		}
		n++
		return true
	})
	buf = append(buf, ']')
	return string(buf)
}

// applyValues returns an array of an object's values, or an array's
// elements verbatim.
func applyValues(json, _ string) string {
	ctx, _ := parseValue(json, 0)
	buf := []byte{'['}
	n := 0
	ctx.Foreach(func(_, v Context) bool {
		if n > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, v.raw...)
		n++
		return true
	})
	buf = append(buf, ']')
	return string(buf)
}

// applyJSON round-trips json through a native Go value and back out via
// encoding.Marshal, normalizing whitespace and number formatting the same
// way any other value produced by this package's encoder would look. A
// value that fails to marshal (NaN/Inf floats reaching it through Value())
// resolves to not-found rather than panicking.
func applyJSON(json, _ string) string {
	ctx, _ := parseValue(json, 0)
	out, err := encoding.Marshal(ctx.Value())
	if err != nil {
		return ""
	}
	return string(out)
}

// applyString renders json's value as a JSON string literal: numbers,
// booleans and null are stringified via Context.String and then quoted;
// an already-string value is re-quoted with its original escaping rules
// re-applied through appendJSONString.
func applyString(json, _ string) string {
	ctx, _ := parseValue(json, 0)
	return string(appendJSONString(nil, ctx.String()))
}
