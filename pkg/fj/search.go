package fj

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/ferrowind/fj/pkg/conv"
)

// searchConverter is the pkg/conv instance this file uses for every
// Context->Go-value coercion (CoerceTo, CollectFloat64, GroupBy, SortBy).
// A single shared *Converter, built with its default options, is enough —
// nothing here needs non-default conversion options, and a package-level
// instance avoids allocating one per call.
var searchConverter = conv.NewConverter()

// Search performs a full-tree scan of json and returns every scalar leaf
// whose string representation contains keyword (case-sensitive substring
// match). Objects and arrays are never themselves returned — only the
// leaves at the bottom of each branch.
func Search(json, keyword string) []Context {
	return scanLeaves(nil, Parse(json), keyword)
}

// SearchByKey performs a full-tree scan of json and returns every value
// stored under any of the given object keys, at any nesting depth. Key
// matching is exact and case-sensitive.
func SearchByKey(json string, keys ...string) []Context {
	if len(keys) == 0 {
		return []Context{}
	}
	keySet := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		keySet[k] = struct{}{}
	}
	return scanByKey(nil, Parse(json), keySet)
}

// Contains reports whether path's value in json, stringified, contains
// target. A non-existent path is false, never a panic.
func Contains(json, path, target string) bool {
	ctx := Get(json, path)
	if !ctx.Exists() {
		return false
	}
	return strings.Contains(ctx.String(), target)
}

// FindPath returns the dot-notation path of the first scalar leaf in json
// whose string representation equals value exactly, or "" if none does.
func FindPath(json, value string) string {
	path, _ := scanPath(Parse(json), value, "")
	return path
}

// FindPaths returns the dot-notation paths of every scalar leaf in json
// whose string representation equals value exactly.
func FindPaths(json, value string) []string {
	return scanPaths(nil, Parse(json), value, "")
}

// Count returns len(ctx.Array()) when path resolves to an array, 1 when it
// resolves to any other existing value, and 0 when it doesn't exist.
func Count(json, path string) int {
	ctx := Get(json, path)
	if !ctx.Exists() {
		return 0
	}
	if ctx.IsArray() {
		return len(ctx.Array())
	}
	return 1
}

// Sum adds up every numeric value path resolves to (the elements of an
// array, or the single scalar itself), skipping non-numeric ones.
func Sum(json, path string) float64 {
	var total float64
	scanFloat64(json, path, func(n float64) { total += n })
	return total
}

// Min returns the smallest numeric value path resolves to, and whether any
// numeric value was found at all.
func Min(json, path string) (float64, bool) {
	min := math.MaxFloat64
	found := false
	scanFloat64(json, path, func(n float64) {
		if n < min {
			min = n
		}
		found = true
	})
	if !found {
		return 0, false
	}
	return min, true
}

// Max returns the largest numeric value path resolves to, and whether any
// numeric value was found at all.
func Max(json, path string) (float64, bool) {
	max := -math.MaxFloat64
	found := false
	scanFloat64(json, path, func(n float64) {
		if n > max {
			max = n
		}
		found = true
	})
	if !found {
		return 0, false
	}
	return max, true
}

// Avg returns the arithmetic mean of every numeric value path resolves to,
// and whether any numeric value was found at all.
func Avg(json, path string) (float64, bool) {
	var total float64
	var n int
	scanFloat64(json, path, func(v float64) {
		total += v
		n++
	})
	if n == 0 {
		return 0, false
	}
	return total / float64(n), true
}

// scanFloat64 resolves path in json, treats the result as a collection
// (array elements, or the scalar itself as a one-element collection), and
// calls fn with each element's Float64 for elements whose kind is Number.
// String elements aren't coerced here — Sum/Min/Max/Avg only ever count
// values the source document already typed as numbers.
func scanFloat64(json, path string, fn func(float64)) {
	ctx := Get(json, path)
	if !ctx.Exists() {
		return
	}
	for _, item := range ctx.Array() {
		if item.kind == Number {
			fn(item.num)
		}
	}
}

// Filter resolves path in json, treats the result as a collection, and
// returns the elements for which fn returns true.
func Filter(json, path string, fn func(Context) bool) []Context {
	ctx := Get(json, path)
	if !ctx.Exists() {
		return []Context{}
	}
	items := ctx.Array()
	out := make([]Context, 0, len(items))
	for _, item := range items {
		if fn(item) {
			out = append(out, item)
		}
	}
	return out
}

// First resolves path in json, treats the result as a collection, and
// returns the first element for which fn returns true, or a not-found
// Context if none does.
func First(json, path string, fn func(Context) bool) Context {
	ctx := Get(json, path)
	if !ctx.Exists() {
		return Context{}
	}
	for _, item := range ctx.Array() {
		if fn(item) {
			return item
		}
	}
	return Context{}
}

// Distinct resolves path in json, treats the result as a collection, and
// returns its elements with duplicates removed (by String() equality),
// keeping the first occurrence of each.
func Distinct(json, path string) []Context {
	ctx := Get(json, path)
	if !ctx.Exists() {
		return []Context{}
	}
	seen := make(map[string]struct{})
	out := make([]Context, 0)
	for _, item := range ctx.Array() {
		key := item.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}

// Pluck resolves path in json (expecting an array of objects) and, for
// each object element, builds a new object containing only fields. A field
// absent from an element is simply omitted from that element's projection;
// non-object elements are skipped entirely.
func Pluck(json, path string, fields ...string) []Context {
	if len(fields) == 0 {
		return []Context{}
	}
	ctx := Get(json, path)
	if !ctx.Exists() {
		return []Context{}
	}
	items := ctx.Array()
	out := make([]Context, 0, len(items))
	for _, item := range items {
		if !item.IsObject() {
			continue
		}
		var b strings.Builder
		b.WriteByte('{')
		wrote := 0
		for _, f := range fields {
			v := item.Get(f)
			if !v.Exists() {
				continue
			}
			if wrote > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(f)
			b.WriteString(`":`)
			raw := v.raw
			if raw == "" {
				raw = "null"
			}
			b.WriteString(raw)
			wrote++
		}
		b.WriteByte('}')
		out = append(out, Parse(b.String()))
	}
	return out
}

// SearchMatch is Search with pattern matching (pmatch's '*'/'?' glob
// syntax) instead of a plain substring test.
func SearchMatch(json, pattern string) []Context {
	return scanLeavesMatch(nil, Parse(json), pattern)
}

// SearchByKeyPattern is SearchByKey with a glob pattern (pmatch syntax)
// tested against each object key instead of an exact-name set.
func SearchByKeyPattern(json, keyPattern string) []Context {
	return scanByKeyPattern(nil, Parse(json), keyPattern)
}

// ContainsMatch reports whether path's value in json, stringified, matches
// the glob pattern. A non-existent path is false.
func ContainsMatch(json, path, pattern string) bool {
	ctx := Get(json, path)
	if !ctx.Exists() {
		return false
	}
	return pmatch(pattern, ctx.String())
}

// FindPathMatch is FindPath with glob matching instead of exact equality.
func FindPathMatch(json, valuePattern string) string {
	path, _ := scanPathMatch(Parse(json), valuePattern, "")
	return path
}

// FindPathsMatch is FindPaths with glob matching instead of exact equality.
func FindPathsMatch(json, valuePattern string) []string {
	return scanPathsMatch(nil, Parse(json), valuePattern, "")
}

// CoerceTo converts ctx's value into the Go variable pointed to by into,
// via pkg/conv's reflection-based Infer. into must be a non-nil pointer.
func CoerceTo(ctx Context, into any) error {
	if !ctx.Exists() {
		return searchConverter.Infer(into, nil)
	}
	return searchConverter.Infer(into, ctx.Value())
}

// CollectFloat64 resolves path in json, treats the result as a collection,
// and returns every element coercible to float64 via pkg/conv (covering
// both Number elements and numeric String elements such as "42"). Elements
// that don't coerce are skipped.
func CollectFloat64(json, path string) []float64 {
	ctx := Get(json, path)
	if !ctx.Exists() {
		return []float64{}
	}
	out := make([]float64, 0)
	for _, item := range ctx.Array() {
		if v, err := searchConverter.Float64(item.Value()); err == nil {
			out = append(out, v)
		}
	}
	return out
}

// GroupBy resolves path in json (expecting an array of objects) and groups
// its elements by the string value of keyField, via pkg/conv's String
// conversion. Elements missing keyField, or whose keyField value doesn't
// convert to a string, fall into the "" group.
func GroupBy(json, path, keyField string) map[string][]Context {
	ctx := Get(json, path)
	out := make(map[string][]Context)
	if !ctx.Exists() || !ctx.IsArray() {
		return out
	}
	ctx.Foreach(func(_, item Context) bool {
		var groupKey string
		if kv := item.Get(keyField); kv.Exists() {
			if s, err := searchConverter.String(kv.Value()); err == nil {
				groupKey = s
			}
		}
		out[groupKey] = append(out[groupKey], item)
		return true
	})
	return out
}

// SortBy resolves path in json, treats the result as a collection, and
// returns a new slice ordered by keyField (or, when keyField is "", by the
// element's own value — useful for arrays of scalars). Numeric values sort
// numerically; anything else falls back to pkg/conv's String form.
func SortBy(json, path, keyField string, ascending bool) []Context {
	ctx := Get(json, path)
	if !ctx.Exists() {
		return []Context{}
	}
	items := append([]Context(nil), ctx.Array()...)
	sort.SliceStable(items, func(i, j int) bool {
		vi, vj := sortField(items[i], keyField), sortField(items[j], keyField)
		less := sortCmp(vi, vj)
		if ascending {
			return less
		}
		return !less
	})
	return items
}

func sortField(item Context, keyField string) Context {
	if keyField == "" {
		return item
	}
	return item.Get(keyField)
}

// sortCmp reports whether a sorts before b: numerically if either side is
// a Number, lexically by pkg/conv's String form otherwise.
func sortCmp(a, b Context) bool {
	if a.kind == Number || b.kind == Number {
		fa, errA := searchConverter.Float64(a.Value())
		fb, errB := searchConverter.Float64(b.Value())
		if errA == nil && errB == nil {
			return fa < fb
		}
	}
	sa, _ := searchConverter.String(a.Value())
	sb, _ := searchConverter.String(b.Value())
	return sa < sb
}

func scanLeaves(all []Context, node Context, keyword string) []Context {
	if node.IsArray() || node.IsObject() {
		node.Foreach(func(_, child Context) bool {
			all = scanLeaves(all, child, keyword)
			return true
		})
		return all
	}
	if !node.Exists() {
		return all
	}
	if keyword == "" || strings.Contains(node.String(), keyword) {
		all = append(all, node)
	}
	return all
}

func scanByKey(all []Context, node Context, keySet map[string]struct{}) []Context {
	if node.IsObject() {
		node.Foreach(func(key, val Context) bool {
			if _, ok := keySet[key.str]; ok {
				all = append(all, val)
			}
			if val.IsObject() || val.IsArray() {
				all = scanByKey(all, val, keySet)
			}
			return true
		})
		return all
	}
	if node.IsArray() {
		node.Foreach(func(_, child Context) bool {
			all = scanByKey(all, child, keySet)
			return true
		})
	}
	return all
}

func scanLeavesMatch(all []Context, node Context, pattern string) []Context {
	if node.IsArray() || node.IsObject() {
		node.Foreach(func(_, child Context) bool {
			all = scanLeavesMatch(all, child, pattern)
			return true
		})
		return all
	}
	if !node.Exists() {
		return all
	}
	if pmatch(pattern, node.String()) {
		all = append(all, node)
	}
	return all
}

func scanByKeyPattern(all []Context, node Context, keyPattern string) []Context {
	if node.IsObject() {
		node.Foreach(func(key, val Context) bool {
			if pmatch(keyPattern, key.str) {
				all = append(all, val)
			}
			if val.IsObject() || val.IsArray() {
				all = scanByKeyPattern(all, val, keyPattern)
			}
			return true
		})
		return all
	}
	if node.IsArray() {
		node.Foreach(func(_, child Context) bool {
			all = scanByKeyPattern(all, child, keyPattern)
			return true
		})
	}
	return all
}

func joinPath(prefix, comp string) string {
	if prefix == "" {
		return comp
	}
	return prefix + "." + comp
}

func scanPath(node Context, value, prefix string) (string, bool) {
	if node.IsObject() {
		var found string
		var ok bool
		node.Foreach(func(key, child Context) bool {
			p := joinPath(prefix, key.str)
			if child.IsObject() || child.IsArray() {
				found, ok = scanPath(child, value, p)
			} else if child.Exists() && child.String() == value {
				found, ok = p, true
			}
			return !ok
		})
		return found, ok
	}
	if node.IsArray() {
		var found string
		var ok bool
		idx := 0
		node.Foreach(func(_, child Context) bool {
			p := joinPath(prefix, strconv.Itoa(idx))
			if child.IsObject() || child.IsArray() {
				found, ok = scanPath(child, value, p)
			} else if child.Exists() && child.String() == value {
				found, ok = p, true
			}
			idx++
			return !ok
		})
		return found, ok
	}
	return "", false
}

func scanPaths(all []string, node Context, value, prefix string) []string {
	if node.IsObject() {
		node.Foreach(func(key, child Context) bool {
			p := joinPath(prefix, key.str)
			if child.IsObject() || child.IsArray() {
				all = scanPaths(all, child, value, p)
			} else if child.Exists() && child.String() == value {
				all = append(all, p)
			}
			return true
		})
		return all
	}
	if node.IsArray() {
		idx := 0
		node.Foreach(func(_, child Context) bool {
			p := joinPath(prefix, strconv.Itoa(idx))
			if child.IsObject() || child.IsArray() {
				all = scanPaths(all, child, value, p)
			} else if child.Exists() && child.String() == value {
				all = append(all, p)
			}
			idx++
			return true
		})
	}
	return all
}

func scanPathMatch(node Context, pattern, prefix string) (string, bool) {
	if node.IsObject() {
		var found string
		var ok bool
		node.Foreach(func(key, child Context) bool {
			p := joinPath(prefix, key.str)
			if child.IsObject() || child.IsArray() {
				found, ok = scanPathMatch(child, pattern, p)
			} else if child.Exists() && pmatch(pattern, child.String()) {
				found, ok = p, true
			}
			return !ok
		})
		return found, ok
	}
	if node.IsArray() {
		var found string
		var ok bool
		idx := 0
		node.Foreach(func(_, child Context) bool {
			p := joinPath(prefix, strconv.Itoa(idx))
			if child.IsObject() || child.IsArray() {
				found, ok = scanPathMatch(child, pattern, p)
			} else if child.Exists() && pmatch(pattern, child.String()) {
				found, ok = p, true
			}
			idx++
			return !ok
		})
		return found, ok
	}
	return "", false
}

func scanPathsMatch(all []string, node Context, pattern, prefix string) []string {
	if node.IsObject() {
		node.Foreach(func(key, child Context) bool {
			p := joinPath(prefix, key.str)
			if child.IsObject() || child.IsArray() {
				all = scanPathsMatch(all, child, pattern, p)
			} else if child.Exists() && pmatch(pattern, child.String()) {
				all = append(all, p)
			}
			return true
		})
		return all
	}
	if node.IsArray() {
		idx := 0
		node.Foreach(func(_, child Context) bool {
			p := joinPath(prefix, strconv.Itoa(idx))
			if child.IsObject() || child.IsArray() {
				all = scanPathsMatch(all, child, pattern, p)
			} else if child.Exists() && pmatch(pattern, child.String()) {
				all = append(all, p)
			}
			idx++
			return true
		})
	}
	return all
}
