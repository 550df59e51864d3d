package fj

import (
	"math"
	"strconv"

	"github.com/sivaosorg/unify4g"

	"github.com/ferrowind/fj/pkg/conv"
)

// Type reports the kind of value ctx holds.
func (ctx Context) Type() Type {
	return ctx.kind
}

// Kind is an alias for Type.
func (ctx Context) Kind() Type {
	return ctx.kind
}

// Raw returns the exact JSON text this Context denotes, unmodified.
func (ctx Context) Raw() string {
	return ctx.raw
}

// Number returns the parsed float64 for a Number Context, 0 for any other
// kind. Prefer Float64, which also coerces strings and booleans; Number is
// a cheap accessor for when the kind is already known.
func (ctx Context) Number() float64 {
	return ctx.num
}

// Index returns the byte offset of ctx.raw within the root document it was
// resolved against, or 0 if that document is unknown (a synthesized
// multipath/modifier result that was never re-resolved against a root).
func (ctx Context) Index() int {
	return ctx.idx
}

// Indexes returns the byte offsets of every match collected by a
// "#(...)#"-style query, or nil when ctx wasn't built from one.
func (ctx Context) Indexes() []int {
	return ctx.idxs
}

// Exists reports whether a Get actually matched something. The zero
// Context (kind Null, empty raw) means "not found"; a parsed JSON null
// literal has raw "null" and still exists.
func (ctx Context) Exists() bool {
	return ctx.kind != Null || len(ctx.raw) > 0
}

// IsError reports whether ctx was produced by a collaborator with an actual
// failure mode (ParseReader, ParseJSONFile) rather than the engine's normal
// not-found signaling.
func (ctx Context) IsError() bool {
	return ctx.err != nil
}

// Cause returns the error behind IsError, or nil.
func (ctx Context) Cause() error {
	return ctx.err
}

// IsArray reports whether ctx holds a JSON array.
func (ctx Context) IsArray() bool {
	return ctx.kind == Array
}

// IsObject reports whether ctx holds a JSON object.
func (ctx Context) IsObject() bool {
	return ctx.kind == Object
}

// IsBool reports whether ctx holds a JSON true or false literal.
func (ctx Context) IsBool() bool {
	return ctx.kind == True || ctx.kind == False
}

// Bool coerces ctx to a boolean: true/false literals convert directly,
// strings are parsed ("true", "1", etc., via conv.BoolOrDefault), numbers
// are nonzero, and everything else is false.
func (ctx Context) Bool() bool {
	switch ctx.kind {
	case True:
		return true
	case String:
		return conv.BoolOrDefault(ctx.str, false)
	case Number:
		return ctx.num != 0
	default:
		return false
	}
}

// Int coerces ctx to a platform int. A Number outside the platform int
// range (checked against math.MinInt/math.MaxInt, not a fixed 32-bit
// bound) returns 0 rather than silently truncating.
func (ctx Context) Int() int {
	switch ctx.kind {
	case True:
		return 1
	case String:
		return conv.IntOrDefault(ctx.str, 0)
	case Number:
		if ctx.num < math.MinInt || ctx.num > math.MaxInt {
			return 0
		}
		return conv.IntOrDefault(ctx.raw, int(ctx.num))
	default:
		return 0
	}
}

// Int64 coerces ctx to an int64, 0 if it's out of range or not numeric.
func (ctx Context) Int64() int64 {
	switch ctx.kind {
	case True:
		return 1
	case String:
		return conv.Int64OrDefault(ctx.str, 0)
	case Number:
		if ctx.num < math.MinInt64 || ctx.num > math.MaxInt64 {
			return 0
		}
		return conv.Int64OrDefault(ctx.raw, int64(ctx.num))
	default:
		return 0
	}
}

// Int32 coerces ctx to an int32, 0 if it's out of range or not numeric.
func (ctx Context) Int32() int32 {
	switch ctx.kind {
	case True:
		return 1
	case String:
		v := conv.Int64OrDefault(ctx.str, 0)
		if v < math.MinInt32 || v > math.MaxInt32 {
			return 0
		}
		return int32(v)
	case Number:
		if ctx.num < math.MinInt32 || ctx.num > math.MaxInt32 {
			return 0
		}
		v := conv.Int64OrDefault(ctx.raw, int64(ctx.num))
		if v < math.MinInt32 || v > math.MaxInt32 {
			return 0
		}
		return int32(v)
	default:
		return 0
	}
}

// Int16 coerces ctx to an int16, 0 if it's out of range or not numeric.
func (ctx Context) Int16() int16 {
	switch ctx.kind {
	case True:
		return 1
	case String:
		v := conv.Int64OrDefault(ctx.str, 0)
		if v < math.MinInt16 || v > math.MaxInt16 {
			return 0
		}
		return int16(v)
	case Number:
		if ctx.num < math.MinInt16 || ctx.num > math.MaxInt16 {
			return 0
		}
		v := conv.Int64OrDefault(ctx.raw, int64(ctx.num))
		if v < math.MinInt16 || v > math.MaxInt16 {
			return 0
		}
		return int16(v)
	default:
		return 0
	}
}

// Int8 coerces ctx to an int8, 0 if it's out of range or not numeric.
func (ctx Context) Int8() int8 {
	switch ctx.kind {
	case True:
		return 1
	case String:
		v := conv.Int64OrDefault(ctx.str, 0)
		if v < math.MinInt8 || v > math.MaxInt8 {
			return 0
		}
		return int8(v)
	case Number:
		if ctx.num < math.MinInt8 || ctx.num > math.MaxInt8 {
			return 0
		}
		v := conv.Int64OrDefault(ctx.raw, int64(ctx.num))
		if v < math.MinInt8 || v > math.MaxInt8 {
			return 0
		}
		return int8(v)
	default:
		return 0
	}
}

// Uint coerces ctx to a platform uint, 0 for negative or non-numeric input.
func (ctx Context) Uint() uint {
	switch ctx.kind {
	case True:
		return 1
	case String:
		return conv.UintOrDefault(ctx.str, 0)
	case Number:
		if ctx.num < 0 || ctx.num > math.MaxUint {
			return 0
		}
		return conv.UintOrDefault(ctx.raw, uint(ctx.num))
	default:
		return 0
	}
}

// Uint64 coerces ctx to a uint64, 0 for negative or non-numeric input.
func (ctx Context) Uint64() uint64 {
	switch ctx.kind {
	case True:
		return 1
	case String:
		return conv.Uint64OrDefault(ctx.str, 0)
	case Number:
		if ctx.num < 0 || ctx.num > math.MaxUint64 {
			return 0
		}
		return conv.Uint64OrDefault(ctx.raw, uint64(ctx.num))
	default:
		return 0
	}
}

// Uint32 coerces ctx to a uint32, 0 if out of range or not numeric.
func (ctx Context) Uint32() uint32 {
	switch ctx.kind {
	case True:
		return 1
	case String:
		return conv.Uint32OrDefault(ctx.str, 0)
	case Number:
		if ctx.num < 0 || ctx.num > math.MaxUint32 {
			return 0
		}
		return conv.Uint32OrDefault(ctx.raw, uint32(ctx.num))
	default:
		return 0
	}
}

// Uint16 coerces ctx to a uint16, 0 if out of range or not numeric.
func (ctx Context) Uint16() uint16 {
	switch ctx.kind {
	case True:
		return 1
	case String:
		return conv.Uint16OrDefault(ctx.str, 0)
	case Number:
		if ctx.num < 0 || ctx.num > math.MaxUint16 {
			return 0
		}
		return conv.Uint16OrDefault(ctx.raw, uint16(ctx.num))
	default:
		return 0
	}
}

// Uint8 coerces ctx to a uint8, 0 if out of range or not numeric.
func (ctx Context) Uint8() uint8 {
	switch ctx.kind {
	case True:
		return 1
	case String:
		return conv.Uint8OrDefault(ctx.str, 0)
	case Number:
		if ctx.num < 0 || ctx.num > math.MaxUint8 {
			return 0
		}
		return conv.Uint8OrDefault(ctx.raw, uint8(ctx.num))
	default:
		return 0
	}
}

// Float64 coerces ctx to a float64: Number returns its parsed value
// directly, String is parsed via conv.Float64OrDefault, True is 1, and
// everything else is 0.
func (ctx Context) Float64() float64 {
	switch ctx.kind {
	case True:
		return 1
	case String:
		return conv.Float64OrDefault(ctx.str, 0)
	case Number:
		return ctx.num
	default:
		return 0
	}
}

// Float32 coerces ctx to a float32, 0 if the value overflows float32's
// range.
func (ctx Context) Float32() float32 {
	f := ctx.Float64()
	if f < -math.MaxFloat32 || f > math.MaxFloat32 {
		return 0
	}
	return float32(f)
}

// String returns the logical string form of ctx: the decoded text for a
// String, "true"/"false" for booleans, the literal digits for a Number, and
// raw JSON for Array/Object. Null and not-found both give "".
func (ctx Context) String() string {
	switch ctx.kind {
	case True:
		return "true"
	case False:
		return "false"
	case Number:
		if len(ctx.raw) > 0 {
			return ctx.raw
		}
		return strconv.FormatFloat(ctx.num, 'f', -1, 64)
	case String:
		return ctx.str
	case Array, Object:
		return ctx.raw
	default:
		return ""
	}
}

// Value returns ctx as a plain Go value: nil for Null or not-found, bool
// for True/False, float64 for Number, string for String, []any for Array,
// and map[string]any for Object (both built recursively). It's the bridge
// other packages reach for when they need a native Go value rather than a
// Context — search.go's CoerceTo/GroupBy/SortBy use it to hand values to
// pkg/conv.
func (ctx Context) Value() any {
	switch ctx.kind {
	case True:
		return true
	case False:
		return false
	case Number:
		return ctx.num
	case String:
		return ctx.str
	case Array:
		elems := ctx.Array()
		out := make([]any, len(elems))
		for i, e := range elems {
			out[i] = e.Value()
		}
		return out
	case Object:
		m := ctx.Map()
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v.Value()
		}
		return out
	default:
		return nil
	}
}

// StringColored renders ctx.raw with DefaultStyle's ANSI colors.
func (ctx Context) StringColored() string {
	return ctx.WithStringColored(DefaultStyle)
}

// WithStringColored renders ctx.raw with style's ANSI colors.
func (ctx Context) WithStringColored(style *unify4g.Style) string {
	return string(colorize(ctx.raw, style))
}

// Array returns ctx's elements. A non-array, existing Context returns a
// single-element slice holding ctx itself; Null or not-found returns nil.
func (ctx Context) Array() []Context {
	if !ctx.Exists() || ctx.kind == Null {
		return nil
	}
	if ctx.kind != Array {
		return []Context{ctx}
	}
	i := skipWhitespace(ctx.raw, 0)
	if i >= len(ctx.raw) || ctx.raw[i] != '[' {
		return nil
	}
	var out []Context
	forEachArrayElement(ctx.raw, ctx.idx, i+1, false, func(_ int, v Context) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Map returns ctx's entries keyed by decoded string key, or nil if ctx
// isn't an object. Map order is unspecified (it's a Go map); use Foreach
// for encounter order.
func (ctx Context) Map() map[string]Context {
	if ctx.kind != Object {
		return nil
	}
	i := skipWhitespace(ctx.raw, 0)
	if i >= len(ctx.raw) || ctx.raw[i] != '{' {
		return nil
	}
	out := make(map[string]Context)
	forEachObjectEntry(ctx.raw, ctx.idx, i+1, func(k, v Context) bool {
		out[k.str] = v
		return true
	})
	return out
}

// Foreach iterates ctx's children in encounter order: (key, value) pairs for
// an Object, (empty Context, element) pairs for an Array, or a single
// (empty Context, ctx) call for any scalar. iterator returning false stops
// the walk early.
func (ctx Context) Foreach(iterator func(key, value Context) bool) {
	if !ctx.Exists() {
		return
	}
	switch ctx.kind {
	case Object:
		i := skipWhitespace(ctx.raw, 0)
		if i >= len(ctx.raw) || ctx.raw[i] != '{' {
			return
		}
		forEachObjectEntry(ctx.raw, ctx.idx, i+1, iterator)
	case Array:
		i := skipWhitespace(ctx.raw, 0)
		if i >= len(ctx.raw) || ctx.raw[i] != '[' {
			return
		}
		forEachArrayElement(ctx.raw, ctx.idx, i+1, false, func(_ int, v Context) bool {
			return iterator(Context{}, v)
		})
	default:
		iterator(Context{}, ctx)
	}
}

// Get resolves path against ctx, relative to ctx itself. Because ctx.idx is
// threaded through as the new base, the result keeps a root-relative offset
// whenever ctx's own offset is known — chained Gets don't lose Path/Paths
// accuracy the way re-rooting at 0 would.
func (ctx Context) Get(path string) Context {
	if path == "" {
		return ctx
	}
	return resolvePath(ctx.raw, ctx.idx, path)
}

// GetMulti resolves each of paths against ctx, returning results in the
// same order.
func (ctx Context) GetMulti(paths ...string) []Context {
	out := make([]Context, len(paths))
	for i, p := range paths {
		out[i] = ctx.Get(p)
	}
	return out
}

// Less reports whether ctx sorts before token, ordering first by kind
// (Null < False < Number < String < True < Array < Object) and then, for
// two values of the same comparable kind, by value: numerically for
// Number, lexically for String (byte-wise if !caseSensitive asks for a
// case-insensitive compare, ASCII-folded).
func (ctx Context) Less(token Context, caseSensitive bool) bool {
	if ctx.kind != token.kind {
		return ctx.kind < token.kind
	}
	switch ctx.kind {
	case Number:
		return ctx.num < token.num
	case String:
		if caseSensitive {
			return ctx.str < token.str
		}
		return foldedLess(ctx.str, token.str)
	default:
		return false
	}
}

func foldedLess(a, b string) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ca, cb := foldByte(a[i]), foldByte(b[i])
		if ca != cb {
			return ca < cb
		}
	}
	return len(a) < len(b)
}

func foldByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Path reconstructs the dotted path that resolves to ctx within json,
// walking backward from ctx.idx. It returns "" if ctx's offset is unknown
// (idx 0 on a synthesized result) or doesn't land inside json.
func (ctx Context) Path(json string) string {
	if ctx.idx <= 0 || ctx.idx >= len(json) {
		return ""
	}
	var comps []string
	end := ctx.idx
	for end > 0 {
		start, key, isIndex := containerKeyEndingAt(json, end)
		if start < 0 {
			break
		}
		if isIndex {
			comps = append(comps, key)
		} else {
			comps = append(comps, escapePathComponent(key))
		}
		end = start
	}
	if len(comps) == 0 {
		return ""
	}
	buf := make([]byte, 0, len(json)/4)
	for i := len(comps) - 1; i >= 0; i-- {
		if i != len(comps)-1 {
			buf = append(buf, '.')
		}
		buf = append(buf, comps[i]...)
	}
	return string(buf)
}

// Paths reconstructs Path for every match ctx holds, one per entry of
// ctx.idxs, in order. It's only meaningful for a
// Context built from a "#(...)#" query, which is the only case idxs is
// populated.
func (ctx Context) Paths(json string) []string {
	if len(ctx.idxs) == 0 {
		return nil
	}
	out := make([]string, len(ctx.idxs))
	for i, idx := range ctx.idxs {
		c := Context{kind: ctx.kind, raw: ctx.raw, idx: idx}
		out[i] = c.Path(json)
	}
	return out
}

// containerKeyEndingAt walks backward from end (exclusive) to find the
// object key or array index whose value starts there, returning the byte
// offset where that key/index's container-opening delimiter search should
// resume (i.e. just before the key's opening quote, or just before the
// array's opening '['), the key/index text itself, and whether it's an
// array index (true) or an object key (false). start is -1 if end isn't
// the start of a value nested in an object or array.
func containerKeyEndingAt(json string, end int) (start int, key string, isIndex bool) {
	i := end - 1
	depth := 0
	open := -1
loop:
	for i >= 0 {
		switch json[i] {
		case '"':
			j := i - 1
			for j >= 0 {
				if json[j] == '"' {
					esc := 0
					k := j
					for k > 0 && json[k-1] == '\\' {
						k--
						esc++
					}
					if esc%2 == 1 {
						j = k - 1
						continue
					}
					break
				}
				j--
			}
			i = j - 1
		case '}', ']':
			// an earlier sibling is a container; its closing delimiter
			// must be matched before we can see the enclosing one.
			depth++
			i--
		case '{', '[':
			if depth == 0 {
				open = i
				break loop
			}
			depth--
			i--
		default:
			i--
		}
	}
	if open < 0 {
		return -1, "", false
	}
	switch json[open] {
	case '{':
		return objectKeyBefore(json, open, end)
	case '[':
		return arrayIndexBefore(json, open, end)
	default:
		return -1, "", false
	}
}

// objectKeyBefore scans forward from just past '{' at openBrace, counting
// entries until it finds the one whose value starts at valStart, and returns
// that entry's decoded key.
func objectKeyBefore(json string, openBrace, valStart int) (start int, key string, isIndex bool) {
	i := openBrace + 1
	for {
		i = skipWhitespace(json, i)
		if i >= len(json) || json[i] != '"' {
			return -1, "", false
		}
		keyStart := i
		kend, esc, ok := scanString(json, i)
		if !ok {
			return -1, "", false
		}
		rawKey := json[keyStart:kend]
		inner := rawKey[1 : len(rawKey)-1]
		decoded := inner
		if esc {
			decoded = Unescape(inner)
		}
		i = skipWhitespace(json, kend)
		if i >= len(json) || json[i] != ':' {
			return -1, "", false
		}
		i = skipWhitespace(json, i+1)
		_, next := parseValue(json[i:], 0)
		valueEnd := i + next
		if i == valStart {
			return openBrace, decoded, false
		}
		i = skipWhitespace(json, valueEnd)
		if i < len(json) && json[i] == ',' {
			i++
			continue
		}
		return -1, "", false
	}
}

// arrayIndexBefore scans forward from just past '[' at openBracket,
// counting elements until it finds the one starting at valStart, returning
// its decimal index text.
func arrayIndexBefore(json string, openBracket, valStart int) (start int, key string, isIndex bool) {
	found := -1
	forEachArrayElement(json, 0, openBracket+1, false, func(idx int, v Context) bool {
		if v.idx == valStart {
			found = idx
			return false
		}
		return true
	})
	if found < 0 {
		return -1, "", false
	}
	return openBracket, strconv.Itoa(found), true
}

// escapePathComponent backslash-escapes the bytes that are meaningful to
// splitPath/parseComponent ('.', '|', '*', '?', '\\') so the returned
// component round-trips through the path grammar.
func escapePathComponent(s string) string {
	needsEsc := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.', '|', '*', '?', '\\', '@', '#', '!', '[', ']', '{', '}', ':':
			needsEsc = true
		}
	}
	if !needsEsc {
		return s
	}
	buf := make([]byte, 0, len(s)+4)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.', '|', '*', '?', '\\':
			buf = append(buf, '\\', s[i])
		default:
			buf = append(buf, s[i])
		}
	}
	return string(buf)
}
