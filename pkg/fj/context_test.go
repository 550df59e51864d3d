package fj

import (
	"math"
	"testing"
)

func TestContextIntSentinel(t *testing.T) {
	// Regression test: Int() must not clamp to int32 range on 64-bit
	// platforms. math.MaxInt32+1 must coerce through, not collapse to 0.
	big := float64(math.MaxInt32) + 1
	ctx := Context{kind: Number, raw: "2147483648", num: big}
	if got := ctx.Int(); got != 2147483648 {
		t.Errorf("Int() = %d; want 2147483648", got)
	}
}

func TestContextInt64OutOfRange(t *testing.T) {
	ctx := Context{kind: Number, raw: "1e300", num: 1e300}
	if got := ctx.Int64(); got != 0 {
		t.Errorf("Int64() out of range = %d; want 0", got)
	}
}

func TestContextNarrowIntRanges(t *testing.T) {
	ctx := Context{kind: Number, raw: "300", num: 300}
	if got := ctx.Int8(); got != 0 {
		t.Errorf("Int8() of 300 = %d; want 0 (overflow)", got)
	}
	ctx2 := Context{kind: Number, raw: "100", num: 100}
	if got := ctx2.Int8(); got != 100 {
		t.Errorf("Int8() of 100 = %d; want 100", got)
	}
}

func TestContextBoolCoercion(t *testing.T) {
	tests := []struct {
		json string
		want bool
	}{
		{"true", true},
		{"false", false},
		{`"true"`, true},
		{`"false"`, false},
		{"1", true},
		{"0", false},
		{"null", false},
	}
	for _, tt := range tests {
		got := Parse(tt.json).Bool()
		if got != tt.want {
			t.Errorf("Parse(%q).Bool() = %v; want %v", tt.json, got, tt.want)
		}
	}
}

func TestContextFloat32Overflow(t *testing.T) {
	ctx := Context{kind: Number, raw: "1e300", num: 1e300}
	if got := ctx.Float32(); got != 0 {
		t.Errorf("Float32() overflow = %v; want 0", got)
	}
}

func TestContextStringByKind(t *testing.T) {
	if Parse("true").String() != "true" {
		t.Error("true.String() != \"true\"")
	}
	if Parse("42").String() != "42" {
		t.Error("42.String() != \"42\"")
	}
	if Parse(`"hi"`).String() != "hi" {
		t.Error(`"hi".String() != "hi"`)
	}
	if Parse(`[1,2]`).String() != "[1,2]" {
		t.Error("array String() should be raw")
	}
}

func TestContextValueRoundTrip(t *testing.T) {
	json := `{"a":1,"b":[1,2,"x"],"c":null,"d":true}`
	v := Parse(json).Value()
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("Value() = %T; want map[string]any", v)
	}
	if m["a"].(float64) != 1 {
		t.Errorf("m[a] = %v; want 1", m["a"])
	}
	arr, ok := m["b"].([]any)
	if !ok || len(arr) != 3 {
		t.Fatalf("m[b] = %v; want 3-element slice", m["b"])
	}
	if m["c"] != nil {
		t.Errorf("m[c] = %v; want nil", m["c"])
	}
	if m["d"] != true {
		t.Errorf("m[d] = %v; want true", m["d"])
	}
}

func TestContextArraySingleElementFallback(t *testing.T) {
	ctx := Parse(`5`)
	arr := ctx.Array()
	if len(arr) != 1 || arr[0].Int() != 5 {
		t.Errorf("Array() of scalar = %v; want single-element [5]", arr)
	}
}

func TestContextArrayNotFound(t *testing.T) {
	ctx := Get(`{}`, "missing")
	if arr := ctx.Array(); arr != nil {
		t.Errorf("Array() of not-found = %v; want nil", arr)
	}
}

func TestContextMap(t *testing.T) {
	m := Parse(`{"a":1,"b":2}`).Map()
	if len(m) != 2 || m["a"].Int() != 1 || m["b"].Int() != 2 {
		t.Errorf("Map() = %v; want a:1 b:2", m)
	}
}

func TestContextForeachArray(t *testing.T) {
	var got []int
	Parse(`[1,2,3]`).Foreach(func(_, v Context) bool {
		got = append(got, v.Int())
		return true
	})
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("Foreach array = %v; want [1 2 3]", got)
	}
}

func TestContextLessOrdering(t *testing.T) {
	n := Parse("1")
	s := Parse(`"a"`)
	if !n.Less(s, true) {
		t.Error("Number should sort before String")
	}
	if s.Less(n, true) {
		t.Error("String should not sort before Number")
	}
}

func TestContextLessCaseInsensitive(t *testing.T) {
	a := Parse(`"Apple"`)
	b := Parse(`"banana"`)
	if !a.Less(b, false) {
		t.Error("case-insensitive: Apple should sort before banana")
	}
}

func TestContextPathReconstruction(t *testing.T) {
	json := `{"a":{"b":[1,2,{"c":3}]}}`
	ctx := Get(json, "a.b.2.c")
	if !ctx.Exists() || ctx.Int() != 3 {
		t.Fatalf("Get(a.b.2.c) = %v; want 3", ctx.Raw())
	}
	path := ctx.Path(json)
	if path != "a.b.2.c" {
		t.Errorf("Path() = %q; want a.b.2.c", path)
	}
	// round-trip: the reconstructed path must resolve back to the same value.
	if got := Get(json, path); got.Raw() != ctx.Raw() {
		t.Errorf("Get(json, Path()) = %q; want %q", got.Raw(), ctx.Raw())
	}
}

func TestContextPathRootIsEmpty(t *testing.T) {
	json := `{"a":1}`
	ctx := Parse(json)
	if got := ctx.Path(json); got != "" {
		t.Errorf("root Path() = %q; want \"\"", got)
	}
}

func TestContextPathsMultiMatch(t *testing.T) {
	json := `{"list":[{"v":1},{"v":2},{"v":3}]}`
	ctx := Get(json, `list.#(v>1)#`)
	paths := ctx.Paths(json)
	if len(paths) != 2 {
		t.Fatalf("Paths() = %v; want 2 entries", paths)
	}
	for _, p := range paths {
		if !Get(json, p).Exists() {
			t.Errorf("reconstructed path %q does not resolve", p)
		}
	}
}

func TestContextGetPreservesIndex(t *testing.T) {
	json := `{"a":{"b":1}}`
	root := Parse(json)
	inner := root.Get("a")
	leaf := inner.Get("b")
	if path := leaf.Path(json); path != "a.b" {
		t.Errorf("chained Get Path() = %q; want a.b", path)
	}
}

func TestContextCause(t *testing.T) {
	ctx := ParseJSONFile("missing.txt")
	if ctx.Cause() == nil {
		t.Error("Cause() = nil; want non-nil for a non-.json path")
	}
}
