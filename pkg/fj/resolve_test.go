package fj

import "testing"

func TestDescendObjectWildcardKey(t *testing.T) {
	json := `{"hello":1,"help":2,"world":3}`
	ctx := resolvePath(json, 0, "hel*")
	if !ctx.Exists() {
		t.Fatal("wildcard key should match")
	}
}

func TestDescendArrayIndexOutOfRange(t *testing.T) {
	ctx := resolvePath(`[1,2,3]`, 0, "10")
	if ctx.Exists() {
		t.Error("out-of-range index should not exist")
	}
}

func TestDescendArrayCount(t *testing.T) {
	ctx := resolvePath(`[1,2,3,4]`, 0, "#")
	if ctx.Int() != 4 {
		t.Errorf("# count = %d; want 4", ctx.Int())
	}
}

func TestProjectChildrenFiltersMissing(t *testing.T) {
	json := `[{"a":1},{"b":2},{"a":3}]`
	ctx := resolvePath(json, 0, "#.a")
	if ctx.Raw() != "[1,3]" {
		t.Errorf("#.a = %q; want [1,3]", ctx.Raw())
	}
}

func TestQueryFirstNoMatch(t *testing.T) {
	json := `[{"a":1},{"a":2}]`
	ctx := resolvePath(json, 0, `#(a==99)`)
	if ctx.Exists() {
		t.Error("no-match query should not exist")
	}
}

func TestQueryOperators(t *testing.T) {
	json := `[{"n":1},{"n":2},{"n":3},{"n":4}]`
	tests := []struct {
		expr string
		want string
	}{
		{`#(n>2)#.n`, "[3,4]"},
		{`#(n>=3)#.n`, "[3,4]"},
		{`#(n<2)#.n`, "[1]"},
		{`#(n<=2)#.n`, "[1,2]"},
		{`#(n=2)#.n`, "[2]"},
		{`#(n!=2)#.n`, "[1,3,4]"},
	}
	for _, tt := range tests {
		got := resolvePath(json, 0, tt.expr)
		if got.Raw() != tt.want {
			t.Errorf("resolvePath(%q) = %q; want %q", tt.expr, got.Raw(), tt.want)
		}
	}
}

func TestQueryStringPatternOperator(t *testing.T) {
	json := `[{"name":"Dale"},{"name":"Roger"},{"name":"Dana"}]`
	got := resolvePath(json, 0, `#(name%"Da*")#.name`)
	if got.Raw() != `["Dale","Dana"]` {
		t.Errorf("pattern-match query = %q; want [\"Dale\",\"Dana\"]", got.Raw())
	}
	notMatch := resolvePath(json, 0, `#(name!%"Da*")#.name`)
	if notMatch.Raw() != `["Roger"]` {
		t.Errorf("negated pattern-match query = %q; want [\"Roger\"]", notMatch.Raw())
	}
}

func TestQueryBoolAndNullLiterals(t *testing.T) {
	json := `[{"a":true,"b":null},{"a":false,"b":1}]`
	got := resolvePath(json, 0, `#(a==true)#.a`)
	if got.Raw() != "[true]" {
		t.Errorf("bool query = %q; want [true]", got.Raw())
	}
	// A Null-kind left-hand side always falls through to the default "false"
	// arm of query_matches's kind switch, the same as any other kind outside
	// String/Number/True/False — so "b==null" never matches, even when b
	// actually is null, mirroring original_source/src/lib.rs:832-871 exactly.
	gotNull := resolvePath(json, 0, `#(b==null)#.a`)
	if gotNull.Raw() != "[]" {
		t.Errorf("null query = %q; want []", gotNull.Raw())
	}
}

func TestQueryDispatchesOnLHSKindNotRHSShape(t *testing.T) {
	// Number LHS vs a quoted numeric RHS must still compare numerically,
	// not lexicographically ("37" < "100" is false; 37 < 100 is true).
	ages := `[{"age":37},{"age":150}]`
	got := resolvePath(ages, 0, `#(age<"100")#.age`)
	if got.Raw() != "[37]" {
		t.Errorf(`#(age<"100")#.age = %q; want [37]`, got.Raw())
	}

	// String LHS whose text happens to parse as a float, compared against
	// an unquoted numeric-looking RHS, must still use plain string compare:
	// numerically 9 < 42, but lexicographically "9" > "42" ('9' > '4').
	codes := `[{"code":"9"},{"code":"100"}]`
	got = resolvePath(codes, 0, `#(code>42)#.code`)
	if got.Raw() != `["9"]` {
		t.Errorf(`#(code>42)#.code = %q; want ["9"]`, got.Raw())
	}

	// True/False LHS against an RHS with no kind-specific meaning falls to
	// the hard-coded always-true-within-kind rule for ">="/"<=".
	flags := `[{"flag":true},{"flag":false}]`
	got = resolvePath(flags, 0, `#(flag>=5)#.flag`)
	if got.Raw() != "[true]" {
		t.Errorf(`#(flag>=5)#.flag = %q; want [true]`, got.Raw())
	}
	got = resolvePath(flags, 0, `#(flag<=5)#.flag`)
	if got.Raw() != "[false]" {
		t.Errorf(`#(flag<=5)#.flag = %q; want [false]`, got.Raw())
	}
}

func TestQueryExistsShorthand(t *testing.T) {
	json := `[{"a":1},{"b":2}]`
	got := resolvePath(json, 0, `#(a)#`)
	if got.Raw() != `[{"a":1}]` {
		t.Errorf("exists-shorthand query = %q; want [{\"a\":1}]", got.Raw())
	}
}

func TestQueryExistsShorthandIgnoresFalsyValue(t *testing.T) {
	json := `[{"name":""},{"other":1}]`
	got := resolvePath(json, 0, `#(name)`)
	if got.Raw() != `{"name":""}` {
		t.Errorf("existence-only query matched on value = %q; want {\"name\":\"\"} (key presence, not truthiness)", got.Raw())
	}
}

func TestForEachObjectEntryOrder(t *testing.T) {
	json := `{"z":1,"a":2,"m":3}`
	var keys []string
	forEachObjectEntry(json, 0, 1, func(k, _ Context) bool {
		keys = append(keys, k.str)
		return true
	})
	want := []string{"z", "a", "m"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v; want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q; want %q", i, keys[i], want[i])
		}
	}
}

func TestMalformedInputDoesNotPanic(t *testing.T) {
	inputs := []string{
		`{"a":`,
		`[1,2,`,
		`"unterminated`,
		`{`,
		`[`,
		``,
		`nul`,
		`1.2.3`,
	}
	for _, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Parse(%q) panicked: %v", in, r)
				}
			}()
			Parse(in)
			Valid(in)
			Get(in, "a.b.c")
		}()
	}
}
