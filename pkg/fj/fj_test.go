package fj

import (
	"errors"
	"strings"
	"testing"
)

func TestParseKinds(t *testing.T) {
	tests := []struct {
		name string
		json string
		kind Type
	}{
		{"object", `{"a":1}`, Object},
		{"array", `[1,2,3]`, Array},
		{"string", `"hello"`, String},
		{"number", `42`, Number},
		{"true", `true`, True},
		{"false", `false`, False},
		{"null", `null`, Null},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := Parse(tt.json)
			if ctx.Type() != tt.kind {
				t.Errorf("Parse(%q).Type() = %v; want %v", tt.json, ctx.Type(), tt.kind)
			}
			if !ctx.Exists() {
				t.Errorf("Parse(%q).Exists() = false; want true", tt.json)
			}
		})
	}
}

func TestParseEmptyNotFound(t *testing.T) {
	ctx := Parse("")
	if ctx.Exists() {
		t.Errorf("Parse(\"\").Exists() = true; want false")
	}
}

func TestGetObjectAndArray(t *testing.T) {
	json := `{"name":"Dale","age":44,"friends":[{"name":"Roger","age":68},{"name":"Jane","age":47}]}`
	if got := Get(json, "name").String(); got != "Dale" {
		t.Errorf("name = %q; want Dale", got)
	}
	if got := Get(json, "age").Int(); got != 44 {
		t.Errorf("age = %d; want 44", got)
	}
	if got := Get(json, "friends.1.name").String(); got != "Jane" {
		t.Errorf("friends.1.name = %q; want Jane", got)
	}
	if got := Get(json, "friends.#").Int(); got != 2 {
		t.Errorf("friends.# = %d; want 2", got)
	}
}

func TestGetMissingIsNotFound(t *testing.T) {
	ctx := Get(`{"a":1}`, "b")
	if ctx.Exists() {
		t.Errorf("Get missing key: Exists() = true; want false")
	}
	if ctx.String() != "" {
		t.Errorf("Get missing key: String() = %q; want \"\"", ctx.String())
	}
}

func TestGetQuery(t *testing.T) {
	json := `{"friends":[{"first":"Dale","last":"Murphy","age":44},{"first":"Roger","last":"Craig","age":68}]}`
	if got := Get(json, `friends.#(last=="Murphy").first`).String(); got != "Dale" {
		t.Errorf("query result = %q; want Dale", got)
	}
	all := Get(json, `friends.#(age>50)#.first`)
	if all.String() != `["Roger"]` {
		t.Errorf("query-all result = %q; want [\"Roger\"]", all.String())
	}
}

func TestGetWildcardKey(t *testing.T) {
	json := `{"hi":"there","mid":"ahoy"}`
	ctx := Get(json, "h*")
	if ctx.String() != "there" {
		t.Errorf("wildcard key = %q; want there", ctx.String())
	}
}

func TestGetPipeModifier(t *testing.T) {
	json := `{"items":[3,1,2]}`
	got := Get(json, "items|@reverse")
	if got.String() != "[2,1,3]" {
		t.Errorf("items|@reverse = %q; want [2,1,3]", got.String())
	}
}

func TestGetMulti(t *testing.T) {
	json := `{"a":1,"b":2,"c":3}`
	out := GetMulti(json, "a", "b", "c")
	if len(out) != 3 {
		t.Fatalf("len(out) = %d; want 3", len(out))
	}
	if out[0].Int() != 1 || out[1].Int() != 2 || out[2].Int() != 3 {
		t.Errorf("out = %v,%v,%v; want 1,2,3", out[0].Raw(), out[1].Raw(), out[2].Raw())
	}
}

func TestGetBytes(t *testing.T) {
	json := []byte(`{"a":"b"}`)
	if got := GetBytes(json, "a").String(); got != "b" {
		t.Errorf("GetBytes = %q; want b", got)
	}
}

func TestMultipathArray(t *testing.T) {
	json := `{"name":{"first":"Dale","last":"Murphy"},"age":44}`
	got := Get(json, "[name.first,age]").String()
	if got != `["Dale",44]` {
		t.Errorf("multipath array = %q; want [\"Dale\",44]", got)
	}
}

func TestMultipathObject(t *testing.T) {
	json := `{"name":{"first":"Dale","last":"Murphy"},"age":44}`
	got := Get(json, "{name.first,age}").String()
	if !strings.Contains(got, `"first":"Dale"`) || !strings.Contains(got, `"age":44`) {
		t.Errorf("multipath object = %q; want keys first and age", got)
	}
}

func TestGetAllCount(t *testing.T) {
	json := "{\"a\":1}\n{\"a\":2}\ntrue\nfalse\n4"
	got := Get(json, "..#")
	if got.Int64() != 5 {
		t.Errorf("..# = %v; want 5", got.Int64())
	}
}

func TestGetAllProjectThis(t *testing.T) {
	json := "{\"a\":1}\n{\"a\":2}\ntrue\nfalse\n4"
	got := Get(json, "..#.@this|@ugly")
	want := `[{"a":1},{"a":2},true,false,4]`
	if got.String() != want {
		t.Errorf("..#.@this|@ugly = %q; want %q", got.String(), want)
	}
}

func TestGetAllProjectThisJoin(t *testing.T) {
	json := "{\"a\":1}\n{\"a\":2}\ntrue\nfalse\n4"
	got := Get(json, "..#.@this|@join|@ugly")
	want := `{"a":2}`
	if got.String() != want {
		t.Errorf("..#.@this|@join|@ugly = %q; want %q", got.String(), want)
	}
}

func TestGetAllBareIndex(t *testing.T) {
	json := "{\"a\":1}\n{\"a\":2}\n{\"a\":3}"
	if got := Get(json, "..1"); got.String() != `{"a":2}` {
		t.Errorf("..1 = %q; want {\"a\":2}", got.String())
	}
	// A non-numeric component isn't a valid lines-mode index, matching how a
	// bare array component must parse as a decimal index.
	if got := Get(json, "..a"); got.Exists() {
		t.Errorf("..a = %q; want not found", got.String())
	}
}

func TestForeachStopsEarly(t *testing.T) {
	json := `{"a":1} {"a":2} {"a":3}`
	var seen []string
	Foreach(json, func(line Context) bool {
		seen = append(seen, line.Raw())
		return len(seen) < 2
	})
	if len(seen) != 2 {
		t.Errorf("Foreach visited %d lines; want 2", len(seen))
	}
}

func TestParseJSONFileRejectsNonJSONSuffix(t *testing.T) {
	ctx := ParseJSONFile("notjson.txt")
	if !ctx.IsError() {
		t.Errorf("ParseJSONFile(non-.json) IsError() = false; want true")
	}
}

func TestParseReaderError(t *testing.T) {
	ctx := ParseReader(errReader{})
	if !ctx.IsError() {
		t.Errorf("ParseReader with failing reader: IsError() = false; want true")
	}
}

func TestParseReaderWithoutTrailingNewline(t *testing.T) {
	ctx := ParseReader(strings.NewReader(`{"a":1}`))
	if ctx.Raw() != `{"a":1}` {
		t.Errorf("ParseReader(no trailing newline) = %q; want {\"a\":1}", ctx.Raw())
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}
