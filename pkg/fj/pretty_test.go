package fj

import "testing"

func TestUglyRemovesWhitespace(t *testing.T) {
	json := "{\n  \"a\" : 1,\n  \"b\": [1, 2]\n}"
	got := Ugly(json)
	if got != `{"a":1,"b":[1,2]}` {
		t.Errorf("Ugly() = %q; want {\"a\":1,\"b\":[1,2]}", got)
	}
}

func TestUglyPreservesStringWhitespace(t *testing.T) {
	json := `{"a": "has  spaces\nand newline"}`
	got := Ugly(json)
	if got != `{"a":"has  spaces\nand newline"}` {
		t.Errorf("Ugly() = %q; altered string contents", got)
	}
}

func TestPrettyUglyRoundTrip(t *testing.T) {
	json := `{"a":1,"b":[1,2,3],"c":{"d":true}}`
	pretty := Pretty(json, nil)
	back := Ugly(pretty)
	if back != json {
		t.Errorf("Ugly(Pretty(x)) = %q; want %q", back, json)
	}
}

func TestPrettyIndent(t *testing.T) {
	json := `{"a":1}`
	got := Pretty(json, &PrettyOptions{Indent: "    "})
	want := "{\n    \"a\": 1\n}"
	if got != want {
		t.Errorf("Pretty() = %q; want %q", got, want)
	}
}

func TestPrettySortKeys(t *testing.T) {
	json := `{"z":1,"a":2}`
	got := Pretty(json, &PrettyOptions{Indent: "  ", SortKeys: true})
	want := "{\n  \"a\": 2,\n  \"z\": 1\n}"
	if got != want {
		t.Errorf("Pretty(sortKeys) = %q; want %q", got, want)
	}
}

func TestPrettyWidthKeepsShortOnOneLine(t *testing.T) {
	json := `{"a":1,"b":2}`
	got := Pretty(json, &PrettyOptions{Indent: "  ", Width: 80})
	if got != json {
		t.Errorf("Pretty(Width=80) = %q; want unchanged %q", got, json)
	}
}

func TestPrettyEmptyContainers(t *testing.T) {
	if got := Pretty(`{}`, nil); got != "{}" {
		t.Errorf("Pretty({}) = %q; want {}", got)
	}
	if got := Pretty(`[]`, nil); got != "[]" {
		t.Errorf("Pretty([]) = %q; want []", got)
	}
}

func TestColorizeProducesANSICodes(t *testing.T) {
	got := Parse(`{"a":1}`).StringColored()
	if got == `{"a":1}` {
		t.Error("StringColored() should add ANSI escapes, got plain text")
	}
}
