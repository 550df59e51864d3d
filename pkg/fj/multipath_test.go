package fj

import "testing"

func TestResolveMultipathArraySkipsMissing(t *testing.T) {
	json := `{"a":1,"c":3}`
	got := resolveMultipath(json, 0, "[a,b,c]")
	if got.Raw() != "[1,3]" {
		t.Errorf("multipath array with missing selector = %q; want [1,3]", got.Raw())
	}
}

func TestResolveMultipathObjectExplicitNames(t *testing.T) {
	json := `{"a":1,"b":2}`
	got := resolveMultipath(json, 0, "{x:a,y:b}")
	if got.Get("x").Int() != 1 || got.Get("y").Int() != 2 {
		t.Errorf("multipath object = %q; want x=1,y=2", got.Raw())
	}
}

func TestResolveMultipathObjectDefaultName(t *testing.T) {
	json := `{"name":{"first":"Dale"}}`
	got := resolveMultipath(json, 0, "{name.first}")
	if got.Get("first").String() != "Dale" {
		t.Errorf("multipath object default name = %q; want key first=Dale", got.Raw())
	}
}

func TestSplitSelectorsNestedCommas(t *testing.T) {
	sels := splitSelectors(`a,b.#(x==1,y==2),c`)
	if len(sels) != 3 {
		t.Fatalf("splitSelectors = %v; want 3 selectors", sels)
	}
	if sels[1].path != `b.#(x==1,y==2)` {
		t.Errorf("sels[1].path = %q; want b.#(x==1,y==2)", sels[1].path)
	}
}

func TestParseSelectorExplicitName(t *testing.T) {
	s := parseSelector("alias:a.b")
	if s.name != "alias" || s.path != "a.b" {
		t.Errorf("parseSelector = %+v; want name=alias path=a.b", s)
	}
}

func TestParseSelectorNoName(t *testing.T) {
	s := parseSelector("a.b")
	if s.name != "" || s.path != "a.b" {
		t.Errorf("parseSelector = %+v; want name=\"\" path=a.b", s)
	}
}
