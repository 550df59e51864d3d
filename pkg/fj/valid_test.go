package fj

import (
	"strings"
	"testing"
)

func TestValidAcceptsWellFormed(t *testing.T) {
	valid := []string{
		`{"a":1}`,
		`[1,2,3]`,
		`"hello"`,
		`42`,
		`-42.5e10`,
		`true`,
		`false`,
		`null`,
		`{}`,
		`[]`,
		`{"a":{"b":[1,2,{"c":"d"}]}}`,
	}
	for _, v := range valid {
		if !Valid(v) {
			t.Errorf("Valid(%q) = false; want true", v)
		}
	}
}

func TestValidRejectsMalformed(t *testing.T) {
	invalid := []string{
		`{"a":1`,
		`[1,2,`,
		`abc`,
		``,
		`{"a":1}x`,
		`{'a':1}`,
		`[1,]`,
		`{,}`,
		`01`,
		`1.`,
	}
	for _, v := range invalid {
		if Valid(v) {
			t.Errorf("Valid(%q) = true; want false", v)
		}
	}
}

func TestValidRejectsTrailingGarbage(t *testing.T) {
	if Valid(`{"a":1}   garbage`) {
		t.Error("trailing non-whitespace garbage should be invalid")
	}
}

func TestValidAllowsTrailingWhitespace(t *testing.T) {
	if !Valid("{\"a\":1}   \n\t") {
		t.Error("trailing whitespace should still be valid")
	}
}

func TestDescribeValidReturnsNil(t *testing.T) {
	if err := Describe(`{"a":1}`); err != nil {
		t.Errorf("Describe(valid) = %v; want nil", err)
	}
}

func TestDescribeInvalidReturnsTruncatedPreview(t *testing.T) {
	big := `{"a":"` + strings.Repeat("x", 500) + `"`
	err := Describe(big)
	if err == nil {
		t.Fatal("Describe(invalid) = nil; want an error")
	}
	if len(err.Error()) >= len(big) {
		t.Errorf("Describe error message (%d bytes) should be shorter than the input (%d bytes)", len(err.Error()), len(big))
	}
}
