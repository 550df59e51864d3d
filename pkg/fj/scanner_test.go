package fj

import "testing"

func TestScanStringBasic(t *testing.T) {
	next, esc, ok := scanString(`"hello"`, 0)
	if !ok || next != 7 || esc {
		t.Errorf("scanString = %d,%v,%v; want 7,false,true", next, esc, ok)
	}
}

func TestScanStringEscaped(t *testing.T) {
	next, esc, ok := scanString(`"a\"b"`, 0)
	if !ok || !esc || next != 6 {
		t.Errorf("scanString escaped = %d,%v,%v; want 6,true,true", next, esc, ok)
	}
}

func TestScanStringUnterminated(t *testing.T) {
	next, _, ok := scanString(`"abc`, 0)
	if ok {
		t.Error("unterminated string should report ok=false")
	}
	if next != 4 {
		t.Errorf("next = %d; want len(json)=4", next)
	}
}

func TestScanNumberVariants(t *testing.T) {
	tests := []struct {
		in   string
		next int
	}{
		{"123", 3},
		{"-123", 4},
		{"1.5", 3},
		{"1e10", 4},
		{"1.5e-10", 7},
		{"123,", 3},
		{"123]", 3},
	}
	for _, tt := range tests {
		next, _ := scanNumber(tt.in, 0)
		if next != tt.next {
			t.Errorf("scanNumber(%q) = %d; want %d", tt.in, next, tt.next)
		}
	}
}

func TestScanSquashBalanced(t *testing.T) {
	next, ok := scanSquash(`{"a":{"b":1}}`, 0)
	if !ok || next != 13 {
		t.Errorf("scanSquash = %d,%v; want 13,true", next, ok)
	}
}

func TestScanSquashStringWithBraces(t *testing.T) {
	next, ok := scanSquash(`{"a":"}{"}`, 0)
	if !ok || next != 10 {
		t.Errorf("scanSquash with braces in string = %d,%v; want 10,true", next, ok)
	}
}

func TestScanSquashUnbalanced(t *testing.T) {
	_, ok := scanSquash(`{"a":1`, 0)
	if ok {
		t.Error("unbalanced input should report ok=false")
	}
}

func TestSkipWhitespace(t *testing.T) {
	if got := skipWhitespace("   \t\r\nx", 0); got != 6 {
		t.Errorf("skipWhitespace = %d; want 6", got)
	}
}
