package fj

import "testing"

func TestTypeOrdering(t *testing.T) {
	order := []Type{Null, False, Number, String, True, Array, Object}
	for i := 1; i < len(order); i++ {
		if !(order[i-1] < order[i]) {
			t.Errorf("Type ordering violated at index %d: %v not < %v", i, order[i-1], order[i])
		}
	}
}

func TestTypeStringNames(t *testing.T) {
	tests := map[Type]string{
		Null:   "Null",
		False:  "False",
		Number: "Number",
		String: "String",
		True:   "True",
		Array:  "Array",
		Object: "Object",
	}
	for typ, want := range tests {
		if got := typ.String(); got != want {
			t.Errorf("%v.String() = %q; want %q", typ, got, want)
		}
	}
}

func TestTypeStringUnknown(t *testing.T) {
	var unknown Type = 99
	if got := unknown.String(); got != "" {
		t.Errorf("unknown Type.String() = %q; want \"\"", got)
	}
}
