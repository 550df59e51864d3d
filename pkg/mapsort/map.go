// Package mapsort orders a Go map's entries deterministically, since ranging
// over a map directly gives no iteration-order guarantee.
package mapsort

import "sort"

// Ordered permits any type with < <= >= > defined: numeric types, strings,
// and anything sharing one of those underlying types. Defined locally to
// avoid a dependency on golang.org/x/exp/constraints for one constraint.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~string
}

// item is one key-value pair pulled out of a map.
type item[K comparable, V any] struct {
	Key   K
	Value V
}

// items is a sorted slice of item, with accessors for the parts callers
// usually want without reconstructing a map.
type items[K comparable, V any] []item[K, V]

// Keys returns the keys in sorted order.
func (items items[K, V]) Keys() []K {
	keys := make([]K, len(items))
	for i, it := range items {
		keys[i] = it.Key
	}
	return keys
}

// SortKey returns m's entries ordered ascending by key.
func SortKey[K Ordered, V any](m map[K]V) items[K, V] {
	out := make(items[K, V], 0, len(m))
	for k, v := range m {
		out = append(out, item[K, V]{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
