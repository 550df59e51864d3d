// Package encoding wraps the subset of encoding/json this module's
// modifier pipeline round-trips values through.
package encoding

import "encoding/json"

// Marshal converts a Go value into its JSON byte representation.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}
