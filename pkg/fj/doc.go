// Package fj is a single-pass JSON path query engine: it scans JSON bytes
// directly, without building a parse tree, advancing past structural tokens
// until the requested value is found and returning it as a slice of the
// input wherever possible.
//
// # Path syntax
//
//	user.name                          → object field access
//	roles.0                            → array index access
//	roles.#                            → array length
//	roles.#.name                       → project a field across every element
//	roles.#(role=="admin")             → first element matching a query
//	roles.#(role=="admin")#            → every element matching a query
//	name.@string                       → built-in modifier
//	name.@pretty:{"indent":"\t"}       → modifier with a JSON argument
//	{id,name}                          → multipath object
//	[id,name]                          → multipath array
//	..#                                → JSON-lines element count
//
// # Basic usage
//
//	ctx := fj.Get(json, `friends.#(last=="Murphy").age`)
//	fmt.Println(ctx.Int())
//
// fj has no error channel: every failure is an observable absence
// (Context.Exists reports false). Malformed JSON input must not panic, but
// the result is unspecified; gate untrusted input with Valid first.
//
// fj is safe for concurrent use: a Get call touches no shared mutable state
// beyond the modifier registry, whose reads and AddTransformer writes are
// guarded by a lock.
package fj
