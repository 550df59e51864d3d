package fj

// Type is the kind of JSON value a Context holds.
//
// Order matters: Null < False < Number < String < True < Array < Object is
// an observable property (Context.Less depends on it), not just a listing.
type Type int

const (
	// Null is the JSON null literal.
	Null Type = iota
	// False is the JSON false literal.
	False
	// Number is any JSON numeric literal.
	Number
	// String is a JSON string.
	String
	// True is the JSON true literal.
	True
	// Array is a JSON array.
	Array
	// Object is a JSON object.
	Object
)

// String returns the canonical name of t, mostly useful for debugging and
// %v formatting.
func (t Type) String() string {
	switch t {
	case Null:
		return "Null"
	case False:
		return "False"
	case Number:
		return "Number"
	case String:
		return "String"
	case True:
		return "True"
	case Array:
		return "Array"
	case Object:
		return "Object"
	default:
		return ""
	}
}

// Context is the result of a Get call: a view into the input JSON (or, for
// synthesized results such as multipaths and modifier output, freshly
// allocated bytes) plus enough metadata to interpret it without rescanning.
//
// A Context returned from a borrowed match shares memory with its input; the
// caller must keep that input alive for as long as it uses raw/str. A
// Context built by the composer or a modifier owns its bytes outright.
type Context struct {
	kind Type
	raw  string // the exact JSON token this Context denotes
	str  string // decoded value for String kind; cached "true"/"false" text is not stored here
	num  float64

	idx  int   // byte offset of raw within the root document; 0 if unknown or synthesized
	idxs []int // offsets of each match, populated only for "#(...)#"-style multi-match results

	esc  bool // raw (a String) contains at least one backslash
	sign bool // raw (a Number) began with '-'
	dot  bool // raw (a Number) contains a '.'
	exp  bool // raw (a Number) contains an exponent marker

	err error // set only by collaborators with an actual failure mode (ParseReader, ParseJSONFile)
}

// path is a single parsed step of a dot/pipe-separated path expression.
//
// It mirrors the "Path" cursor described for this engine: comp is the
// current component's literal bytes (before any unescaping), sep records how
// the *next* component is joined ('.' descend, '|' pipe, 0 if this is the
// last component), esc/pat flag whether comp needs unescaping or glob
// matching, marg is the byte offset of the ':' that splits a modifier name
// from its argument (-1 if absent), and extra is the modifier argument text
// after that ':' (empty if absent).
type path struct {
	comp string
	sep  byte
	esc  bool
	pat  bool
	marg int
	extra string
}

// query describes a parsed `#(lh OP rh)` predicate.
type query struct {
	on     bool   // a query is present at all
	all    bool   // "#(...)#" (every match) vs "#(...)" (first match)
	lhPath string // path to evaluate against each candidate element, relative to the element
	op     string // "", "=", "!=", "<", "<=", ">", ">=", "%", "!%"
	rh     string // raw right-hand literal, not yet unquoted/unescaped
}

// selector is one sub-path of a multipath ([...]/{...}) composer, with an
// optional explicit "name:" key for the object form.
type selector struct {
	name string
	path string
}
