package truncate

// Truncator truncates strings according to a fixed omission marker,
// position, and maximum length. Built once via NewTruncator()...Build() and
// safe for concurrent use since nothing mutates after construction.
type Truncator struct {
	omission  string
	position  Position
	maxLength int
}

// TruncatorBuilder accumulates Truncator configuration through chained
// With* calls, finished off with Build.
type TruncatorBuilder struct {
	omission  string
	position  Position
	maxLength int
}
