package fj

import "github.com/sivaosorg/unify4g"

// DisableTransformers turns off modifier ("@name") parsing entirely when
// set, so a path that happens to begin with '@' is treated as a literal key
// instead. Useful when paths come from an untrusted source and the embedder
// wants the fixed modifier set (and any custom ones registered via
// AddTransformer) to never run.
var DisableTransformers = false

// maxPrettyDepth bounds the pretty-printer's recursion; past it the
// remainder of the document is emitted via Ugly instead of being walked
// structurally. Prevents adversarially deep input from blowing the stack.
const maxPrettyDepth = 500

// hexDigits is used by Escape when emitting \uXXXX sequences.
var hexDigits = [...]byte{
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
	'a', 'b', 'c', 'd', 'e', 'f',
}

// DefaultStyle is the color scheme StringColored falls back to when no
// explicit *unify4g.Style is given.
var DefaultStyle = &unify4g.Style{
	Key:      [2]string{"\033[1;34m", "\033[0m"},
	String:   [2]string{"\033[1;32m", "\033[0m"},
	Number:   [2]string{"\033[1;33m", "\033[0m"},
	True:     [2]string{"\033[1;35m", "\033[0m"},
	False:    [2]string{"\033[1;35m", "\033[0m"},
	Null:     [2]string{"\033[1;35m", "\033[0m"},
	Escape:   [2]string{"\033[1;31m", "\033[0m"},
	Brackets: [2]string{"\033[1;37m", "\033[0m"},
	Append:   func(dst []byte, c byte) []byte { return append(dst, c) },
}

// DarkStyle uses darker, lower-contrast tones; a second named palette so
// callers aren't stuck with DefaultStyle.
var DarkStyle = &unify4g.Style{
	Key:      [2]string{"\033[38;5;25m", "\033[0m"},
	String:   [2]string{"\033[38;5;34m", "\033[0m"},
	Number:   [2]string{"\033[38;5;178m", "\033[0m"},
	True:     [2]string{"\033[38;5;127m", "\033[0m"},
	False:    [2]string{"\033[38;5;127m", "\033[0m"},
	Null:     [2]string{"\033[38;5;127m", "\033[0m"},
	Escape:   [2]string{"\033[38;5;124m", "\033[0m"},
	Brackets: [2]string{"\033[38;5;245m", "\033[0m"},
	Append:   func(dst []byte, c byte) []byte { return append(dst, c) },
}
