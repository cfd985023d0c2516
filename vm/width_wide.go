//go:build !immediate32

package vm

// WordBits is the width of an immediate word in this build.
const WordBits = 64

type activeCodec = wideCodec

// Canonical immediates for this build.
const (
	True      = WideTrue
	False     = WideFalse
	NaN       = WideNaN
	Undefined = WideUndefined
	Null      = WideNull
)
