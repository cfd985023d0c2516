//go:build immediate32

package vm

// WordBits is the width of an immediate word in this build.
const WordBits = 32

type activeCodec = narrowCodec

// Canonical immediates for this build.
const (
	True      = NarrowTrue
	False     = NarrowFalse
	NaN       = NarrowNaN
	Undefined = NarrowUndefined
	Null      = NarrowNull
)
