package vm

import (
	"errors"
	"fmt"
)

var (
	// ErrNotImmediate is wrapped by the fault raised when an operation
	// that requires an immediate is handed a cell or an untagged word.
	ErrNotImmediate = errors.New("not an immediate")

	// ErrNotCell is wrapped by the fault raised when a cell accessor is
	// used on an immediate.
	ErrNotCell = errors.New("not a cell reference")

	// ErrNilCell is wrapped by the fault raised when a nil object is
	// wrapped as a cell reference.
	ErrNilCell = errors.New("nil cell reference")

	// ErrMisaligned is wrapped by the fault raised when the heap hands out
	// an address whose tag bits are not 00.
	ErrMisaligned = errors.New("cell address is not tag-aligned")

	// ErrNotCoercible is returned when null or undefined is converted to
	// an object.
	ErrNotCoercible = errors.New("cannot convert null or undefined to object")
)

// PreconditionError is the panic value for caller programming errors,
// such as decoding a word that is not an immediate. There is no recovery
// from these; they are raised so that a meaningless bit pattern is never
// returned as if it were a valid value.
type PreconditionError struct {
	Op   string
	Word uint64
	Err  error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("vm: %s: %#x: %v", e.Op, e.Word, e.Err)
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

func mustImmediate(op string, v Immediate) {
	if !v.IsImmediate() {
		panic(&PreconditionError{Op: op, Word: uint64(v), Err: ErrNotImmediate})
	}
}
