package vm

import (
	"fmt"
	"math"
	"unsafe"
)

// Immediate is a primitive value packed into a tagged machine word.
//
// The low two bits of a word are a type tag. Heap addresses handed out by
// the Heap are at least 4-byte aligned, so a word whose tag bits are 00 is
// always a cell reference and never an immediate:
//
//	cell:       [ object address ...................... ] 00
//	immediate:  [ IEEE-754 payload .................... ] TT
//
// The payload of every immediate is its numeric equivalent, whatever its
// kind: null and false carry the bits of 0.0, true carries the bits of 1.0
// and undefined carries the canonical NaN. In the narrow configuration the
// payload is a float32 held in the low 32 bits of the word.
type Immediate uint64

// Tag is the two-bit type discriminator stored in the low bits of a word.
type Tag uint8

// Tag assignments. Four kinds share three free codes, so null and
// undefined share TagNullish and are told apart by payload.
const (
	TagCell    Tag = 0
	TagNullish Tag = 1
	TagBoolean Tag = 2
	TagNumber  Tag = 3
)

// TagMask selects the tag bits of a word.
const TagMask uint64 = 3

const (
	tagNullish uint64 = uint64(TagNullish)
	tagBoolean uint64 = uint64(TagBoolean)
	tagNumber  uint64 = uint64(TagNumber)
)

func (t Tag) String() string {
	switch t {
	case TagCell:
		return "cell"
	case TagNullish:
		return "nullish"
	case TagBoolean:
		return "boolean"
	case TagNumber:
		return "number"
	default:
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
}

// ---------------------------------------------------------------------------
// Tag space
// ---------------------------------------------------------------------------

// Tag returns the tag bits of v.
func (v Immediate) Tag() Tag {
	return Tag(uint64(v) & TagMask)
}

// Payload returns the bits of v above the tag, with the tag bits cleared.
func (v Immediate) Payload() uint64 {
	return uint64(v) &^ TagMask
}

// IsImmediate reports whether the tag bits of v are nonzero.
func (v Immediate) IsImmediate() bool {
	return uint64(v)&TagMask != 0
}

// IsNumber reports whether v carries the number tag.
func (v Immediate) IsNumber() bool {
	return uint64(v)&TagMask == tagNumber
}

// IsBoolean reports whether v carries the boolean tag.
func (v Immediate) IsBoolean() bool {
	return uint64(v)&TagMask == tagBoolean
}

// IsNullOrUndefined reports whether v carries the shared null/undefined
// tag. It does not tell the two apart; use Kind for that.
func (v Immediate) IsNullOrUndefined() bool {
	return uint64(v)&TagMask == tagNullish
}

// Kind fully discriminates v. A word with a zero tag is reported as
// KindCell. For the shared nullish tag an all-zero payload is null and
// any other payload (canonically NaN) is undefined.
func (v Immediate) Kind() Kind {
	switch v.Tag() {
	case TagNumber:
		return KindNumber
	case TagBoolean:
		return KindBoolean
	case TagNullish:
		if v.Payload() == 0 {
			return KindNull
		}
		return KindUndefined
	default:
		return KindCell
	}
}

func (v Immediate) String() string {
	return fmt.Sprintf("%s(%#x)", v.Kind(), uint64(v))
}

// ---------------------------------------------------------------------------
// Value handles
// ---------------------------------------------------------------------------

// Value is the handle the rest of the machine passes around: either a
// reference to a heap cell or an immediate. The zero Value is neither and
// is not a valid handle.
type Value struct {
	obj *Object
	imm Immediate
}

// FromImmediate wraps an immediate in a handle.
// Panics if v has a zero tag.
func FromImmediate(v Immediate) Value {
	mustImmediate("FromImmediate", v)
	return Value{imm: v}
}

// FromCell wraps a heap object in a handle.
// Panics if obj is nil.
func FromCell(obj *Object) Value {
	if obj == nil {
		panic(&PreconditionError{Op: "FromCell", Err: ErrNilCell})
	}
	return Value{obj: obj}
}

// IsCell reports whether v references a heap object.
func (v Value) IsCell() bool {
	return v.obj != nil
}

// IsImmediate reports whether v is an immediate.
func (v Value) IsImmediate() bool {
	return v.obj == nil && v.imm.IsImmediate()
}

// IsValid reports whether v is a cell or an immediate.
func (v Value) IsValid() bool {
	return v.obj != nil || v.imm.IsImmediate()
}

// IsNumber reports whether v is an immediate number. Boxed numbers are
// cells; see Number.
func (v Value) IsNumber() bool {
	return v.obj == nil && v.imm.IsNumber()
}

// IsBoolean reports whether v is a boolean immediate.
func (v Value) IsBoolean() bool {
	return v.obj == nil && v.imm.IsBoolean()
}

// IsNullOrUndefined reports whether v is null or undefined.
func (v Value) IsNullOrUndefined() bool {
	return v.obj == nil && v.imm.IsNullOrUndefined()
}

// Cell returns the referenced object.
// Panics if v is not a cell.
func (v Value) Cell() *Object {
	if v.obj == nil {
		panic(&PreconditionError{Op: "Value.Cell", Word: uint64(v.imm), Err: ErrNotCell})
	}
	return v.obj
}

// Immediate returns the immediate held by v.
// Panics if v is not an immediate.
func (v Value) Immediate() Immediate {
	if !v.IsImmediate() {
		panic(&PreconditionError{Op: "Value.Immediate", Word: v.Word(), Err: ErrNotImmediate})
	}
	return v.imm
}

// Word returns the machine word for v: the object address for a cell
// (always with tag bits 00) or the tagged immediate.
func (v Value) Word() uint64 {
	if v.obj != nil {
		return addressOf(v.obj)
	}
	return uint64(v.imm)
}

// Kind discriminates v.
// Panics on the zero Value.
func (v Value) Kind() Kind {
	if v.obj != nil {
		return KindCell
	}
	return v.Immediate().Kind()
}

// KindOf discriminates v. It is the handle-level form of Immediate.Kind.
func KindOf(v Value) Kind {
	return v.Kind()
}

// Truthy evaluates v in a boolean context. Cells are always truthy,
// except boxed numbers, which follow the numeric rule.
func (v Value) Truthy() bool {
	if v.obj != nil {
		if v.obj.class == ClassHeapNumber {
			d := v.obj.number
			return d != 0 && !math.IsNaN(d)
		}
		return true
	}
	return ToBoolean(v.Immediate())
}

func (v Value) String() string {
	if v.obj != nil {
		return fmt.Sprintf("Cell(%s@%#x)", v.obj.class, addressOf(v.obj))
	}
	if !v.imm.IsImmediate() {
		return "Value(invalid)"
	}
	return v.imm.String()
}

func addressOf(obj *Object) uint64 {
	return uint64(uintptr(unsafe.Pointer(obj)))
}
