package vm

import "fmt"

// Allocator is the part of the heap that primitive conversions need.
type Allocator interface {
	Boxer
	Alloc(class Class) *Object
}

// ---------------------------------------------------------------------------
// Numbers
// ---------------------------------------------------------------------------

// NumberValue returns d as an immediate when it fits, otherwise as a heap
// number allocated by b.
func NumberValue(b Boxer, d float64) Value {
	if v, ok := EncodeNumber(d); ok {
		return Value{imm: v}
	}
	return FromCell(b.BoxNumber(d))
}

// Number returns the numeric value of an immediate number or a heap
// number. ok is false for every other kind.
func (v Value) Number() (d float64, ok bool) {
	if v.obj != nil {
		if v.obj.class == ClassHeapNumber {
			return v.obj.number, true
		}
		return 0, false
	}
	if !v.imm.IsNumber() {
		return 0, false
	}
	return DecodeNumber(v.imm), true
}

// ToNumber converts any immediate to a number. Because every payload is
// the value's numeric equivalent this is the payload itself: null and
// false are 0, true is 1 and undefined is NaN.
// Panics if v is not an immediate.
func ToNumber(v Immediate) float64 {
	return DecodeNumber(v)
}

// ---------------------------------------------------------------------------
// Objects
// ---------------------------------------------------------------------------

// ToObject wraps a number or boolean immediate in a wrapper object.
// Null and undefined have no wrapper and yield ErrNotCoercible.
// Panics if v is not an immediate.
func ToObject(v Immediate, a Allocator) (*Object, error) {
	mustImmediate("ToObject", v)

	var obj *Object
	switch v.Kind() {
	case KindNumber:
		obj = a.Alloc(ClassNumberObject)
	case KindBoolean:
		obj = a.Alloc(ClassBooleanObject)
	default:
		return nil, fmt.Errorf("ToObject %s: %w", v.Kind(), ErrNotCoercible)
	}
	obj.primitive = Value{imm: v}
	return obj, nil
}

// ToObject converts v to an object. Plain and wrapper objects are
// returned as-is, heap numbers are wrapped like immediate numbers.
func (v Value) ToObject(a Allocator) (*Object, error) {
	if v.obj == nil {
		return ToObject(v.Immediate(), a)
	}
	if v.obj.class != ClassHeapNumber {
		return v.obj, nil
	}
	obj := a.Alloc(ClassNumberObject)
	obj.primitive = v
	return obj, nil
}

// ---------------------------------------------------------------------------
// Strings
// ---------------------------------------------------------------------------

// ToString renders an immediate the way the language's String conversion
// does.
// Panics if v is not an immediate.
func ToString(v Immediate) string {
	return ToStringWith(Active(), v)
}

// ToStringWith renders an immediate using the payload layout of c.
func ToStringWith(c Codec, v Immediate) string {
	mustImmediate("ToString", v)

	switch v.Kind() {
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindBoolean:
		if c.ToBoolean(v) {
			return "true"
		}
		return "false"
	default:
		return FormatNumber(c.DecodeNumber(v))
	}
}

// ToString renders any handle.
func (v Value) ToString() string {
	if v.obj == nil {
		return ToString(v.Immediate())
	}
	switch v.obj.class {
	case ClassHeapNumber:
		return FormatNumber(v.obj.number)
	case ClassNumberObject, ClassBooleanObject:
		return v.obj.primitive.ToString()
	default:
		return "[object Object]"
	}
}

// TypeOf returns the result of the language's typeof operator for v.
func TypeOf(v Value) string {
	if v.obj != nil {
		if v.obj.class == ClassHeapNumber {
			return "number"
		}
		return "object"
	}
	switch v.Kind() {
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindUndefined:
		return "undefined"
	default:
		return "object"
	}
}
