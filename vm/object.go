package vm

import "fmt"

// Class identifies what a heap Object is. The object model proper
// (properties, prototypes) lives outside this package; an Object here only
// carries what the primitive layer needs to box and wrap values.
type Class uint8

const (
	// ClassObject is a plain object.
	ClassObject Class = iota

	// ClassHeapNumber is a number that did not fit in an immediate. It is
	// still a primitive number, just stored on the heap.
	ClassHeapNumber

	// ClassNumberObject wraps a number primitive.
	ClassNumberObject

	// ClassBooleanObject wraps a boolean primitive.
	ClassBooleanObject
)

func (c Class) String() string {
	switch c {
	case ClassObject:
		return "Object"
	case ClassHeapNumber:
		return "HeapNumber"
	case ClassNumberObject:
		return "Number"
	case ClassBooleanObject:
		return "Boolean"
	default:
		return fmt.Sprintf("Class(%d)", uint8(c))
	}
}

// Object is a heap-allocated cell.
type Object struct {
	class Class

	// number holds the value of a ClassHeapNumber.
	number float64

	// primitive holds the value wrapped by a Number or Boolean object.
	primitive Value
}

// Class returns the object's class.
func (o *Object) Class() Class {
	return o.class
}

// PrimitiveValue returns the primitive wrapped by a Number or Boolean
// object, or the number held by a heap number.
// Returns false for plain objects.
func (o *Object) PrimitiveValue() (Value, bool) {
	switch o.class {
	case ClassHeapNumber:
		return FromCell(o), true
	case ClassNumberObject, ClassBooleanObject:
		return o.primitive, true
	default:
		return Value{}, false
	}
}
