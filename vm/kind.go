package vm

import "fmt"

// Kind is the logical type of a value handle.
type Kind uint8

const (
	KindCell Kind = iota
	KindUndefined
	KindBoolean
	KindNumber
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindCell:
		return "Cell"
	case KindUndefined:
		return "Undefined"
	case KindBoolean:
		return "Boolean"
	case KindNumber:
		return "Number"
	case KindNull:
		return "Null"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}
