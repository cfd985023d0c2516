package vm

// IEEE-754 payloads used by the canonical immediates.
const (
	zeroBits uint64 = 0

	wideOneBits uint64 = 0x3ff0 << 48
	wideNaNBits uint64 = 0x7ff8 << 48

	narrowOneBits uint64 = 0x3f800000
	narrowNaNBits uint64 = 0x7fc00000
)

// Canonical immediates of the 64-bit configuration. These are built from
// tag and payload constants directly rather than through EncodeNumber so
// they stay compile-time constants.
const (
	WideTrue      = Immediate(wideOneBits | tagBoolean)
	WideFalse     = Immediate(zeroBits | tagBoolean)
	WideNaN       = Immediate(wideNaNBits | tagNumber)
	WideUndefined = Immediate(wideNaNBits | tagNullish)
	WideNull      = Immediate(zeroBits | tagNullish)
)

// Canonical immediates of the 32-bit configuration.
const (
	NarrowTrue      = Immediate(narrowOneBits | tagBoolean)
	NarrowFalse     = Immediate(zeroBits | tagBoolean)
	NarrowNaN       = Immediate(narrowNaNBits | tagNumber)
	NarrowUndefined = Immediate(narrowNaNBits | tagNullish)
	NarrowNull      = Immediate(zeroBits | tagNullish)
)

// TrueValue returns the handle for true.
func TrueValue() Value { return Value{imm: True} }

// FalseValue returns the handle for false.
func FalseValue() Value { return Value{imm: False} }

// NaNValue returns the handle for the canonical numeric NaN.
func NaNValue() Value { return Value{imm: NaN} }

// UndefinedValue returns the handle for undefined.
func UndefinedValue() Value { return Value{imm: Undefined} }

// NullValue returns the handle for null.
func NullValue() Value { return Value{imm: Null} }

// BoolValue returns TrueValue or FalseValue.
func BoolValue(b bool) Value {
	if b {
		return Value{imm: True}
	}
	return Value{imm: False}
}
