package vm

import "math"

// Codec converts between float64 and numeric immediates for one
// word-width configuration.
//
// The package-level EncodeNumber, DecodeNumber and ToBoolean are bound at
// build time to the active configuration. Wide and Narrow expose both
// implementations for tools and tests that need to look at either.
type Codec interface {
	// WordBits is the width of the immediate word: 64 or 32.
	WordBits() int

	// EncodeNumber packs d into a numeric immediate. ok is false when d
	// cannot be represented without losing bits; the caller must box it.
	EncodeNumber(d float64) (v Immediate, ok bool)

	// DecodeNumber reinterprets the payload of v as a number.
	// Panics if v is not an immediate.
	DecodeNumber(v Immediate) float64

	// ToBoolean evaluates v in a boolean context.
	// Panics if v is not an immediate.
	ToBoolean(v Immediate) bool

	// Singletons returns the canonical constants for this width.
	Singletons() Singletons
}

// Singletons holds the canonical immediates of one configuration.
type Singletons struct {
	True      Immediate
	False     Immediate
	NaN       Immediate
	Undefined Immediate
	Null      Immediate
}

var (
	// Wide is the 64-bit configuration: the payload is a float64.
	Wide Codec = wideCodec{}

	// Narrow is the 32-bit configuration: the payload is a float32.
	Narrow Codec = narrowCodec{}
)

// Active returns the codec selected for this build.
func Active() Codec {
	return activeCodec{}
}

// EncodeNumber packs d into a numeric immediate using the active
// configuration. ok is false when d must be boxed instead.
func EncodeNumber(d float64) (v Immediate, ok bool) {
	return activeCodec{}.EncodeNumber(d)
}

// DecodeNumber returns the numeric payload of v.
// Panics if v is not an immediate.
func DecodeNumber(v Immediate) float64 {
	return activeCodec{}.DecodeNumber(v)
}

// ToBoolean evaluates v in a boolean context: ±0 and NaN payloads are
// false, everything else is true. This covers every kind at once since
// null, false and undefined carry 0.0 or NaN payloads.
// Panics if v is not an immediate.
func ToBoolean(v Immediate) bool {
	return activeCodec{}.ToBoolean(v)
}

// ---------------------------------------------------------------------------
// Wide (64-bit) configuration
// ---------------------------------------------------------------------------

type wideCodec struct{}

func (wideCodec) WordBits() int { return 64 }

func (wideCodec) EncodeNumber(d float64) (Immediate, bool) {
	bits := math.Float64bits(d)

	// The tag would overwrite these.
	if bits&TagMask != 0 {
		return 0, false
	}
	return Immediate(bits | tagNumber), true
}

func (wideCodec) DecodeNumber(v Immediate) float64 {
	mustImmediate("DecodeNumber", v)
	return math.Float64frombits(v.Payload())
}

func (wideCodec) ToBoolean(v Immediate) bool {
	mustImmediate("ToBoolean", v)
	bits := v.Payload()
	if bits<<1 == 0 { // -0.0 only has the sign bit set
		return false
	}
	return bits != wideNaNBits
}

func (wideCodec) Singletons() Singletons {
	return Singletons{
		True:      WideTrue,
		False:     WideFalse,
		NaN:       WideNaN,
		Undefined: WideUndefined,
		Null:      WideNull,
	}
}

// ---------------------------------------------------------------------------
// Narrow (32-bit) configuration
// ---------------------------------------------------------------------------

type narrowCodec struct{}

func (narrowCodec) WordBits() int { return 32 }

func (narrowCodec) EncodeNumber(d float64) (Immediate, bool) {
	f := float32(d)
	bits := math.Float32bits(f)

	// The tag would overwrite these.
	if uint64(bits)&TagMask != 0 {
		return 0, false
	}

	// Narrowing to float32 lost precision or range.
	if math.Float64bits(float64(f)) != math.Float64bits(d) {
		return 0, false
	}
	return Immediate(uint64(bits) | tagNumber), true
}

func (narrowCodec) DecodeNumber(v Immediate) float64 {
	mustImmediate("DecodeNumber", v)
	return float64(math.Float32frombits(uint32(v.Payload())))
}

func (narrowCodec) ToBoolean(v Immediate) bool {
	mustImmediate("ToBoolean", v)
	bits := uint32(v.Payload())
	if bits<<1 == 0 {
		return false
	}
	return uint64(bits) != narrowNaNBits
}

func (narrowCodec) Singletons() Singletons {
	return Singletons{
		True:      NarrowTrue,
		False:     NarrowFalse,
		NaN:       NarrowNaN,
		Undefined: NarrowUndefined,
		Null:      NarrowNull,
	}
}
