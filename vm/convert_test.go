package vm

import (
	"errors"
	"math"
	"testing"
)

func mustEncode(t *testing.T, d float64) Immediate {
	t.Helper()
	v, ok := EncodeNumber(d)
	if !ok {
		t.Fatalf("EncodeNumber(%v) failed", d)
	}
	return v
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		v    Immediate
		want float64
	}{
		{Null, 0},
		{False, 0},
		{True, 1},
		{mustEncode(t, 1.5), 1.5},
	}
	for _, tt := range tests {
		if got := ToNumber(tt.v); got != tt.want {
			t.Errorf("ToNumber(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
	if got := ToNumber(Undefined); !math.IsNaN(got) {
		t.Errorf("ToNumber(undefined) = %v, want NaN", got)
	}
}

func TestValueNumber(t *testing.T) {
	if d, ok := FromImmediate(mustEncode(t, -2)).Number(); !ok || d != -2 {
		t.Errorf("Number() = %v, %v; want -2, true", d, ok)
	}
	if _, ok := TrueValue().Number(); ok {
		t.Error("true should not be a number")
	}

	h := NewHeap()
	if _, ok := FromCell(h.Alloc(ClassObject)).Number(); ok {
		t.Error("plain object should not be a number")
	}
}

func TestToObject(t *testing.T) {
	h := NewHeap()

	obj, err := ToObject(mustEncode(t, 2), h)
	if err != nil {
		t.Fatalf("ToObject(2): %v", err)
	}
	if obj.Class() != ClassNumberObject {
		t.Errorf("ToObject(2) class = %v, want %v", obj.Class(), ClassNumberObject)
	}
	prim, ok := obj.PrimitiveValue()
	if !ok {
		t.Fatal("number wrapper has no primitive value")
	}
	if got := prim.ToString(); got != "2" {
		t.Errorf("primitive = %q, want \"2\"", got)
	}

	obj, err = ToObject(True, h)
	if err != nil {
		t.Fatalf("ToObject(true): %v", err)
	}
	if obj.Class() != ClassBooleanObject {
		t.Errorf("ToObject(true) class = %v, want %v", obj.Class(), ClassBooleanObject)
	}
	if got := FromCell(obj).ToString(); got != "true" {
		t.Errorf("boolean wrapper ToString = %q, want \"true\"", got)
	}

	for _, v := range []Immediate{Null, Undefined} {
		if _, err := ToObject(v, h); !errors.Is(err, ErrNotCoercible) {
			t.Errorf("ToObject(%v) error = %v, want ErrNotCoercible", v, err)
		}
	}

	expectPrecondition(t, ErrNotImmediate, func() { _, _ = ToObject(Immediate(0x10), h) })
}

func TestValueToObject(t *testing.T) {
	h := NewHeap()

	plain := h.Alloc(ClassObject)
	got, err := FromCell(plain).ToObject(h)
	if err != nil || got != plain {
		t.Errorf("plain object ToObject = %p, %v; want %p", got, err, plain)
	}

	boxed := NumberValue(h, 0.1)
	wrapper, err := boxed.ToObject(h)
	if err != nil {
		t.Fatalf("boxed ToObject: %v", err)
	}
	if wrapper.Class() != ClassNumberObject {
		t.Errorf("boxed wrapper class = %v, want %v", wrapper.Class(), ClassNumberObject)
	}
	if s := FromCell(wrapper).ToString(); s != "0.1" {
		t.Errorf("boxed wrapper ToString = %q, want \"0.1\"", s)
	}

	if _, err := NullValue().ToObject(h); !errors.Is(err, ErrNotCoercible) {
		t.Errorf("null ToObject error = %v, want ErrNotCoercible", err)
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		v    Immediate
		want string
	}{
		{Null, "null"},
		{Undefined, "undefined"},
		{True, "true"},
		{False, "false"},
		{NaN, "NaN"},
		{mustEncode(t, 0), "0"},
		{mustEncode(t, math.Copysign(0, -1)), "0"},
		{mustEncode(t, 1), "1"},
		{mustEncode(t, -0.5), "-0.5"},
		{mustEncode(t, math.Inf(1)), "Infinity"},
	}
	for _, tt := range tests {
		if got := ToString(tt.v); got != tt.want {
			t.Errorf("ToString(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}

	// The narrow payload is read as float32.
	v, ok := Narrow.EncodeNumber(0.75)
	if !ok {
		t.Fatal("narrow EncodeNumber(0.75) failed")
	}
	if got := ToStringWith(Narrow, v); got != "0.75" {
		t.Errorf("narrow ToString(0.75) = %q", got)
	}
	if got := ToStringWith(Narrow, NarrowTrue); got != "true" {
		t.Errorf("narrow ToString(true) = %q", got)
	}
}

func TestValueToStringPlainObject(t *testing.T) {
	h := NewHeap()
	if got := FromCell(h.Alloc(ClassObject)).ToString(); got != "[object Object]" {
		t.Errorf("plain object ToString = %q", got)
	}
}

func TestTypeOf(t *testing.T) {
	h := NewHeap()
	tests := []struct {
		v    Value
		want string
	}{
		{FromImmediate(mustEncode(t, 3)), "number"},
		{NaNValue(), "number"},
		{TrueValue(), "boolean"},
		{UndefinedValue(), "undefined"},
		{NullValue(), "object"},
		{NumberValue(h, 0.1), "number"},
		{NumberValue(h, math.NaN()), "number"},
		{FromCell(h.Alloc(ClassObject)), "object"},
	}
	for _, tt := range tests {
		if got := TypeOf(tt.v); got != tt.want {
			t.Errorf("TypeOf(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
