package wire

import (
	"math"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/tagword/vm"
)

func TestPool_CBORRoundTrip(t *testing.T) {
	h := vm.NewHeap()
	values := []vm.Value{
		vm.NumberValue(h, 1),
		vm.NumberValue(h, 0.1), // boxed
		vm.TrueValue(),
		vm.FalseValue(),
		vm.NullValue(),
		vm.UndefinedValue(),
		vm.NaNValue(),
		vm.NumberValue(h, math.Inf(-1)),
		vm.NumberValue(h, math.NaN()), // boxed: low payload bit set
	}

	p, err := FromValues(values)
	require.NoError(t, err)
	assert.Equal(t, uint8(vm.WordBits), p.Width)

	data, err := Marshal(p)
	require.NoError(t, err)
	got, err := Unmarshal(data)
	require.NoError(t, err)

	h2 := vm.NewHeap()
	out := got.Values(h2)
	require.Len(t, out, len(values))
	for i, v := range values {
		if v.IsImmediate() {
			assert.Equal(t, v, out[i], "value %d", i)
			continue
		}
		want, _ := v.Number()
		d, ok := out[i].Number()
		assert.True(t, out[i].IsCell(), "value %d should reload boxed", i)
		assert.True(t, ok, "value %d should be a number", i)
		assert.Equal(t, math.Float64bits(want), math.Float64bits(d), "value %d bits", i)
	}
	assert.Equal(t, 2, h2.Stats().Live)
}

func TestMarshalIsDeterministic(t *testing.T) {
	p, err := FromValues([]vm.Value{vm.TrueValue(), vm.NullValue()})
	require.NoError(t, err)

	a, err := Marshal(p)
	require.NoError(t, err)
	b, err := Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestFromValuesRejectsCells(t *testing.T) {
	h := vm.NewHeap()
	_, err := FromValues([]vm.Value{vm.FromCell(h.Alloc(vm.ClassObject))})
	assert.ErrorIs(t, err, ErrUnsupportedCell)

	_, err = FromValues([]vm.Value{{}})
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestUnmarshalValidation(t *testing.T) {
	otherWidth := uint8(32)
	if vm.WordBits == 32 {
		otherWidth = 64
	}

	tests := []struct {
		name string
		pool Pool
		want error
	}{
		{
			name: "width mismatch",
			pool: Pool{Version: FormatVersion, Width: otherWidth},
			want: ErrWidthMismatch,
		},
		{
			name: "untagged word",
			pool: Pool{Version: FormatVersion, Width: vm.WordBits, Entries: []Entry{{Kind: EntryImmediate, Word: 0x1000}}},
			want: ErrBadEntry,
		},
		{
			name: "unknown kind",
			pool: Pool{Version: FormatVersion, Width: vm.WordBits, Entries: []Entry{{Kind: 9}}},
			want: ErrBadEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := cbor.Marshal(&tt.pool)
			require.NoError(t, err)
			_, err = Unmarshal(data)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Unmarshal([]byte{0xff, 0x00})
	assert.Error(t, err, "garbage input should fail")

	data, err := cbor.Marshal(&Pool{Version: 99, Width: vm.WordBits})
	require.NoError(t, err)
	_, err = Unmarshal(data)
	assert.Error(t, err, "unknown version should fail")
}
