// Package wire serializes constant pools of value handles with CBOR.
//
// Immediates are stored as their raw tagged words, so a pool is only
// readable by a build with the same word width. Heap numbers are stored
// by value and re-boxed on load. Other cells have no persistent form.
package wire

import (
	"errors"
	"fmt"

	"github.com/chazu/tagword/vm"
	"github.com/fxamacker/cbor/v2"
)

// FormatVersion is the current pool format version.
const FormatVersion uint8 = 1

// EntryKind identifies how an Entry is stored.
type EntryKind uint8

const (
	EntryImmediate  EntryKind = 1
	EntryHeapNumber EntryKind = 2
)

// Entry is one constant.
type Entry struct {
	Kind   EntryKind `cbor:"1,keyasint"`
	Word   uint64    `cbor:"2,keyasint,omitempty"` // tagged immediate
	Number float64   `cbor:"3,keyasint"`           // heap number value
}

// Pool is an ordered list of constants plus the word width they were
// encoded with.
type Pool struct {
	Version uint8   `cbor:"1,keyasint"`
	Width   uint8   `cbor:"2,keyasint"`
	Entries []Entry `cbor:"3,keyasint"`
}

var (
	ErrUnsupportedCell = errors.New("wire: cell has no persistent form")
	ErrInvalidValue    = errors.New("wire: invalid value handle")
	ErrWidthMismatch   = errors.New("wire: word width mismatch")
	ErrBadEntry        = errors.New("wire: malformed entry")
)

var cborEncMode cbor.EncMode

func init() {
	opts := cbor.CanonicalEncOptions()
	// Heap numbers keep their exact NaN payloads.
	opts.NaNConvert = cbor.NaNConvertNone
	em, err := opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("wire: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// FromValues builds a pool for the active word width.
func FromValues(values []vm.Value) (*Pool, error) {
	p := &Pool{
		Version: FormatVersion,
		Width:   vm.WordBits,
		Entries: make([]Entry, 0, len(values)),
	}
	for i, v := range values {
		switch {
		case v.IsImmediate():
			p.Entries = append(p.Entries, Entry{Kind: EntryImmediate, Word: uint64(v.Immediate())})
		case v.IsCell():
			d, ok := v.Number()
			if !ok {
				return nil, fmt.Errorf("wire: constant %d (%s): %w", i, v.Cell().Class(), ErrUnsupportedCell)
			}
			p.Entries = append(p.Entries, Entry{Kind: EntryHeapNumber, Number: d})
		default:
			return nil, fmt.Errorf("wire: constant %d: %w", i, ErrInvalidValue)
		}
	}
	return p, nil
}

// Values rebuilds the handles in p, boxing heap numbers with b.
func (p *Pool) Values(b vm.Boxer) []vm.Value {
	out := make([]vm.Value, len(p.Entries))
	for i, e := range p.Entries {
		if e.Kind == EntryHeapNumber {
			out[i] = vm.FromCell(b.BoxNumber(e.Number))
			continue
		}
		out[i] = vm.FromImmediate(vm.Immediate(e.Word))
	}
	return out
}

// Marshal serializes p to canonical CBOR.
func Marshal(p *Pool) ([]byte, error) {
	return cborEncMode.Marshal(p)
}

// Unmarshal deserializes and validates a pool. Pools written by a build
// with a different word width are rejected, as are immediate entries
// whose word is untagged or too wide for the configuration.
func Unmarshal(data []byte) (*Pool, error) {
	var p Pool
	if err := cbor.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("wire: unmarshal pool: %w", err)
	}
	if p.Version != FormatVersion {
		return nil, fmt.Errorf("wire: unsupported pool version %d", p.Version)
	}
	if p.Width != vm.WordBits {
		return nil, fmt.Errorf("%w: pool has %d-bit words, build has %d", ErrWidthMismatch, p.Width, vm.WordBits)
	}
	for i, e := range p.Entries {
		if err := validateEntry(e, p.Width); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return &p, nil
}

func validateEntry(e Entry, width uint8) error {
	switch e.Kind {
	case EntryImmediate:
		if !vm.Immediate(e.Word).IsImmediate() {
			return fmt.Errorf("%w: untagged word %#x", ErrBadEntry, e.Word)
		}
		if width == 32 && e.Word>>32 != 0 {
			return fmt.Errorf("%w: word %#x exceeds 32 bits", ErrBadEntry, e.Word)
		}
	case EntryHeapNumber:
	default:
		return fmt.Errorf("%w: kind %d", ErrBadEntry, e.Kind)
	}
	return nil
}
