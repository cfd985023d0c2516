package vm

import (
	"sync"

	"github.com/tliron/commonlog"
)

// Boxer allocates heap numbers for values that EncodeNumber rejects.
type Boxer interface {
	BoxNumber(d float64) *Object
}

// HeapStats is a snapshot of heap bookkeeping.
type HeapStats struct {
	Live      int
	Allocated uint64
	Collected uint64
}

// Heap allocates cells and keeps them reachable until they are released.
//
// Every address it hands out is checked against TagMask: the codec relies
// on cell words having tag bits 00, so a misaligned object is a fatal
// fault rather than something to paper over.
type Heap struct {
	mu        sync.Mutex
	live      map[*Object]struct{}
	released  map[*Object]struct{}
	allocated uint64
	collected uint64

	log commonlog.Logger
}

// NewHeap creates an empty heap.
func NewHeap() *Heap {
	return &Heap{
		live:     make(map[*Object]struct{}),
		released: make(map[*Object]struct{}),
		log:      commonlog.GetLogger("tagword.heap"),
	}
}

// Alloc allocates an object of the given class.
// Panics if the runtime returns an address with nonzero tag bits.
func (h *Heap) Alloc(class Class) *Object {
	obj := &Object{class: class}
	if addr := addressOf(obj); addr&TagMask != 0 {
		panic(&PreconditionError{Op: "Heap.Alloc", Word: addr, Err: ErrMisaligned})
	}

	h.mu.Lock()
	h.live[obj] = struct{}{}
	h.allocated++
	h.mu.Unlock()
	return obj
}

// BoxNumber allocates a heap number holding d.
func (h *Heap) BoxNumber(d float64) *Object {
	obj := h.Alloc(ClassHeapNumber)
	obj.number = d
	return obj
}

// Release marks obj as no longer referenced by the machine. It stays
// reachable until the next Collect.
func (h *Heap) Release(obj *Object) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.live[obj]; ok {
		h.released[obj] = struct{}{}
	}
}

// Collect drops released objects and returns how many were swept.
func (h *Heap) Collect() int {
	h.mu.Lock()
	n := len(h.released)
	for obj := range h.released {
		delete(h.live, obj)
	}
	clear(h.released)
	h.collected += uint64(n)
	live := len(h.live)
	h.mu.Unlock()

	h.log.Debugf("collected %d cells, %d live", n, live)
	return n
}

// Stats returns current heap counters.
func (h *Heap) Stats() HeapStats {
	h.mu.Lock()
	defer h.mu.Unlock()

	return HeapStats{
		Live:      len(h.live),
		Allocated: h.allocated,
		Collected: h.collected,
	}
}
