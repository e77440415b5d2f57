package slab

import "fmt"
import "unsafe"

// StackAllocator allocates cells in last-allocated-first-freed order
// over a chain of slabs borrowed from a SlabManager. The allocator
// never owns slabs, it borrows on demand and returns them on Release,
// Reclaim or Close. Cell addresses are stable until the cell is
// popped or the chain is released, no compaction or relocation ever
// occurs. Not thread safe, and the manager must outlive the
// allocator.
type StackAllocator[T any] struct {
	curpos    int64    // index of the next free cell in stackhead
	stackhead *slab[T] // topmost slab holding live cells
	start     *slab[T] // first slab in the chain
	man       *SlabManager[T]
	dtor      func(*T)
	logprefix string
}

// NewStackAllocator create a new stack-discipline allocator borrowing
// slabs from man. dtor, when non-nil, is the element finalizer run by
// Reclaim, leave it nil for elements that need no finalization.
// Returns nil when the manager cannot supply the first slab.
func NewStackAllocator[T any](
	name string, man *SlabManager[T], dtor func(*T)) *StackAllocator[T] {

	sl := man.getslab()
	if sl == nil {
		return nil
	}
	sa := &StackAllocator[T]{start: sl, stackhead: sl, man: man, dtor: dtor}
	sa.logprefix = fmt.Sprintf("stackalloc [%s]", name)
	return sa
}

// Alloc returns the next free cell, nil when the manager cannot
// supply a slab. The returned address stays fixed until the cell is
// popped or the chain is released.
func (sa *StackAllocator[T]) Alloc() *T {
	if sa.curpos == int64(len(sa.stackhead.data)) {
		return sa.incslab()
	}
	ptr := &sa.stackhead.data[sa.curpos]
	sa.curpos++
	return ptr
}

// incslab crosses into the next slab. A forward-linked slab left
// behind by Pop is reused before going back to the manager, which
// amortizes manager round-trips during alloc/pop churn.
func (sa *StackAllocator[T]) incslab() *T {
	next := sa.stackhead.next
	if next == nil {
		if next = sa.man.getslab(); next == nil {
			return nil
		}
		next.prev = sa.stackhead
		sa.stackhead.next = next
	}
	sa.stackhead = next
	sa.curpos = 1
	return &next.data[0]
}

// Pop removes the most recently allocated cell. When the cursor sits
// at the start of a non-first slab the emptied slab is kept forward
// linked, not returned to the manager, and the cursor moves to the
// last cell of the previous slab. Popping past the first cell of the
// first slab violates the stack contract and is not checked.
func (sa *StackAllocator[T]) Pop() {
	if sa.curpos == 0 {
		if sa.stackhead != sa.start {
			sa.stackhead = sa.stackhead.prev
			sa.curpos = int64(len(sa.stackhead.data)) - 1
		}
		return
	}
	sa.curpos--
}

// Release returns every slab after the first to the manager and
// resets the cursor to the start of the first slab. Finalizers are
// not run, callers should have finalized live cells already or the
// element needs none.
func (sa *StackAllocator[T]) Release() {
	sl := sa.start.next
	for sl != nil {
		next := sl.next
		sa.man.returnslab(sl)
		sl = next
	}
	sa.start.next = nil
	sa.stackhead = sa.start
	sa.curpos = 0
}

// Reclaim runs the element finalizer over every live cell, in forward
// allocation order across the whole chain, full range for interior
// slabs and [0, cursor) for the topmost. Then behaves as Release.
func (sa *StackAllocator[T]) Reclaim() {
	if sa.dtor != nil {
		for sl := sa.start; sl != sa.stackhead; sl = sl.next {
			sa.dtorcells(sl.data)
		}
		sa.dtorcells(sa.stackhead.data[:sa.curpos])
	}
	sa.Release()
}

// Close tears the allocator down, returning every slab including the
// first to the manager. Callers needing finalizer semantics call
// Reclaim before Close. The allocator cannot be used afterwards.
func (sa *StackAllocator[T]) Close() {
	sa.Release()
	sa.man.returnslab(sa.start)
	sa.start, sa.stackhead = nil, nil
	debugf("%v closed\n", sa.logprefix)
}

func (sa *StackAllocator[T]) dtorcells(cells []T) {
	for i := range cells {
		sa.dtor(&cells[i])
	}
}

//---- statistics.

// Info return memory accounting for this allocator's slab chain,
// including slabs kept forward linked past the cursor.
func (sa *StackAllocator[T]) Info() (capacity, heap, alloc, overhead int64) {
	var zero T
	tsize := int64(unsafe.Sizeof(zero))
	slabbytes := sa.man.slabsize * tsize
	for sl := sa.start; sl != nil; sl = sl.next {
		heap += slabbytes
		overhead += int64(unsafe.Sizeof(*sl))
	}
	capacity = heap
	for sl := sa.start; sl != sa.stackhead; sl = sl.next {
		alloc += slabbytes
	}
	alloc += sa.curpos * tsize
	overhead += int64(unsafe.Sizeof(*sa))
	return
}
