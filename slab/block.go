package slab

import "fmt"
import "unsafe"

import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"

// BlockAllocator hands out fixed-size cells in arbitrary alloc/free
// order from slabs it owns outright. Slabs are never shared with a
// SlabManager and are given back to the runtime only on Clear,
// individual cells recycle through a LIFO free list. Not thread safe.
type BlockAllocator[T any] struct {
	freelist []*T  // LIFO stack of free cells
	slabs    [][]T // every slab carved by this instance

	// settings
	slabsize int64
	capacity int64 // ceiling, in bytes, on slab memory
	dtor     func(*T)

	name      string
	logprefix string
}

// NewBlockAllocator create a new free-list allocator. dtor, when
// non-nil, is the element finalizer run by Destroy. Supplied settings
// are mixed over Defaultsettings(), "alignment" is ignored here.
func NewBlockAllocator[T any](
	name string, setts s.Settings, dtor func(*T)) *BlockAllocator[T] {

	ba := &BlockAllocator[T]{name: name, dtor: dtor}
	ba.logprefix = fmt.Sprintf("blockalloc [%s]", name)
	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	ba.slabsize = setts.Int64("slabsize")
	ba.capacity = setts.Int64("capacity")
	if ba.slabsize < 1 {
		panicerr("%v slabsize %v should be >= 1", ba.logprefix, ba.slabsize)
	}
	return ba
}

// Alloc returns a free cell, carving a fresh slab when the free list
// is exhausted. Returns nil when a fresh slab would cross the
// capacity ceiling, the only failure mode.
func (ba *BlockAllocator[T]) Alloc() *T {
	if n := len(ba.freelist); n > 0 {
		ptr := ba.freelist[n-1]
		ba.freelist = ba.freelist[:n-1]
		return ptr
	}
	return ba.addslab()
}

// addslab carves one slab, threads all but one of its cells onto the
// free list and returns the remaining cell.
func (ba *BlockAllocator[T]) addslab() *T {
	if (int64(len(ba.slabs))+1)*ba.slabbytes() > ba.capacity {
		return nil
	}
	cells := make([]T, ba.slabsize)
	ba.slabs = append(ba.slabs, cells)
	for i := ba.slabsize - 1; i > 0; i-- {
		ba.freelist = append(ba.freelist, &cells[i])
	}
	return &cells[0]
}

// Free pushes ptr back on the free list without running the
// finalizer, callers should have finalized the cell already or the
// element needs none. A nil ptr is a no-op. The most recently freed
// cell is handed out first.
func (ba *BlockAllocator[T]) Free(ptr *T) {
	if ptr == nil {
		return
	}
	ba.freelist = append(ba.freelist, ptr)
}

// Destroy runs the element finalizer on ptr and then frees it back to
// the free list. A nil ptr is a no-op.
func (ba *BlockAllocator[T]) Destroy(ptr *T) {
	if ptr == nil {
		return
	}
	if ba.dtor != nil {
		ba.dtor(ptr)
	}
	ba.Free(ptr)
}

// Clear gives every slab this instance ever carved back to the
// runtime and empties the free list. All previously issued cell
// addresses are invalid afterwards. Finalizers are not run.
func (ba *BlockAllocator[T]) Clear() {
	ba.slabs, ba.freelist = nil, nil
	debugf("%v cleared\n", ba.logprefix)
}

//---- statistics.

// Info return memory accounting for this allocator.
func (ba *BlockAllocator[T]) Info() (capacity, heap, alloc, overhead int64) {
	var zero T
	tsize := int64(unsafe.Sizeof(zero))
	capacity = ba.capacity
	heap = int64(len(ba.slabs)) * ba.slabbytes()
	alloc = heap - int64(len(ba.freelist))*tsize
	ptrsize := int64(unsafe.Sizeof(&zero))
	overhead = int64(unsafe.Sizeof(*ba)) + int64(cap(ba.freelist))*ptrsize
	return
}

// Logstatistics dump a one line summary of this allocator's memory
// accounting.
func (ba *BlockAllocator[T]) Logstatistics() {
	capacity, heap, alloc, overhead := ba.Info()
	fmsg := "%v capacity: %v heap: %v alloc: %v overhead: %v\n"
	infof(
		fmsg, ba.logprefix,
		humanize.Bytes(uint64(capacity)), humanize.Bytes(uint64(heap)),
		humanize.Bytes(uint64(alloc)), humanize.Bytes(uint64(overhead)))
}

func (ba *BlockAllocator[T]) slabbytes() int64 {
	var zero T
	return ba.slabsize * int64(unsafe.Sizeof(zero))
}
