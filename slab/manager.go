package slab

import "fmt"
import "unsafe"

import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"

// SlabManager owns a pool of idle slabs shared across cooperating
// stack allocators. Slabs relinquished by one allocator are recycled
// LIFO into the next request, and Trimto bounds how much idle memory
// the pool may hold on to. A manager must outlive every allocator
// that borrows from it. Not thread safe.
type SlabManager[T any] struct {
	head *slab[T] // LIFO pool of idle slabs

	// settings
	slabsize  int64
	alignment int64
	capacity  int64 // ceiling, in bytes, on live slab memory

	// statistics
	n_pooled   int64 // slabs idling in the pool
	n_live     int64 // slabs carved and not yet trimmed
	n_created  int64
	n_recycled int64
	n_trimmed  int64

	name      string
	logprefix string
}

// NewSlabManager create a new manager with a capacity ceiling and a
// fixed per-slab cell count. Supplied settings are mixed over
// Defaultsettings().
func NewSlabManager[T any](name string, setts s.Settings) *SlabManager[T] {
	man := &SlabManager[T]{name: name}
	man.logprefix = fmt.Sprintf("slabmanager [%s]", name)
	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	man.slabsize = setts.Int64("slabsize")
	man.alignment = setts.Int64("alignment")
	man.capacity = setts.Int64("capacity")
	if man.slabsize < 1 {
		panicerr("%v slabsize %v should be >= 1", man.logprefix, man.slabsize)
	} else if man.alignment < 0 {
		panicerr("%v invalid alignment %v", man.logprefix, man.alignment)
	}
	return man
}

//---- operations, for cooperating stack allocators.

// getslab hands out an idle slab from the pool head, else carves a
// fresh one. Returns nil when a fresh slab would cross the capacity
// ceiling, the only failure mode; never retried here.
func (man *SlabManager[T]) getslab() *slab[T] {
	if sl := man.head; sl != nil {
		man.head = sl.next
		sl.next, sl.prev = nil, nil
		man.n_pooled--
		man.n_recycled++
		return sl
	}
	if (man.n_live+1)*man.slabbytes() > man.capacity {
		return nil
	}
	man.n_live++
	man.n_created++
	return newslab[T](man.slabsize, man.alignment)
}

// returnslab pushes sl on the pool head, most recently relinquished
// slab is handed out first. A nil slab is a no-op. The slab must hold
// no live cells.
func (man *SlabManager[T]) returnslab(sl *slab[T]) {
	if sl == nil {
		return
	}
	initcells(sl.data)
	sl.prev, sl.next = nil, man.head
	man.head = sl
	man.n_pooled++
}

//---- maintenance.

// Trimto frees pooled slabs beyond the first n_keep, counted from the
// pool head. Slabs checked out to allocators are unaffected. This is
// the sole mechanism for bounding idle memory, without it the pool
// only grows.
func (man *SlabManager[T]) Trimto(n_keep int64) {
	var prev *slab[T]
	sl, count := man.head, int64(0)
	for sl != nil && count < n_keep {
		prev, sl = sl, sl.next
		count++
	}
	if sl == nil {
		return
	}
	if prev == nil {
		man.head = nil
	} else {
		prev.next = nil
	}
	trimmed := int64(0)
	for sl != nil {
		next := sl.next
		sl.data, sl.next = nil, nil
		sl = next
		trimmed++
	}
	man.n_pooled -= trimmed
	man.n_live -= trimmed
	man.n_trimmed += trimmed
	infof("%v trimmed %v slabs, %v idling\n", man.logprefix, trimmed, man.n_pooled)
}

//---- statistics.

// Info return memory accounting for this manager. heap is memory
// held in slabs, alloc the portion checked out to allocators.
func (man *SlabManager[T]) Info() (capacity, heap, alloc, overhead int64) {
	capacity = man.capacity
	heap = man.n_live * man.slabbytes()
	alloc = (man.n_live - man.n_pooled) * man.slabbytes()
	self := int64(unsafe.Sizeof(*man))
	overhead = self + man.n_live*int64(unsafe.Sizeof(slab[T]{}))
	return
}

// Utilization percent of slab memory checked out to allocators.
func (man *SlabManager[T]) Utilization() float64 {
	_, heap, alloc, _ := man.Info()
	if heap == 0 {
		return 0
	}
	return (float64(alloc) / float64(heap)) * 100
}

// Logstatistics dump a one line summary of this manager's memory
// accounting.
func (man *SlabManager[T]) Logstatistics() {
	capacity, heap, alloc, overhead := man.Info()
	fmsg := "%v capacity: %v heap: %v alloc: %v overhead: %v recycled: %v\n"
	infof(
		fmsg, man.logprefix,
		humanize.Bytes(uint64(capacity)), humanize.Bytes(uint64(heap)),
		humanize.Bytes(uint64(alloc)), humanize.Bytes(uint64(overhead)),
		man.n_recycled)
}

func (man *SlabManager[T]) slabbytes() int64 {
	var zero T
	return man.slabsize * int64(unsafe.Sizeof(zero))
}
