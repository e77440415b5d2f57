// Package api holds interfaces shared across goslab packages.
package api

// Allocator is the common surface of fixed-size object allocators.
type Allocator[T any] interface {
	// Alloc the next free cell. Cell addresses are stable until the
	// cell is given back. Returns nil when memory cannot be obtained,
	// the only error condition reported by the alloc family.
	Alloc() *T

	// Info of memory accounting for this allocator.
	Info() (capacity, heap, alloc, overhead int64)
}

// Slabpool is the maintenance surface of a pool of idle slabs shared
// by cooperating stack allocators. Borrow and return traffic stays
// between the pool and its allocators.
type Slabpool interface {
	// Trimto frees pooled slabs beyond the first n_keep, bounding
	// idle memory. Slabs checked out to allocators are unaffected.
	Trimto(n_keep int64)

	// Info of memory accounting for this pool.
	Info() (capacity, heap, alloc, overhead int64)
}
