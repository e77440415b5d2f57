package slab

// slab is a fixed-capacity block of contiguous cells. The backing
// array is carved once and never regrown, cell addresses are stable
// for the life of the slab. Linkage is used two ways: a stack
// allocator chains its slabs doubly linked through next/prev, while
// the manager's idle pool threads singly through next.
type slab[T any] struct {
	data []T
	next *slab[T]
	prev *slab[T]
}

func newslab[T any](slabsize, alignment int64) *slab[T] {
	return &slab[T]{data: newcells[T](slabsize, alignment)}
}
