package slab

import "fmt"
import "unsafe"

// Cacheline size assumed when callers ask for cache-line alignment,
// typical for amd64 and most arm64 parts.
const Cacheline = int64(64)

// newcells carves the backing store for one slab. When alignment is
// positive the slice is over-allocated and re-sliced so that the
// first cell sits on an alignment boundary. Alignment is best effort,
// a tuning knob and not a correctness requirement: element sizes that
// never land on the boundary fall back to the natural start.
func newcells[T any](slabsize, alignment int64) []T {
	if alignment <= 0 {
		return make([]T, slabsize)
	}
	var zero T
	tsize := int64(unsafe.Sizeof(zero))
	if tsize == 0 {
		return make([]T, slabsize)
	}
	extra := (alignment + tsize - 1) / tsize
	cells := make([]T, slabsize+extra)
	for off := int64(0); off <= extra; off++ {
		addr := uintptr(unsafe.Pointer(&cells[off]))
		if addr%uintptr(alignment) == 0 {
			return cells[off : off+slabsize : off+slabsize]
		}
	}
	return cells[:slabsize:slabsize]
}

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}
