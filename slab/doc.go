// Package slab supplies fixed-size-object memory allocators for hot
// allocation paths, with a limited scope:
//
//   - Types and Functions exported by this package are not thread safe.
//   - Work best when object lifetime behaviour is known apriori.
//   - Memory is allocated in slabs, where each slab holds several
//     cells of the same element type.
//   - Once a slab is carved out it is never resized or relocated, so
//     cell addresses stay stable until the cell is popped, freed or
//     the allocator is released.
//
// Two allocation disciplines are supported. StackAllocator hands out
// cells in last-allocated-first-freed order, over a chain of slabs
// borrowed from a SlabManager; several stack allocators can share one
// manager so that slabs relinquished by one are recycled into another.
// BlockAllocator hands out cells in arbitrary alloc/free order from
// slabs it owns outright, recycling individual cells through a free
// list.
//
// SlabManager, StackAllocator and BlockAllocator can be created with
// following settings:
//
//	slabsize  : number of cells in each slab.
//	alignment : optionally align the first cell of every slab.
//	capacity  : maximum memory, in bytes, held in slabs.
package slab
