package slab

import "github.com/bnclabs/goslab/api"

var _ api.Allocator[int] = (*StackAllocator[int])(nil)
var _ api.Allocator[int] = (*BlockAllocator[int])(nil)
var _ api.Slabpool = (*SlabManager[int])(nil)
