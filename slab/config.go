package slab

import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"

// Slab configurable parameters and default settings.
//
// "slabsize" (int64, default: 1024)
//		Number of cells in each slab.
//
// "alignment" (int64, default: 0)
//		Align the first cell of every slab to this byte boundary,
//		typically Cacheline. Zero disables alignment. Applied best
//		effort, purely a performance knob.
//
// "capacity" (int64, default: half of free RAM)
//		Maximum memory, in bytes, the component may hold in slabs,
//		pooled and checked out together. Slab requests beyond the
//		ceiling fail with a nil cell.
func Defaultsettings() s.Settings {
	_, _, free := getsysmem()
	return s.Settings{
		"slabsize":  int64(1024),
		"alignment": int64(0),
		"capacity":  int64(free / 2),
	}
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
