package slab

import "testing"
import "unsafe"

func TestNewcells(t *testing.T) {
	cells := newcells[int64](16, 0)
	if len(cells) != 16 {
		t.Errorf("expected %v, got %v", 16, len(cells))
	}
	// aligned carve with an element size that divides the line.
	cells = newcells[int64](16, Cacheline)
	if len(cells) != 16 {
		t.Errorf("expected %v, got %v", 16, len(cells))
	} else if addr := uintptr(unsafe.Pointer(&cells[0])); addr%64 != 0 {
		t.Errorf("expected a cache-line aligned slab, got %x", addr)
	}
	// capacity is clipped, appends cannot bleed into neighbours.
	if cap(cells) != 16 {
		t.Errorf("expected %v, got %v", 16, cap(cells))
	}
}

func TestNewcellsZerosized(t *testing.T) {
	cells := newcells[struct{}](16, Cacheline)
	if len(cells) != 16 {
		t.Errorf("expected %v, got %v", 16, len(cells))
	}
}

func TestDefaultsettings(t *testing.T) {
	setts := Defaultsettings()
	if setts.Int64("slabsize") != 1024 {
		t.Errorf("unexpected slabsize %v", setts.Int64("slabsize"))
	} else if setts.Int64("alignment") != 0 {
		t.Errorf("unexpected alignment %v", setts.Int64("alignment"))
	} else if setts.Int64("capacity") <= 0 {
		t.Errorf("unexpected capacity %v", setts.Int64("capacity"))
	}
}
