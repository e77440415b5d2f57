//go:build debug

package slab

// Recycled cells are reset to the zero value so that reads through a
// stale cell address show up as zeroed data while debugging.
func initcells[T any](cells []T) {
	var zero T
	for i := range cells {
		cells[i] = zero
	}
}
