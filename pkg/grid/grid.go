// Package grid maps linear cell indices onto a fixed-width grid.
package grid

// GetGridCoords returns the column and row of cell index in a grid cols wide.
func GetGridCoords(index, cols int) (x, y int) {
	return index % cols, index / cols
}

// Rows returns the number of rows n cells occupy in a grid cols wide.
func Rows(n, cols int) int {
	if n <= 0 {
		return 0
	}
	return (n + cols - 1) / cols
}

// ClampScroll keeps a first-visible-row offset inside [0, rows-visible].
func ClampScroll(scroll, rows, visible int) int {
	if scroll > rows-visible {
		scroll = rows - visible
	}
	if scroll < 0 {
		scroll = 0
	}
	return scroll
}
