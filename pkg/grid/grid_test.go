package grid

import "testing"

func TestGetGridCoords(t *testing.T) {
	tests := []struct {
		index int
		cols  int
		wantX int
		wantY int
	}{
		// 4 cells per row (token viewer)
		{0, 4, 0, 0},
		{3, 4, 3, 0},
		{4, 4, 0, 1},
		{9, 4, 1, 2},

		// 64 cols
		{63, 64, 63, 0},
		{64, 64, 0, 1},
		{1023, 64, 63, 15},
	}

	for _, tc := range tests {
		gotX, gotY := GetGridCoords(tc.index, tc.cols)
		if gotX != tc.wantX || gotY != tc.wantY {
			t.Errorf("GetGridCoords(%d, %d) = (%d, %d); want (%d, %d)", tc.index, tc.cols, gotX, gotY, tc.wantX, tc.wantY)
		}
	}
}

func TestRows(t *testing.T) {
	tests := []struct {
		n, cols, want int
	}{
		{0, 4, 0},
		{1, 4, 1},
		{4, 4, 1},
		{5, 4, 2},
		{1024, 64, 16},
	}

	for _, tc := range tests {
		if got := Rows(tc.n, tc.cols); got != tc.want {
			t.Errorf("Rows(%d, %d) = %d; want %d", tc.n, tc.cols, got, tc.want)
		}
	}
}

func TestClampScroll(t *testing.T) {
	tests := []struct {
		scroll, rows, visible, want int
	}{
		{-1, 10, 4, 0},
		{3, 10, 4, 3},
		{9, 10, 4, 6},
		{2, 3, 4, 0}, // everything fits
	}

	for _, tc := range tests {
		if got := ClampScroll(tc.scroll, tc.rows, tc.visible); got != tc.want {
			t.Errorf("ClampScroll(%d, %d, %d) = %d; want %d", tc.scroll, tc.rows, tc.visible, got, tc.want)
		}
	}
}
