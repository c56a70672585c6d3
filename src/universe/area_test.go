package universe

import "testing"

func TestArea_Index(t *testing.T) {
	a := NewArea(4, 3, false)
	if len(a.Cells) != 12 {
		t.Fatalf("expected 12 cells, got %v", len(a.Cells))
	}
	tests := []struct {
		x, y, want int
	}{
		{0, 0, 0},
		{3, 0, 3},
		{0, 1, 4},
		{2, 2, 10},
		{3, 2, 11},
	}
	for _, tt := range tests {
		if got := a.Index(tt.x, tt.y); got != tt.want {
			t.Errorf("Index(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestArea_GetSetFill(t *testing.T) {
	a := NewArea(3, 2, true)
	if a.LiveCells() != 6 {
		t.Fatalf("expected all cells alive, got %v", a.LiveCells())
	}
	a.Set(1, 1, false)
	if a.Get(1, 1) {
		t.Errorf("cell 1,1 should be dead")
	}
	if !a.Get(1, 0) || !a.Get(0, 1) {
		t.Errorf("neighbour cells must not be changed")
	}
	a.Inverse(1, 1)
	if !a.Get(1, 1) {
		t.Errorf("cell 1,1 should be alive after Inverse")
	}
	a.Fill(false)
	if a.LiveCells() != 0 {
		t.Errorf("expected no live cells after Fill(false), got %v", a.LiveCells())
	}
	a.Fill(true)
	if a.LiveCells() != 6 {
		t.Errorf("expected all cells alive after Fill(true), got %v", a.LiveCells())
	}
}

func TestArea_Row(t *testing.T) {
	a := areaOf(
		"#..",
		".#.",
	)
	r := a.Row(1)
	if len(r) != 3 || r[0] || !r[1] || r[2] {
		t.Fatalf("unexpected row %v", r)
	}
	r[2] = true
	if !a.Get(2, 1) {
		t.Errorf("row must share the memory with the area")
	}
}

func TestArea_CloneEqual(t *testing.T) {
	a := areaOf(
		"#.#",
		".#.",
	)
	b := a.Clone()
	if !a.Equal(b) {
		t.Fatalf("clone must be equal")
	}
	b.Inverse(0, 0)
	if a.Equal(b) {
		t.Errorf("clone must not share the memory")
	}
	if a.Equal(NewArea(2, 3, false)) {
		t.Errorf("areas of different size must differ")
	}
}

func TestArea_OutOfRange(t *testing.T) {
	a := NewArea(3, 2, false)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {3, 2}} {
		x, y := p[0], p[1]
		mustPanic(t, "Get", func() { a.Get(x, y) })
		mustPanic(t, "Set", func() { a.Set(x, y, true) })
		mustPanic(t, "Inverse", func() { a.Inverse(x, y) })
	}
	mustPanic(t, "NewArea", func() { NewArea(0, 1, false) })
	mustPanic(t, "NewArea", func() { NewArea(1, -1, false) })
}
