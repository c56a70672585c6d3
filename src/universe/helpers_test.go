package universe

import (
	"math/rand"
	"testing"
)

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	f()
}

//areaOf builds the area from the picture, '#' is the live cell
func areaOf(rows ...string) Area {
	a := NewArea(len(rows[0]), len(rows), false)
	for y, r := range rows {
		for x, ch := range r {
			a.Set(x, y, ch == '#')
		}
	}
	return a
}

func randomArea(rnd *rand.Rand, width int, height int) Area {
	a := NewArea(width, height, false)
	for i := range a.Cells {
		a.Cells[i] = rnd.Intn(3) == 0
	}
	return a
}

//referenceNext is the straightforward double buffered implementation the engines are compared with
func referenceNext(a Area, survive []int, born []int) Area {
	in := func(set []int, n int) bool {
		for _, c := range set {
			if c == n {
				return true
			}
		}
		return false
	}
	next := NewArea(a.Width, a.Height, false)
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if (dx != 0 || dy != 0) && a.Contains(x+dx, y+dy) && bool(a.Get(x+dx, y+dy)) {
						n++
					}
				}
			}
			if a.Get(x, y) {
				next.Set(x, y, Cell(in(survive, n)))
			} else {
				next.Set(x, y, Cell(in(born, n)))
			}
		}
	}
	return next
}
