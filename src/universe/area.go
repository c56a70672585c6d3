package universe

import "fmt"

type Cell bool

//Area is the field where cells are living
//cells are stored row by row in a single buffer, cell x,y lives at y*Width+x
type Area struct {
	Width  int
	Height int
	Cells  []Cell
}

//NewArea allocates the area and fills every cell with the fill value
//width and height must be positive
func NewArea(width int, height int, fill Cell) Area {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("universe: invalid area size %vx%v", width, height))
	}
	a := Area{Width: width, Height: height, Cells: make([]Cell, width*height)}
	if fill {
		a.Fill(fill)
	}
	return a
}

//Contains reports whether x,y is inside the area
func (a Area) Contains(x int, y int) bool {
	return x >= 0 && y >= 0 && x < a.Width && y < a.Height
}

//Index returns the buffer index of the cell x,y
//panics when the coordinates are outside the area
func (a Area) Index(x int, y int) int {
	if !a.Contains(x, y) {
		panic(fmt.Sprintf("universe: cell %v,%v is outside the %vx%v area", x, y, a.Width, a.Height))
	}
	return y*a.Width + x
}

func (a Area) Get(x int, y int) Cell {
	return a.Cells[a.Index(x, y)]
}

func (a Area) Set(x int, y int, c Cell) {
	a.Cells[a.Index(x, y)] = c
}

//Inverse inverses the cell state at point x, y
func (a Area) Inverse(x int, y int) {
	i := a.Index(x, y)
	a.Cells[i] = !a.Cells[i]
}

//Fill overwrites every cell with c
func (a Area) Fill(c Cell) {
	for i := range a.Cells {
		a.Cells[i] = c
	}
}

//Row returns the y-th row, it shares the memory with the area
func (a Area) Row(y int) []Cell {
	start := a.Index(0, y)
	return a.Cells[start : start+a.Width : start+a.Width]
}

//LiveCells calculates the count of live cells
func (a Area) LiveCells() int {
	n := 0
	for _, c := range a.Cells {
		if c {
			n++
		}
	}
	return n
}

//Clone returns the deep copy of the area
func (a Area) Clone() Area {
	b := Area{Width: a.Width, Height: a.Height, Cells: make([]Cell, len(a.Cells))}
	copy(b.Cells, a.Cells)
	return b
}

//Equal reports whether both areas have the same size and the same cells
func (a Area) Equal(b Area) bool {
	if a.Width != b.Width || a.Height != b.Height || len(a.Cells) != len(b.Cells) {
		return false
	}
	for i := range a.Cells {
		if a.Cells[i] != b.Cells[i] {
			return false
		}
	}
	return true
}
