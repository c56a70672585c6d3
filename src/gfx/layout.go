package gfx

import (
	"image"
	"rulelife/src/universe"
)

const (
	boxSize     = 20 //size of one rule toggle box
	labelWidth  = 24
	statusLines = 2
	lineHeight  = 16
)

const (
	ruleRowSurvive = 0
	ruleRowBorn    = 1
)

//layout places the cells matrix on the top of the window, the rule toggles
//for survive and born counts below it and the status lines at the bottom
type layout struct {
	cols, rows int
	scale      int
}

func (l layout) fieldHeight() int {
	return l.rows * l.scale
}

func (l layout) size() (int, int) {
	w := l.cols * l.scale
	if rw := labelWidth + (universe.MaxNeighbours+1)*boxSize; rw > w {
		w = rw
	}
	return w, l.fieldHeight() + 2*boxSize + statusLines*lineHeight
}

//cellAt maps the window position to the cell
func (l layout) cellAt(mx int, my int) (x int, y int, ok bool) {
	if mx < 0 || my < 0 || mx >= l.cols*l.scale || my >= l.fieldHeight() {
		return 0, 0, false
	}
	return mx / l.scale, my / l.scale, true
}

//ruleRect returns the box of the rule toggle
func (l layout) ruleRect(row int, count int) image.Rectangle {
	x := labelWidth + count*boxSize
	y := l.fieldHeight() + row*boxSize
	return image.Rect(x+1, y+1, x+boxSize-1, y+boxSize-1)
}

//ruleAt maps the window position to the rule toggle
func (l layout) ruleAt(mx int, my int) (row int, count int, ok bool) {
	for r := ruleRowSurvive; r <= ruleRowBorn; r++ {
		for c := 0; c <= universe.MaxNeighbours; c++ {
			if image.Pt(mx, my).In(l.ruleRect(r, c)) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

//fillBinaryRGBA converts the cells into RGBA pixels in buf
func fillBinaryRGBA(buf []byte, cells []universe.Cell, on [4]byte, off [4]byte) {
	for i, c := range cells {
		px := off
		if c {
			px = on
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}
