package universe

import (
	"fmt"
	"time"
)

/*
	Engine with buffers optimization
	Next uses small buffer to store the current and previous lines only.
	the previous line is copied to the area as calculating moves to the next line,
	the rows above it are never read again during the pass
*/
type smallBuffEngine struct {
	tmpBuff [2][]Cell
}

func newSmallBuffEngine(o Options) Engine {
	return &smallBuffEngine{tmpBuff: [2][]Cell{make([]Cell, o.Width), make([]Cell, o.Width)}}
}

func (se *smallBuffEngine) Name() string {
	return "smallBuff"
}

func (se *smallBuffEngine) Details() map[string]interface{} {
	return map[string]interface{}{"engine": "smallBuff"}
}

func (se *smallBuffEngine) Next(a *Area, r *RuleSet) (res Result) {
	start := time.Now()
	checkNextLen(a, len(a.Cells))
	if len(se.tmpBuff[0]) != a.Width || len(se.tmpBuff[1]) != a.Width {
		panic(fmt.Sprintf("universe: row buffer has %v cells, the area width is %v", len(se.tmpBuff[0]), a.Width))
	}
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			nextState := cellNextState(*a, r, x, y)
			if nextState {
				res.LiveCells++
			}
			res.Changed = res.Changed || nextState != a.Cells[y*a.Width+x]
			se.tmpBuff[1][x] = nextState
		}
		if y-1 >= 0 {
			copy(a.Row(y-1), se.tmpBuff[0])
		}
		se.tmpBuff[0], se.tmpBuff[1] = se.tmpBuff[1], se.tmpBuff[0]
	}
	copy(a.Row(a.Height-1), se.tmpBuff[0])
	res.Duration = time.Since(start)
	return
}
