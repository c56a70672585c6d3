package universe

import "time"

/*
	Engine with two buffers
	All cells state is calculated to the spare buffer and then the buffers are swapped,
	the old generation becomes the spare buffer for the next call
*/
type simpleEngine struct {
	tmpBuff []Cell
}

func newSimpleEngine(o Options) Engine {
	return &simpleEngine{tmpBuff: make([]Cell, o.Width*o.Height)}
}

func (se *simpleEngine) Name() string {
	return "simple"
}

func (se *simpleEngine) Details() map[string]interface{} {
	return map[string]interface{}{"engine": "simple"}
}

func (se *simpleEngine) Next(a *Area, r *RuleSet) (res Result) {
	start := time.Now()
	checkNextLen(a, len(se.tmpBuff))
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			i := y*a.Width + x
			nextState := cellNextState(*a, r, x, y)
			if nextState {
				res.LiveCells++
			}
			res.Changed = res.Changed || nextState != a.Cells[i]
			se.tmpBuff[i] = nextState
		}
	}
	a.Cells, se.tmpBuff = se.tmpBuff, a.Cells
	res.Duration = time.Since(start)
	return
}
