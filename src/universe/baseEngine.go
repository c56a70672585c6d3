package universe

import "time"

/*
	The simplest engine: creates the new buffer with full size on each call
	All cells state is calculated to the new buffer and then this buffer replaces the old one
*/
type baseEngine struct{}

func newBaseEngine(_ Options) Engine {
	return baseEngine{}
}

func (baseEngine) Name() string {
	return "base"
}

func (baseEngine) Details() map[string]interface{} {
	return map[string]interface{}{"engine": "base"}
}

func (baseEngine) Next(a *Area, r *RuleSet) (res Result) {
	start := time.Now()
	checkNextLen(a, len(a.Cells))
	next := make([]Cell, 0, len(a.Cells))
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			nextState := cellNextState(*a, r, x, y)
			if nextState {
				res.LiveCells++
			}
			res.Changed = res.Changed || nextState != a.Cells[y*a.Width+x]
			next = append(next, nextState)
		}
	}
	checkNextLen(a, len(next))
	a.Cells = next
	res.Duration = time.Since(start)
	return
}
