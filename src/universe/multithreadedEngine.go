package universe

import (
	"sync"
	"time"
)

/*
	Engine with multithreaded computation algorithm
	the field is split into bands of rows each of which is computed by individual goroutine
	from the previous generation, the bands are written back when all goroutines are done
*/

const (
	DefWorkers          = 10 //default workers
	DefMinRowsPerWorker = 3  //minimum rows for one worker
)

type multithreadedEngine struct {
	workers        int
	linesPerWorker int
	workAreas      []workArea
}

//workArea describes the rows y1..y2 calculated by one worker
type workArea struct {
	y1        int
	y2        int
	tmpBuff   []Cell
	liveCells int
	changed   bool
}

func newMultithreadedEngine(o Options) Engine {
	me := multithreadedEngine{workers: o.Workers}
	if me.workers <= 0 {
		me.workers = DefWorkers
	}
	linesPerWorker := o.Height / me.workers
	if linesPerWorker < DefMinRowsPerWorker {
		linesPerWorker = DefMinRowsPerWorker
	} else if linesPerWorker*me.workers < o.Height {
		linesPerWorker++
	}
	me.workAreas = make([]workArea, 0, me.workers)
	for y1 := 0; y1 < o.Height; y1 += linesPerWorker {
		y2 := y1 + linesPerWorker - 1
		if y2 > o.Height-1 {
			y2 = o.Height - 1
		}
		me.workAreas = append(me.workAreas, workArea{y1: y1, y2: y2, tmpBuff: make([]Cell, (y2-y1+1)*o.Width)})
	}
	me.workers = len(me.workAreas)
	me.linesPerWorker = linesPerWorker
	return &me
}

func (me *multithreadedEngine) Name() string {
	return "multithreaded"
}

func (me *multithreadedEngine) Details() map[string]interface{} {
	return map[string]interface{}{
		"engine":          "multithreaded",
		"Workers":         me.workers,
		"Rows per worker": me.linesPerWorker,
	}
}

//Next starts goroutines, waits for finishing and writes the bands back
func (me *multithreadedEngine) Next(a *Area, r *RuleSet) (res Result) {
	start := time.Now()
	total := 0
	for _, wa := range me.workAreas {
		total += len(wa.tmpBuff)
	}
	checkNextLen(a, total)

	var waitGroup sync.WaitGroup
	for i := range me.workAreas {
		wa := &me.workAreas[i]
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			calcArea(*a, r, wa)
		}()
	}
	waitGroup.Wait()

	for _, wa := range me.workAreas {
		copy(a.Cells[wa.y1*a.Width:], wa.tmpBuff)
		res.LiveCells += wa.liveCells
		res.Changed = res.Changed || wa.changed
	}
	res.Duration = time.Since(start)
	return
}

//calcArea calculates new states for the cells inside workArea
//a is read only here
func calcArea(a Area, r *RuleSet, wa *workArea) {
	wa.liveCells = 0
	wa.changed = false
	for y := wa.y1; y <= wa.y2; y++ {
		for x := 0; x < a.Width; x++ {
			nextState := cellNextState(a, r, x, y)
			if nextState {
				wa.liveCells++
			}
			wa.changed = wa.changed || nextState != a.Cells[y*a.Width+x]
			wa.tmpBuff[(y-wa.y1)*a.Width+x] = nextState
		}
	}
}
