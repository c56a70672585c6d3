package universe

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var ErrUnknownEngine = errors.New("unknown engine")

//Engine calculates the next generation of the area
//every engine reads the previous generation only and commits the new one after the whole pass
type Engine interface {
	Name() string
	Details() map[string]interface{} //engine specific details
	Next(a *Area, r *RuleSet) Result
}

//Result describes one calculated generation
type Result struct {
	LiveCells int
	Changed   bool
	Duration  time.Duration
}

var engines = map[string]func(o Options) Engine{
	"base":          newBaseEngine,
	"simple":        newSimpleEngine,
	"smallBuff":     newSmallBuffEngine,
	"multithreaded": newMultithreadedEngine,
}

//NewEngine creates the engine by name for the area described by o
func NewEngine(name string, o Options) (Engine, error) {
	f, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("%w %q, known engines: %v", ErrUnknownEngine, name, EngineNames())
	}
	return f(o), nil
}

//EngineNames returns the sorted names of the known engines
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for k := range engines {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

//checkNextLen panics if the calculated buffer doesn't match the area
//the area must stay untouched in this case
func checkNextLen(a *Area, n int) {
	if n != a.Width*a.Height || n != len(a.Cells) {
		panic(fmt.Sprintf("universe: next generation has %v cells, the %vx%v area has %v", n, a.Width, a.Height, len(a.Cells)))
	}
}
