package session

import (
	"errors"
	"fmt"
	"math/rand"
	"rulelife/src/universe"
	"sort"
	"sync"
	"time"
)

var ErrUnknownTemplate = errors.New("unknown template")

//Options represents the Session's configurable options
type Options struct {
	universe.Options
	Interval       time.Duration //interval between the steps in the running mode
	MaxSteps       int           //0 means no limit
	StopWhenStable bool          //finish when the universe is empty or doesn't change
}

//Status represents the status of the Session at concrete moment
type Status struct {
	IterationNum  int
	RunningMode   RunningState
	LiveCells     int
	IterationTime time.Duration
	Details       map[string]interface{} //advanced details (engine specific)
}

//Viewer is the interface to any Viewer - the object who can display simulation data or control the session
type Viewer interface {
	Refresh()
	Register(s *Session)
	Start()
}

//The session running status at the concrete moment
type RunningState int

//default options
const (
	DefSimulationInterval = time.Millisecond * 100
	DefMaxSteps           = 1000
)

const (
	RunningStateManual   = RunningState(0x0)
	RunningStateStep     = RunningState(0x1)
	RunningStateRun      = RunningState(0x2)
	RunningStateFinished = RunningState(0x3)
)

func (rs RunningState) String() string {
	switch rs {
	case RunningStateManual:
		return "manual"
	case RunningStateStep:
		return "step"
	case RunningStateRun:
		return "run"
	case RunningStateFinished:
		return "finished"
	}
	return fmt.Sprintf("RunningState(%d)", int(rs))
}

var DefaultOptions = Options{
	Options:        universe.DefaultOptions,
	Interval:       DefSimulationInterval,
	MaxSteps:       DefMaxSteps,
	StopWhenStable: true,
}

//Session owns the universe and serializes all access to it
//commands like Run, Step or Clear are queued and executed one by one by the main loop,
//cell and rule edits are applied between the steps
type Session struct {
	options Options
	mu      sync.Mutex //guards u and state
	u       *universe.Universe
	state   Status

	stateCh   chan Status
	viewsMu   sync.Mutex //guards views, never held together with mu
	views     []Viewer
	templates map[string]Template
	controlCh chan func()
	done      chan struct{}
	closeOnce sync.Once
}

//New creates the Session and starts its main loop
//stateCh is optional, it receives the Status on every running state change
func New(o Options, stateCh chan Status) (*Session, error) {
	u, err := universe.New(o.Options)
	if err != nil {
		return nil, fmt.Errorf("create universe: %w", err)
	}
	s := &Session{
		options:   o,
		u:         u,
		stateCh:   stateCh,
		templates: map[string]Template{},
		controlCh: make(chan func(), 1),
		done:      make(chan struct{}),
	}
	s.options.Options = u.Options()
	for _, t := range BuiltinTemplates {
		s.AddTemplate(t)
	}
	s.state.Details = u.Engine().Details()
	s.state.LiveCells = s.u.Area().LiveCells()
	go s.mainLoop()
	return s, nil
}

//StateCh returns the channel with the session status updates
func (s *Session) StateCh() chan Status {
	return s.stateCh
}

//Status returns current session status represented by Status struct
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

//Options returns the session configuration
func (s *Session) Options() Options {
	return s.options
}

//Area returns the copy of the current generation
func (s *Session) Area() universe.Area {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.u.Area()
}

func (s *Session) SurviveCounts() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.u.SurviveCounts()
}

func (s *Session) BornCounts() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.u.BornCounts()
}

//Rules returns the copy of the current rules
func (s *Session) Rules() *universe.RuleSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.u.Rules()
}

//RegisterViewer registers the viewer - the session will call the viewer when the state is changed
//the viewer is registered before it can be refreshed
func (s *Session) RegisterViewer(v Viewer) {
	v.Register(s)
	s.viewsMu.Lock()
	s.views = append(s.views, v)
	s.viewsMu.Unlock()
}

//InverseCell inverses the cell state at point x, y
//the points outside the area are ignored
func (s *Session) InverseCell(x int, y int) {
	s.mu.Lock()
	if x < 0 || y < 0 || x >= s.u.Width() || y >= s.u.Height() {
		s.mu.Unlock()
		return
	}
	s.u.Inverse(x, y)
	s.state.LiveCells = s.u.Area().LiveCells()
	s.mu.Unlock()
	s.refreshView()
}

//SetCell sets the cell state at point x, y
//the points outside the area are ignored
func (s *Session) SetCell(x int, y int, alive bool) {
	s.mu.Lock()
	if x < 0 || y < 0 || x >= s.u.Width() || y >= s.u.Height() {
		s.mu.Unlock()
		return
	}
	s.u.Set(x, y, alive)
	s.state.LiveCells = s.u.Area().LiveCells()
	s.mu.Unlock()
	s.refreshView()
}

//ToggleSurvive adds or removes the survive count, the change is applied on the next step
func (s *Session) ToggleSurvive(count int, enabled bool) {
	s.editRules(func() { s.u.ToggleSurvive(count, enabled) })
}

//ToggleBorn adds or removes the born count, the change is applied on the next step
func (s *Session) ToggleBorn(count int, enabled bool) {
	s.editRules(func() { s.u.ToggleBorn(count, enabled) })
}

//FlipSurvive inverses the membership of count in the survive set
func (s *Session) FlipSurvive(count int) {
	s.editRules(func() { s.u.ToggleSurvive(count, !s.u.Survives(count)) })
}

//FlipBorn inverses the membership of count in the born set
func (s *Session) FlipBorn(count int) {
	s.editRules(func() { s.u.ToggleBorn(count, !s.u.Born(count)) })
}

//editRules applies the edit under the lock, the lock is released even if the edit panics
func (s *Session) editRules(edit func()) {
	func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		edit()
	}()
	s.refreshView()
}

//RuleString returns the current rules in B/S notation
func (s *Session) RuleString() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.u.Rules().String()
}

//EngineDetails returns the engine specific details
func (s *Session) EngineDetails() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.u.Engine().Details()
}

//SetRules replaces the rules, rules is in B/S notation
func (s *Session) SetRules(rules string) error {
	r, err := universe.ParseRules(rules)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.u.SetRules(r)
	s.mu.Unlock()
	s.refreshView()
	return nil
}

//Run starts the simulation, returns immediately
func (s *Session) Run() {
	s.exec(s.run)
}

//Stop stops the simulation, returns immediately
//the Status struct will be written the stateCh on finish
func (s *Session) Stop() {
	s.exec(s.stop)
}

//Step does one simulation step, returns immediately
//the Status struct will be written to the stateCh on start and on finish
func (s *Session) Step() {
	s.exec(s.step)
}

//Clear kills all cells and resets all counters, returns immediately
func (s *Session) Clear() {
	s.exec(func() { s.reset(false) })
}

//Fill makes all cells alive and resets all counters, returns immediately
func (s *Session) Fill() {
	s.exec(func() { s.reset(true) })
}

//SettleWithRandomData populates the universe with random data, returns immediately
func (s *Session) SettleWithRandomData(seed int64) {
	s.exec(func() {
		if mode := s.Status().RunningMode; mode != RunningStateManual && mode != RunningStateFinished {
			return
		}
		s.mu.Lock()
		s.u.Fill(false)
		rnd := rand.New(rand.NewSource(seed))
		w, h := s.u.Width(), s.u.Height()
		for i := 0; i < w*h; i++ {
			s.u.Set(rnd.Intn(w), rnd.Intn(h), true)
		}
		s.state.IterationNum = 0
		s.state.LiveCells = s.u.Area().LiveCells()
		s.mu.Unlock()
		s.refreshView()
	})
}

//Flush blocks until all previously queued commands are executed
func (s *Session) Flush() {
	flushed := make(chan struct{})
	s.exec(func() { close(flushed) })
	select {
	case <-flushed:
	case <-s.done:
	}
}

//Close stops the main loop and the running simulation, returns immediately
func (s *Session) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

//exec queues the command for the main loop, the command is dropped when the session is closed
func (s *Session) exec(cmd func()) {
	select {
	case s.controlCh <- cmd:
	case <-s.done:
	}
}

//mainLoop - the main cycle, should start as a goroutine
//waits for command and executes
func (s *Session) mainLoop() {
	for {
		select {
		case cmd := <-s.controlCh:
			cmd()
		case <-s.done:
			return
		}
	}
}

//switchRunningState switch the state of the session to RunningState
//also writes the new state to the stateCh to signal upper control software
func (s *Session) switchRunningState(to RunningState) {
	s.mu.Lock()
	s.state.RunningMode = to
	st := s.state
	s.mu.Unlock()
	if s.stateCh != nil {
		select {
		case s.stateCh <- st:
		case <-s.done:
		}
	}
}

//run starts the running cycle
//simulation will stop on Stop() calling or when the boundary conditions are reached
func (s *Session) run() {
	if s.Status().RunningMode == RunningStateRun {
		return
	}
	s.switchRunningState(RunningStateRun)
	go func() {
		for s.Status().RunningMode == RunningStateRun {
			stepped := make(chan struct{})
			s.exec(func() {
				//Stop may be queued before this step
				if s.Status().RunningMode == RunningStateRun {
					s.step()
				}
				close(stepped)
			})
			select {
			case <-stepped:
			case <-s.done:
				return
			}
			if s.options.Interval > 0 {
				select {
				case <-time.After(s.options.Interval):
				case <-s.done:
					return
				}
			}
		}
	}()
}

//stop stops the running cycle
func (s *Session) stop() {
	if s.Status().RunningMode == RunningStateRun {
		s.switchRunningState(RunningStateManual)
	}
}

//step does the new one state calculation for entire universe
func (s *Session) step() {
	finished := false
	rm := s.Status().RunningMode
	defer func() {
		if finished {
			s.switchRunningState(RunningStateFinished)
		} else {
			s.switchRunningState(rm)
		}
		s.refreshView()
	}()

	maxIter := s.options.MaxSteps
	if maxIter != 0 && s.Status().IterationNum >= maxIter {
		finished = true
		return
	}
	s.switchRunningState(RunningStateStep)

	s.mu.Lock()
	res := s.u.Step()
	s.state.IterationNum++
	s.state.LiveCells = res.LiveCells
	s.state.IterationTime = res.Duration
	iter := s.state.IterationNum
	s.mu.Unlock()

	if maxIter != 0 && iter >= maxIter {
		finished = true
	}
	if s.options.StopWhenStable && (res.LiveCells == 0 || !res.Changed) {
		finished = true
	}
}

//reset fills the universe with the value, resets all counters
func (s *Session) reset(alive bool) {
	s.mu.Lock()
	s.u.Fill(alive)
	s.state.IterationNum = 0
	s.state.LiveCells = s.u.Area().LiveCells()
	s.state.IterationTime = 0
	s.mu.Unlock()
	s.switchRunningState(RunningStateManual)
	s.refreshView()
}

//refreshView calls Refresh event for all registered views
func (s *Session) refreshView() {
	s.viewsMu.Lock()
	views := s.views
	s.viewsMu.Unlock()
	for _, v := range views {
		v.Refresh()
	}
}

//Templates returns the sorted names of the registered templates
func (s *Session) Templates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.templates))
	for k := range s.templates {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
