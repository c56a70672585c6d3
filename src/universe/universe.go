package universe

import (
	"errors"
	"fmt"
)

var ErrInvalidSize = errors.New("invalid universe size")

//Options represents the Universe's configurable options
type Options struct {
	Width   int
	Height  int
	Fill    Cell   //initial state of every cell
	Rules   string //rules in B/S notation, Conway's rules when empty
	Engine  string //engine name, "base" when empty
	Workers int    //workers of the multithreaded engine
}

//default options
const (
	DefWidth  = 40
	DefHeight = 15
	DefRules  = "B3/S23"
	DefEngine = "base"
)

var DefaultOptions = Options{
	Width:  DefWidth,
	Height: DefHeight,
	Fill:   true,
	Rules:  DefRules,
	Engine: DefEngine,
}

//Universe is the cells area together with the rules and the engine advancing it
//it is not safe for concurrent use, the owner must call it sequentially
type Universe struct {
	options    Options
	area       Area
	rules      *RuleSet
	engine     Engine
	generation int
}

//New validates the options and creates the Universe
func New(o Options) (*Universe, error) {
	if o.Width <= 0 || o.Height <= 0 {
		return nil, fmt.Errorf("%w: %vx%v", ErrInvalidSize, o.Width, o.Height)
	}
	if o.Rules == "" {
		o.Rules = DefRules
	}
	if o.Engine == "" {
		o.Engine = DefEngine
	}
	rules, err := ParseRules(o.Rules)
	if err != nil {
		return nil, err
	}
	engine, err := NewEngine(o.Engine, o)
	if err != nil {
		return nil, err
	}
	return &Universe{
		options: o,
		area:    NewArea(o.Width, o.Height, o.Fill),
		rules:   rules,
		engine:  engine,
	}, nil
}

func (u *Universe) Width() int {
	return u.area.Width
}

func (u *Universe) Height() int {
	return u.area.Height
}

func (u *Universe) Options() Options {
	return u.options
}

func (u *Universe) Get(x int, y int) bool {
	return bool(u.area.Get(x, y))
}

func (u *Universe) Set(x int, y int, alive bool) {
	u.area.Set(x, y, Cell(alive))
}

func (u *Universe) Inverse(x int, y int) {
	u.area.Inverse(x, y)
}

func (u *Universe) Fill(alive bool) {
	u.area.Fill(Cell(alive))
}

//Area returns the copy of the current generation
func (u *Universe) Area() Area {
	return u.area.Clone()
}

//Rules returns the copy of the current rules
func (u *Universe) Rules() *RuleSet {
	return u.rules.Clone()
}

//SetRules replaces the rules with the copy of r
func (u *Universe) SetRules(r *RuleSet) {
	u.rules = r.Clone()
}

func (u *Universe) Survives(count int) bool {
	return u.rules.Survives(count)
}

func (u *Universe) Born(count int) bool {
	return u.rules.Born(count)
}

func (u *Universe) SurviveCounts() []int {
	return u.rules.SurviveCounts()
}

func (u *Universe) BornCounts() []int {
	return u.rules.BornCounts()
}

//ToggleSurvive takes effect on the next Step
func (u *Universe) ToggleSurvive(count int, enabled bool) {
	u.rules.ToggleSurvive(count, enabled)
}

//ToggleBorn takes effect on the next Step
func (u *Universe) ToggleBorn(count int, enabled bool) {
	u.rules.ToggleBorn(count, enabled)
}

//Generation returns the number of steps done
func (u *Universe) Generation() int {
	return u.generation
}

func (u *Universe) Engine() Engine {
	return u.engine
}

//Step advances the universe by exactly one generation
func (u *Universe) Step() Result {
	res := u.engine.Next(&u.area, u.rules)
	u.generation++
	return res
}
