package session

import "fmt"

//Point is the cell position
type Point struct {
	X, Y int
}

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name   string  //template name
	Descr  string  //template descr
	Points []Point //live cells
}

var BuiltinTemplates = []Template{
	{"sample", "the test sample with 3 stable patterns", []Point{
		{1, 1}, {1, 2},
		{2, 1}, {2, 2},
		{3, 3},
		{4, 2},
		{4, 3},
		{5, 3},
	}},
	{"block", "2x2 still life", []Point{{1, 1}, {2, 1}, {1, 2}, {2, 2}}},
	{"blinker", "period 2 oscillator", []Point{{1, 2}, {2, 2}, {3, 2}}},
	{"glider", "the smallest spaceship, moves diagonally", []Point{{2, 1}, {3, 2}, {1, 3}, {2, 3}, {3, 3}}},
}

//AddTemplate adds the seeding template to the internal storage
//the universe can be populated with this template by call SettleTemplate
func (s *Session) AddTemplate(tmpl Template) {
	s.mu.Lock()
	s.templates[tmpl.Name] = tmpl
	s.mu.Unlock()
}

//SettleTemplate kills all cells and populates the universe with the seeding template
func (s *Session) SettleTemplate(name string) error {
	s.mu.Lock()
	tmpl, ok := s.templates[name]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w %q", ErrUnknownTemplate, name)
	}
	s.u.Fill(false)
	s.settle(tmpl.Points)
	s.mu.Unlock()
	s.refreshView()
	return nil
}

//Settle makes the cells at the points alive
func (s *Session) Settle(points []Point) {
	s.mu.Lock()
	s.settle(points)
	s.mu.Unlock()
	s.refreshView()
}

//settle places live cells at the points, the points outside the area are skipped
func (s *Session) settle(points []Point) {
	for _, p := range points {
		if p.X < 0 || p.Y < 0 || p.X >= s.u.Width() || p.Y >= s.u.Height() {
			continue
		}
		s.u.Set(p.X, p.Y, true)
	}
	s.state.IterationNum = 0
	s.state.LiveCells = s.u.Area().LiveCells()
}
