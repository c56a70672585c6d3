package universe

import (
	"errors"
	"math/rand"
	"testing"
)

func newTestUniverse(t *testing.T, engine string, rows ...string) *Universe {
	t.Helper()
	a := areaOf(rows...)
	u, err := New(Options{Width: a.Width, Height: a.Height, Engine: engine, Workers: 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			u.Set(x, y, bool(a.Get(x, y)))
		}
	}
	return u
}

func expectArea(t *testing.T, u *Universe, rows ...string) {
	t.Helper()
	want := areaOf(rows...)
	if got := u.Area(); !got.Equal(want) {
		t.Fatalf("generation %v:\ngot  %v\nwant %v", u.Generation(), got.Cells, want.Cells)
	}
}

func forEachEngine(t *testing.T, f func(t *testing.T, engine string)) {
	for _, e := range EngineNames() {
		e := e
		t.Run(e, func(t *testing.T) { f(t, e) })
	}
}

func TestNew_Defaults(t *testing.T) {
	u, err := New(Options{Width: 8, Height: 8, Fill: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if u.Width() != 8 || u.Height() != 8 {
		t.Errorf("unexpected size %vx%v", u.Width(), u.Height())
	}
	if u.Area().LiveCells() != 64 {
		t.Errorf("all cells must be alive")
	}
	if u.Rules().String() != DefRules {
		t.Errorf("unexpected rules %v", u.Rules())
	}
	if u.Engine().Name() != DefEngine {
		t.Errorf("unexpected engine %v", u.Engine().Name())
	}
}

func TestNew_Invalid(t *testing.T) {
	if _, err := New(Options{Width: 0, Height: 3}); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
	if _, err := New(Options{Width: 3, Height: 3, Rules: "B9/S23"}); !errors.Is(err, ErrInvalidRule) {
		t.Errorf("expected ErrInvalidRule, got %v", err)
	}
	if _, err := New(Options{Width: 3, Height: 3, Engine: "gpu"}); !errors.Is(err, ErrUnknownEngine) {
		t.Errorf("expected ErrUnknownEngine, got %v", err)
	}
}

func TestStep_LonelyCellDies(t *testing.T) {
	forEachEngine(t, func(t *testing.T, engine string) {
		u := newTestUniverse(t, engine,
			"...",
			".#.",
			"...",
		)
		res := u.Step()
		expectArea(t, u,
			"...",
			"...",
			"...",
		)
		if res.LiveCells != 0 || !res.Changed {
			t.Errorf("unexpected result %+v", res)
		}
	})
}

func TestStep_BlockIsStill(t *testing.T) {
	forEachEngine(t, func(t *testing.T, engine string) {
		block := []string{
			"......",
			".##...",
			".##...",
			"......",
			"......",
		}
		u := newTestUniverse(t, engine, block...)
		for i := 0; i < 5; i++ {
			res := u.Step()
			if res.Changed || res.LiveCells != 4 {
				t.Fatalf("step %v: unexpected result %+v", i, res)
			}
			expectArea(t, u, block...)
		}
	})
}

func TestStep_BlinkerOscillates(t *testing.T) {
	forEachEngine(t, func(t *testing.T, engine string) {
		horizontal := []string{
			".....",
			".....",
			".###.",
			".....",
			".....",
		}
		vertical := []string{
			".....",
			"..#..",
			"..#..",
			"..#..",
			".....",
		}
		u := newTestUniverse(t, engine, horizontal...)
		u.Step()
		expectArea(t, u, vertical...)
		u.Step()
		expectArea(t, u, horizontal...)
		if u.Generation() != 2 {
			t.Errorf("Generation() = %v, want 2", u.Generation())
		}
	})
}

func TestStep_EmptyStaysEmpty(t *testing.T) {
	forEachEngine(t, func(t *testing.T, engine string) {
		u, err := New(Options{Width: 7, Height: 4, Engine: engine})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		for i := 0; i < 10; i++ {
			if res := u.Step(); res.LiveCells != 0 || res.Changed {
				t.Fatalf("step %v: unexpected result %+v", i, res)
			}
		}
	})
}

func TestStep_FullBoardKeepsCorners(t *testing.T) {
	forEachEngine(t, func(t *testing.T, engine string) {
		u, err := New(Options{Width: 4, Height: 4, Fill: true, Engine: engine})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		u.Step()
		expectArea(t, u,
			"#..#",
			"....",
			"....",
			"#..#",
		)
	})
}

func TestStep_DimensionsAndDeterminism(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	forEachEngine(t, func(t *testing.T, engine string) {
		for _, size := range [][2]int{{1, 1}, {1, 9}, {9, 1}, {13, 7}, {32, 31}} {
			start := randomArea(rnd, size[0], size[1])
			var results []Area
			for run := 0; run < 2; run++ {
				u, err := New(Options{Width: size[0], Height: size[1], Engine: engine, Rules: "B36/S23"})
				if err != nil {
					t.Fatalf("New: %v", err)
				}
				copy(u.area.Cells, start.Cells)
				u.Step()
				if u.Width() != size[0] || u.Height() != size[1] || len(u.area.Cells) != size[0]*size[1] {
					t.Fatalf("dimensions changed: %vx%v, %v cells", u.Width(), u.Height(), len(u.area.Cells))
				}
				results = append(results, u.Area())
			}
			if !results[0].Equal(results[1]) {
				t.Errorf("%vx%v: two runs from the same generation differ", size[0], size[1])
			}
		}
	})
}

func TestStep_MatchesReference(t *testing.T) {
	rules := []struct {
		survive, born []int
	}{
		{[]int{2, 3}, []int{3}},
		{[]int{2, 3}, []int{3, 6}},
		{[]int{1, 3, 5, 7}, []int{1, 3, 5, 7}},
		{[]int{0, 8}, []int{0, 1, 2}},
		{nil, nil},
	}
	forEachEngine(t, func(t *testing.T, engine string) {
		rnd := rand.New(rand.NewSource(42))
		for _, r := range rules {
			u, err := New(Options{Width: 23, Height: 17, Engine: engine, Workers: 4})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			u.SetRules(NewRuleSet(r.survive, r.born))
			copy(u.area.Cells, randomArea(rnd, 23, 17).Cells)
			for i := 0; i < 5; i++ {
				want := referenceNext(u.Area(), r.survive, r.born)
				u.Step()
				if !u.Area().Equal(want) {
					t.Fatalf("rules %v step %v differs from the reference", u.Rules(), i)
				}
			}
		}
	})
}

func TestUniverse_ToggleTakesEffectOnNextStep(t *testing.T) {
	u := newTestUniverse(t, "base",
		"...",
		".#.",
		"...",
	)
	u.ToggleSurvive(0, true)
	u.Step()
	if !u.Get(1, 1) {
		t.Fatalf("lonely cell must survive with S0")
	}
	u.ToggleSurvive(0, false)
	u.Step()
	if u.Get(1, 1) {
		t.Errorf("lonely cell must die without S0")
	}

	u.ToggleBorn(0, true)
	u.Step()
	if u.Area().LiveCells() != 9 {
		t.Errorf("B0 must give birth to every dead cell, got %v live", u.Area().LiveCells())
	}
}

func TestUniverse_SetRulesCopies(t *testing.T) {
	u := newTestUniverse(t, "base", "...")
	r := ConwayRules()
	u.SetRules(r)
	r.ToggleBorn(0, true)
	if u.Rules().Born(0) {
		t.Errorf("universe must keep its own copy of the rules")
	}
}

func TestEngine_LengthMismatchPanics(t *testing.T) {
	forEachEngine(t, func(t *testing.T, engine string) {
		e, err := NewEngine(engine, Options{Width: 4, Height: 4})
		if err != nil {
			t.Fatalf("NewEngine: %v", err)
		}
		a := NewArea(4, 4, true)
		a.Cells = a.Cells[:15]
		before := a.Clone()
		mustPanic(t, engine, func() { e.Next(&a, ConwayRules()) })
		if !a.Equal(before) {
			t.Errorf("the broken generation must not be committed")
		}
	})
}

func TestEngineNames(t *testing.T) {
	names := EngineNames()
	if len(names) != 4 {
		t.Fatalf("unexpected engines %v", names)
	}
	for _, n := range names {
		e, err := NewEngine(n, Options{Width: 3, Height: 3})
		if err != nil {
			t.Fatalf("NewEngine(%q): %v", n, err)
		}
		if e.Name() != n || e.Details()["engine"] != n {
			t.Errorf("engine %q reports name %q, details %v", n, e.Name(), e.Details())
		}
	}
}

func TestUniverse_Membership(t *testing.T) {
	u := newTestUniverse(t, "base", "...")
	if !u.Survives(2) || !u.Survives(3) || u.Survives(4) || !u.Born(3) || u.Born(2) {
		t.Errorf("unexpected membership for %v", u.Rules())
	}
	u.ToggleBorn(6, true)
	if !u.Born(6) {
		t.Errorf("born 6 is not set")
	}
	mustPanic(t, "survives 9", func() { u.Survives(9) })
	mustPanic(t, "born -1", func() { u.Born(-1) })
}
