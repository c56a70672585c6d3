package view

import (
	"bytes"
	"fmt"
	"log"
	"rulelife/src/session"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

type ConsoleUI struct {
	s  *session.Session
	g  *gocui.Gui
	k  []keyBindings
	au aurora.Aurora

	liveFiller string
	deadFiller string
	ruleRow    int //the rule row edited by the digit keys
}

var (
	runningStateDescr = map[session.RunningState]string{
		session.RunningStateManual:   aurora.Colorize("waiting", aurora.BlueFg).String(),
		session.RunningStateStep:     "do the step",
		session.RunningStateRun:      aurora.Colorize("running", aurora.CyanFg).String(),
		session.RunningStateFinished: aurora.Colorize("finished", aurora.RedFg).String(),
	}
)

func NewViewTerminal() *ConsoleUI {

	var err error
	t := ConsoleUI{
		au:         aurora.NewAurora(true),
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.g.Mouse = true
	t.k = []keyBindings{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'n', "N", "Next step", t.cmdNextRound, ""},
		{'r', "R", "Run", t.cmdRun, ""},
		{'s', "S", "Stop", t.cmdStop, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'f', "F", "Fill", t.cmdFill, ""},
		{'w', "W", "Settle with random", t.cmdSettleWithRandom, ""},
		{'b', "B", "Switch survive/born", t.cmdSwitchRuleRow, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle the cell or the rule", t.cmdMouseClick, "battlefield"},
		{gocui.MouseLeft, "", "", t.cmdRuleClick, "rules"},
	}
	for c := 0; c <= 8; c++ {
		count := c
		t.k = append(t.k, keyBindings{rune('0' + c), "", "", func(_ *gocui.View) error {
			t.flipRule(t.ruleRow, count)
			return nil
		}, ""})
	}
	t.g.SetManagerFunc(t.layout)

	t.initKeyBindings(t.k)

	return &t
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

func (t *ConsoleUI) Register(s *session.Session) {
	t.s = s
}

func (t *ConsoleUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

func (t *ConsoleUI) Refresh() {
	t.renderField()
	t.renderConfiguration()
	t.renderStatus()
	t.renderRules()
}

func (t *ConsoleUI) renderField() {
	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("battlefield")
		if e != nil {
			return e
		}
		t.drawField(v)
		return nil
	})
}

//drawField must be called from the gui loop
func (t *ConsoleUI) drawField(v *gocui.View) {
	//the entire field is redrawing at once now
	v.Clear()
	maxW, maxH := v.Size()
	_, _ = fmt.Fprint(v, renderArea(t.au, t.s.Area(), maxW, maxH, t.liveFiller, t.deadFiller))
}

func (t *ConsoleUI) renderStatus() {
	s := t.s.Status()
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := g.View("status"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Step", "%v", s.IterationNum))
			_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.LiveCells))
			_, _ = fmt.Fprintln(v, t.renderProp("Evaluation time", "%v", s.IterationTime.Round(time.Microsecond)))
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", runningStateDescr[s.RunningMode]))
		}
		return nil
	})
}

func (t *ConsoleUI) renderConfiguration() {
	//it needs to call Update when calls from goroutine
	t.g.Update(func(g *gocui.Gui) error {
		c := t.s.Options()
		if v, e := g.View("configuration"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", c.Width, c.Height))
			_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", c.Interval))
			_, _ = fmt.Fprintln(v, t.renderProp("Iterations", "%v steps", c.MaxSteps))
			_, _ = fmt.Fprintln(v, t.renderProp("Rules", "%v", t.s.RuleString()))
			_, _ = fmt.Fprintln(v, t.renderProp("Engine", "%v", t.s.EngineDetails()["engine"]))
		}
		return nil
	})
}

func (t *ConsoleUI) renderRules() {
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := g.View("rules"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, renderRuleRow(t.au, ruleRowNames[ruleRowSurvive], t.s.SurviveCounts(), t.ruleRow == ruleRowSurvive))
			_, _ = fmt.Fprintln(v, renderRuleRow(t.au, ruleRowNames[ruleRowBorn], t.s.BornCounts(), t.ruleRow == ruleRowBorn))
			v.Title = "Rules: " + ruleRowNames[t.ruleRow]
		}
		return nil
	})
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+t.au.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	rulesHeight := 3
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("rules")
		_ = g.DeleteView("battlefield")
		return nil
	}
	if _, err := t.headerLayout(g, 3, "This is \"The Life\" game simulation"); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
	}

	bottom := maxY - 5
	rulesTop := bottom - rulesHeight
	middle := 3 + (rulesTop-1-3)/2

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, middle); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, middle+1, leftColumnWidth, rulesTop-1); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("rules", 0, rulesTop, leftColumnWidth, bottom); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = true
		t.renderRules()
	}

	v, err := g.SetView("battlefield", leftColumnWidth+1, 3, maxX-1, bottom)
	if err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Battle Field"
		v.Frame = true
	}
	//the view size may be changed
	t.drawField(v)

	if v, err := g.SetView("help", -1, bottom, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		v.Wrap = true
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		first := true
		for _, k := range t.k {
			if k.name == "" {
				continue
			}
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(t.au.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		b.WriteString(", ")
		b.WriteString(t.au.Green("0-8").String())
		b.WriteString(": Toggle the rule count")
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		if maxX < len(text) {
			panic(fmt.Sprintf("Terminal width is too small: %v", maxX))
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", (maxX-len(text))/2)+text)
	}
	return
}

func (t *ConsoleUI) flipRule(row int, count int) {
	if row == ruleRowBorn {
		t.s.FlipBorn(count)
	} else {
		t.s.FlipSurvive(count)
	}
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdNextRound(_ *gocui.View) error {
	t.s.Step()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.s.Run()
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.s.Stop()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.s.Clear()
	return nil
}

func (t *ConsoleUI) cmdFill(_ *gocui.View) error {
	t.s.Fill()
	return nil
}

func (t *ConsoleUI) cmdSettleWithRandom(_ *gocui.View) error {
	t.s.SettleWithRandomData(time.Now().UnixNano())
	return nil
}

func (t *ConsoleUI) cmdSwitchRuleRow(_ *gocui.View) error {
	t.ruleRow = 1 - t.ruleRow
	t.renderRules()
	return nil
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	t.s.InverseCell(cx+ox, cy+oy)
	return nil
}

func (t *ConsoleUI) cmdRuleClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	if row, count, ok := ruleAt(cx, cy); ok {
		t.flipRule(row, count)
	}
	return nil
}
