package view

import (
	"fmt"
	"io"
	"rulelife/src/session"
	"sort"
	"time"

	"github.com/logrusorgru/aurora"
)

//ConsoleOut prints the progress and the summary of the non-interactive simulation
type ConsoleOut struct {
	s         *session.Session
	w         io.Writer
	au        aurora.Aurora
	every     int //print the progress every n iterations
	startTime time.Time
}

func NewConsoleOut(w io.Writer, colors bool) *ConsoleOut {
	return &ConsoleOut{w: w, au: aurora.NewAurora(colors), every: 10}
}

func (c *ConsoleOut) Refresh() {
	st := c.s.Status()
	if st.RunningMode == session.RunningStateFinished {
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		resultData := map[string]interface{}{
			"Last iteration": st.IterationNum,
			"Total time":     totalTime,
			"Live cells":     st.LiveCells,
		}
		fmt.Fprintln(c.w, "\n"+c.au.Red("Finished:").String())
		c.printHashData(resultData)
	} else if st.RunningMode == session.RunningStateRun {
		if st.IterationNum%c.every == 0 {
			fmt.Fprintf(c.w, "  Iterations done: %v, live cells: %v\n", c.au.Cyan(st.IterationNum), st.LiveCells)
		}
	}
}

func (c *ConsoleOut) Register(s *session.Session) {
	c.s = s
	o := c.s.Options()
	fmt.Fprintln(c.w, c.au.Green("Running configuration:"))
	fmt.Fprintf(c.w, "  Dimension: %v x %v\n", o.Width, o.Height)
	fmt.Fprintf(c.w, "  Interval: %v\n", o.Interval)
	fmt.Fprintf(c.w, "  Max iterations: %v steps\n", o.MaxSteps)
	fmt.Fprintf(c.w, "  Rules: %v\n", c.s.RuleString())
	c.printHashData(c.s.EngineDetails())
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	fmt.Fprintln(c.w, "\nSimulation started...")
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Fprintf(c.w, "  %s: %v\n", propName, d[propName])
	}
}
