package main

import (
	"fmt"
	"log"
	"os"
	"rulelife/src/gfx"
	"rulelife/src/session"
	"rulelife/src/universe"
	"rulelife/src/view"
	"strings"
	"time"

	"github.com/integrii/flaggy"
)

type EnvOptions struct {
	interactive bool
	gui         bool
	randomData  bool
	seed        int64
	dead        bool
	template    string
	scale       int
}

func main() {
	eo, so := initOptions()

	var stateCh chan session.Status
	if !eo.interactive && !eo.gui {
		stateCh = make(chan session.Status, 10) //the buffered channel to getting the session status
	}

	s, err := session.New(*so, stateCh)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	defer s.Close()

	if eo.randomData {
		s.SettleWithRandomData(eo.seed)
	} else if eo.template != "" {
		if err := s.SettleTemplate(eo.template); err != nil {
			flaggy.ShowHelpAndExit(fmt.Sprintf("%v, known templates: %v", err, strings.Join(s.Templates(), ", ")))
		}
	}

	switch {
	case eo.gui:
		if err := gfx.Run(s, eo.scale); err != nil {
			log.Fatalln(err)
		}
	case eo.interactive:
		v := view.NewViewTerminal()
		s.RegisterViewer(v)
		v.Start()
	default:
		runHeadless(s, stateCh)
	}
}

//runHeadless runs the simulation until it is finished, the progress is printed to stdout
func runHeadless(s *session.Session, stateCh chan session.Status) {
	out := view.NewConsoleOut(os.Stdout, true)
	s.Flush()
	s.RegisterViewer(out)
	out.Start()
	s.Run()
	for st := range stateCh {
		if st.RunningMode == session.RunningStateFinished {
			break
		}
	}
}

func initOptions() (eo *EnvOptions, so *session.Options) {
	o := session.DefaultOptions
	so = &o
	eo = &EnvOptions{seed: time.Now().UnixNano(), scale: 8}

	flaggy.SetName("rulelife")
	flaggy.SetDescription("\"The Life\" game simulation with configurable survive and born rules")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&so.Width, "x", "width", "Width of a simulation field")
	flaggy.Int(&so.Height, "y", "height", "Height of a simulation field")
	flaggy.Duration(&so.Interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int(&so.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps, 0 means no limit")
	flaggy.String(&so.Rules, "l", "rules", "Rules in B/S notation, for example B3/S23 or B36/S23")
	flaggy.String(&so.Engine, "e", "engine", "Engine to use ["+strings.Join(universe.EngineNames(), "|")+"]")
	flaggy.Int(&so.Workers, "", "workers", "Workers of the multithreaded engine")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&eo.gui, "g", "gui", "Start the window mode")
	flaggy.Bool(&eo.randomData, "r", "random", "Settle with random data")
	flaggy.Int64(&eo.seed, "", "seed", "Seed of the random data")
	flaggy.String(&eo.template, "t", "template", "Settle with the template [block|blinker|glider|sample]")
	flaggy.Bool(&eo.dead, "", "dead", "Start with all cells dead instead of all alive")
	flaggy.Int(&eo.scale, "", "scale", "Pixels per cell in the window mode")

	flaggy.Parse()

	so.Fill = universe.Cell(!eo.dead)
	if so.MaxSteps == 0 && !eo.interactive && !eo.gui {
		flaggy.ShowHelpAndExit("maxSteps is required in the non-interactive mode")
	}
	return
}
