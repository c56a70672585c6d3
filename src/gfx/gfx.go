//go:build ebiten

package gfx

import (
	"errors"
	"fmt"
	"image/color"
	"rulelife/src/session"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	onPixel  = [4]byte{0x50, 0xe0, 0x70, 0xff}
	offPixel = [4]byte{0x10, 0x10, 0x14, 0xff}

	ruleOnColor  = color.RGBA{R: 80, G: 224, B: 112, A: 255}
	ruleOffColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	textColor    = color.RGBA{R: 230, G: 230, B: 240, A: 255}

	digitKeys = [...]ebiten.Key{
		ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2,
		ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
		ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
	}
)

//Game adapts a session to the ebiten.Game interface.
type Game struct {
	s     *session.Session
	l     layout
	field *ebiten.Image
	pixel *ebiten.Image
	buf   []byte
}

//NewGame constructs a Game drawing every cell as a scale x scale square.
func NewGame(s *session.Session, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	o := s.Options()
	g := &Game{
		s:     s,
		l:     layout{cols: o.Width, rows: o.Height, scale: scale},
		field: ebiten.NewImage(o.Width, o.Height),
		pixel: ebiten.NewImage(1, 1),
		buf:   make([]byte, 4*o.Width*o.Height),
	}
	g.pixel.Fill(color.White)
	return g
}

//Run opens the window and blocks until it is closed.
func Run(s *session.Session, scale int) error {
	g := NewGame(s, scale)
	w, h := g.l.size()
	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

//Update handles the keyboard and the mouse, the session does the stepping.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.s.Status().RunningMode == session.RunningStateRun {
			g.s.Stop()
		} else {
			g.s.Run()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.s.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.s.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.s.Fill()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.s.SettleWithRandomData(time.Now().UnixNano())
	}
	born := ebiten.IsKeyPressed(ebiten.KeyShift)
	for c, k := range digitKeys {
		if !inpututil.IsKeyJustPressed(k) {
			continue
		}
		if born {
			g.s.FlipBorn(c)
		} else {
			g.s.FlipSurvive(c)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if x, y, ok := g.l.cellAt(mx, my); ok {
			g.s.InverseCell(x, y)
		} else if row, c, ok := g.l.ruleAt(mx, my); ok {
			if row == ruleRowBorn {
				g.s.FlipBorn(c)
			} else {
				g.s.FlipSurvive(c)
			}
		}
	}
	return nil
}

//Draw renders the cells, the rule toggles and the status.
func (g *Game) Draw(screen *ebiten.Image) {
	a := g.s.Area()
	fillBinaryRGBA(g.buf, a.Cells, onPixel, offPixel)
	g.field.WritePixels(g.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.l.scale), float64(g.l.scale))
	screen.DrawImage(g.field, op)

	face := basicfont.Face7x13
	rules := g.s.Rules()
	for row, label := range []string{"S", "B"} {
		top := g.l.fieldHeight() + row*boxSize
		text.Draw(screen, label, face, 6, top+boxSize-6, textColor)
		for c := 0; c < len(digitKeys); c++ {
			on := rules.Survives(c)
			if row == ruleRowBorn {
				on = rules.Born(c)
			}
			rect := g.l.ruleRect(row, c)
			bg := ruleOffColor
			if on {
				bg = ruleOnColor
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
			op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
			op.ColorScale.ScaleWithColor(bg)
			screen.DrawImage(g.pixel, op)
			text.Draw(screen, fmt.Sprint(c), face, rect.Min.X+5, rect.Max.Y-4, textColor)
		}
	}

	st := g.s.Status()
	statusTop := g.l.fieldHeight() + 2*boxSize
	text.Draw(screen, fmt.Sprintf("%v  step %v  live %v", rules, st.IterationNum, st.LiveCells), face, 4, statusTop+lineHeight-3, textColor)
	text.Draw(screen, fmt.Sprintf("mode %v  (space run/pause, n step)", st.RunningMode), face, 4, statusTop+2*lineHeight-3, textColor)
}

//Layout returns the logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.l.size()
}
