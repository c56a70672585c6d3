//go:build !ebiten

package gfx

import (
	"errors"
	"rulelife/src/session"
)

//Run reports that the window front end isn't compiled in
func Run(_ *session.Session, _ int) error {
	return errors.New("the GUI requires building with the 'ebiten' tag: go build -tags ebiten ./src")
}
