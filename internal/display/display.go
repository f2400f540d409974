// Package display implements the terminal side of the game: it draws
// snapshots and turns key presses into loop commands.
package display

import (
	"log"

	"github.com/pkg/errors"

	"github.com/rovaughn/termsnake/internal/loop"
)

var ErrUnknownBackend = errors.New("display: unknown backend")

const (
	BackendTcell = "tcell"
	BackendANSI  = "ansi"
)

var (
	_ loop.Display = (*Tcell)(nil)
	_ loop.Display = (*ANSI)(nil)
)

// New returns the named backend. An empty name selects tcell.
func New(name string, logger *log.Logger) (loop.Display, error) {
	switch name {
	case "", BackendTcell:
		return NewTcell(logger), nil
	case BackendANSI:
		return NewANSI(logger), nil
	default:
		return nil, errors.Wrapf(ErrUnknownBackend, "%q", name)
	}
}
