package droid

import (
	"errors"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrTileUnknown = errors.New(f("tile unknown"))
	ErrBacktrack   = errors.New(f("backtrack blocked"))
)

// ErrProtocol reports a droid program that did not request a command or
// reply with a status when expected.
type ErrProtocol struct {
	Want cpu.State
	Have cpu.State
}

func (err ErrProtocol) Error() string {
	return f("droid in state %v, want %v", err.Have.String(), err.Want.String())
}
