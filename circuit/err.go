package circuit

import (
	"errors"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrPhaseCount = errors.New(f("phase count does not match amplifier count"))
	ErrNoPhases   = errors.New(f("no phase settings"))
)

// ErrProtocol reports an amplifier that did not request input or produce
// output when the circuit expected it to.
type ErrProtocol struct {
	Amp  int       // Amplifier index.
	Want cpu.State // Expected machine state.
	Have cpu.State // Actual machine state.
}

func (err ErrProtocol) Error() string {
	return f("amplifier %d in state %v, want %v", err.Amp, err.Have.String(), err.Want.String())
}
