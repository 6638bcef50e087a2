// Package circuit chains intcode machines into amplifier circuits, either
// in series or in a feedback loop.
package circuit

import (
	"log"
	"math"
	"slices"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/internal"
)

// Circuit is a chain of amplifiers, each running its own copy of the
// same program. The output of amplifier n is the input of amplifier n+1.
type Circuit struct {
	Verbose bool       // If set, enables verbose logging.
	Amps    []*cpu.Cpu // Amplifier machines, in signal order.
}

// NewCircuit creates a circuit of size amplifiers.
func NewCircuit(program []int64, size int) (circuit *Circuit) {
	circuit = &Circuit{
		Amps: make([]*cpu.Cpu, size),
	}

	for n := range circuit.Amps {
		circuit.Amps[n] = cpu.NewCpu(program)
	}

	return
}

// expect runs amplifier n to its next suspension, and checks its state.
func (circuit *Circuit) expect(n int, want cpu.State) (err error) {
	amp := circuit.Amps[n]

	err = amp.Run()
	if err != nil {
		return
	}

	if amp.State() != want {
		err = ErrProtocol{Amp: n, Want: want, Have: amp.State()}
	}

	return
}

// prime gives each amplifier its phase setting.
func (circuit *Circuit) prime(phases []int64) (err error) {
	if len(phases) != len(circuit.Amps) {
		err = ErrPhaseCount
		return
	}

	for n, phase := range phases {
		err = circuit.expect(n, cpu.STATE_READ)
		if err != nil {
			return
		}
		err = circuit.Amps[n].Write(phase)
		if err != nil {
			return
		}
	}

	return
}

// amplify passes signal through amplifier n. halted is set if the
// amplifier halted instead of requesting the signal.
func (circuit *Circuit) amplify(n int, signal int64) (output int64, halted bool, err error) {
	amp := circuit.Amps[n]

	err = amp.Run()
	if err != nil {
		return
	}

	if amp.State() == cpu.STATE_HALT {
		halted = true
		return
	}

	err = circuit.expect(n, cpu.STATE_READ)
	if err != nil {
		return
	}

	err = amp.Write(signal)
	if err != nil {
		return
	}

	err = circuit.expect(n, cpu.STATE_WRITE)
	if err != nil {
		return
	}

	output, err = amp.Read()
	if circuit.Verbose {
		log.Printf("circuit: amp %d %v -> %v", n, signal, output)
	}

	return
}

// Series sends input through each amplifier once, and returns the output
// of the last amplifier.
func (circuit *Circuit) Series(phases []int64, input int64) (signal int64, err error) {
	err = circuit.prime(phases)
	if err != nil {
		return
	}

	signal = input
	for n := range circuit.Amps {
		var halted bool
		signal, halted, err = circuit.amplify(n, signal)
		if err != nil {
			return
		}
		if halted {
			err = ErrProtocol{Amp: n, Want: cpu.STATE_READ, Have: cpu.STATE_HALT}
			return
		}
	}

	return
}

// Feedback loops the output of the last amplifier back to the first,
// until an amplifier halts. It returns the last signal produced.
func (circuit *Circuit) Feedback(phases []int64, input int64) (signal int64, err error) {
	err = circuit.prime(phases)
	if err != nil {
		return
	}

	signal = input
	for {
		for n := range circuit.Amps {
			output, halted, err := circuit.amplify(n, signal)
			if err != nil || halted {
				return signal, err
			}
			signal = output
		}
	}
}

// Best tries every ordering of the phase settings on a fresh circuit of
// len(phases) amplifiers, and returns the highest final signal with the
// ordering that produced it.
func Best(program []int64, phases []int64, feedback bool, input int64) (best int64, order []int64, err error) {
	if len(phases) == 0 {
		err = ErrNoPhases
		return
	}

	best = math.MinInt64
	for perm := range internal.Permutations(phases) {
		circuit := NewCircuit(program, len(perm))

		var signal int64
		if feedback {
			signal, err = circuit.Feedback(perm, input)
		} else {
			signal, err = circuit.Series(perm, input)
		}
		if err != nil {
			return
		}

		if order == nil || signal > best {
			best = signal
			order = slices.Clone(perm)
		}
	}

	return
}
