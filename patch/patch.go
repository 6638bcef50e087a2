// Package patch runs intcode programs with selected memory words replaced,
// and searches for the noun and verb words that produce a given result.
package patch

import (
	"errors"
	"maps"
	"slices"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrNotFound = errors.New(f("no noun and verb produce the target"))
	ErrNotHalt  = errors.New(f("program did not halt"))
)

const (
	ADDR_RESULT = 0 // Address of the program result.
	ADDR_NOUN   = 1 // Address of the noun.
	ADDR_VERB   = 2 // Address of the verb.
)

// Apply returns a copy of program with each patch address overwritten.
func Apply(program []int64, patches map[int64]int64) (patched []int64, err error) {
	mem := cpu.NewMemory(program)

	for _, addr := range slices.Sorted(maps.Keys(patches)) {
		err = mem.Store(addr, patches[addr])
		if err != nil {
			return
		}
	}

	patched = mem.Cells()
	return
}

// Run executes program with noun and verb patched in, and returns the
// word left at address 0. The program may not perform I/O.
func Run(program []int64, noun, verb int64) (result int64, err error) {
	patched, err := Apply(program, map[int64]int64{ADDR_NOUN: noun, ADDR_VERB: verb})
	if err != nil {
		return
	}

	machine := cpu.NewCpu(patched)
	err = machine.Run()
	if err != nil {
		return
	}

	if machine.State() != cpu.STATE_HALT {
		err = ErrNotHalt
		return
	}

	return machine.Peek(ADDR_RESULT)
}

// Search tries every noun and verb in [0, limit), and returns the first
// pair whose result is target. Faulting pairs are skipped.
func Search(program []int64, target int64, limit int64) (noun, verb int64, err error) {
	for noun = 0; noun < limit; noun++ {
		for verb = 0; verb < limit; verb++ {
			result, err := Run(program, noun, verb)
			if err == nil && result == target {
				return noun, verb, nil
			}
		}
	}

	return 0, 0, ErrNotFound
}
