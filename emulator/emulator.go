// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs an intcode machine against input and output
// channels, so that callers only ever observe running or halted machines.
package emulator

import (
	"errors"
	"log"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/io"
)

// Emulator state. CPU + IO channels.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the machine simulation.

	Input  io.Channel // Source of values for input instructions.
	Output io.Channel // Sink of values from output instructions.
}

// NewEmulator creates a new emulator for a program, with an empty input
// queue and an output queue.
func NewEmulator(program []int64) (emu *Emulator) {
	emu = &Emulator{
		Cpu:    cpu.NewCpu(program),
		Input:  io.NewQueue(),
		Output: io.NewQueue(),
	}

	return
}

// Tick runs the machine to its next suspension and services it.
// done is set once the machine has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: emu.Cpu.Ip(), Err: err}
		}
	}()

	err = emu.Cpu.Run()
	if err != nil {
		return
	}

	switch emu.Cpu.State() {
	case cpu.STATE_HALT:
		done = true
	case cpu.STATE_READ:
		var value int64
		value, err = emu.Input.Receive()
		if errors.Is(err, io.ErrChannelEmpty) {
			err = errors.Join(ErrInputEmpty, err)
			return
		}
		if err != nil {
			return
		}
		if emu.Verbose {
			log.Printf("emulator: input %v", value)
		}
		err = emu.Cpu.Write(value)
	case cpu.STATE_WRITE:
		var value int64
		value, err = emu.Cpu.Read()
		if err != nil {
			return
		}
		if emu.Verbose {
			log.Printf("emulator: output %v", value)
		}
		err = emu.Output.Send(value)
		if errors.Is(err, io.ErrChannelFull) {
			err = errors.Join(ErrOutputFull, err)
		}
	}

	return
}

// Run ticks the emulator until the machine halts.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	if emu.Verbose {
		log.Printf("emulator: halted after %v ticks", emu.Cpu.Ticks)
	}

	return
}

// Execute runs a program to completion with the given inputs, and returns
// every value it output.
func Execute(program []int64, inputs ...int64) (outputs []int64, err error) {
	emu := NewEmulator(program)
	emu.Input = io.NewQueue(inputs...)
	output := io.NewQueue()
	emu.Output = output

	err = emu.Run()
	outputs = output.Drain()

	return
}
