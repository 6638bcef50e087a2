// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/ezrec/intcode/circuit"
	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/droid"
	"github.com/ezrec/intcode/emulator"
	"github.com/ezrec/intcode/internal"
	"github.com/ezrec/intcode/io"
	"github.com/ezrec/intcode/patch"
	"github.com/ezrec/intcode/script"
)

// parseValues parses a comma separated list of integers.
func parseValues(text string) (values []int64, err error) {
	if len(strings.TrimSpace(text)) == 0 {
		return
	}

	return cpu.ParseProgram(strings.NewReader(text))
}

func main() {
	var program string
	var preset string
	var input string
	var output string
	var ascii bool
	var mode string
	var phases string
	var best bool
	var target int64
	var star string
	var verbose bool

	flag.StringVar(&program, "p", "", "Intcode program file")
	flag.StringVar(&preset, "i", "", "Comma separated inputs, read before the tape")
	flag.StringVar(&input, "t", "-", "Tape input ('' for none)")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.BoolVar(&ascii, "a", false, "ASCII mode tape")
	flag.StringVar(&mode, "m", "run", "Mode: run, series, feedback, droid, search")
	flag.StringVar(&phases, "phases", "", "Comma separated amplifier phases")
	flag.BoolVar(&best, "b", false, "Search phase orders for the best signal")
	flag.Int64Var(&target, "target", 0, "Search target result")
	flag.StringVar(&star, "s", "", "Starlark script driving input and output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(program) == 0 {
		log.Fatalf("%v: -p program file required", os.Args[0])
	}

	prog, err := cpu.LoadProgram(program)
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}

	inputs, err := parseValues(preset)
	if err != nil {
		log.Fatalf("-i: %v", err)
	}

	switch mode {
	case "run":
		emu := emulator.NewEmulator(prog)
		emu.Verbose = verbose

		tape := &io.Tape{Ascii: ascii}

		switch input {
		case "":
		case "-":
			tape.Input = os.Stdin
		default:
			inf, err := os.Open(input)
			if err != nil {
				log.Fatalf("%v: %v", input, err)
			}
			defer inf.Close()
			tape.Input = inf
		}

		if output == "-" {
			tape.Output = os.Stdout
		} else {
			ouf, err := os.Create(output)
			if err != nil {
				log.Fatalf("%v: %v", output, err)
			}
			defer ouf.Close()
			tape.Output = ouf
		}

		if len(star) != 0 {
			driver, err := script.Load(star, nil)
			if err != nil {
				log.Fatalf("%v: %v", star, err)
			}
			driver.Verbose = verbose
			emu.Input = driver
			emu.Output = driver
		} else {
			seq := io.NewSequence(internal.IterSeqConcat(slices.Values(inputs), tape.Values()))
			defer seq.Close()
			emu.Input = seq
			emu.Output = tape
		}

		err = emu.Run()
		if err != nil {
			log.Fatal(err)
		}
	case "series", "feedback":
		feedback := mode == "feedback"

		values, err := parseValues(phases)
		if err != nil {
			log.Fatalf("-phases: %v", err)
		}

		var signal int64
		if len(inputs) != 0 {
			signal = inputs[0]
		}

		if best {
			best, order, err := circuit.Best(prog, values, feedback, signal)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("%v %v\n", best, order)
			break
		}

		amps := circuit.NewCircuit(prog, len(values))
		amps.Verbose = verbose
		if feedback {
			signal, err = amps.Feedback(values, signal)
		} else {
			signal, err = amps.Series(values, signal)
		}
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(signal)
	case "droid":
		machine := droid.NewMachine(prog)
		machine.Verbose = verbose

		maze, err := droid.Explore(machine)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Print(maze)

		oxygen, ok := maze.Find(droid.TILE_OXYGEN)
		if !ok {
			log.Fatalf("%v: no oxygen system found", program)
		}

		steps, _ := maze.Distance(droid.Point{}, oxygen)
		fmt.Printf("distance %v\n", steps)
		fmt.Printf("fill %v\n", maze.Fill(oxygen))
	case "search":
		noun, verb, err := patch.Search(prog, target, 100)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(noun*100 + verb)
	default:
		log.Fatalf("%v: unknown mode '%v'", os.Args[0], mode)
	}
}
