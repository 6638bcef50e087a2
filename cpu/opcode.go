package cpu

import (
	"fmt"
	"strings"
)

// Opcode is an instruction operation.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode,Mode,State
const (
	OP_ADD    = Opcode(1)  // add
	OP_MUL    = Opcode(2)  // mul
	OP_IN     = Opcode(3)  // in
	OP_OUT    = Opcode(4)  // out
	OP_JMPIF  = Opcode(5)  // jmpif
	OP_JMPNOT = Opcode(6)  // jmpnot
	OP_LT     = Opcode(7)  // lt
	OP_EQ     = Opcode(8)  // eq
	OP_ADJREL = Opcode(9)  // adjrel
	OP_HALT   = Opcode(99) // halt
)

// opcodeArity is the number of argument words following each opcode.
var opcodeArity = map[Opcode]int{
	OP_ADD:    3,
	OP_MUL:    3,
	OP_IN:     1,
	OP_OUT:    1,
	OP_JMPIF:  2,
	OP_JMPNOT: 2,
	OP_LT:     3,
	OP_EQ:     3,
	OP_ADJREL: 1,
	OP_HALT:   0,
}

// Valid returns true if the opcode is part of the instruction set.
func (op Opcode) Valid() bool {
	_, ok := opcodeArity[op]
	return ok
}

// Arity returns the number of arguments of the opcode.
func (op Opcode) Arity() int {
	return opcodeArity[op]
}

// Mode is an argument addressing mode.
type Mode int

const (
	MODE_POSITION  = Mode(0) // pos
	MODE_IMMEDIATE = Mode(1) // imm
	MODE_RELATIVE  = Mode(2) // rel
)

// Valid returns true if the mode is a known addressing mode.
func (md Mode) Valid() bool {
	return md >= MODE_POSITION && md <= MODE_RELATIVE
}

// Writable returns true if the mode can address a store destination.
func (md Mode) Writable() bool {
	return md == MODE_POSITION || md == MODE_RELATIVE
}

// State is the run state of a machine.
type State int

const (
	STATE_RUN   = State(0) // run
	STATE_READ  = State(1) // read
	STATE_WRITE = State(2) // write
	STATE_HALT  = State(3) // halt
)

// Code is a decoded instruction word.
type Code struct {
	Word   int64
	Opcode Opcode
	Mode   [3]Mode
}

// Decode splits an instruction word into its opcode and the addressing
// modes of its three argument slots. Only the modes of slots used by the
// opcode are validated.
func Decode(word int64) (code Code, err error) {
	code.Word = word
	code.Opcode = Opcode(word % 100)

	rest := word / 100
	for n := range code.Mode {
		code.Mode[n] = Mode(rest % 10)
		rest /= 10
	}

	if !code.Opcode.Valid() {
		err = ErrOpcodeUnknown
		return
	}

	for n := range code.Opcode.Arity() {
		if !code.Mode[n].Valid() {
			err = ErrModeUnknown
			return
		}
	}

	return
}

// Width returns the number of memory words the instruction occupies.
func (code Code) Width() int64 {
	return int64(code.Opcode.Arity()) + 1
}

// String returns the mnemonic and argument modes, ie "add pos,imm,rel".
func (code Code) String() string {
	arity := code.Opcode.Arity()
	if arity == 0 {
		return code.Opcode.String()
	}

	modes := make([]string, arity)
	for n := range arity {
		modes[n] = code.Mode[n].String()
	}

	return fmt.Sprintf("%v %v", code.Opcode, strings.Join(modes, ","))
}
