package cpu

import (
	"errors"
	"strconv"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrStateInvalid       = errors.New(f("state invalid"))
	ErrOpcodeUnknown      = errors.New(f("opcode unknown"))
	ErrModeUnknown        = errors.New(f("mode unknown"))
	ErrModeImmediateWrite = errors.New(f("write to immediate"))
	ErrAddressNegative    = errors.New(f("address negative"))

	// Program parse errors
	ErrProgramEmpty = errors.New(f("program empty"))
)

// ErrFault is a fatal machine error, annotated with the location of the
// faulting instruction.
type ErrFault struct {
	Ip   int64 // Instruction pointer at the time of the fault.
	Word int64 // Instruction word at Ip.
	Err  error
}

func (err *ErrFault) Error() string {
	return f("ip %s (%s) %v", strconv.FormatInt(err.Ip, 10), strconv.FormatInt(err.Word, 10), err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}

// ErrState reports a driver call made in the wrong machine state.
type ErrState struct {
	Want State
	Have State
}

func (err ErrState) Error() string {
	return f("state %v, want %v", err.Have.String(), err.Want.String())
}

func (err ErrState) Is(target error) bool {
	return target == ErrStateInvalid
}

// ErrSyntax is a program text parse error.
type ErrSyntax struct {
	Index int    // Index of the offending value.
	Text  string // Offending text.
	Err   error
}

func (err ErrSyntax) Error() string {
	return f("value %s '%v' %v", strconv.Itoa(err.Index), err.Text, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
