// Package cpu implements the intcode machine.
//
// A machine holds a zero-filled, auto-extending memory of signed integers,
// an instruction pointer (ip) and a relative base register. Instructions
// are decimal-encoded: the two low digits select the opcode and each
// higher digit selects the addressing mode (position, immediate or
// relative) of one argument.
//
// Input and output never block. An input instruction parks the machine in
// the READ state until the driver supplies a value with Write; an output
// instruction parks it in the WRITE state until the driver takes the value
// with Read. Drivers resume execution by calling Run again.
package cpu
