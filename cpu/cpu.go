package cpu

import (
	"fmt"
	"log"
)

// Cpu is the simulation context of a single intcode machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Ticks int // Instructions executed.

	ip     int64   // Instruction pointer.
	rb     int64   // Relative base.
	state  State   // Run state.
	output int64   // Pending output, valid in STATE_WRITE.
	memory *Memory // Program memory.
	fault  error   // First fatal error, if any.
}

// NewCpu creates a machine loaded with a copy of the program.
func NewCpu(program []int64) (cpu *Cpu) {
	cpu = &Cpu{
		state:  STATE_RUN,
		memory: NewMemory(program),
	}

	return
}

// Ip returns the instruction pointer.
func (cpu *Cpu) Ip() int64 {
	return cpu.ip
}

// RelativeBase returns the relative base register.
func (cpu *Cpu) RelativeBase() int64 {
	return cpu.rb
}

// State returns the run state.
func (cpu *Cpu) State() State {
	return cpu.state
}

// Err returns the fault that stopped the machine, or nil.
func (cpu *Cpu) Err() error {
	return cpu.fault
}

// Peek returns the memory word at addr.
func (cpu *Cpu) Peek(addr int64) (value int64, err error) {
	return cpu.memory.Load(addr)
}

// Memory returns a copy of the machine memory.
func (cpu *Cpu) Memory() []int64 {
	return cpu.memory.Cells()
}

// Clone returns an independent copy of the machine, including its memory,
// registers and state.
func (cpu *Cpu) Clone() (clone *Cpu) {
	dup := *cpu
	dup.memory = cpu.memory.Clone()
	clone = &dup

	return
}

// String returns the current machine state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 6s: %v\n", "ip", cpu.ip)
	text += fmt.Sprintf("% 6s: %v\n", "rb", cpu.rb)
	text += fmt.Sprintf("% 6s: %v\n", "state", cpu.state)
	if cpu.state == STATE_WRITE {
		text += fmt.Sprintf("% 6s: %v\n", "output", cpu.output)
	}
	text += fmt.Sprintf("% 6s: %v\n", "ticks", cpu.Ticks)
	if cpu.fault != nil {
		text += fmt.Sprintf("% 6s: %v\n", "fault", cpu.fault)
	}

	return
}

// fail records err as the machine's fault and returns it.
func (cpu *Cpu) fail(err error) error {
	word, _ := cpu.memory.Load(cpu.ip)
	cpu.fault = &ErrFault{Ip: cpu.ip, Word: word, Err: err}

	if cpu.Verbose {
		log.Printf("%04d: fault %v", cpu.ip, err)
	}

	return cpu.fault
}

// fetch decodes the instruction at the instruction pointer.
func (cpu *Cpu) fetch() (code Code, err error) {
	word, err := cpu.memory.Load(cpu.ip)
	if err != nil {
		return
	}

	code, err = Decode(word)
	return
}

// address returns the effective address of argument slot n.
func (cpu *Cpu) address(code Code, n int) (addr int64, err error) {
	raw, err := cpu.memory.Load(cpu.ip + 1 + int64(n))
	if err != nil {
		return
	}

	switch code.Mode[n] {
	case MODE_POSITION:
		addr = raw
	case MODE_RELATIVE:
		addr = cpu.rb + raw
	case MODE_IMMEDIATE:
		err = ErrModeImmediateWrite
		return
	default:
		err = ErrModeUnknown
		return
	}

	if addr < 0 {
		err = ErrAddressNegative
	}

	return
}

// load returns the value of argument slot n.
func (cpu *Cpu) load(code Code, n int) (value int64, err error) {
	if code.Mode[n] == MODE_IMMEDIATE {
		return cpu.memory.Load(cpu.ip + 1 + int64(n))
	}

	addr, err := cpu.address(code, n)
	if err != nil {
		return
	}

	return cpu.memory.Load(addr)
}

// store writes value to the destination of argument slot n.
func (cpu *Cpu) store(code Code, n int, value int64) (err error) {
	addr, err := cpu.address(code, n)
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("%04d: [%v] <- %v", cpu.ip, addr, value)
	}

	return cpu.memory.Store(addr, value)
}

// reads is the number of leading argument slots each opcode reads as values.
// Destination slots are never dereferenced.
var reads = map[Opcode]int{
	OP_ADD:    2,
	OP_MUL:    2,
	OP_OUT:    1,
	OP_JMPIF:  2,
	OP_JMPNOT: 2,
	OP_LT:     2,
	OP_EQ:     2,
	OP_ADJREL: 1,
}

// flag converts a comparison result to a machine word.
func flag(cond bool) int64 {
	if cond {
		return 1
	}
	return 0
}

// Step executes the instruction at the instruction pointer.
// The machine must be in STATE_RUN.
func (cpu *Cpu) Step() (err error) {
	if cpu.fault != nil {
		return cpu.fault
	}

	if cpu.state != STATE_RUN {
		return cpu.fail(ErrState{Want: STATE_RUN, Have: cpu.state})
	}

	code, err := cpu.fetch()
	if err != nil {
		return cpu.fail(err)
	}

	if cpu.Verbose {
		log.Printf("%04d: %v", cpu.ip, code)
	}

	cpu.Ticks++

	var arg [2]int64
	for n := range reads[code.Opcode] {
		arg[n], err = cpu.load(code, n)
		if err != nil {
			return cpu.fail(err)
		}
	}
	a, b := arg[0], arg[1]

	next_ip := cpu.ip + code.Width()

	switch code.Opcode {
	case OP_ADD:
		err = cpu.store(code, 2, a+b)
	case OP_MUL:
		err = cpu.store(code, 2, a*b)
	case OP_IN:
		// Parked until Write supplies the value.
		cpu.state = STATE_READ
		return
	case OP_OUT:
		cpu.output = a
		cpu.state = STATE_WRITE
	case OP_JMPIF:
		if a != 0 {
			next_ip = b
		}
	case OP_JMPNOT:
		if a == 0 {
			next_ip = b
		}
	case OP_LT:
		err = cpu.store(code, 2, flag(a < b))
	case OP_EQ:
		err = cpu.store(code, 2, flag(a == b))
	case OP_ADJREL:
		cpu.rb += a
	case OP_HALT:
		cpu.state = STATE_HALT
		return
	default:
		err = ErrOpcodeUnknown
	}

	if err != nil {
		return cpu.fail(err)
	}

	cpu.ip = next_ip

	return
}

// Run steps the machine until it halts or suspends on input or output.
// A machine that is not in STATE_RUN returns at once.
func (cpu *Cpu) Run() (err error) {
	if cpu.fault != nil {
		return cpu.fault
	}

	for cpu.state == STATE_RUN {
		err = cpu.Step()
		if err != nil {
			return
		}
	}

	return
}

// Write completes a pending input instruction with value, and returns the
// machine to STATE_RUN. The machine must be in STATE_READ.
func (cpu *Cpu) Write(value int64) (err error) {
	if cpu.fault != nil {
		return cpu.fault
	}

	if cpu.state != STATE_READ {
		return cpu.fail(ErrState{Want: STATE_READ, Have: cpu.state})
	}

	code, err := cpu.fetch()
	if err != nil {
		return cpu.fail(err)
	}

	err = cpu.store(code, 0, value)
	if err != nil {
		return cpu.fail(err)
	}

	cpu.ip += code.Width()
	cpu.state = STATE_RUN

	return
}

// Read consumes the pending output value, and returns the machine to
// STATE_RUN. The machine must be in STATE_WRITE.
func (cpu *Cpu) Read() (value int64, err error) {
	if cpu.fault != nil {
		err = cpu.fault
		return
	}

	if cpu.state != STATE_WRITE {
		err = cpu.fail(ErrState{Want: STATE_WRITE, Have: cpu.state})
		return
	}

	value = cpu.output
	cpu.state = STATE_RUN

	return
}
