// Package cpu implements the MOS 6502 processor core of the emulator:
// the register file, status flag semantics and the instruction engine
// that decodes and executes one opcode per step.
package cpu

import (
	"github.com/retroenv/retrogolib/arch/system/nes"
	"github.com/retroenv/retrogolib/log"
)

// Memory is the address space the processor executes against.
// All functions are total over the full 16-bit address range.
type Memory interface {
	Read(address uint16) byte
	Write(address uint16, value byte)
}

// Canonical power-on register values.
const (
	initialStackPointer = 0xFD
	initialStatus       = FlagU | FlagI // 0x24
)

// CPU holds the register file and status flags of the processor.
// It is owned by one emulator instance and mutated only by the
// instruction engine, never concurrently.
type CPU struct {
	logger *log.Logger
	mem    Memory

	A      byte   // accumulator
	X      byte   // index register X
	Y      byte   // index register Y
	SP     byte   // stack pointer
	PC     uint16 // program counter
	Status byte   // status flags
}

// New creates a CPU executing against the given address space.
// The registers hold indeterminate values until Reset establishes
// the power-on state, which has to happen before the first step.
func New(logger *log.Logger, mem Memory) *CPU {
	return &CPU{
		logger: logger,
		mem:    mem,
	}
}

// Reset establishes the canonical power-on state: cleared general
// purpose registers, the stack pointer at its post-reset offset and
// the program counter at the program base address. It is idempotent.
func (c *CPU) Reset() {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = initialStackPointer
	c.PC = nes.CodeBaseAddress
	c.Status = initialStatus
}

// Step performs one fetch-decode-execute cycle: it reads the opcode at
// the program counter, increments the counter past the opcode and then
// dispatches. The increment happens before dispatch, every instruction
// handler relies on PC pointing at its first operand byte.
func (c *CPU) Step() {
	opcode := c.mem.Read(c.PC)
	c.PC++
	c.execute(opcode)
}

// fetch reads the byte at the program counter and advances the counter
// past it. Used by instruction handlers to consume operand bytes.
func (c *CPU) fetch() byte {
	value := c.mem.Read(c.PC)
	c.PC++
	return value
}
