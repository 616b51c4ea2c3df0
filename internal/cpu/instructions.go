package cpu

import (
	"github.com/retroenv/retrogolib/arch/cpu/m6502"
	"github.com/retroenv/retrogolib/log"
)

// instruction describes one implemented opcode: the canonical
// instruction metadata it decodes to and the function carrying its
// semantics. Handlers run after the opcode byte has been consumed,
// immediate mode handlers fetch their operand at PC themselves.
type instruction struct {
	ins  *m6502.Instruction
	exec func(c *CPU)
}

// instructions maps the full 8-bit opcode space to instruction
// descriptors. Opcodes the engine does not implement are nil entries,
// a data gap rather than a code-structure limitation.
var instructions = [256]*instruction{
	0x88: {ins: m6502.DeyInst, exec: (*CPU).dey},
	0x8A: {ins: m6502.TxaInst, exec: (*CPU).txa},
	0x98: {ins: m6502.TyaInst, exec: (*CPU).tya},
	0xA0: {ins: m6502.LdyInst, exec: (*CPU).ldyImmediate},
	0xA2: {ins: m6502.LdxInst, exec: (*CPU).ldxImmediate},
	0xA8: {ins: m6502.TayInst, exec: (*CPU).tay},
	0xA9: {ins: m6502.LdaInst, exec: (*CPU).ldaImmediate},
	0xAA: {ins: m6502.TaxInst, exec: (*CPU).tax},
	0xC8: {ins: m6502.InyInst, exec: (*CPU).iny},
	0xCA: {ins: m6502.DexInst, exec: (*CPU).dex},
	0xE8: {ins: m6502.InxInst, exec: (*CPU).inx},
	0xEA: {ins: m6502.NopInst, exec: (*CPU).nop},
}

// execute dispatches one already fetched opcode. At entry PC points at
// the first operand byte following the opcode. Opcodes without a table
// entry are reported and skipped without mutating any state, execution
// continues at whatever PC already points to.
func (c *CPU) execute(opcode byte) {
	ins := instructions[opcode]
	if ins == nil {
		c.reportSkippedOpcode(opcode)
		return
	}

	c.logger.Debug("Executing instruction",
		log.String("name", ins.ins.Name),
		log.Hex("opcode", opcode),
		log.Hex("pc", c.PC-1))

	ins.exec(c)
}

// reportSkippedOpcode logs an opcode that has no table entry. Official
// instructions the engine does not implement yet are distinguished from
// byte values that are undefined on the 6502.
func (c *CPU) reportSkippedOpcode(opcode byte) {
	if op := m6502.Opcodes[opcode]; op.Instruction != nil {
		c.logger.Error("Unsupported instruction, skipping",
			log.Hex("opcode", opcode),
			log.String("name", op.Instruction.Name),
			log.Hex("pc", c.PC-1))
		return
	}
	c.logger.Error("Unknown opcode, skipping",
		log.Hex("opcode", opcode),
		log.Hex("pc", c.PC-1))
}

func (c *CPU) ldaImmediate() {
	c.A = c.fetch()
	c.setZN(c.A)
}

func (c *CPU) ldxImmediate() {
	c.X = c.fetch()
	c.setZN(c.X)
}

func (c *CPU) ldyImmediate() {
	c.Y = c.fetch()
	c.setZN(c.Y)
}

func (c *CPU) tax() {
	c.X = c.A
	c.setZN(c.X)
}

func (c *CPU) tay() {
	c.Y = c.A
	c.setZN(c.Y)
}

func (c *CPU) txa() {
	c.A = c.X
	c.setZN(c.A)
}

func (c *CPU) tya() {
	c.A = c.Y
	c.setZN(c.A)
}

func (c *CPU) inx() {
	c.X++
	c.setZN(c.X)
}

func (c *CPU) iny() {
	c.Y++
	c.setZN(c.Y)
}

func (c *CPU) dex() {
	c.X--
	c.setZN(c.X)
}

func (c *CPU) dey() {
	c.Y--
	c.setZN(c.Y)
}

func (c *CPU) nop() {}
