package cpu

// Status register flag bits, in 6502 bit order.
const (
	FlagC byte = 1 << 0 // carry
	FlagZ byte = 1 << 1 // zero
	FlagI byte = 1 << 2 // interrupt disable
	FlagD byte = 1 << 3 // decimal mode
	FlagB byte = 1 << 4 // break command
	FlagU byte = 1 << 5 // unused, reads as set on a real 6502
	FlagV byte = 1 << 6 // overflow
	FlagN byte = 1 << 7 // negative
)

// setZN updates the zero and negative flags from an 8-bit result:
// zero is set iff the value is 0, negative mirrors bit 7. No other
// status bits are touched.
func (c *CPU) setZN(value byte) {
	if value == 0 {
		c.Status |= FlagZ
	} else {
		c.Status &^= FlagZ
	}
	if value&0x80 != 0 {
		c.Status |= FlagN
	} else {
		c.Status &^= FlagN
	}
}
