package cpu

import (
	"testing"

	"github.com/retroenv/nesgoemu/internal/memory"
	"github.com/retroenv/retrogolib/arch/system/nes"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// newTestCPU creates a reset CPU with the given program bytes loaded
// at the program base address.
func newTestCPU(t *testing.T, program ...byte) *CPU {
	t.Helper()

	ram := memory.New()
	ram.LoadAt(nes.CodeBaseAddress, program)

	c := New(log.NewTestLogger(t), ram)
	c.Reset()
	return c
}

func TestReset(t *testing.T) {
	c := newTestCPU(t)

	// dirty the state to verify reset is idempotent regardless of
	// prior register contents
	c.A = 0x12
	c.X = 0x34
	c.Y = 0x56
	c.SP = 0x00
	c.PC = 0x1234
	c.Status = 0xFF

	c.Reset()

	assert.Equal(t, byte(0), c.A)
	assert.Equal(t, byte(0), c.X)
	assert.Equal(t, byte(0), c.Y)
	assert.Equal(t, byte(0xFD), c.SP)
	assert.Equal(t, uint16(0x8000), c.PC)
	assert.Equal(t, byte(0x24), c.Status)

	c.Reset()

	assert.Equal(t, byte(0), c.A)
	assert.Equal(t, byte(0xFD), c.SP)
	assert.Equal(t, uint16(0x8000), c.PC)
	assert.Equal(t, byte(0x24), c.Status)
}

func TestSetZN(t *testing.T) {
	c := newTestCPU(t)

	for value := range 256 {
		c.setZN(byte(value))

		assert.Equal(t, value == 0, c.Status&FlagZ != 0,
			"zero flag mismatch for value %02X", value)
		assert.Equal(t, value&0x80 != 0, c.Status&FlagN != 0,
			"negative flag mismatch for value %02X", value)
		// remaining status bits keep their reset values
		assert.Equal(t, initialStatus, c.Status&^(FlagZ|FlagN))
	}
}

func TestStepProgramCounterAdvance(t *testing.T) {
	tests := []struct {
		name    string
		program []byte
		wantPC  uint16
	}{
		{"implied advances one byte", []byte{0xE8}, 0x8001},
		{"immediate advances two bytes", []byte{0xA9, 0x05}, 0x8002},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCPU(t, tt.program...)
			c.Step()
			assert.Equal(t, tt.wantPC, c.PC)
		})
	}
}

func TestStepSkipsUnimplementedOpcode(t *testing.T) {
	tests := []struct {
		name   string
		opcode byte
	}{
		{"break", 0x00},
		{"store", 0x85},
		{"topmost opcode value", 0xFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCPU(t, tt.opcode, 0x05)
			c.Step()

			// no mutation besides the program counter increment of
			// the fetch itself
			assert.Equal(t, byte(0), c.A)
			assert.Equal(t, byte(0), c.X)
			assert.Equal(t, byte(0), c.Y)
			assert.Equal(t, byte(0xFD), c.SP)
			assert.Equal(t, byte(0x24), c.Status)
			assert.Equal(t, uint16(0x8001), c.PC)
		})
	}
}

func TestLdaTaxSequence(t *testing.T) {
	c := newTestCPU(t, 0xA9, 0x80, 0xAA)

	c.Step()
	assert.Equal(t, byte(0x80), c.A)
	assert.True(t, c.Status&FlagN != 0)
	assert.False(t, c.Status&FlagZ != 0)

	c.Step()
	assert.Equal(t, byte(0x80), c.X)
	assert.True(t, c.Status&FlagN != 0)
	assert.False(t, c.Status&FlagZ != 0)
}

func TestInxWraparound(t *testing.T) {
	c := newTestCPU(t, 0xE8)
	c.X = 0xFF

	c.Step()

	assert.Equal(t, byte(0x00), c.X)
	assert.True(t, c.Status&FlagZ != 0)
	assert.False(t, c.Status&FlagN != 0)
}

//nolint:funlen // table covers the whole implemented instruction set
func TestInstructions(t *testing.T) {
	tests := []struct {
		name    string
		program []byte
		setup   func(c *CPU)
		verify  func(t *testing.T, c *CPU)
	}{
		{
			name:    "lda immediate",
			program: []byte{0xA9, 0x42},
			verify: func(t *testing.T, c *CPU) {
				assert.Equal(t, byte(0x42), c.A)
				assert.False(t, c.Status&(FlagZ|FlagN) != 0)
			},
		},
		{
			name:    "ldx immediate zero",
			program: []byte{0xA2, 0x00},
			verify: func(t *testing.T, c *CPU) {
				assert.Equal(t, byte(0x00), c.X)
				assert.True(t, c.Status&FlagZ != 0)
			},
		},
		{
			name:    "ldy immediate negative",
			program: []byte{0xA0, 0x81},
			verify: func(t *testing.T, c *CPU) {
				assert.Equal(t, byte(0x81), c.Y)
				assert.True(t, c.Status&FlagN != 0)
			},
		},
		{
			name:    "tax",
			program: []byte{0xAA},
			setup:   func(c *CPU) { c.A = 0x10 },
			verify: func(t *testing.T, c *CPU) {
				assert.Equal(t, byte(0x10), c.X)
			},
		},
		{
			name:    "tay",
			program: []byte{0xA8},
			setup:   func(c *CPU) { c.A = 0x10 },
			verify: func(t *testing.T, c *CPU) {
				assert.Equal(t, byte(0x10), c.Y)
			},
		},
		{
			name:    "txa",
			program: []byte{0x8A},
			setup:   func(c *CPU) { c.X = 0x20 },
			verify: func(t *testing.T, c *CPU) {
				assert.Equal(t, byte(0x20), c.A)
			},
		},
		{
			name:    "tya",
			program: []byte{0x98},
			setup:   func(c *CPU) { c.Y = 0x30 },
			verify: func(t *testing.T, c *CPU) {
				assert.Equal(t, byte(0x30), c.A)
			},
		},
		{
			name:    "iny",
			program: []byte{0xC8},
			setup:   func(c *CPU) { c.Y = 0x7F },
			verify: func(t *testing.T, c *CPU) {
				assert.Equal(t, byte(0x80), c.Y)
				assert.True(t, c.Status&FlagN != 0)
			},
		},
		{
			name:    "dex wraps to negative",
			program: []byte{0xCA},
			verify: func(t *testing.T, c *CPU) {
				assert.Equal(t, byte(0xFF), c.X)
				assert.True(t, c.Status&FlagN != 0)
				assert.False(t, c.Status&FlagZ != 0)
			},
		},
		{
			name:    "dey to zero",
			program: []byte{0x88},
			setup:   func(c *CPU) { c.Y = 0x01 },
			verify: func(t *testing.T, c *CPU) {
				assert.Equal(t, byte(0x00), c.Y)
				assert.True(t, c.Status&FlagZ != 0)
			},
		},
		{
			name:    "nop leaves state untouched",
			program: []byte{0xEA},
			setup:   func(c *CPU) { c.A = 0x55 },
			verify: func(t *testing.T, c *CPU) {
				assert.Equal(t, byte(0x55), c.A)
				assert.Equal(t, byte(0x24), c.Status)
				assert.Equal(t, uint16(0x8001), c.PC)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCPU(t, tt.program...)
			if tt.setup != nil {
				tt.setup(c)
			}
			c.Step()
			tt.verify(t, c)
		})
	}
}

func TestStepProgramExecution(t *testing.T) {
	// lda #$05, tax, inx
	c := newTestCPU(t, 0xA9, 0x05, 0xAA, 0xE8)

	for range 3 {
		c.Step()
	}

	assert.Equal(t, byte(0x05), c.A)
	assert.Equal(t, byte(0x06), c.X)
	assert.False(t, c.Status&FlagZ != 0)
	assert.False(t, c.Status&FlagN != 0)
	assert.Equal(t, uint16(0x8004), c.PC)
}
