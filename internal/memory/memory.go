// Package memory implements the flat address space of the emulator.
package memory

// Size is the number of addressable bytes, covering the full 16-bit
// address space.
const Size = 0x10000

// RAM is a byte indexed store covering the full 16-bit address space.
// Every address in [0, 0xFFFF] is always readable and writable, there
// is no unmapped range and no bounds failure mode. A future mapper or
// bank switching layer can replace it behind the same read/write
// capability without changing the instruction engine's contract.
type RAM struct {
	data [Size]byte
}

// New creates a zero-initialized address space.
func New() *RAM {
	return &RAM{}
}

// Read returns the byte stored at the given address.
func (r *RAM) Read(address uint16) byte {
	return r.data[address]
}

// Write stores a byte at the given address.
func (r *RAM) Write(address uint16, value byte) {
	r.data[address] = value
}

// LoadAt copies data into the address space starting at base.
// Data that would extend past the top of the address space is
// truncated. It returns the number of bytes copied.
func (r *RAM) LoadAt(base uint16, data []byte) int {
	return copy(r.data[base:], data)
}
