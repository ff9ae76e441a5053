package cpu

import "github.com/nozotech/emu65x64/primitives"

func (c *CPU) readWidth(ea primitives.Address, narrow bool) primitives.Qword {
	if narrow {
		return primitives.Qword(c.Mem.ReadByte(ea))
	}
	return c.Mem.ReadQword(ea)
}

func (c *CPU) writeWidth(ea primitives.Address, val primitives.Qword, narrow bool) {
	if narrow {
		c.Mem.WriteByte(ea, primitives.Byte(val))
		return
	}
	c.Mem.WriteQword(ea, val)
}

// opLDA loads A from memory at the accumulator's current width.
func opLDA(c *CPU, ea primitives.Address) {
	narrow := c.accNarrow()
	val := c.readWidth(ea, narrow)
	writeReg(&c.A, val, narrow)
	c.updateNZ(val, narrow)
}

// opLDX loads X from memory at the index width.
func opLDX(c *CPU, ea primitives.Address) {
	narrow := c.idxNarrow()
	val := c.readWidth(ea, narrow)
	writeReg(&c.X, val, narrow)
	c.updateNZ(val, narrow)
}

// opLDY loads Y from memory at the index width.
func opLDY(c *CPU, ea primitives.Address) {
	narrow := c.idxNarrow()
	val := c.readWidth(ea, narrow)
	writeReg(&c.Y, val, narrow)
	c.updateNZ(val, narrow)
}

// opSTA writes A to memory at the accumulator's current width.
func opSTA(c *CPU, ea primitives.Address) {
	narrow := c.accNarrow()
	c.writeWidth(ea, readReg(c.A, narrow), narrow)
}

// opSTX writes X to memory at the index width.
func opSTX(c *CPU, ea primitives.Address) {
	narrow := c.idxNarrow()
	c.writeWidth(ea, readReg(c.X, narrow), narrow)
}

// opSTY writes Y to memory at the index width.
func opSTY(c *CPU, ea primitives.Address) {
	narrow := c.idxNarrow()
	c.writeWidth(ea, readReg(c.Y, narrow), narrow)
}

// opSTZ writes zero to memory at the accumulator's current width.
func opSTZ(c *CPU, ea primitives.Address) {
	c.writeWidth(ea, 0, c.accNarrow())
}
