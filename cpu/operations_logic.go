package cpu

import "github.com/nozotech/emu65x64/primitives"

// opAND combines A with memory via bitwise AND.
func opAND(c *CPU, ea primitives.Address) {
	narrow := c.accNarrow()
	val := readReg(c.A, narrow) & c.readWidth(ea, narrow)
	writeReg(&c.A, val, narrow)
	c.updateNZ(val, narrow)
}

// opORA combines A with memory via bitwise OR.
func opORA(c *CPU, ea primitives.Address) {
	narrow := c.accNarrow()
	val := readReg(c.A, narrow) | c.readWidth(ea, narrow)
	writeReg(&c.A, val, narrow)
	c.updateNZ(val, narrow)
}

// opEOR combines A with memory via bitwise XOR.
func opEOR(c *CPU, ea primitives.Address) {
	narrow := c.accNarrow()
	val := readReg(c.A, narrow) ^ c.readWidth(ea, narrow)
	writeReg(&c.A, val, narrow)
	c.updateNZ(val, narrow)
}

// compare implements the shared CMP/CPX/CPY logic: reg - val is
// computed and discarded, C is set when no borrow occurred (reg >=
// val), and N/Z are set from the (discarded) difference.
func (c *CPU) compare(reg, val primitives.Qword, narrow bool) {
	mask := widthMask(narrow)
	reg &= mask
	val &= mask
	diff := (reg - val) & mask
	c.setFlag(PCarry, reg >= val)
	c.updateNZ(diff, narrow)
}

// opCMP compares A against memory.
func opCMP(c *CPU, ea primitives.Address) {
	narrow := c.accNarrow()
	c.compare(c.A, c.readWidth(ea, narrow), narrow)
}

// opCPX compares X against memory.
func opCPX(c *CPU, ea primitives.Address) {
	narrow := c.idxNarrow()
	c.compare(c.X, c.readWidth(ea, narrow), narrow)
}

// opCPY compares Y against memory.
func opCPY(c *CPU, ea primitives.Address) {
	narrow := c.idxNarrow()
	c.compare(c.Y, c.readWidth(ea, narrow), narrow)
}

// opBIT sets Z from (A & operand) == 0 and copies the operand's top two
// bits into N and V.
func opBIT(c *CPU, ea primitives.Address) {
	narrow := c.accNarrow()
	operand := c.readWidth(ea, narrow)
	c.setFlag(PZero, readReg(c.A, narrow)&operand == 0)
	c.setFlag(PNegative, operand&signBit(narrow) != 0)
	overflowBit := signBit(narrow) >> 1
	c.setFlag(POverflow, operand&overflowBit != 0)
}

// opBITImmediate implements BITI: only Z is affected.
func opBITImmediate(c *CPU, ea primitives.Address) {
	narrow := c.accNarrow()
	operand := c.readWidth(ea, narrow)
	c.setFlag(PZero, readReg(c.A, narrow)&operand == 0)
}
