package cpu

import "github.com/nozotech/emu65x64/primitives"

// opTAX transfers A into X at X's current width.
func opTAX(c *CPU, ea primitives.Address) {
	narrow := c.idxNarrow()
	val := readReg(c.A, narrow)
	writeReg(&c.X, val, narrow)
	c.updateNZ(val, narrow)
}

// opTAY transfers A into Y at Y's current width.
func opTAY(c *CPU, ea primitives.Address) {
	narrow := c.idxNarrow()
	val := readReg(c.A, narrow)
	writeReg(&c.Y, val, narrow)
	c.updateNZ(val, narrow)
}

// opTXA transfers X into A at A's current width.
func opTXA(c *CPU, ea primitives.Address) {
	narrow := c.accNarrow()
	val := readReg(c.X, narrow)
	writeReg(&c.A, val, narrow)
	c.updateNZ(val, narrow)
}

// opTYA transfers Y into A at A's current width.
func opTYA(c *CPU, ea primitives.Address) {
	narrow := c.accNarrow()
	val := readReg(c.Y, narrow)
	writeReg(&c.A, val, narrow)
	c.updateNZ(val, narrow)
}

// opTXY transfers X into Y at the index width.
func opTXY(c *CPU, ea primitives.Address) {
	narrow := c.idxNarrow()
	val := readReg(c.X, narrow)
	writeReg(&c.Y, val, narrow)
	c.updateNZ(val, narrow)
}

// opTYX transfers Y into X at the index width.
func opTYX(c *CPU, ea primitives.Address) {
	narrow := c.idxNarrow()
	val := readReg(c.Y, narrow)
	writeReg(&c.X, val, narrow)
	c.updateNZ(val, narrow)
}

// opTSX transfers SP into X at the index width.
func opTSX(c *CPU, ea primitives.Address) {
	narrow := c.idxNarrow()
	val := readReg(c.SP, narrow)
	writeReg(&c.X, val, narrow)
	c.updateNZ(val, narrow)
}

// opTXS transfers X into SP. No N,Z update. In emulation mode the high
// byte of SP is forced to 0x01, matching the page-one stack layout.
func opTXS(c *CPU, ea primitives.Address) {
	narrow := c.idxNarrow()
	c.SP = readReg(c.X, narrow)
	if c.E {
		c.SP = (c.SP & 0xFF) | 0x0100
	}
}

// opTCD transfers the full-width accumulator ("C" in 65x816 terms: A's
// entire 64 bit value, independent of the M-narrowed view) into DP.
// This is unrelated to the separate C register in the register file,
// which no implemented opcode touches (spec §3).
func opTCD(c *CPU, ea primitives.Address) {
	c.DP = c.A
	c.updateNZ(c.DP, false)
}

// opTDC transfers DP into the full-width accumulator.
func opTDC(c *CPU, ea primitives.Address) {
	c.A = c.DP
	c.updateNZ(c.A, false)
}

// opTCS transfers the full-width accumulator into SP. No N,Z update.
func opTCS(c *CPU, ea primitives.Address) {
	c.SP = c.A
}

// opTSC transfers SP into the full-width accumulator.
func opTSC(c *CPU, ea primitives.Address) {
	c.A = c.SP
	c.updateNZ(c.A, false)
}
