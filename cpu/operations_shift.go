package cpu

import "github.com/nozotech/emu65x64/primitives"

// opASL shifts the byte/qword at ea left by one, zero filling, with the
// shifted-out bit going to C.
func opASL(c *CPU, ea primitives.Address) {
	narrow := c.accNarrow()
	val := c.readWidth(ea, narrow)
	shifted := (val << 1) & widthMask(narrow)
	c.setFlag(PCarry, val&signBit(narrow) != 0)
	c.writeWidth(ea, shifted, narrow)
	c.updateNZ(shifted, narrow)
}

// opASLAcc is ASL applied directly to A.
func opASLAcc(c *CPU, ea primitives.Address) {
	narrow := c.accNarrow()
	val := readReg(c.A, narrow)
	shifted := (val << 1) & widthMask(narrow)
	c.setFlag(PCarry, val&signBit(narrow) != 0)
	writeReg(&c.A, shifted, narrow)
	c.updateNZ(shifted, narrow)
}

// opLSR shifts the byte/qword at ea right by one, zero filling, with
// the shifted-out bit going to C.
func opLSR(c *CPU, ea primitives.Address) {
	narrow := c.accNarrow()
	val := c.readWidth(ea, narrow)
	c.setFlag(PCarry, val&1 != 0)
	shifted := val >> 1
	c.writeWidth(ea, shifted, narrow)
	c.updateNZ(shifted, narrow)
}

// opLSRAcc is LSR applied directly to A.
func opLSRAcc(c *CPU, ea primitives.Address) {
	narrow := c.accNarrow()
	val := readReg(c.A, narrow)
	c.setFlag(PCarry, val&1 != 0)
	shifted := val >> 1
	writeReg(&c.A, shifted, narrow)
	c.updateNZ(shifted, narrow)
}

// opROL rotates the byte/qword at ea left through C.
func opROL(c *CPU, ea primitives.Address) {
	narrow := c.accNarrow()
	val := c.readWidth(ea, narrow)
	carryIn := boolToCarry(c.flag(PCarry))
	shifted := ((val << 1) | primitives.Qword(carryIn)) & widthMask(narrow)
	c.setFlag(PCarry, val&signBit(narrow) != 0)
	c.writeWidth(ea, shifted, narrow)
	c.updateNZ(shifted, narrow)
}

// opROLAcc is ROL applied directly to A.
func opROLAcc(c *CPU, ea primitives.Address) {
	narrow := c.accNarrow()
	val := readReg(c.A, narrow)
	carryIn := boolToCarry(c.flag(PCarry))
	shifted := ((val << 1) | primitives.Qword(carryIn)) & widthMask(narrow)
	c.setFlag(PCarry, val&signBit(narrow) != 0)
	writeReg(&c.A, shifted, narrow)
	c.updateNZ(shifted, narrow)
}

// opROR rotates the byte/qword at ea right through C.
func opROR(c *CPU, ea primitives.Address) {
	narrow := c.accNarrow()
	val := c.readWidth(ea, narrow)
	carryIn := primitives.Qword(boolToCarry(c.flag(PCarry)))
	shifted := (val >> 1) | (carryIn * (signBit(narrow)))
	c.setFlag(PCarry, val&1 != 0)
	c.writeWidth(ea, shifted, narrow)
	c.updateNZ(shifted, narrow)
}

// opRORAcc is ROR applied directly to A.
func opRORAcc(c *CPU, ea primitives.Address) {
	narrow := c.accNarrow()
	val := readReg(c.A, narrow)
	carryIn := primitives.Qword(boolToCarry(c.flag(PCarry)))
	shifted := (val >> 1) | (carryIn * (signBit(narrow)))
	c.setFlag(PCarry, val&1 != 0)
	writeReg(&c.A, shifted, narrow)
	c.updateNZ(shifted, narrow)
}
