package cpu

import "github.com/nozotech/emu65x64/primitives"

// opXBA swaps the two low bytes of A and updates N,Z from the new low
// byte (the old high byte).
func opXBA(c *CPU, ea primitives.Address) {
	lo := primitives.Byte(c.A)
	hi := primitives.Byte(c.A >> 8)
	c.A = (c.A &^ 0xFFFF) | primitives.Qword(lo)<<8 | primitives.Qword(hi)
	c.updateNZ(primitives.Qword(hi), true)
}

// opXCE exchanges the carry flag with the emulation-mode bit. Entering
// emulation mode forces M and X narrow and snaps SP onto the page-one
// stack layout; leaving it changes nothing else (registers keep their
// widened values until something narrows them explicitly).
func opXCE(c *CPU, ea primitives.Address) {
	oldE := c.E
	oldC := c.flag(PCarry)
	c.E = oldC
	c.setFlag(PCarry, oldE)
	if c.E {
		c.P |= PMemory | PIndex
		c.SP = 0x0100 | (c.SP & 0xFF)
	}
}
