package cpu

import "github.com/nozotech/emu65x64/primitives"

func opCLC(c *CPU, ea primitives.Address) { c.setFlag(PCarry, false) }
func opSEC(c *CPU, ea primitives.Address) { c.setFlag(PCarry, true) }
func opCLI(c *CPU, ea primitives.Address) { c.setFlag(PIRQDis, false) }
func opSEI(c *CPU, ea primitives.Address) { c.setFlag(PIRQDis, true) }
func opCLD(c *CPU, ea primitives.Address) { c.setFlag(PDecimal, false) }
func opSED(c *CPU, ea primitives.Address) { c.setFlag(PDecimal, true) }
func opCLV(c *CPU, ea primitives.Address) { c.setFlag(POverflow, false) }

// opREP clears the P bits selected by the byte operand. In emulation
// mode M and X are forced back to 1 afterward regardless of the mask.
func opREP(c *CPU, ea primitives.Address) {
	mask := c.Mem.ReadByte(ea)
	c.P &^= mask
	if c.E {
		c.P |= PMemory | PIndex
	}
}

// opSEP sets the P bits selected by the byte operand. In emulation
// mode M and X are forced to 1 regardless of the mask. Setting X
// additionally narrows X/Y to their current low-byte values, matching
// 65x816 behavior where widening back out later restores zero, not the
// high bytes that were in effect before narrowing.
func opSEP(c *CPU, ea primitives.Address) {
	mask := c.Mem.ReadByte(ea)
	c.P |= mask
	if c.E {
		c.P |= PMemory | PIndex
	}
	if c.P&PIndex != 0 {
		c.X &= 0xFF
		c.Y &= 0xFF
	}
}
