package cpu

import "github.com/nozotech/emu65x64/primitives"

// branch sets PC to ea when taken is true. Outside emulation mode the
// destination is truncated to 16 bits — backwards from what the
// widened architecture would suggest, since it is native (64 bit
// capable) mode that gets clipped to a 16 bit branch window, not
// emulation mode. Design notes §9 calls this "almost certainly
// vestigial from a 16-bit design" and keeps it rather than fixing it.
// In emulation mode, where no truncation happens, a page-crossing
// charges one extra cycle instead.
func (c *CPU) branch(taken bool, ea primitives.Address) {
	if !taken {
		return
	}
	if !c.E {
		ea = primitives.Address(primitives.Word(ea))
	} else if (c.PC & 0xFF00) != (ea & 0xFF00) {
		c.Cycles++
	}
	c.PC = ea
}

func opBCC(c *CPU, ea primitives.Address) { c.branch(!c.flag(PCarry), ea) }
func opBCS(c *CPU, ea primitives.Address) { c.branch(c.flag(PCarry), ea) }
func opBNE(c *CPU, ea primitives.Address) { c.branch(!c.flag(PZero), ea) }
func opBEQ(c *CPU, ea primitives.Address) { c.branch(c.flag(PZero), ea) }
func opBPL(c *CPU, ea primitives.Address) { c.branch(!c.flag(PNegative), ea) }
func opBMI(c *CPU, ea primitives.Address) { c.branch(c.flag(PNegative), ea) }
func opBVC(c *CPU, ea primitives.Address) { c.branch(!c.flag(POverflow), ea) }
func opBVS(c *CPU, ea primitives.Address) { c.branch(c.flag(POverflow), ea) }
func opBRA(c *CPU, ea primitives.Address) { c.branch(true, ea) }
func opBRL(c *CPU, ea primitives.Address) { c.branch(true, ea) }
