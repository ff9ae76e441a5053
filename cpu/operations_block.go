package cpu

import "github.com/nozotech/emu65x64/primitives"

// blockMove copies one byte from X to Y, steps both pointers by delta,
// updates DBR to the destination bank, and decrements the word-wide
// byte counter held in A's low 16 bits. The counter and its 0xFFFF
// termination sentinel are always 16 bit regardless of the M flag —
// MVN/MVP inherited this from the 65x816 source architecture and it
// was never widened along with the rest of the accumulator.
func (c *CPU) blockMove(ea primitives.Address, delta primitives.Qword) {
	dst := primitives.Byte(ea)
	src := primitives.Byte(ea >> 8)
	_ = src
	c.DBR = dst

	v := c.Mem.ReadByte(c.X)
	c.Mem.WriteByte(c.Y, v)
	c.X += delta
	c.Y += delta

	count := primitives.Word(c.A) - 1
	c.A = (c.A &^ 0xFFFF) | primitives.Qword(count)
	if count != 0xFFFF {
		c.PC -= 3
	}
}

// opMVN moves forward (incrementing X and Y), used for non-overlapping
// or forward-overlapping copies.
func opMVN(c *CPU, ea primitives.Address) { c.blockMove(ea, 1) }

// opMVP moves backward (decrementing X and Y), used for
// backward-overlapping copies.
func opMVP(c *CPU, ea primitives.Address) { c.blockMove(ea, ^primitives.Qword(0)) }
