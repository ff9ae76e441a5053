package cpu

import "github.com/nozotech/emu65x64/primitives"

func (c *CPU) pushWidth(val primitives.Qword, narrow bool) {
	if narrow {
		c.pushByte(primitives.Byte(val))
		return
	}
	c.pushQword(val)
}

func (c *CPU) popWidth(narrow bool) primitives.Qword {
	if narrow {
		return primitives.Qword(c.popByte())
	}
	return c.popQword()
}

// opPHA pushes A at its current width.
func opPHA(c *CPU, ea primitives.Address) {
	narrow := c.accNarrow()
	c.pushWidth(readReg(c.A, narrow), narrow)
}

// opPHX pushes X at its current width.
func opPHX(c *CPU, ea primitives.Address) {
	narrow := c.idxNarrow()
	c.pushWidth(readReg(c.X, narrow), narrow)
}

// opPHY pushes Y at its current width.
func opPHY(c *CPU, ea primitives.Address) {
	narrow := c.idxNarrow()
	c.pushWidth(readReg(c.Y, narrow), narrow)
}

// opPHP pushes P.
func opPHP(c *CPU, ea primitives.Address) {
	c.pushByte(c.P)
}

// opPHB pushes DBR.
func opPHB(c *CPU, ea primitives.Address) {
	c.pushByte(c.DBR)
}

// opPHD pushes DP at its full width.
func opPHD(c *CPU, ea primitives.Address) {
	c.pushQword(c.DP)
}

// opPHK pushes PBR.
func opPHK(c *CPU, ea primitives.Address) {
	c.pushByte(c.PBR)
}

// opPLA pulls into A and updates N,Z.
func opPLA(c *CPU, ea primitives.Address) {
	narrow := c.accNarrow()
	val := c.popWidth(narrow)
	writeReg(&c.A, val, narrow)
	c.updateNZ(val, narrow)
}

// opPLX pulls into X and updates N,Z.
func opPLX(c *CPU, ea primitives.Address) {
	narrow := c.idxNarrow()
	val := c.popWidth(narrow)
	writeReg(&c.X, val, narrow)
	c.updateNZ(val, narrow)
}

// opPLY pulls into Y and updates N,Z.
func opPLY(c *CPU, ea primitives.Address) {
	narrow := c.idxNarrow()
	val := c.popWidth(narrow)
	writeReg(&c.Y, val, narrow)
	c.updateNZ(val, narrow)
}

// opPLP restores P directly. In emulation mode M and X are forced back
// to 1 regardless of the popped value.
func opPLP(c *CPU, ea primitives.Address) {
	c.P = c.popByte()
	if c.E {
		c.P |= PMemory | PIndex
	}
}

// opPLB pulls into DBR and updates N,Z.
func opPLB(c *CPU, ea primitives.Address) {
	c.DBR = c.popByte()
	c.updateNZ(primitives.Qword(c.DBR), true)
}

// opPLD pulls into DP and updates N,Z.
func opPLD(c *CPU, ea primitives.Address) {
	c.DP = c.popQword()
	c.updateNZ(c.DP, false)
}

// opPEA pushes the literal word operand at ea.
func opPEA(c *CPU, ea primitives.Address) {
	c.pushWord(c.Mem.ReadWord(ea))
}

// opPEI pushes the word found at the direct-page operand address ea.
func opPEI(c *CPU, ea primitives.Address) {
	c.pushWord(c.Mem.ReadWord(ea))
}

// opPER pushes, as a word (low 16 bits), PC + the signed long
// displacement already resolved into ea.
func opPER(c *CPU, ea primitives.Address) {
	c.pushWord(primitives.Word(ea))
}
