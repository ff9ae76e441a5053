package cpu

import "github.com/nozotech/emu65x64/primitives"

// opJMP loads PC from ea. JMP also replaces PBR from bits 16-23 of the
// (64 bit) effective address — 65x816 legacy behavior preserved even
// though it is inconsistent with a flat 64 bit address space (design
// notes §9), because other opcodes (RTL, BRK) still consume PBR.
func opJMP(c *CPU, ea primitives.Address) {
	c.PC = ea
	c.PBR = primitives.Byte((ea >> 16) & 0xFF)
}

// opJSR pushes PC-1 (word) and jumps to ea.
func opJSR(c *CPU, ea primitives.Address) {
	c.pushWord(primitives.Word(c.PC - 1))
	c.PC = ea
}

// opJSL additionally pushes PBR before jumping, the long-call form.
func opJSL(c *CPU, ea primitives.Address) {
	c.pushByte(c.PBR)
	c.pushWord(primitives.Word(c.PC - 1))
	c.PC = ea
	c.PBR = primitives.Byte((ea >> 16) & 0xFF)
}

// opRTS pops a word and adds one, returning from a JSR.
func opRTS(c *CPU, ea primitives.Address) {
	c.PC = primitives.Address(c.popWord()) + 1
}

// opRTL pops a word and a byte (into PC and PBR respectively) and adds
// one, returning from a JSL.
func opRTL(c *CPU, ea primitives.Address) {
	ret := c.popWord()
	c.PBR = c.popByte()
	c.PC = primitives.Address(ret) + 1
}

// opRTI pops P, PC, and (outside emulation mode) PBR, in that order —
// the reverse of the BRK/COP push order — then clears the
// interrupt-disable flag.
func opRTI(c *CPU, ea primitives.Address) {
	c.P = c.popByte()
	c.PC = primitives.Address(c.popWord())
	if !c.E {
		c.PBR = c.popByte()
	}
	c.setFlag(PIRQDis, false)
}
