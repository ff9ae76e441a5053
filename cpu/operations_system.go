package cpu

import "github.com/nozotech/emu65x64/primitives"

// opNOP does nothing.
func opNOP(c *CPU, ea primitives.Address) {}

// interrupt is the shared BRK/COP tail: push PC, P and (outside
// emulation mode) PBR, disable further IRQs, clear decimal mode, zero
// PBR and load PC from the word vector appropriate to e and the break
// kind.
func (c *CPU) interrupt(brk bool) {
	if !c.E {
		c.pushByte(c.PBR)
	}
	c.pushWord(primitives.Word(c.PC))
	c.pushByte(c.P)

	c.setFlag(PIRQDis, true)
	c.setFlag(PDecimal, false)
	c.PBR = 0

	var vector primitives.Address
	switch {
	case brk && c.E:
		vector = BRKVectorE1
	case brk && !c.E:
		vector = BRKVectorE0
	case !brk && c.E:
		vector = COPVectorE1
	default:
		vector = COPVectorE0
	}
	c.PC = primitives.Address(c.Mem.ReadWord(vector))
}

// opBRK signals a software breakpoint. The one-byte signature operand
// (already consumed by the addressing step) is not otherwise used.
func opBRK(c *CPU, ea primitives.Address) { c.interrupt(true) }

// opCOP signals a coprocessor call, using COP's own vector pair.
func opCOP(c *CPU, ea primitives.Address) { c.interrupt(false) }

// opWDM dispatches on the one-byte subcode at ea to the host bridge:
// 0x01 writes A's low byte to the console, 0x02 reads a console byte
// into A's low byte, 0xFF halts the processor. Unknown subcodes are
// no-ops, matching WDM's historical role as a reserved-for-future-use
// opcode.
func opWDM(c *CPU, ea primitives.Address) {
	switch c.Mem.ReadByte(ea) {
	case 0x01:
		if c.Console != nil {
			c.Console.WriteByte(byte(c.A))
		}
	case 0x02:
		if c.Console != nil {
			b := c.Console.ReadByte()
			c.A = (c.A &^ 0xFF) | primitives.Qword(b)
		}
	case 0xFF:
		c.Stopped = true
	}
}

// opWAI and opSTP stall the processor by repeatedly re-executing
// themselves (PC rewound by one) until Interrupted is raised, at which
// point the line is cleared and execution falls through to the next
// instruction.
func opWAI(c *CPU, ea primitives.Address) { c.wait() }
func opSTP(c *CPU, ea primitives.Address) { c.wait() }

func (c *CPU) wait() {
	if c.Interrupted.Raised() {
		c.Interrupted.Clear()
		return
	}
	c.PC--
}
