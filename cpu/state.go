// Package cpu implements the NOZOTECH 65x64 architecture: the fetch,
// decode and execute pipeline, the register file, and the status flags
// described in the design document. A CPU value is a single,
// explicitly-owned piece of state (no package-level globals), so a
// host may run more than one emulator instance in a process.
package cpu

import (
	"io"

	"github.com/nozotech/emu65x64/internal/hostio"
	"github.com/nozotech/emu65x64/irq"
	"github.com/nozotech/emu65x64/memory"
	"github.com/nozotech/emu65x64/primitives"
)

// Status register bit positions (low to high), fixed by the design and
// observable via PHP/PLP.
const (
	PCarry    = primitives.Byte(0x01)
	PZero     = primitives.Byte(0x02)
	PIRQDis   = primitives.Byte(0x04)
	PDecimal  = primitives.Byte(0x08)
	PIndex    = primitives.Byte(0x10) // X/Y narrow (8 bit) when set
	PMemory   = primitives.Byte(0x20) // A narrow (8 bit) when set
	POverflow = primitives.Byte(0x40)
	PNegative = primitives.Byte(0x80)
)

// Reset and exception vectors (§6.4).
const (
	ResetVector  = primitives.Address(0x3FFFFFF8)
	BRKVectorE1  = primitives.Address(0xFFFE)
	BRKVectorE0  = primitives.Address(0xFFE6)
	COPVectorE1  = primitives.Address(0xFFF4)
	COPVectorE0  = primitives.Address(0xFFE4)
)

// CPU holds the full architectural state of one 65x64 processor.
type CPU struct {
	A, B, C primitives.Qword // accumulators; only A is touched by current opcodes
	X, Y, Z primitives.Qword // index registers; Z is always full width

	SP primitives.Qword // stack pointer
	TP primitives.Qword // task pointer
	DP primitives.Qword // direct page pointer

	PC primitives.Qword // program counter

	PBR primitives.Byte // legacy program bank register
	DBR primitives.Byte // legacy data bank register
	R   primitives.Byte // ring level

	P primitives.Byte // status byte
	E bool             // emulation mode

	Stopped     bool // set by WDM 0xFF
	Cycles      uint64
	Trace       bool
	TraceOut    io.Writer
	Interrupted irq.Source

	Mem     memory.Bank
	Console *hostio.Console
}

// New returns a CPU wired to the given memory bank, with a *irq.Line as
// its default interrupt source. A host that needs a different signal
// (e.g. one backed by a channel or a remote control plane) can replace
// CPU.Interrupted with any other irq.Source after New returns.
func New(mem memory.Bank) *CPU {
	return &CPU{Mem: mem, Interrupted: &irq.Line{}}
}

// Reset applies the power-on/reset invariants (spec §3). It does not
// touch the accumulators, index registers, or DBR/PBR, which retain
// whatever value they held before (intentional, to aid debugging
// across resets). trace and out control whether and where Step emits
// trace lines; out may be nil if trace is false.
func (c *CPU) Reset(trace bool, out io.Writer) {
	c.SP = 0x100
	c.TP = 0
	c.R = 0
	c.P = 0x34 // I=1, X=1, M=1
	c.E = false
	c.Stopped = false
	c.Interrupted.Clear()
	c.Trace = trace
	c.TraceOut = out
	c.PC = c.Mem.ReadQword(ResetVector)
}

// SetPC forces the program counter, used by hosts that need to inject
// an entry point outside of reset (§6.1).
func (c *CPU) SetPC(addr primitives.Address) {
	c.PC = addr
}

// GetCycles returns the monotonic, approximate cycle counter (§6.1).
func (c *CPU) GetCycles() uint64 {
	return c.Cycles
}

// IsStopped reports whether a WDM 0xFF has executed (§6.1).
func (c *CPU) IsStopped() bool {
	return c.Stopped
}

// accNarrow reports whether accumulator operations use the 8 bit (low
// byte) view rather than the full 64 bit view. Emulation mode always
// forces this regardless of the stored M bit.
func (c *CPU) accNarrow() bool {
	return c.E || c.P&PMemory != 0
}

// idxNarrow reports whether X/Y operations use the 8 bit view. Z is
// never narrowed (spec §3).
func (c *CPU) idxNarrow() bool {
	return c.E || c.P&PIndex != 0
}

func signBit(narrow bool) primitives.Qword {
	if narrow {
		return 0x80
	}
	return 0x8000000000000000
}

func widthMask(narrow bool) primitives.Qword {
	if narrow {
		return 0xFF
	}
	return ^primitives.Qword(0)
}

// readReg returns the width-appropriate view of a register.
func readReg(reg primitives.Qword, narrow bool) primitives.Qword {
	return reg & widthMask(narrow)
}

// writeReg updates only the width-appropriate bits of a register,
// leaving the upper bits untouched, matching the sub-width "views"
// described in spec §3.
func writeReg(reg *primitives.Qword, val primitives.Qword, narrow bool) {
	if narrow {
		*reg = (*reg &^ 0xFF) | (val & 0xFF)
		return
	}
	*reg = val
}

// updateNZ sets N and Z from val at the given width.
func (c *CPU) updateNZ(val primitives.Qword, narrow bool) {
	v := val & widthMask(narrow)
	c.setFlag(PZero, v == 0)
	c.setFlag(PNegative, v&signBit(narrow) != 0)
}

// setFlag sets or clears bit in P according to on.
func (c *CPU) setFlag(bit primitives.Byte, on bool) {
	if on {
		c.P |= bit
	} else {
		c.P &^= bit
	}
}

// flag reports whether bit is set in P.
func (c *CPU) flag(bit primitives.Byte) bool {
	return c.P&bit != 0
}

// activeSP returns the stack pointer as used for addressing: in
// emulation mode only the low byte is the active stack index (page-one
// stack), otherwise the full width is used (spec §3).
func (c *CPU) activeSP() primitives.Qword {
	if c.E {
		return 0x100 | (c.SP & 0xFF)
	}
	return c.SP
}

func (c *CPU) incSP(delta primitives.Qword) {
	if c.E {
		c.SP = (c.SP &^ 0xFF) | ((c.SP + delta) & 0xFF)
		return
	}
	c.SP += delta
}

func (c *CPU) decSP(delta primitives.Qword) {
	if c.E {
		c.SP = (c.SP &^ 0xFF) | ((c.SP - delta) & 0xFF)
		return
	}
	c.SP -= delta
}

func (c *CPU) pushByte(v primitives.Byte) {
	c.Mem.WriteByte(c.activeSP(), v)
	c.decSP(1)
}

func (c *CPU) popByte() primitives.Byte {
	c.incSP(1)
	return c.Mem.ReadByte(c.activeSP())
}

func (c *CPU) pushWord(v primitives.Word) {
	hi, lo := primitives.Byte(v>>8), primitives.Byte(v)
	c.pushByte(hi)
	c.pushByte(lo)
}

func (c *CPU) popWord() primitives.Word {
	lo := c.popByte()
	hi := c.popByte()
	return primitives.JoinWord(lo, hi)
}

func (c *CPU) pushDword(v primitives.Dword) {
	b := primitives.SplitDword(v)
	for i := 3; i >= 0; i-- {
		c.pushByte(b[i])
	}
}

func (c *CPU) popDword() primitives.Dword {
	var b [4]primitives.Byte
	for i := 0; i < 4; i++ {
		b[i] = c.popByte()
	}
	return primitives.JoinDword(b)
}

func (c *CPU) pushQword(v primitives.Qword) {
	b := primitives.SplitQword(v)
	for i := 7; i >= 0; i-- {
		c.pushByte(b[i])
	}
}

func (c *CPU) popQword() primitives.Qword {
	var b [8]primitives.Byte
	for i := 0; i < 8; i++ {
		b[i] = c.popByte()
	}
	return primitives.JoinQword(b)
}
