// Package disassemble formats instructions decoded by the cpu package
// into human readable listing lines, for use by the debugger and any
// standalone disassembly tooling.
package disassemble

import (
	"fmt"
	"strings"

	"github.com/nozotech/emu65x64/cpu"
	"github.com/nozotech/emu65x64/memory"
	"github.com/nozotech/emu65x64/primitives"
)

// Line is one decoded instruction: its address, raw bytes, mnemonic,
// and the effective address the addressing mode resolved to.
type Line struct {
	PC       primitives.Address
	Opcode   primitives.Byte
	Operand  []primitives.Byte
	Mnemonic string
	EA       primitives.Address
	Next     primitives.Address
}

// String renders a line the way a fetch/decode trace would, without
// the register dump that cpu.CPU's own tracer adds.
func (l Line) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", primitives.HexQword(l.PC), primitives.HexByte(l.Opcode))
	for _, o := range l.Operand {
		fmt.Fprintf(&b, " %s", primitives.HexByte(o))
	}
	fmt.Fprintf(&b, "  %-4s {%s}", l.Mnemonic, primitives.HexQword(l.EA))
	return b.String()
}

// One decodes a single instruction at pc. p and e must reflect the
// processor status and emulation-mode bit in effect at pc, since some
// addressing modes are width dependent.
func One(mem memory.Bank, pc primitives.Address, p primitives.Byte, e bool) Line {
	opcode := mem.ReadByte(pc)
	mnemonic, operand, ea, next := cpu.Disasm(mem, pc, p, e)
	return Line{
		PC:       pc,
		Opcode:   opcode,
		Operand:  operand,
		Mnemonic: mnemonic,
		EA:       ea,
		Next:     next,
	}
}

// widensRegisters is the set of mnemonics that can change p or e mid
// stream: decoding anything past one of these with the caller's
// original p/e would silently use the wrong operand width.
var widensRegisters = map[string]bool{"REP": true, "SEP": true, "XCE": true}

// Listing decodes up to count consecutive instructions starting at pc,
// using the fixed p/e supplied by the caller for every decode. It
// stops early, returning fewer than count lines, right after decoding
// a REP, SEP or XCE, which is the last line returned: continuing would
// require updated p/e
// the caller hasn't supplied, and decoding with the stale values would
// silently produce the wrong operand width for anything that follows.
// Callers that need to track width changes across a longer listing
// should call One directly, instruction by instruction, updating p and
// e themselves after each REP/SEP/XCE.
func Listing(mem memory.Bank, pc primitives.Address, p primitives.Byte, e bool, count int) []Line {
	lines := make([]Line, 0, count)
	for i := 0; i < count; i++ {
		l := One(mem, pc, p, e)
		lines = append(lines, l)
		if widensRegisters[l.Mnemonic] {
			break
		}
		pc = l.Next
	}
	return lines
}
