package cpu

import (
	"fmt"

	"github.com/nozotech/emu65x64/memory"
	"github.com/nozotech/emu65x64/primitives"
)

// opFunc performs an operation's register/memory effects given the
// effective address already computed by the paired addrFunc.
type opFunc func(c *CPU, ea primitives.Address)

// Instruction pairs a mnemonic with its addressing and operation
// functions. The opcode table below is the single source of truth for
// both Step and the disassemble package.
type Instruction struct {
	Mnemonic string
	Addr     addrFunc
	Op       opFunc
}

var illegal = Instruction{Mnemonic: "???", Addr: addrImplied, Op: opNOP}

// opcodeTable assigns opcode bytes following the real 65C816 opcode
// map, per design notes §9: the byte values used throughout spec §8's
// scenarios (A9 LDA#, 8D STA a, 42 WDM, D0 BNE, 54 MVN...) only make
// sense under that assignment, and reusing it means no part of the
// 256-entry space is arbitrary. The distinct long address forms ([d],
// [d],Y, [a], al, al,X) alias their direct-page-indirect / absolute
// counterparts, since the address space is already flat 64 bit. TSB/TRB
// (04, 0C, 14, 1C) have no corresponding operation in this design and
// are left as genuine holes (illegal, a documented no-op) rather than
// invented.
var opcodeTable = buildOpcodeTable()

func buildOpcodeTable() [256]Instruction {
	var t [256]Instruction
	for i := range t {
		t[i] = illegal
	}

	set := func(op primitives.Byte, mnemonic string, addr addrFunc, fn opFunc) {
		t[op] = Instruction{Mnemonic: mnemonic, Addr: addr, Op: fn}
	}

	// Row 0x0_ / 0x1_ — BRK/ORA/ASL family, PHP/PHD/CLC/TCS.
	set(0x00, "BRK", addrImmediateByte, opBRK)
	set(0x01, "ORA", addrDirectPageIndexedIndirectX, opORA)
	set(0x02, "COP", addrImmediateByte, opCOP)
	set(0x03, "ORA", addrStackRelative, opORA)
	set(0x05, "ORA", addrDirectPage, opORA)
	set(0x06, "ASL", addrDirectPage, opASL)
	set(0x07, "ORA", addrDirectPageIndirect, opORA)
	set(0x08, "PHP", addrImplied, opPHP)
	set(0x09, "ORA", addrImmediateAcc, opORA)
	set(0x0A, "ASL", addrImplied, opASLAcc)
	set(0x0B, "PHD", addrImplied, opPHD)
	set(0x0D, "ORA", addrAbsolute, opORA)
	set(0x0E, "ASL", addrAbsolute, opASL)
	set(0x0F, "ORA", addrAbsolute, opORA)

	set(0x10, "BPL", addrRelative, opBPL)
	set(0x11, "ORA", addrDirectPageIndirectIndexedY, opORA)
	set(0x12, "ORA", addrDirectPageIndirect, opORA)
	set(0x13, "ORA", addrStackRelativeIndirectIndexedY, opORA)
	set(0x15, "ORA", addrDirectPageX, opORA)
	set(0x16, "ASL", addrDirectPageX, opASL)
	set(0x17, "ORA", addrDirectPageIndirectIndexedY, opORA)
	set(0x18, "CLC", addrImplied, opCLC)
	set(0x19, "ORA", addrAbsoluteY, opORA)
	set(0x1A, "INC", addrImplied, opINCA)
	set(0x1B, "TCS", addrImplied, opTCS)
	set(0x1D, "ORA", addrAbsoluteX, opORA)
	set(0x1E, "ASL", addrAbsoluteX, opASL)
	set(0x1F, "ORA", addrAbsoluteX, opORA)

	// Row 0x2_ / 0x3_ — JSR/AND/ROL family, PLP/PLD/SEC/TSC.
	set(0x20, "JSR", addrAbsolute, opJSR)
	set(0x21, "AND", addrDirectPageIndexedIndirectX, opAND)
	set(0x22, "JSL", addrAbsolute, opJSL)
	set(0x23, "AND", addrStackRelative, opAND)
	set(0x24, "BIT", addrDirectPage, opBIT)
	set(0x25, "AND", addrDirectPage, opAND)
	set(0x26, "ROL", addrDirectPage, opROL)
	set(0x27, "AND", addrDirectPageIndirect, opAND)
	set(0x28, "PLP", addrImplied, opPLP)
	set(0x29, "AND", addrImmediateAcc, opAND)
	set(0x2A, "ROL", addrImplied, opROLAcc)
	set(0x2B, "PLD", addrImplied, opPLD)
	set(0x2C, "BIT", addrAbsolute, opBIT)
	set(0x2D, "AND", addrAbsolute, opAND)
	set(0x2E, "ROL", addrAbsolute, opROL)
	set(0x2F, "AND", addrAbsolute, opAND)

	set(0x30, "BMI", addrRelative, opBMI)
	set(0x31, "AND", addrDirectPageIndirectIndexedY, opAND)
	set(0x32, "AND", addrDirectPageIndirect, opAND)
	set(0x33, "AND", addrStackRelativeIndirectIndexedY, opAND)
	set(0x34, "BIT", addrDirectPageX, opBIT)
	set(0x35, "AND", addrDirectPageX, opAND)
	set(0x36, "ROL", addrDirectPageX, opROL)
	set(0x37, "AND", addrDirectPageIndirectIndexedY, opAND)
	set(0x38, "SEC", addrImplied, opSEC)
	set(0x39, "AND", addrAbsoluteY, opAND)
	set(0x3A, "DEC", addrImplied, opDECA)
	set(0x3B, "TSC", addrImplied, opTSC)
	set(0x3C, "BIT", addrAbsoluteX, opBIT)
	set(0x3D, "AND", addrAbsoluteX, opAND)
	set(0x3E, "ROL", addrAbsoluteX, opROL)
	set(0x3F, "AND", addrAbsoluteX, opAND)

	// Row 0x4_ / 0x5_ — RTI/EOR/LSR family, MVP/MVN, PHA/PHY, WDM, JMP.
	set(0x40, "RTI", addrImplied, opRTI)
	set(0x41, "EOR", addrDirectPageIndexedIndirectX, opEOR)
	set(0x42, "WDM", addrImmediateByte, opWDM)
	set(0x43, "EOR", addrStackRelative, opEOR)
	set(0x44, "MVP", addrBlockMove, opMVP)
	set(0x45, "EOR", addrDirectPage, opEOR)
	set(0x46, "LSR", addrDirectPage, opLSR)
	set(0x47, "EOR", addrDirectPageIndirect, opEOR)
	set(0x48, "PHA", addrImplied, opPHA)
	set(0x49, "EOR", addrImmediateAcc, opEOR)
	set(0x4A, "LSR", addrImplied, opLSRAcc)
	set(0x4B, "PHK", addrImplied, opPHK)
	set(0x4C, "JMP", addrAbsolute, opJMP)
	set(0x4D, "EOR", addrAbsolute, opEOR)
	set(0x4E, "LSR", addrAbsolute, opLSR)
	set(0x4F, "EOR", addrAbsolute, opEOR)

	set(0x50, "BVC", addrRelative, opBVC)
	set(0x51, "EOR", addrDirectPageIndirectIndexedY, opEOR)
	set(0x52, "EOR", addrDirectPageIndirect, opEOR)
	set(0x53, "EOR", addrStackRelativeIndirectIndexedY, opEOR)
	set(0x54, "MVN", addrBlockMove, opMVN)
	set(0x55, "EOR", addrDirectPageX, opEOR)
	set(0x56, "LSR", addrDirectPageX, opLSR)
	set(0x57, "EOR", addrDirectPageIndirectIndexedY, opEOR)
	set(0x58, "CLI", addrImplied, opCLI)
	set(0x59, "EOR", addrAbsoluteY, opEOR)
	set(0x5A, "PHY", addrImplied, opPHY)
	set(0x5B, "TCD", addrImplied, opTCD)
	set(0x5C, "JMP", addrAbsolute, opJMP)
	set(0x5D, "EOR", addrAbsoluteX, opEOR)
	set(0x5E, "LSR", addrAbsoluteX, opLSR)
	set(0x5F, "EOR", addrAbsoluteX, opEOR)

	// Row 0x6_ / 0x7_ — RTS/ADC/ROR family, PER/PLA/RTL/JMP indirect.
	set(0x60, "RTS", addrImplied, opRTS)
	set(0x61, "ADC", addrDirectPageIndexedIndirectX, opADC)
	set(0x62, "PER", addrLongRelative, opPER)
	set(0x63, "ADC", addrStackRelative, opADC)
	set(0x64, "STZ", addrDirectPage, opSTZ)
	set(0x65, "ADC", addrDirectPage, opADC)
	set(0x66, "ROR", addrDirectPage, opROR)
	set(0x67, "ADC", addrDirectPageIndirect, opADC)
	set(0x68, "PLA", addrImplied, opPLA)
	set(0x69, "ADC", addrImmediateAcc, opADC)
	set(0x6A, "ROR", addrImplied, opRORAcc)
	set(0x6B, "RTL", addrImplied, opRTL)
	set(0x6C, "JMP", addrAbsoluteIndirect, opJMP)
	set(0x6D, "ADC", addrAbsolute, opADC)
	set(0x6E, "ROR", addrAbsolute, opROR)
	set(0x6F, "ADC", addrAbsolute, opADC)

	set(0x70, "BVS", addrRelative, opBVS)
	set(0x71, "ADC", addrDirectPageIndirectIndexedY, opADC)
	set(0x72, "ADC", addrDirectPageIndirect, opADC)
	set(0x73, "ADC", addrStackRelativeIndirectIndexedY, opADC)
	set(0x74, "STZ", addrDirectPageX, opSTZ)
	set(0x75, "ADC", addrDirectPageX, opADC)
	set(0x76, "ROR", addrDirectPageX, opROR)
	set(0x77, "ADC", addrDirectPageIndirectIndexedY, opADC)
	set(0x78, "SEI", addrImplied, opSEI)
	set(0x79, "ADC", addrAbsoluteY, opADC)
	set(0x7A, "PLY", addrImplied, opPLY)
	set(0x7B, "TDC", addrImplied, opTDC)
	set(0x7C, "JMP", addrAbsoluteXIndirect, opJMP)
	set(0x7D, "ADC", addrAbsoluteX, opADC)
	set(0x7E, "ROR", addrAbsoluteX, opROR)
	set(0x7F, "ADC", addrAbsoluteX, opADC)

	// Row 0x8_ / 0x9_ — STA/STY/STX/STZ family, DEY/TXA/PHB, branches.
	set(0x80, "BRA", addrRelative, opBRA)
	set(0x81, "STA", addrDirectPageIndexedIndirectX, opSTA)
	set(0x82, "BRL", addrLongRelative, opBRL)
	set(0x83, "STA", addrStackRelative, opSTA)
	set(0x84, "STY", addrDirectPage, opSTY)
	set(0x85, "STA", addrDirectPage, opSTA)
	set(0x86, "STX", addrDirectPage, opSTX)
	set(0x87, "STA", addrDirectPageIndirect, opSTA)
	set(0x88, "DEY", addrImplied, opDEY)
	set(0x89, "BIT", addrImmediateAcc, opBITImmediate)
	set(0x8A, "TXA", addrImplied, opTXA)
	set(0x8B, "PHB", addrImplied, opPHB)
	set(0x8C, "STY", addrAbsolute, opSTY)
	set(0x8D, "STA", addrAbsolute, opSTA)
	set(0x8E, "STX", addrAbsolute, opSTX)
	set(0x8F, "STA", addrAbsolute, opSTA)

	set(0x90, "BCC", addrRelative, opBCC)
	set(0x91, "STA", addrDirectPageIndirectIndexedY, opSTA)
	set(0x92, "STA", addrDirectPageIndirect, opSTA)
	set(0x93, "STA", addrStackRelativeIndirectIndexedY, opSTA)
	set(0x94, "STY", addrDirectPageX, opSTY)
	set(0x95, "STA", addrDirectPageX, opSTA)
	set(0x96, "STX", addrDirectPageY, opSTX)
	set(0x97, "STA", addrDirectPageIndirectIndexedY, opSTA)
	set(0x98, "TYA", addrImplied, opTYA)
	set(0x99, "STA", addrAbsoluteY, opSTA)
	set(0x9A, "TXS", addrImplied, opTXS)
	set(0x9B, "TXY", addrImplied, opTXY)
	set(0x9C, "STZ", addrAbsolute, opSTZ)
	set(0x9D, "STA", addrAbsoluteX, opSTA)
	set(0x9E, "STZ", addrAbsoluteX, opSTZ)
	set(0x9F, "STA", addrAbsoluteX, opSTA)

	// Row 0xA_ / 0xB_ — LDY/LDA/LDX family, TAY/TAX/PLB, branches.
	set(0xA0, "LDY", addrImmediateIdx, opLDY)
	set(0xA1, "LDA", addrDirectPageIndexedIndirectX, opLDA)
	set(0xA2, "LDX", addrImmediateIdx, opLDX)
	set(0xA3, "LDA", addrStackRelative, opLDA)
	set(0xA4, "LDY", addrDirectPage, opLDY)
	set(0xA5, "LDA", addrDirectPage, opLDA)
	set(0xA6, "LDX", addrDirectPage, opLDX)
	set(0xA7, "LDA", addrDirectPageIndirect, opLDA)
	set(0xA8, "TAY", addrImplied, opTAY)
	set(0xA9, "LDA", addrImmediateAcc, opLDA)
	set(0xAA, "TAX", addrImplied, opTAX)
	set(0xAB, "PLB", addrImplied, opPLB)
	set(0xAC, "LDY", addrAbsolute, opLDY)
	set(0xAD, "LDA", addrAbsolute, opLDA)
	set(0xAE, "LDX", addrAbsolute, opLDX)
	set(0xAF, "LDA", addrAbsolute, opLDA)

	set(0xB0, "BCS", addrRelative, opBCS)
	set(0xB1, "LDA", addrDirectPageIndirectIndexedY, opLDA)
	set(0xB2, "LDA", addrDirectPageIndirect, opLDA)
	set(0xB3, "LDA", addrStackRelativeIndirectIndexedY, opLDA)
	set(0xB4, "LDY", addrDirectPageX, opLDY)
	set(0xB5, "LDA", addrDirectPageX, opLDA)
	set(0xB6, "LDX", addrDirectPageY, opLDX)
	set(0xB7, "LDA", addrDirectPageIndirectIndexedY, opLDA)
	set(0xB8, "CLV", addrImplied, opCLV)
	set(0xB9, "LDA", addrAbsoluteY, opLDA)
	set(0xBA, "TSX", addrImplied, opTSX)
	set(0xBB, "TYX", addrImplied, opTYX)
	set(0xBC, "LDY", addrAbsoluteX, opLDY)
	set(0xBD, "LDA", addrAbsoluteX, opLDA)
	set(0xBE, "LDX", addrAbsoluteY, opLDX)
	set(0xBF, "LDA", addrAbsoluteX, opLDA)

	// Row 0xC_ / 0xD_ — CPY/CMP/DEC family, REP/INY/DEX/WAI, branches.
	set(0xC0, "CPY", addrImmediateIdx, opCPY)
	set(0xC1, "CMP", addrDirectPageIndexedIndirectX, opCMP)
	set(0xC2, "REP", addrImmediateByte, opREP)
	set(0xC3, "CMP", addrStackRelative, opCMP)
	set(0xC4, "CPY", addrDirectPage, opCPY)
	set(0xC5, "CMP", addrDirectPage, opCMP)
	set(0xC6, "DEC", addrDirectPage, opDEC)
	set(0xC7, "CMP", addrDirectPageIndirect, opCMP)
	set(0xC8, "INY", addrImplied, opINY)
	set(0xC9, "CMP", addrImmediateAcc, opCMP)
	set(0xCA, "DEX", addrImplied, opDEX)
	set(0xCB, "WAI", addrImplied, opWAI)
	set(0xCC, "CPY", addrAbsolute, opCPY)
	set(0xCD, "CMP", addrAbsolute, opCMP)
	set(0xCE, "DEC", addrAbsolute, opDEC)
	set(0xCF, "CMP", addrAbsolute, opCMP)

	set(0xD0, "BNE", addrRelative, opBNE)
	set(0xD1, "CMP", addrDirectPageIndirectIndexedY, opCMP)
	set(0xD2, "CMP", addrDirectPageIndirect, opCMP)
	set(0xD3, "CMP", addrStackRelativeIndirectIndexedY, opCMP)
	set(0xD4, "PEI", addrDirectPage, opPEI)
	set(0xD5, "CMP", addrDirectPageX, opCMP)
	set(0xD6, "DEC", addrDirectPageX, opDEC)
	set(0xD7, "CMP", addrDirectPageIndirectIndexedY, opCMP)
	set(0xD8, "CLD", addrImplied, opCLD)
	set(0xD9, "CMP", addrAbsoluteY, opCMP)
	set(0xDA, "PHX", addrImplied, opPHX)
	set(0xDB, "STP", addrImplied, opSTP)
	set(0xDC, "JMP", addrAbsoluteIndirect, opJMP)
	set(0xDD, "CMP", addrAbsoluteX, opCMP)
	set(0xDE, "DEC", addrAbsoluteX, opDEC)
	set(0xDF, "CMP", addrAbsoluteX, opCMP)

	// Row 0xE_ / 0xF_ — CPX/SBC/INC family, SEP/INX/NOP/XBA, PEA/PLX/XCE.
	set(0xE0, "CPX", addrImmediateIdx, opCPX)
	set(0xE1, "SBC", addrDirectPageIndexedIndirectX, opSBC)
	set(0xE2, "SEP", addrImmediateByte, opSEP)
	set(0xE3, "SBC", addrStackRelative, opSBC)
	set(0xE4, "CPX", addrDirectPage, opCPX)
	set(0xE5, "SBC", addrDirectPage, opSBC)
	set(0xE6, "INC", addrDirectPage, opINC)
	set(0xE7, "SBC", addrDirectPageIndirect, opSBC)
	set(0xE8, "INX", addrImplied, opINX)
	set(0xE9, "SBC", addrImmediateAcc, opSBC)
	set(0xEA, "NOP", addrImplied, opNOP)
	set(0xEB, "XBA", addrImplied, opXBA)
	set(0xEC, "CPX", addrAbsolute, opCPX)
	set(0xED, "SBC", addrAbsolute, opSBC)
	set(0xEE, "INC", addrAbsolute, opINC)
	set(0xEF, "SBC", addrAbsolute, opSBC)

	set(0xF0, "BEQ", addrRelative, opBEQ)
	set(0xF1, "SBC", addrDirectPageIndirectIndexedY, opSBC)
	set(0xF2, "SBC", addrDirectPageIndirect, opSBC)
	set(0xF3, "SBC", addrStackRelativeIndirectIndexedY, opSBC)
	set(0xF4, "PEA", addrImmediateWord, opPEA)
	set(0xF5, "SBC", addrDirectPageX, opSBC)
	set(0xF6, "INC", addrDirectPageX, opINC)
	set(0xF7, "SBC", addrDirectPageIndirectIndexedY, opSBC)
	set(0xF8, "SED", addrImplied, opSED)
	set(0xF9, "SBC", addrAbsoluteY, opSBC)
	set(0xFA, "PLX", addrImplied, opPLX)
	set(0xFB, "XCE", addrImplied, opXCE)
	set(0xFC, "JSR", addrAbsoluteXIndirect, opJSR)
	set(0xFD, "SBC", addrAbsoluteX, opSBC)
	set(0xFE, "INC", addrAbsoluteX, opINC)
	set(0xFF, "SBC", addrAbsoluteX, opSBC)

	return t
}

// OpcodeMnemonic returns the mnemonic assigned to opcode, used by the
// disassemble package so the opcode table stays the single source of
// truth for both execution and disassembly.
func OpcodeMnemonic(opcode primitives.Byte) string {
	return opcodeTable[opcode].Mnemonic
}

// Disasm decodes the single instruction at pc without executing it,
// returning its mnemonic, raw operand bytes, the effective address the
// addressing mode computes, and the address of the following
// instruction. Only p and e are supplied, so the EA is computed with
// X, Y, Z, DP and SP all zero; indexed, direct-page and stack-relative
// EAs therefore omit the live register contribution. p and e supply
// the M/X/emulation context that width-dependent immediate modes and
// the emulation-mode stack need — the caller (the
// disassemble package, or a live debugger) is responsible for tracking
// that context across REP/SEP/XCE the same way a real disassembler
// must.
func Disasm(mem memory.Bank, pc primitives.Address, p primitives.Byte, e bool) (mnemonic string, operand []primitives.Byte, ea, next primitives.Address) {
	scratch := &CPU{Mem: mem, PC: pc, P: p, E: e}
	opcode := mem.ReadByte(scratch.PC)
	scratch.PC++
	instr := opcodeTable[opcode]

	operandStart := scratch.PC
	ea = instr.Addr(scratch)
	n := int(scratch.PC - operandStart)
	if n < 0 {
		n = 0
	}
	if n > 8 {
		n = 8
	}
	operand = make([]primitives.Byte, n)
	for i := 0; i < n; i++ {
		operand[i] = mem.ReadByte(operandStart + primitives.Address(i))
	}
	return instr.Mnemonic, operand, ea, scratch.PC
}

// Step executes exactly one instruction: fetch, decode, compute the
// effective address, perform the operation, and account for cycles. It
// is a no-op once Stopped is true (WDM 0xFF).
func (c *CPU) Step() {
	if c.Stopped {
		return
	}
	startPC := c.PC
	opcode := c.Mem.ReadByte(c.PC)
	c.PC++
	instr := opcodeTable[opcode]

	operandStart := c.PC
	ea := instr.Addr(c)
	operandLen := int(c.PC - operandStart)
	if operandLen < 0 {
		operandLen = 0
	}
	if operandLen > 8 {
		operandLen = 8
	}
	var operand [8]primitives.Byte
	for i := 0; i < operandLen; i++ {
		operand[i] = c.Mem.ReadByte(operandStart + primitives.Address(i))
	}

	instr.Op(c, ea)
	c.Cycles++

	if c.Trace && c.TraceOut != nil {
		c.writeTrace(startPC, opcode, operand[:operandLen], instr.Mnemonic, ea)
	}
}

// Run steps the processor until Stopped is set or maxSteps instructions
// have executed (0 means unbounded).
func (c *CPU) Run(maxSteps uint64) {
	for i := uint64(0); !c.Stopped && (maxSteps == 0 || i < maxSteps); i++ {
		c.Step()
	}
}

var flagGlyphs = []struct {
	bit primitives.Byte
	ch  byte
}{
	{PNegative, 'N'}, {POverflow, 'V'}, {PMemory, 'M'}, {PIndex, 'X'},
	{PDecimal, 'D'}, {PIRQDis, 'I'}, {PZero, 'Z'}, {PCarry, 'C'},
}

func (c *CPU) flagString() string {
	b := make([]byte, len(flagGlyphs))
	for i, g := range flagGlyphs {
		if c.P&g.bit != 0 {
			b[i] = g.ch
		} else {
			b[i] = '.'
		}
	}
	return string(b)
}

func (c *CPU) writeTrace(pc primitives.Address, opcode primitives.Byte, operand []primitives.Byte, mnemonic string, ea primitives.Address) {
	fmt.Fprintf(c.TraceOut, "%s: %s", primitives.HexQword(pc), primitives.HexByte(opcode))
	for _, b := range operand {
		fmt.Fprintf(c.TraceOut, " %s", primitives.HexByte(b))
	}
	fmt.Fprintf(c.TraceOut, "  %-4s {%s}  A=%s X=%s Y=%s SP=%s P=%s E=%t\n",
		mnemonic, primitives.HexQword(ea), primitives.HexQword(c.A), primitives.HexQword(c.X),
		primitives.HexQword(c.Y), primitives.HexQword(c.SP), c.flagString(), c.E)
}
