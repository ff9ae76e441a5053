package cpu_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
	"github.com/stretchr/testify/require"

	"github.com/nozotech/emu65x64/cpu"
	"github.com/nozotech/emu65x64/internal/hostio"
	"github.com/nozotech/emu65x64/memory"
)

// newMachine builds a small flat-mapped System (mask keeps the huge
// reset/interrupt vector addresses folded into the test RAM) and a
// freshly reset CPU pointed at start.
func newMachine(t *testing.T, start uint64) (*cpu.CPU, *memory.System) {
	t.Helper()
	mem, err := memory.NewSystem(0xFFFF, 0x10000, nil)
	require.NoError(t, err)
	mem.WriteQword(cpu.ResetVector, start)
	c := cpu.New(mem)
	c.Reset(false, nil)
	return c, mem
}

func load(t *testing.T, mem *memory.System, addr uint64, data ...byte) {
	t.Helper()
	for i, b := range data {
		mem.WriteByte(addr+uint64(i), b)
	}
}

func TestResetInvariants(t *testing.T) {
	c, mem := newMachine(t, 0x4000)
	require.Equal(t, uint64(0x100), c.SP)
	require.Equal(t, byte(0x34), c.P)
	require.False(t, c.E)
	require.Equal(t, uint64(0x4000), c.PC)
	require.False(t, c.IsStopped())
	_ = mem
}

func TestLDASTANarrowRoundTrip(t *testing.T) {
	c, mem := newMachine(t, 0x4000)
	// LDA #$AA ; STA $5000
	load(t, mem, 0x4000, 0xA9, 0xAA)
	c.Step()
	require.Equal(t, uint64(0xAA), c.A&0xFF)
	require.True(t, c.P&cpu.PNegative != 0)

	load(t, mem, 0x4002, 0x8D, 0x00, 0x50, 0, 0, 0, 0, 0, 0)
	c.Step()
	require.Equal(t, byte(0xAA), mem.ReadByte(0x5000))
}

func TestREPWidensAccumulatorForQwordImmediate(t *testing.T) {
	c, mem := newMachine(t, 0x4000)
	// REP #$20 (clear M) ; LDA #$0102030405060708
	load(t, mem, 0x4000, 0xC2, 0x20)
	c.Step()
	require.False(t, c.P&cpu.PMemory != 0)

	load(t, mem, 0x4002, 0xA9, 0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01)
	c.Step()
	require.Equal(t, uint64(0x0102030405060708), c.A)
}

func TestADCBinaryOverflowAndCarry(t *testing.T) {
	c, mem := newMachine(t, 0x4000)
	c.A = 0x7F
	load(t, mem, 0x4000, 0x69, 0x01) // ADC #$01
	c.Step()
	require.Equal(t, uint64(0x80), c.A&0xFF)
	require.True(t, c.P&cpu.POverflow != 0)
	require.True(t, c.P&cpu.PNegative != 0)
	require.True(t, c.P&cpu.PCarry == 0)
}

func TestADCDecimalNarrowCorrection(t *testing.T) {
	c, mem := newMachine(t, 0x4000)
	c.P |= cpu.PDecimal
	c.A = 0x09
	load(t, mem, 0x4000, 0x69, 0x01) // ADC #$01
	c.Step()
	require.Equal(t, uint64(0x10), c.A&0xFF)
}

func TestADCDecimalQwordDoesNotPropagateMidpointCarry(t *testing.T) {
	c, mem := newMachine(t, 0x4000)
	load(t, mem, 0x4000, 0xC2, 0x20) // REP #$20, widen A
	c.Step()
	c.P |= cpu.PDecimal
	c.A = 0x0000000099999999 // low dword all-nines
	// ADC with an 8 byte immediate: low dword 0x00000001, high dword 0x00000000.
	load(t, mem, 0x4002, 0x69, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00)
	c.Step()
	require.Equal(t, uint64(0), c.A>>32, "high dword must stay zero: the low dword's carry-out is never propagated up")
	require.Equal(t, uint64(0), c.A&0xFFFFFFFF, "low dword wraps to zero after BCD correction")
}

func TestSBCIsComplementedADC(t *testing.T) {
	c, mem := newMachine(t, 0x4000)
	c.A = 0x05
	c.P |= cpu.PCarry // carry set means "no borrow" going in
	load(t, mem, 0x4000, 0xE9, 0x01) // SBC #$01
	c.Step()
	require.Equal(t, uint64(0x04), c.A&0xFF)
}

func TestShiftBoundaryFlags(t *testing.T) {
	c, mem := newMachine(t, 0x4000)
	c.A = 0x80
	load(t, mem, 0x4000, 0x0A) // ASL A
	c.Step()
	require.Equal(t, uint64(0), c.A&0xFF)
	require.True(t, c.P&cpu.PCarry != 0)
	require.True(t, c.P&cpu.PZero != 0)

	c.A = 0x01
	load(t, mem, 0x4001, 0x4A) // LSR A
	c.Step()
	require.Equal(t, uint64(0), c.A&0xFF)
	require.True(t, c.P&cpu.PCarry != 0)
	require.True(t, c.P&cpu.PZero != 0)
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, mem := newMachine(t, 0x4000)
	load(t, mem, 0x4000, 0x20, 0x00, 0x50, 0, 0, 0, 0, 0, 0) // JSR $5000
	load(t, mem, 0x5000, 0x60)                               // RTS
	c.Step()
	if c.PC != 0x5000 {
		t.Fatalf("PC after JSR: got %.16X want %.16X state: %s", c.PC, uint64(0x5000), spew.Sdump(c))
	}
	c.Step()
	require.Equal(t, uint64(0x4009), c.PC)
}

func TestJSLRTLPreservesPBR(t *testing.T) {
	c, mem := newMachine(t, 0x4000)
	c.PBR = 0x01
	load(t, mem, 0x4000, 0x22, 0x00, 0x60, 0, 0, 0, 0, 0, 0) // JSL $6000
	load(t, mem, 0x6000, 0x6B)                               // RTL
	c.Step()
	require.Equal(t, uint64(0x6000), c.PC)
	require.Equal(t, byte(0), c.PBR)
	c.Step()
	require.Equal(t, uint64(0x4009), c.PC)
	require.Equal(t, byte(0x01), c.PBR)
}

func TestBRKDispatchesThroughVectorAndRTIReturns(t *testing.T) {
	c, mem := newMachine(t, 0x4000)
	mem.WriteWord(cpu.BRKVectorE0, 0x7000)
	load(t, mem, 0x4000, 0x00, 0xEA) // BRK <sig> ; NOP
	load(t, mem, 0x7000, 0x40)       // RTI

	c.Step() // BRK
	require.Equal(t, uint64(0x7000), c.PC)
	require.True(t, c.P&cpu.PIRQDis != 0)

	c.Step() // RTI
	require.Equal(t, uint64(0x4002), c.PC)
}

func TestMVNCopiesAndSelfRepeatsUntilDone(t *testing.T) {
	c, mem := newMachine(t, 0x4000)
	load(t, mem, 0x3000, 0x11, 0x22, 0x33)
	c.X = 0x3000
	c.Y = 0x3100
	c.A = 0x0002 // copy 3 bytes: count is bytes-1
	load(t, mem, 0x4000, 0x54, 0x00, 0x00) // MVN dstBank=0 srcBank=0
	for i := 0; i < 3; i++ {
		c.Step()
	}
	require.Equal(t, byte(0x11), mem.ReadByte(0x3100))
	require.Equal(t, byte(0x22), mem.ReadByte(0x3101))
	require.Equal(t, byte(0x33), mem.ReadByte(0x3102))
	require.Equal(t, uint64(0x4003), c.PC)
	require.Equal(t, uint64(0xFFFF), c.A&0xFFFF)
}

func TestXCEEntersEmulationModeAndNarrowsStack(t *testing.T) {
	c, mem := newMachine(t, 0x4000)
	c.SP = 0x1234
	c.P |= cpu.PCarry
	load(t, mem, 0x4000, 0xFB) // XCE
	c.Step()
	require.True(t, c.E)
	require.Equal(t, uint64(0x0134), c.SP)
	require.True(t, c.P&cpu.PMemory != 0)
	require.True(t, c.P&cpu.PIndex != 0)
}

func TestWDMHostBridgeWritesConsole(t *testing.T) {
	c, mem := newMachine(t, 0x4000)
	var out bytes.Buffer
	c.Console = &hostio.Console{Out: &out}
	c.A = 0x41
	load(t, mem, 0x4000, 0x42, 0x01) // WDM $01
	c.Step()
	require.Equal(t, "A", out.String())
}

func TestWDMSubcodeFFHalts(t *testing.T) {
	c, mem := newMachine(t, 0x4000)
	load(t, mem, 0x4000, 0x42, 0xFF) // WDM $FF
	c.Step()
	require.True(t, c.IsStopped())
}

func TestTraceLineFormat(t *testing.T) {
	var out strings.Builder
	c, mem := newMachine(t, 0x4000)
	c.Trace = true
	c.TraceOut = &out
	load(t, mem, 0x4000, 0xA9, 0x01) // LDA #$01
	c.Step()
	line := out.String()
	require.True(t, strings.Contains(line, "LDA"))
	require.True(t, strings.Contains(line, "A=0000000000000001"))
}

// diffableSnapshot and the deep.Equal-based check below exercise the
// same register-comparison style the teacher's test suite uses for
// whole-state assertions, here applied to confirm Reset does not
// disturb accumulator/index state it is not supposed to touch.
type snapshot struct {
	A, X, Y, PC uint64
	PBR, DBR    byte
}

func diffableSnapshot(c *cpu.CPU) snapshot {
	return snapshot{A: c.A, X: c.X, Y: c.Y, PC: c.PC, PBR: c.PBR, DBR: c.DBR}
}

func TestResetPreservesAccumulatorAndIndexRegisters(t *testing.T) {
	c, _ := newMachine(t, 0x4000)
	c.A, c.X, c.Y = 0x11, 0x22, 0x33
	before := diffableSnapshot(c)
	before.PC = 0x4000

	c.Reset(false, nil)
	after := diffableSnapshot(c)
	after.PC = 0x4000

	if diff := deep.Equal(before, after); diff != nil {
		t.Fatalf("reset disturbed register state it should not touch: %v", diff)
	}
}
