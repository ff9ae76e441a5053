package disassemble_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nozotech/emu65x64/disassemble"
	"github.com/nozotech/emu65x64/memory"
	"github.com/nozotech/emu65x64/primitives"
)

func newMem(t *testing.T, addr uint64, data ...byte) *memory.System {
	t.Helper()
	mem, err := memory.NewSystem(0xFFFF, 0x10000, nil)
	require.NoError(t, err)
	for i, b := range data {
		mem.WriteByte(addr+uint64(i), b)
	}
	return mem
}

func TestOneDecodesImmediateLoadWithoutExecuting(t *testing.T) {
	mem := newMem(t, 0x4000, 0xA9, 0x7F) // LDA #$7F, narrow (P's M bit set by default here)
	line := disassemble.One(mem, 0x4000, 0x20, false)
	require.Equal(t, "LDA", line.Mnemonic)
	require.Equal(t, []primitives.Byte{0x7F}, line.Operand)
	require.Equal(t, uint64(0x4002), uint64(line.Next))
	require.Equal(t, byte(0x7F), mem.ReadByte(0x4001), "decoding must not mutate memory")
}

func TestOneDoesNotAdvanceCallerState(t *testing.T) {
	mem := newMem(t, 0x4000, 0x20, 0x00, 0x50, 0, 0, 0, 0, 0, 0) // JSR $5000
	line := disassemble.One(mem, 0x4000, 0x20, false)
	require.Equal(t, "JSR", line.Mnemonic)
	require.Equal(t, uint64(0x5000), uint64(line.EA))
	// A second decode from the same pc must produce an identical line:
	// One must not carry state between calls via a shared CPU.
	again := disassemble.One(mem, 0x4000, 0x20, false)
	require.Equal(t, line, again)
}

func TestListingAdvancesThroughConsecutiveInstructions(t *testing.T) {
	mem := newMem(t, 0x4000,
		0xA9, 0x01, // LDA #$01
		0xEA,       // NOP
		0x00, 0xEA, // BRK <sig>
	)
	lines := disassemble.Listing(mem, 0x4000, 0x20, false, 3)
	require.Len(t, lines, 3)
	require.Equal(t, "LDA", lines[0].Mnemonic)
	require.Equal(t, "NOP", lines[1].Mnemonic)
	require.Equal(t, "BRK", lines[2].Mnemonic)
	require.Equal(t, uint64(0x4002), uint64(lines[1].PC))
}

func TestListingStopsAfterAWidthChangingOpcode(t *testing.T) {
	mem := newMem(t, 0x4000,
		0xC2, 0x20, // REP #$20 (widens A)
		0xA9, 0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01, // LDA #$... (qword once widened)
		0xEA, // NOP
	)
	lines := disassemble.Listing(mem, 0x4000, 0x20, false, 5)
	require.Len(t, lines, 1, "must stop after REP instead of decoding LDA with the stale (narrow) width")
	require.Equal(t, "REP", lines[0].Mnemonic)
}

func TestLineStringFormat(t *testing.T) {
	mem := newMem(t, 0x4000, 0xA9, 0x01)
	line := disassemble.One(mem, 0x4000, 0x20, false)
	s := line.String()
	require.True(t, strings.Contains(s, "LDA"))
	require.True(t, strings.HasPrefix(s, "0000000000004000:"))
}
