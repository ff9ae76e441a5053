package memory

import (
	"testing"

	"github.com/nozotech/emu65x64/primitives"
)

func newTestSystem(t *testing.T, mask primitives.Address, ramSize int, rom []primitives.Byte) *System {
	t.Helper()
	s, err := NewSystem(mask, ramSize, rom)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	return s
}

func TestByteRoundTrip(t *testing.T) {
	s := newTestSystem(t, 0xFFFF, 0x100, make([]primitives.Byte, 0xFF00))
	s.WriteByte(0x10, 0x42)
	if got := s.ReadByte(0x10); got != 0x42 {
		t.Errorf("ReadByte(0x10) = %02X, want 42", got)
	}
}

func TestROMWritesAreNoOps(t *testing.T) {
	rom := make([]primitives.Byte, 0x100)
	rom[0] = 0xAA
	s := newTestSystem(t, 0xFF, 0x80, rom)
	s.WriteByte(0x80, 0x55) // first ROM byte
	if got := s.ReadByte(0x80); got != 0xAA {
		t.Errorf("write to ROM mutated it: ReadByte(0x80) = %02X, want AA", got)
	}
}

func TestLittleEndianRoundTrip(t *testing.T) {
	s := newTestSystem(t, 0xFFFF, 0x1000, nil)
	s.WriteWord(0x10, 0xBEEF)
	if got := s.ReadByte(0x10); got != 0xEF {
		t.Errorf("low byte = %02X, want EF", got)
	}
	if got := s.ReadByte(0x11); got != 0xBE {
		t.Errorf("high byte = %02X, want BE", got)
	}
	if got, want := s.ReadWord(0x10), primitives.Word(s.ReadByte(0x10))|primitives.Word(s.ReadByte(0x11))<<8; got != want {
		t.Errorf("ReadWord(0x10) = %04X, want %04X", got, want)
	}
}

func TestDwordQwordRoundTrip(t *testing.T) {
	s := newTestSystem(t, 0xFFFFFF, 0x10000, nil)
	s.WriteDword(0x100, 0xCAFEF00D)
	if got := s.ReadDword(0x100); got != 0xCAFEF00D {
		t.Errorf("ReadDword = %08X, want CAFEF00D", got)
	}
	s.WriteQword(0x200, 0xDEADBEEFCAFEBABE)
	if got := s.ReadQword(0x200); got != 0xDEADBEEFCAFEBABE {
		t.Errorf("ReadQword = %016X, want DEADBEEFCAFEBABE", got)
	}
}

func TestPerByteMaskWraparound(t *testing.T) {
	// mask = 0xF so addressable space is 16 bytes; a qword write starting
	// at 0xE wraps byte-by-byte back to the bottom of the space rather
	// than overflowing into an address outside the mask.
	s := newTestSystem(t, 0xF, 0x10, nil)
	s.WriteQword(0xE, 0x1122334455667788)
	if got := s.ReadByte(0xE); got != 0x88 {
		t.Errorf("ReadByte(0xE) = %02X, want 88", got)
	}
	if got := s.ReadByte(0xF); got != 0x77 {
		t.Errorf("ReadByte(0xF) = %02X, want 77", got)
	}
	// addr 0x10 masked with 0xF wraps to 0x0
	if got := s.ReadByte(0x0); got != 0x66 {
		t.Errorf("ReadByte(0x0) (wrapped) = %02X, want 66", got)
	}
}

func TestNewSystemRejectsNegativeRAMSize(t *testing.T) {
	_, err := NewSystem(0xFFFF, -1, nil)
	if err == nil {
		t.Fatal("NewSystem with negative ramSize: got nil error, want InvalidState")
	}
	if _, ok := err.(InvalidState); !ok {
		t.Errorf("NewSystem with negative ramSize: got %T, want InvalidState", err)
	}
}

func TestCallbackBankFallsBackPerFunction(t *testing.T) {
	fallback := newTestSystem(t, 0xFFFF, 0x1000, nil)
	fallback.WriteByte(0x5, 0x9)

	var interceptedAddr primitives.Address
	cb := &CallbackBank{
		Fallback: fallback,
		WriteByteFunc: func(addr primitives.Address, val primitives.Byte) {
			interceptedAddr = addr
		},
	}
	// Read is not intercepted, so it falls back.
	if got := cb.ReadByte(0x5); got != 0x9 {
		t.Errorf("ReadByte fallback = %02X, want 09", got)
	}
	// Write is intercepted, so it never reaches the fallback.
	cb.WriteByte(0x5, 0xFF)
	if interceptedAddr != 0x5 {
		t.Errorf("WriteByteFunc not invoked with addr 0x5, got %x", interceptedAddr)
	}
	if got := fallback.ReadByte(0x5); got != 0x9 {
		t.Errorf("fallback mutated despite intercepted write: got %02X, want 09", got)
	}
}
