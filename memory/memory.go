// Package memory defines the unified byte/word/dword/qword
// little-endian load and store interface used by the 65x64 core, along
// with the default RAM+ROM implementation of it.
package memory

import (
	"fmt"

	"github.com/nozotech/emu65x64/primitives"
)

// Bank is the interface the cpu package uses for every memory access.
// The default System implementation backs it with RAM+ROM; a
// CallbackBank implementation backs it with host-supplied functions
// (see §6.2 of the design doc). The cpu package never distinguishes
// between the two.
type Bank interface {
	ReadByte(addr primitives.Address) primitives.Byte
	WriteByte(addr primitives.Address, val primitives.Byte)
	ReadWord(addr primitives.Address) primitives.Word
	WriteWord(addr primitives.Address, val primitives.Word)
	ReadDword(addr primitives.Address) primitives.Dword
	WriteDword(addr primitives.Address, val primitives.Dword)
	ReadQword(addr primitives.Address) primitives.Qword
	WriteQword(addr primitives.Address, val primitives.Qword)
}

// System implements Bank over a contiguous RAM region (read/write,
// [0, len(ram))) followed by a ROM region (read-only). Every access,
// including the individual bytes of a composite access, is masked
// with mask before being dispatched to RAM or ROM.
type System struct {
	mask primitives.Address
	ram  []primitives.Byte
	rom  []primitives.Byte
}

// InvalidState is returned by setup functions that can fail before any
// instruction has executed, following the teacher's InvalidCPUState
// pattern of a named error type per package rather than a bare
// fmt.Errorf.
type InvalidState struct {
	Reason string
}

// Error implements the error interface.
func (e InvalidState) Error() string {
	return fmt.Sprintf("invalid memory state: %s", e.Reason)
}

// NewSystem allocates an internal RAM buffer of ramSize bytes and
// installs rom as the read-only region above it.
func NewSystem(mask primitives.Address, ramSize int, rom []primitives.Byte) (*System, error) {
	if ramSize < 0 {
		return nil, InvalidState{Reason: fmt.Sprintf("invalid ramSize: %d must not be negative", ramSize)}
	}
	return NewSystemWithRAM(mask, make([]primitives.Byte, ramSize), rom)
}

// NewSystemWithRAM is identical to NewSystem except the caller supplies
// the backing RAM buffer directly, allowing it to be shared or
// pre-populated.
func NewSystemWithRAM(mask primitives.Address, ram, rom []primitives.Byte) (*System, error) {
	if ram == nil {
		return nil, InvalidState{Reason: "ram must not be nil"}
	}
	return &System{
		mask: mask,
		ram:  ram,
		rom:  rom,
	}, nil
}

// ReadByte implements Bank. addr is masked before the RAM/ROM split is
// applied.
func (s *System) ReadByte(addr primitives.Address) primitives.Byte {
	a := addr & s.mask
	if a < primitives.Address(len(s.ram)) {
		return s.ram[a]
	}
	romAddr := a - primitives.Address(len(s.ram))
	if romAddr < primitives.Address(len(s.rom)) {
		return s.rom[romAddr]
	}
	return 0
}

// WriteByte implements Bank. Writes landing in the ROM region, or past
// the end of installed ROM, are silently discarded.
func (s *System) WriteByte(addr primitives.Address, val primitives.Byte) {
	a := addr & s.mask
	if a < primitives.Address(len(s.ram)) {
		s.ram[a] = val
	}
}

// ReadWord implements Bank as two independently-masked ReadByte calls,
// so a word that straddles the mask boundary wraps byte by byte.
func (s *System) ReadWord(addr primitives.Address) primitives.Word {
	lo := s.ReadByte(addr)
	hi := s.ReadByte(addr + 1)
	return primitives.JoinWord(lo, hi)
}

// WriteWord implements Bank as two independently-masked WriteByte calls.
func (s *System) WriteWord(addr primitives.Address, val primitives.Word) {
	lo, hi := primitives.SplitWord(val)
	s.WriteByte(addr, lo)
	s.WriteByte(addr+1, hi)
}

// ReadDword implements Bank as four independently-masked ReadByte calls.
func (s *System) ReadDword(addr primitives.Address) primitives.Dword {
	var b [4]primitives.Byte
	for i := range b {
		b[i] = s.ReadByte(addr + primitives.Address(i))
	}
	return primitives.JoinDword(b)
}

// WriteDword implements Bank as four independently-masked WriteByte calls.
func (s *System) WriteDword(addr primitives.Address, val primitives.Dword) {
	b := primitives.SplitDword(val)
	for i, v := range b {
		s.WriteByte(addr+primitives.Address(i), v)
	}
}

// ReadQword implements Bank as eight independently-masked ReadByte calls.
func (s *System) ReadQword(addr primitives.Address) primitives.Qword {
	var b [8]primitives.Byte
	for i := range b {
		b[i] = s.ReadByte(addr + primitives.Address(i))
	}
	return primitives.JoinQword(b)
}

// WriteQword implements Bank as eight independently-masked WriteByte calls.
func (s *System) WriteQword(addr primitives.Address, val primitives.Qword) {
	b := primitives.SplitQword(val)
	for i, v := range b {
		s.WriteByte(addr+primitives.Address(i), v)
	}
}

// RAMSize returns the size in bytes of the RAM region, used by hosts
// that need to locate the RAM/ROM split without guessing.
func (s *System) RAMSize() int {
	return len(s.ram)
}
