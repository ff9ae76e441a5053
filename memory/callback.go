package memory

import "github.com/nozotech/emu65x64/primitives"

// CallbackBank implements Bank by delegating to host-supplied
// functions (§6.2), falling back to an embedded System for any
// function left nil so a host only needs to intercept the addresses
// it actually cares about.
type CallbackBank struct {
	ReadByteFunc   func(addr primitives.Address) primitives.Byte
	WriteByteFunc  func(addr primitives.Address, val primitives.Byte)
	ReadWordFunc   func(addr primitives.Address) primitives.Word
	WriteWordFunc  func(addr primitives.Address, val primitives.Word)
	ReadDwordFunc  func(addr primitives.Address) primitives.Dword
	WriteDwordFunc func(addr primitives.Address, val primitives.Dword)
	ReadQwordFunc  func(addr primitives.Address) primitives.Qword
	WriteQwordFunc func(addr primitives.Address, val primitives.Qword)

	// Fallback handles any access whose corresponding *Func field is
	// nil. It is exported so a host can chain back into the default
	// RAM/ROM behavior, or construct one purely for this purpose.
	Fallback *System
}

// ReadByte implements Bank.
func (c *CallbackBank) ReadByte(addr primitives.Address) primitives.Byte {
	if c.ReadByteFunc != nil {
		return c.ReadByteFunc(addr)
	}
	return c.Fallback.ReadByte(addr)
}

// WriteByte implements Bank.
func (c *CallbackBank) WriteByte(addr primitives.Address, val primitives.Byte) {
	if c.WriteByteFunc != nil {
		c.WriteByteFunc(addr, val)
		return
	}
	c.Fallback.WriteByte(addr, val)
}

// ReadWord implements Bank.
func (c *CallbackBank) ReadWord(addr primitives.Address) primitives.Word {
	if c.ReadWordFunc != nil {
		return c.ReadWordFunc(addr)
	}
	return c.Fallback.ReadWord(addr)
}

// WriteWord implements Bank.
func (c *CallbackBank) WriteWord(addr primitives.Address, val primitives.Word) {
	if c.WriteWordFunc != nil {
		c.WriteWordFunc(addr, val)
		return
	}
	c.Fallback.WriteWord(addr, val)
}

// ReadDword implements Bank.
func (c *CallbackBank) ReadDword(addr primitives.Address) primitives.Dword {
	if c.ReadDwordFunc != nil {
		return c.ReadDwordFunc(addr)
	}
	return c.Fallback.ReadDword(addr)
}

// WriteDword implements Bank.
func (c *CallbackBank) WriteDword(addr primitives.Address, val primitives.Dword) {
	if c.WriteDwordFunc != nil {
		c.WriteDwordFunc(addr, val)
		return
	}
	c.Fallback.WriteDword(addr, val)
}

// ReadQword implements Bank.
func (c *CallbackBank) ReadQword(addr primitives.Address) primitives.Qword {
	if c.ReadQwordFunc != nil {
		return c.ReadQwordFunc(addr)
	}
	return c.Fallback.ReadQword(addr)
}

// WriteQword implements Bank.
func (c *CallbackBank) WriteQword(addr primitives.Address, val primitives.Qword) {
	if c.WriteQwordFunc != nil {
		c.WriteQwordFunc(addr, val)
		return
	}
	c.Fallback.WriteQword(addr, val)
}
