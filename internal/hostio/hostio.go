// Package hostio provides the standard-input/output bridge used by the
// WDM opcode (spec §4.4, §6.3). The cpu package depends only on this
// package's io.Reader/io.Writer fields, never on os directly, so a
// host can redirect WDM traffic anywhere it likes.
package hostio

import "io"

// Console holds the byte streams WDM subcodes 0x01 and 0x02 talk to.
// Either field may be nil, consistent with the core's "no recoverable
// errors" contract: a nil Out makes subcode 0x01 a no-op, and a nil In
// makes ReadByte return 0, so subcode 0x02 loads 0 into A's low byte
// as it does on EOF.
type Console struct {
	Out io.Writer
	In  io.Reader
}

// WriteByte writes a single byte to Out, swallowing any error: the
// core has no error channel to report I/O failures through.
func (c *Console) WriteByte(b byte) {
	if c == nil || c.Out == nil {
		return
	}
	_, _ = c.Out.Write([]byte{b})
}

// ReadByte reads a single byte from In. On EOF or any read error it
// returns 0, leaving the decision of what that means to the host that
// wired up In (spec §7).
func (c *Console) ReadByte() byte {
	if c == nil || c.In == nil {
		return 0
	}
	var buf [1]byte
	if _, err := c.In.Read(buf[:]); err != nil {
		return 0
	}
	return buf[0]
}
