package primitives

import "testing"

func TestSplitJoinWord(t *testing.T) {
	tests := []Word{0x0000, 0x00FF, 0xFF00, 0x1234, 0xFFFF}
	for _, w := range tests {
		lo, hi := SplitWord(w)
		if got := JoinWord(lo, hi); got != w {
			t.Errorf("JoinWord(SplitWord(%04X)) = %04X, want %04X", w, got, w)
		}
	}
}

func TestSplitJoinDword(t *testing.T) {
	tests := []Dword{0x00000000, 0xDEADBEEF, 0x12345678, 0xFFFFFFFF}
	for _, d := range tests {
		if got := JoinDword(SplitDword(d)); got != d {
			t.Errorf("JoinDword(SplitDword(%08X)) = %08X, want %08X", d, got, d)
		}
	}
}

func TestSplitJoinQword(t *testing.T) {
	tests := []Qword{0x0, 0xDEADBEEFCAFEBABE, 0xFFFFFFFFFFFFFFFF, 0x0123456789ABCDEF}
	for _, q := range tests {
		if got := JoinQword(SplitQword(q)); got != q {
			t.Errorf("JoinQword(SplitQword(%016X)) = %016X, want %016X", q, got, q)
		}
	}
}

func TestSignExtend16(t *testing.T) {
	tests := []struct {
		in   Word
		want Address
	}{
		{0x0000, 0x0000000000000000},
		{0x0001, 0x0000000000000001},
		{0xFFFF, 0xFFFFFFFFFFFFFFFF}, // -1
		{0xFFFE, 0xFFFFFFFFFFFFFFFE}, // -2
		{0x8000, 0xFFFFFFFFFFFF8000},
	}
	for _, test := range tests {
		if got := SignExtend16(test.in); got != test.want {
			t.Errorf("SignExtend16(%04X) = %016X, want %016X", test.in, got, test.want)
		}
	}
}

func TestSignExtend32(t *testing.T) {
	tests := []struct {
		in   Dword
		want Address
	}{
		{0x00000000, 0x0000000000000000},
		{0xFFFFFFFF, 0xFFFFFFFFFFFFFFFF}, // -1
		{0x80000000, 0xFFFFFFFF80000000},
	}
	for _, test := range tests {
		if got := SignExtend32(test.in); got != test.want {
			t.Errorf("SignExtend32(%08X) = %016X, want %016X", test.in, got, test.want)
		}
	}
}

func TestHexFormatting(t *testing.T) {
	if got, want := HexByte(0xA), "0A"; got != want {
		t.Errorf("HexByte(0xA) = %q, want %q", got, want)
	}
	if got, want := HexWord(0xAB), "00AB"; got != want {
		t.Errorf("HexWord(0xAB) = %q, want %q", got, want)
	}
	if got, want := HexDword(0xAB), "000000AB"; got != want {
		t.Errorf("HexDword(0xAB) = %q, want %q", got, want)
	}
	if got, want := HexQword(0xAB), "00000000000000AB"; got != want {
		t.Errorf("HexQword(0xAB) = %q, want %q", got, want)
	}
}
