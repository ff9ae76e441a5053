package irq

import "testing"

func TestLineRaiseClear(t *testing.T) {
	var l Line
	if l.Raised() {
		t.Fatal("new Line reports Raised()")
	}
	l.Raise()
	if !l.Raised() {
		t.Fatal("Raised() false after Raise()")
	}
	l.Clear()
	if l.Raised() {
		t.Fatal("Raised() true after Clear()")
	}
}
