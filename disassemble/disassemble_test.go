package disassemble

import (
	"strings"
	"testing"

	"github.com/hcallahan/nmos6502/memory"
)

func newBus(t *testing.T) memory.Bus {
	t.Helper()
	b, err := memory.NewRAM(1<<16, nil)
	if err != nil {
		t.Fatalf("NewRAM: %v", err)
	}
	b.PowerOn()
	return b
}

func TestRangeDecodesImmediate(t *testing.T) {
	bus := newBus(t)
	bus.Write(0x8000, 0xA9) // LDA #$42
	bus.Write(0x8001, 0x42)

	l := Range(0x8000, 0x8001, bus)
	if len(l) != 1 {
		t.Fatalf("len(l) = %d, want 1", len(l))
	}
	if !strings.Contains(l[0].Text, "LDA") || !strings.Contains(l[0].Text, "#$42") {
		t.Errorf("Text = %q, want mnemonic LDA and operand #$42", l[0].Text)
	}
	if l[0].Length != 2 {
		t.Errorf("Length = %d, want 2", l[0].Length)
	}
}

func TestRangeTreatsIllegalAsOneByteStub(t *testing.T) {
	bus := newBus(t)
	bus.Write(0x8000, 0x02) // illegal
	bus.Write(0x8001, 0xEA) // NOP

	l := Range(0x8000, 0x8001, bus)
	if len(l) != 2 {
		t.Fatalf("len(l) = %d, want 2", len(l))
	}
	if !strings.Contains(l[0].Text, "???") {
		t.Errorf("Text = %q, want ??? for illegal opcode", l[0].Text)
	}
	if l[0].Length != 1 {
		t.Errorf("Length = %d, want 1 so the walk advances past garbage", l[0].Length)
	}
}

func TestRangeRendersBranchAsAbsoluteTarget(t *testing.T) {
	bus := newBus(t)
	bus.Write(0x8000, 0xF0) // BEQ
	bus.Write(0x8001, 0x05) // +5: target = 0x8002 + 5 = 0x8007

	l := Range(0x8000, 0x8001, bus)
	if !strings.Contains(l[0].Text, "$8007") {
		t.Errorf("Text = %q, want absolute target $8007", l[0].Text)
	}
}

func TestListingAt(t *testing.T) {
	bus := newBus(t)
	bus.Write(0x8000, 0xEA) // NOP
	bus.Write(0x8001, 0xEA) // NOP

	l := Range(0x8000, 0x8001, bus)
	e, ok := l.At(0x8001)
	if !ok {
		t.Fatalf("At(0x8001) not found")
	}
	if !strings.Contains(e.Text, "NOP") {
		t.Errorf("Text = %q, want NOP", e.Text)
	}
	if _, ok := l.At(0x9999); ok {
		t.Errorf("At(0x9999) = found, want not found")
	}
}
