package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/hcallahan/nmos6502/memory"
)

// flatMemory implements memory.Bus directly over a 64k array, minus
// PowerOn randomization (tests want deterministic startup state).
type flatMemory struct {
	addr [65536]uint8
	fill uint8
}

func (r *flatMemory) Read(addr uint16, _ bool) uint8 { return r.addr[addr] }
func (r *flatMemory) Write(addr uint16, val uint8)   { r.addr[addr] = val }
func (r *flatMemory) Parent() memory.Bus             { return nil }
func (r *flatMemory) DatabusVal() uint8              { return r.addr[0] }

func (r *flatMemory) PowerOn() {
	for i := range r.addr {
		r.addr[i] = r.fill
	}
}

// newTestChip builds a Chip wired to a flatMemory filled with fill.
// New's PowerOn overwrites the whole bus (including the reset vector)
// with fill before this function ever runs, so the vector is planted
// afterward and Reset is called again to pick it up.
func newTestChip(t *testing.T, fill uint8, resetVector uint16) (*Chip, *flatMemory) {
	t.Helper()
	mem := &flatMemory{fill: fill}
	c, err := New(Def{Variant: NMOS, Bus: mem})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	mem.addr[ResetVector] = uint8(resetVector)
	mem.addr[ResetVector+1] = uint8(resetVector >> 8)
	c.Reset()
	return c, mem
}

func TestResetState(t *testing.T) {
	c, _ := newTestChip(t, 0xEA, 0x8000)
	if c.PC != 0x8000 {
		t.Errorf("PC after reset = %#04x, want 0x8000", c.PC)
	}
	if c.S != 0xFD {
		t.Errorf("S after reset = %#02x, want 0xFD", c.S)
	}
	if !c.Flag(FlagInterrupt) {
		t.Errorf("I flag after reset = false, want true")
	}
	if got := c.A | c.X | c.Y; got != 0 {
		t.Errorf("A/X/Y after reset = %#02x/%#02x/%#02x, want all zero", c.A, c.X, c.Y)
	}
}

func TestLDAImmediateSetsZero(t *testing.T) {
	c, mem := newTestChip(t, 0xEA, 0x8000)
	mem.addr[0x8000] = 0xA9 // LDA #$00
	mem.addr[0x8001] = 0x00
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if diff := deep.Equal(cycles, 2); diff != nil {
		t.Errorf("cycles mismatch: %v\nstate: %s", diff, spew.Sdump(c))
	}
	if !c.Flag(FlagZero) {
		t.Errorf("Z flag not set after LDA #$00")
	}
	if c.Flag(FlagNegative) {
		t.Errorf("N flag unexpectedly set after LDA #$00")
	}
}

func TestLDAZeroPageXWrap(t *testing.T) {
	c, mem := newTestChip(t, 0xEA, 0x8000)
	c.X = 0xFF
	mem.addr[0x8000] = 0xB5 // LDA $80,X
	mem.addr[0x8001] = 0x80
	mem.addr[0x007F] = 0x42 // 0x80 + 0xFF wraps to 0x7F within page zero
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.A != 0x42 {
		t.Errorf("A = %#02x, want 0x42", c.A)
	}
	if cycles != 4 {
		t.Errorf("cycles = %d, want 4", cycles)
	}
}

func TestADCSignedOverflow(t *testing.T) {
	c, mem := newTestChip(t, 0xEA, 0x8000)
	c.A = 0x7F // +127
	mem.addr[0x8000] = 0x69 // ADC #$01
	mem.addr[0x8001] = 0x01
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.A != 0x80 {
		t.Errorf("A = %#02x, want 0x80", c.A)
	}
	if !c.Flag(FlagOverflow) {
		t.Errorf("V flag not set on signed overflow (127+1)")
	}
	if c.Flag(FlagCarry) {
		t.Errorf("C flag unexpectedly set (no unsigned carry expected)")
	}
	if !c.Flag(FlagNegative) {
		t.Errorf("N flag not set on 0x80 result")
	}
}

func TestBranchTakenAcrossPage(t *testing.T) {
	c, mem := newTestChip(t, 0xEA, 0x80F0)
	c.SetFlag(FlagZero, true)
	mem.addr[0x80F0] = 0xF0 // BEQ
	mem.addr[0x80F1] = 0x20 // +32: 0x80F2 + 0x20 = 0x8112, crosses page
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != 0x8112 {
		t.Errorf("PC = %#04x, want 0x8112", c.PC)
	}
	if cycles != 4 {
		t.Errorf("cycles = %d, want 4 (taken + page cross)", cycles)
	}
}

func TestBranchNotTaken(t *testing.T) {
	c, mem := newTestChip(t, 0xEA, 0x8000)
	c.SetFlag(FlagZero, false)
	mem.addr[0x8000] = 0xF0 // BEQ
	mem.addr[0x8001] = 0x20
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != 0x8002 {
		t.Errorf("PC = %#04x, want 0x8002", c.PC)
	}
	if cycles != 2 {
		t.Errorf("cycles = %d, want 2 (not taken)", cycles)
	}
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, mem := newTestChip(t, 0xEA, 0x8000)
	mem.addr[0x8000] = 0x20 // JSR $9000
	mem.addr[0x8001] = 0x00
	mem.addr[0x8002] = 0x90
	mem.addr[0x9000] = 0x60 // RTS

	if _, err := c.Step(); err != nil {
		t.Fatalf("JSR Step: %v", err)
	}
	if c.PC != 0x9000 {
		t.Errorf("PC after JSR = %#04x, want 0x9000", c.PC)
	}
	if _, err := c.Step(); err != nil {
		t.Fatalf("RTS Step: %v", err)
	}
	if c.PC != 0x8003 {
		t.Errorf("PC after RTS = %#04x, want 0x8003", c.PC)
	}
}

func TestJMPIndirectPageWrapBug(t *testing.T) {
	c, mem := newTestChip(t, 0xEA, 0x8000)
	mem.addr[0x8000] = 0x6C // JMP ($30FF)
	mem.addr[0x8001] = 0xFF
	mem.addr[0x8002] = 0x30
	mem.addr[0x30FF] = 0x80 // low byte of target
	mem.addr[0x3000] = 0x12 // high byte: fetched from 0x3000, NOT 0x3100
	mem.addr[0x3100] = 0xFF // if the bug weren't modeled, this would be used instead

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != 0x1280 {
		t.Errorf("PC = %#04x, want 0x1280 (page-wrap bug)", c.PC)
	}
}

func TestStackWrapAtZero(t *testing.T) {
	c, _ := newTestChip(t, 0xEA, 0x8000)
	c.S = 0x00
	c.pushByte(0xAB)
	if c.S != 0xFF {
		t.Errorf("S after push at 0x00 = %#02x, want 0xFF (wrapped)", c.S)
	}
}

func TestIllegalOpcodeHalts(t *testing.T) {
	c, mem := newTestChip(t, 0xEA, 0x8000)
	mem.addr[0x8000] = 0x02 // not in the documented-151 table
	_, err := c.Step()
	if _, ok := err.(IllegalOpcode); !ok {
		t.Fatalf("err = %v (%T), want IllegalOpcode", err, err)
	}
	if !c.Halted() {
		t.Fatalf("Halted() = false after illegal opcode")
	}
	if _, err := c.Step(); err == nil {
		t.Fatalf("expected Halted error on Step after halting, got nil")
	}
}

// alwaysRaised is an irq.Sender that is always (or never) held high.
type alwaysRaised bool

func (a alwaysRaised) Raised() bool { return bool(a) }

func TestCheckInterruptsPrefersNMIOverIRQ(t *testing.T) {
	mem := &flatMemory{fill: 0xEA}
	c, err := New(Def{Variant: NMOS, Bus: mem, NMI: alwaysRaised(true), IRQ: alwaysRaised(true)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	mem.addr[NMIVector] = 0x00
	mem.addr[NMIVector+1] = 0x70
	mem.addr[IRQVector] = 0x00
	mem.addr[IRQVector+1] = 0x80
	c.Reset()
	c.SetFlag(FlagInterrupt, false)

	cycles, err := c.CheckInterrupts()
	if err != nil {
		t.Fatalf("CheckInterrupts: %v", err)
	}
	if cycles != 7 {
		t.Errorf("cycles = %d, want 7", cycles)
	}
	if c.PC != 0x7000 {
		t.Errorf("PC = %#04x, want 0x7000 (NMI takes priority over IRQ)", c.PC)
	}
}

func TestCheckInterruptsNoOpWithNoSourcesWired(t *testing.T) {
	c, _ := newTestChip(t, 0xEA, 0x8000)
	cycles, err := c.CheckInterrupts()
	if err != nil {
		t.Fatalf("CheckInterrupts: %v", err)
	}
	if cycles != 0 {
		t.Errorf("cycles = %d, want 0 when neither source is wired", cycles)
	}
	if c.PC != 0x8000 {
		t.Errorf("PC = %#04x, want unchanged 0x8000", c.PC)
	}
}

func TestNMOSRicohVariantAcceptedByNew(t *testing.T) {
	mem := &flatMemory{fill: 0xEA}
	c, err := New(Def{Variant: NMOSRicoh, Bus: mem})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.variant != NMOSRicoh {
		t.Errorf("variant = %v, want NMOSRicoh", c.variant)
	}
}

func TestClockMatchesStepCycleCount(t *testing.T) {
	c, mem := newTestChip(t, 0xEA, 0x8000)
	mem.addr[0x8000] = 0xA9 // LDA #$42
	mem.addr[0x8001] = 0x42
	mem.addr[0x8002] = 0xEA // NOP

	ticks := 2 + 2 // LDA#imm + NOP
	boundaries := 0
	for i := 0; i < ticks; i++ {
		done, err := c.Clock()
		if err != nil {
			t.Fatalf("Clock: %v", err)
		}
		if done {
			boundaries++
		}
	}
	if boundaries != 2 {
		t.Errorf("instruction boundaries in %d ticks = %d, want 2", ticks, boundaries)
	}
	if c.A != 0x42 {
		t.Errorf("A = %#02x, want 0x42 after two instructions via Clock", c.A)
	}
}
