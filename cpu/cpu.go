// Package cpu implements the MOS 6502 instruction set architecture:
// registers, flags, the stack protocol, the addressing-mode resolver,
// the 151 documented opcodes, and the fetch/decode/execute loop. It
// consumes a memory.Bus collaborator and owns no memory itself.
package cpu

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hcallahan/nmos6502/irq"
	"github.com/hcallahan/nmos6502/memory"
)

// Variant distinguishes the small set of documented-opcode 6502
// flavors this package is willing to emulate. The only behavioral
// difference tracked here is decimal-mode ADC/SBC, which this core
// stubs out entirely (see Chip.ADC) regardless of variant; the field
// exists so callers can record which chip they intend to model and
// so a future decimal-mode implementation has somewhere to branch on.
type Variant int

const (
	_ Variant = iota
	NMOS       // Base NMOS 6502.
	NMOSRicoh  // Ricoh variant used in the NES; hardware drops BCD entirely.
	CMOSVariant
)

// Status flag masks for the P register.
const (
	FlagCarry     = uint8(0x01)
	FlagZero      = uint8(0x02)
	FlagInterrupt = uint8(0x04)
	FlagDecimal   = uint8(0x08)
	FlagBreak     = uint8(0x10) // only ever present in a pushed copy of P
	FlagUnused    = uint8(0x20) // always reads as 1
	FlagOverflow  = uint8(0x40)
	FlagNegative  = uint8(0x80)
)

// Vector addresses, little-endian.
const (
	NMIVector   = uint16(0xFFFA)
	ResetVector = uint16(0xFFFC)
	IRQVector   = uint16(0xFFFE)
)

// IllegalOpcode is returned by Step/Clock when the fetched opcode has
// no documented-151 table entry. The CPU halts; PC and registers are
// left as they were at the moment of the fault for inspection.
type IllegalOpcode struct {
	Opcode uint8
	Addr   uint16
}

func (e IllegalOpcode) Error() string {
	return fmt.Sprintf("illegal opcode 0x%02X fetched at 0x%04X", e.Opcode, e.Addr)
}

// Halted is returned by Step/Clock once the CPU has already faulted;
// it continues to be returned on every subsequent call since a halted
// core cannot make forward progress.
type Halted struct {
	Opcode uint8
}

func (e Halted) Error() string {
	return fmt.Sprintf("cpu halted on opcode 0x%02X", e.Opcode)
}

// Chip is a single MOS 6502 core. It is not safe for concurrent use;
// callers must serialize Step/Clock/Reset/IRQ/NMI invocations
// themselves, interleaving with bus mutation as needed (see package
// memory).
type Chip struct {
	A  uint8
	X  uint8
	Y  uint8
	S  uint8
	P  uint8
	PC uint16

	variant Variant
	bus     memory.Bus
	nmiSrc  irq.Sender
	irqSrc  irq.Sender

	halted     bool
	haltOpcode uint8

	// pendingCycles backs Clock(): a countdown of ticks owed for the
	// instruction currently in flight under the per-tick driver.
	pendingCycles int

	// TotalCycles is a running count of every cycle Step/Clock has
	// ever reported, for hosts that want a free-running timer without
	// keeping their own accumulator.
	TotalCycles uint64
}

// Def describes the wiring needed to bring up a Chip.
type Def struct {
	Variant Variant
	Bus     memory.Bus
	// NMI and IRQ are optional interrupt sources, polled for their
	// current level by CheckInterrupts; a nil Sender simply means that
	// interrupt line is never raised.
	NMI irq.Sender
	IRQ irq.Sender
}

// New brings up a Chip in power-on state against the given bus. The
// bus is powered on and reset as part of this call.
func New(def Def) (*Chip, error) {
	if def.Variant <= 0 || def.Variant > CMOSVariant {
		return nil, fmt.Errorf("invalid cpu variant: %d", def.Variant)
	}
	if def.Bus == nil {
		return nil, fmt.Errorf("cpu.New: Bus must be non-nil")
	}
	c := &Chip{
		variant: def.Variant,
		bus:     def.Bus,
		nmiSrc:  def.NMI,
		irqSrc:  def.IRQ,
	}
	c.PowerOn()
	return c, nil
}

// PowerOn randomizes registers (real hardware comes up in an
// undefined state) and then performs a Reset to load PC from the
// reset vector.
func (c *Chip) PowerOn() {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	c.bus.PowerOn()
	c.A = uint8(rnd.Intn(256))
	c.X = uint8(rnd.Intn(256))
	c.Y = uint8(rnd.Intn(256))
	c.S = uint8(rnd.Intn(256))
	c.P = FlagUnused
	c.halted = false
	c.haltOpcode = 0
	c.TotalCycles = 0
	c.Reset()
}

// Reset loads PC from the reset vector, sets S to 0xFD (matching the
// three phantom stack decrements real hardware performs on reset) and
// disables interrupts. A, X and Y are left untouched by real silicon;
// this core zeroes them for deterministic startup state instead.
//
// Hardware leaves D undefined and I unaffected on reset; this core
// clears D and forces I set, matching documented 6502 boot behavior.
// See DESIGN.md for the rationale.
func (c *Chip) Reset() {
	lo := c.bus.Read(ResetVector, false)
	hi := c.bus.Read(ResetVector+1, false)
	c.PC = uint16(hi)<<8 | uint16(lo)
	c.S = 0xFD
	c.A, c.X, c.Y = 0, 0, 0
	c.P = FlagUnused | FlagInterrupt
	c.halted = false
	c.haltOpcode = 0
	c.pendingCycles = 0
}

// Flag reports whether every bit in mask is set in P.
func (c *Chip) Flag(mask uint8) bool {
	return c.P&mask == mask
}

// SetFlag sets or clears every bit in mask in P according to v.
func (c *Chip) SetFlag(mask uint8, v bool) {
	if v {
		c.P |= mask
	} else {
		c.P &^= mask
	}
}

// Bits returns P as a byte suitable for pushing (U is always 1; B is
// not a resident flag -- callers that need it set, such as PHP and
// BRK, OR it in themselves before pushing).
func (c *Chip) Bits() uint8 {
	return c.P | FlagUnused
}

// SetBits loads P from a pulled byte, masking off B (which is never a
// resident flag in this core -- only ever a bit in a pushed copy) and
// forcing U, matching real hardware's hardwired-high unused bit.
func (c *Chip) SetBits(b uint8) {
	c.P = (b &^ FlagBreak) | FlagUnused
}

func (c *Chip) zeroCheck(v uint8) {
	c.SetFlag(FlagZero, v == 0)
}

func (c *Chip) negativeCheck(v uint8) {
	c.SetFlag(FlagNegative, v&0x80 != 0)
}

func (c *Chip) setNZ(v uint8) {
	c.zeroCheck(v)
	c.negativeCheck(v)
}

// pushByte writes the stack protocol byte: write at 0x0100|S, then
// decrement S (mod 256).
func (c *Chip) pushByte(v uint8) {
	c.bus.Write(0x0100|uint16(c.S), v)
	c.S--
}

// pullByte follows the stack protocol: increment S (mod 256),
// then read at 0x0100|S.
func (c *Chip) pullByte() uint8 {
	c.S++
	return c.bus.Read(0x0100|uint16(c.S), false)
}

// pushWord pushes the high byte first so that pulling low-then-high
// reconstructs it.
func (c *Chip) pushWord(w uint16) {
	c.pushByte(uint8(w >> 8))
	c.pushByte(uint8(w))
}

// pullWord pulls low, then high, and combines little-endian.
func (c *Chip) pullWord() uint16 {
	lo := c.pullByte()
	hi := c.pullByte()
	return uint16(hi)<<8 | uint16(lo)
}

// IRQ services a maskable interrupt if I is clear: it pushes PC, then
// P (with B clear, U set), sets I, and loads PC from the IRQ/BRK
// vector. Returns the number of cycles consumed; 0 if I was set and
// the request was ignored.
func (c *Chip) IRQ() (int, error) {
	if c.halted {
		return 0, Halted{c.haltOpcode}
	}
	if c.Flag(FlagInterrupt) {
		return 0, nil
	}
	c.serviceInterrupt(IRQVector)
	c.TotalCycles += 7
	return 7, nil
}

// NMI unconditionally services a non-maskable interrupt: pushes PC,
// pushes P (B clear, U set), sets I, and loads PC from the NMI
// vector. Always costs 7 cycles.
func (c *Chip) NMI() (int, error) {
	if c.halted {
		return 0, Halted{c.haltOpcode}
	}
	c.serviceInterrupt(NMIVector)
	c.TotalCycles += 7
	return 7, nil
}

// CheckInterrupts services whichever interrupt line the Def's
// irq.Sender collaborators report raised, at instruction-boundary
// granularity: NMI takes priority over IRQ, and it is a no-op (0,
// nil) if neither source is wired or neither is currently asserted.
// Hosts that want automatic interrupt delivery call this between
// Step/Clock-driven instructions instead of polling nmiSrc/irqSrc
// themselves.
func (c *Chip) CheckInterrupts() (int, error) {
	if c.nmiSrc != nil && c.nmiSrc.Raised() {
		return c.NMI()
	}
	if c.irqSrc != nil && c.irqSrc.Raised() {
		return c.IRQ()
	}
	return 0, nil
}

func (c *Chip) serviceInterrupt(vector uint16) {
	c.pushWord(c.PC)
	c.pushByte((c.P &^ FlagBreak) | FlagUnused)
	c.SetFlag(FlagInterrupt, true)
	lo := c.bus.Read(vector, false)
	hi := c.bus.Read(vector+1, false)
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// Step fetches, decodes and executes exactly one instruction and
// returns the number of cycles it cost, including any page-cross or
// branch-taken penalty. An IllegalOpcode error halts the CPU; every
// subsequent call returns Halted until the next Reset/PowerOn.
func (c *Chip) Step() (int, error) {
	if c.halted {
		return 0, Halted{c.haltOpcode}
	}

	fetchAddr := c.PC
	op := c.bus.Read(c.PC, false)
	c.PC++

	entry := &opcodeTable[op]
	if entry.Kind == KindIllegal {
		c.halted = true
		c.haltOpcode = op
		return 0, IllegalOpcode{Opcode: op, Addr: fetchAddr}
	}

	cycles := entry.Cycles
	switch entry.Kind {
	case KindLoad:
		addr, crossed := c.resolveOperand(entry.Mode)
		val := c.fetchOperand(entry.Mode, addr)
		entry.Load(c, val)
		if crossed {
			cycles++
		}
	case KindStore:
		addr, _ := c.resolveOperand(entry.Mode)
		c.bus.Write(addr, entry.Store(c))
	case KindRMW:
		if entry.Mode == ModeIMP {
			c.A = entry.RMW(c, c.A)
			break
		}
		addr, _ := c.resolveOperand(entry.Mode)
		old := c.bus.Read(addr, false)
		c.bus.Write(addr, old) // dummy write-back, matches real RMW bus traffic
		c.bus.Write(addr, entry.RMW(c, old))
	case KindBranch:
		cycles = c.runBranch(entry.Branch)
	case KindOther:
		entry.Other(c)
	}
	c.TotalCycles += uint64(cycles)
	return cycles, nil
}

// runBranch fetches the signed offset, evaluates cond, and returns
// the cycle cost: 2 if untaken, 3 if taken within a page, 4 if taken
// across a page boundary.
func (c *Chip) runBranch(cond func(*Chip) bool) int {
	offset := int8(c.bus.Read(c.PC, false))
	c.PC++
	if !cond(c) {
		return 2
	}
	before := c.PC
	c.PC = uint16(int32(before) + int32(offset))
	if before&0xFF00 != c.PC&0xFF00 {
		return 4
	}
	return 3
}

// Clock advances the CPU by a single cycle tick, only entering the
// fetch/decode/execute path once the previous instruction's cycle
// budget has been paid off. It is built directly on Step so the two
// drivers remain cumulatively equivalent: running Clock() N times
// costs exactly the cycles Step() would report for the instructions
// it covers, just revealed to the caller one tick at a time. Returns
// true when an instruction boundary was just crossed (i.e. the tick
// that completed an instruction).
func (c *Chip) Clock() (bool, error) {
	if c.halted {
		return false, Halted{c.haltOpcode}
	}
	if c.pendingCycles > 0 {
		c.pendingCycles--
		return c.pendingCycles == 0, nil
	}
	cycles, err := c.Step()
	if err != nil {
		return false, err
	}
	if cycles > 1 {
		c.pendingCycles = cycles - 1
	}
	return c.pendingCycles == 0, nil
}

// LoadProgram interprets the first two bytes of data, little-endian,
// as a load address and writes the remainder sequentially starting
// there. A slice shorter than two bytes is treated as a no-op.
func (c *Chip) LoadProgram(data []byte) {
	if len(data) < 2 {
		return
	}
	addr := uint16(data[0]) | uint16(data[1])<<8
	for i, b := range data[2:] {
		c.bus.Write(addr+uint16(i), b)
	}
}

// Halted reports whether the CPU has faulted on an illegal opcode.
func (c *Chip) Halted() bool {
	return c.halted
}
