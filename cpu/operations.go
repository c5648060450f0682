package cpu

// This file implements the 56 documented operations. Each
// is grounded in the "compute, then set flags" pattern stated once
// here and referenced by every operation below.

// LoadFunc consumes the resolved operand of a load-class instruction
// (LDA/LDX/LDY/AND/ORA/EOR/ADC/SBC/CMP/CPX/CPY/BIT). The page-cross
// cycle, if any, is applied by the caller.
type LoadFunc func(c *Chip, val uint8)

// StoreFunc returns the byte a store-class instruction (STA/STX/STY)
// writes to the resolved address.
type StoreFunc func(c *Chip) uint8

// RMWFunc computes the new value a read-modify-write instruction
// (ASL/LSR/ROL/ROR/INC/DEC) writes back, given the value read.
type RMWFunc func(c *Chip, val uint8) uint8

// BranchFunc reports whether a branch's condition holds.
type BranchFunc func(c *Chip) bool

// OtherFunc performs an instruction that doesn't fit the
// load/store/RMW/branch shape: transfers, stack ops, flag-only ops,
// jumps, subroutine linkage, interrupts and NOP. Cost is always the
// table's fixed base cycle count.
type OtherFunc func(c *Chip)

// --- Loads ---

func opLDA(c *Chip, v uint8) { c.A = v; c.setNZ(c.A) }
func opLDX(c *Chip, v uint8) { c.X = v; c.setNZ(c.X) }
func opLDY(c *Chip, v uint8) { c.Y = v; c.setNZ(c.Y) }

// --- Stores ---

func opSTA(c *Chip) uint8 { return c.A }
func opSTX(c *Chip) uint8 { return c.X }
func opSTY(c *Chip) uint8 { return c.Y }

// --- Transfers ---

func opTAX(c *Chip) { c.X = c.A; c.setNZ(c.X) }
func opTAY(c *Chip) { c.Y = c.A; c.setNZ(c.Y) }
func opTXA(c *Chip) { c.A = c.X; c.setNZ(c.A) }
func opTYA(c *Chip) { c.A = c.Y; c.setNZ(c.A) }
func opTSX(c *Chip) { c.X = c.S; c.setNZ(c.X) }
func opTXS(c *Chip) { c.S = c.X }

// --- Stack ---

func opPHA(c *Chip) { c.pushByte(c.A) }
func opPHP(c *Chip) { c.pushByte(c.Bits() | FlagBreak) }
func opPLA(c *Chip) { c.A = c.pullByte(); c.setNZ(c.A) }
func opPLP(c *Chip) { c.SetBits(c.pullByte()) }

// --- Logic ---

func opAND(c *Chip, v uint8) { c.A &= v; c.setNZ(c.A) }
func opORA(c *Chip, v uint8) { c.A |= v; c.setNZ(c.A) }
func opEOR(c *Chip, v uint8) { c.A ^= v; c.setNZ(c.A) }

func opBIT(c *Chip, v uint8) {
	c.SetFlag(FlagZero, c.A&v == 0)
	c.SetFlag(FlagOverflow, v&FlagOverflow != 0)
	c.SetFlag(FlagNegative, v&FlagNegative != 0)
}

// --- Arithmetic ---

// ADC matches real hardware exactly except decimal mode, which is deliberately
// unimplemented (see Non-goals); D is never consulted, so the result
// is always the binary-mode one computed here.
func (c *Chip) ADC(m uint8) {
	carryIn := uint16(0)
	if c.Flag(FlagCarry) {
		carryIn = 1
	}
	t := uint16(c.A) + uint16(m) + carryIn
	res := uint8(t)
	c.SetFlag(FlagOverflow, (c.A^res)&(m^res)&0x80 != 0)
	c.SetFlag(FlagCarry, t > 0xFF)
	c.A = res
	c.setNZ(c.A)
}

func opADC(c *Chip, v uint8) { c.ADC(v) }

// SBC is defined as ADC against the operand's ones complement, which
// reproduces the documented carry/overflow/result semantics exactly.
func opSBC(c *Chip, v uint8) { c.ADC(v ^ 0xFF) }

func (c *Chip) compare(reg, m uint8) {
	c.SetFlag(FlagCarry, reg >= m)
	c.setNZ(reg - m)
}

func opCMP(c *Chip, v uint8) { c.compare(c.A, v) }
func opCPX(c *Chip, v uint8) { c.compare(c.X, v) }
func opCPY(c *Chip, v uint8) { c.compare(c.Y, v) }

// --- Increment/decrement ---

func opINC(c *Chip, v uint8) uint8 { r := v + 1; c.setNZ(r); return r }
func opDEC(c *Chip, v uint8) uint8 { r := v - 1; c.setNZ(r); return r }
func opINX(c *Chip)                { c.X++; c.setNZ(c.X) }
func opINY(c *Chip)                { c.Y++; c.setNZ(c.Y) }
func opDEX(c *Chip)                { c.X--; c.setNZ(c.X) }
func opDEY(c *Chip)                { c.Y--; c.setNZ(c.Y) }

// --- Shifts and rotates ---

func opASL(c *Chip, v uint8) uint8 {
	c.SetFlag(FlagCarry, v&0x80 != 0)
	r := v << 1
	c.setNZ(r)
	return r
}

func opLSR(c *Chip, v uint8) uint8 {
	c.SetFlag(FlagCarry, v&0x01 != 0)
	r := v >> 1
	c.setNZ(r)
	return r
}

func opROL(c *Chip, v uint8) uint8 {
	carryIn := uint8(0)
	if c.Flag(FlagCarry) {
		carryIn = 1
	}
	c.SetFlag(FlagCarry, v&0x80 != 0)
	r := (v << 1) | carryIn
	c.setNZ(r)
	return r
}

func opROR(c *Chip, v uint8) uint8 {
	carryIn := uint8(0)
	if c.Flag(FlagCarry) {
		carryIn = 0x80
	}
	c.SetFlag(FlagCarry, v&0x01 != 0)
	r := (v >> 1) | carryIn
	c.setNZ(r)
	return r
}

// --- Jumps, subroutines, interrupts ---

func opJMP(c *Chip) {
	addr, _ := c.resolveOperand(ModeABS)
	c.PC = addr
}

func opJMPIndirect(c *Chip) {
	addr, _ := c.resolveOperand(ModeIND)
	c.PC = addr
}

// opJSR fetches the two-byte target, pushes the address of the last
// byte of the JSR instruction (PC-1, after consuming both operand
// bytes), and jumps.
func opJSR(c *Chip) {
	target := c.fetchAbs()
	c.pushWord(c.PC - 1)
	c.PC = target
}

func opRTS(c *Chip) {
	c.PC = c.pullWord() + 1
}

// opBRK pushes PC+1 (skipping the padding byte), pushes P with B and
// U set, disables further IRQs, and vectors through IRQVector.
func opBRK(c *Chip) {
	c.PC++
	c.pushWord(c.PC)
	c.pushByte(c.Bits() | FlagBreak)
	c.SetFlag(FlagInterrupt, true)
	lo := c.bus.Read(IRQVector, false)
	hi := c.bus.Read(IRQVector+1, false)
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// opRTI pulls P (clearing B, forcing U) then pulls PC.
func opRTI(c *Chip) {
	c.SetBits(c.pullByte())
	c.PC = c.pullWord()
}

// --- Branches ---

func branchCC(c *Chip) bool { return !c.Flag(FlagCarry) }
func branchCS(c *Chip) bool { return c.Flag(FlagCarry) }
func branchEQ(c *Chip) bool { return c.Flag(FlagZero) }
func branchNE(c *Chip) bool { return !c.Flag(FlagZero) }
func branchMI(c *Chip) bool { return c.Flag(FlagNegative) }
func branchPL(c *Chip) bool { return !c.Flag(FlagNegative) }
func branchVS(c *Chip) bool { return c.Flag(FlagOverflow) }
func branchVC(c *Chip) bool { return !c.Flag(FlagOverflow) }

// --- Flag-only ---

func opCLC(c *Chip) { c.SetFlag(FlagCarry, false) }
func opSEC(c *Chip) { c.SetFlag(FlagCarry, true) }
func opCLD(c *Chip) { c.SetFlag(FlagDecimal, false) }
func opSED(c *Chip) { c.SetFlag(FlagDecimal, true) }
func opCLI(c *Chip) { c.SetFlag(FlagInterrupt, false) }
func opSEI(c *Chip) { c.SetFlag(FlagInterrupt, true) }
func opCLV(c *Chip) { c.SetFlag(FlagOverflow, false) }

// --- System ---

func opNOP(c *Chip) {}
