package cpu

// AddrMode identifies one of the 13 6502 addressing modes. Each
// resolves to either an implied operand (the accumulator, for IMP) or
// a 16-bit effective address, plus a page-cross signal used by the
// three indexed read-path modes.
type AddrMode int

const (
	ModeIMP AddrMode = iota // implied / accumulator
	ModeIMM                 // #i
	ModeZPG                 // d
	ModeZPX                 // d,x
	ModeZPY                 // d,y
	ModeABS                 // a
	ModeABX                 // a,x
	ModeABY                 // a,y
	ModeIND                 // (a) -- JMP only
	ModeIDX                 // (d,x)
	ModeIDY                 // (d),y
	ModeREL                 // *+r -- branches only, resolved in runBranch
)

// resolveOperand consumes whatever operand bytes the mode requires
// from PC (advancing it) and returns the effective address together
// with whether indexing crossed a page boundary. IMM's "address" is
// simply the location of the immediate byte. IMP returns a zero
// address; callers must special-case it (the operand is the
// accumulator, not memory).
func (c *Chip) resolveOperand(mode AddrMode) (addr uint16, crossed bool) {
	switch mode {
	case ModeIMP:
		return 0, false

	case ModeIMM:
		addr = c.PC
		c.PC++
		return addr, false

	case ModeZPG:
		b := c.bus.Read(c.PC, false)
		c.PC++
		return uint16(b), false

	case ModeZPX:
		b := c.bus.Read(c.PC, false)
		c.PC++
		return uint16(uint8(b + c.X)), false

	case ModeZPY:
		b := c.bus.Read(c.PC, false)
		c.PC++
		return uint16(uint8(b + c.Y)), false

	case ModeABS:
		return c.fetchAbs(), false

	case ModeABX:
		base := c.fetchAbs()
		addr = base + uint16(c.X)
		return addr, (base & 0xFF00) != (addr & 0xFF00)

	case ModeABY:
		base := c.fetchAbs()
		addr = base + uint16(c.Y)
		return addr, (base & 0xFF00) != (addr & 0xFF00)

	case ModeIND:
		ptr := c.fetchAbs()
		// JMP (ind) page-wrap bug: the high byte is fetched from
		// (ptr & 0xFF00) | ((ptr+1) & 0xFF), never crossing into the
		// next page.
		lo := c.bus.Read(ptr, false)
		hi := c.bus.Read((ptr&0xFF00)|((ptr+1)&0xFF), false)
		return uint16(hi)<<8 | uint16(lo), false

	case ModeIDX:
		zp := c.bus.Read(c.PC, false)
		c.PC++
		eff := uint8(zp + c.X)
		lo := c.bus.Read(uint16(eff), false)
		hi := c.bus.Read(uint16(uint8(eff+1)), false)
		return uint16(hi)<<8 | uint16(lo), false

	case ModeIDY:
		zp := c.bus.Read(c.PC, false)
		c.PC++
		lo := c.bus.Read(uint16(zp), false)
		hi := c.bus.Read(uint16(uint8(zp+1)), false)
		base := uint16(hi)<<8 | uint16(lo)
		addr = base + uint16(c.Y)
		return addr, (base & 0xFF00) != (addr & 0xFF00)
	}
	return 0, false
}

// fetchAbs reads a little-endian 16-bit address at PC and advances
// PC past both bytes.
func (c *Chip) fetchAbs() uint16 {
	lo := c.bus.Read(c.PC, false)
	c.PC++
	hi := c.bus.Read(c.PC, false)
	c.PC++
	return uint16(hi)<<8 | uint16(lo)
}

// fetchOperand returns the byte an operation should act on: the
// accumulator for IMP, otherwise whatever resolveOperand computed addr
// to be.
func (c *Chip) fetchOperand(mode AddrMode, addr uint16) uint8 {
	if mode == ModeIMP {
		return c.A
	}
	return c.bus.Read(addr, false)
}
