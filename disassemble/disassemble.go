// Package disassemble walks a range of the address space and renders
// each instruction as text. It decodes with its own opcode table
// (opcodes.go), a copy of the documented-151 set in the cpu package's
// table, and does not import package cpu.
package disassemble

import (
	"fmt"

	"github.com/hcallahan/nmos6502/memory"
)

// Entry is one disassembled instruction.
type Entry struct {
	Addr   uint16
	Text   string
	Length int // bytes consumed, including the opcode byte
}

// Listing is an ordered map (addr -> rendered instruction): a plain
// address-ordered slice, since Go has no ordered-map container and a
// walked range only ever needs a forward/backward linear or binary
// scan from PC.
type Listing []Entry

// At returns the entry starting at addr and whether one was found.
func (l Listing) At(addr uint16) (Entry, bool) {
	for _, e := range l {
		if e.Addr == addr {
			return e, true
		}
	}
	return Entry{}, false
}

// Range walks linearly from lo to hi inclusive, decoding one
// instruction per position. An illegal opcode decodes as mnemonic
// "???" and consumes exactly one byte, so the walk always makes
// forward progress regardless of what garbage it lands on. Bus reads
// are always read-only, so peeking a side-effecting bus is safe.
func Range(lo, hi uint16, bus memory.Bus) Listing {
	var out Listing
	addr := lo
	for {
		e := step(addr, bus)
		out = append(out, e)
		next := addr + uint16(e.Length)
		if next > hi || next <= addr {
			break
		}
		addr = next
	}
	return out
}

// step decodes the single instruction at addr.
func step(addr uint16, bus memory.Bus) Entry {
	op := bus.Read(addr, true)
	info, ok := opcodeInfo[op]
	if !ok {
		return Entry{Addr: addr, Text: fmt.Sprintf("$%04X: ??? {ILLEGAL}", addr), Length: 1}
	}

	operandBytes := modeOperandBytes(info.mode)
	var b1, b2 uint8
	if operandBytes >= 1 {
		b1 = bus.Read(addr+1, true)
	}
	if operandBytes >= 2 {
		b2 = bus.Read(addr+2, true)
	}

	operand := formatOperand(info.mode, addr, b1, b2)
	text := fmt.Sprintf("$%04X: %s %s {%s}", addr, info.name, operand, modeTag(info.mode))
	return Entry{Addr: addr, Text: text, Length: 1 + operandBytes}
}

// formatOperand renders the operand per the addressing mode's
// conventional assembler syntax. REL renders the absolute branch
// target rather than the raw signed offset.
func formatOperand(mode addrMode, addr uint16, b1, b2 uint8) string {
	word := func() uint16 { return uint16(b2)<<8 | uint16(b1) }
	switch mode {
	case modeIMP:
		return ""
	case modeIMM:
		return fmt.Sprintf("#$%02X", b1)
	case modeZPG:
		return fmt.Sprintf("$%02X", b1)
	case modeZPX:
		return fmt.Sprintf("$%02X,X", b1)
	case modeZPY:
		return fmt.Sprintf("$%02X,Y", b1)
	case modeABS:
		return fmt.Sprintf("$%04X", word())
	case modeABX:
		return fmt.Sprintf("$%04X,X", word())
	case modeABY:
		return fmt.Sprintf("$%04X,Y", word())
	case modeIND:
		return fmt.Sprintf("($%04X)", word())
	case modeIDX:
		return fmt.Sprintf("($%02X,X)", b1)
	case modeIDY:
		return fmt.Sprintf("($%02X),Y", b1)
	case modeREL:
		target := uint16(int32(addr+2) + int32(int8(b1)))
		return fmt.Sprintf("$%04X", target)
	}
	return ""
}

func modeTag(mode addrMode) string {
	switch mode {
	case modeIMP:
		return "IMP"
	case modeIMM:
		return "IMM"
	case modeZPG:
		return "ZPG"
	case modeZPX:
		return "ZPX"
	case modeZPY:
		return "ZPY"
	case modeABS:
		return "ABS"
	case modeABX:
		return "ABX"
	case modeABY:
		return "ABY"
	case modeIND:
		return "IND"
	case modeIDX:
		return "IDX"
	case modeIDY:
		return "IDY"
	case modeREL:
		return "REL"
	}
	return "?"
}

func modeOperandBytes(mode addrMode) int {
	switch mode {
	case modeIMP:
		return 0
	case modeABS, modeABX, modeABY, modeIND:
		return 2
	default:
		return 1
	}
}
