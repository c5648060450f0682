package disassemble

// addrMode mirrors cpu.AddrMode's 12 values; kept as an unexported
// type here so the disassembler has no compile-time dependency on
// cpu's internals, only on the memory.Bus both packages consume.
type addrMode int

const (
	modeIMP addrMode = iota
	modeIMM
	modeZPG
	modeZPX
	modeZPY
	modeABS
	modeABX
	modeABY
	modeIND
	modeIDX
	modeIDY
	modeREL
)

type opInfo struct {
	name string
	mode addrMode
}

// opcodeInfo lists the 151 documented opcodes this core executes,
// mirroring cpu/opcodes.go's table. Anything absent here is an
// illegal/reserved opcode.
var opcodeInfo = map[uint8]opInfo{
	0xA9: {"LDA", modeIMM}, 0xA5: {"LDA", modeZPG}, 0xB5: {"LDA", modeZPX},
	0xAD: {"LDA", modeABS}, 0xBD: {"LDA", modeABX}, 0xB9: {"LDA", modeABY},
	0xA1: {"LDA", modeIDX}, 0xB1: {"LDA", modeIDY},

	0xA2: {"LDX", modeIMM}, 0xA6: {"LDX", modeZPG}, 0xB6: {"LDX", modeZPY},
	0xAE: {"LDX", modeABS}, 0xBE: {"LDX", modeABY},

	0xA0: {"LDY", modeIMM}, 0xA4: {"LDY", modeZPG}, 0xB4: {"LDY", modeZPX},
	0xAC: {"LDY", modeABS}, 0xBC: {"LDY", modeABX},

	0x85: {"STA", modeZPG}, 0x95: {"STA", modeZPX}, 0x8D: {"STA", modeABS},
	0x9D: {"STA", modeABX}, 0x99: {"STA", modeABY}, 0x81: {"STA", modeIDX},
	0x91: {"STA", modeIDY},

	0x86: {"STX", modeZPG}, 0x96: {"STX", modeZPY}, 0x8E: {"STX", modeABS},
	0x84: {"STY", modeZPG}, 0x94: {"STY", modeZPX}, 0x8C: {"STY", modeABS},

	0xAA: {"TAX", modeIMP}, 0xA8: {"TAY", modeIMP}, 0x8A: {"TXA", modeIMP},
	0x98: {"TYA", modeIMP}, 0xBA: {"TSX", modeIMP}, 0x9A: {"TXS", modeIMP},

	0x48: {"PHA", modeIMP}, 0x08: {"PHP", modeIMP}, 0x68: {"PLA", modeIMP},
	0x28: {"PLP", modeIMP},

	0x29: {"AND", modeIMM}, 0x25: {"AND", modeZPG}, 0x35: {"AND", modeZPX},
	0x2D: {"AND", modeABS}, 0x3D: {"AND", modeABX}, 0x39: {"AND", modeABY},
	0x21: {"AND", modeIDX}, 0x31: {"AND", modeIDY},

	0x09: {"ORA", modeIMM}, 0x05: {"ORA", modeZPG}, 0x15: {"ORA", modeZPX},
	0x0D: {"ORA", modeABS}, 0x1D: {"ORA", modeABX}, 0x19: {"ORA", modeABY},
	0x01: {"ORA", modeIDX}, 0x11: {"ORA", modeIDY},

	0x49: {"EOR", modeIMM}, 0x45: {"EOR", modeZPG}, 0x55: {"EOR", modeZPX},
	0x4D: {"EOR", modeABS}, 0x5D: {"EOR", modeABX}, 0x59: {"EOR", modeABY},
	0x41: {"EOR", modeIDX}, 0x51: {"EOR", modeIDY},

	0x24: {"BIT", modeZPG}, 0x2C: {"BIT", modeABS},

	0x69: {"ADC", modeIMM}, 0x65: {"ADC", modeZPG}, 0x75: {"ADC", modeZPX},
	0x6D: {"ADC", modeABS}, 0x7D: {"ADC", modeABX}, 0x79: {"ADC", modeABY},
	0x61: {"ADC", modeIDX}, 0x71: {"ADC", modeIDY},

	0xE9: {"SBC", modeIMM}, 0xE5: {"SBC", modeZPG}, 0xF5: {"SBC", modeZPX},
	0xED: {"SBC", modeABS}, 0xFD: {"SBC", modeABX}, 0xF9: {"SBC", modeABY},
	0xE1: {"SBC", modeIDX}, 0xF1: {"SBC", modeIDY},

	0xC9: {"CMP", modeIMM}, 0xC5: {"CMP", modeZPG}, 0xD5: {"CMP", modeZPX},
	0xCD: {"CMP", modeABS}, 0xDD: {"CMP", modeABX}, 0xD9: {"CMP", modeABY},
	0xC1: {"CMP", modeIDX}, 0xD1: {"CMP", modeIDY},

	0xE0: {"CPX", modeIMM}, 0xE4: {"CPX", modeZPG}, 0xEC: {"CPX", modeABS},
	0xC0: {"CPY", modeIMM}, 0xC4: {"CPY", modeZPG}, 0xCC: {"CPY", modeABS},

	0xE6: {"INC", modeZPG}, 0xF6: {"INC", modeZPX}, 0xEE: {"INC", modeABS}, 0xFE: {"INC", modeABX},
	0xC6: {"DEC", modeZPG}, 0xD6: {"DEC", modeZPX}, 0xCE: {"DEC", modeABS}, 0xDE: {"DEC", modeABX},

	0xE8: {"INX", modeIMP}, 0xC8: {"INY", modeIMP}, 0xCA: {"DEX", modeIMP}, 0x88: {"DEY", modeIMP},

	0x0A: {"ASL", modeIMP}, 0x06: {"ASL", modeZPG}, 0x16: {"ASL", modeZPX},
	0x0E: {"ASL", modeABS}, 0x1E: {"ASL", modeABX},

	0x4A: {"LSR", modeIMP}, 0x46: {"LSR", modeZPG}, 0x56: {"LSR", modeZPX},
	0x4E: {"LSR", modeABS}, 0x5E: {"LSR", modeABX},

	0x2A: {"ROL", modeIMP}, 0x26: {"ROL", modeZPG}, 0x36: {"ROL", modeZPX},
	0x2E: {"ROL", modeABS}, 0x3E: {"ROL", modeABX},

	0x6A: {"ROR", modeIMP}, 0x66: {"ROR", modeZPG}, 0x76: {"ROR", modeZPX},
	0x6E: {"ROR", modeABS}, 0x7E: {"ROR", modeABX},

	0x4C: {"JMP", modeABS}, 0x6C: {"JMP", modeIND},
	0x20: {"JSR", modeABS}, 0x60: {"RTS", modeIMP},
	0x00: {"BRK", modeIMP}, 0x40: {"RTI", modeIMP},

	0x90: {"BCC", modeREL}, 0xB0: {"BCS", modeREL}, 0xF0: {"BEQ", modeREL},
	0x30: {"BMI", modeREL}, 0xD0: {"BNE", modeREL}, 0x10: {"BPL", modeREL},
	0x50: {"BVC", modeREL}, 0x70: {"BVS", modeREL},

	0x18: {"CLC", modeIMP}, 0x38: {"SEC", modeIMP}, 0xD8: {"CLD", modeIMP},
	0xF8: {"SED", modeIMP}, 0x58: {"CLI", modeIMP}, 0x78: {"SEI", modeIMP},
	0xB8: {"CLV", modeIMP},

	0xEA: {"NOP", modeIMP},
}
