package cpu

// Kind classifies an opcode table entry by instruction shape, which
// determines how Step dispatches it.
type Kind int

const (
	KindLoad    Kind = iota // reads an operand, never writes memory
	KindStore               // writes a register to the resolved address
	KindRMW                 // reads, transforms, writes back
	KindBranch              // conditional relative jump
	KindOther               // transfers, stack ops, flags, jumps, system
	KindIllegal             // undocumented/reserved opcode; fatal trap
)

// Entry is one row of the 256-entry opcode table. Only the
// function field matching Kind is populated; the rest are nil.
type Entry struct {
	Name   string
	Mode   AddrMode
	Kind   Kind
	Cycles int
	Load   LoadFunc
	Store  StoreFunc
	RMW    RMWFunc
	Branch BranchFunc
	Other  OtherFunc
}

var illegalEntry = Entry{Name: "???", Kind: KindIllegal}

// opcodeTable is the full 256-entry decode table. Slots not
// explicitly assigned below default to illegalEntry via the init
// below, trapping every opcode outside the 151 documented ones.
var opcodeTable [256]Entry

func init() {
	for i := range opcodeTable {
		opcodeTable[i] = illegalEntry
	}

	load := func(op uint8, name string, mode AddrMode, cycles int, fn LoadFunc) {
		opcodeTable[op] = Entry{Name: name, Mode: mode, Kind: KindLoad, Cycles: cycles, Load: fn}
	}
	store := func(op uint8, name string, mode AddrMode, cycles int, fn StoreFunc) {
		opcodeTable[op] = Entry{Name: name, Mode: mode, Kind: KindStore, Cycles: cycles, Store: fn}
	}
	rmw := func(op uint8, name string, mode AddrMode, cycles int, fn RMWFunc) {
		opcodeTable[op] = Entry{Name: name, Mode: mode, Kind: KindRMW, Cycles: cycles, RMW: fn}
	}
	branch := func(op uint8, name string, cycles int, fn BranchFunc) {
		opcodeTable[op] = Entry{Name: name, Mode: ModeREL, Kind: KindBranch, Cycles: cycles, Branch: fn}
	}
	other := func(op uint8, name string, mode AddrMode, cycles int, fn OtherFunc) {
		opcodeTable[op] = Entry{Name: name, Mode: mode, Kind: KindOther, Cycles: cycles, Other: fn}
	}

	// LDA
	load(0xA9, "LDA", ModeIMM, 2, opLDA)
	load(0xA5, "LDA", ModeZPG, 3, opLDA)
	load(0xB5, "LDA", ModeZPX, 4, opLDA)
	load(0xAD, "LDA", ModeABS, 4, opLDA)
	load(0xBD, "LDA", ModeABX, 4, opLDA)
	load(0xB9, "LDA", ModeABY, 4, opLDA)
	load(0xA1, "LDA", ModeIDX, 6, opLDA)
	load(0xB1, "LDA", ModeIDY, 5, opLDA)

	// LDX
	load(0xA2, "LDX", ModeIMM, 2, opLDX)
	load(0xA6, "LDX", ModeZPG, 3, opLDX)
	load(0xB6, "LDX", ModeZPY, 4, opLDX)
	load(0xAE, "LDX", ModeABS, 4, opLDX)
	load(0xBE, "LDX", ModeABY, 4, opLDX)

	// LDY
	load(0xA0, "LDY", ModeIMM, 2, opLDY)
	load(0xA4, "LDY", ModeZPG, 3, opLDY)
	load(0xB4, "LDY", ModeZPX, 4, opLDY)
	load(0xAC, "LDY", ModeABS, 4, opLDY)
	load(0xBC, "LDY", ModeABX, 4, opLDY)

	// STA
	store(0x85, "STA", ModeZPG, 3, opSTA)
	store(0x95, "STA", ModeZPX, 4, opSTA)
	store(0x8D, "STA", ModeABS, 4, opSTA)
	store(0x9D, "STA", ModeABX, 5, opSTA)
	store(0x99, "STA", ModeABY, 5, opSTA)
	store(0x81, "STA", ModeIDX, 6, opSTA)
	store(0x91, "STA", ModeIDY, 6, opSTA)

	// STX / STY
	store(0x86, "STX", ModeZPG, 3, opSTX)
	store(0x96, "STX", ModeZPY, 4, opSTX)
	store(0x8E, "STX", ModeABS, 4, opSTX)
	store(0x84, "STY", ModeZPG, 3, opSTY)
	store(0x94, "STY", ModeZPX, 4, opSTY)
	store(0x8C, "STY", ModeABS, 4, opSTY)

	// Transfers
	other(0xAA, "TAX", ModeIMP, 2, opTAX)
	other(0xA8, "TAY", ModeIMP, 2, opTAY)
	other(0x8A, "TXA", ModeIMP, 2, opTXA)
	other(0x98, "TYA", ModeIMP, 2, opTYA)
	other(0xBA, "TSX", ModeIMP, 2, opTSX)
	other(0x9A, "TXS", ModeIMP, 2, opTXS)

	// Stack
	other(0x48, "PHA", ModeIMP, 3, opPHA)
	other(0x08, "PHP", ModeIMP, 3, opPHP)
	other(0x68, "PLA", ModeIMP, 4, opPLA)
	other(0x28, "PLP", ModeIMP, 4, opPLP)

	// AND
	load(0x29, "AND", ModeIMM, 2, opAND)
	load(0x25, "AND", ModeZPG, 3, opAND)
	load(0x35, "AND", ModeZPX, 4, opAND)
	load(0x2D, "AND", ModeABS, 4, opAND)
	load(0x3D, "AND", ModeABX, 4, opAND)
	load(0x39, "AND", ModeABY, 4, opAND)
	load(0x21, "AND", ModeIDX, 6, opAND)
	load(0x31, "AND", ModeIDY, 5, opAND)

	// ORA
	load(0x09, "ORA", ModeIMM, 2, opORA)
	load(0x05, "ORA", ModeZPG, 3, opORA)
	load(0x15, "ORA", ModeZPX, 4, opORA)
	load(0x0D, "ORA", ModeABS, 4, opORA)
	load(0x1D, "ORA", ModeABX, 4, opORA)
	load(0x19, "ORA", ModeABY, 4, opORA)
	load(0x01, "ORA", ModeIDX, 6, opORA)
	load(0x11, "ORA", ModeIDY, 5, opORA)

	// EOR
	load(0x49, "EOR", ModeIMM, 2, opEOR)
	load(0x45, "EOR", ModeZPG, 3, opEOR)
	load(0x55, "EOR", ModeZPX, 4, opEOR)
	load(0x4D, "EOR", ModeABS, 4, opEOR)
	load(0x5D, "EOR", ModeABX, 4, opEOR)
	load(0x59, "EOR", ModeABY, 4, opEOR)
	load(0x41, "EOR", ModeIDX, 6, opEOR)
	load(0x51, "EOR", ModeIDY, 5, opEOR)

	// BIT
	load(0x24, "BIT", ModeZPG, 3, opBIT)
	load(0x2C, "BIT", ModeABS, 4, opBIT)

	// ADC
	load(0x69, "ADC", ModeIMM, 2, opADC)
	load(0x65, "ADC", ModeZPG, 3, opADC)
	load(0x75, "ADC", ModeZPX, 4, opADC)
	load(0x6D, "ADC", ModeABS, 4, opADC)
	load(0x7D, "ADC", ModeABX, 4, opADC)
	load(0x79, "ADC", ModeABY, 4, opADC)
	load(0x61, "ADC", ModeIDX, 6, opADC)
	load(0x71, "ADC", ModeIDY, 5, opADC)

	// SBC
	load(0xE9, "SBC", ModeIMM, 2, opSBC)
	load(0xE5, "SBC", ModeZPG, 3, opSBC)
	load(0xF5, "SBC", ModeZPX, 4, opSBC)
	load(0xED, "SBC", ModeABS, 4, opSBC)
	load(0xFD, "SBC", ModeABX, 4, opSBC)
	load(0xF9, "SBC", ModeABY, 4, opSBC)
	load(0xE1, "SBC", ModeIDX, 6, opSBC)
	load(0xF1, "SBC", ModeIDY, 5, opSBC)

	// CMP
	load(0xC9, "CMP", ModeIMM, 2, opCMP)
	load(0xC5, "CMP", ModeZPG, 3, opCMP)
	load(0xD5, "CMP", ModeZPX, 4, opCMP)
	load(0xCD, "CMP", ModeABS, 4, opCMP)
	load(0xDD, "CMP", ModeABX, 4, opCMP)
	load(0xD9, "CMP", ModeABY, 4, opCMP)
	load(0xC1, "CMP", ModeIDX, 6, opCMP)
	load(0xD1, "CMP", ModeIDY, 5, opCMP)

	// CPX / CPY
	load(0xE0, "CPX", ModeIMM, 2, opCPX)
	load(0xE4, "CPX", ModeZPG, 3, opCPX)
	load(0xEC, "CPX", ModeABS, 4, opCPX)
	load(0xC0, "CPY", ModeIMM, 2, opCPY)
	load(0xC4, "CPY", ModeZPG, 3, opCPY)
	load(0xCC, "CPY", ModeABS, 4, opCPY)

	// INC / DEC (memory)
	rmw(0xE6, "INC", ModeZPG, 5, opINC)
	rmw(0xF6, "INC", ModeZPX, 6, opINC)
	rmw(0xEE, "INC", ModeABS, 6, opINC)
	rmw(0xFE, "INC", ModeABX, 7, opINC)
	rmw(0xC6, "DEC", ModeZPG, 5, opDEC)
	rmw(0xD6, "DEC", ModeZPX, 6, opDEC)
	rmw(0xCE, "DEC", ModeABS, 6, opDEC)
	rmw(0xDE, "DEC", ModeABX, 7, opDEC)

	// INX / INY / DEX / DEY (register)
	other(0xE8, "INX", ModeIMP, 2, opINX)
	other(0xC8, "INY", ModeIMP, 2, opINY)
	other(0xCA, "DEX", ModeIMP, 2, opDEX)
	other(0x88, "DEY", ModeIMP, 2, opDEY)

	// ASL / LSR / ROL / ROR
	rmw(0x0A, "ASL", ModeIMP, 2, opASL)
	rmw(0x06, "ASL", ModeZPG, 5, opASL)
	rmw(0x16, "ASL", ModeZPX, 6, opASL)
	rmw(0x0E, "ASL", ModeABS, 6, opASL)
	rmw(0x1E, "ASL", ModeABX, 7, opASL)

	rmw(0x4A, "LSR", ModeIMP, 2, opLSR)
	rmw(0x46, "LSR", ModeZPG, 5, opLSR)
	rmw(0x56, "LSR", ModeZPX, 6, opLSR)
	rmw(0x4E, "LSR", ModeABS, 6, opLSR)
	rmw(0x5E, "LSR", ModeABX, 7, opLSR)

	rmw(0x2A, "ROL", ModeIMP, 2, opROL)
	rmw(0x26, "ROL", ModeZPG, 5, opROL)
	rmw(0x36, "ROL", ModeZPX, 6, opROL)
	rmw(0x2E, "ROL", ModeABS, 6, opROL)
	rmw(0x3E, "ROL", ModeABX, 7, opROL)

	rmw(0x6A, "ROR", ModeIMP, 2, opROR)
	rmw(0x66, "ROR", ModeZPG, 5, opROR)
	rmw(0x76, "ROR", ModeZPX, 6, opROR)
	rmw(0x6E, "ROR", ModeABS, 6, opROR)
	rmw(0x7E, "ROR", ModeABX, 7, opROR)

	// Jumps / subroutines / interrupts
	other(0x4C, "JMP", ModeABS, 3, opJMP)
	other(0x6C, "JMP", ModeIND, 5, opJMPIndirect)
	other(0x20, "JSR", ModeABS, 6, opJSR)
	other(0x60, "RTS", ModeIMP, 6, opRTS)
	other(0x00, "BRK", ModeIMP, 7, opBRK)
	other(0x40, "RTI", ModeIMP, 6, opRTI)

	// Branches
	branch(0x90, "BCC", 2, branchCC)
	branch(0xB0, "BCS", 2, branchCS)
	branch(0xF0, "BEQ", 2, branchEQ)
	branch(0x30, "BMI", 2, branchMI)
	branch(0xD0, "BNE", 2, branchNE)
	branch(0x10, "BPL", 2, branchPL)
	branch(0x50, "BVC", 2, branchVC)
	branch(0x70, "BVS", 2, branchVS)

	// Flag-only
	other(0x18, "CLC", ModeIMP, 2, opCLC)
	other(0x38, "SEC", ModeIMP, 2, opSEC)
	other(0xD8, "CLD", ModeIMP, 2, opCLD)
	other(0xF8, "SED", ModeIMP, 2, opSED)
	other(0x58, "CLI", ModeIMP, 2, opCLI)
	other(0x78, "SEI", ModeIMP, 2, opSEI)
	other(0xB8, "CLV", ModeIMP, 2, opCLV)

	// NOP
	other(0xEA, "NOP", ModeIMP, 2, opNOP)
}
