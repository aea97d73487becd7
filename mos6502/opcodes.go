package mos6502

import "fmt"

// 6502 Addressing Modes
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
const (
	IMPLICIT = iota
	ACCUMULATOR
	IMMEDIATE
	ZERO_PAGE
	ZERO_PAGE_X
	ZERO_PAGE_Y
	RELATIVE
	ABSOLUTE
	ABSOLUTE_X
	ABSOLUTE_Y
	INDIRECT
	INDIRECT_X // Indexed Indirect
	INDIRECT_Y // Indirect Indexed
)

var modenames = map[uint8]string{
	IMPLICIT: "IMPLICIT", ACCUMULATOR: "ACCUMULATOR", IMMEDIATE: "IMMEDIATE",
	ZERO_PAGE: "ZERO_PAGE", ZERO_PAGE_X: "ZERO_PAGE_X", ZERO_PAGE_Y: "ZERO_PAGE_Y",
	RELATIVE: "RELATIVE", ABSOLUTE: "ABSOLUTE", ABSOLUTE_X: "ABSOLUTE_X", ABSOLUTE_Y: "ABSOLUTE_Y",
	INDIRECT: "INDIRECT", INDIRECT_X: "INDIRECT_X", INDIRECT_Y: "INDIRECT_Y",
}

// opcode is one entry of the dispatch table: the decoded byte count,
// base cycle cost, addressing mode and the handler that implements
// it. The table is a flat 256-entry array rather than a dispatch-by-
// reflection map; every byte value either has an entry with a
// non-nil fn or is an illegal opcode.
type opcode struct {
	name   string
	mode   uint8
	bytes  uint8
	cycles uint8
	fn     func(*CPU, uint8)
}

func (o opcode) String() string {
	return fmt.Sprintf("{%s, %s}", o.name, modenames[o.mode])
}

// opcodeTable is indexed directly by the fetched instruction byte.
// Only the documented 6502 instruction set is populated; undocumented
// opcodes decode as UnknownOpcode.
var opcodeTable = [256]opcode{
	0x69: {"ADC", IMMEDIATE, 2, 2, (*CPU).ADC},
	0x65: {"ADC", ZERO_PAGE, 2, 3, (*CPU).ADC},
	0x75: {"ADC", ZERO_PAGE_X, 2, 4, (*CPU).ADC},
	0x6D: {"ADC", ABSOLUTE, 3, 4, (*CPU).ADC},
	0x7D: {"ADC", ABSOLUTE_X, 3, 4, (*CPU).ADC}, // +1 if page crossed
	0x79: {"ADC", ABSOLUTE_Y, 3, 4, (*CPU).ADC}, // +1 if page crossed
	0x61: {"ADC", INDIRECT_X, 2, 6, (*CPU).ADC},
	0x71: {"ADC", INDIRECT_Y, 2, 5, (*CPU).ADC}, // +1 if page crossed

	0x29: {"AND", IMMEDIATE, 2, 2, (*CPU).AND},
	0x25: {"AND", ZERO_PAGE, 2, 3, (*CPU).AND},
	0x35: {"AND", ZERO_PAGE_X, 2, 4, (*CPU).AND},
	0x2D: {"AND", ABSOLUTE, 3, 4, (*CPU).AND},
	0x3D: {"AND", ABSOLUTE_X, 3, 4, (*CPU).AND}, // +1 if page crossed
	0x39: {"AND", ABSOLUTE_Y, 3, 4, (*CPU).AND}, // +1 if page crossed
	0x21: {"AND", INDIRECT_X, 2, 6, (*CPU).AND},
	0x31: {"AND", INDIRECT_Y, 2, 5, (*CPU).AND}, // +1 if page crossed

	0x0A: {"ASL", ACCUMULATOR, 1, 2, (*CPU).ASL},
	0x06: {"ASL", ZERO_PAGE, 2, 5, (*CPU).ASL},
	0x16: {"ASL", ZERO_PAGE_X, 2, 6, (*CPU).ASL},
	0x0E: {"ASL", ABSOLUTE, 3, 6, (*CPU).ASL},
	0x1E: {"ASL", ABSOLUTE_X, 3, 7, (*CPU).ASL},

	0x90: {"BCC", RELATIVE, 2, 2, (*CPU).BCC}, // +1 taken, +2 new page
	0xB0: {"BCS", RELATIVE, 2, 2, (*CPU).BCS},
	0xF0: {"BEQ", RELATIVE, 2, 2, (*CPU).BEQ},
	0x24: {"BIT", ZERO_PAGE, 2, 3, (*CPU).BIT},
	0x2C: {"BIT", ABSOLUTE, 3, 4, (*CPU).BIT},
	0x30: {"BMI", RELATIVE, 2, 2, (*CPU).BMI},
	0xD0: {"BNE", RELATIVE, 2, 2, (*CPU).BNE},
	0x10: {"BPL", RELATIVE, 2, 2, (*CPU).BPL},
	0x00: {"BRK", IMPLICIT, 2, 7, (*CPU).BRK},
	0x50: {"BVC", RELATIVE, 2, 2, (*CPU).BVC},
	0x70: {"BVS", RELATIVE, 2, 2, (*CPU).BVS},

	0x18: {"CLC", IMPLICIT, 1, 2, (*CPU).CLC},
	0xD8: {"CLD", IMPLICIT, 1, 2, (*CPU).CLD},
	0x58: {"CLI", IMPLICIT, 1, 2, (*CPU).CLI},
	0xB8: {"CLV", IMPLICIT, 1, 2, (*CPU).CLV},

	0xC9: {"CMP", IMMEDIATE, 2, 2, (*CPU).CMP},
	0xC5: {"CMP", ZERO_PAGE, 2, 3, (*CPU).CMP},
	0xD5: {"CMP", ZERO_PAGE_X, 2, 4, (*CPU).CMP},
	0xCD: {"CMP", ABSOLUTE, 3, 4, (*CPU).CMP},
	0xDD: {"CMP", ABSOLUTE_X, 3, 4, (*CPU).CMP}, // +1 if page crossed
	0xD9: {"CMP", ABSOLUTE_Y, 3, 4, (*CPU).CMP}, // +1 if page crossed
	0xC1: {"CMP", INDIRECT_X, 2, 6, (*CPU).CMP},
	0xD1: {"CMP", INDIRECT_Y, 2, 5, (*CPU).CMP}, // +1 if page crossed

	0xE0: {"CPX", IMMEDIATE, 2, 2, (*CPU).CPX},
	0xE4: {"CPX", ZERO_PAGE, 2, 3, (*CPU).CPX},
	0xEC: {"CPX", ABSOLUTE, 3, 4, (*CPU).CPX},

	0xC0: {"CPY", IMMEDIATE, 2, 2, (*CPU).CPY},
	0xC4: {"CPY", ZERO_PAGE, 2, 3, (*CPU).CPY},
	0xCC: {"CPY", ABSOLUTE, 3, 4, (*CPU).CPY},

	0xC6: {"DEC", ZERO_PAGE, 2, 5, (*CPU).DEC},
	0xD6: {"DEC", ZERO_PAGE_X, 2, 6, (*CPU).DEC},
	0xCE: {"DEC", ABSOLUTE, 3, 6, (*CPU).DEC},
	0xDE: {"DEC", ABSOLUTE_X, 3, 7, (*CPU).DEC},
	0xCA: {"DEX", IMPLICIT, 1, 2, (*CPU).DEX},
	0x88: {"DEY", IMPLICIT, 1, 2, (*CPU).DEY},

	0x49: {"EOR", IMMEDIATE, 2, 2, (*CPU).EOR},
	0x45: {"EOR", ZERO_PAGE, 2, 3, (*CPU).EOR},
	0x55: {"EOR", ZERO_PAGE_X, 2, 4, (*CPU).EOR},
	0x4D: {"EOR", ABSOLUTE, 3, 4, (*CPU).EOR},
	0x5D: {"EOR", ABSOLUTE_X, 3, 4, (*CPU).EOR}, // +1 if page crossed
	0x59: {"EOR", ABSOLUTE_Y, 3, 4, (*CPU).EOR}, // +1 if page crossed
	0x41: {"EOR", INDIRECT_X, 2, 6, (*CPU).EOR},
	0x51: {"EOR", INDIRECT_Y, 2, 5, (*CPU).EOR}, // +1 if page crossed

	0xE6: {"INC", ZERO_PAGE, 2, 5, (*CPU).INC},
	0xF6: {"INC", ZERO_PAGE_X, 2, 6, (*CPU).INC},
	0xEE: {"INC", ABSOLUTE, 3, 6, (*CPU).INC},
	0xFE: {"INC", ABSOLUTE_X, 3, 7, (*CPU).INC},
	0xE8: {"INX", IMPLICIT, 1, 2, (*CPU).INX},
	0xC8: {"INY", IMPLICIT, 1, 2, (*CPU).INY},

	0x4C: {"JMP", ABSOLUTE, 3, 3, (*CPU).JMP},
	0x6C: {"JMP", INDIRECT, 3, 5, (*CPU).JMP},
	0x20: {"JSR", ABSOLUTE, 3, 6, (*CPU).JSR},

	0xA9: {"LDA", IMMEDIATE, 2, 2, (*CPU).LDA},
	0xA5: {"LDA", ZERO_PAGE, 2, 3, (*CPU).LDA},
	0xB5: {"LDA", ZERO_PAGE_X, 2, 4, (*CPU).LDA},
	0xAD: {"LDA", ABSOLUTE, 3, 4, (*CPU).LDA},
	0xBD: {"LDA", ABSOLUTE_X, 3, 4, (*CPU).LDA}, // +1 if page crossed
	0xB9: {"LDA", ABSOLUTE_Y, 3, 4, (*CPU).LDA}, // +1 if page crossed
	0xA1: {"LDA", INDIRECT_X, 2, 6, (*CPU).LDA},
	0xB1: {"LDA", INDIRECT_Y, 2, 5, (*CPU).LDA}, // +1 if page crossed

	0xA2: {"LDX", IMMEDIATE, 2, 2, (*CPU).LDX},
	0xA6: {"LDX", ZERO_PAGE, 2, 3, (*CPU).LDX},
	0xB6: {"LDX", ZERO_PAGE_Y, 2, 4, (*CPU).LDX},
	0xAE: {"LDX", ABSOLUTE, 3, 4, (*CPU).LDX},
	0xBE: {"LDX", ABSOLUTE_Y, 3, 4, (*CPU).LDX}, // +1 if page crossed

	0xA0: {"LDY", IMMEDIATE, 2, 2, (*CPU).LDY},
	0xA4: {"LDY", ZERO_PAGE, 2, 3, (*CPU).LDY},
	0xB4: {"LDY", ZERO_PAGE_X, 2, 4, (*CPU).LDY},
	0xAC: {"LDY", ABSOLUTE, 3, 4, (*CPU).LDY},
	0xBC: {"LDY", ABSOLUTE_X, 3, 4, (*CPU).LDY}, // +1 if page crossed

	0x4A: {"LSR", ACCUMULATOR, 1, 2, (*CPU).LSR},
	0x46: {"LSR", ZERO_PAGE, 2, 5, (*CPU).LSR},
	0x56: {"LSR", ZERO_PAGE_X, 2, 6, (*CPU).LSR},
	0x4E: {"LSR", ABSOLUTE, 3, 6, (*CPU).LSR},
	0x5E: {"LSR", ABSOLUTE_X, 3, 7, (*CPU).LSR},

	0xEA: {"NOP", IMPLICIT, 1, 2, (*CPU).NOP},

	0x09: {"ORA", IMMEDIATE, 2, 2, (*CPU).ORA},
	0x05: {"ORA", ZERO_PAGE, 2, 3, (*CPU).ORA},
	0x15: {"ORA", ZERO_PAGE_X, 2, 4, (*CPU).ORA},
	0x0D: {"ORA", ABSOLUTE, 3, 4, (*CPU).ORA},
	0x1D: {"ORA", ABSOLUTE_X, 3, 4, (*CPU).ORA}, // +1 if page crossed
	0x19: {"ORA", ABSOLUTE_Y, 3, 4, (*CPU).ORA}, // +1 if page crossed
	0x01: {"ORA", INDIRECT_X, 2, 6, (*CPU).ORA},
	0x11: {"ORA", INDIRECT_Y, 2, 5, (*CPU).ORA}, // +1 if page crossed

	0x48: {"PHA", IMPLICIT, 1, 3, (*CPU).PHA},
	0x08: {"PHP", IMPLICIT, 1, 3, (*CPU).PHP},
	0x68: {"PLA", IMPLICIT, 1, 4, (*CPU).PLA},
	0x28: {"PLP", IMPLICIT, 1, 4, (*CPU).PLP},

	0x2A: {"ROL", ACCUMULATOR, 1, 2, (*CPU).ROL},
	0x26: {"ROL", ZERO_PAGE, 2, 5, (*CPU).ROL},
	0x36: {"ROL", ZERO_PAGE_X, 2, 6, (*CPU).ROL},
	0x2E: {"ROL", ABSOLUTE, 3, 6, (*CPU).ROL},
	0x3E: {"ROL", ABSOLUTE_X, 3, 7, (*CPU).ROL},

	0x6A: {"ROR", ACCUMULATOR, 1, 2, (*CPU).ROR},
	0x66: {"ROR", ZERO_PAGE, 2, 5, (*CPU).ROR},
	0x76: {"ROR", ZERO_PAGE_X, 2, 6, (*CPU).ROR},
	0x6E: {"ROR", ABSOLUTE, 3, 6, (*CPU).ROR},
	0x7E: {"ROR", ABSOLUTE_X, 3, 7, (*CPU).ROR},

	0x40: {"RTI", IMPLICIT, 1, 6, (*CPU).RTI},
	0x60: {"RTS", IMPLICIT, 1, 6, (*CPU).RTS},

	0xE9: {"SBC", IMMEDIATE, 2, 2, (*CPU).SBC},
	0xE5: {"SBC", ZERO_PAGE, 2, 3, (*CPU).SBC},
	0xF5: {"SBC", ZERO_PAGE_X, 2, 4, (*CPU).SBC},
	0xED: {"SBC", ABSOLUTE, 3, 4, (*CPU).SBC},
	0xFD: {"SBC", ABSOLUTE_X, 3, 4, (*CPU).SBC}, // +1 if page crossed
	0xF9: {"SBC", ABSOLUTE_Y, 3, 4, (*CPU).SBC}, // +1 if page crossed
	0xE1: {"SBC", INDIRECT_X, 2, 6, (*CPU).SBC},
	0xF1: {"SBC", INDIRECT_Y, 2, 5, (*CPU).SBC}, // +1 if page crossed

	0x38: {"SEC", IMPLICIT, 1, 2, (*CPU).SEC},
	0xF8: {"SED", IMPLICIT, 1, 2, (*CPU).SED},
	0x78: {"SEI", IMPLICIT, 1, 2, (*CPU).SEI},

	0x85: {"STA", ZERO_PAGE, 2, 3, (*CPU).STA},
	0x95: {"STA", ZERO_PAGE_X, 2, 4, (*CPU).STA},
	0x8D: {"STA", ABSOLUTE, 3, 4, (*CPU).STA},
	0x9D: {"STA", ABSOLUTE_X, 3, 5, (*CPU).STA},
	0x99: {"STA", ABSOLUTE_Y, 3, 5, (*CPU).STA},
	0x81: {"STA", INDIRECT_X, 2, 6, (*CPU).STA},
	0x91: {"STA", INDIRECT_Y, 2, 6, (*CPU).STA},

	0x86: {"STX", ZERO_PAGE, 2, 3, (*CPU).STX},
	0x96: {"STX", ZERO_PAGE_Y, 2, 4, (*CPU).STX},
	0x8E: {"STX", ABSOLUTE, 3, 4, (*CPU).STX},

	0x84: {"STY", ZERO_PAGE, 2, 3, (*CPU).STY},
	0x94: {"STY", ZERO_PAGE_X, 2, 4, (*CPU).STY},
	0x8C: {"STY", ABSOLUTE, 3, 4, (*CPU).STY},

	0xAA: {"TAX", IMPLICIT, 1, 2, (*CPU).TAX},
	0xA8: {"TAY", IMPLICIT, 1, 2, (*CPU).TAY},
	0xBA: {"TSX", IMPLICIT, 1, 2, (*CPU).TSX},
	0x8A: {"TXA", IMPLICIT, 1, 2, (*CPU).TXA},
	0x9A: {"TXS", IMPLICIT, 1, 2, (*CPU).TXS},
	0x98: {"TYA", IMPLICIT, 1, 2, (*CPU).TYA},
}
