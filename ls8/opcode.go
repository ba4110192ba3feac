package ls8

import (
	"regexp"
	"strings"
)

// Arity is the operand class of an instruction.
type Arity int

//go:generate go tool stringer -linecomment -type=Arity
const (
	ARITY_NONE    = Arity(0) // none
	ARITY_REG     = Arity(1) // reg
	ARITY_REG_REG = Arity(2) // reg,reg
	ARITY_REG_IMM = Arity(3) // reg,imm
)

// Operands returns the number of source operands the arity requires.
func (ar Arity) Operands() int {
	switch ar {
	case ARITY_REG:
		return 1
	case ARITY_REG_REG, ARITY_REG_IMM:
		return 2
	default:
		return 0
	}
}

// Registers returns the number of register operands the arity encodes.
func (ar Arity) Registers() int {
	switch ar {
	case ARITY_REG, ARITY_REG_IMM:
		return 1
	case ARITY_REG_REG:
		return 2
	default:
		return 0
	}
}

// Size returns the encoded length in bytes of an instruction of this arity.
func (ar Arity) Size() int {
	size := 1 + ar.Registers()
	if ar == ARITY_REG_IMM {
		size++
	}
	return size
}

// Instruction describes a single LS-8 mnemonic.
type Instruction struct {
	Mnemonic string
	Arity    Arity
	Opcode   uint8
}

// REGISTER_COUNT is the number of general purpose registers.
const REGISTER_COUNT = 8

// instructionMap is the LS-8 instruction set.
var instructionMap = map[string]Instruction{
	"ADD":  {"ADD", ARITY_REG_REG, 0b00001100},
	"CALL": {"CALL", ARITY_REG, 0b00001111},
	"CMP":  {"CMP", ARITY_REG_REG, 0b00010110},
	"DEC":  {"DEC", ARITY_REG, 0b00011000},
	"DIV":  {"DIV", ARITY_REG_REG, 0b00001110},
	"HLT":  {"HLT", ARITY_NONE, 0b00011011},
	"INC":  {"INC", ARITY_REG, 0b00010111},
	"INT":  {"INT", ARITY_REG, 0b00011001},
	"IRET": {"IRET", ARITY_NONE, 0b00011010},
	"JEQ":  {"JEQ", ARITY_REG, 0b00010011},
	"JMP":  {"JMP", ARITY_REG, 0b00010001},
	"JNE":  {"JNE", ARITY_REG, 0b00010100},
	"LD":   {"LD", ARITY_REG_REG, 0b00010010},
	"LDI":  {"LDI", ARITY_REG_IMM, 0b00000100},
	"MUL":  {"MUL", ARITY_REG_REG, 0b00000101},
	"NOP":  {"NOP", ARITY_NONE, 0b00000000},
	"POP":  {"POP", ARITY_REG, 0b00001011},
	"PRA":  {"PRA", ARITY_REG, 0b00000111},
	"PRN":  {"PRN", ARITY_REG, 0b00000110},
	"PUSH": {"PUSH", ARITY_REG, 0b00001010},
	"RET":  {"RET", ARITY_NONE, 0b00010000},
	"ST":   {"ST", ARITY_REG_REG, 0b00001001},
	"SUB":  {"SUB", ARITY_REG_REG, 0b00001101},
}

// LookupInstruction finds an instruction by mnemonic, ignoring case.
func LookupInstruction(mnemonic string) (inst Instruction, ok bool) {
	inst, ok = instructionMap[strings.ToUpper(mnemonic)]
	return
}

var registerRegexp = regexp.MustCompile(`^R([0-7])$`)

// ParseRegister decodes a register operand such as "R3".
func ParseRegister(word string) (reg uint8, err error) {
	m := registerRegexp.FindStringSubmatch(strings.ToUpper(word))
	if m == nil {
		err = ErrRegister(word)
		return
	}

	reg = m[1][0] - '0'
	return
}
