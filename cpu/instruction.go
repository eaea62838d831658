package cpu

import (
	"fmt"
	"strconv"
)

// FieldKind is the kind of operand packed into an instruction field.
type FieldKind int

const (
	FIELD_REGISTER  = FieldKind(0) // Register name, 5 bits at Offset.
	FIELD_IMMEDIATE = FieldKind(1) // Signed 16-bit value, bits 0-15.
	FIELD_SHIFT     = FieldKind(2) // Shift amount, bits 6-10.
	FIELD_BRANCH    = FieldKind(3) // Label, as a relative instruction offset in bits 0-15.
	FIELD_JUMP      = FieldKind(4) // Label, as an absolute word address in bits 0-25.
)

// Field describes where one operand lands in the instruction word.
type Field struct {
	Kind   FieldKind
	Offset uint
}

// Mask returns the bits of the instruction word occupied by the field.
func (field Field) Mask() Code {
	switch field.Kind {
	case FIELD_REGISTER:
		return Code(0x1f) << field.Offset
	case FIELD_SHIFT:
		return Code(0x1f) << 6
	case FIELD_IMMEDIATE, FIELD_BRANCH:
		return Code(0xffff)
	case FIELD_JUMP:
		return Code(0x3ffffff)
	}

	return 0
}

// Instruction is the static description of a mnemonic: its base word
// and the fields its operands are packed into, in operand order.
type Instruction struct {
	Mnemonic Mnemonic
	Base     Code
	Fields   []Field
}

func reg(offset uint) Field {
	return Field{Kind: FIELD_REGISTER, Offset: offset}
}

var (
	fieldImmediate = Field{Kind: FIELD_IMMEDIATE}
	fieldShift     = Field{Kind: FIELD_SHIFT, Offset: 6}
	fieldBranch    = Field{Kind: FIELD_BRANCH}
	fieldJump      = Field{Kind: FIELD_JUMP}
)

// instructionSet is indexed by Mnemonic.
var instructionSet = [...]*Instruction{
	NOP:  {NOP, 0x00000000, nil},
	ADD:  {ADD, 0x00000020, []Field{reg(11), reg(21), reg(16)}},
	ADDI: {ADDI, 0x20000000, []Field{reg(16), reg(21), fieldImmediate}},
	ANDI: {ANDI, 0x30000000, []Field{reg(16), reg(21), fieldImmediate}},
	BLEZ: {BLEZ, 0x18000000, []Field{reg(21), fieldBranch}},
	BNE:  {BNE, 0x14000000, []Field{reg(21), reg(16), fieldBranch}},
	SRL:  {SRL, 0x00000002, []Field{reg(11), reg(16), fieldShift}},
	SLL:  {SLL, 0x00000000, []Field{reg(11), reg(16), fieldShift}},
	JAL:  {JAL, 0x0C000000, []Field{fieldJump}},
	JR:   {JR, 0x00000008, []Field{reg(21)}},
}

var (
	instructionMap = map[string]*Instruction{}
	opcodeMap      = map[uint32]Mnemonic{}
	functMap       = map[uint32]Mnemonic{}
)

func init() {
	for _, inst := range instructionSet {
		instructionMap[inst.Mnemonic.String()] = inst
		if inst.Mnemonic == NOP {
			// Only the all-zero word is a nop; see Code.Decode()
			continue
		}
		if inst.Base.Opcode() == OPCODE_SPECIAL {
			functMap[inst.Base.Funct()] = inst.Mnemonic
		} else {
			opcodeMap[inst.Base.Opcode()] = inst.Mnemonic
		}
	}
}

// LookupInstruction finds an instruction by exact mnemonic name.
func LookupInstruction(name string) (inst *Instruction, ok bool) {
	inst, ok = instructionMap[name]
	return
}

// Instructions returns all of the supported instructions.
func Instructions() []*Instruction {
	return instructionSet[:]
}

// Operands renders the operand fields of an instruction word as text.
// Branch offsets are rendered as signed instruction counts, and jump
// targets as absolute byte addresses.
func (inst *Instruction) Operands(code Code) (args []string) {
	for _, field := range inst.Fields {
		var arg string
		switch field.Kind {
		case FIELD_REGISTER:
			arg = Register((uint32(code) >> field.Offset) & 0x1f).String()
		case FIELD_IMMEDIATE, FIELD_BRANCH:
			arg = strconv.Itoa(int(code.Imm()))
		case FIELD_SHIFT:
			arg = strconv.Itoa(int(code.Shamt()))
		case FIELD_JUMP:
			arg = fmt.Sprintf("0x%08x", code.Target())
		}
		args = append(args, arg)
	}

	return
}
