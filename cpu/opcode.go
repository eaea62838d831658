package cpu

import (
	"fmt"
	"strings"
)

// Mnemonic identifies one of the supported instructions.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	NOP  = Mnemonic(0) // nop
	ADD  = Mnemonic(1) // add
	ADDI = Mnemonic(2) // addi
	ANDI = Mnemonic(3) // andi
	BLEZ = Mnemonic(4) // blez
	BNE  = Mnemonic(5) // bne
	SRL  = Mnemonic(6) // srl
	SLL  = Mnemonic(7) // sll
	JAL  = Mnemonic(8) // jal
	JR   = Mnemonic(9) // jr
)

// Opcode field values. OPCODE_SPECIAL selects on the function field.
const (
	OPCODE_SPECIAL = 0x00
	OPCODE_JAL     = 0x03
	OPCODE_BNE     = 0x05
	OPCODE_BLEZ    = 0x06
	OPCODE_ADDI    = 0x08
	OPCODE_ANDI    = 0x0c
)

// Function field values for OPCODE_SPECIAL.
const (
	FUNCT_SLL = 0x00
	FUNCT_SRL = 0x02
	FUNCT_JR  = 0x08
	FUNCT_ADD = 0x20
)

// Code is a single 32-bit instruction word.
type Code uint32

// Opcode returns the top 6 bits of the instruction word.
func (code Code) Opcode() uint32 {
	return (uint32(code) >> 26) & 0x3f
}

// Rs returns the register in bits 21-25.
func (code Code) Rs() Register {
	return Register((uint32(code) >> 21) & 0x1f)
}

// Rt returns the register in bits 16-20.
func (code Code) Rt() Register {
	return Register((uint32(code) >> 16) & 0x1f)
}

// Rd returns the register in bits 11-15.
func (code Code) Rd() Register {
	return Register((uint32(code) >> 11) & 0x1f)
}

// Shamt returns the shift amount in bits 6-10.
func (code Code) Shamt() uint32 {
	return (uint32(code) >> 6) & 0x1f
}

// Funct returns the function field in bits 0-5.
func (code Code) Funct() uint32 {
	return uint32(code) & 0x3f
}

// Imm returns the sign extended immediate in bits 0-15.
func (code Code) Imm() int32 {
	return int32(int16(uint16(code)))
}

// Target returns the byte address encoded in the jump field, bits 0-25.
func (code Code) Target() uint32 {
	return (uint32(code) & 0x3ffffff) << 2
}

// Decode finds the instruction for a word, by opcode field first,
// and then by function field for OPCODE_SPECIAL.
// The all-zero word decodes as nop.
func (code Code) Decode() (inst *Instruction, err error) {
	if code == 0 {
		inst = instructionSet[NOP]
		return
	}

	var mnemonic Mnemonic
	var ok bool
	if code.Opcode() == OPCODE_SPECIAL {
		mnemonic, ok = functMap[code.Funct()]
	} else {
		mnemonic, ok = opcodeMap[code.Opcode()]
	}
	if !ok {
		err = ErrInstructionUnknown
		return
	}

	inst = instructionSet[mnemonic]
	return
}

// String returns the assembly language representation of this instruction.
func (code Code) String() string {
	inst, err := code.Decode()
	if err != nil {
		return fmt.Sprintf(".word 0x%08x", uint32(code))
	}

	args := inst.Operands(code)
	if len(args) == 0 {
		return inst.Mnemonic.String()
	}

	return inst.Mnemonic.String() + " " + strings.Join(args, ", ")
}
