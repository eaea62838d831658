// Package cpu implements the assembler and processor for a small
// MIPS-like instruction set.
//
// The processor consists of 32 unsigned 32-bit registers ($zero-$ra), a
// program counter, and a text segment of 32-bit instruction words mapped
// at TEXT_BASE. Execution fetches the word at the program counter,
// decodes it by opcode field (and function field for OPCODE_SPECIAL),
// and halts when it fetches an all-zero word.
//
// The assembler translates one source line into one instruction word.
// Ten mnemonics are supported: nop, add, addi, andi, blez, bne, srl,
// sll, jal and jr. A line may define a label with a 'label:' prefix, and
// numeric operands may be written as $(...) compile-time expressions.
package cpu
