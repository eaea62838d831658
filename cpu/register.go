package cpu

import (
	"fmt"
)

// Register is a 5-bit register file index.
type Register uint8

const (
	REG_ZERO = Register(0)  // $zero
	REG_T0   = Register(8)  // $t0
	REG_RA   = Register(31) // $ra
)

var registerName = [REGISTER_COUNT]string{
	"$zero",
	"$at", "$v0", "$v1",
	"$a0", "$a1", "$a2", "$a3",
	"$t0", "$t1", "$t2", "$t3", "$t4", "$t5", "$t6", "$t7",
	"$s0", "$s1", "$s2", "$s3", "$s4", "$s5", "$s6", "$s7",
	"$t8", "$t9",
	"$k0", "$k1",
	"$gp",
	"$sp", "$fp", "$ra",
}

var registerMap = func() (rm map[string]Register) {
	rm = make(map[string]Register, len(registerName))
	for n, name := range registerName {
		rm[name] = Register(n)
	}
	return
}()

// LookupRegister finds a register by its canonical name, ie "$t0".
func LookupRegister(name string) (reg Register, ok bool) {
	reg, ok = registerMap[name]
	return
}

func (reg Register) String() string {
	if int(reg) >= len(registerName) {
		return fmt.Sprintf("Register(%d)", uint8(reg))
	}
	return registerName[reg]
}

// RegisterFile is the architectural state mutated by execution.
type RegisterFile struct {
	Register [REGISTER_COUNT]uint32 // General purpose registers.
	Pc       uint32                 // Program counter, as a byte address.
}

// Reset zeroes all registers, and points the program counter at
// the start of the text segment.
func (rf *RegisterFile) Reset() {
	clear(rf.Register[:])
	rf.Pc = TEXT_BASE
}

// Get returns the value of a register.
func (rf *RegisterFile) Get(reg Register) uint32 {
	return rf.Register[reg&0x1f]
}

// Set a register value. Writes to $zero are not suppressed.
func (rf *RegisterFile) Set(reg Register, value uint32) {
	rf.Register[reg&0x1f] = value
}

// String returns the register dump, one register per line.
func (rf *RegisterFile) String() (text string) {
	for n, value := range rf.Register {
		text += fmt.Sprintf("% 3d %-5s: %d\n", n, Register(n).String(), int32(value))
	}
	text += fmt.Sprintf("    pc   : 0x%08x\n", rf.Pc)

	return
}
