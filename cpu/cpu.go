package cpu

import (
	"errors"
	"log"
)

// Cpu is the simulation context for the fetch-decode-execute loop.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	RegisterFile        // Registers and program counter.
	Text         []Code // Text segment; words past the end read as zero.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU with a text segment loaded.
func NewCpu(text []Code) (cpu *Cpu) {
	cpu = &Cpu{
		Text: text,
	}

	cpu.Reset()

	return
}

// Reset the CPU state.
// - Clears the registers.
// - Zeros the tick counter.
// - Points the program counter at TEXT_BASE.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.RegisterFile.Reset()
	cpu.Ticks = 0
}

// FetchCode fetches the word at the program counter.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	index, ok := TextIndex(cpu.Pc)
	if !ok {
		err = ErrPcInvalid
		return
	}

	if index < len(cpu.Text) {
		code = cpu.Text[index]
	}

	return
}

// Tick executes a single instruction cycle.
// Returns ErrHalt, without advancing the program counter, when the
// fetched word is zero.
func (cpu *Cpu) Tick() (err error) {
	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	if code == 0 {
		err = ErrHalt
		return
	}

	err = cpu.Execute(code)
	return
}

// Run ticks until the CPU halts, or an error occurs.
func (cpu *Cpu) Run() (err error) {
	for err == nil {
		err = cpu.Tick()
	}

	if errors.Is(err, ErrHalt) {
		err = nil
	}

	return
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(code), err)
		}
	}()

	if cpu.Verbose {
		log.Printf("executing 0x%08x 0x%08x %v", cpu.Pc, uint32(code), code)
	}

	inst, err := code.Decode()
	if err != nil {
		return
	}

	next_pc := cpu.Pc + WORD_SIZE
	branch := func(taken bool) {
		if taken {
			next_pc = uint32(int32(next_pc) + code.Imm()*WORD_SIZE)
		}
	}

	// Treat as signed.
	rs := int32(cpu.Get(code.Rs()))
	rt := int32(cpu.Get(code.Rt()))

	switch inst.Mnemonic {
	case NOP:
		// pass
	case ADD:
		cpu.Set(code.Rd(), uint32(rs+rt))
	case ADDI:
		cpu.Set(code.Rt(), uint32(rs+code.Imm()))
	case ANDI:
		cpu.Set(code.Rt(), uint32(rs)&uint32(uint16(code)))
	case SLL:
		cpu.Set(code.Rd(), uint32(rt)<<code.Shamt())
	case SRL:
		cpu.Set(code.Rd(), uint32(rt>>code.Shamt()))
	case BLEZ:
		branch(rs <= 0)
	case BNE:
		branch(rs != rt)
	case JAL:
		cpu.Set(REG_RA, next_pc)
		next_pc = (next_pc & 0xf000_0000) | code.Target()
	case JR:
		next_pc = uint32(rs)
	default:
		err = ErrInstructionUnknown
		return
	}

	cpu.Pc = next_pc
	cpu.Ticks += 1

	return
}
