// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"log"

	"github.com/ezrec/mipsemu/cpu"
)

// Tracer observes each instruction before it is executed.
type Tracer interface {
	Trace(pc uint32, code cpu.Code)
}

// Emulator state. CPU + assembled program.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Tracer Tracer // If set, called before each executed instruction.
	Limit  int    // Maximum ticks per run; zero is unlimited.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(nil),
		Program: &cpu.Program{},
	}

	return
}

// Reset loads the program text, and resets the CPU state.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Text = emu.Program.Text()
	emu.Cpu.Reset()
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Code returns the current instruction code.
func (emu *Emulator) Code() cpu.Code {
	line := emu.Program.Debug(emu.Cpu.Pc)
	if line == nil {
		return 0
	}

	return line.Code
}

// LineNo returns the 0-based source line for the program counter,
// or -1 if the program counter is outside of the program.
func (emu *Emulator) LineNo() int {
	line := emu.Program.Debug(emu.Cpu.Pc)
	if line == nil {
		return -1
	}

	return line.LineNo
}

// Tick performs a single tick of the emulator.
// done is set once the CPU fetches the halt word.
func (emu *Emulator) Tick() (done bool, err error) {
	lineno := emu.LineNo()
	pc := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Pc: pc, Err: err}
		}
	}()

	if emu.Limit > 0 && emu.Cpu.Ticks >= emu.Limit {
		err = ErrTickLimit
		return
	}

	code, err := emu.Cpu.FetchCode()
	if err != nil {
		return
	}

	if code != 0 && emu.Tracer != nil {
		emu.Tracer.Trace(pc, code)
	}

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalt) {
		err = nil
		done = true
		if emu.Verbose {
			log.Printf("emulator: halt at 0x%08x after %d ticks", pc, emu.Cpu.Ticks)
		}
	}

	return
}

// Run ticks the emulator until it halts.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
