package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzCpuExecute(f *testing.F) {
	for _, inst := range Instructions() {
		f.Add(uint32(inst.Base))
		f.Add(uint32(inst.Base) | 0x03ff_ffc0)
		f.Add(uint32(inst.Base) | 0xffff)
	}
	f.Add(uint32(0xfc000000))
	f.Add(uint32(0xffffffff))

	f.Fuzz(func(t *testing.T, word uint32) {
		assert := assert.New(t)

		code := Code(word)

		cpu := NewCpu([]Code{code})
		for n := range cpu.Register {
			cpu.Register[n] = uint32(n) * 0x01010101
		}
		cpu.Pc = TEXT_BASE + 0x100
		prior := cpu.RegisterFile

		inst, decode_err := code.Decode()
		err := cpu.Execute(code)

		// Disassembly never fails.
		assert.NotEmpty(code.String())

		if decode_err != nil {
			assert.ErrorIs(err, ErrInstructionUnknown)
			assert.True(errors.Is(err, ErrOpcode(code)))
			assert.Equal(prior, cpu.RegisterFile)
			assert.Equal(0, cpu.Ticks)
			return
		}

		assert.NoError(err)
		assert.Equal(1, cpu.Ticks)

		changed := 0
		for n := range cpu.Register {
			if cpu.Register[n] != prior.Register[n] {
				changed++
			}
		}
		assert.LessOrEqual(changed, 1)

		switch inst.Mnemonic {
		case NOP, ADD, ADDI, ANDI, SLL, SRL:
			assert.Equal(prior.Pc+4, cpu.Pc)
		case BLEZ, BNE:
			assert.Equal(0, changed)
			taken := uint32(int32(prior.Pc+4) + code.Imm()*4)
			assert.Contains([]uint32{prior.Pc + 4, taken}, cpu.Pc)
		case JAL:
			assert.Equal(prior.Pc+4, cpu.Get(REG_RA))
			assert.Equal(code.Target(), cpu.Pc)
		case JR:
			assert.Equal(prior.Register[code.Rs()], cpu.Pc)
		}
	})
}
