package emulator

import (
	"errors"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/mipsemu/cpu"
)

func load(emu *Emulator, program ...string) *cpu.Program {
	asm := &cpu.Assembler{}
	prog, err := asm.Assemble(program)
	Expect(err).NotTo(HaveOccurred())

	emu.Program = prog
	emu.Reset()

	return prog
}

var _ = Describe("Emulator", func() {
	var (
		mockCtrl *gomock.Controller
		tracer   *MockTracer
		emu      *Emulator
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		tracer = NewMockTracer(mockCtrl)
		emu = NewEmulator()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should start empty", func() {
		Expect(emu.Verbose).To(BeFalse())
		Expect(emu.Cpu).NotTo(BeNil())
		Expect(emu.Program.Lines).To(BeEmpty())

		emu.Reset()
		done, err := emu.Tick()
		Expect(err).NotTo(HaveOccurred())
		Expect(done).To(BeTrue())
		Expect(emu.Ticks()).To(Equal(0))
	})

	It("should run to the halt word", func() {
		load(emu,
			"addi $t0, $zero, 5",
			"addi $t1, $zero, 3",
			"add $t2, $t0, $t1",
			"nop",
			"addi $t3, $zero, 1",
		)

		Expect(emu.Run()).To(Succeed())
		Expect(emu.Cpu.Get(cpu.REG_T0)).To(Equal(uint32(5)))
		Expect(emu.Cpu.Register[10]).To(Equal(uint32(8)))
		Expect(emu.Cpu.Register[11]).To(Equal(uint32(0)))
		Expect(emu.Cpu.Pc).To(Equal(cpu.TextAddress(3)))
		Expect(emu.Ticks()).To(Equal(3))
	})

	It("should reset state between runs", func() {
		load(emu, "addi $t0, $t0, 1")

		Expect(emu.Run()).To(Succeed())
		Expect(emu.Cpu.Get(cpu.REG_T0)).To(Equal(uint32(1)))

		emu.Reset()
		Expect(emu.Run()).To(Succeed())
		Expect(emu.Cpu.Get(cpu.REG_T0)).To(Equal(uint32(1)))
	})

	It("should track the source line of the program counter", func() {
		prog := load(emu,
			"addi $t0, $zero, 1",
			"addi $t0, $t0, 1",
		)

		for _, line := range prog.Lines {
			Expect(emu.LineNo()).To(Equal(line.LineNo))
			Expect(emu.Code()).To(Equal(line.Code))
			done, err := emu.Tick()
			Expect(err).NotTo(HaveOccurred())
			Expect(done).To(BeFalse())
		}

		Expect(emu.LineNo()).To(Equal(-1))
		Expect(emu.Code()).To(Equal(cpu.Code(0)))
		done, err := emu.Tick()
		Expect(err).NotTo(HaveOccurred())
		Expect(done).To(BeTrue())
	})

	It("should trace each executed instruction in order", func() {
		prog := load(emu,
			"addi $a0, $zero, 2",
			"jal double",
			"nop",
			"double: add $v0, $a0, $a0",
			"jr $ra",
		)
		emu.Tracer = tracer

		text := prog.Text()
		gomock.InOrder(
			tracer.EXPECT().Trace(cpu.TextAddress(0), text[0]),
			tracer.EXPECT().Trace(cpu.TextAddress(1), text[1]),
			tracer.EXPECT().Trace(cpu.TextAddress(3), text[3]),
			tracer.EXPECT().Trace(cpu.TextAddress(4), text[4]),
		)

		Expect(emu.Run()).To(Succeed())
		Expect(emu.Cpu.Register[2]).To(Equal(uint32(4)))
	})

	It("should stop at the tick limit", func() {
		load(emu,
			"addi $t0, $zero, 1",
			"loop: bne $t0, $zero, loop",
		)
		emu.Limit = 100

		err := emu.Run()
		Expect(err).To(MatchError(ErrTickLimit))
		Expect(emu.Ticks()).To(Equal(100))

		var runtime *ErrRuntime
		Expect(errors.As(err, &runtime)).To(BeTrue())
		Expect(runtime.LineNo).To(Equal(1))
		Expect(runtime.Pc).To(Equal(cpu.TextAddress(1)))
	})

	It("should report the line of an unknown instruction", func() {
		prog := load(emu,
			"addi $t0, $zero, 1",
			"addi $t0, $t0, 1",
		)
		prog.Lines[1].Code = 0xfc000000
		emu.Reset()

		err := emu.Run()
		Expect(err).To(MatchError(cpu.ErrInstructionUnknown))

		var runtime *ErrRuntime
		Expect(errors.As(err, &runtime)).To(BeTrue())
		Expect(runtime.LineNo).To(Equal(1))
		Expect(emu.Cpu.Get(cpu.REG_T0)).To(Equal(uint32(1)))
	})

	It("should report an invalid program counter", func() {
		load(emu,
			"addi $t0, $zero, 6",
			"jr $t0",
		)

		err := emu.Run()
		Expect(err).To(MatchError(cpu.ErrPcInvalid))

		var runtime *ErrRuntime
		Expect(errors.As(err, &runtime)).To(BeTrue())
		Expect(runtime.LineNo).To(Equal(-1))
		Expect(runtime.Pc).To(Equal(uint32(6)))
	})
})
