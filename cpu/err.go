package cpu

import (
	"github.com/ezrec/mipsemu/translate"
)

var f = translate.From

// Sentinel errors are translated when formatted, so that a locale
// selected after start up applies to them.
var (
	// Cpu errors
	ErrHalt               = translate.Error("halt")
	ErrPcInvalid          = translate.Error("pc invalid")
	ErrInstructionUnknown = translate.Error("instruction unknown")

	// Assembler errors
	ErrParse           = translate.Error("parse error")
	ErrOpcodeUnknown   = translate.Error("unknown opcode")
	ErrRegisterInvalid = translate.Error("register invalid")
	ErrImmediateRange  = translate.Error("immediate out of range")
	ErrShiftRange      = translate.Error("shift out of range")
	ErrOperandMissing  = translate.Error("operand missing")
	ErrOperandExtra    = translate.Error("excessive operands")
	ErrLabelDuplicate  = translate.Error("label duplicated")
	ErrLabelInvalid    = translate.Error("label invalid")
	ErrProgramTooLong  = translate.Error("program too long")
	ErrLineTooLong     = translate.Error("line too long")
	ErrOperandTooLong  = translate.Error("operand too long")
)

// ErrLabelMissing is returned when a referenced label has no definition.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%08x", uint32(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrSyntax locates an assembly error by its 0-based line index.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrOperand names the operand that failed to encode.
type ErrOperand struct {
	Operand string
	Err     error
}

func (err ErrOperand) Error() string {
	return f("operand '%v' %v", err.Operand, err.Err)
}

func (err ErrOperand) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
