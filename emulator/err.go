package emulator

import (
	"github.com/ezrec/mipsemu/translate"
)

var f = translate.From

var (
	ErrTickLimit = translate.Error("tick limit reached")
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Pc     uint32
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d pc 0x%08x %v", err.LineNo, err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
