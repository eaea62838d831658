package cpu

import (
	"iter"
)

// Line is a single assembled program line.
type Line struct {
	LineNo int      // 0-based line index, also the text segment index.
	Text   string   // Raw source text.
	Label  string   // Label defined by the line, if any.
	Words  []string // Mnemonic and operands.
	Code   Code     // Assembled instruction word.
}

// Address returns the text segment address of the line.
func (line *Line) Address() uint32 {
	return TextAddress(line.LineNo)
}

// Program is an assembled text segment, one word per source line.
type Program struct {
	Lines []Line
}

// Text returns the text segment words, in line order.
func (prog *Program) Text() (text []Code) {
	text = make([]Code, len(prog.Lines))
	for n, line := range prog.Lines {
		text[n] = line.Code
	}

	return
}

// Listing iterates over the address and word of each line.
func (prog *Program) Listing() iter.Seq2[uint32, Code] {
	return func(yield func(address uint32, code Code) bool) {
		for n := range prog.Lines {
			line := &prog.Lines[n]
			if !yield(line.Address(), line.Code) {
				return
			}
		}
	}
}

// Debug finds the source line for a program counter.
// Returns nil if the address is outside of the program.
func (prog *Program) Debug(pc uint32) (line *Line) {
	index, ok := TextIndex(pc)
	if !ok || index >= len(prog.Lines) {
		return
	}

	line = &prog.Lines[index]
	return
}
