// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/mipsemu/internal"
)

// Predefined system symbols
var sysSymbol = map[string]string{
	"LINENO":    "0",
	"TEXT_BASE": fmt.Sprintf("%#x", TEXT_BASE),
}

// Assembler is a single pass assembler, producing one word per line.
type Assembler struct {
	Verbose bool   // If set, logs each assembled word.
	Line    []Line // Lines assembled so far.

	predefine map[string]string // Predefines
	Label     Labels            // Map of labels to line indexes.
	Symbol    map[string]string // Symbols available to $(...) expressions.
}

// Predefine defines a new symbol or redefines an existing symbol.
func (asm *Assembler) Predefine(name string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// Symbols iterates over the system symbols, then the predefines.
func (asm *Assembler) Symbols() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(sysSymbol), maps.All(asm.predefine))
}

// parseNumber parses a decimal, or 0x prefixed hexadecimal, integer.
func parseNumber(word string) (value int64, err error) {
	base := 10
	digits := strings.TrimLeft(word, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		base = 0
	}

	value, err = strconv.ParseInt(word, base, 64)
	if err != nil {
		err = ErrParseNumber(word)
	}

	return
}

// valueOf returns the value of a numeric operand.
func (asm *Assembler) valueOf(word string) (value int, err error) {
	if strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")") {
		var v64 int64
		v64, err = asm.parenEval(word[2 : len(word)-1])
		value = int(v64)
		return
	}

	v64, err := parseNumber(word)
	value = int(v64)
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Symbol {
		v64, _err := parseNumber(str)
		if _err != nil {
			// Ignore non-integer symbols.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}

// stripComment removes any '#' comment from a line.
func stripComment(line string) string {
	text, _, _ := strings.Cut(line, "#")
	return text
}

// splitWords splits a line on whitespace and commas, keeping $(...)
// expressions intact.
func splitWords(text string) (words []string) {
	var word strings.Builder
	depth := 0
	flush := func() {
		if word.Len() > 0 {
			words = append(words, word.String())
			word.Reset()
		}
	}
	for _, r := range text {
		switch {
		case r == '(':
			depth++
		case r == ')' && depth > 0:
			depth--
		case depth == 0 && (r == ',' || r == ' ' || r == '\t' || r == '\r' || r == '\n'):
			flush()
			continue
		}
		word.WriteRune(r)
	}
	flush()

	return
}

// parseLine splits a line into its optional label, and its words.
func (asm *Assembler) parseLine(line string) (label string, words []string, err error) {
	text := stripComment(line)
	label, ok := LabelOf(text)
	if ok {
		_, text, _ = strings.Cut(text, ":")
	}

	words = splitWords(text)
	if len(words) == 0 {
		err = ErrParse
		return
	}

	for _, word := range words {
		if len(word) > MAX_ARG_LEN {
			err = &ErrOperand{Operand: word, Err: ErrOperandTooLong}
			return
		}
	}

	return
}

// Parse reads lines from an input stream and assembles them.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	lines, err := ReadLines(input)
	if err != nil {
		return
	}

	return asm.Assemble(lines)
}

// ReadLines reads program lines from an input stream, enforcing the
// line length and program length limits.
func ReadLines(input io.Reader) (lines []string, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, MAX_LINE_LEN+1), 4*MAX_LINE_LEN)

	for scanner.Scan() {
		text := scanner.Text()
		lineno := len(lines)
		if len(text) > MAX_LINE_LEN {
			err = &ErrSyntax{LineNo: lineno, Line: text, Err: ErrLineTooLong}
			return
		}
		if lineno >= MAX_PROG_LEN {
			err = &ErrSyntax{LineNo: lineno, Line: text, Err: ErrProgramTooLong}
			return
		}
		lines = append(lines, text)
	}
	err = scanner.Err()
	if errors.Is(err, bufio.ErrTooLong) {
		err = &ErrSyntax{LineNo: len(lines), Err: ErrLineTooLong}
		return
	}

	return
}

// Assemble assembles program lines into a text segment. Assembly stops
// at the first error, which is returned as an *ErrSyntax.
func (asm *Assembler) Assemble(lines []string) (prog *Program, err error) {
	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Line = asm.Line[:0]
	asm.Symbol = maps.Collect(asm.Symbols())

	if len(lines) > MAX_PROG_LEN {
		lineno = MAX_PROG_LEN
		line = lines[lineno]
		err = ErrProgramTooLong
		return
	}

	// Labels are collected before encoding, so that forward
	// references resolve.
	stripped := make([]string, len(lines))
	seen := make(map[string]bool, len(lines))
	for lineno, line = range lines {
		if len(line) > MAX_LINE_LEN {
			err = ErrLineTooLong
			return
		}
		stripped[lineno] = stripComment(line)
		label, ok := LabelOf(stripped[lineno])
		if !ok {
			continue
		}
		if len(label) == 0 || len(label) > MAX_ARG_LEN || strings.ContainsAny(label, " \t,") {
			err = ErrLabelInvalid
			return
		}
		if seen[label] {
			err = ErrLabelDuplicate
			return
		}
		seen[label] = true
	}
	asm.Label = ScanLabels(stripped)

	for lineno, line = range lines {
		asm.Symbol["LINENO"] = strconv.Itoa(lineno)

		var label string
		var words []string
		label, words, err = asm.parseLine(line)
		if err != nil {
			return
		}

		var code Code
		code, err = asm.encode(lineno, words)
		if err != nil {
			return
		}

		if asm.Verbose {
			log.Printf("0x%08x 0x%08x", TextAddress(lineno), uint32(code))
		}

		asm.Line = append(asm.Line, Line{
			LineNo: lineno,
			Text:   line,
			Label:  label,
			Words:  words,
			Code:   code,
		})
	}

	prog = &Program{
		Lines: slices.Clone(asm.Line),
	}

	return
}

// encode packs the operands of a line into its instruction word.
func (asm *Assembler) encode(lineno int, words []string) (code Code, err error) {
	inst, ok := LookupInstruction(words[0])
	if !ok {
		err = ErrOpcodeUnknown
		return
	}

	args := words[1:]
	if len(args) < len(inst.Fields) {
		err = ErrOperandMissing
		return
	}
	if len(args) > len(inst.Fields) {
		err = ErrOperandExtra
		return
	}

	code = inst.Base
	for n, field := range inst.Fields {
		arg := args[n]
		switch field.Kind {
		case FIELD_REGISTER:
			err = PackRegister(&code, arg, field.Offset)
		case FIELD_IMMEDIATE:
			var value int
			value, err = asm.valueOf(arg)
			if err == nil {
				err = PackImmediate(&code, value)
			}
		case FIELD_SHIFT:
			var value int
			value, err = asm.valueOf(arg)
			if err == nil {
				err = PackShift(&code, value)
			}
		case FIELD_BRANCH:
			var offset int
			offset, err = asm.Label.Relative(lineno, arg)
			if err == nil {
				err = PackImmediate(&code, offset)
			}
		case FIELD_JUMP:
			var address uint32
			address, err = asm.Label.Absolute(arg)
			if err == nil {
				PackAddress(&code, address)
			}
		}
		if err != nil {
			err = &ErrOperand{Operand: arg, Err: err}
			return
		}
	}

	return
}
