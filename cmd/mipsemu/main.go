// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/ezrec/mipsemu/cpu"
	"github.com/ezrec/mipsemu/emulator"
	"github.com/ezrec/mipsemu/translate"
)

// defines collects repeated -D NAME=VALUE flags.
type defines map[string]string

func (d defines) String() string {
	var list []string
	for name, value := range d {
		list = append(list, name+"="+value)
	}
	return strings.Join(list, ",")
}

func (d defines) Set(text string) error {
	name, value, ok := strings.Cut(text, "=")
	if !ok {
		value = "1"
	}
	d[name] = value
	return nil
}

// printSource prints the numbered program source.
func printSource(w io.Writer, lines []string) {
	fmt.Fprintln(w, "PROGRAM:")
	for lineno, line := range lines {
		fmt.Fprintf(w, "%d: %s\n", lineno, line)
	}
}

// logTracer prints each executed instruction.
type logTracer struct{}

func (logTracer) Trace(pc uint32, code cpu.Code) {
	fmt.Printf("0x%08x 0x%08x %v\n", pc, uint32(code), code)
}

func main() {
	var compile string
	var save bool
	var verbose bool
	var trace bool
	var limit int
	var lang string
	predefine := defines{}

	flag.StringVar(&compile, "c", "", "assembly file to compile")
	flag.BoolVar(&save, "s", false, "Assemble and list only, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&trace, "t", false, "Trace each executed instruction")
	flag.IntVar(&limit, "n", 0, "Maximum instructions to execute (0 is unlimited)")
	flag.StringVar(&lang, "l", "", "Message locale, ie 'en-US'")
	flag.Var(predefine, "D", "Predefine NAME=VALUE for $(...) expressions")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) == 0 {
		log.Fatalf("%v: -c is required", os.Args[0])
	}

	if len(lang) != 0 {
		translate.Use(lang)
	}

	inf, err := os.Open(compile)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: verbose}
	for name, value := range predefine {
		asm.Predefine(name, value)
	}

	lines, err := cpu.ReadLines(inf)
	if err != nil {
		log.Printf("%v: %v", compile, err)
		atexit.Exit(1)
	}

	if verbose {
		printSource(os.Stdout, lines)
	}

	prog, err := asm.Assemble(lines)
	if err != nil {
		log.Printf("%v: %v", compile, err)
		atexit.Exit(1)
	}

	for address, code := range prog.Listing() {
		fmt.Printf("0x%08x 0x%08x\n", address, uint32(code))
	}

	if save {
		atexit.Exit(0)
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose
	emu.Limit = limit
	if trace {
		emu.Tracer = logTracer{}
	}

	atexit.Register(func() {
		fmt.Print(emu.Cpu.RegisterFile.String())
	})

	emu.Reset()
	err = emu.Run()
	if err != nil {
		log.Printf("%v: %v", compile, err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
