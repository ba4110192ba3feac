// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/ls8asm/ls8"
	"github.com/ezrec/ls8asm/translate"
)

// Process exit codes.
const (
	EXIT_USAGE   = 1 // Usage, operand count, register and I/O errors.
	EXIT_INVALID = 2 // Unknown opcode, bad pseudo-op argument, unknown symbol.
	EXIT_GRAMMAR = 3 // Unmatched line grammar.
)

// exitCode maps an assembly error to a process exit code.
func exitCode(err error) int {
	switch {
	case errors.Is(err, ls8.ErrGrammar):
		return EXIT_GRAMMAR
	case errors.Is(err, ls8.ErrOpcodeInvalid),
		errors.Is(err, ls8.ErrArgumentMissing),
		errors.Is(err, ls8.ErrArgumentInvalid),
		errors.Is(err, ls8.ErrSymbolUnknown):
		return EXIT_INVALID
	default:
		return EXIT_USAGE
	}
}

// predefine parses a NAME=ADDR label definition.
func predefine(asm *ls8.Assembler, def string) (err error) {
	name, value, ok := strings.Cut(def, "=")
	if !ok || len(name) == 0 {
		err = fmt.Errorf("%q: expected NAME=ADDR", def)
		return
	}

	addr, err := strconv.ParseInt(value, 0, 32)
	if err != nil {
		return
	}

	asm.Predefine(name, int(addr))

	return
}

// assemble reads source from the first argument (or stdin), and writes the
// listing to the second argument (or stdout). Nothing is written unless the
// whole program assembles.
func assemble(asm *ls8.Assembler, args []string, stdin io.Reader, stdout io.Writer) (err error) {
	input := stdin
	if len(args) > 0 {
		var inf *os.File
		inf, err = os.Open(args[0])
		if err != nil {
			return
		}
		defer inf.Close()
		input = inf
	}

	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	listing := &bytes.Buffer{}
	err = prog.WriteListing(listing)
	if err != nil {
		return
	}

	if len(args) > 1 {
		var ouf *os.File
		ouf, err = os.Create(args[1])
		if err != nil {
			return
		}
		defer func() {
			cerr := ouf.Close()
			if err == nil {
				err = cerr
			}
		}()
		_, err = listing.WriteTo(ouf)
		return
	}

	_, err = listing.WriteTo(stdout)

	return
}

func main() {
	asm := &ls8.Assembler{}

	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.BoolVar(&asm.Verbose, "v", false, "Verbose mode")
	flags.Func("D", "Predefine a label as NAME=ADDR", func(def string) error {
		return predefine(asm, def)
	})
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: %v [-v] [-D NAME=ADDR]... [infile.asm [outfile.ls8]]\n", os.Args[0])
		flags.PrintDefaults()
	}

	err := flags.Parse(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(EXIT_USAGE)
	}

	if flags.NArg() > 2 {
		flags.Usage()
		os.Exit(EXIT_USAGE)
	}

	if asm.Verbose {
		log.Printf("messages: %v", translate.Language())
	}

	err = assemble(asm, flags.Args(), os.Stdin, os.Stdout)
	if err != nil {
		source := "-"
		if flags.NArg() > 0 {
			source = flags.Arg(0)
		}
		log.Printf("%v: %v", source, err)
		os.Exit(exitCode(err))
	}
}
