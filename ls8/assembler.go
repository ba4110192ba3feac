// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package ls8

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"slices"
	"strings"
)

// MAX_LINE_SIZE is the longest source line Parse accepts, in bytes.
const MAX_LINE_SIZE = 16 << 20

// Assembler is a two pass assembler for LS-8 source text.
//
// The first pass, Feed, encodes one line at a time and records label
// addresses. The second pass, Link, substitutes the address of every
// label referenced by an LDI instruction. Parse runs both over a stream.
type Assembler struct {
	Verbose bool        // If set, verbosely logs the assembler actions.
	Records []Record    // Records emitted by the first pass.
	Symbols SymbolTable // Labels and the current address.

	predefine map[string]int // Predefined labels.
	lineno    int            // Last line number fed.
	source    map[int]string // Source of lines with unresolved symbols.
}

// Predefine defines a label before any source is assembled.
func (asm *Assembler) Predefine(name string, addr int) {
	name = strings.ToUpper(name)
	if asm.predefine == nil {
		asm.predefine = map[string]int{name: addr}
	} else {
		asm.predefine[name] = addr
	}
	asm.Symbols.Define(name, addr)
}

// Reset discards all assembler state except predefined labels.
func (asm *Assembler) Reset() {
	asm.Records = nil
	asm.lineno = 0
	clear(asm.source)
	asm.Symbols.Reset()
	for name, addr := range asm.predefine {
		asm.Symbols.Define(name, addr)
	}
}

// Parse assembles an input stream into a linked Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	asm.Reset()

	scanner := bufio.NewScanner(input)
	scanner.Buffer(nil, MAX_LINE_SIZE)
	for scanner.Scan() {
		err = asm.Feed(scanner.Text())
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	return asm.Link()
}

// Feed runs the first pass over the next line of source text.
func (asm *Assembler) Feed(text string) (err error) {
	asm.lineno++
	lineno := asm.lineno

	if asm.Verbose {
		log.Printf("%v: %v\n", lineno, text)
	}

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: StripComment(text), Err: err}
		}
	}()

	line, err := ParseLine(text, lineno)
	if err != nil {
		return
	}

	if len(line.Label) != 0 {
		if asm.Symbols.Record(line.Label) && asm.Verbose {
			log.Printf("%v: label %v redefined\n", lineno, line.Label)
		}
		label := fmt.Sprintf("%v (%v):", line.Label, asm.Symbols.Address())
		asm.emit(lineno, MakeMarker(label))
	}

	var records []Record

	switch line.Kind {
	case LINE_DATA_STRING:
		records, err = encodeString(line.Data)
	case LINE_DATA_BYTE:
		records, err = asm.encodeByte(line.Data)
	case LINE_INSTRUCTION:
		records, err = asm.encodeInstruction(line.Opcode, line.Operands)
	}
	if err != nil {
		return
	}

	for _, rec := range records {
		if rec.Kind == RECORD_SYMBOL {
			if asm.source == nil {
				asm.source = make(map[int]string)
			}
			asm.source[lineno] = StripComment(text)
		}
	}

	asm.emit(lineno, records...)

	return
}

// Link runs the second pass, resolving every label reference.
func (asm *Assembler) Link() (prog *Program, err error) {
	records := slices.Clone(asm.Records)

	for n := range records {
		rec := &records[n]
		if rec.Kind != RECORD_SYMBOL {
			continue
		}

		addr, ok := asm.Symbols.Resolve(rec.Symbol)
		if !ok {
			err = &ErrSyntax{LineNo: rec.LineNo, Line: asm.source[rec.LineNo], Err: ErrSymbolMissing(rec.Symbol)}
			return
		}

		rec.Kind = RECORD_BYTE
		rec.Value = uint8(addr & 0xff)
	}

	prog = &Program{
		Records: records,
		Label:   maps.Collect(asm.Symbols.Labels()),
	}

	return
}

// emit appends records at the current address, advancing past them.
func (asm *Assembler) emit(lineno int, records ...Record) {
	for _, rec := range records {
		rec.LineNo = lineno
		rec.Address = asm.Symbols.Address()
		asm.Records = append(asm.Records, rec)
		asm.Symbols.Advance(rec.Size())
	}
}

// charText annotates a single byte of DS string data.
func charText(c byte) string {
	switch {
	case c == ' ':
		return "[space]"
	case c > ' ' && c < 0x7f:
		return string(rune(c))
	default:
		return fmt.Sprintf("\\x%02x", c)
	}
}

// encodeString encodes the DS pseudo-op, one byte per character.
func encodeString(data string) (records []Record, err error) {
	if len(data) == 0 {
		err = ErrArgumentMissing
		return
	}

	for _, c := range []byte(data) {
		records = append(records, MakeByte(c, charText(c)))
	}

	return
}

// encodeByte encodes the DB pseudo-op.
func (asm *Assembler) encodeByte(data string) (records []Record, err error) {
	if len(data) == 0 {
		err = ErrArgumentMissing
		return
	}

	value, err := asm.valueOf(data)
	if err != nil {
		return
	}

	records = []Record{MakeByte(uint8(value&0xff), data)}

	return
}

// encodeInstruction encodes a machine instruction and its operands.
func (asm *Assembler) encodeInstruction(opcode string, operands []string) (records []Record, err error) {
	inst, ok := LookupInstruction(opcode)
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	need := inst.Arity.Operands()
	switch {
	case len(operands) < need:
		err = ErrOperandMissing
		return
	case len(operands) > need:
		err = ErrOperandUnexpected
		return
	}

	text := inst.Mnemonic
	if len(operands) > 0 {
		text += " " + strings.Join(operands, ",")
	}
	records = append(records, MakeByte(inst.Opcode, text))

	for _, word := range operands[:inst.Arity.Registers()] {
		var reg uint8
		reg, err = ParseRegister(word)
		if err != nil {
			return
		}
		records = append(records, MakeByte(reg, word))
	}

	switch inst.Arity {
	case ARITY_REG_IMM:
		word := operands[1]
		value, verr := asm.valueOf(word)
		var erange ErrNumberRange
		switch {
		case errors.As(verr, &erange):
			err = verr
			return
		case verr != nil:
			records = append(records, MakeSymbol(word, word))
		default:
			records = append(records, MakeByte(uint8(value&0xff), word))
		}
	}

	return
}
