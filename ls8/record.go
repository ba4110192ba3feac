package ls8

import (
	"fmt"
)

// RecordKind is the type of an emitted code record.
type RecordKind int

//go:generate go tool stringer -linecomment -type=RecordKind
const (
	RECORD_BYTE   = RecordKind(0) // byte
	RECORD_SYMBOL = RecordKind(1) // symbol
	RECORD_MARKER = RecordKind(2) // marker
)

// Record is a single unit of assembler output.
//
// A RECORD_BYTE carries a resolved Value. A RECORD_SYMBOL is a byte whose
// value is the address of Symbol, known only after linking. A
// RECORD_MARKER is a zero sized annotation.
type Record struct {
	Kind    RecordKind
	LineNo  int    // Source line that emitted the record.
	Address int    // Address of the byte, or of the following byte for a marker.
	Value   uint8  // Resolved byte value.
	Symbol  string // Label referenced by a RECORD_SYMBOL.
	Text    string // Annotation.
}

// MakeByte creates a resolved byte record.
func MakeByte(value uint8, text string) Record {
	return Record{Kind: RECORD_BYTE, Value: value, Text: text}
}

// MakeSymbol creates a byte record whose value is the address of a label.
func MakeSymbol(name string, text string) Record {
	return Record{Kind: RECORD_SYMBOL, Symbol: name, Text: text}
}

// MakeMarker creates a zero sized annotation record.
func MakeMarker(text string) Record {
	return Record{Kind: RECORD_MARKER, Text: text}
}

// Size returns the number of bytes the record occupies.
func (rec Record) Size() int {
	if rec.Kind == RECORD_MARKER {
		return 0
	}
	return 1
}

// String returns the listing line for the record.
func (rec Record) String() string {
	switch rec.Kind {
	case RECORD_MARKER:
		return "# " + rec.Text
	case RECORD_SYMBOL:
		return fmt.Sprintf("%8v # %v", "sym:"+rec.Symbol, rec.Text)
	}

	if len(rec.Text) == 0 {
		return fmt.Sprintf("%08b", rec.Value)
	}

	return fmt.Sprintf("%08b # %v", rec.Value, rec.Text)
}
