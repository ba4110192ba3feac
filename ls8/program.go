package ls8

import (
	"iter"
)

// Program is a linked list of records, ready for output.
type Program struct {
	Records []Record       // Records in emission order.
	Label   map[string]int // Label addresses.
}

// Bytes iterates over the address and value of every byte in the program.
func (prog *Program) Bytes() iter.Seq2[int, uint8] {
	return func(yield func(addr int, value uint8) bool) {
		for _, rec := range prog.Records {
			if rec.Kind != RECORD_BYTE {
				continue
			}
			if !yield(rec.Address, rec.Value) {
				return
			}
		}
	}
}

// Binary returns the program image.
func (prog *Program) Binary() (bins []byte) {
	for _, value := range prog.Bytes() {
		bins = append(bins, value)
	}

	return
}

// Size returns the length of the program image in bytes.
func (prog *Program) Size() (size int) {
	for _, rec := range prog.Records {
		size += rec.Size()
	}
	return
}

// Debug finds the record that emitted the byte at addr.
func (prog *Program) Debug(addr int) (rec *Record) {
	for n := range prog.Records {
		if prog.Records[n].Kind != RECORD_MARKER && prog.Records[n].Address == addr {
			rec = &prog.Records[n]
			break
		}
	}

	return
}
