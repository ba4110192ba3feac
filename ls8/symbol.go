package ls8

import (
	"iter"
	"maps"
	"strings"
)

// SymbolTable tracks label addresses and the current assembly address.
type SymbolTable struct {
	address int
	label   map[string]int
}

// Address returns the current assembly address.
func (st *SymbolTable) Address() int {
	return st.address
}

// Advance moves the current address forward by count bytes.
func (st *SymbolTable) Advance(count int) {
	st.address += count
}

// Define binds a label to an explicit address.
// It returns true if the label was already defined.
func (st *SymbolTable) Define(name string, address int) (redefined bool) {
	if st.label == nil {
		st.label = make(map[string]int, 16)
	}

	name = strings.ToUpper(name)
	_, redefined = st.label[name]
	st.label[name] = address

	return
}

// Record binds a label to the current address. A label that is recorded
// again takes the later address.
// It returns true if the label was already defined.
func (st *SymbolTable) Record(name string) (redefined bool) {
	return st.Define(name, st.address)
}

// Resolve looks up the address of a label.
func (st *SymbolTable) Resolve(name string) (address int, ok bool) {
	address, ok = st.label[strings.ToUpper(name)]
	return
}

// Labels iterates over all labels and their addresses.
func (st *SymbolTable) Labels() iter.Seq2[string, int] {
	return maps.All(st.label)
}

// Reset clears all labels and rewinds the address to zero.
func (st *SymbolTable) Reset() {
	st.address = 0
	clear(st.label)
}
