package ls8

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolTable(t *testing.T) {
	assert := assert.New(t)

	st := &SymbolTable{}

	assert.Equal(0, st.Address())
	_, ok := st.Resolve("START")
	assert.False(ok)

	assert.False(st.Record("start"))
	st.Advance(3)
	assert.False(st.Record("Next"))
	st.Advance(2)

	assert.Equal(5, st.Address())

	addr, ok := st.Resolve("START")
	assert.True(ok)
	assert.Equal(0, addr)

	addr, ok = st.Resolve("next")
	assert.True(ok)
	assert.Equal(3, addr)

	// Last definition wins.
	assert.True(st.Record("START"))
	addr, _ = st.Resolve("START")
	assert.Equal(5, addr)

	assert.Equal(map[string]int{"START": 5, "NEXT": 3}, maps.Collect(st.Labels()))

	st.Reset()
	assert.Equal(0, st.Address())
	_, ok = st.Resolve("NEXT")
	assert.False(ok)
}

func TestSymbolTable_Define(t *testing.T) {
	assert := assert.New(t)

	st := &SymbolTable{}
	st.Advance(10)

	assert.False(st.Define("stack", 0xf4))
	assert.Equal(10, st.Address())

	addr, ok := st.Resolve("STACK")
	assert.True(ok)
	assert.Equal(0xf4, addr)
}
