package ls8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Bytes(t *testing.T) {
	assert := assert.New(t)

	prog, err := doAssemble(t, []string{
		"START: LDI R0,START",
		"END: HLT",
	})
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	var addrs []int
	var values []uint8
	for addr, value := range prog.Bytes() {
		addrs = append(addrs, addr)
		values = append(values, value)
	}

	assert.Equal([]int{0, 1, 2, 3}, addrs)
	assert.Equal([]uint8{4, 0, 0, 0b00011011}, values)
	assert.Equal(values, prog.Binary())
	assert.Equal(4, prog.Size())

	// Early exit
	for addr := range prog.Bytes() {
		assert.Equal(0, addr)
		break
	}
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog, err := doAssemble(t, []string{
		"; header",
		"LDI R1,DATA",
		"DATA:",
		"DB 9",
	})
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	rec := prog.Debug(0)
	if assert.NotNil(rec) {
		assert.Equal(2, rec.LineNo)
		assert.Equal("LDI R1,DATA", rec.Text)
	}

	rec = prog.Debug(2)
	if assert.NotNil(rec) {
		assert.Equal(RECORD_BYTE, rec.Kind)
		assert.Equal(uint8(3), rec.Value)
		assert.Equal("DATA", rec.Text)
	}

	rec = prog.Debug(3)
	if assert.NotNil(rec) {
		assert.Equal(4, rec.LineNo)
		assert.Equal(uint8(9), rec.Value)
	}

	assert.Nil(prog.Debug(4))
}

func TestRecord(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("00001010 # 0x0a", MakeByte(10, "0x0a").String())
	assert.Equal("11111111", MakeByte(255, "").String())
	assert.Equal("# LOOP (3):", MakeMarker("LOOP (3):").String())
	assert.Equal("sym:LOOP # LOOP", MakeSymbol("LOOP", "LOOP").String())

	assert.Equal(1, MakeByte(0, "").Size())
	assert.Equal(1, MakeSymbol("X", "X").Size())
	assert.Equal(0, MakeMarker("X (0):").Size())

	assert.Equal("byte", RECORD_BYTE.String())
	assert.Equal("symbol", RECORD_SYMBOL.String())
	assert.Equal("marker", RECORD_MARKER.String())
	assert.Equal("RecordKind(7)", RecordKind(7).String())
}
