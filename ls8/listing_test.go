package ls8

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingRoundTrip(t *testing.T) {
	assert := assert.New(t)

	prog, err := doAssemble(t, []string{
		"MAIN:",
		"  LDI R0,MSG",
		"  LDI R1,4",
		"LOOP: LD R2,R0",
		"  PRA R2",
		"  INC R0",
		"  DEC R1",
		"  LDI R3,LOOP",
		"  JNE R3",
		"  HLT",
		"MSG: DS ab c",
		"  DB 0x0a",
	})
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	buff := &bytes.Buffer{}
	err = prog.WriteListing(buff)
	assert.NoError(err)

	bins, err := ReadListing(buff)
	assert.NoError(err)
	assert.Equal(prog.Binary(), bins)
}

func TestReadListing(t *testing.T) {
	assert := assert.New(t)

	listing := []string{
		"# A program",
		"",
		"10000010 # LDI R0,8",
		"00000000",
		"  00001000  ",
		"# LOOP (3):",
		"00000001 # HLT",
	}

	bins, err := ReadListing(strings.NewReader(strings.Join(listing, "\n")))
	assert.NoError(err)
	assert.Equal([]byte{0b10000010, 0, 8, 1}, bins)
}

func TestReadListingInvalid(t *testing.T) {
	assert := assert.New(t)

	bad := []string{
		"0000000",
		"000000001",
		"0000000x",
		"00000002 # two",
		"HLT",
	}

	for _, text := range bad {
		_, err := ReadListing(strings.NewReader("00000000\n" + text))
		assert.ErrorIs(err, ErrListingInvalid, text)

		var syntax *ErrSyntax
		if assert.True(errors.As(err, &syntax), text) {
			assert.Equal(2, syntax.LineNo)
			assert.Equal(text, syntax.Line)
		}
	}
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write(p []byte) (int, error) {
	return 0, errWrite
}

func TestWriteListingError(t *testing.T) {
	assert := assert.New(t)

	prog, err := doAssemble(t, []string{"HLT"})
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	err = prog.WriteListing(failWriter{})
	assert.ErrorIs(err, errWrite)
}
