package ls8

import (
	"errors"
	"strconv"

	"github.com/ezrec/ls8asm/translate"
)

var f = translate.From

var (
	// Line classification errors
	ErrGrammar = errors.New(f("line grammar mismatch"))

	// Encoding errors
	ErrOpcodeInvalid     = errors.New(f("opcode invalid"))
	ErrOperandMissing    = errors.New(f("operand missing"))
	ErrOperandUnexpected = errors.New(f("unexpected operand"))
	ErrRegisterInvalid   = errors.New(f("register invalid"))
	ErrArgumentMissing   = errors.New(f("argument missing"))
	ErrArgumentInvalid   = errors.New(f("invalid integer argument"))

	// Link errors
	ErrSymbolUnknown = errors.New(f("symbol unknown"))

	// Listing errors
	ErrListingInvalid = errors.New(f("listing line invalid"))
)

type ErrRegister string

func (err ErrRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

func (err ErrRegister) Unwrap() error {
	return ErrRegisterInvalid
}

type ErrSymbolMissing string

func (err ErrSymbolMissing) Error() string {
	return f("symbol %v unknown", string(err))
}

func (err ErrSymbolMissing) Unwrap() error {
	return ErrSymbolUnknown
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrParseNumber) Unwrap() error {
	return ErrArgumentInvalid
}

type ErrNumberRange string

func (err ErrNumberRange) Error() string {
	return f("'%v' is out of range", string(err))
}

func (err ErrNumberRange) Unwrap() error {
	return ErrArgumentInvalid
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

func (err ErrParseExpression) Unwrap() error {
	return ErrArgumentInvalid
}

// ErrSyntax locates an error at a source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %v '%v' %v", strconv.Itoa(err.LineNo), err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
