package ls8

import (
	"strings"
)

// LineKind classifies a line of source text.
type LineKind int

const (
	LINE_BLANK       = LineKind(0) // Nothing but whitespace or a comment.
	LINE_LABEL       = LineKind(1) // A label declaration alone.
	LINE_INSTRUCTION = LineKind(2) // An instruction, with optional label.
	LINE_DATA_STRING = LineKind(3) // DS pseudo-op, with optional label.
	LINE_DATA_BYTE   = LineKind(4) // DB pseudo-op, with optional label.
)

// Line is a classified line of source text.
//
// Label, Opcode and Operands are upper-cased. Data holds the raw argument
// of a DS or DB pseudo-op, with its case preserved.
type Line struct {
	LineNo   int
	Kind     LineKind
	Label    string
	Opcode   string
	Operands []string
	Data     string
}

type tokenKind int

const (
	tokenEOF = tokenKind(iota)
	tokenWord
	tokenColon
	tokenComma
)

type token struct {
	kind tokenKind
	text string
}

// lexer splits a comment-free line into words, colons and commas.
type lexer struct {
	text string
	pos  int
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= 'a' && c <= 'z')
}

func isSpaceByte(c byte) bool {
	return strings.IndexByte(" \t\r\v\f", c) >= 0
}

func (lx *lexer) next() (tok token, err error) {
	for lx.pos < len(lx.text) && isSpaceByte(lx.text[lx.pos]) {
		lx.pos++
	}

	if lx.pos >= len(lx.text) {
		return
	}

	start := lx.pos
	c := lx.text[start]
	switch {
	case c == ':':
		lx.pos++
		tok = token{kind: tokenColon, text: ":"}
	case c == ',':
		lx.pos++
		tok = token{kind: tokenComma, text: ","}
	case isWordByte(c):
		for lx.pos < len(lx.text) && isWordByte(lx.text[lx.pos]) {
			lx.pos++
		}
		tok = token{kind: tokenWord, text: lx.text[start:lx.pos]}
	default:
		err = ErrGrammar
	}

	return
}

// atColon reports whether a ':' immediately follows the last token. It
// looks at raw bytes so that a pseudo-op argument is never lexed.
func (lx *lexer) atColon() bool {
	return lx.pos < len(lx.text) && lx.text[lx.pos] == ':'
}

// expect returns the next token, which must be of the given kind.
func (lx *lexer) expect(kind tokenKind) (tok token, err error) {
	tok, err = lx.next()
	if err == nil && tok.kind != kind {
		err = ErrGrammar
	}
	return
}

// rest returns the unlexed remainder of the line.
func (lx *lexer) rest() string {
	return strings.TrimSpace(lx.text[lx.pos:])
}

// StripComment removes a trailing ';' comment and surrounding whitespace.
func StripComment(text string) string {
	if n := strings.IndexByte(text, ';'); n >= 0 {
		text = text[:n]
	}
	return strings.TrimSpace(text)
}

// ParseLine classifies a single line of source text.
//
// The accepted grammar is
//
//	[label ':'] [opcode [operand [',' operand]]]
//
// where the ':' must directly follow the label, except that the DS and DB pseudo-ops take the rest of the line as a
// single unparsed argument.
func ParseLine(text string, lineno int) (line Line, err error) {
	line.LineNo = lineno

	text = StripComment(text)
	if len(text) == 0 {
		return
	}

	lx := &lexer{text: text}

	tok, err := lx.expect(tokenWord)
	if err != nil {
		return
	}

	if lx.atColon() {
		lx.next()
		line.Kind = LINE_LABEL
		line.Label = strings.ToUpper(tok.text)

		tok, err = lx.next()
		if err != nil || tok.kind == tokenEOF {
			return
		}
		if tok.kind != tokenWord {
			err = ErrGrammar
			return
		}
	}

	line.Opcode = strings.ToUpper(tok.text)

	switch line.Opcode {
	case "DS":
		line.Kind = LINE_DATA_STRING
		line.Data = lx.rest()
		return
	case "DB":
		line.Kind = LINE_DATA_BYTE
		line.Data = lx.rest()
		return
	}

	line.Kind = LINE_INSTRUCTION

	for {
		tok, err = lx.next()
		if err != nil || tok.kind == tokenEOF {
			return
		}

		if len(line.Operands) > 0 {
			if tok.kind != tokenComma || len(line.Operands) == 2 {
				err = ErrGrammar
				return
			}
			tok, err = lx.expect(tokenWord)
			if err != nil {
				return
			}
		} else if tok.kind != tokenWord {
			err = ErrGrammar
			return
		}

		line.Operands = append(line.Operands, strings.ToUpper(tok.text))
	}
}
