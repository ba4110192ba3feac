package ls8

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// WriteListing writes the program as listing text, one record per line.
func (prog *Program) WriteListing(output io.Writer) (err error) {
	w := bufio.NewWriter(output)

	for _, rec := range prog.Records {
		_, err = w.WriteString(rec.String() + "\n")
		if err != nil {
			return
		}
	}

	return w.Flush()
}

// ReadListing loads the program image from listing text.
//
// Everything from a '#' to the end of a line is a comment. Every other
// non-blank line must be exactly eight binary digits.
func ReadListing(input io.Reader) (bins []byte, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	for scanner.Scan() {
		lineno++
		line = scanner.Text()

		text := line
		if n := strings.IndexByte(text, '#'); n >= 0 {
			text = text[:n]
		}
		text = strings.TrimSpace(text)
		if len(text) == 0 {
			continue
		}

		if len(text) != 8 {
			err = ErrListingInvalid
			return
		}

		var value uint64
		value, err = strconv.ParseUint(text, 2, 8)
		if err != nil {
			err = ErrListingInvalid
			return
		}

		bins = append(bins, uint8(value))
	}

	err = scanner.Err()

	return
}
