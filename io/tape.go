package io

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"unicode"
)

// Tape provides sequential I/O over text streams. In numeric mode, input
// is comma or whitespace separated decimal values and output is written
// one value per line. In Ascii mode, each input byte is one value, and
// output values in the ASCII range are written as characters.
type Tape struct {
	Input  io.Reader
	Output io.Writer
	Ascii  bool // Set for ASCII-mode character I/O.

	reader  *bufio.Reader
	scanner *bufio.Scanner
}

var _ Channel = (*Tape)(nil)

// isSeparator returns true for bytes that delimit numeric values.
func isSeparator(b byte) bool {
	return b == ',' || unicode.IsSpace(rune(b))
}

// scanValues is a bufio.SplitFunc yielding separator delimited tokens.
func scanValues(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSeparator(data[start]) {
		start++
	}

	for n := start; n < len(data); n++ {
		if isSeparator(data[n]) {
			return n + 1, data[start:n], nil
		}
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}

	return start, nil, nil
}

// Receive returns the next input value, or ErrChannelEmpty at end of input.
func (tc *Tape) Receive() (value int64, err error) {
	if tc.Input == nil {
		err = ErrChannelEmpty
		return
	}

	if tc.Ascii {
		if tc.reader == nil {
			tc.reader = bufio.NewReader(tc.Input)
		}
		var b byte
		b, err = tc.reader.ReadByte()
		if errors.Is(err, io.EOF) {
			err = ErrChannelEmpty
		}
		value = int64(b)
		return
	}

	if tc.scanner == nil {
		tc.scanner = bufio.NewScanner(tc.Input)
		tc.scanner.Split(scanValues)
	}

	if !tc.scanner.Scan() {
		err = tc.scanner.Err()
		if err == nil {
			err = ErrChannelEmpty
		}
		return
	}

	text := tc.scanner.Text()
	value, err = strconv.ParseInt(text, 10, 64)
	if err != nil {
		err = ErrTapeValue(text)
	}

	return
}

// Send writes a value to the output stream.
func (tc *Tape) Send(value int64) (err error) {
	if tc.Output == nil {
		err = ErrChannelFull
		return
	}

	if tc.Ascii && value >= 0 && value < 128 {
		_, err = tc.Output.Write([]byte{byte(value)})
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)

	return
}

// Values returns an iterator over the remaining input values. Iteration
// stops at the end of input or on the first error.
func (tc *Tape) Values() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for {
			value, err := tc.Receive()
			if err != nil {
				return
			}
			if !yield(value) {
				return
			}
		}
	}
}
