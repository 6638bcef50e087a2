// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseProgram reads a program encoded as comma-separated base-10 integers.
// Line breaks and spaces around values are ignored.
func ParseProgram(r io.Reader) (program []int64, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	for {
		var record []string
		record, err = reader.Read()
		if errors.Is(err, io.EOF) {
			err = nil
			break
		}
		if err != nil {
			return
		}

		for _, field := range record {
			field = strings.TrimSpace(field)
			if len(field) == 0 {
				// Trailing comma at the end of a line.
				continue
			}
			var value int64
			value, err = strconv.ParseInt(field, 10, 64)
			if err != nil {
				err = ErrSyntax{Index: len(program), Text: field, Err: err}
				return
			}
			program = append(program, value)
		}
	}

	if len(program) == 0 {
		err = ErrProgramEmpty
	}

	return
}

// LoadProgram reads a program file.
func LoadProgram(path string) (program []int64, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return ParseProgram(inf)
}
