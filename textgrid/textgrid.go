// Package textgrid reads the textual grid format: one row per line,
// comma-separated integer costs.
//
//	3,4,1
//	6,1,8
//
// Blank lines are skipped, spaces around values are ignored, trailing commas
// are dropped, and both \n and \r\n line endings are accepted. Row lengths are not checked here; grid.New
// rejects ragged tables.
package textgrid

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrEmptyInput indicates the input holds no rows.
	ErrEmptyInput = errors.New("textgrid: input has no rows")
	// ErrBadNumber indicates a field that is not an integer.
	ErrBadNumber = errors.New("textgrid: value is not an integer")
	// ErrSyntax indicates malformed delimited text, such as stray quotes.
	ErrSyntax = errors.New("textgrid: malformed input")
)

// Parse reads all rows from r.
func Parse(r io.Reader) ([][]int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var table [][]int
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		record = trimTrailing(record)
		if len(record) == 0 {
			continue
		}

		row := make([]int, len(record))
		for i, field := range record {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				line, col := cr.FieldPos(i)
				return nil, fmt.Errorf("%w: line %d column %d: %q", ErrBadNumber, line, col, field)
			}
			row[i] = v
		}
		table = append(table, row)
	}
	if len(table) == 0 {
		return nil, ErrEmptyInput
	}

	return table, nil
}

// trimTrailing drops empty fields at the end of record, so "1,2," reads as
// two values. Empty fields between values are kept and fail conversion.
func trimTrailing(record []string) []string {
	n := len(record)
	for n > 0 && strings.TrimSpace(record[n-1]) == "" {
		n--
	}

	return record[:n]
}

// ParseString is Parse over a string.
func ParseString(s string) ([][]int, error) {
	return Parse(strings.NewReader(s))
}
