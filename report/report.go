// Package report renders finalized paths for people and programs.
//
// The text form has three lines:
//
//	Yes            success flag, "Yes" or "No"
//	16             total cost
//	[1 2 3 4 4 5]  1-based row of each step, left to right
//
// The JSON form carries the same facts plus whether the path was cut short.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathcost/pathstate"
)

// ErrUnknownFormat indicates an unsupported output format name.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects an output rendering.
type Format int

const (
	// FormatText is the three-line human form.
	FormatText Format = iota
	// FormatJSON is a single JSON document.
	FormatJSON
)

// String returns the flag spelling of f.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}

// ParseFormat maps "text" or "json" (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Document is the JSON shape of a result.
type Document struct {
	Success   bool  `json:"success"`
	TotalCost int   `json:"total_cost"`
	Complete  bool  `json:"complete"`
	Path      []int `json:"path"`
}

// NewDocument converts r into its JSON shape.
func NewDocument(r pathstate.Result) Document {
	return Document{
		Success:   r.Success,
		TotalCost: r.TotalCost,
		Complete:  r.Complete,
		Path:      Positions(r),
	}
}

// Positions returns the 1-based row of every step.
func Positions(r pathstate.Result) []int {
	out := r.Rows()
	for i := range out {
		out[i]++
	}

	return out
}

// Text renders r in the three-line form, without a trailing newline.
func Text(r pathstate.Result) string {
	var sb strings.Builder
	if r.Success {
		sb.WriteString("Yes\n")
	} else {
		sb.WriteString("No\n")
	}
	sb.WriteString(strconv.Itoa(r.TotalCost))
	sb.WriteString("\n[")
	for i, p := range Positions(r) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(p))
	}
	sb.WriteByte(']')

	return sb.String()
}

// Write renders r to w in format f, followed by a newline.
func Write(w io.Writer, r pathstate.Result, f Format) error {
	switch f {
	case FormatText:
		_, err := io.WriteString(w, Text(r)+"\n")
		return err
	case FormatJSON:
		return json.NewEncoder(w).Encode(NewDocument(r))
	}

	return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}
