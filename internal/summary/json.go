package summary

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// EncodeJSON writes summaries as a JSON array. indent is the number of spaces
// per level; zero writes compact output. InvalidShifts is always an array.
func EncodeJSON(w io.Writer, summaries []*Summary, indent int) error {
	out := make([]*Summary, 0, len(summaries))
	for _, s := range summaries {
		if s.InvalidShifts == nil {
			c := *s
			c.InvalidShifts = []int64{}
			s = &c
		}
		out = append(out, s)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding summaries: %w", err)
	}
	return nil
}

// DecodeJSON reads a JSON array of summaries.
func DecodeJSON(r io.Reader) ([]*Summary, error) {
	var summaries []*Summary
	if err := json.NewDecoder(r).Decode(&summaries); err != nil {
		return nil, fmt.Errorf("decoding summaries: %w", err)
	}
	for _, s := range summaries {
		if s.InvalidShifts == nil {
			s.InvalidShifts = []int64{}
		}
	}
	return summaries, nil
}
