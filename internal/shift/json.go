package shift

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Record is the wire form of a shift.
type Record struct {
	ShiftID    *int64 `json:"ShiftID"`
	EmployeeID *int64 `json:"EmployeeID"`
	StartTime  string `json:"StartTime"`
	EndTime    string `json:"EndTime"`
}

// DecodeJSON reads a JSON array of shift records.
// Any malformed or invalid record fails the whole decode.
func DecodeJSON(r io.Reader) ([]*Shift, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding shifts: %w", err)
	}

	shifts := make([]*Shift, 0, len(records))
	for i, rec := range records {
		s, err := rec.toShift()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		shifts = append(shifts, s)
	}

	if err := ValidateAll(shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

// EncodeJSON writes shifts as a JSON array of records with UTC timestamps.
func EncodeJSON(w io.Writer, shifts []*Shift) error {
	records := make([]Record, 0, len(shifts))
	for _, s := range shifts {
		records = append(records, NewRecord(s))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding shifts: %w", err)
	}
	return nil
}

// NewRecord converts a Shift to its wire form.
func NewRecord(s *Shift) Record {
	id, emp := s.ID, s.EmployeeID
	return Record{
		ShiftID:    &id,
		EmployeeID: &emp,
		StartTime:  s.StartTime.UTC().Format(time.RFC3339Nano),
		EndTime:    s.EndTime.UTC().Format(time.RFC3339Nano),
	}
}

func (r Record) toShift() (*Shift, error) {
	switch {
	case r.ShiftID == nil:
		return nil, fmt.Errorf("ShiftID: %w", ErrMissingField)
	case r.EmployeeID == nil:
		return nil, fmt.Errorf("shift %d: EmployeeID: %w", *r.ShiftID, ErrMissingField)
	case r.StartTime == "":
		return nil, fmt.Errorf("shift %d: StartTime: %w", *r.ShiftID, ErrMissingField)
	case r.EndTime == "":
		return nil, fmt.Errorf("shift %d: EndTime: %w", *r.ShiftID, ErrMissingField)
	}
	return Parse(*r.ShiftID, *r.EmployeeID, r.StartTime, r.EndTime)
}
