// Package shift defines the work shift type and per-employee overlap detection.
package shift

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors.
var (
	ErrInvalidTimestamp = errors.New("timestamp must be RFC3339 with a UTC or offset designator")
	ErrEndBeforeStart   = errors.New("end time must be after start time")
	ErrMissingField     = errors.New("required field is missing")
	ErrDuplicateID      = errors.New("duplicate shift id")
)

// ParseError reports a malformed field on a shift record.
type ParseError struct {
	ShiftID int64
	Field   string
	Value   string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("shift %d: parsing %s %q: %v", e.ShiftID, e.Field, e.Value, e.Err)
}

// Unwrap lets errors.Is match both ErrInvalidTimestamp and the underlying cause.
func (e *ParseError) Unwrap() []error {
	return []error{ErrInvalidTimestamp, e.Err}
}

// Shift is a single block of time worked by an employee.
// StartTime and EndTime are absolute instants; EndTime is always after StartTime.
type Shift struct {
	ID         int64
	EmployeeID int64
	StartTime  time.Time
	EndTime    time.Time
}

// New creates a Shift with validation.
func New(id, employeeID int64, start, end time.Time) (*Shift, error) {
	s := &Shift{
		ID:         id,
		EmployeeID: employeeID,
		StartTime:  start,
		EndTime:    end,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Parse creates a Shift from RFC3339 start and end strings.
func Parse(id, employeeID int64, start, end string) (*Shift, error) {
	startTime, err := ParseTimestamp(start)
	if err != nil {
		return nil, &ParseError{ShiftID: id, Field: "StartTime", Value: start, Err: err}
	}
	endTime, err := ParseTimestamp(end)
	if err != nil {
		return nil, &ParseError{ShiftID: id, Field: "EndTime", Value: end, Err: err}
	}
	return New(id, employeeID, startTime, endTime)
}

// ParseTimestamp parses an RFC3339 timestamp. Fractional seconds are accepted.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// Validate checks the shift invariants.
func (s *Shift) Validate() error {
	if !s.EndTime.After(s.StartTime) {
		return fmt.Errorf("shift %d: %w", s.ID, ErrEndBeforeStart)
	}
	return nil
}

// Duration returns the absolute elapsed time of the shift.
func (s *Shift) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// OverlapsWith returns true if both shifts belong to the same employee and
// their half-open intervals [start, end) intersect. Touching endpoints do not overlap.
func (s *Shift) OverlapsWith(other *Shift) bool {
	if other == nil || s.EmployeeID != other.EmployeeID {
		return false
	}
	return TimesOverlap(s.StartTime, s.EndTime, other.StartTime, other.EndTime)
}

// TimesOverlap returns true if [start1, end1) and [start2, end2) intersect.
// Two ranges overlap if: start1 < end2 AND start2 < end1
func TimesOverlap(start1, end1, start2, end2 time.Time) bool {
	return start1.Before(end2) && start2.Before(end1)
}

// ValidateAll validates every shift and rejects duplicate IDs.
func ValidateAll(shifts []*Shift) error {
	seen := make(map[int64]struct{}, len(shifts))
	for _, s := range shifts {
		if err := s.Validate(); err != nil {
			return err
		}
		if _, ok := seen[s.ID]; ok {
			return fmt.Errorf("shift %d: %w", s.ID, ErrDuplicateID)
		}
		seen[s.ID] = struct{}{}
	}
	return nil
}
