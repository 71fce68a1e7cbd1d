// Package dateutil provides time zone aware pay week math and date parsing.
package dateutil

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata" // zone database for hosts without zoneinfo
)

// DateLayout is the calendar date format used for pay weeks.
const DateLayout = "2006-01-02"

// DefaultTimezone is the zone pay weeks are computed in.
const DefaultTimezone = "America/Chicago"

// Validation errors.
var (
	ErrInvalidDateFormat  = errors.New("date must be in YYYY-MM-DD format")
	ErrEndDateBeforeStart = errors.New("end date must be on or after start date")
	ErrUnknownZone        = errors.New("unknown time zone")
)

// Zone converts absolute instants to local civil time and derives pay weeks.
// A pay week starts at local Sunday midnight and lasts until the next one.
type Zone struct {
	loc *time.Location
}

// NewZone loads the named IANA time zone.
func NewZone(name string) (*Zone, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnknownZone)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrUnknownZone, name, err)
	}
	return &Zone{loc: loc}, nil
}

// MustZone is like NewZone but panics on error. Intended for tests and constants.
func MustZone(name string) *Zone {
	z, err := NewZone(name)
	if err != nil {
		panic(err)
	}
	return z
}

// Location returns the underlying location.
func (z *Zone) Location() *time.Location {
	return z.loc
}

// ToLocal returns t expressed in the zone's civil time.
func (z *Zone) ToLocal(t time.Time) time.Time {
	return t.In(z.loc)
}

// WeekStart returns the instant of local Sunday midnight at or before t.
func (z *Zone) WeekStart(t time.Time) time.Time {
	local := z.ToLocal(t)
	daysSinceSunday := int(local.Weekday())
	// time.Date normalizes the day overflow and resolves midnight against
	// the zone's offset on that date, so DST changes during the week are fine.
	return time.Date(local.Year(), local.Month(), local.Day()-daysSinceSunday, 0, 0, 0, 0, z.loc)
}

// NextWeekStart returns local Sunday midnight following the week containing t.
func (z *Zone) NextWeekStart(t time.Time) time.Time {
	start := z.WeekStart(t)
	return time.Date(start.Year(), start.Month(), start.Day()+7, 0, 0, 0, 0, z.loc)
}

// WeekStartDate returns the pay week of t formatted as YYYY-MM-DD.
func (z *Zone) WeekStartDate(t time.Time) string {
	return z.WeekStart(t).Format(DateLayout)
}

// SameWeek reports whether a and b fall in the same pay week.
func (z *Zone) SameWeek(a, b time.Time) bool {
	return z.WeekStart(a).Equal(z.WeekStart(b))
}

// DateRange represents a validated, inclusive date range. Zero bounds are open.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange creates a DateRange from optional YYYY-MM-DD strings.
// Empty strings leave the bound open. Returns an error if end is before start.
func NewDateRange(startDate, endDate string) (*DateRange, error) {
	var r DateRange
	var err error
	if startDate != "" {
		if r.Start, err = ParseDate(startDate); err != nil {
			return nil, err
		}
	}
	if endDate != "" {
		if r.End, err = ParseDate(endDate); err != nil {
			return nil, err
		}
	}
	if !r.Start.IsZero() && !r.End.IsZero() && r.End.Before(r.Start) {
		return nil, ErrEndDateBeforeStart
	}
	return &r, nil
}

// Contains reports whether the YYYY-MM-DD date falls within the range.
func (r *DateRange) Contains(date string) bool {
	d, err := ParseDate(date)
	if err != nil {
		return false
	}
	if !r.Start.IsZero() && d.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && d.After(r.End) {
		return false
	}
	return true
}

// ParseDate parses a date string in YYYY-MM-DD format.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}
