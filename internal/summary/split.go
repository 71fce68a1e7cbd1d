package summary

import (
	"time"

	"github.com/javiermolinar/payweek/internal/dateutil"
	"github.com/javiermolinar/payweek/internal/shift"
)

// Portion is the part of a shift's duration credited to each pay week.
type Portion struct {
	Current time.Duration // week containing the shift start
	Carry   time.Duration // following week
}

// IsSplit returns true if part of the shift belongs to the following week.
func (p Portion) IsSplit() bool {
	return p.Carry > 0
}

// Split divides a shift at the local Sunday midnight that ends its start week.
// Durations come from instant arithmetic, so a DST change on either side of
// the boundary is reflected in wall-clock hours. A shift ending exactly at the
// boundary is not split.
func Split(zone *dateutil.Zone, s *shift.Shift) Portion {
	boundary := zone.NextWeekStart(s.StartTime)
	if !s.EndTime.After(boundary) {
		return Portion{Current: s.Duration()}
	}
	return Portion{
		Current: boundary.Sub(s.StartTime),
		Carry:   s.EndTime.Sub(boundary),
	}
}
