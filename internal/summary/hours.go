package summary

import (
	"time"

	"github.com/javiermolinar/payweek/internal/dateutil"
	"github.com/javiermolinar/payweek/internal/shift"
)

// DefaultOvertimeThreshold is the weekly hours after which time is overtime.
const DefaultOvertimeThreshold = 40.0

// Hours is a week total classified into regular and overtime.
type Hours struct {
	Regular  float64
	Overtime float64
}

// Total returns regular plus overtime hours.
func (h Hours) Total() float64 {
	return h.Regular + h.Overtime
}

// Classify splits a week total at the overtime threshold (in hours).
func Classify(total time.Duration, threshold float64) Hours {
	h := total.Hours()
	if h < 0 {
		h = 0
	}
	return Hours{
		Regular:  min(h, threshold),
		Overtime: max(h-threshold, 0),
	}
}

// Carryover is time owed to a later pay week by shifts crossing its boundary.
type Carryover struct {
	Week   time.Time // local Sunday midnight of the receiving week
	Amount time.Duration
}

// Due returns the carried amount if it is owed to week, else zero.
func (c Carryover) Due(week time.Time) time.Duration {
	if c.Amount > 0 && c.Week.Equal(week) {
		return c.Amount
	}
	return 0
}

// Aggregate sums valid shifts of one pay week plus time carried in from the
// previous week. It returns the week total and the carry-over owed to the
// following week.
func Aggregate(zone *dateutil.Zone, valid []*shift.Shift, carryIn time.Duration) (time.Duration, Carryover) {
	total := carryIn
	var out Carryover
	for _, s := range valid {
		p := Split(zone, s)
		total += p.Current
		if p.IsSplit() {
			out.Week = zone.NextWeekStart(s.StartTime)
			out.Amount += p.Carry
		}
	}
	return total, out
}
