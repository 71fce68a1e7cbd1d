package summary

import (
	"testing"
	"time"

	"github.com/javiermolinar/payweek/internal/dateutil"
	"github.com/javiermolinar/payweek/internal/shift"
)

var chicago = dateutil.MustZone(dateutil.DefaultTimezone)

func mustShift(t *testing.T, id, employeeID int64, start, end string) *shift.Shift {
	t.Helper()
	s, err := shift.Parse(id, employeeID, start, end)
	if err != nil {
		t.Fatalf("shift.Parse(%d) failed: %v", id, err)
	}
	return s
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name        string
		start, end  string
		wantCurrent time.Duration
		wantCarry   time.Duration
	}{
		{
			name:        "weekday shift not split",
			start:       "2021-08-30T13:00:00Z",
			end:         "2021-08-30T21:00:00Z",
			wantCurrent: 8 * time.Hour,
		},
		{
			name:        "saturday 23:00 to sunday 01:00",
			start:       "2021-08-29T04:00:00Z",
			end:         "2021-08-29T06:00:00Z",
			wantCurrent: time.Hour,
			wantCarry:   time.Hour,
		},
		{
			name:        "saturday 23:30 to sunday 07:15",
			start:       "2021-08-29T04:30:00Z",
			end:         "2021-08-29T12:15:00Z",
			wantCurrent: 30 * time.Minute,
			wantCarry:   7*time.Hour + 15*time.Minute,
		},
		{
			name:        "ends exactly at sunday midnight",
			start:       "2021-08-29T01:00:00Z",
			end:         "2021-08-29T05:00:00Z",
			wantCurrent: 4 * time.Hour,
		},
		{
			name:        "starts exactly at sunday midnight",
			start:       "2021-08-29T05:00:00Z",
			end:         "2021-08-29T09:00:00Z",
			wantCurrent: 4 * time.Hour,
		},
		{
			// Sat 22:00 CST to Sun 04:00 CDT; 02:00-03:00 does not exist.
			name:        "spring forward sunday",
			start:       "2021-03-14T04:00:00Z",
			end:         "2021-03-14T09:00:00Z",
			wantCurrent: 2 * time.Hour,
			wantCarry:   3 * time.Hour,
		},
		{
			// Sat 22:00 CDT to Sun 02:00 CST; 01:00-02:00 happens twice.
			name:        "fall back sunday",
			start:       "2021-11-07T03:00:00Z",
			end:         "2021-11-07T08:00:00Z",
			wantCurrent: 2 * time.Hour,
			wantCarry:   3 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Split(chicago, mustShift(t, 1, 1, tt.start, tt.end))
			if p.Current != tt.wantCurrent {
				t.Errorf("Current = %v, want %v", p.Current, tt.wantCurrent)
			}
			if p.Carry != tt.wantCarry {
				t.Errorf("Carry = %v, want %v", p.Carry, tt.wantCarry)
			}
			if p.IsSplit() != (tt.wantCarry > 0) {
				t.Errorf("IsSplit = %v, want %v", p.IsSplit(), tt.wantCarry > 0)
			}
		})
	}
}

func TestSplitPreservesDuration(t *testing.T) {
	s := mustShift(t, 1, 1, "2021-11-07T03:00:00Z", "2021-11-07T08:00:00Z")
	p := Split(chicago, s)
	if p.Current+p.Carry != s.Duration() {
		t.Errorf("Current+Carry = %v, want %v", p.Current+p.Carry, s.Duration())
	}
}
