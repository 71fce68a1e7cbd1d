// Package summary computes weekly payroll summaries from employee shifts.
package summary

import (
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/javiermolinar/payweek/internal/dateutil"
	"github.com/javiermolinar/payweek/internal/shift"
)

// Summary holds the payroll totals of one employee for one pay week.
type Summary struct {
	EmployeeID    int64   `json:"EmployeeID"`
	StartOfWeek   string  `json:"StartOfWeek"`
	RegularHours  float64 `json:"RegularHours"`
	OvertimeHours float64 `json:"OvertimeHours"`
	InvalidShifts []int64 `json:"InvalidShifts"`
}

// TotalHours returns regular plus overtime hours.
func (s *Summary) TotalHours() float64 {
	return s.RegularHours + s.OvertimeHours
}

// Builder turns a batch of shifts into per employee, per week summaries.
type Builder struct {
	zone      *dateutil.Zone
	threshold float64
	logger    *zap.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithOvertimeThreshold sets the weekly hours after which time is overtime.
func WithOvertimeThreshold(hours float64) Option {
	return func(b *Builder) {
		b.threshold = hours
	}
}

// WithLogger sets the logger used for run and per-week diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBuilder creates a Builder computing pay weeks in zone.
func NewBuilder(zone *dateutil.Zone, opts ...Option) *Builder {
	b := &Builder{
		zone:      zone,
		threshold: DefaultOvertimeThreshold,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build validates the shifts and returns one summary per employee and pay
// week, ordered by employee ID then week. Any invalid shift aborts the run.
func (b *Builder) Build(shifts []*shift.Shift) ([]*Summary, error) {
	if err := shift.ValidateAll(shifts); err != nil {
		return nil, fmt.Errorf("validating shifts: %w", err)
	}

	byEmployee := make(map[int64][]*shift.Shift)
	for _, s := range shifts {
		byEmployee[s.EmployeeID] = append(byEmployee[s.EmployeeID], s)
	}

	employees := make([]int64, 0, len(byEmployee))
	for id := range byEmployee {
		employees = append(employees, id)
	}
	slices.Sort(employees)

	result := []*Summary{}
	for _, id := range employees {
		result = append(result, b.buildEmployee(id, byEmployee[id])...)
	}

	b.logger.Info("built payroll summaries",
		zap.Int("shifts", len(shifts)),
		zap.Int("employees", len(employees)),
		zap.Int("summaries", len(result)))

	return result, nil
}

// buildEmployee walks one employee's pay weeks in order, threading the
// carry-over of each week into the next.
func (b *Builder) buildEmployee(employeeID int64, shifts []*shift.Shift) []*Summary {
	groups := make(map[int64][]*shift.Shift)
	var weeks []time.Time
	for _, s := range shifts {
		week := b.zone.WeekStart(s.StartTime)
		key := week.Unix()
		if _, ok := groups[key]; !ok {
			weeks = append(weeks, week)
		}
		groups[key] = append(groups[key], s)
	}
	slices.SortFunc(weeks, time.Time.Compare)

	var out []*Summary
	var pending Carryover
	for _, week := range weeks {
		// Carry into a week with no shifts of its own still gets a summary.
		if pending.Amount > 0 && pending.Week.Before(week) {
			sum, _ := b.summarizeWeek(employeeID, pending.Week, nil, pending.Amount)
			out = append(out, sum)
			pending = Carryover{}
		}

		sum, next := b.summarizeWeek(employeeID, week, groups[week.Unix()], pending.Due(week))
		out = append(out, sum)
		pending = next
	}
	if pending.Amount > 0 {
		sum, _ := b.summarizeWeek(employeeID, pending.Week, nil, pending.Amount)
		out = append(out, sum)
	}
	return out
}

func (b *Builder) summarizeWeek(employeeID int64, week time.Time, group []*shift.Shift, carryIn time.Duration) (*Summary, Carryover) {
	invalid := shift.FindOverlaps(group)
	valid := shift.Without(group, invalid)

	total, carryOut := Aggregate(b.zone, valid, carryIn)
	hours := Classify(total, b.threshold)

	sum := &Summary{
		EmployeeID:    employeeID,
		StartOfWeek:   week.Format(dateutil.DateLayout),
		RegularHours:  hours.Regular,
		OvertimeHours: hours.Overtime,
		InvalidShifts: invalid,
	}

	b.logger.Debug("summarized pay week",
		zap.Int64("employee_id", employeeID),
		zap.String("week", sum.StartOfWeek),
		zap.Int("shifts", len(group)),
		zap.Int("invalid", len(invalid)),
		zap.Duration("carry_in", carryIn),
		zap.Duration("carry_out", carryOut.Amount))

	return sum, carryOut
}
