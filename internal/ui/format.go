package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/javiermolinar/payweek/internal/summary"
)

// ReportStats holds totals across a set of summaries.
type ReportStats struct {
	Employees     int
	Weeks         int
	RegularHours  float64
	OvertimeHours float64
	InvalidShifts int
}

// Stats aggregates totals across summaries.
func Stats(summaries []*summary.Summary) ReportStats {
	var s ReportStats
	employees := make(map[int64]struct{})
	for _, sum := range summaries {
		employees[sum.EmployeeID] = struct{}{}
		s.Weeks++
		s.RegularHours += sum.RegularHours
		s.OvertimeHours += sum.OvertimeHours
		s.InvalidShifts += len(sum.InvalidShifts)
	}
	s.Employees = len(employees)
	return s
}

// FormatHours formats decimal hours with two decimals, e.g. "40.00".
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 2, 64)
}

// FormatShiftIDs joins shift IDs, truncating to maxWidth characters.
func FormatShiftIDs(ids []int64, maxWidth int) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	s := strings.Join(parts, ", ")
	if maxWidth > 3 && len(s) > maxWidth {
		s = s[:maxWidth-3] + "..."
	}
	return s
}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	numberStyle   = cellStyle.Align(lipgloss.Right)
	overtimeStyle = numberStyle.Foreground(lipgloss.Color("3")).Bold(true)
	invalidStyle  = cellStyle.Foreground(lipgloss.Color("1"))
	borderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const (
	colEmployee = iota
	colWeek
	colRegular
	colOvertime
	colInvalid
)

// RenderReport renders summaries as a bordered table. width bounds the
// invalid shifts column so the table fits the terminal.
func RenderReport(summaries []*summary.Summary, width int) string {
	// Fixed columns plus borders take roughly 60 characters.
	invalidWidth := max(width-60, 12)

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			strconv.FormatInt(s.EmployeeID, 10),
			s.StartOfWeek,
			FormatHours(s.RegularHours),
			FormatHours(s.OvertimeHours),
			FormatShiftIDs(s.InvalidShifts, invalidWidth),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		BorderRow(false).
		Headers("EMPLOYEE", "WEEK OF", "REGULAR", "OVERTIME", "INVALID SHIFTS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < 0 || row >= len(summaries) {
				return cellStyle
			}
			s := summaries[row]
			switch col {
			case colRegular:
				return numberStyle
			case colOvertime:
				if s.OvertimeHours > 0 {
					return overtimeStyle
				}
				return numberStyle
			case colInvalid:
				if len(s.InvalidShifts) > 0 {
					return invalidStyle
				}
			}
			return cellStyle
		})

	return t.Render()
}

// PrintStats writes the totals line under a report.
func PrintStats(w io.Writer, stats ReportStats) {
	regular := formatStats(fmt.Sprintf("Regular: %sh", FormatHours(stats.RegularHours)))
	overtime := fmt.Sprintf("Overtime: %sh", FormatHours(stats.OvertimeHours))
	if stats.OvertimeHours > 0 {
		overtime = formatOvertime(overtime)
	}
	invalid := fmt.Sprintf("Invalid shifts: %d", stats.InvalidShifts)
	if stats.InvalidShifts > 0 {
		invalid = formatInvalid(invalid)
	}

	fmt.Fprintf(w, "  %s  |  %s  |  %s\n", regular, overtime, invalid)
	fmt.Fprintf(w, "  %s\n", formatMuted(fmt.Sprintf("Employees: %d  |  Weeks: %d", stats.Employees, stats.Weeks)))
}
