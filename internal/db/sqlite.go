// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/payweek/internal/shift"
	"github.com/javiermolinar/payweek/internal/summary"
)

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// SQLite implements shift.Repository and summary.Store using SQLite.
type SQLite struct {
	db     *sql.DB
	logger *zap.Logger
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	return NewWithLogger(path, zap.NewNop())
}

// NewWithLogger is like New but logs storage operations to logger.
func NewWithLogger(path string, logger *zap.Logger) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}
	s := &SQLite{db: db, logger: logger}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// SaveShifts inserts shifts in a single transaction, replacing any stored
// shift with the same ID.
func (s *SQLite) SaveShifts(ctx context.Context, shifts []*shift.Shift) error {
	if len(shifts) == 0 {
		return nil
	}
	if err := shift.ValidateAll(shifts); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO shifts (shift_id, employee_id, start_time, end_time)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(shift_id) DO UPDATE SET
			employee_id = excluded.employee_id,
			start_time  = excluded.start_time,
			end_time    = excluded.end_time
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, sh := range shifts {
		_, err := stmt.ExecContext(ctx,
			sh.ID,
			sh.EmployeeID,
			formatTime(sh.StartTime),
			formatTime(sh.EndTime),
		)
		if err != nil {
			return fmt.Errorf("inserting shift %d: %w", sh.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	s.logger.Debug("saved shifts", zap.Int("count", len(shifts)))
	return nil
}

// ListShifts returns every stored shift ordered by employee and start time.
func (s *SQLite) ListShifts(ctx context.Context) ([]*shift.Shift, error) {
	query := `
		SELECT shift_id, employee_id, start_time, end_time
		FROM shifts
		ORDER BY employee_id, start_time, shift_id
	`
	return s.queryShifts(ctx, query)
}

// ListShiftsByEmployee returns the shifts of one employee ordered by start time.
func (s *SQLite) ListShiftsByEmployee(ctx context.Context, employeeID int64) ([]*shift.Shift, error) {
	query := `
		SELECT shift_id, employee_id, start_time, end_time
		FROM shifts
		WHERE employee_id = ?
		ORDER BY start_time, shift_id
	`
	return s.queryShifts(ctx, query, employeeID)
}

func (s *SQLite) queryShifts(ctx context.Context, query string, args ...any) ([]*shift.Shift, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying shifts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	shifts := []*shift.Shift{}
	for rows.Next() {
		var (
			sh         shift.Shift
			start, end string
		)
		if err := rows.Scan(&sh.ID, &sh.EmployeeID, &start, &end); err != nil {
			return nil, fmt.Errorf("scanning shift: %w", err)
		}
		if sh.StartTime, err = parseTime(start); err != nil {
			return nil, fmt.Errorf("parsing start time of shift %d: %w", sh.ID, err)
		}
		if sh.EndTime, err = parseTime(end); err != nil {
			return nil, fmt.Errorf("parsing end time of shift %d: %w", sh.ID, err)
		}
		shifts = append(shifts, &sh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shifts: %w", err)
	}

	return shifts, nil
}

// ReplaceSummaries atomically replaces all stored summaries.
func (s *SQLite) ReplaceSummaries(ctx context.Context, summaries []*summary.Summary) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM summaries`); err != nil {
		return fmt.Errorf("clearing summaries: %w", err)
	}

	query := `
		INSERT INTO summaries (
			employee_id, start_of_week, regular_hours, overtime_hours, invalid_shifts
		) VALUES (?, ?, ?, ?, ?)
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, sum := range summaries {
		invalid := sum.InvalidShifts
		if invalid == nil {
			invalid = []int64{}
		}
		encoded, err := json.Marshal(invalid)
		if err != nil {
			return fmt.Errorf("encoding invalid shifts: %w", err)
		}

		_, err = stmt.ExecContext(ctx,
			sum.EmployeeID,
			sum.StartOfWeek,
			sum.RegularHours,
			sum.OvertimeHours,
			string(encoded),
		)
		if err != nil {
			return fmt.Errorf("inserting summary %d/%s: %w", sum.EmployeeID, sum.StartOfWeek, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	s.logger.Debug("replaced summaries", zap.Int("count", len(summaries)))
	return nil
}

// ListSummaries returns stored summaries matching filter, ordered by employee and week.
func (s *SQLite) ListSummaries(ctx context.Context, filter summary.Filter) ([]*summary.Summary, error) {
	var (
		where []string
		args  []any
	)
	if filter.EmployeeID != nil {
		where = append(where, "employee_id = ?")
		args = append(args, *filter.EmployeeID)
	}
	if filter.From != "" {
		where = append(where, "start_of_week >= ?")
		args = append(args, filter.From)
	}
	if filter.To != "" {
		where = append(where, "start_of_week <= ?")
		args = append(args, filter.To)
	}

	query := `
		SELECT employee_id, start_of_week, regular_hours, overtime_hours, invalid_shifts
		FROM summaries
	`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY employee_id, start_of_week"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying summaries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	summaries := []*summary.Summary{}
	for rows.Next() {
		var (
			sum     summary.Summary
			invalid string
		)
		err := rows.Scan(&sum.EmployeeID, &sum.StartOfWeek, &sum.RegularHours, &sum.OvertimeHours, &invalid)
		if err != nil {
			return nil, fmt.Errorf("scanning summary: %w", err)
		}
		if err := json.Unmarshal([]byte(invalid), &sum.InvalidShifts); err != nil {
			return nil, fmt.Errorf("decoding invalid shifts: %w", err)
		}
		if sum.InvalidShifts == nil {
			sum.InvalidShifts = []int64{}
		}
		summaries = append(summaries, &sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating summaries: %w", err)
	}

	return summaries, nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}
