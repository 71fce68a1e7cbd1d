package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS shifts (
			shift_id    INTEGER PRIMARY KEY,
			employee_id INTEGER NOT NULL,
			start_time  TEXT NOT NULL,
			end_time    TEXT NOT NULL CHECK(end_time > start_time),
			imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_shifts_employee ON shifts(employee_id, start_time);

		CREATE TABLE IF NOT EXISTS summaries (
			employee_id    INTEGER NOT NULL,
			start_of_week  TEXT NOT NULL,
			regular_hours  REAL NOT NULL CHECK(regular_hours >= 0),
			overtime_hours REAL NOT NULL CHECK(overtime_hours >= 0),
			invalid_shifts TEXT NOT NULL DEFAULT '[]',
			PRIMARY KEY (employee_id, start_of_week)
		);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
