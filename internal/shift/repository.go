package shift

import "context"

// Repository defines the storage interface for shifts.
type Repository interface {
	// SaveShifts inserts or replaces shifts by ID in a single batch.
	SaveShifts(ctx context.Context, shifts []*Shift) error

	// ListShifts returns every stored shift ordered by employee and start time.
	ListShifts(ctx context.Context) ([]*Shift, error)

	// ListShiftsByEmployee returns the shifts of one employee ordered by start time.
	ListShiftsByEmployee(ctx context.Context, employeeID int64) ([]*Shift, error)

	// Close releases any resources held by the repository.
	Close() error
}
