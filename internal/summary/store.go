package summary

import (
	"context"
	"fmt"

	"github.com/javiermolinar/payweek/internal/shift"
)

// Filter narrows a summary listing. Empty fields match everything.
type Filter struct {
	EmployeeID *int64
	From       string // YYYY-MM-DD, inclusive
	To         string // YYYY-MM-DD, inclusive
}

// Store defines the storage interface for computed summaries.
type Store interface {
	// ReplaceSummaries atomically replaces all stored summaries.
	ReplaceSummaries(ctx context.Context, summaries []*Summary) error

	// ListSummaries returns summaries ordered by employee and week.
	ListSummaries(ctx context.Context, filter Filter) ([]*Summary, error)
}

// Run loads every stored shift, computes summaries and persists them.
func Run(ctx context.Context, repo shift.Repository, store Store, b *Builder) ([]*Summary, error) {
	shifts, err := repo.ListShifts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching shifts: %w", err)
	}

	summaries, err := b.Build(shifts)
	if err != nil {
		return nil, err
	}

	if err := store.ReplaceSummaries(ctx, summaries); err != nil {
		return nil, fmt.Errorf("saving summaries: %w", err)
	}
	return summaries, nil
}
