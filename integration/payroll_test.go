package integration

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/javiermolinar/payweek/internal/dateutil"
	"github.com/javiermolinar/payweek/internal/db"
	"github.com/javiermolinar/payweek/internal/shift"
	"github.com/javiermolinar/payweek/internal/summary"
)

// dataset covers a Sunday midnight split, a carry-only week, the fall back
// DST change and a shift ending exactly on the week boundary.
const dataset = `[
  {"ShiftID": 100, "EmployeeID": 20, "StartTime": "2021-08-29T02:00:00.000000Z", "EndTime": "2021-08-29T08:00:00.000000Z"},
  {"ShiftID": 101, "EmployeeID": 20, "StartTime": "2021-08-30T14:00:00.000000Z", "EndTime": "2021-08-30T22:00:00.000000Z"},
  {"ShiftID": 200, "EmployeeID": 30, "StartTime": "2021-09-05T03:00:00.000000Z", "EndTime": "2021-09-05T09:00:00.000000Z"},
  {"ShiftID": 300, "EmployeeID": 40, "StartTime": "2021-11-07T03:00:00.000000Z", "EndTime": "2021-11-07T09:00:00.000000Z"},
  {"ShiftID": 400, "EmployeeID": 50, "StartTime": "2021-08-28T23:00:00.000000Z", "EndTime": "2021-08-29T05:00:00.000000Z"}
]`

var datasetSummaries = []*summary.Summary{
	{EmployeeID: 20, StartOfWeek: "2021-08-22", RegularHours: 3, InvalidShifts: []int64{}},
	{EmployeeID: 20, StartOfWeek: "2021-08-29", RegularHours: 11, InvalidShifts: []int64{}},
	{EmployeeID: 30, StartOfWeek: "2021-08-29", RegularHours: 2, InvalidShifts: []int64{}},
	{EmployeeID: 30, StartOfWeek: "2021-09-05", RegularHours: 4, InvalidShifts: []int64{}},
	{EmployeeID: 40, StartOfWeek: "2021-10-31", RegularHours: 2, InvalidShifts: []int64{}},
	{EmployeeID: 40, StartOfWeek: "2021-11-07", RegularHours: 4, InvalidShifts: []int64{}},
	{EmployeeID: 50, StartOfWeek: "2021-08-22", RegularHours: 6, InvalidShifts: []int64{}},
}

// openRepo creates a fresh repository for each test with automatic cleanup.
func openRepo(t *testing.T) *db.SQLite {
	t.Helper()
	repo, err := db.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func newBuilder() *summary.Builder {
	return summary.NewBuilder(dateutil.MustZone(dateutil.DefaultTimezone))
}

func importDataset(t *testing.T, repo *db.SQLite, data string) []*shift.Shift {
	t.Helper()
	shifts, err := shift.DecodeJSON(strings.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	if err := repo.SaveShifts(context.Background(), shifts); err != nil {
		t.Fatalf("SaveShifts failed: %v", err)
	}
	return shifts
}

func TestRun_Dataset(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()
	importDataset(t, repo, dataset)

	got, err := summary.Run(ctx, repo, repo, newBuilder())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if diff := cmp.Diff(datasetSummaries, got); diff != "" {
		t.Errorf("Run mismatch (-want +got):\n%s", diff)
	}

	stored, err := repo.ListSummaries(ctx, summary.Filter{})
	if err != nil {
		t.Fatalf("ListSummaries failed: %v", err)
	}
	if diff := cmp.Diff(datasetSummaries, stored); diff != "" {
		t.Errorf("stored mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_MatchesDirectBuild(t *testing.T) {
	repo := openRepo(t)
	shifts := importDataset(t, repo, dataset)

	direct, err := newBuilder().Build(shifts)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	stored, err := summary.Run(context.Background(), repo, repo, newBuilder())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var a, b bytes.Buffer
	if err := summary.EncodeJSON(&a, direct, 2); err != nil {
		t.Fatalf("EncodeJSON failed: %v", err)
	}
	if err := summary.EncodeJSON(&b, stored, 2); err != nil {
		t.Fatalf("EncodeJSON failed: %v", err)
	}
	if diff := cmp.Diff(a.String(), b.String()); diff != "" {
		t.Errorf("database round trip changed output (-direct +stored):\n%s", diff)
	}
}

func TestRun_ReimportReplacesSummaries(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()
	importDataset(t, repo, dataset)

	if _, err := summary.Run(ctx, repo, repo, newBuilder()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Shift 200 moves to employee 20 and shift 101 now overlaps it, so the
	// carry of shift 200 is dropped and employee 30 has nothing left.
	importDataset(t, repo, `[
  {"ShiftID": 101, "EmployeeID": 20, "StartTime": "2021-09-05T04:00:00Z", "EndTime": "2021-09-05T07:00:00Z"},
  {"ShiftID": 200, "EmployeeID": 20, "StartTime": "2021-09-05T03:00:00Z", "EndTime": "2021-09-05T09:00:00Z"}
]`)

	if _, err := summary.Run(ctx, repo, repo, newBuilder()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	employee := int64(20)
	got, err := repo.ListSummaries(ctx, summary.Filter{EmployeeID: &employee})
	if err != nil {
		t.Fatalf("ListSummaries failed: %v", err)
	}
	want := []*summary.Summary{
		{EmployeeID: 20, StartOfWeek: "2021-08-22", RegularHours: 3, InvalidShifts: []int64{}},
		{EmployeeID: 20, StartOfWeek: "2021-08-29", RegularHours: 3, InvalidShifts: []int64{200, 101}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListSummaries mismatch (-want +got):\n%s", diff)
	}

	week, err := repo.ListSummaries(ctx, summary.Filter{From: "2021-08-29", To: "2021-09-05"})
	if err != nil {
		t.Fatalf("ListSummaries failed: %v", err)
	}
	if len(week) != 1 || week[0].EmployeeID != 20 {
		t.Errorf("got %v, want only employee 20 after 2021-08-29", week)
	}
}
