package summary

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeJSON(t *testing.T) {
	summaries := []*Summary{
		{EmployeeID: 456, StartOfWeek: "2021-08-22", RegularHours: 20.56, InvalidShifts: []int64{123, 234}},
		{EmployeeID: 457, StartOfWeek: "2021-08-22", RegularHours: 40, OvertimeHours: 2.5},
	}

	var buf bytes.Buffer
	if err := EncodeJSON(&buf, summaries, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `[
  {
    "EmployeeID": 456,
    "StartOfWeek": "2021-08-22",
    "RegularHours": 20.56,
    "OvertimeHours": 0,
    "InvalidShifts": [
      123,
      234
    ]
  },
  {
    "EmployeeID": 457,
    "StartOfWeek": "2021-08-22",
    "RegularHours": 40,
    "OvertimeHours": 2.5,
    "InvalidShifts": []
  }
]
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("EncodeJSON mismatch (-want +got):\n%s", diff)
	}
	if summaries[1].InvalidShifts != nil {
		t.Error("EncodeJSON should not mutate its input")
	}
}

func TestEncodeJSON_Compact(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, []*Summary{}, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("got %q, want []", got)
	}
}

func TestDecodeJSON(t *testing.T) {
	input := `[{"EmployeeID": 1, "StartOfWeek": "2021-08-22", "RegularHours": 8, "OvertimeHours": 0, "InvalidShifts": null}]`
	got, err := DecodeJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []*Summary{{EmployeeID: 1, StartOfWeek: "2021-08-22", RegularHours: 8, InvalidShifts: []int64{}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DecodeJSON mismatch (-want +got):\n%s", diff)
	}

	if _, err := DecodeJSON(strings.NewReader("{")); err == nil {
		t.Error("expected error for truncated input")
	}
}
