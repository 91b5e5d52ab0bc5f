package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Date
		err  bool
	}{
		{in: "2025-01-31", want: New(2025, time.January, 31)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: "not-a-date", err: true},
		{in: "2025/01/31", err: true},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if tc.err {
			if err == nil {
				t.Errorf("Parse(%q): expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2025, time.January, 31},
		{2025, time.February, 28},
		{2024, time.February, 29}, // leap year
		{2000, time.February, 29}, // leap century
		{1900, time.February, 28}, // not a leap century
		{2025, time.April, 30},
		{2025, time.December, 31},
	}
	for _, tc := range tests {
		if got := DaysIn(tc.year, tc.month); got != tc.want {
			t.Errorf("DaysIn(%d, %v) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		from   Date
		months int
		want   Date
	}{
		{MustParse("2025-02-01"), -5, MustParse("2024-09-01")},
		{MustParse("2025-06-01"), -5, MustParse("2025-01-01")},
		{MustParse("2024-12-01"), 1, MustParse("2025-01-01")},
		{MustParse("2025-01-01"), 0, MustParse("2025-01-01")},
	}
	for _, tc := range tests {
		if got := tc.from.AddMonths(tc.months); got != tc.want {
			t.Errorf("%v.AddMonths(%d) = %v, want %v", tc.from, tc.months, got, tc.want)
		}
	}
}

func TestSameMonth(t *testing.T) {
	if !SameMonth(MustParse("2025-01-05"), MustParse("2025-01-31")) {
		t.Error("expected same month for two January dates")
	}
	if SameMonth(MustParse("2025-01-05"), MustParse("2024-01-05")) {
		t.Error("expected different month across years")
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	want := MustParse("2025-03-09")
	data, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2025-03-09"` {
		t.Errorf("marshalled as %s, want %q", data, "2025-03-09")
	}
	var got Date
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %v, want %v", got, want)
	}
}
