package schedule

import (
	"testing"
	"time"
)

func mustLoadLoc(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("America/Montreal")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func hourSlot(t *testing.T, loc *time.Location, day string, hour int) RawSlot {
	t.Helper()
	date, err := ParseDate(day, loc)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	start := date.Add(time.Duration(hour) * time.Hour)
	end := start.Add(time.Hour)
	return RawSlot{
		Label: start.Format("15:04") + " - " + end.Format("15:04"),
		Start: start,
		End:   end,
	}
}

func TestMergeSlotsContiguousRun(t *testing.T) {
	loc := mustLoadLoc(t)
	raw := []RawSlot{
		hourSlot(t, loc, "2026-03-04", 8),
		hourSlot(t, loc, "2026-03-04", 9),
		hourSlot(t, loc, "2026-03-04", 10),
		hourSlot(t, loc, "2026-03-04", 11),
	}

	merged, err := MergeSlots(raw, 2)
	if err != nil {
		t.Fatalf("MergeSlots error: %v", err)
	}
	// L contiguous units and block size N give L-N+1 windows, overlaps kept.
	if len(merged) != 3 {
		t.Fatalf("expected 3 merged slots, got %d", len(merged))
	}
	if merged[0].Label != "8:00 AM" || merged[1].Label != "9:00 AM" || merged[2].Label != "10:00 AM" {
		t.Fatalf("unexpected labels: %v, %v, %v", merged[0].Label, merged[1].Label, merged[2].Label)
	}
	if !merged[0].Start.Equal(raw[0].Start) || !merged[0].End.Equal(raw[1].End) {
		t.Fatalf("first window bounds wrong: %v - %v", merged[0].Start, merged[0].End)
	}
}

func TestMergeSlotsGapBreaksWindow(t *testing.T) {
	loc := mustLoadLoc(t)
	raw := []RawSlot{
		hourSlot(t, loc, "2026-03-04", 8),
		hourSlot(t, loc, "2026-03-04", 9),
		hourSlot(t, loc, "2026-03-04", 11),
	}

	merged, err := MergeSlots(raw, 2)
	if err != nil {
		t.Fatalf("MergeSlots error: %v", err)
	}
	if len(merged) != 1 {
		t.Fatalf("expected 1 merged slot, got %d", len(merged))
	}
	if merged[0].Label != "8:00 AM" {
		t.Fatalf("unexpected label: %v", merged[0].Label)
	}
	if !merged[0].End.Equal(raw[1].End) {
		t.Fatalf("window must not span the gap: end=%v", merged[0].End)
	}
}

func TestMergeSlotsTooFewUnits(t *testing.T) {
	loc := mustLoadLoc(t)
	raw := []RawSlot{hourSlot(t, loc, "2026-03-04", 8)}

	merged, err := MergeSlots(raw, 2)
	if err != nil {
		t.Fatalf("MergeSlots error: %v", err)
	}
	if len(merged) != 0 {
		t.Fatalf("expected 0 merged slots, got %d", len(merged))
	}
}

func TestMergeSlotsLengthProperty(t *testing.T) {
	loc := mustLoadLoc(t)
	for l := 0; l <= 6; l++ {
		for n := 1; n <= 3; n++ {
			raw := make([]RawSlot, 0, l)
			for h := 0; h < l; h++ {
				raw = append(raw, hourSlot(t, loc, "2026-03-04", 8+h))
			}
			merged, err := MergeSlots(raw, n)
			if err != nil {
				t.Fatalf("MergeSlots(%d,%d) error: %v", l, n, err)
			}
			want := l - n + 1
			if want < 0 {
				want = 0
			}
			if len(merged) != want {
				t.Fatalf("MergeSlots(%d,%d): expected %d windows, got %d", l, n, want, len(merged))
			}
		}
	}
}

func TestMergeSlotsRejectsBadBlockSize(t *testing.T) {
	if _, err := MergeSlots(nil, 0); err != ErrInvalidBlockSize {
		t.Fatalf("expected ErrInvalidBlockSize, got %v", err)
	}
}

func TestTo12Hour(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"00:30", "12:30 AM"},
		{"08:00", "8:00 AM"},
		{"11:05", "11:05 AM"},
		{"12:00", "12:00 PM"},
		{"13:00", "1:00 PM"},
		{"23:59", "11:59 PM"},
	}
	for _, tc := range cases {
		got, err := To12Hour(tc.in)
		if err != nil {
			t.Fatalf("To12Hour(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("To12Hour(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if _, err := To12Hour("25:00"); err != ErrInvalidTime {
		t.Fatalf("expected ErrInvalidTime, got %v", err)
	}
}

func TestFilterDays(t *testing.T) {
	loc := mustLoadLoc(t)
	slot := MergedSlot{Label: "8:00 AM"}

	days := []Day{
		{Date: "2026-03-04", Slots: []MergedSlot{slot}}, // Wednesday
		{Date: "2026-03-05", Slots: nil},                // no windows
		{Date: "2026-03-08", Slots: []MergedSlot{slot}}, // Sunday
		{Date: "not-a-date", Slots: []MergedSlot{slot}},
	}

	filtered := FilterDays(days, ExcludedWeekday, loc)
	if len(filtered) != 1 {
		t.Fatalf("expected 1 day, got %d", len(filtered))
	}
	if filtered[0].Date != "2026-03-04" {
		t.Fatalf("unexpected day kept: %s", filtered[0].Date)
	}

	for _, d := range filtered {
		if len(d.Slots) == 0 {
			t.Fatalf("day %s kept with zero slots", d.Date)
		}
		date, err := ParseDate(d.Date, loc)
		if err != nil {
			t.Fatalf("kept day has invalid date: %s", d.Date)
		}
		if date.Weekday() == ExcludedWeekday {
			t.Fatalf("excluded weekday kept: %s", d.Date)
		}
	}
}

func TestBookingWindow(t *testing.T) {
	loc := mustLoadLoc(t)
	now := time.Date(2026, 3, 4, 15, 30, 0, 0, loc)

	start, end := BookingWindow(now, loc, 2, 42)
	if start != "2026-03-06" {
		t.Fatalf("unexpected window start: %s", start)
	}
	if end != "2026-04-15" {
		t.Fatalf("unexpected window end: %s", end)
	}
}
