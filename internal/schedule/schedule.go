package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// SlotBlocksNeeded is how many consecutive one-hour units make one bookable
// appointment window.
const SlotBlocksNeeded = 2

// ExcludedWeekday is the day the crew never works.
const ExcludedWeekday = time.Sunday

var (
	ErrInvalidDate      = errors.New("invalid date format")
	ErrInvalidTime      = errors.New("invalid time format")
	ErrInvalidBlockSize = errors.New("invalid block size")
)

// RawSlot is one fixed-duration bookable unit as reported by the dispatch
// backend. Already-booked units are simply absent from the day, not marked.
type RawSlot struct {
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// MergedSlot is a contiguous run of raw units presented to the customer as one
// arrival window.
type MergedSlot struct {
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Day holds one calendar day's bookable windows.
type Day struct {
	Date  string       `json:"date"`
	Slots []MergedSlot `json:"slots"`
}

func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// To12Hour converts a 24-hour "HH:MM" clock string to "H:MM AM/PM".
// Hours 0 and 12 both render as 12; minutes keep their zero padding.
func To12Hour(clock string) (string, error) {
	tm, err := time.Parse("15:04", strings.TrimSpace(clock))
	if err != nil {
		return "", ErrInvalidTime
	}
	h := tm.Hour()
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	hour := h % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, tm.Minute(), suffix), nil
}

// startClock extracts the 24-hour start time from a raw slot label shaped
// like "13:00 - 14:00".
func startClock(label string) string {
	if idx := strings.Index(label, " - "); idx >= 0 {
		return strings.TrimSpace(label[:idx])
	}
	return strings.TrimSpace(label)
}

// MergeSlots slides a window of blockSize consecutive raw units across the
// day and emits one merged slot per window whose unit boundaries touch
// exactly. Overlapping windows are kept: if units [0,1] and [1,2] are both
// contiguous the customer may pick either the 9-11 or the 10-12 window.
func MergeSlots(raw []RawSlot, blockSize int) ([]MergedSlot, error) {
	if blockSize <= 0 {
		return nil, ErrInvalidBlockSize
	}

	merged := make([]MergedSlot, 0)
	for i := 0; i+blockSize <= len(raw); i++ {
		contiguous := true
		end := raw[i].End
		for k := 1; k < blockSize; k++ {
			prev := raw[i+k-1]
			cur := raw[i+k]
			if !prev.End.Equal(cur.Start) {
				contiguous = false
				break
			}
			end = cur.End
		}
		if !contiguous {
			continue
		}

		label, err := To12Hour(startClock(raw[i].Label))
		if err != nil {
			return nil, err
		}
		merged = append(merged, MergedSlot{
			Label: label,
			Start: raw[i].Start,
			End:   end,
		})
	}
	return merged, nil
}

// FilterDays drops days with no merged slots and days falling on the excluded
// weekday. Days whose date fails to parse are dropped as well.
func FilterDays(days []Day, excluded time.Weekday, loc *time.Location) []Day {
	filtered := make([]Day, 0, len(days))
	for _, d := range days {
		if len(d.Slots) == 0 {
			continue
		}
		date, err := ParseDate(d.Date, loc)
		if err != nil {
			continue
		}
		if date.Weekday() == excluded {
			continue
		}
		filtered = append(filtered, d)
	}
	return filtered
}

// BookingWindow derives the date range for an availability request: the first
// bookable day after the lead time through the end of the horizon.
func BookingWindow(now time.Time, loc *time.Location, leadDays, horizonDays int) (string, string) {
	today := time.Date(now.In(loc).Year(), now.In(loc).Month(), now.In(loc).Day(), 0, 0, 0, 0, loc)
	start := today.AddDate(0, 0, leadDays)
	end := today.AddDate(0, 0, horizonDays)
	return FormatDate(start), FormatDate(end)
}
