package money

import "testing"

func TestRateApply(t *testing.T) {
	cases := []struct {
		rate Rate
		in   Cents
		want Cents
	}{
		{5000, 68858, 3443},  // 688.58 * 5% = 34.4290 -> 34.43
		{9975, 68858, 6869},  // 688.58 * 9.975% = 68.685855 -> 68.69
		{13000, 10000, 1300}, // 100.00 * 13%
		{9975, 0, 0},
		{5000, 10, 1},    // 0.10 * 5% = 0.005 rounds up
		{5000, 9, 0},     // 0.09 * 5% = 0.0045 rounds down
		{5000, -10, -1},  // half away from zero
		{9975, -68858, -6869},
	}
	for _, tc := range cases {
		if got := tc.rate.Apply(tc.in); got != tc.want {
			t.Fatalf("Rate(%d).Apply(%d) = %d, want %d", tc.rate, tc.in, got, tc.want)
		}
	}
}

func TestRatePercent(t *testing.T) {
	cases := []struct {
		rate Rate
		want string
	}{
		{5000, "5"},
		{9975, "9.975"},
		{13000, "13"},
		{15000, "15"},
		{10500, "10.5"},
	}
	for _, tc := range cases {
		if got := tc.rate.Percent(); got != tc.want {
			t.Fatalf("Rate(%d).Percent() = %q, want %q", tc.rate, got, tc.want)
		}
	}
}

func TestCentsString(t *testing.T) {
	cases := []struct {
		in   Cents
		want string
	}{
		{0, "0.00"},
		{859, "8.59"},
		{33000, "330.00"},
		{68858, "688.58"},
		{79170, "791.70"},
		{123456789, "1,234,567.89"},
		{-14999, "-149.99"},
	}
	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Fatalf("Cents(%d).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Cents
	}{
		{"688.58", 68858},
		{"330", 33000},
		{"1,234.5", 123450},
		{"8.59", 859},
		{"-149.99", -14999},
		{".5", 50},
		{"0.00", 0},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"", "abc", "1.234", ".", "12.3.4"} {
		if _, err := Parse(bad); err != ErrInvalidAmount {
			t.Fatalf("Parse(%q): expected ErrInvalidAmount, got %v", bad, err)
		}
	}
}
