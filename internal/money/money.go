package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Cents is a currency amount in integer cents. All arithmetic in the
// pricing pipeline happens on this type so repeated additions never drift.
type Cents int64

// Rate is a percentage expressed in parts per 100000, which keeps
// three-decimal rates like 9.975% exact (9975).
type Rate int64

const rateScale = 100000

// Apply returns c scaled by the rate, rounded half-up. Negative inputs
// round half-away-from-zero so -0.5 cents becomes -1.
func (r Rate) Apply(c Cents) Cents {
	product := int64(c) * int64(r)
	if product >= 0 {
		return Cents((product + rateScale/2) / rateScale)
	}
	return Cents((product - rateScale/2) / rateScale)
}

// Percent renders the rate for display labels: 5% -> "5", 9.975% -> "9.975".
func (r Rate) Percent() string {
	whole := int64(r) / 1000
	frac := int64(r) % 1000
	if frac == 0 {
		return strconv.FormatInt(whole, 10)
	}
	s := fmt.Sprintf("%d.%03d", whole, frac)
	return strings.TrimRight(s, "0")
}

// String formats cents as dollars with a thousands separator, e.g. "1,234.56".
// The sign is rendered before the digits.
func (c Cents) String() string {
	neg := c < 0
	if neg {
		c = -c
	}
	dollars := int64(c) / 100
	rem := int64(c) % 100

	digits := strconv.FormatInt(dollars, 10)
	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}

	out := fmt.Sprintf("%s.%02d", b.String(), rem)
	if neg {
		return "-" + out
	}
	return out
}

// Parse reads a decimal dollar amount ("688.58", "1,234.5", "330") into cents.
// At most two fraction digits are accepted.
func Parse(s string) (Cents, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, ErrInvalidAmount
	}
	neg := false
	if s[0] == '-' || s[0] == '+' {
		neg = s[0] == '-'
		s = s[1:]
	}

	whole := s
	frac := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		whole, frac = s[:idx], s[idx+1:]
	}
	if whole == "" && frac == "" {
		return 0, ErrInvalidAmount
	}
	if len(frac) > 2 {
		return 0, ErrInvalidAmount
	}
	for len(frac) < 2 {
		frac += "0"
	}
	if whole == "" {
		whole = "0"
	}

	d, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	c := Cents(d*100 + f)
	if neg {
		c = -c
	}
	return c, nil
}
