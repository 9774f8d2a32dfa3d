package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Cents is a currency amount in integer cents. Sums over many values stay
// exact, unlike float64 accumulation.
type Cents int64

// ParseCents parses a decimal string such as "45.50", "120" or "-3.07".
// At most two fraction digits are accepted.
func ParseCents(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("amount is empty")
	}
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if whole == "" {
		whole = "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	var f int64
	switch len(frac) {
	case 0:
	case 1:
		f, err = strconv.ParseInt(frac, 10, 64)
		f *= 10
	case 2:
		f, err = strconv.ParseInt(frac, 10, 64)
	default:
		return 0, fmt.Errorf("amount %q has more than two fraction digits", s)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	c := Cents(w*100 + f)
	if neg {
		c = -c
	}
	return c, nil
}

// String renders the amount with two fraction digits, e.g. "181.49".
func (c Cents) String() string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Float64 converts to a float amount for display math. Not for accumulation.
func (c Cents) Float64() float64 { return float64(c) / 100 }
