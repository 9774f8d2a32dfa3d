package model

import "testing"

func TestParseCents(t *testing.T) {
	cases := []struct {
		in   string
		want Cents
	}{
		{"45.50", 4550},
		{"120", 12000},
		{"15.99", 1599},
		{"0.5", 50},
		{".25", 25},
		{"-3.07", -307},
		{" 7 ", 700},
		{"0", 0},
	}
	for _, tc := range cases {
		got, err := ParseCents(tc.in)
		if err != nil {
			t.Fatalf("ParseCents(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseCents(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseCentsRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "abc", "1.234", "1.2.3", "1,50", "-", ".", "-."} {
		if _, err := ParseCents(in); err == nil {
			t.Fatalf("ParseCents(%q) accepted malformed input", in)
		}
	}
}

func TestCentsString(t *testing.T) {
	cases := []struct {
		in   Cents
		want string
	}{
		{18149, "181.49"},
		{100, "1.00"},
		{5, "0.05"},
		{-307, "-3.07"},
		{0, "0.00"},
	}
	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Fatalf("Cents(%d).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCentsRoundTrip(t *testing.T) {
	for _, s := range []string{"181.49", "0.01", "99999.99"} {
		c, err := ParseCents(s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		if got := c.String(); got != s {
			t.Fatalf("round trip %q -> %q", s, got)
		}
	}
}
