package money

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"15.50", 1550, true},
		{"15,50", 1550, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"1234.56", 123456, true},
		{"-5", 0, false},
		{"0", 0, false},
		{"0.00", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	// round(a*100) stored, then read back /100, reproduces the input.
	for _, in := range []string{"15.50", "0.01", "999.99", "7"} {
		cents, err := ParseDecimalToCents(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		back, err := ParseDecimalToCents(FormatCents(cents)[1:])
		if err != nil || back != cents {
			t.Fatalf("%q round trip: got %d want %d (err=%v)", in, back, cents, err)
		}
	}
}

func TestFormatCents(t *testing.T) {
	cases := []struct {
		in  int64
		out string
	}{
		{0, "$0.00"},
		{50, "$0.50"},
		{300, "$3.00"},
		{1550, "$15.50"},
		{155000, "$1,550.00"},
		{123456789, "$1,234,567.89"},
		{-1550, "-$15.50"},
	}
	for _, tc := range cases {
		if got := FormatCents(tc.in); got != tc.out {
			t.Fatalf("FormatCents(%d) = %q, want %q", tc.in, got, tc.out)
		}
	}
}
