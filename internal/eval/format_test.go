package eval

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		v    float64
		prec int
		want string
	}{
		{0, 4, "0"},
		{0.00005, 4, "5.0000e-05"},     // below 1e-4: scientific
		{12345678901, 4, "1.2346e+10"}, // at or above 1e9: scientific
		{1e9, 4, "1.0000e+09"},
		{-0.00001234, 4, "-1.2340e-05"},
		{12.3456789, 4, "12.35"},
		{12.34, 4, "12.34"}, // trailing zeros stripped, not padded
		{12.340000, 4, "12.34"},
		{3.14159265, 4, "3.142"},
		{3.14159265, 2, "3.1"},
		{100, 4, "100"},
		{0.0001, 4, "0.0001"}, // exactly 1e-4 stays decimal
		{-42.4242, 3, "-42.4"},
		{999999999, 4, "1000000000"}, // rounds up within the decimal branch
		{1234567.89, 4, "1235000"},
		{5, 4, "5"},
	}
	for _, c := range cases {
		got := Format(c.v, c.prec)
		if got != c.want {
			t.Errorf("Format(%v, %d) = %q, want %q", c.v, c.prec, got, c.want)
		}
	}
}

func TestFormatDefault(t *testing.T) {
	if got := FormatDefault(12.3456789); got != "12.35" {
		t.Errorf("FormatDefault(12.3456789) = %q, want %q", got, "12.35")
	}
	if got := FormatDefault(0); got != "0" {
		t.Errorf("FormatDefault(0) = %q, want %q", got, "0")
	}
}
