package dataset

import "testing"

func TestParseFloat(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		none  bool
	}{
		{"46.5", 46.5, false},
		{" 46.5 ", 46.5, false},
		{"1,234.5", 1234.5, false},
		{"61%", 61, false},
		{"-3.2", -3.2, false},
		{"", 0, true},
		{"n/a", 0, true},
		{"46.5.1", 0, true},
	}
	for _, tc := range tests {
		got := ParseFloat(tc.input)
		if tc.none {
			if got != nil {
				t.Errorf("ParseFloat(%q) = %v, want nil", tc.input, *got)
			}
			continue
		}
		if got == nil {
			t.Errorf("ParseFloat(%q) = nil, want %v", tc.input, tc.want)
			continue
		}
		if *got != tc.want {
			t.Errorf("ParseFloat(%q) = %v, want %v", tc.input, *got, tc.want)
		}
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		input string
		want  int
		none  bool
	}{
		{"6", 6, false},
		{"6.9", 6, false},
		{"1,200", 1200, false},
		{"", 0, true},
		{"many", 0, true},
	}
	for _, tc := range tests {
		got := ParseInt(tc.input)
		if tc.none {
			if got != nil {
				t.Errorf("ParseInt(%q) = %v, want nil", tc.input, *got)
			}
			continue
		}
		if got == nil || *got != tc.want {
			t.Errorf("ParseInt(%q) = %v, want %d", tc.input, got, tc.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	for _, input := range []string{
		"2024-06-15",
		"06/15/2024",
		"June 15, 2024",
		"2024-06-15 10:30:00",
	} {
		got := ParseDate(input)
		if got == nil {
			t.Errorf("ParseDate(%q) = nil, want a date", input)
			continue
		}
		if got.Year() != 2024 || int(got.Month()) != 6 || got.Day() != 15 {
			t.Errorf("ParseDate(%q) = %v, want 2024-06-15", input, got)
		}
	}

	for _, input := range []string{"", "  ", "not-a-date", "2024-13-45"} {
		if got := ParseDate(input); got != nil {
			t.Errorf("ParseDate(%q) = %v, want nil", input, got)
		}
	}
}
