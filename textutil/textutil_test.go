package textutil

import "testing"

func TestFormatPlace(t *testing.T) {
	tests := []struct {
		place    int
		expected string
	}{
		{1, "1st"},
		{2, "2nd"},
		{3, "3rd"},
		{4, "4th"},
		{10, "10th"},
		{11, "11th"},
		{12, "12th"},
		{13, "13th"},
		{14, "14th"},
		{21, "21st"},
		{22, "22nd"},
		{23, "23rd"},
		{100, "100th"},
		{101, "101st"},
		{111, "111th"},
		{112, "112th"},
		{113, "113th"},
		{121, "121st"},
		{1000, "1000th"},
	}
	for _, tt := range tests {
		if got := FormatPlace(tt.place); got != tt.expected {
			t.Errorf("FormatPlace(%d) = %q, want %q", tt.place, got, tt.expected)
		}
	}
}

func TestFormatPlaceRange(t *testing.T) {
	tests := []struct {
		name     string
		from     int
		to       int
		expected string
	}{
		{
			name:     "single place collapses",
			from:     1,
			to:       1,
			expected: "1st",
		},
		{
			name:     "short run",
			from:     4,
			to:       6,
			expected: "4th-6th",
		},
		{
			name:     "deep field",
			from:     210,
			to:       1000,
			expected: "210th-1000th",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPlaceRange(tt.from, tt.to); got != tt.expected {
				t.Errorf("FormatPlaceRange(%d, %d) = %q, want %q", tt.from, tt.to, got, tt.expected)
			}
		})
	}
}

func TestComma(t *testing.T) {
	tests := []struct {
		n        int64
		expected string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{22000, "22,000"},
		{100000, "100,000"},
		{2000000, "2,000,000"},
		{-1234, "-1,234"},
		{-999, "-999"},
	}
	for _, tt := range tests {
		if got := Comma(tt.n); got != tt.expected {
			t.Errorf("Comma(%d) = %q, want %q", tt.n, got, tt.expected)
		}
	}
}

func TestDecomma(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"2,000,000", "2000000"},
		{"1000", "1000"},
		{"", ""},
		{",,", ""},
	}
	for _, tt := range tests {
		if got := Decomma(tt.in); got != tt.expected {
			t.Errorf("Decomma(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}
