package textfmt

import "testing"

func TestIntWithCommas(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234567, "-1,234,567"},
		{1000000000, "1,000,000,000"},
	}

	for _, tt := range tests {
		if got := IntWithCommas(tt.in); got != tt.want {
			t.Errorf("IntWithCommas(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFloatWithCommas(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.25, "0.25"},
		{1234.5, "1,234.50"},
		{1000000.125, "1,000,000.12"},
	}

	for _, tt := range tests {
		if got := FloatWithCommas(tt.in); got != tt.want {
			t.Errorf("FloatWithCommas(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"word", "words"},
		{"city", "cities"},
		{"day", "days"},
		{"box", "boxes"},
		{"church", "churches"},
		{"brush", "brushes"},
		{"class", "classes"},
		{"quiz", "quizes"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Pluralize(tt.in); got != tt.want {
			t.Errorf("Pluralize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCapFirst(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello world", "Hello world"},
		{"Hello", "Hello"},
		{"", ""},
		{"über", "Über"},
	}

	for _, tt := range tests {
		if got := CapFirst(tt.in); got != tt.want {
			t.Errorf("CapFirst(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMinutesSeconds(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0 minutes 0 seconds"},
		{1, "0 minutes 1 second"},
		{61, "1 minute 1 second"},
		{90.5, "1 minute 30.5 seconds"},
		{3600, "1 hour 0 minutes 0 seconds"},
		{3754.2, "1 hour 2 minutes 34.2 seconds"},
		{7322, "2 hours 2 minutes 2 seconds"},
	}

	for _, tt := range tests {
		if got := MinutesSeconds(tt.in); got != tt.want {
			t.Errorf("MinutesSeconds(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
