package domain

import (
	"errors"
	"testing"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "plain", input: "01:30", want: 90},
		{name: "zero", input: "00:00", want: 0},
		{name: "no leading zero", input: "2:05", want: 125},
		{name: "long day", input: "26:00", want: 1560},
		{name: "padded", input: "  01:15 ", want: 75},
		{name: "missing colon", input: "130", wantErr: true},
		{name: "minutes overflow", input: "01:60", wantErr: true},
		{name: "negative hours", input: "-1:00", wantErr: true},
		{name: "negative minutes", input: "01:-5", wantErr: true},
		{name: "not a number", input: "aa:bb", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidClock) {
					t.Fatalf("ParseClock(%q) error = %v, want ErrInvalidClock", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClock(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("ParseClock(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{minutes: 90, want: "01:30"},
		{minutes: 0, want: "00:00"},
		{minutes: 125, want: "02:05"},
		{minutes: 1560, want: "26:00"},
		{minutes: -5, want: "00:00"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.minutes); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"00:01", "01:30", "12:45", "99:59"} {
		minutes, err := ParseClock(s)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", s, err)
		}
		if got := FormatClock(minutes); got != s {
			t.Errorf("round trip %q -> %d -> %q", s, minutes, got)
		}
	}
}
