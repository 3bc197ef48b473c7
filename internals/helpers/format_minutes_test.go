package helper

import "testing"

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		name    string
		minutes int
		want    string
	}{
		{"zero", 0, "0h"},
		{"minutes only", 45, "45m"},
		{"exact hour", 60, "1h"},
		{"hour and minutes", 90, "1h 30m"},
		{"multiple hours", 600, "10h"},
		{"long mixed", 605, "10h 5m"},
		{"single minute", 1, "1m"},
		{"negative clamps to zero", -15, "0h"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatMinutes(tc.minutes); got != tc.want {
				t.Errorf("FormatMinutes(%d) = %q, want %q", tc.minutes, got, tc.want)
			}
		})
	}
}
