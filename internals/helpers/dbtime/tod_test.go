package dbtime

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		wantMin int
		wantErr bool
	}{
		{"short form", "09:30", 570, false},
		{"with seconds", "09:30:15", 570, false},
		{"midnight", "00:00", 0, false},
		{"end of day", "23:59", 1439, false},
		{"padded", "  08:00 ", 480, false},
		{"garbage", "nine thirty", 0, true},
		{"out of range", "25:00", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tod, err := Parse(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %v", tc.in, tod)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tc.in, err)
			}
			if got := tod.MinutesOfDay(); got != tc.wantMin {
				t.Errorf("Parse(%q).MinutesOfDay() = %d, want %d", tc.in, got, tc.wantMin)
			}
		})
	}
}

func TestMinutesBetween(t *testing.T) {
	mk := func(s string) Tod {
		tod, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		return tod
	}

	if got := MinutesBetween(mk("08:00"), mk("09:30")); got != 90 {
		t.Errorf("08:00 -> 09:30 = %d menit, want 90", got)
	}
	if got := MinutesBetween(mk("10:00"), mk("10:00")); got != 0 {
		t.Errorf("equal times = %d, want 0", got)
	}
	if got := MinutesBetween(mk("14:00"), mk("13:00")); got != -60 {
		t.Errorf("reversed order = %d, want -60", got)
	}
}

func TestFromNormalizesDateAndZone(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	src := time.Date(2024, 3, 1, 13, 45, 12, 0, loc)

	tod := From(src)
	if got := tod.MinutesOfDay(); got != 13*60+45 {
		t.Errorf("MinutesOfDay = %d, want %d", got, 13*60+45)
	}
	// detik dibuang
	if tod.Second() != 0 {
		t.Errorf("seconds should be dropped, got %d", tod.Second())
	}
}

func TestValueAndScanRoundTrip(t *testing.T) {
	tod, _ := Parse("07:15")
	v, err := tod.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "07:15:00" {
		t.Fatalf("Value = %v, want 07:15:00", v)
	}

	var back Tod
	if err := back.Scan("07:15:00"); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if back.MinutesOfDay() != tod.MinutesOfDay() {
		t.Errorf("round trip mismatch: %d vs %d", back.MinutesOfDay(), tod.MinutesOfDay())
	}
}
