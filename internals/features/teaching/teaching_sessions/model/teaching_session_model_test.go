package model

import (
	"testing"

	"jurnalguru_backend/internals/helpers/dbtime"
)

func mustTod(t *testing.T, s string) dbtime.Tod {
	t.Helper()
	tod, err := dbtime.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return tod
}

func TestDurationMinutes(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"ninety minutes", "08:00", "09:30", 90},
		{"exact hour", "10:00", "11:00", 60},
		{"full day cap", "07:00", "17:00", 600},
		{"one minute", "13:59", "14:00", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := TeachingSessionModel{
				TeachingSessionStartTime: mustTod(t, tc.start),
				TeachingSessionEndTime:   mustTod(t, tc.end),
			}
			if got := m.DurationMinutes(); got != tc.want {
				t.Errorf("DurationMinutes() = %d, want %d", got, tc.want)
			}
		})
	}
}
