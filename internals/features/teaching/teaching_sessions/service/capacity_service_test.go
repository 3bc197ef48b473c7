package service

import (
	"errors"
	"testing"
	"time"

	sessionModel "jurnalguru_backend/internals/features/teaching/teaching_sessions/model"
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

// sesi dummy dengan durasi tertentu, mulai berderet dari jam 06:00
func sessionsWithDurations(t *testing.T, durations ...int) []sessionModel.TeachingSessionModel {
	t.Helper()
	out := make([]sessionModel.TeachingSessionModel, 0, len(durations))
	startMin := 6 * 60
	for _, d := range durations {
		start := time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(startMin) * time.Minute)
		end := start.Add(time.Duration(d) * time.Minute)
		out = append(out, sessionModel.TeachingSessionModel{
			TeachingSessionStartTime: dbtime.From(start),
			TeachingSessionEndTime:   dbtime.From(end),
		})
		startMin += d
	}
	return out
}

func TestSumDurations(t *testing.T) {
	if got := SumDurations(nil); got != 0 {
		t.Errorf("SumDurations(nil) = %d, want 0", got)
	}
	if got := SumDurations(sessionsWithDurations(t, 180, 240)); got != 420 {
		t.Errorf("SumDurations(180, 240) = %d, want 420", got)
	}
}

func TestRemainingMinutes(t *testing.T) {
	cases := []struct {
		existing int
		want     int
	}{
		{0, 600},
		{420, 180},
		{600, 0},
		{700, 0}, // sudah lewat batas: sisa dijepit ke 0
	}
	for _, tc := range cases {
		if got := RemainingMinutes(tc.existing); got != tc.want {
			t.Errorf("RemainingMinutes(%d) = %d, want %d", tc.existing, got, tc.want)
		}
	}
}

func TestCheckCapacity(t *testing.T) {
	t.Run("invalid time range rejected before capacity", func(t *testing.T) {
		_, err := CheckCapacity(nil, mustTod(t, "10:00"), mustTod(t, "09:00"))
		if !errors.Is(err, ErrInvalidTimeRange) {
			t.Fatalf("want ErrInvalidTimeRange, got %v", err)
		}
		_, err = CheckCapacity(nil, mustTod(t, "10:00"), mustTod(t, "10:00"))
		if !errors.Is(err, ErrInvalidTimeRange) {
			t.Fatalf("zero duration: want ErrInvalidTimeRange, got %v", err)
		}
	})

	t.Run("exactly 600 total is admissible", func(t *testing.T) {
		siblings := sessionsWithDurations(t, 180, 240) // 420 terpakai
		check, err := CheckCapacity(siblings, mustTod(t, "14:00"), mustTod(t, "17:00")) // +180
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if check.ExistingMinutes != 420 || check.CandidateMinutes != 180 {
			t.Errorf("check = %+v", check)
		}
		if check.RemainingMinutes != 180 {
			t.Errorf("RemainingMinutes = %d, want 180", check.RemainingMinutes)
		}
	})

	t.Run("one minute over 600 is rejected with remaining", func(t *testing.T) {
		siblings := sessionsWithDurations(t, 180, 240) // 420 terpakai
		_, err := CheckCapacity(siblings, mustTod(t, "14:00"), mustTod(t, "17:01")) // +181
		var limitErr *DailyLimitExceededError
		if !errors.As(err, &limitErr) {
			t.Fatalf("want DailyLimitExceededError, got %v", err)
		}
		if limitErr.RemainingMinutes != 180 {
			t.Errorf("RemainingMinutes = %d, want 180", limitErr.RemainingMinutes)
		}
	})

	t.Run("day already at limit rejects any positive candidate", func(t *testing.T) {
		siblings := sessionsWithDurations(t, 300, 300) // pas 600
		check, err := CheckCapacity(siblings, mustTod(t, "18:00"), mustTod(t, "18:01"))
		var limitErr *DailyLimitExceededError
		if !errors.As(err, &limitErr) {
			t.Fatalf("want DailyLimitExceededError, got %v", err)
		}
		if limitErr.RemainingMinutes != 0 {
			t.Errorf("RemainingMinutes = %d, want 0", limitErr.RemainingMinutes)
		}
		if !check.LimitReached {
			t.Error("LimitReached should be true")
		}
	})

	t.Run("empty day accepts a full 10-hour session", func(t *testing.T) {
		check, err := CheckCapacity(nil, mustTod(t, "07:00"), mustTod(t, "17:00"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if check.CandidateMinutes != 600 || check.RemainingMinutes != 600 {
			t.Errorf("check = %+v", check)
		}
	})

	t.Run("editing excludes own prior duration via sibling set", func(t *testing.T) {
		// Sesi 120 menit satu-satunya hari itu sedang diedit jadi 150 menit.
		// Siblings sudah tidak memuat sesi itu sendiri, jadi harus lolos.
		check, err := CheckCapacity(nil, mustTod(t, "08:00"), mustTod(t, "10:30"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if check.CandidateMinutes != 150 {
			t.Errorf("CandidateMinutes = %d, want 150", check.CandidateMinutes)
		}
	})
}

func TestDailyLimitExceededErrorMessage(t *testing.T) {
	err := &DailyLimitExceededError{RemainingMinutes: 180}
	want := "Menambah sesi ini akan melebihi batas harian 10 jam. Sisa waktu Anda untuk tanggal ini: 3h."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
