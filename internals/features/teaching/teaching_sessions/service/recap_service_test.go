package service

import (
	"testing"
	"time"

	sessionModel "jurnalguru_backend/internals/features/teaching/teaching_sessions/model"
)

func recapSession(t *testing.T, date, subject, class, start, end string) sessionModel.TeachingSessionModel {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("parse date %q: %v", date, err)
	}
	return sessionModel.TeachingSessionModel{
		TeachingSessionDate:      d,
		TeachingSessionSubject:   subject,
		TeachingSessionClass:     class,
		TeachingSessionStartTime: mustTod(t, start),
		TeachingSessionEndTime:   mustTod(t, end),
	}
}

func TestWeekBounds(t *testing.T) {
	cases := []struct {
		ref       string
		wantStart string
		wantEnd   string
	}{
		{"2024-03-06", "2024-03-04", "2024-03-10"}, // Rabu
		{"2024-03-04", "2024-03-04", "2024-03-10"}, // Senin
		{"2024-03-10", "2024-03-04", "2024-03-10"}, // Minggu
		{"2024-01-01", "2024-01-01", "2024-01-07"}, // tahun baru jatuh Senin
	}
	for _, tc := range cases {
		ref, err := time.Parse("2006-01-02", tc.ref)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.ref, err)
		}
		start, end := WeekBounds(ref)
		if got := start.Format("2006-01-02"); got != tc.wantStart {
			t.Errorf("WeekBounds(%s) start = %s, want %s", tc.ref, got, tc.wantStart)
		}
		if got := end.Format("2006-01-02"); got != tc.wantEnd {
			t.Errorf("WeekBounds(%s) end = %s, want %s", tc.ref, got, tc.wantEnd)
		}
	}
}

func TestBuildDailySummary(t *testing.T) {
	t.Run("empty day", func(t *testing.T) {
		sum := BuildDailySummary(nil)
		if sum.TotalMinutes != 0 || sum.RemainingMinutes != 600 || sum.LimitReached {
			t.Errorf("summary = %+v", sum)
		}
	})

	t.Run("sessions sorted by start time", func(t *testing.T) {
		records := []sessionModel.TeachingSessionModel{
			recapSession(t, "2024-03-04", "Science", "Grade 6B", "13:00", "14:30"),
			recapSession(t, "2024-03-04", "Mathematics", "Grade 5A", "08:00", "09:00"),
		}
		sum := BuildDailySummary(records)
		if sum.Sessions[0].TeachingSessionSubject != "Mathematics" {
			t.Errorf("first session = %s, want Mathematics", sum.Sessions[0].TeachingSessionSubject)
		}
		if sum.TotalMinutes != 150 {
			t.Errorf("TotalMinutes = %d, want 150", sum.TotalMinutes)
		}
		if sum.RemainingMinutes != 450 {
			t.Errorf("RemainingMinutes = %d, want 450", sum.RemainingMinutes)
		}
	})

	t.Run("limit reached at exactly 600", func(t *testing.T) {
		records := []sessionModel.TeachingSessionModel{
			recapSession(t, "2024-03-04", "History", "Grade 5A", "07:00", "17:00"),
		}
		sum := BuildDailySummary(records)
		if !sum.LimitReached || sum.RemainingMinutes != 0 {
			t.Errorf("summary = %+v", sum)
		}
	})
}

func TestBuildWeeklySummary(t *testing.T) {
	weekStart, _ := time.Parse("2006-01-02", "2024-03-04")
	weekEnd := weekStart.AddDate(0, 0, 6)

	t.Run("groups by subject class and day", func(t *testing.T) {
		records := []sessionModel.TeachingSessionModel{
			recapSession(t, "2024-03-04", "Math", "Grade 5A", "08:00", "09:00"),    // Senin, 60m
			recapSession(t, "2024-03-04", "Science", "Grade 6B", "10:00", "11:30"), // Senin, 90m
			recapSession(t, "2024-03-06", "Math", "Grade 5A", "13:00", "15:00"),    // Rabu, 120m
		}
		sum := BuildWeeklySummary(records, weekStart, weekEnd)

		if sum.TotalSessions != 3 {
			t.Errorf("TotalSessions = %d, want 3", sum.TotalSessions)
		}
		if sum.TotalMinutes != 270 {
			t.Errorf("TotalMinutes = %d, want 270", sum.TotalMinutes)
		}

		math := sum.BySubject["Math"]
		if math.TotalMinutes != 180 || math.SessionCount != 2 {
			t.Errorf("BySubject[Math] = %+v, want 180 minutes across 2 sessions", math)
		}
		if math.FormattedTotal != "3h" {
			t.Errorf("BySubject[Math].FormattedTotal = %q, want %q", math.FormattedTotal, "3h")
		}
		science := sum.BySubject["Science"]
		if science.TotalMinutes != 90 || science.FormattedTotal != "1h 30m" {
			t.Errorf("BySubject[Science] = %+v", science)
		}

		grade5A := sum.ByClass["Grade 5A"]
		if grade5A.TotalMinutes != 180 || grade5A.SessionCount != 2 {
			t.Errorf("ByClass[Grade 5A] = %+v", grade5A)
		}

		if len(sum.DailyBreakdown) != 2 {
			t.Fatalf("DailyBreakdown has %d days, want 2", len(sum.DailyBreakdown))
		}
		monday := sum.DailyBreakdown["2024-03-04"]
		if monday.TotalMinutes != 150 || monday.SessionCount != 2 {
			t.Errorf("DailyBreakdown[2024-03-04] = %+v", monday)
		}
		if monday.DateLabel != "Monday, Mar 4, 2024" {
			t.Errorf("DateLabel = %q, want %q", monday.DateLabel, "Monday, Mar 4, 2024")
		}
		wednesday := sum.DailyBreakdown["2024-03-06"]
		if wednesday.TotalMinutes != 120 || wednesday.DateLabel != "Wednesday, Mar 6, 2024" {
			t.Errorf("DailyBreakdown[2024-03-06] = %+v", wednesday)
		}
	})

	t.Run("empty window yields zero totals and empty maps", func(t *testing.T) {
		sum := BuildWeeklySummary(nil, weekStart, weekEnd)
		if sum.TotalMinutes != 0 || sum.TotalSessions != 0 {
			t.Errorf("summary = %+v", sum)
		}
		if len(sum.BySubject) != 0 || len(sum.ByClass) != 0 || len(sum.DailyBreakdown) != 0 {
			t.Errorf("maps should be empty: %+v", sum)
		}
		if sum.BySubject == nil || sum.ByClass == nil || sum.DailyBreakdown == nil {
			t.Error("maps should be initialized, not nil")
		}
	})
}
