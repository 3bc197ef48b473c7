// file: internals/features/teaching/teaching_sessions/service/recap_service.go
package service

import (
	"sort"
	"time"

	sessionModel "jurnalguru_backend/internals/features/teaching/teaching_sessions/model"
	helper "jurnalguru_backend/internals/helpers"
)

/* =======================================================
   Daily summary
   ======================================================= */

type DailySummary struct {
	Sessions         []sessionModel.TeachingSessionModel
	TotalMinutes     int
	RemainingMinutes int
	LimitReached     bool
}

// BuildDailySummary: ringkasan satu tanggal — total, sisa kapasitas,
// dan sesi terurut jam mulai.
func BuildDailySummary(records []sessionModel.TeachingSessionModel) DailySummary {
	sorted := make([]sessionModel.TeachingSessionModel, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TeachingSessionStartTime.MinutesOfDay() <
			sorted[j].TeachingSessionStartTime.MinutesOfDay()
	})

	total := SumDurations(sorted)
	remaining := RemainingMinutes(total)
	return DailySummary{
		Sessions:         sorted,
		TotalMinutes:     total,
		RemainingMinutes: remaining,
		LimitReached:     remaining <= 0,
	}
}

/* =======================================================
   Weekly recap
   ======================================================= */

type RecapGroup struct {
	TotalMinutes   int
	FormattedTotal string
	SessionCount   int
}

type RecapDay struct {
	DateLabel      string // contoh: "Monday, Mar 4, 2024"
	TotalMinutes   int
	FormattedTotal string
	SessionCount   int
}

type WeeklySummary struct {
	WeekStart      time.Time
	WeekEnd        time.Time
	TotalMinutes   int
	TotalSessions  int
	BySubject      map[string]RecapGroup
	ByClass        map[string]RecapGroup
	DailyBreakdown map[string]RecapDay // key: "2006-01-02"
}

// WeekBounds: rentang Senin–Minggu yang memuat ref.
func WeekBounds(ref time.Time) (start, end time.Time) {
	offset := (int(ref.Weekday()) + 6) % 7 // Senin = 0
	start = time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location()).
		AddDate(0, 0, -offset)
	end = start.AddDate(0, 0, 6)
	return start, end
}

// BuildWeeklySummary: agregasi rekap mingguan. Map yang dihasilkan tidak
// berurutan; pengurutan untuk tampilan jadi urusan layer presentasi.
// Window kosong menghasilkan map kosong dan total nol, bukan error.
func BuildWeeklySummary(records []sessionModel.TeachingSessionModel, weekStart, weekEnd time.Time) WeeklySummary {
	summary := WeeklySummary{
		WeekStart:      weekStart,
		WeekEnd:        weekEnd,
		BySubject:      map[string]RecapGroup{},
		ByClass:        map[string]RecapGroup{},
		DailyBreakdown: map[string]RecapDay{},
	}

	for _, rec := range records {
		minutes := rec.DurationMinutes()
		summary.TotalMinutes += minutes
		summary.TotalSessions++

		addGroup(summary.BySubject, rec.TeachingSessionSubject, minutes)
		addGroup(summary.ByClass, rec.TeachingSessionClass, minutes)

		dateKey := rec.TeachingSessionDate.Format("2006-01-02")
		day := summary.DailyBreakdown[dateKey]
		if day.SessionCount == 0 {
			day.DateLabel = rec.TeachingSessionDate.Format("Monday, Jan 2, 2006")
		}
		day.TotalMinutes += minutes
		day.FormattedTotal = helper.FormatMinutes(day.TotalMinutes)
		day.SessionCount++
		summary.DailyBreakdown[dateKey] = day
	}

	return summary
}

func addGroup(groups map[string]RecapGroup, key string, minutes int) {
	g := groups[key]
	g.TotalMinutes += minutes
	g.FormattedTotal = helper.FormatMinutes(g.TotalMinutes)
	g.SessionCount++
	groups[key] = g
}
