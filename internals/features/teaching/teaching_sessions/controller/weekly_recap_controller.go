// file: internals/features/teaching/teaching_sessions/controller/weekly_recap_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	sessionDTO "jurnalguru_backend/internals/features/teaching/teaching_sessions/dto"
	sessionRepo "jurnalguru_backend/internals/features/teaching/teaching_sessions/repository"
	sessionService "jurnalguru_backend/internals/features/teaching/teaching_sessions/service"
	helper "jurnalguru_backend/internals/helpers"
)

// 🟢 GET /api/u/teaching-sessions/weekly-recap?date=YYYY-MM-DD
// Rekap Senin–Minggu dari minggu yang memuat ?date (default hari ini):
// total per mata pelajaran, per kelas, dan per hari.
func (ctrl *TeachingSessionController) GetWeeklyRecap(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	date, err := selectedDate(c)
	if err != nil {
		return err
	}

	weekStart, weekEnd := sessionService.WeekBounds(date)
	records, err := sessionRepo.ListByUserBetween(ctrl.DB, userID, weekStart, weekEnd)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil rekap mingguan")
	}
	summary := sessionService.BuildWeeklySummary(records, weekStart, weekEnd)

	bySubject := make(map[string]sessionDTO.RecapGroupResponse, len(summary.BySubject))
	for subject, g := range summary.BySubject {
		bySubject[subject] = toRecapGroupResponse(g)
	}
	byClass := make(map[string]sessionDTO.RecapGroupResponse, len(summary.ByClass))
	for class, g := range summary.ByClass {
		byClass[class] = toRecapGroupResponse(g)
	}
	dailyBreakdown := make(map[string]sessionDTO.RecapDayResponse, len(summary.DailyBreakdown))
	for dateKey, d := range summary.DailyBreakdown {
		dailyBreakdown[dateKey] = sessionDTO.RecapDayResponse{
			DateLabel:    d.DateLabel,
			TotalMinutes: d.TotalMinutes,
			TotalLabel:   d.FormattedTotal,
			Sessions:     d.SessionCount,
		}
	}

	return helper.JsonOK(c, "Rekap mingguan berhasil diambil", sessionDTO.WeeklyRecapResponse{
		WeekStart:      weekStart.Format("Jan 2, 2006"),
		WeekEnd:        weekEnd.Format("Jan 2, 2006"),
		SelectedDate:   date.Format("2006-01-02"),
		TotalMinutes:   summary.TotalMinutes,
		TotalLabel:     helper.FormatMinutes(summary.TotalMinutes),
		TotalSessions:  summary.TotalSessions,
		BySubject:      bySubject,
		ByClass:        byClass,
		DailyBreakdown: dailyBreakdown,
	})
}

func toRecapGroupResponse(g sessionService.RecapGroup) sessionDTO.RecapGroupResponse {
	return sessionDTO.RecapGroupResponse{
		TotalMinutes: g.TotalMinutes,
		TotalLabel:   g.FormattedTotal,
		Sessions:     g.SessionCount,
	}
}
