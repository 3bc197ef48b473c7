// file: internals/features/teaching/teaching_sessions/dto/teaching_session_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	sessionModel "jurnalguru_backend/internals/features/teaching/teaching_sessions/model"
	helper "jurnalguru_backend/internals/helpers"
	"jurnalguru_backend/internals/helpers/dbtime"
)

/* =======================================================
   REQUEST DTOs (CREATE / UPDATE)
   ======================================================= */

type CreateTeachingSessionRequest struct {
	TeachingSessionDate      string  `json:"teaching_session_date" validate:"required"`
	TeachingSessionSubject   string  `json:"teaching_session_subject" validate:"required,max=255"`
	TeachingSessionClass     string  `json:"teaching_session_class" validate:"required,max=255"`
	TeachingSessionTopic     string  `json:"teaching_session_topic" validate:"required"`
	TeachingSessionStartTime string  `json:"teaching_session_start_time" validate:"required"`
	TeachingSessionEndTime   string  `json:"teaching_session_end_time" validate:"required"`
	TeachingSessionNotes     *string `json:"teaching_session_notes,omitempty"`
}

// ParsedTimes: hasil validasi tanggal & jam dari request
type ParsedTimes struct {
	Date  time.Time
	Start dbtime.Tod
	End   dbtime.Tod
}

// ParseTimes memvalidasi tanggal (format, bukan masa depan) dan jam
// (format HH:MM, end setelah start). Error dikembalikan per field supaya
// bisa langsung dikirim sebagai validation error 422.
func (r CreateTeachingSessionRequest) ParseTimes() (ParsedTimes, map[string][]string) {
	fieldErrors := map[string][]string{}
	var out ParsedTimes

	date, err := time.Parse("2006-01-02", r.TeachingSessionDate)
	if err != nil {
		fieldErrors["teaching_session_date"] = append(fieldErrors["teaching_session_date"],
			"Format tanggal tidak valid, gunakan YYYY-MM-DD.")
	} else if r.TeachingSessionDate > time.Now().Format("2006-01-02") {
		fieldErrors["teaching_session_date"] = append(fieldErrors["teaching_session_date"],
			"Tanggal mengajar tidak boleh di masa depan.")
	} else {
		out.Date = date
	}

	start, err := dbtime.Parse(r.TeachingSessionStartTime)
	if err != nil {
		fieldErrors["teaching_session_start_time"] = append(fieldErrors["teaching_session_start_time"],
			"Jam mulai harus berformat HH:MM.")
	} else {
		out.Start = start
	}

	end, err := dbtime.Parse(r.TeachingSessionEndTime)
	if err != nil {
		fieldErrors["teaching_session_end_time"] = append(fieldErrors["teaching_session_end_time"],
			"Jam selesai harus berformat HH:MM.")
	} else {
		out.End = end
	}

	if len(fieldErrors) == 0 && dbtime.MinutesBetween(out.Start, out.End) <= 0 {
		fieldErrors["teaching_session_end_time"] = append(fieldErrors["teaching_session_end_time"],
			"Jam selesai harus setelah jam mulai.")
	}

	if len(fieldErrors) > 0 {
		return ParsedTimes{}, fieldErrors
	}
	return out, nil
}

func (r CreateTeachingSessionRequest) ToModel(userID uuid.UUID, pt ParsedTimes) *sessionModel.TeachingSessionModel {
	return &sessionModel.TeachingSessionModel{
		TeachingSessionUserId:    userID,
		TeachingSessionDate:      pt.Date,
		TeachingSessionSubject:   r.TeachingSessionSubject,
		TeachingSessionClass:     r.TeachingSessionClass,
		TeachingSessionTopic:     r.TeachingSessionTopic,
		TeachingSessionStartTime: pt.Start,
		TeachingSessionEndTime:   pt.End,
		TeachingSessionNotes:     r.TeachingSessionNotes,
	}
}

// Update memakai field set yang sama dengan create (PUT penuh, sesuai form edit)
type UpdateTeachingSessionRequest = CreateTeachingSessionRequest

// ApplyToModel menimpa field model dengan isi request (untuk update)
func ApplyToModel(m *sessionModel.TeachingSessionModel, r UpdateTeachingSessionRequest, pt ParsedTimes) {
	m.TeachingSessionDate = pt.Date
	m.TeachingSessionSubject = r.TeachingSessionSubject
	m.TeachingSessionClass = r.TeachingSessionClass
	m.TeachingSessionTopic = r.TeachingSessionTopic
	m.TeachingSessionStartTime = pt.Start
	m.TeachingSessionEndTime = pt.End
	m.TeachingSessionNotes = r.TeachingSessionNotes
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type TeachingSessionResponse struct {
	TeachingSessionId        uuid.UUID  `json:"teaching_session_id"`
	TeachingSessionDate      string     `json:"teaching_session_date"`
	TeachingSessionSubject   string     `json:"teaching_session_subject"`
	TeachingSessionClass     string     `json:"teaching_session_class"`
	TeachingSessionTopic     string     `json:"teaching_session_topic"`
	TeachingSessionStartTime string     `json:"teaching_session_start_time"`
	TeachingSessionEndTime   string     `json:"teaching_session_end_time"`
	TeachingSessionNotes     *string    `json:"teaching_session_notes,omitempty"`
	DurationMinutes          int        `json:"duration_minutes"`
	DurationLabel            string     `json:"duration_label"`
	CreatedAt                time.Time  `json:"created_at"`
	UpdatedAt                *time.Time `json:"updated_at,omitempty"`
}

func ToTeachingSessionResponse(m sessionModel.TeachingSessionModel) TeachingSessionResponse {
	minutes := m.DurationMinutes()
	return TeachingSessionResponse{
		TeachingSessionId:        m.TeachingSessionId,
		TeachingSessionDate:      m.TeachingSessionDate.Format("2006-01-02"),
		TeachingSessionSubject:   m.TeachingSessionSubject,
		TeachingSessionClass:     m.TeachingSessionClass,
		TeachingSessionTopic:     m.TeachingSessionTopic,
		TeachingSessionStartTime: m.TeachingSessionStartTime.Format("15:04"),
		TeachingSessionEndTime:   m.TeachingSessionEndTime.Format("15:04"),
		TeachingSessionNotes:     m.TeachingSessionNotes,
		DurationMinutes:          minutes,
		DurationLabel:            helper.FormatMinutes(minutes),
		CreatedAt:                m.TeachingSessionCreatedAt,
		UpdatedAt:                m.TeachingSessionUpdatedAt,
	}
}

func ToTeachingSessionResponses(ms []sessionModel.TeachingSessionModel) []TeachingSessionResponse {
	out := make([]TeachingSessionResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToTeachingSessionResponse(m))
	}
	return out
}

type DailySummaryResponse struct {
	SelectedDate      string                    `json:"selected_date"`
	Sessions          []TeachingSessionResponse `json:"sessions"`
	TotalMinutes      int                       `json:"total_minutes"`
	TotalLabel        string                    `json:"total_hours"`
	RemainingMinutes  int                       `json:"remaining_minutes"`
	RemainingLabel    string                    `json:"remaining_hours"`
	DailyLimitReached bool                      `json:"daily_limit_reached"`
}

type CapacityResponse struct {
	SelectedDate      string `json:"selected_date"`
	RemainingMinutes  int    `json:"remaining_minutes"`
	RemainingLabel    string `json:"remaining_hours"`
	DailyLimitReached bool   `json:"daily_limit_reached"`
}

type RecapGroupResponse struct {
	TotalMinutes int    `json:"total_minutes"`
	TotalLabel   string `json:"total_hours"`
	Sessions     int    `json:"sessions"`
}

type RecapDayResponse struct {
	DateLabel    string `json:"date"`
	TotalMinutes int    `json:"total_minutes"`
	TotalLabel   string `json:"total_hours"`
	Sessions     int    `json:"sessions"`
}

type WeeklyRecapResponse struct {
	WeekStart      string                        `json:"week_start"`
	WeekEnd        string                        `json:"week_end"`
	SelectedDate   string                        `json:"selected_date"`
	TotalMinutes   int                           `json:"total_minutes"`
	TotalLabel     string                        `json:"total_hours"`
	TotalSessions  int                           `json:"total_sessions"`
	BySubject      map[string]RecapGroupResponse `json:"by_subject"`
	ByClass        map[string]RecapGroupResponse `json:"by_class"`
	DailyBreakdown map[string]RecapDayResponse   `json:"daily_breakdown"`
}
