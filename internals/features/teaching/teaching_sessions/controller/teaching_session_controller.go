// file: internals/features/teaching/teaching_sessions/controller/teaching_session_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jurnalguru_backend/internals/constants"
	sessionDTO "jurnalguru_backend/internals/features/teaching/teaching_sessions/dto"
	sessionModel "jurnalguru_backend/internals/features/teaching/teaching_sessions/model"
	sessionRepo "jurnalguru_backend/internals/features/teaching/teaching_sessions/repository"
	sessionService "jurnalguru_backend/internals/features/teaching/teaching_sessions/service"
	helper "jurnalguru_backend/internals/helpers"
)

type TeachingSessionController struct {
	DB *gorm.DB
}

func NewTeachingSessionController(db *gorm.DB) *TeachingSessionController {
	return &TeachingSessionController{DB: db}
}

var validate = validator.New()

// capacityFieldErrors: petakan error validator kapasitas ke error per field
// supaya bentuknya sama dengan error validasi request biasa.
func capacityFieldErrors(err error) (map[string][]string, bool) {
	var limitErr *sessionService.DailyLimitExceededError
	switch {
	case errors.Is(err, sessionService.ErrInvalidTimeRange):
		return map[string][]string{
			"teaching_session_end_time": {"Jam selesai harus setelah jam mulai."},
		}, true
	case errors.As(err, &limitErr):
		return map[string][]string{
			"teaching_session_end_time": {limitErr.Error()},
		}, true
	}
	return nil, false
}

// selectedDate: ambil query ?date=YYYY-MM-DD, default hari ini.
func selectedDate(c *fiber.Ctx) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, constants.ErrInvalidDateFormat)
	}
	return date, nil
}

// 🟢 POST /api/u/teaching-sessions
func (ctrl *TeachingSessionController) CreateTeachingSession(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req sessionDTO.CreateTeachingSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}
	parsed, fieldErrors := req.ParseTimes()
	if fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	session := req.ToModel(userID, parsed)

	// Cek kapasitas & insert dalam satu transaksi; baris sesama-hari dikunci
	// supaya dua request paralel tidak sama-sama lolos batas 10 jam.
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := sessionService.CheckCapacityForUpdate(
			tx, userID, parsed.Date, parsed.Start, parsed.End, nil,
		); err != nil {
			return err
		}
		return sessionRepo.Create(tx, session)
	})
	if err != nil {
		if fieldErrors, ok := capacityFieldErrors(err); ok {
			return helper.JsonValidationError(c, fieldErrors)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan sesi mengajar")
	}

	return helper.JsonCreated(c, "Sesi mengajar berhasil dicatat", sessionDTO.ToTeachingSessionResponse(*session))
}

// 🟢 GET /api/u/teaching-sessions?date=YYYY-MM-DD
// Listing harian: sesi terurut jam mulai + ringkasan total & sisa kapasitas.
func (ctrl *TeachingSessionController) GetTeachingSessions(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	date, err := selectedDate(c)
	if err != nil {
		return err
	}

	records, err := sessionRepo.ListByUserAndDate(ctrl.DB, userID, date, nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sesi mengajar")
	}
	summary := sessionService.BuildDailySummary(records)

	return helper.JsonOK(c, "Sesi mengajar berhasil diambil", sessionDTO.DailySummaryResponse{
		SelectedDate:      date.Format("2006-01-02"),
		Sessions:          sessionDTO.ToTeachingSessionResponses(summary.Sessions),
		TotalMinutes:      summary.TotalMinutes,
		TotalLabel:        helper.FormatMinutes(summary.TotalMinutes),
		RemainingMinutes:  summary.RemainingMinutes,
		RemainingLabel:    helper.FormatMinutes(summary.RemainingMinutes),
		DailyLimitReached: summary.LimitReached,
	})
}

// 🟢 GET /api/u/teaching-sessions/capacity?date=YYYY-MM-DD
func (ctrl *TeachingSessionController) GetCapacity(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	date, err := selectedDate(c)
	if err != nil {
		return err
	}

	remaining, limitReached, err := sessionService.RemainingCapacity(ctrl.DB, userID, date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung sisa kapasitas")
	}

	return helper.JsonOK(c, "Sisa kapasitas berhasil dihitung", sessionDTO.CapacityResponse{
		SelectedDate:      date.Format("2006-01-02"),
		RemainingMinutes:  remaining,
		RemainingLabel:    helper.FormatMinutes(remaining),
		DailyLimitReached: limitReached,
	})
}

// 🟢 GET /api/u/teaching-sessions/:id
func (ctrl *TeachingSessionController) GetTeachingSession(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	session, err := ctrl.findOwnedSession(c, userID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Detail sesi mengajar", sessionDTO.ToTeachingSessionResponse(*session))
}

// 🟢 PUT /api/u/teaching-sessions/:id
func (ctrl *TeachingSessionController) UpdateTeachingSession(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	session, err := ctrl.findOwnedSession(c, userID)
	if err != nil {
		return err
	}

	var req sessionDTO.UpdateTeachingSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}
	parsed, fieldErrors := req.ParseTimes()
	if fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	// Sesi yang sedang diedit dikecualikan dari hitungan kapasitas,
	// jadi memperpanjang sesi di hari yang sama tetap fair.
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := sessionService.CheckCapacityForUpdate(
			tx, userID, parsed.Date, parsed.Start, parsed.End, &session.TeachingSessionId,
		); err != nil {
			return err
		}
		sessionDTO.ApplyToModel(session, req, parsed)
		return sessionRepo.Save(tx, session)
	})
	if err != nil {
		if fieldErrors, ok := capacityFieldErrors(err); ok {
			return helper.JsonValidationError(c, fieldErrors)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui sesi mengajar")
	}

	return helper.JsonUpdated(c, "Sesi mengajar berhasil diperbarui", sessionDTO.ToTeachingSessionResponse(*session))
}

// 🟢 DELETE /api/u/teaching-sessions/:id
func (ctrl *TeachingSessionController) DeleteTeachingSession(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	session, err := ctrl.findOwnedSession(c, userID)
	if err != nil {
		return err
	}

	if err := sessionRepo.Delete(ctrl.DB, session.TeachingSessionId); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus sesi mengajar")
	}
	return helper.JsonDeleted(c, "Sesi mengajar berhasil dihapus", fiber.Map{
		"teaching_session_id": session.TeachingSessionId,
	})
}

// findOwnedSession: ambil sesi dari :id dan pastikan miliknya user.
func (ctrl *TeachingSessionController) findOwnedSession(c *fiber.Ctx, userID uuid.UUID) (*sessionModel.TeachingSessionModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	session, err := sessionRepo.FindByID(ctrl.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, constants.ErrSessionNotFound)
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil sesi mengajar")
	}
	if session.TeachingSessionUserId != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, constants.ErrSessionNotOwned)
	}
	return session, nil
}
