// file: internals/features/teaching/teaching_sessions/route/teaching_session_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionController "jurnalguru_backend/internals/features/teaching/teaching_sessions/controller"
)

// TeachingSessionRoutes: /api/u/teaching-sessions (sudah di belakang auth middleware).
// Rute statis (weekly-recap, capacity) didaftarkan sebelum :id supaya tidak tertelan.
func TeachingSessionRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := sessionController.NewTeachingSessionController(db)

	sessions := r.Group("/teaching-sessions")
	sessions.Post("/", ctrl.CreateTeachingSession)
	sessions.Get("/", ctrl.GetTeachingSessions)
	sessions.Get("/weekly-recap", ctrl.GetWeeklyRecap)
	sessions.Get("/capacity", ctrl.GetCapacity)
	sessions.Get("/:id", ctrl.GetTeachingSession)
	sessions.Put("/:id", ctrl.UpdateTeachingSession)
	sessions.Delete("/:id", ctrl.DeleteTeachingSession)
}
