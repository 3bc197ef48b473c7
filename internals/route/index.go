// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "jurnalguru_backend/internals/features/users/auth/route"
	userRoute "jurnalguru_backend/internals/features/users/user/route"

	teachingRoute "jurnalguru_backend/internals/features/teaching/teaching_sessions/route"
	authMiddleware "jurnalguru_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PRIVATE (USER) =====================
	// Semua rute /api/u wajib JWT valid + user aktif.
	log.Println("[INFO] Setting up PRIVATE group /api/u ...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	userRoute.UserRoutes(private, db)
	teachingRoute.TeachingSessionRoutes(private, db)
}
