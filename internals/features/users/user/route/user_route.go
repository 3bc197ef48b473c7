package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "jurnalguru_backend/internals/features/users/user/controller"
)

// UserRoutes: dipasang di bawah group /api/u yang sudah ber-JWT
func UserRoutes(r fiber.Router, db *gorm.DB) {
	userController := controller.NewUserController(db)

	uGroup := r.Group("/users")
	uGroup.Get("/me", userController.Me)
	uGroup.Patch("/me/preferences", userController.UpdatePreferences)
	uGroup.Put("/me/user-name", userController.UpdateUserName)
}
