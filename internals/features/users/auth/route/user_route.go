package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sosmedku_backend/internals/features/users/auth/controller"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	grp := app.Group("/api/auth")
	grp.Post("/register", ctrl.Register)
	grp.Post("/login", ctrl.Login)
}
