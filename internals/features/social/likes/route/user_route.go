package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sosmedku_backend/internals/features/social/likes/controller"
)

// LikeUserRoutes dipasang di group privat (sudah lewat AuthMiddleware)
func LikeUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLikeController(db)

	r.Post("/posts/:post_id/like", ctrl.Toggle)
}
