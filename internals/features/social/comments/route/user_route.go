package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sosmedku_backend/internals/features/social/comments/controller"
)

// CommentUserRoutes dipasang di group privat (sudah lewat AuthMiddleware)
func CommentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCommentController(db)

	r.Post("/posts/:post_id/comments", ctrl.Create)
	r.Delete("/comments/:id", ctrl.Delete)
}
