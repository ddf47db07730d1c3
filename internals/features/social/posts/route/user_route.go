package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sosmedku_backend/internals/features/social/posts/controller"
)

// PostUserRoutes dipasang di group privat (sudah lewat AuthMiddleware)
func PostUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPostController(db)

	r.Get("/feed", ctrl.Feed)
	r.Get("/users/:username/posts", ctrl.UserWall)

	posts := r.Group("/posts")
	posts.Post("/", ctrl.Create)
	posts.Delete("/:id", ctrl.Delete)
}
