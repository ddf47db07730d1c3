package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	commentRoute "sosmedku_backend/internals/features/social/comments/route"
	likeRoute "sosmedku_backend/internals/features/social/likes/route"
	postRoute "sosmedku_backend/internals/features/social/posts/route"
	authRoute "sosmedku_backend/internals/features/users/auth/route"
	authMiddleware "sosmedku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH (publik) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PRIVATE (USER) =====================
	// acting user diambil dari JWT oleh AuthMiddleware
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware())

	postRoute.PostUserRoutes(private, db)
	commentRoute.CommentUserRoutes(private, db)
	likeRoute.LikeUserRoutes(private, db)
}
