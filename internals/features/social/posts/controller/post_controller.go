package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sosmedku_backend/internals/features/social/posts/dto"
	"sosmedku_backend/internals/features/social/posts/service"
	helper "sosmedku_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type PostController struct {
	DB *gorm.DB
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{DB: db}
}

// POST /api/u/posts
func (ctrl *PostController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format input tidak valid")
	}
	req.Normalize()

	post, err := service.CreatePost(ctrl.DB.WithContext(c.UserContext()), userID, req.Text)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Postingan berhasil dibuat", post)
}

// DELETE /api/u/posts/:id
func (ctrl *PostController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	postID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID postingan tidak valid")
	}

	if err := service.DeletePost(ctrl.DB.WithContext(c.UserContext()), userID, postID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Postingan berhasil dihapus", nil)
}

// GET /api/u/feed — semua postingan, terbaru dulu, diperkaya untuk viewer
func (ctrl *PostController) Feed(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	db := ctrl.DB.WithContext(c.UserContext())
	posts, err := service.ListAllPosts(db)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	enriched, err := service.EnrichPosts(db, posts, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Feed berhasil diambil", enriched)
}

// GET /api/u/users/:username/posts — wall milik satu user
func (ctrl *PostController) UserWall(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	db := ctrl.DB.WithContext(c.UserContext())
	posts, err := service.ListPostsByUsername(db, c.Params("username"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	enriched, err := service.EnrichPosts(db, posts, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Postingan user berhasil diambil", enriched)
}
