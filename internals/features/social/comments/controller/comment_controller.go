package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sosmedku_backend/internals/features/social/comments/dto"
	"sosmedku_backend/internals/features/social/comments/service"
	helper "sosmedku_backend/internals/helpers"
)

type CommentController struct {
	DB *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

// POST /api/u/posts/:post_id/comments
func (ctrl *CommentController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	postID, err := strconv.ParseInt(c.Params("post_id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID postingan tidak valid")
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format input tidak valid")
	}
	req.Normalize()

	cm, err := service.CreateComment(ctrl.DB.WithContext(c.UserContext()), userID, postID, req.Text)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Komentar berhasil ditambahkan", cm)
}

// DELETE /api/u/comments/:id
func (ctrl *CommentController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	commentID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID komentar tidak valid")
	}

	if err := service.DeleteComment(ctrl.DB.WithContext(c.UserContext()), userID, commentID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Komentar berhasil dihapus", nil)
}
