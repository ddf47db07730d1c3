package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sosmedku_backend/internals/features/social/likes/service"
	helper "sosmedku_backend/internals/helpers"
)

type LikeController struct {
	DB *gorm.DB
}

func NewLikeController(db *gorm.DB) *LikeController {
	return &LikeController{DB: db}
}

// POST /api/u/posts/:post_id/like — toggle; balasannya status pasca-mutasi
func (ctrl *LikeController) Toggle(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	postID, err := strconv.ParseInt(c.Params("post_id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID postingan tidak valid")
	}

	status, err := service.ToggleLike(ctrl.DB.WithContext(c.UserContext()), userID, postID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Status like diperbarui", status)
}
