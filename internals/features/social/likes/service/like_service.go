package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	helper "sosmedku_backend/internals/helpers"

	"sosmedku_backend/internals/features/social/likes/dto"
	"sosmedku_backend/internals/features/social/likes/model"
	postModel "sosmedku_backend/internals/features/social/posts/model"
)

// ToggleLike: sekali panggil = like, panggil lagi = batal like.
// Delete dulu; kalau tidak ada baris yang kena, insert dengan
// ON CONFLICT DO NOTHING. PK komposit (user, post) yang menjaga
// dua toggle balapan tidak pernah menghasilkan like dobel.
func ToggleLike(db *gorm.DB, userID, postID int64) (*dto.LikeStatusResponse, error) {
	out := &dto.LikeStatusResponse{}

	err := db.Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&postModel.PostModel{}).
			Where("post_id = ?", postID).
			Count(&exists).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil postingan")
		}
		if exists == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Postingan tidak ditemukan")
		}

		res := tx.Where("like_user_id = ? AND like_post_id = ?", userID, postID).
			Delete(&model.LikeModel{})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membatalkan like")
		}

		if res.RowsAffected == 0 {
			like := model.LikeModel{LikeUserID: userID, LikePostID: postID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&like).Error; err != nil && !helper.IsUniqueViolation(err) {
				if helper.IsForeignKeyViolation(err) {
					return fiber.NewError(fiber.StatusNotFound, "Postingan tidak ditemukan")
				}
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan like")
			}
			out.Liked = true
		} else {
			out.Liked = false
		}

		var count int64
		if err := tx.Model(&model.LikeModel{}).
			Where("like_post_id = ?", postID).
			Count(&count).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung like")
		}
		out.LikesCount = count
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindLike mengambil satu like berdasarkan pasangan (user, post); 404 kalau tidak ada.
func FindLike(db *gorm.DB, userID, postID int64) (*model.LikeModel, error) {
	var like model.LikeModel
	if err := db.First(&like, "like_user_id = ? AND like_post_id = ?", userID, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Like tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil like")
	}
	return &like, nil
}
