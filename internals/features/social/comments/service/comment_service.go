package service

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sosmedku_backend/internals/features/social/comments/model"
	postModel "sosmedku_backend/internals/features/social/posts/model"
	helper "sosmedku_backend/internals/helpers"
)

// CreateComment menambahkan komentar pada sebuah postingan.
// Teks kosong ditolak duluan, baru cek postingannya ada.
func CreateComment(db *gorm.DB, userID, postID int64, text string) (*model.CommentModel, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Komentar tidak boleh kosong")
	}

	var exists int64
	if err := db.Model(&postModel.PostModel{}).
		Where("post_id = ?", postID).
		Count(&exists).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil postingan")
	}
	if exists == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Postingan tidak ditemukan")
	}

	cm := model.CommentModel{
		CommentText:   trimmed,
		CommentUserID: userID,
		CommentPostID: postID,
	}
	if err := db.Create(&cm).Error; err != nil {
		// Postingan keburu dihapus di antara cek dan insert: FK yang menahan.
		if helper.IsForeignKeyViolation(err) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Postingan tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan komentar")
	}
	return &cm, nil
}

// DeleteComment menghapus komentar. Hanya penulisnya yang boleh.
func DeleteComment(db *gorm.DB, userID, commentID int64) error {
	var cm model.CommentModel
	if err := db.First(&cm, "comment_id = ?", commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Komentar tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil komentar")
	}
	if !cm.CanDeleteBy(userID) {
		return fiber.NewError(fiber.StatusForbidden, "Tidak boleh menghapus komentar milik orang lain")
	}
	if err := db.Delete(&cm).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus komentar")
	}
	return nil
}

// FindCommentByID mengambil satu komentar; 404 kalau tidak ada.
func FindCommentByID(db *gorm.DB, commentID int64) (*model.CommentModel, error) {
	var cm model.CommentModel
	if err := db.First(&cm, "comment_id = ?", commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Komentar tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil komentar")
	}
	return &cm, nil
}
