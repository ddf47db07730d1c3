package service

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	commentModel "sosmedku_backend/internals/features/social/comments/model"
	likeModel "sosmedku_backend/internals/features/social/likes/model"
	"sosmedku_backend/internals/features/social/posts/model"
	userModel "sosmedku_backend/internals/features/users/user/model"
	helper "sosmedku_backend/internals/helpers"
)

// CreatePost menyimpan postingan baru milik acting user.
// Teks di-trim dulu; kosong setelah trim = 400.
func CreatePost(db *gorm.DB, userID int64, text string) (*model.PostModel, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Postingan tidak boleh kosong")
	}

	post := model.PostModel{
		PostText:   trimmed,
		PostUserID: userID,
	}
	if err := db.Create(&post).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan postingan")
	}
	return &post, nil
}

// DeletePost menghapus postingan beserta seluruh komentar & like-nya
// dalam satu transaksi. Hanya penulisnya yang boleh.
func DeletePost(db *gorm.DB, userID, postID int64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var post model.PostModel
		if err := tx.First(&post, "post_id = ?", postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Postingan tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil postingan")
		}
		if !post.CanDeleteBy(userID) {
			return fiber.NewError(fiber.StatusForbidden, "Tidak boleh menghapus postingan milik orang lain")
		}

		// cascade: anak-anaknya dihapus di transaksi yang sama
		if err := tx.Where("comment_post_id = ?", postID).
			Delete(&commentModel.CommentModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus komentar postingan")
		}
		if err := tx.Where("like_post_id = ?", postID).
			Delete(&likeModel.LikeModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus like postingan")
		}
		if err := tx.Delete(&post).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus postingan")
		}
		return nil
	})
}

// FindPostByID mengambil satu postingan; 404 kalau tidak ada.
func FindPostByID(db *gorm.DB, postID int64) (*model.PostModel, error) {
	var post model.PostModel
	if err := db.First(&post, "post_id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Postingan tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil postingan")
	}
	return &post, nil
}

// ListAllPosts: feed utama, terbaru dulu.
func ListAllPosts(db *gorm.DB) ([]model.PostModel, error) {
	var posts []model.PostModel
	if err := db.Order("post_created_at DESC, post_id DESC").Find(&posts).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil feed")
	}
	return posts, nil
}

// ListPostsByUsername: wall milik satu user; 404 kalau username tidak terdaftar.
func ListPostsByUsername(db *gorm.DB, username string) ([]model.PostModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "user_name = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	var posts []model.PostModel
	if err := db.Where("post_user_id = ?", user.UserID).
		Order("post_created_at DESC, post_id DESC").
		Find(&posts).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil postingan user")
	}
	return posts, nil
}
