package service

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	commentDto "sosmedku_backend/internals/features/social/comments/dto"
	commentModel "sosmedku_backend/internals/features/social/comments/model"
	likeModel "sosmedku_backend/internals/features/social/likes/model"
	"sosmedku_backend/internals/features/social/posts/dto"
	"sosmedku_backend/internals/features/social/posts/model"
	userDto "sosmedku_backend/internals/features/users/user/dto"
	userModel "sosmedku_backend/internals/features/users/user/model"
)

// EnrichPosts melengkapi postingan dengan jumlah like, status liked milik
// viewer, komentar terurut, dan data penulis. Murni baca, tanpa mutasi.
// Urutan posts mengikuti pemanggil; fungsi ini tidak menyortir ulang.
func EnrichPosts(db *gorm.DB, posts []model.PostModel, viewerID int64) ([]dto.PostResponse, error) {
	if len(posts) == 0 {
		return []dto.PostResponse{}, nil
	}

	postIDs := make([]int64, 0, len(posts))
	for i := range posts {
		postIDs = append(postIDs, posts[i].PostID)
	}

	var likes []likeModel.LikeModel
	if err := db.Where("like_post_id IN ?", postIDs).Find(&likes).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data like")
	}

	var comments []commentModel.CommentModel
	if err := db.Where("comment_post_id IN ?", postIDs).
		Order("comment_created_at ASC, comment_id ASC").
		Find(&comments).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil komentar")
	}

	// penulis post + penulis komentar diambil sekali jalan
	seen := make(map[int64]struct{}, len(posts))
	userIDs := make([]int64, 0, len(posts))
	for i := range posts {
		if _, ok := seen[posts[i].PostUserID]; !ok {
			seen[posts[i].PostUserID] = struct{}{}
			userIDs = append(userIDs, posts[i].PostUserID)
		}
	}
	for i := range comments {
		if _, ok := seen[comments[i].CommentUserID]; !ok {
			seen[comments[i].CommentUserID] = struct{}{}
			userIDs = append(userIDs, comments[i].CommentUserID)
		}
	}

	var users []userModel.UserModel
	if err := db.Where("user_id IN ?", userIDs).Find(&users).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	return BuildPostResponses(posts, likes, comments, users, viewerID), nil
}

// BuildPostResponses adalah proyeksi murni di atas baris yang sudah diambil.
// Satu pass atas likes menghitung likes_count sekaligus status liked viewer.
func BuildPostResponses(
	posts []model.PostModel,
	likes []likeModel.LikeModel,
	comments []commentModel.CommentModel,
	users []userModel.UserModel,
	viewerID int64,
) []dto.PostResponse {
	likeCounts := make(map[int64]int64, len(posts))
	likedByViewer := make(map[int64]bool)
	for i := range likes {
		likeCounts[likes[i].LikePostID]++
		if likes[i].LikeUserID == viewerID {
			likedByViewer[likes[i].LikePostID] = true
		}
	}

	usersByID := make(map[int64]userModel.UserModel, len(users))
	for i := range users {
		usersByID[users[i].UserID] = users[i]
	}

	// komentar sudah terurut waktu dari query; urutan per post dipertahankan
	commentsByPost := make(map[int64][]commentDto.CommentResponse)
	for i := range comments {
		cm := comments[i]
		commentsByPost[cm.CommentPostID] = append(commentsByPost[cm.CommentPostID], commentDto.CommentResponse{
			CommentID:        cm.CommentID,
			CommentText:      cm.CommentText,
			CommentUserID:    cm.CommentUserID,
			UserName:         usersByID[cm.CommentUserID].UserName,
			CommentCreatedAt: cm.CommentCreatedAt,
		})
	}

	out := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		p := posts[i]
		cs := commentsByPost[p.PostID]
		if cs == nil {
			cs = []commentDto.CommentResponse{}
		}
		out = append(out, dto.PostResponse{
			PostID:        p.PostID,
			PostText:      p.PostText,
			PostCreatedAt: p.PostCreatedAt,
			PostUserID:    p.PostUserID,
			User:          userDto.ToUserLite(usersByID[p.PostUserID]),
			Comments:      cs,
			LikesCount:    likeCounts[p.PostID],
			Liked:         likedByViewer[p.PostID],
		})
	}
	return out
}
