package dto

import (
	"strings"
	"time"

	commentDto "sosmedku_backend/internals/features/social/comments/dto"
	userDto "sosmedku_backend/internals/features/users/user/dto"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreatePostRequest struct {
	Text string `json:"text"`
}

// Normalize — trim dasar; aturan "tidak boleh kosong" dicek di service
func (r *CreatePostRequest) Normalize() {
	r.Text = strings.TrimSpace(r.Text)
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// PostResponse = postingan yang sudah diperkaya untuk ditampilkan:
// jumlah like, status liked milik viewer, komentar terurut, dan penulis.
type PostResponse struct {
	PostID        int64                        `json:"post_id"`
	PostText      string                       `json:"post_text"`
	PostCreatedAt time.Time                    `json:"post_created_at"`
	PostUserID    int64                        `json:"post_user_id"`
	User          userDto.UserLite             `json:"user"`
	Comments      []commentDto.CommentResponse `json:"comments"`
	LikesCount    int64                        `json:"likes_count"`
	Liked         bool                         `json:"liked"`
}
