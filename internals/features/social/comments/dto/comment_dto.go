package dto

import (
	"strings"
	"time"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateCommentRequest struct {
	Text string `json:"text"`
}

// Normalize — trim dasar; aturan "tidak boleh kosong" dicek di service
func (r *CreateCommentRequest) Normalize() {
	r.Text = strings.TrimSpace(r.Text)
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type CommentResponse struct {
	CommentID        int64     `json:"comment_id"`
	CommentText      string    `json:"comment_text"`
	CommentUserID    int64     `json:"comment_user_id"`
	UserName         string    `json:"user_name"`
	CommentCreatedAt time.Time `json:"comment_created_at"`
}
