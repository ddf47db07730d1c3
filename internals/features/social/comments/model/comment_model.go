package model

import (
	"time"

	postModel "sosmedku_backend/internals/features/social/posts/model"
	userModel "sosmedku_backend/internals/features/users/user/model"
)

type CommentModel struct {
	CommentID        int64     `gorm:"column:comment_id;primaryKey;autoIncrement" json:"comment_id"`
	CommentText      string    `gorm:"column:comment_text;type:text;not null" json:"comment_text"`
	CommentUserID    int64     `gorm:"column:comment_user_id;not null" json:"comment_user_id"`
	CommentPostID    int64     `gorm:"column:comment_post_id;not null;index:idx_comments_post" json:"comment_post_id"`
	CommentCreatedAt time.Time `gorm:"column:comment_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"comment_created_at"`

	// Relasi ke postingan induk & penulis
	Post *postModel.PostModel `gorm:"foreignKey:CommentPostID;references:PostID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	User *userModel.UserModel `gorm:"foreignKey:CommentUserID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (CommentModel) TableName() string { return "comments" }

// CanDeleteBy: hanya penulis yang boleh menghapus komentarnya
func (m *CommentModel) CanDeleteBy(userID int64) bool {
	return m.CommentUserID == userID
}
