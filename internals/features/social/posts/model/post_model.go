package model

import (
	"time"

	userModel "sosmedku_backend/internals/features/users/user/model"
)

type PostModel struct {
	PostID        int64     `gorm:"column:post_id;primaryKey;autoIncrement" json:"post_id"`
	PostText      string    `gorm:"column:post_text;type:text;not null" json:"post_text"`
	PostUserID    int64     `gorm:"column:post_user_id;not null;index:idx_posts_user" json:"post_user_id"`
	PostCreatedAt time.Time `gorm:"column:post_created_at;type:timestamptz;not null;default:now();autoCreateTime;index:idx_posts_created_at" json:"post_created_at"`

	// Relasi ke penulis
	User *userModel.UserModel `gorm:"foreignKey:PostUserID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (PostModel) TableName() string { return "posts" }

// CanDeleteBy: hanya penulis yang boleh menghapus postingannya
func (p *PostModel) CanDeleteBy(userID int64) bool {
	return p.PostUserID == userID
}
