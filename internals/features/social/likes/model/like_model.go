package model

import (
	"time"

	postModel "sosmedku_backend/internals/features/social/posts/model"
	userModel "sosmedku_backend/internals/features/users/user/model"
)

// LikeModel: satu baris = "user menyukai post".
// PK komposit (user, post) sekaligus menjamin like tidak pernah dobel.
type LikeModel struct {
	LikeUserID    int64     `gorm:"column:like_user_id;primaryKey" json:"like_user_id"`
	LikePostID    int64     `gorm:"column:like_post_id;primaryKey;index:idx_likes_post" json:"like_post_id"`
	LikeCreatedAt time.Time `gorm:"column:like_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"like_created_at"`

	// Relasi ke postingan & user
	Post *postModel.PostModel `gorm:"foreignKey:LikePostID;references:PostID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	User *userModel.UserModel `gorm:"foreignKey:LikeUserID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (LikeModel) TableName() string { return "likes" }
