package dto

import (
	uModel "sosmedku_backend/internals/features/users/user/model"
)

// UserLite — potongan data user yang aman ditampilkan di feed
type UserLite struct {
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`
}

func ToUserLite(m uModel.UserModel) UserLite {
	return UserLite{
		UserID:   m.UserID,
		UserName: m.UserName,
	}
}
