package model

import (
	"time"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	UserID        int64     `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	UserName      string    `gorm:"column:user_name;size:50;unique;not null" json:"user_name"`
	UserEmail     string    `gorm:"column:user_email;size:255;unique;not null" json:"user_email"`
	UserPassword  string    `gorm:"column:user_password;not null" json:"-"`
	UserCreatedAt time.Time `gorm:"column:user_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"user_created_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}
