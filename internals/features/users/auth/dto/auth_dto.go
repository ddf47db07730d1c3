package dto

import (
	"strings"

	uModel "sosmedku_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8"`
}

// Normalize — trim & normalisasi dasar
func (r *RegisterRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
}

// ToModel — konversi ke model (ingat: hash password di controller!)
func (r *RegisterRequest) ToModel() *uModel.UserModel {
	return &uModel.UserModel{
		UserName:     r.UserName,
		UserEmail:    r.Email,
		UserPassword: r.Password, // hash di controller
	}
}

type LoginRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type LoginResponse struct {
	Token string           `json:"token"`
	User  uModel.UserModel `json:"user"`
}
