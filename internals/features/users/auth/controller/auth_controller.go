package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sosmedku_backend/internals/features/users/auth/dto"
	"sosmedku_backend/internals/features/users/auth/service"
	uModel "sosmedku_backend/internals/features/users/user/model"
	helper "sosmedku_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format input tidak valid")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := service.HashPassword(req.Password)
	if err != nil {
		log.Printf("[ERROR] Gagal hash password: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := req.ToModel()
	user.UserPassword = hashed

	if err := ctrl.DB.WithContext(c.UserContext()).Create(user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Username atau email sudah terpakai")
		}
		log.Printf("[ERROR] Gagal membuat user: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Akun berhasil dibuat", user)
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format input tidak valid")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user uModel.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&user, "user_name = ?", req.UserName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Username atau password salah")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	if !service.CheckPasswordHash(req.Password, user.UserPassword) {
		return helper.Error(c, fiber.StatusUnauthorized, "Username atau password salah")
	}

	token, err := service.GenerateToken(user.UserID)
	if err != nil {
		log.Printf("[ERROR] Gagal membuat token: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.Success(c, "Login berhasil", dto.LoginResponse{
		Token: token,
		User:  user,
	})
}
