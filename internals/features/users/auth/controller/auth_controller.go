// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/users/auth/dto"
	"campushub_backend/internals/features/users/auth/service"
	userDto "campushub_backend/internals/features/users/user/dto"
	userModel "campushub_backend/internals/features/users/user/model"
	helper "campushub_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validate: v}
}

/* ========================= Google sign-in ========================= */

// GoogleLogin verifies a Google ID token and upserts the user keyed by the
// provider subject id. First login creates a student account.
func (ctl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	identity, err := service.VerifyGoogleIDToken(req.IDToken)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	db := ctl.DB.WithContext(c.UserContext())

	var u userModel.UserModel
	err = db.First(&u, "user_uid = ?", identity.Subject).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		u = userModel.UserModel{
			UserUID:  identity.Subject,
			UserName: identity.Name,
			UserRole: userModel.RoleStudent,
		}
		if u.UserName == "" {
			u.UserName = "New User"
		}
		if identity.Email != "" {
			email := identity.Email
			u.UserEmail = &email
		}
		if identity.Picture != "" {
			pic := identity.Picture
			u.UserPhotoURL = &pic
		}
		if err := db.Create(&u).Error; err != nil {
			return helper.WritePGError(c, err)
		}
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	default:
		// Refresh profile bits that Google owns.
		updates := map[string]any{}
		if identity.Picture != "" && (u.UserPhotoURL == nil || *u.UserPhotoURL != identity.Picture) {
			updates["user_photo_url"] = identity.Picture
		}
		if len(updates) > 0 {
			if err := db.Model(&u).Updates(updates).Error; err != nil {
				return helper.WritePGError(c, err)
			}
		}
	}

	return ctl.respondWithTokens(c, &u, "Signed in")
}

/* ========================= Email / password ========================= */

func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	hash, err := service.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not hash password")
	}

	u := userModel.UserModel{
		UserUID:      "local:" + uuid.NewString(),
		UserName:     strings.TrimSpace(req.Name),
		UserEmail:    &email,
		UserPassword: &hash,
		UserRole:     userModel.RoleStudent,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&u).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return ctl.respondWithTokens(c, &u, "Account created")
}

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var u userModel.UserModel
	err := ctl.DB.WithContext(c.UserContext()).First(&u, "user_email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if u.UserPassword == nil || !service.CheckPassword(*u.UserPassword, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	return ctl.respondWithTokens(c, &u, "Signed in")
}

/* ========================= Session ========================= */

func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	sub, err := service.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	userID, perr := uuid.Parse(sub)
	if perr != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	var u userModel.UserModel
	dberr := ctl.DB.WithContext(c.UserContext()).First(&u, "user_id = ?", userID).Error
	if errors.Is(dberr, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Account no longer exists")
	}
	if dberr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, dberr.Error())
	}

	return ctl.respondWithTokens(c, &u, "Token refreshed")
}

func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return helper.JsonOK(c, "Signed out", nil)
}

func (ctl *AuthController) respondWithTokens(c *fiber.Ctx, u *userModel.UserModel, msg string) error {
	pair, err := service.IssueTokens(u)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not issue tokens")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    pair.AccessToken,
		Expires:  time.Now().Add(service.AccessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.JsonOK(c, msg, dto.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         userDto.ToUserResponse(u),
	})
}
