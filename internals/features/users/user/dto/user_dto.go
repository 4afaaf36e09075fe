// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/users/user/model"
)

type UpdateProfileRequest struct {
	UserName  *string `json:"user_name"  validate:"omitempty,min=2,max=120"`
	UserPhone *string `json:"user_phone" validate:"omitempty,min=6,max=30"`
}

type AssignRoleRequest struct {
	UserID  uuid.UUID  `json:"user_id"  validate:"required"`
	Role    string     `json:"role"     validate:"required"`
	ClassID *uuid.UUID `json:"class_id"`
}

type UserResponse struct {
	UserID    uuid.UUID  `json:"user_id"`
	UserUID   string     `json:"user_uid"`
	Name      string     `json:"name"`
	Email     *string    `json:"email,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	PhotoURL  *string    `json:"photo_url,omitempty"`
	Role      string     `json:"role"`
	ClassID   *uuid.UUID `json:"class_id,omitempty"`
	CourseIDs []string   `json:"course_ids,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func ToUserResponse(u *model.UserModel) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		UserUID:   u.UserUID,
		Name:      u.UserName,
		Email:     u.UserEmail,
		Phone:     u.UserPhone,
		PhotoURL:  u.UserPhotoURL,
		Role:      u.UserRole,
		ClassID:   u.UserClassID,
		CourseIDs: u.UserCourseIDs,
		CreatedAt: u.UserCreatedAt,
	}
}
