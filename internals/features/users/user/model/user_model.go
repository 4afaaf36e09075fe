// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Role values. "faculty" is an assignment target, not a login tier.
const (
	RoleStudent    = "student"
	RoleCR         = "cr"
	RoleCA         = "ca"
	RoleFaculty    = "faculty"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleCR, RoleCA, RoleFaculty, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// UserModel maps the users table. user_uid is the identity-provider subject
// id and is the join key for every authenticated request.
type UserModel struct {
	UserID  uuid.UUID `json:"user_id"  gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserUID string    `json:"user_uid" gorm:"column:user_uid;type:varchar(128);not null;uniqueIndex"`

	UserName     string  `json:"user_name"                gorm:"column:user_name;type:varchar(120);not null"`
	UserEmail    *string `json:"user_email,omitempty"     gorm:"column:user_email;type:varchar(255);uniqueIndex"`
	UserPhone    *string `json:"user_phone,omitempty"     gorm:"column:user_phone;type:varchar(30)"`
	UserPassword *string `json:"-"                        gorm:"column:user_password;type:text"`
	UserPhotoURL *string `json:"user_photo_url,omitempty" gorm:"column:user_photo_url;type:text"`

	UserRole    string     `json:"user_role"               gorm:"column:user_role;type:varchar(20);not null;default:'student'"`
	UserClassID *uuid.UUID `json:"user_class_id,omitempty" gorm:"column:user_class_id;type:uuid"`

	// Course ids taught by this user (faculty only), appended when an
	// assignment is created.
	UserCourseIDs pq.StringArray `json:"user_course_ids" gorm:"column:user_course_ids;type:text[]"`

	UserCreatedAt time.Time      `json:"user_created_at"           gorm:"column:user_created_at;type:timestamptz;not null;default:now();autoCreateTime"`
	UserUpdatedAt time.Time      `json:"user_updated_at"           gorm:"column:user_updated_at;type:timestamptz;not null;default:now();autoUpdateTime"`
	UserDeletedAt gorm.DeletedAt `json:"user_deleted_at,omitempty" gorm:"column:user_deleted_at;type:timestamptz;index"`
}

func (UserModel) TableName() string { return "users" }
