// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	classModel "campushub_backend/internals/features/school/classes/model"
	classService "campushub_backend/internals/features/school/classes/service"
	"campushub_backend/internals/features/users/user/dto"
	"campushub_backend/internals/features/users/user/model"
	helper "campushub_backend/internals/helpers"
	ossHelper "campushub_backend/internals/helpers/oss"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Blob     ossHelper.BlobService
}

func New(db *gorm.DB, v *validator.Validate, blob ossHelper.BlobService) *UserController {
	return &UserController{DB: db, Validate: v, Blob: blob}
}

/* ========================= Profile ========================= */

func (ctl *UserController) Me(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var u model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&u, "user_id = ?", callerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToUserResponse(&u))
}

func (ctl *UserController) UpdateProfile(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext())

	var u model.UserModel
	if err := db.First(&u, "user_id = ?", callerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]any{}
	if req.UserName != nil {
		updates["user_name"] = strings.TrimSpace(*req.UserName)
	}
	if req.UserPhone != nil {
		updates["user_phone"] = strings.TrimSpace(*req.UserPhone)
	}

	var staleURL string
	if fh := ossHelper.GetUploadFile(c); fh != nil {
		url, _, uerr := ctl.Blob.UploadImage(c.UserContext(), "users", fh)
		if uerr != nil {
			if fe, ok := uerr.(*fiber.Error); ok {
				return helper.JsonError(c, fe.Code, fe.Message)
			}
			return helper.JsonError(c, fiber.StatusBadGateway, "Photo upload failed")
		}
		updates["user_photo_url"] = url
		if u.UserPhotoURL != nil {
			staleURL = *u.UserPhotoURL
		}
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}
	if err := db.Model(&u).Updates(updates).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if staleURL != "" {
		// External provider photos fail key extraction and are skipped.
		_ = ctl.Blob.DeleteByPublicURL(c.UserContext(), staleURL)
	}
	return helper.JsonUpdated(c, "Profile updated", dto.ToUserResponse(&u))
}

/* ========================= Role management ========================= */

// membershipColumn maps a role-filtered list to its column on classes.
func membershipColumn(list classService.MembershipList) string {
	switch list {
	case classService.ListCRs:
		return "class_cr_ids"
	case classService.ListCAs:
		return "class_ca_ids"
	default:
		return "class_student_ids"
	}
}

// AssignRole changes a user's role and keeps the class membership lists in
// sync. Admin only (enforced at the route).
func (ctl *UserController) AssignRole(c *fiber.Ctx) error {
	var req dto.AssignRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	role := strings.ToLower(strings.TrimSpace(req.Role))
	if !model.IsValidRole(role) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown role")
	}

	db := ctl.DB.WithContext(c.UserContext())

	var u model.UserModel
	if err := db.First(&u, "user_id = ?", req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Class-scoped roles need a class; faculty and admins do not carry one.
	newList, listErr := classService.ListForRole(role)
	if listErr == nil && req.ClassID == nil && u.UserClassID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id is required for class-scoped roles")
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		// Detach from the old class list first.
		if u.UserClassID != nil {
			if oldList, err := classService.ListForRole(u.UserRole); err == nil {
				var oldClass classModel.ClassModel
				if err := tx.First(&oldClass, "class_id = ?", *u.UserClassID).Error; err == nil {
					col := membershipColumn(oldList)
					var members []string
					switch oldList {
					case classService.ListCRs:
						members = oldClass.ClassCRIDs
					case classService.ListCAs:
						members = oldClass.ClassCAIDs
					default:
						members = oldClass.ClassStudentIDs
					}
					if next, changed := classService.Remove(members, u.UserID.String()); changed {
						if err := tx.Model(&oldClass).Update(col, pq.StringArray(next)).Error; err != nil {
							return err
						}
					}
				}
			}
		}

		updates := map[string]any{"user_role": role}
		if listErr != nil {
			updates["user_class_id"] = nil
		} else if req.ClassID != nil {
			updates["user_class_id"] = *req.ClassID
		}
		if err := tx.Model(&u).Updates(updates).Error; err != nil {
			return err
		}

		if listErr == nil {
			targetClassID := u.UserClassID
			if req.ClassID != nil {
				targetClassID = req.ClassID
			}
			var cls classModel.ClassModel
			if err := tx.First(&cls, "class_id = ?", *targetClassID).Error; err != nil {
				return err
			}
			col := membershipColumn(newList)
			var members []string
			switch newList {
			case classService.ListCRs:
				members = cls.ClassCRIDs
			case classService.ListCAs:
				members = cls.ClassCAIDs
			default:
				members = cls.ClassStudentIDs
			}
			if next, changed := classService.AppendUnique(members, u.UserID.String()); changed {
				if err := tx.Model(&cls).Update(col, pq.StringArray(next)).Error; err != nil {
					return err
				}
			}
		}
		return nil
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.WritePGError(c, err)
	}

	if err := db.First(&u, "user_id = ?", req.UserID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Role assigned", dto.ToUserResponse(&u))
}

/* ========================= Directory ========================= */

func (ctl *UserController) ListFaculty(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.UserModel{}).
		Where("user_role = ?", model.RoleFaculty)
	if dept := strings.TrimSpace(c.Query("q")); dept != "" {
		q = q.Where("user_name ILIKE ?", "%"+dept+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var rows []model.UserModel
	if err := q.Order("user_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.UserResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToUserResponse(&rows[i]))
	}
	p := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", out, &p)
}
