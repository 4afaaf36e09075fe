// file: internals/features/school/classes/controller/class_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/school/classes/dto"
	"campushub_backend/internals/features/school/classes/model"
	helper "campushub_backend/internals/helpers"
	ossHelper "campushub_backend/internals/helpers/oss"
)

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Blob     ossHelper.BlobService
}

func New(db *gorm.DB, v *validator.Validate, blob ossHelper.BlobService) *ClassController {
	return &ClassController{DB: db, Validate: v, Blob: blob}
}

/* ========================= Create ========================= */

func (ctl *ClassController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := model.ClassModel{
		ClassCode:       req.ClassCode,
		ClassName:       req.Name,
		ClassBatch:      req.Batch,
		ClassYear:       req.Year,
		ClassDepartment: req.Department,
		ClassSection:    req.Section,
	}

	// Optional cover photo; the binary lives in the object store, we keep
	// only URL + key.
	if fh := ossHelper.GetUploadFile(c); fh != nil {
		url, key, err := ctl.Blob.UploadImage(c.UserContext(), "classes", fh)
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				return helper.JsonError(c, fe.Code, fe.Message)
			}
			return helper.JsonError(c, fiber.StatusBadGateway, "Photo upload failed")
		}
		m.ClassPhotoURL = &url
		m.ClassPhotoObjectKey = &key
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Class created", dto.ToClassResponse(&m))
}

/* ========================= Read ========================= */

func (ctl *ClassController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.ClassModel{})
	if dep := strings.TrimSpace(c.Query("department")); dep != "" {
		q = q.Where("class_department = ?", dep)
	}
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.ClassModel
	if err := q.Order("class_code ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.ClassResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToClassResponse(&rows[i]))
	}
	p := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", out, &p)
}

func (ctl *ClassController) GetByCode(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("classCode")))
	var m model.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_code = ?", code).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToClassResponse(&m))
}

/* ========================= Delete ========================= */

func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var m model.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Delete(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	// Cover photo cleanup is best effort; the row is already gone.
	if m.ClassPhotoObjectKey != nil {
		if err := ctl.Blob.DeleteByKey(c.UserContext(), *m.ClassPhotoObjectKey); err != nil {
			log.Printf("[WARN] class %s photo cleanup failed: %v", m.ClassCode, err)
		}
	}
	return helper.JsonDeleted(c, "Class deleted", fiber.Map{"class_id": m.ClassID})
}
