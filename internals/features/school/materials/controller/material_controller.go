// file: internals/features/school/materials/controller/material_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"campushub_backend/internals/features/school/materials/dto"
	"campushub_backend/internals/features/school/materials/model"
	"campushub_backend/internals/features/school/materials/service"
	userModel "campushub_backend/internals/features/users/user/model"
	helper "campushub_backend/internals/helpers"
	ossHelper "campushub_backend/internals/helpers/oss"
)

type MaterialController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Blob     ossHelper.BlobService
}

func New(db *gorm.DB, v *validator.Validate, blob ossHelper.BlobService) *MaterialController {
	return &MaterialController{DB: db, Validate: v, Blob: blob}
}

/* ========================= scope helpers ========================= */

type materialScope struct {
	CourseID   uuid.UUID
	SemesterID uuid.UUID
	Type       string
}

func parseScope(c *fiber.Ctx) (materialScope, error) {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("courseId")))
	if err != nil {
		return materialScope{}, fiber.NewError(fiber.StatusBadRequest, "Invalid course id")
	}
	semID, err := uuid.Parse(strings.TrimSpace(c.Params("semesterId")))
	if err != nil {
		return materialScope{}, fiber.NewError(fiber.StatusBadRequest, "Invalid semester id")
	}
	mtype := strings.ToLower(strings.TrimSpace(c.Params("type")))
	if !model.IsValidMaterialType(mtype) {
		return materialScope{}, fiber.NewError(fiber.StatusBadRequest, "Unknown material type")
	}
	return materialScope{CourseID: courseID, SemesterID: semID, Type: mtype}, nil
}

// resolveClassID prefers the explicit class_id form field, falling back to
// the caller's own class pointer.
func (ctl *MaterialController) resolveClassID(c *fiber.Ctx, explicit string) (uuid.UUID, error) {
	if explicit != "" {
		return uuid.Parse(explicit)
	}
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return uuid.Nil, err
	}
	var caller userModel.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&caller, "user_id = ?", callerID).Error; err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "User not found")
	}
	if caller.UserClassID == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "No class scope: pass class_id or join a class")
	}
	return *caller.UserClassID, nil
}

func (ctl *MaterialController) canMutate(c *fiber.Ctx, m *model.MaterialModel) bool {
	if helper.IsAdmin(c) {
		return true
	}
	callerID, err := helper.GetUserIDFromToken(c)
	return err == nil && callerID == m.MaterialUploaderID
}

/* ========================= Upload ========================= */

// Upload creates a material of the scoped type. Syllabus uploads merge into
// the existing per-scope document instead of creating a second one.
func (ctl *MaterialController) Upload(c *fiber.Ctx) error {
	scope, err := parseScope(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var req dto.UploadMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	classID, err := ctl.resolveClassID(c, req.ClassID)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	fh := ossHelper.GetUploadFile(c)
	if fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File is required")
	}
	fileURL, objectKey, mime, err := ctl.Blob.UploadRaw(c.UserContext(), "materials/"+scope.Type, fh)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "Upload failed")
	}

	if scope.Type == model.TypeSyllabus {
		return ctl.mergeSyllabusFile(c, scope, classID, callerID, req, fileURL, objectKey, mime)
	}

	m := model.MaterialModel{
		MaterialType:          scope.Type,
		MaterialTitle:         req.Title,
		MaterialDescription:   req.Description,
		MaterialUploaderID:    callerID,
		MaterialCourseID:      scope.CourseID,
		MaterialSemesterID:    scope.SemesterID,
		MaterialClassID:       classID,
		MaterialFileURL:       &fileURL,
		MaterialFileObjectKey: &objectKey,
		MaterialFileMime:      &mime,
	}
	switch scope.Type {
	case model.TypeDeadline:
		if req.DueDate == nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "due_date is required for deadlines")
		}
		m.MaterialDueDate = req.DueDate
		status := model.DeadlineStatusPending
		m.MaterialDeadlineStatus = &status
	case model.TypeWhiteboardShot:
		m.MaterialLectureDate = req.LectureDate
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Material uploaded", m)
}

func (ctl *MaterialController) mergeSyllabusFile(c *fiber.Ctx, scope materialScope, classID, callerID uuid.UUID,
	req dto.UploadMaterialRequest, fileURL, objectKey, mime string) error {
	if req.Unit == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "unit is required for syllabus uploads")
	}
	entry := service.UnitFile{Unit: *req.Unit, FileURL: fileURL, ObjectKey: objectKey, Mime: mime}

	db := ctl.DB.WithContext(c.UserContext())

	var m model.MaterialModel
	err := db.Where(`material_type = ? AND material_course_id = ? AND material_semester_id = ? AND material_class_id = ?`,
		model.TypeSyllabus, scope.CourseID, scope.SemesterID, classID).First(&m).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		units, encErr := service.EncodeUnits([]service.UnitFile{entry})
		if encErr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, encErr.Error())
		}
		m = model.MaterialModel{
			MaterialType:        model.TypeSyllabus,
			MaterialTitle:       req.Title,
			MaterialDescription: req.Description,
			MaterialUploaderID:  callerID,
			MaterialCourseID:    scope.CourseID,
			MaterialSemesterID:  scope.SemesterID,
			MaterialClassID:     classID,
			MaterialUnits:       units,
		}
		if err := db.Create(&m).Error; err != nil {
			return helper.WritePGError(c, err)
		}
		return helper.JsonCreated(c, "Syllabus created", m)
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	units, decErr := service.DecodeUnits(m.MaterialUnits)
	if decErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, decErr.Error())
	}
	units, replaced := service.MergeUnitFile(units, entry)
	encoded, encErr := service.EncodeUnits(units)
	if encErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, encErr.Error())
	}
	if err := db.Model(&m).Update("material_units", encoded).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if replaced != nil && replaced.ObjectKey != "" {
		if err := ctl.Blob.DeleteByKey(c.UserContext(), replaced.ObjectKey); err != nil {
			log.Printf("[WARN] stale syllabus file cleanup failed: %v", err)
		}
	}
	return helper.JsonUpdated(c, "Syllabus file added", m)
}

/* ========================= Read ========================= */

func (ctl *MaterialController) List(c *fiber.Ctx) error {
	scope, err := parseScope(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.MaterialModel{}).
		Where("material_type = ? AND material_course_id = ? AND material_semester_id = ?",
			scope.Type, scope.CourseID, scope.SemesterID)
	if cid := strings.TrimSpace(c.Query("class_id")); cid != "" {
		classID, perr := uuid.Parse(cid)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
		}
		q = q.Where("material_class_id = ?", classID)
	}

	var rows []model.MaterialModel
	if err := q.Order("material_created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", rows, nil)
}

/* ========================= Update ========================= */

// Update edits metadata and optionally replaces the file (old object
// deleted after the row is saved).
func (ctl *MaterialController) Update(c *fiber.Ctx) error {
	scope, err := parseScope(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid material id")
	}

	var req dto.UpdateMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext())

	var m model.MaterialModel
	if err := db.Where("material_id = ? AND material_type = ?", id, scope.Type).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Material not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !ctl.canMutate(c, &m) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the uploader or an admin can modify this")
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["material_title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		updates["material_description"] = strings.TrimSpace(*req.Description)
	}
	if scope.Type == model.TypeDeadline {
		if req.DueDate != nil {
			updates["material_due_date"] = *req.DueDate
		}
		if req.DeadlineStatus != nil {
			updates["material_deadline_status"] = *req.DeadlineStatus
		}
	}

	var staleKey string
	if fh := ossHelper.GetUploadFile(c); fh != nil {
		fileURL, objectKey, mime, uerr := ctl.Blob.UploadRaw(c.UserContext(), "materials/"+scope.Type, fh)
		if uerr != nil {
			if fe, ok := uerr.(*fiber.Error); ok {
				return helper.JsonError(c, fe.Code, fe.Message)
			}
			return helper.JsonError(c, fiber.StatusBadGateway, "Upload failed")
		}
		if m.MaterialFileObjectKey != nil {
			staleKey = *m.MaterialFileObjectKey
		}
		updates["material_file_url"] = fileURL
		updates["material_file_object_key"] = objectKey
		updates["material_file_mime"] = mime
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}
	if err := db.Model(&m).Updates(updates).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if staleKey != "" {
		if err := ctl.Blob.DeleteByKey(c.UserContext(), staleKey); err != nil {
			log.Printf("[WARN] stale material file cleanup failed: %v", err)
		}
	}
	return helper.JsonUpdated(c, "Material updated", m)
}

/* ========================= Delete ========================= */

func (ctl *MaterialController) Delete(c *fiber.Ctx) error {
	scope, err := parseScope(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid material id")
	}

	db := ctl.DB.WithContext(c.UserContext())

	var m model.MaterialModel
	if err := db.Where("material_id = ? AND material_type = ?", id, scope.Type).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Material not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !ctl.canMutate(c, &m) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the uploader or an admin can delete this")
	}

	if err := db.Delete(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	// Object-store cleanup after the row is gone, best effort.
	keys := []string{}
	if m.MaterialFileObjectKey != nil {
		keys = append(keys, *m.MaterialFileObjectKey)
	}
	if units, derr := service.DecodeUnits(m.MaterialUnits); derr == nil {
		for _, u := range units {
			if u.ObjectKey != "" {
				keys = append(keys, u.ObjectKey)
			}
		}
	}
	for _, k := range keys {
		if err := ctl.Blob.DeleteByKey(c.UserContext(), k); err != nil {
			log.Printf("[WARN] material file cleanup failed (key=%s): %v", k, err)
		}
	}
	return helper.JsonDeleted(c, "Material deleted", fiber.Map{"material_id": m.MaterialID})
}

// DeleteSyllabusFile removes one unit entry; removing the last entry deletes
// the whole syllabus document.
func (ctl *MaterialController) DeleteSyllabusFile(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid material id")
	}
	unit, err := strconv.Atoi(strings.TrimSpace(c.Params("unit")))
	if err != nil || unit < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid unit")
	}

	db := ctl.DB.WithContext(c.UserContext())

	var m model.MaterialModel
	if err := db.Where("material_id = ? AND material_type = ?", id, model.TypeSyllabus).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Syllabus not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !ctl.canMutate(c, &m) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the uploader or an admin can delete this")
	}

	units, derr := service.DecodeUnits(m.MaterialUnits)
	if derr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, derr.Error())
	}
	remaining, removed, empty := service.RemoveUnitFile(units, unit)
	if removed == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Unit file not found")
	}

	if empty {
		if err := db.Delete(&m).Error; err != nil {
			return helper.WritePGError(c, err)
		}
	} else {
		encoded, eerr := service.EncodeUnits(remaining)
		if eerr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, eerr.Error())
		}
		if err := db.Model(&m).Update("material_units", encoded).Error; err != nil {
			return helper.WritePGError(c, err)
		}
	}

	if removed.ObjectKey != "" {
		if err := ctl.Blob.DeleteByKey(c.UserContext(), removed.ObjectKey); err != nil {
			log.Printf("[WARN] syllabus file cleanup failed: %v", err)
		}
	}
	return helper.JsonDeleted(c, "Syllabus file removed", fiber.Map{
		"material_id": m.MaterialID,
		"deleted_doc": empty,
	})
}

/* ========================= Likes ========================= */

// ToggleLike flips the caller's like on a shared note.
func (ctl *MaterialController) ToggleLike(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid material id")
	}
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	db := ctl.DB.WithContext(c.UserContext())

	var m model.MaterialModel
	if err := db.Where("material_id = ? AND material_type = ?", id, model.TypeSharedNote).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Shared note not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	likes, liked := service.ToggleLike(m.MaterialLikes, callerID.String())
	if err := db.Model(&m).Update("material_likes", pq.StringArray(likes)).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Like toggled", fiber.Map{
		"material_id": m.MaterialID,
		"liked":       liked,
		"like_count":  len(likes),
	})
}
