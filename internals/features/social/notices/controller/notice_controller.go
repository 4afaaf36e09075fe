// file: internals/features/social/notices/controller/notice_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/social/notices/model"
	helper "campushub_backend/internals/helpers"
	ossHelper "campushub_backend/internals/helpers/oss"
)

type NoticeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Blob     ossHelper.BlobService
}

func New(db *gorm.DB, v *validator.Validate, blob ossHelper.BlobService) *NoticeController {
	return &NoticeController{DB: db, Validate: v, Blob: blob}
}

type createNoticeRequest struct {
	ClassID    uuid.UUID  `json:"class_id"    form:"class_id"    validate:"required"`
	SemesterID *uuid.UUID `json:"semester_id" form:"semester_id"`
	Title      string     `json:"title"       form:"title"       validate:"required,min=2,max=160"`
	Body       string     `json:"body"        form:"body"        validate:"required,min=2"`
}

type updateNoticeRequest struct {
	Title *string `json:"title" validate:"omitempty,min=2,max=160"`
	Body  *string `json:"body"  validate:"omitempty,min=2"`
}

func (ctl *NoticeController) Create(c *fiber.Ctx) error {
	var req createNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	m := model.NoticeModel{
		NoticeClassID:    req.ClassID,
		NoticeSemesterID: req.SemesterID,
		NoticeTitle:      strings.TrimSpace(req.Title),
		NoticeBody:       strings.TrimSpace(req.Body),
		NoticeAuthorID:   callerID,
	}
	if fh := ossHelper.GetUploadFile(c); fh != nil {
		url, key, _, uerr := ctl.Blob.UploadRaw(c.UserContext(), "notices", fh)
		if uerr != nil {
			if fe, ok := uerr.(*fiber.Error); ok {
				return helper.JsonError(c, fe.Code, fe.Message)
			}
			return helper.JsonError(c, fiber.StatusBadGateway, "Attachment upload failed")
		}
		m.NoticeAttachmentURL = &url
		m.NoticeAttachmentKey = &key
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Notice posted", m)
}

func (ctl *NoticeController) ListByClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("classId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.NoticeModel{}).
		Where("notice_class_id = ?", classID)
	if sid := strings.TrimSpace(c.Query("semester_id")); sid != "" {
		semID, perr := uuid.Parse(sid)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester id")
		}
		q = q.Where("notice_semester_id = ?", semID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var rows []model.NoticeModel
	if err := q.Order("notice_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", rows, &p)
}

func (ctl *NoticeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notice id")
	}

	var req updateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext())

	var m model.NoticeModel
	if err := db.First(&m, "notice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !ctl.canMutate(c, &m) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the author or an admin can edit this notice")
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["notice_title"] = strings.TrimSpace(*req.Title)
	}
	if req.Body != nil {
		updates["notice_body"] = strings.TrimSpace(*req.Body)
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}
	if err := db.Model(&m).Updates(updates).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Notice updated", m)
}

func (ctl *NoticeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notice id")
	}
	db := ctl.DB.WithContext(c.UserContext())

	var m model.NoticeModel
	if err := db.First(&m, "notice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !ctl.canMutate(c, &m) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the author or an admin can delete this notice")
	}

	if err := db.Delete(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if m.NoticeAttachmentKey != nil {
		if err := ctl.Blob.DeleteByKey(c.UserContext(), *m.NoticeAttachmentKey); err != nil {
			log.Printf("[WARN] notice attachment cleanup failed: %v", err)
		}
	}
	return helper.JsonDeleted(c, "Notice deleted", fiber.Map{"notice_id": m.NoticeID})
}

func (ctl *NoticeController) canMutate(c *fiber.Ctx, m *model.NoticeModel) bool {
	if helper.IsAdmin(c) {
		return true
	}
	callerID, err := helper.GetUserIDFromToken(c)
	return err == nil && callerID == m.NoticeAuthorID
}
