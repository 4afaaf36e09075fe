// file: internals/features/social/events/controller/event_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	materialService "campushub_backend/internals/features/school/materials/service"
	"campushub_backend/internals/features/social/events/model"
	helper "campushub_backend/internals/helpers"
	ossHelper "campushub_backend/internals/helpers/oss"
)

type EventController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Blob     ossHelper.BlobService
}

func New(db *gorm.DB, v *validator.Validate, blob ossHelper.BlobService) *EventController {
	return &EventController{DB: db, Validate: v, Blob: blob}
}

type createEventRequest struct {
	Title   string  `json:"title"   form:"title"   validate:"required,min=2,max=160"`
	Caption *string `json:"caption" form:"caption" validate:"omitempty,max=2000"`
}

type addCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=1000"`
}

/* ========================= Timeline ========================= */

func (ctl *EventController) Create(c *fiber.Ctx) error {
	var req createEventRequest
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

	m := model.EventModel{
		EventTitle:    strings.TrimSpace(req.Title),
		EventCaption:  req.Caption,
		EventAuthorID: callerID,
	}
	if fh := ossHelper.GetUploadFile(c); fh != nil {
		url, key, uerr := ctl.Blob.UploadImage(c.UserContext(), "events", fh)
		if uerr != nil {
			if fe, ok := uerr.(*fiber.Error); ok {
				return helper.JsonError(c, fe.Code, fe.Message)
			}
			return helper.JsonError(c, fiber.StatusBadGateway, "Image upload failed")
		}
		m.EventImageURL = &url
		m.EventImageKey = &key
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Event posted", m)
}

func (ctl *EventController) Timeline(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 50)

	var total int64
	db := ctl.DB.WithContext(c.UserContext())
	if err := db.Model(&model.EventModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.EventModel
	if err := db.Order("event_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", rows, &p)
}

// Delete is author-or-admin only. There is no blanket privilege bypass on
// the timeline.
func (ctl *EventController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}
	db := ctl.DB.WithContext(c.UserContext())

	var m model.EventModel
	if err := db.First(&m, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	callerID, cerr := helper.GetUserIDFromToken(c)
	if cerr != nil {
		fe := cerr.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if callerID != m.EventAuthorID && !helper.IsAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the author or an admin can delete this event")
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_event_id = ?", m.EventID).
			Delete(&model.EventCommentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&m).Error
	}); err != nil {
		return helper.WritePGError(c, err)
	}

	if m.EventImageKey != nil {
		if err := ctl.Blob.DeleteByKey(c.UserContext(), *m.EventImageKey); err != nil {
			log.Printf("[WARN] event image cleanup failed: %v", err)
		}
	}
	return helper.JsonDeleted(c, "Event deleted", fiber.Map{"event_id": m.EventID})
}

/* ========================= Likes ========================= */

func (ctl *EventController) ToggleLike(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	db := ctl.DB.WithContext(c.UserContext())

	var m model.EventModel
	if err := db.First(&m, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	likes, liked := materialService.ToggleLike(m.EventLikes, callerID.String())
	if err := db.Model(&m).Update("event_likes", pq.StringArray(likes)).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Like toggled", fiber.Map{
		"event_id":   m.EventID,
		"liked":      liked,
		"like_count": len(likes),
	})
}

/* ========================= Comments ========================= */

func (ctl *EventController) AddComment(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var req addCommentRequest
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

	db := ctl.DB.WithContext(c.UserContext())

	var exists int64
	if err := db.Model(&model.EventModel{}).Where("event_id = ?", id).Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	m := model.EventCommentModel{
		CommentEventID:  id,
		CommentAuthorID: callerID,
		CommentText:     strings.TrimSpace(req.Text),
	}
	if err := db.Create(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Comment added", m)
}

func (ctl *EventController) ListComments(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}
	var rows []model.EventCommentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("comment_event_id = ?", id).
		Order("comment_created_at ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", rows, nil)
}

func (ctl *EventController) DeleteComment(c *fiber.Ctx) error {
	commentID, err := uuid.Parse(strings.TrimSpace(c.Params("commentId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid comment id")
	}
	db := ctl.DB.WithContext(c.UserContext())

	var m model.EventCommentModel
	if err := db.First(&m, "comment_id = ?", commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Comment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	callerID, cerr := helper.GetUserIDFromToken(c)
	if cerr != nil {
		fe := cerr.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if callerID != m.CommentAuthorID && !helper.IsAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the author or an admin can delete this comment")
	}

	if err := db.Delete(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Comment deleted", fiber.Map{"comment_id": m.CommentID})
}
