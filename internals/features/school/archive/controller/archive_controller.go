// file: internals/features/school/archive/controller/archive_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/school/archive/model"
	helper "campushub_backend/internals/helpers"
	ossHelper "campushub_backend/internals/helpers/oss"
)

type ArchiveController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Blob     ossHelper.BlobService
}

func New(db *gorm.DB, v *validator.Validate, blob ossHelper.BlobService) *ArchiveController {
	return &ArchiveController{DB: db, Validate: v, Blob: blob}
}

// caller returns the authenticated user id. The error is the *fiber.Error
// from the token helper; handlers translate it into the JSON envelope so a
// failed lookup always short-circuits them.
func (ctl *ArchiveController) caller(c *fiber.Ctx) (uuid.UUID, error) {
	return helper.GetUserIDFromToken(c)
}

/* ========================= Honors ========================= */

type createHonorRequest struct {
	ClassID     uuid.UUID `json:"class_id"     form:"class_id"     validate:"required"`
	Title       string    `json:"title"        form:"title"        validate:"required,min=2,max=160"`
	Description *string   `json:"description"  form:"description"  validate:"omitempty,max=2000"`
	StudentName string    `json:"student_name" form:"student_name" validate:"required,min=2,max=120"`
}

func (ctl *ArchiveController) CreateHonor(c *fiber.Ctx) error {
	var req createHonorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	callerID, err := ctl.caller(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	m := model.HonorModel{
		HonorClassID:     req.ClassID,
		HonorTitle:       strings.TrimSpace(req.Title),
		HonorDescription: req.Description,
		HonorStudentName: strings.TrimSpace(req.StudentName),
		HonorCreatedBy:   callerID,
	}
	if fh := ossHelper.GetUploadFile(c); fh != nil {
		url, key, uerr := ctl.Blob.UploadImage(c.UserContext(), "honors", fh)
		if uerr != nil {
			if fe, ok := uerr.(*fiber.Error); ok {
				return helper.JsonError(c, fe.Code, fe.Message)
			}
			return helper.JsonError(c, fiber.StatusBadGateway, "Photo upload failed")
		}
		m.HonorPhotoURL = &url
		m.HonorPhotoKey = &key
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Honor added", m)
}

func (ctl *ArchiveController) ListHonors(c *fiber.Ctx) error {
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("classId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}
	var rows []model.HonorModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("honor_class_id = ?", classID).
		Order("honor_created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", rows, nil)
}

func (ctl *ArchiveController) DeleteHonor(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid honor id")
	}
	db := ctl.DB.WithContext(c.UserContext())

	var m model.HonorModel
	if err := db.First(&m, "honor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Honor not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := db.Delete(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if m.HonorPhotoKey != nil {
		if err := ctl.Blob.DeleteByKey(c.UserContext(), *m.HonorPhotoKey); err != nil {
			log.Printf("[WARN] honor photo cleanup failed: %v", err)
		}
	}
	return helper.JsonDeleted(c, "Honor deleted", fiber.Map{"honor_id": m.HonorID})
}

/* ========================= Pyqs ========================= */

type createPyqRequest struct {
	CourseCode string `json:"course_code" form:"course_code" validate:"required,min=2,max=40"`
	Year       int    `json:"year"        form:"year"        validate:"required,min=2000,max=2100"`
	SemTag     string `json:"sem_tag"     form:"sem_tag"     validate:"required,min=2,max=20"`
}

func (ctl *ArchiveController) CreatePyq(c *fiber.Ctx) error {
	var req createPyqRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	callerID, err := ctl.caller(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	fh := ossHelper.GetUploadFile(c)
	if fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File is required")
	}
	url, key, _, uerr := ctl.Blob.UploadRaw(c.UserContext(), "pyqs", fh)
	if uerr != nil {
		if fe, ok := uerr.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "Upload failed")
	}

	m := model.PyqModel{
		PyqCourseCode: strings.ToUpper(strings.TrimSpace(req.CourseCode)),
		PyqYear:       req.Year,
		PyqSemTag:     strings.ToUpper(strings.TrimSpace(req.SemTag)),
		PyqFileURL:    url,
		PyqFileKey:    key,
		PyqUploadedBy: callerID,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Question paper uploaded", m)
}

func (ctl *ArchiveController) ListPyqs(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.PyqModel{})
	if cc := strings.ToUpper(strings.TrimSpace(c.Query("course_code"))); cc != "" {
		q = q.Where("pyq_course_code = ?", cc)
	}
	var rows []model.PyqModel
	if err := q.Order("pyq_year DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", rows, nil)
}

func (ctl *ArchiveController) DeletePyq(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid pyq id")
	}
	db := ctl.DB.WithContext(c.UserContext())

	var m model.PyqModel
	if err := db.First(&m, "pyq_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question paper not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := db.Delete(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if err := ctl.Blob.DeleteByKey(c.UserContext(), m.PyqFileKey); err != nil {
		log.Printf("[WARN] pyq file cleanup failed: %v", err)
	}
	return helper.JsonDeleted(c, "Question paper deleted", fiber.Map{"pyq_id": m.PyqID})
}

/* ========================= Shared links ========================= */

type createLinkRequest struct {
	ClassID uuid.UUID `json:"class_id" validate:"required"`
	Title   string    `json:"title"    validate:"required,min=2,max=160"`
	URL     string    `json:"url"      validate:"required,url"`
}

func (ctl *ArchiveController) CreateLink(c *fiber.Ctx) error {
	var req createLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	callerID, err := ctl.caller(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	m := model.SharedLinkModel{
		LinkClassID:   req.ClassID,
		LinkTitle:     strings.TrimSpace(req.Title),
		LinkURL:       strings.TrimSpace(req.URL),
		LinkCreatedBy: callerID,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Link shared", m)
}

func (ctl *ArchiveController) ListLinks(c *fiber.Ctx) error {
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("classId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}
	var rows []model.SharedLinkModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("link_class_id = ?", classID).
		Order("link_created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", rows, nil)
}

func (ctl *ArchiveController) DeleteLink(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid link id")
	}
	db := ctl.DB.WithContext(c.UserContext())

	var m model.SharedLinkModel
	if err := db.First(&m, "link_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Link not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	callerID, cerr := ctl.caller(c)
	if cerr != nil {
		fe := cerr.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if callerID != m.LinkCreatedBy && !helper.IsAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the author or an admin can delete this link")
	}
	if err := db.Delete(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Link deleted", fiber.Map{"link_id": m.LinkID})
}

/* ========================= Semester assets ========================= */

type createAssetRequest struct {
	SemesterID uuid.UUID `json:"semester_id" form:"semester_id" validate:"required"`
	Title      string    `json:"title"       form:"title"       validate:"required,min=2,max=160"`
}

func (ctl *ArchiveController) CreateAsset(c *fiber.Ctx) error {
	var req createAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	callerID, err := ctl.caller(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	fh := ossHelper.GetUploadFile(c)
	if fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File is required")
	}
	url, key, _, uerr := ctl.Blob.UploadRaw(c.UserContext(), "semester-assets", fh)
	if uerr != nil {
		if fe, ok := uerr.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "Upload failed")
	}

	m := model.SemesterAssetModel{
		AssetSemesterID: req.SemesterID,
		AssetTitle:      strings.TrimSpace(req.Title),
		AssetFileURL:    url,
		AssetFileKey:    key,
		AssetUploadedBy: callerID,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Asset uploaded", m)
}

func (ctl *ArchiveController) ListAssets(c *fiber.Ctx) error {
	semID, err := uuid.Parse(strings.TrimSpace(c.Params("semesterId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester id")
	}
	var rows []model.SemesterAssetModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("asset_semester_id = ?", semID).
		Order("asset_created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", rows, nil)
}

func (ctl *ArchiveController) DeleteAsset(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid asset id")
	}
	db := ctl.DB.WithContext(c.UserContext())

	var m model.SemesterAssetModel
	if err := db.First(&m, "asset_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Asset not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := db.Delete(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if err := ctl.Blob.DeleteByKey(c.UserContext(), m.AssetFileKey); err != nil {
		log.Printf("[WARN] asset file cleanup failed: %v", err)
	}
	return helper.JsonDeleted(c, "Asset deleted", fiber.Map{"asset_id": m.AssetID})
}
