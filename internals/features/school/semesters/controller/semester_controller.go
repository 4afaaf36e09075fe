// file: internals/features/school/semesters/controller/semester_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	assignmentModel "campushub_backend/internals/features/school/assignments/model"
	classModel "campushub_backend/internals/features/school/classes/model"
	"campushub_backend/internals/features/school/semesters/dto"
	"campushub_backend/internals/features/school/semesters/model"
	"campushub_backend/internals/features/school/semesters/service"
	userModel "campushub_backend/internals/features/users/user/model"
	helper "campushub_backend/internals/helpers"
)

type SemesterController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *SemesterController {
	return &SemesterController{DB: db, Validate: v}
}

/* ========================= Create ========================= */

// Create persists a new semester and points the owning class at it. The two
// writes share one transaction so the pointer can never dangle.
func (ctl *SemesterController) Create(c *fiber.Ctx) error {
	var req dto.CreateSemesterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.SemCode = service.NormalizeSemCode(req.SemCode)
	req.ClassCode = strings.ToUpper(strings.TrimSpace(req.ClassCode))
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if _, err := service.ParseSemNumber(req.SemCode); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	db := ctl.DB.WithContext(c.UserContext())

	var cls classModel.ClassModel
	if err := db.Where("class_code = ?", req.ClassCode).First(&cls).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var creator userModel.UserModel
	if err := db.First(&creator, "user_id = ?", callerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var exists int64
	if err := db.Model(&model.SemesterModel{}).
		Where("semester_class_id = ? AND semester_code = ?", cls.ClassID, req.SemCode).
		Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if exists > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Semester already exists for this class")
	}

	sem := model.SemesterModel{
		SemesterClassID:   cls.ClassID,
		SemesterCode:      req.SemCode,
		SemesterName:      req.Name,
		SemesterYear:      req.Year,
		SemesterStartDate: req.StartDate,
		SemesterEndDate:   req.EndDate,
		SemesterStatus:    model.StatusUpcoming,
		SemesterCreatedBy: creator.UserID,
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sem).Error; err != nil {
			return err
		}
		// New semester always becomes the class's current one.
		return tx.Model(&classModel.ClassModel{}).
			Where("class_id = ?", cls.ClassID).
			Update("class_current_semester_id", sem.SemesterID).Error
	}); err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Semester created",
		dto.ToSemesterResponse(&sem, cls.ClassCode, creator.UserUID, nil))
}

/* ========================= Update ========================= */

func (ctl *SemesterController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester id")
	}

	var req dto.UpdateSemesterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext())

	var sem model.SemesterModel
	if err := db.First(&sem, "semester_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Semester not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["semester_name"] = strings.TrimSpace(*req.Name)
	}
	if req.SemCode != nil {
		code := service.NormalizeSemCode(*req.SemCode)
		if _, err := service.ParseSemNumber(code); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		updates["semester_code"] = code
	}
	if req.Year != nil {
		updates["semester_year"] = *req.Year
	}
	if req.StartDate != nil {
		updates["semester_start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		updates["semester_end_date"] = *req.EndDate
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	// Re-derive lifecycle status when the term window moved.
	if req.StartDate != nil || req.EndDate != nil {
		start := sem.SemesterStartDate
		end := sem.SemesterEndDate
		if req.StartDate != nil {
			start = req.StartDate
		}
		if req.EndDate != nil {
			end = req.EndDate
		}
		updates["semester_status"] = service.StatusFor(start, end, time.Now())
	}

	if err := db.Model(&sem).Updates(updates).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Semester updated", ctl.toResponse(c, &sem))
}

/* ========================= Read ========================= */

func (ctl *SemesterController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester id")
	}

	var sem model.SemesterModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&sem, "semester_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Semester not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", ctl.toResponse(c, &sem))
}

func (ctl *SemesterController) GetByClass(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("classCode")))

	var cls classModel.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_code = ?", code).First(&cls).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.SemesterModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("semester_class_id = ?", cls.ClassID).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	// "SEM10" must not list before "SEM2", so sort on the parsed ordinal.
	service.SortByOrdinal(rows)

	out := make([]dto.SemesterResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ctl.toResponse(c, &rows[i]))
	}
	return helper.JsonList(c, "", out, nil)
}

/* ========================= Delete ========================= */

// Delete removes a semester; when it is the class's current one the pointer
// is cleared in the same transaction.
func (ctl *SemesterController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester id")
	}

	db := ctl.DB.WithContext(c.UserContext())

	var sem model.SemesterModel
	if err := db.First(&sem, "semester_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Semester not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&classModel.ClassModel{}).
			Where("class_id = ? AND class_current_semester_id = ?", sem.SemesterClassID, sem.SemesterID).
			Update("class_current_semester_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&sem).Error
	}); err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonDeleted(c, "Semester deleted", fiber.Map{"semester_id": sem.SemesterID})
}

/* ========================= internal ========================= */

// toResponse shapes the business-id-first DTO, joining class code, creator
// uid and the course codes assigned in this semester.
func (ctl *SemesterController) toResponse(c *fiber.Ctx, sem *model.SemesterModel) dto.SemesterResponse {
	db := ctl.DB.WithContext(c.UserContext())

	var classCodes, creatorUIDs []string
	db.Model(&classModel.ClassModel{}).
		Where("class_id = ?", sem.SemesterClassID).
		Limit(1).Pluck("class_code", &classCodes)
	db.Model(&userModel.UserModel{}).
		Where("user_id = ?", sem.SemesterCreatedBy).
		Limit(1).Pluck("user_uid", &creatorUIDs)

	var classCode, creatorUID string
	if len(classCodes) > 0 {
		classCode = classCodes[0]
	}
	if len(creatorUIDs) > 0 {
		creatorUID = creatorUIDs[0]
	}

	var courses []string
	db.Model(&assignmentModel.CourseAssignmentModel{}).
		Distinct("courses.course_code").
		Joins("JOIN courses ON courses.course_id = course_assignments.assignment_course_id").
		Where("course_assignments.assignment_semester_id = ?", sem.SemesterID).
		Order("courses.course_code ASC").
		Pluck("courses.course_code", &courses)

	return dto.ToSemesterResponse(sem, classCode, creatorUID, courses)
}
