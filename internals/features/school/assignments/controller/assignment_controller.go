// file: internals/features/school/assignments/controller/assignment_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/school/assignments/dto"
	"campushub_backend/internals/features/school/assignments/model"
	"campushub_backend/internals/features/school/assignments/service"
	classModel "campushub_backend/internals/features/school/classes/model"
	courseModel "campushub_backend/internals/features/school/courses/model"
	semModel "campushub_backend/internals/features/school/semesters/model"
	userModel "campushub_backend/internals/features/users/user/model"
	helper "campushub_backend/internals/helpers"
)

type AssignmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AssignmentController {
	return &AssignmentController{DB: db, Validate: v}
}

const joinSelect = `course_assignments.assignment_id,
course_assignments.assignment_course_id,
course_assignments.assignment_assigned_at,
courses.course_code,
courses.course_title,
courses.course_credits,
users.user_name,
users.user_email,
users.user_photo_url`

/* ========================= Create ========================= */

// Create validates the (course, faculty, class, semester) tuple and writes
// the assignment plus the faculty/course back-references in one transaction.
// The unique index on the quadruple decides races: the loser gets 409.
func (ctl *AssignmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	assignedBy, _ := c.Locals("user_uid").(string)
	if err := service.ValidateCreateInput(req.CourseID, req.FacultyID, req.ClassID,
		req.SemesterID, req.Year, assignedBy); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext())

	var course courseModel.CourseModel
	if err := db.First(&course, "course_id = ?", req.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var faculty userModel.UserModel
	err := db.First(&faculty, "user_id = ?", req.FacultyID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, service.ErrNotFaculty.Error())
	}
	if err := service.CheckFacultyRole(&faculty); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	}

	var cls classModel.ClassModel
	if err := db.First(&cls, "class_id = ?", req.ClassID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var sem semModel.SemesterModel
	if err := db.First(&sem, "semester_id = ?", req.SemesterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Semester not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	m := model.CourseAssignmentModel{
		AssignmentCourseID:   course.CourseID,
		AssignmentFacultyID:  faculty.UserID,
		AssignmentClassID:    cls.ClassID,
		AssignmentSemesterID: sem.SemesterID,
		AssignmentYear:       req.Year,
		AssignmentSection:    req.Section,
		AssignmentAssignedBy: assignedBy,
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		// Back-references: faculty's taught-course list and the course's
		// faculty list, both deduplicated.
		if err := tx.Model(&userModel.UserModel{}).
			Where("user_id = ? AND NOT (? = ANY(user_course_ids))", faculty.UserID, course.CourseID.String()).
			Update("user_course_ids", gorm.Expr("array_append(user_course_ids, ?)", course.CourseID.String())).Error; err != nil {
			return err
		}
		return tx.Model(&courseModel.CourseModel{}).
			Where("course_id = ? AND NOT (? = ANY(course_faculty_ids))", course.CourseID, faculty.UserID.String()).
			Update("course_faculty_ids", gorm.Expr("array_append(course_faculty_ids, ?)", faculty.UserID.String())).Error
	}); err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Course assigned", m)
}

/* ========================= Resolve ========================= */

// ResolveForCaller resolves the caller's effective course list via their
// profile's class pointer.
func (ctl *AssignmentController) ResolveForCaller(c *fiber.Ctx) error {
	semID, err := uuid.Parse(strings.TrimSpace(c.Params("semesterId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester id")
	}

	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	db := ctl.DB.WithContext(c.UserContext())

	var caller userModel.UserModel
	if err := db.First(&caller, "user_id = ?", callerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if caller.UserClassID == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User has no class assigned")
	}

	return ctl.resolveAndRespond(c, *caller.UserClassID, semID)
}

// ResolveByClass resolves by class business id.
func (ctl *AssignmentController) ResolveByClass(c *fiber.Ctx) error {
	semID, err := uuid.Parse(strings.TrimSpace(c.Params("semesterId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester id")
	}
	code := strings.ToUpper(strings.TrimSpace(c.Params("classCode")))

	var cls classModel.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_code = ?", code).First(&cls).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return ctl.resolveAndRespond(c, cls.ClassID, semID)
}

func (ctl *AssignmentController) resolveAndRespond(c *fiber.Ctx, classID, semesterID uuid.UUID) error {
	var rows []service.AssignmentRow
	if err := ctl.DB.WithContext(c.UserContext()).
		Table("course_assignments").
		Select(joinSelect).
		Joins("JOIN courses ON courses.course_id = course_assignments.assignment_course_id").
		Joins("JOIN users ON users.user_id = course_assignments.assignment_faculty_id").
		Where("course_assignments.assignment_class_id = ? AND course_assignments.assignment_semester_id = ?",
			classID, semesterID).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Zero assignments is an empty list, not an error.
	return helper.JsonOK(c, "", service.FlattenRows(rows))
}

// ResolveSingle returns one course's assignment within a class+semester,
// with the semester window joined in. Missing assignment is distinct from a
// missing course.
func (ctl *AssignmentController) ResolveSingle(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("courseId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}
	semID, err := uuid.Parse(strings.TrimSpace(c.Params("semesterId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester id")
	}
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("classId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	db := ctl.DB.WithContext(c.UserContext())

	var rows []service.AssignmentRow
	if err := db.Table("course_assignments").
		Select(joinSelect).
		Joins("JOIN courses ON courses.course_id = course_assignments.assignment_course_id").
		Joins("JOIN users ON users.user_id = course_assignments.assignment_faculty_id").
		Where(`course_assignments.assignment_course_id = ?
			AND course_assignments.assignment_semester_id = ?
			AND course_assignments.assignment_class_id = ?`, courseID, semID, classID).
		Limit(1).Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(rows) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course assignment not found for this semester")
	}

	var sem semModel.SemesterModel
	if err := db.First(&sem, "semester_id = ?", semID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Semester not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	entry := service.FlattenRows(rows)[0]
	return helper.JsonOK(c, "", dto.SingleCourse{
		SemesterCourse: entry,
		Semester: dto.SemesterInfo{
			Name:      sem.SemesterName,
			StartDate: sem.SemesterStartDate,
			EndDate:   sem.SemesterEndDate,
		},
	})
}
