// file: internals/features/school/timetables/controller/timetable_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campushub_backend/internals/features/school/timetables/model"
	helper "campushub_backend/internals/helpers"
)

type TimetableController struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *TimetableController {
	return &TimetableController{DB: db}
}

type upsertTimetableRequest struct {
	ClassID    uuid.UUID       `json:"class_id"`
	SemesterID uuid.UUID       `json:"semester_id"`
	Grid       json.RawMessage `json:"grid"`
}

// Upsert replaces the grid for (class, semester), creating the row on first
// write.
func (ctl *TimetableController) Upsert(c *fiber.Ctx) error {
	var req upsertTimetableRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.ClassID == uuid.Nil || req.SemesterID == uuid.Nil || len(req.Grid) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id, semester_id and grid are required")
	}
	if !json.Valid(req.Grid) {
		return helper.JsonError(c, fiber.StatusBadRequest, "grid is not valid JSON")
	}

	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	m := model.TimetableModel{
		TimetableClassID:    req.ClassID,
		TimetableSemesterID: req.SemesterID,
		TimetableGrid:       datatypes.JSON(req.Grid),
		TimetableUpdatedBy:  callerID,
	}
	if err := ctl.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "timetable_class_id"}, {Name: "timetable_semester_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"timetable_grid", "timetable_updated_by", "timetable_updated_at",
			}),
		}).Create(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Timetable saved", m)
}

func (ctl *TimetableController) Get(c *fiber.Ctx) error {
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("classId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}
	semID, err := uuid.Parse(strings.TrimSpace(c.Params("semesterId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester id")
	}

	var m model.TimetableModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("timetable_class_id = ? AND timetable_semester_id = ?", classID, semID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Timetable not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", m)
}
