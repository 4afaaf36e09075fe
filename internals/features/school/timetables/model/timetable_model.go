// file: internals/features/school/timetables/model/timetable_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TimetableModel holds one weekly grid per (class, semester). The grid is a
// JSONB map of weekday → period list; the server treats it as opaque.
type TimetableModel struct {
	TimetableID         uuid.UUID `json:"timetable_id"          gorm:"column:timetable_id;type:uuid;default:gen_random_uuid();primaryKey"`
	TimetableClassID    uuid.UUID `json:"timetable_class_id"    gorm:"column:timetable_class_id;type:uuid;not null;uniqueIndex:uq_timetables_class_semester"`
	TimetableSemesterID uuid.UUID `json:"timetable_semester_id" gorm:"column:timetable_semester_id;type:uuid;not null;uniqueIndex:uq_timetables_class_semester"`

	TimetableGrid datatypes.JSON `json:"timetable_grid" gorm:"column:timetable_grid;type:jsonb;not null;default:'{}'"`

	TimetableUpdatedBy uuid.UUID `json:"timetable_updated_by" gorm:"column:timetable_updated_by;type:uuid;not null"`
	TimetableCreatedAt time.Time `json:"timetable_created_at" gorm:"column:timetable_created_at;type:timestamptz;not null;default:now();autoCreateTime"`
	TimetableUpdatedAt time.Time `json:"timetable_updated_at" gorm:"column:timetable_updated_at;type:timestamptz;not null;default:now();autoUpdateTime"`
}

func (TimetableModel) TableName() string { return "timetables" }
