// file: internals/features/social/notices/model/notice_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoticeModel is a class/semester-scoped announcement.
type NoticeModel struct {
	NoticeID         uuid.UUID  `json:"notice_id"          gorm:"column:notice_id;type:uuid;default:gen_random_uuid();primaryKey"`
	NoticeClassID    uuid.UUID  `json:"notice_class_id"    gorm:"column:notice_class_id;type:uuid;not null;index"`
	NoticeSemesterID *uuid.UUID `json:"notice_semester_id,omitempty" gorm:"column:notice_semester_id;type:uuid"`

	NoticeTitle string `json:"notice_title" gorm:"column:notice_title;type:varchar(160);not null"`
	NoticeBody  string `json:"notice_body"  gorm:"column:notice_body;type:text;not null"`

	NoticeAttachmentURL *string `json:"notice_attachment_url,omitempty" gorm:"column:notice_attachment_url;type:text"`
	NoticeAttachmentKey *string `json:"notice_attachment_key,omitempty" gorm:"column:notice_attachment_key;type:text"`

	NoticeAuthorID uuid.UUID `json:"notice_author_id" gorm:"column:notice_author_id;type:uuid;not null"`

	NoticeCreatedAt time.Time      `json:"notice_created_at"           gorm:"column:notice_created_at;type:timestamptz;not null;default:now();autoCreateTime"`
	NoticeUpdatedAt time.Time      `json:"notice_updated_at"           gorm:"column:notice_updated_at;type:timestamptz;not null;default:now();autoUpdateTime"`
	NoticeDeletedAt gorm.DeletedAt `json:"notice_deleted_at,omitempty" gorm:"column:notice_deleted_at;type:timestamptz;index"`
}

func (NoticeModel) TableName() string { return "notices" }
