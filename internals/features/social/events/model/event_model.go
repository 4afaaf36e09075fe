// file: internals/features/social/events/model/event_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// EventModel is one post on the campus event timeline.
type EventModel struct {
	EventID uuid.UUID `json:"event_id" gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey"`

	EventTitle   string  `json:"event_title"             gorm:"column:event_title;type:varchar(160);not null"`
	EventCaption *string `json:"event_caption,omitempty" gorm:"column:event_caption;type:text"`

	EventImageURL *string `json:"event_image_url,omitempty" gorm:"column:event_image_url;type:text"`
	EventImageKey *string `json:"event_image_key,omitempty" gorm:"column:event_image_key;type:text"`

	EventAuthorID uuid.UUID      `json:"event_author_id" gorm:"column:event_author_id;type:uuid;not null;index"`
	EventLikes    pq.StringArray `json:"event_likes"     gorm:"column:event_likes;type:text[]"`

	EventCreatedAt time.Time      `json:"event_created_at"           gorm:"column:event_created_at;type:timestamptz;not null;default:now();autoCreateTime"`
	EventUpdatedAt time.Time      `json:"event_updated_at"           gorm:"column:event_updated_at;type:timestamptz;not null;default:now();autoUpdateTime"`
	EventDeletedAt gorm.DeletedAt `json:"event_deleted_at,omitempty" gorm:"column:event_deleted_at;type:timestamptz;index"`
}

func (EventModel) TableName() string { return "events" }

// EventCommentModel is one comment under a timeline post.
type EventCommentModel struct {
	CommentID       uuid.UUID `json:"comment_id"        gorm:"column:comment_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CommentEventID  uuid.UUID `json:"comment_event_id"  gorm:"column:comment_event_id;type:uuid;not null;index"`
	CommentAuthorID uuid.UUID `json:"comment_author_id" gorm:"column:comment_author_id;type:uuid;not null"`

	CommentText string `json:"comment_text" gorm:"column:comment_text;type:text;not null"`

	CommentCreatedAt time.Time      `json:"comment_created_at"           gorm:"column:comment_created_at;type:timestamptz;not null;default:now();autoCreateTime"`
	CommentDeletedAt gorm.DeletedAt `json:"comment_deleted_at,omitempty" gorm:"column:comment_deleted_at;type:timestamptz;index"`
}

func (EventCommentModel) TableName() string { return "event_comments" }
