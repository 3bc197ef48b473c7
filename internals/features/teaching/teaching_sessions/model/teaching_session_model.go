// file: internals/features/teaching/teaching_sessions/model/teaching_session_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	"jurnalguru_backend/internals/helpers/dbtime"
)

type TeachingSessionModel struct {
	TeachingSessionId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teaching_session_id" json:"teaching_session_id"`

	TeachingSessionUserId uuid.UUID `gorm:"type:uuid;not null;column:teaching_session_user_id" json:"teaching_session_user_id"`

	TeachingSessionDate    time.Time `gorm:"type:date;not null;column:teaching_session_date"    json:"teaching_session_date"`
	TeachingSessionSubject string    `gorm:"size:255;not null;column:teaching_session_subject"  json:"teaching_session_subject"`
	TeachingSessionClass   string    `gorm:"size:255;not null;column:teaching_session_class"    json:"teaching_session_class"`
	TeachingSessionTopic   string    `gorm:"not null;column:teaching_session_topic"             json:"teaching_session_topic"`

	TeachingSessionStartTime dbtime.Tod `gorm:"type:time;not null;column:teaching_session_start_time" json:"teaching_session_start_time"`
	TeachingSessionEndTime   dbtime.Tod `gorm:"type:time;not null;column:teaching_session_end_time"   json:"teaching_session_end_time"`

	TeachingSessionNotes *string `gorm:"column:teaching_session_notes" json:"teaching_session_notes,omitempty"`

	TeachingSessionCreatedAt time.Time  `gorm:"column:teaching_session_created_at;autoCreateTime" json:"teaching_session_created_at"`
	TeachingSessionUpdatedAt *time.Time `gorm:"column:teaching_session_updated_at;autoUpdateTime" json:"teaching_session_updated_at,omitempty"`
}

func (TeachingSessionModel) TableName() string { return "teaching_sessions" }

// DurationMinutes: durasi sesi dalam menit (end - start).
// Invariant tabel menjamin end > start, jadi hasilnya selalu positif.
func (m TeachingSessionModel) DurationMinutes() int {
	return dbtime.MinutesBetween(m.TeachingSessionStartTime, m.TeachingSessionEndTime)
}
