// file: internals/seeds/teaching/seed_teaching_sessions.go
package teaching

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	sessionModel "jurnalguru_backend/internals/features/teaching/teaching_sessions/model"
	"jurnalguru_backend/internals/helpers/dbtime"
)

var seedSubjects = []string{"Mathematics", "English Literature", "Science", "History", "Art"}

var seedClasses = []string{"Grade 5A", "Grade 5B", "Grade 6A", "Grade 6B"}

var seedTopics = []string{
	"Introduction to Fractions",
	"Reading Comprehension: Short Stories",
	"The Water Cycle",
	"Ancient Civilizations",
	"Color Theory Basics",
	"Multiplication and Division",
	"Grammar: Past Tense",
	"Plant Life Cycles",
}

// Slot jam per hari; total 300 menit, jauh di bawah batas harian 600.
var seedSlots = []struct {
	start string
	end   string
}{
	{"08:00", "09:30"},
	{"10:00", "11:00"},
	{"13:00", "14:30"},
	{"15:00", "16:00"},
}

// SeedTeachingSessions: 5 hari terakhir, 2-4 sesi per hari, untuk user demo.
func SeedTeachingSessions(db *gorm.DB, teacherID uuid.UUID) {
	var count int64
	if err := db.Model(&sessionModel.TeachingSessionModel{}).
		Where("teaching_session_user_id = ?", teacherID).
		Count(&count).Error; err != nil {
		log.Fatalf("❌ Gagal cek sesi mengajar demo: %v", err)
	}
	if count > 0 {
		log.Println("ℹ️ Sesi mengajar demo sudah ada, dilewati.")
		return
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var sessions []sessionModel.TeachingSessionModel
	idx := 0
	for dayOffset := 4; dayOffset >= 0; dayOffset-- {
		date := today.AddDate(0, 0, -dayOffset)
		perDay := 2 + (dayOffset % 3) // 2-4 sesi per hari
		for slot := 0; slot < perDay; slot++ {
			start, err := dbtime.Parse(seedSlots[slot].start)
			if err != nil {
				log.Fatalf("❌ Slot seed tidak valid: %v", err)
			}
			end, err := dbtime.Parse(seedSlots[slot].end)
			if err != nil {
				log.Fatalf("❌ Slot seed tidak valid: %v", err)
			}

			sessions = append(sessions, sessionModel.TeachingSessionModel{
				TeachingSessionUserId:    teacherID,
				TeachingSessionDate:      date,
				TeachingSessionSubject:   seedSubjects[idx%len(seedSubjects)],
				TeachingSessionClass:     seedClasses[idx%len(seedClasses)],
				TeachingSessionTopic:     seedTopics[idx%len(seedTopics)],
				TeachingSessionStartTime: start,
				TeachingSessionEndTime:   end,
			})
			idx++
		}
	}

	if err := db.Create(&sessions).Error; err != nil {
		log.Fatalf("❌ Gagal insert sesi mengajar demo: %v", err)
	}
	log.Printf("✅ %d sesi mengajar demo berhasil dibuat.", len(sessions))
}
