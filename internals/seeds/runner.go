// file: internals/seeds/runner.go
package seeds

import (
	teaching "jurnalguru_backend/internals/seeds/teaching"
	users "jurnalguru_backend/internals/seeds/users"

	"gorm.io/gorm"
)

// RunAllSeeds: data demo untuk development (jalan kalau RUN_SEEDS=true).
// Urutan penting: user dulu, baru sesi mengajar.
func RunAllSeeds(db *gorm.DB) {
	teacherID := users.SeedDemoTeacher(db)
	teaching.SeedTeachingSessions(db, teacherID)
}
