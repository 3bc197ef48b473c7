// file: internals/seeds/users/seed_users.go
package users

import (
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userModel "jurnalguru_backend/internals/features/users/user/model"
)

// SeedDemoTeacher: user demo untuk development.
// Kalau sudah ada, pakai yang lama (idempotent).
func SeedDemoTeacher(db *gorm.DB) uuid.UUID {
	var existing userModel.UserModel
	err := db.Where("email = ?", "teacher@example.com").First(&existing).Error
	if err == nil {
		log.Println("ℹ️ User demo 'teacher@example.com' sudah ada, dilewati.")
		return existing.ID
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("❌ Gagal cek user demo: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Gagal hash password demo: %v", err)
	}

	teacher := userModel.UserModel{
		UserName: "Demo Teacher",
		Email:    "teacher@example.com",
		Password: string(hashed),
		IsActive: true,
	}
	if err := db.Create(&teacher).Error; err != nil {
		log.Fatalf("❌ Gagal membuat user demo: %v", err)
	}

	log.Println("✅ User demo 'teacher@example.com' berhasil dibuat.")
	return teacher.ID
}
