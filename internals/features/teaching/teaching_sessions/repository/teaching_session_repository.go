// file: internals/features/teaching/teaching_sessions/repository/teaching_session_repository.go
package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	sessionModel "jurnalguru_backend/internals/features/teaching/teaching_sessions/model"
)

// ListByUserAndDate: semua sesi user pada satu tanggal, urut jam mulai.
// excludeID dipakai saat edit supaya sesi yang sedang diubah tidak ikut dihitung.
func ListByUserAndDate(db *gorm.DB, userID uuid.UUID, date time.Time, excludeID *uuid.UUID) ([]sessionModel.TeachingSessionModel, error) {
	q := db.
		Where("teaching_session_user_id = ?", userID).
		Where("teaching_session_date = ?", date.Format("2006-01-02")).
		Order("teaching_session_start_time ASC")
	if excludeID != nil {
		q = q.Where("teaching_session_id <> ?", *excludeID)
	}

	var sessions []sessionModel.TeachingSessionModel
	if err := q.Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// ListByUserAndDateForUpdate: sama seperti ListByUserAndDate tapi mengunci
// baris (SELECT ... FOR UPDATE). Dipanggil di dalam transaksi tulis supaya
// dua request paralel tidak sama-sama lolos cek kapasitas harian.
func ListByUserAndDateForUpdate(tx *gorm.DB, userID uuid.UUID, date time.Time, excludeID *uuid.UUID) ([]sessionModel.TeachingSessionModel, error) {
	q := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("teaching_session_user_id = ?", userID).
		Where("teaching_session_date = ?", date.Format("2006-01-02")).
		Order("teaching_session_start_time ASC")
	if excludeID != nil {
		q = q.Where("teaching_session_id <> ?", *excludeID)
	}

	var sessions []sessionModel.TeachingSessionModel
	if err := q.Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// ListByUserBetween: sesi user dalam rentang tanggal inklusif,
// urut tanggal lalu jam mulai (untuk rekap mingguan).
func ListByUserBetween(db *gorm.DB, userID uuid.UUID, from, to time.Time) ([]sessionModel.TeachingSessionModel, error) {
	var sessions []sessionModel.TeachingSessionModel
	err := db.
		Where("teaching_session_user_id = ?", userID).
		Where("teaching_session_date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("teaching_session_date ASC").
		Order("teaching_session_start_time ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func FindByID(db *gorm.DB, id uuid.UUID) (*sessionModel.TeachingSessionModel, error) {
	var session sessionModel.TeachingSessionModel
	if err := db.First(&session, "teaching_session_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func Create(db *gorm.DB, m *sessionModel.TeachingSessionModel) error {
	return db.Create(m).Error
}

func Save(db *gorm.DB, m *sessionModel.TeachingSessionModel) error {
	return db.Save(m).Error
}

// Delete: hapus permanen, tanpa soft delete (tidak ada undo).
func Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Delete(&sessionModel.TeachingSessionModel{}, "teaching_session_id = ?", id).Error
}
