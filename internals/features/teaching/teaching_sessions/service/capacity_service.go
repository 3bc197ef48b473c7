// file: internals/features/teaching/teaching_sessions/service/capacity_service.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jurnalguru_backend/internals/constants"
	sessionModel "jurnalguru_backend/internals/features/teaching/teaching_sessions/model"
	sessionRepo "jurnalguru_backend/internals/features/teaching/teaching_sessions/repository"
	helper "jurnalguru_backend/internals/helpers"
	"jurnalguru_backend/internals/helpers/dbtime"
)

// ErrInvalidTimeRange: kandidat end tidak setelah start. Layer request
// seharusnya sudah menolak ini, tapi validator tetap menegaskan ulang.
var ErrInvalidTimeRange = errors.New("jam selesai harus setelah jam mulai")

// DailyLimitExceededError: menulis sesi ini akan membuat total harian
// melewati 600 menit. Membawa sisa menit supaya caller bisa menampilkan
// "sisa waktu Anda Xh Ym".
type DailyLimitExceededError struct {
	RemainingMinutes int
}

func (e *DailyLimitExceededError) Error() string {
	return fmt.Sprintf(
		"Menambah sesi ini akan melebihi batas harian 10 jam. Sisa waktu Anda untuk tanggal ini: %s.",
		helper.FormatMinutes(e.RemainingMinutes),
	)
}

// CapacityCheck: hasil perhitungan kapasitas harian.
type CapacityCheck struct {
	ExistingMinutes  int
	CandidateMinutes int
	RemainingMinutes int
	LimitReached     bool
}

// SumDurations menjumlahkan durasi menit semua sesi.
func SumDurations(sessions []sessionModel.TeachingSessionModel) int {
	total := 0
	for _, s := range sessions {
		total += s.DurationMinutes()
	}
	return total
}

// RemainingMinutes: sisa kapasitas harian, tidak pernah negatif.
func RemainingMinutes(existingMinutes int) int {
	remaining := constants.DailyTeachingLimitMinutes - existingMinutes
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CheckCapacity: fungsi murni di atas himpunan sesi sesama-hari.
// Kandidat diterima jika existing + candidate <= 600 (batas inklusif);
// lewat satu menit saja langsung ditolak.
func CheckCapacity(siblings []sessionModel.TeachingSessionModel, start, end dbtime.Tod) (CapacityCheck, error) {
	candidate := dbtime.MinutesBetween(start, end)
	if candidate <= 0 {
		return CapacityCheck{}, ErrInvalidTimeRange
	}

	existing := SumDurations(siblings)
	remaining := RemainingMinutes(existing)

	check := CapacityCheck{
		ExistingMinutes:  existing,
		CandidateMinutes: candidate,
		RemainingMinutes: remaining,
		LimitReached:     remaining <= 0,
	}

	if existing+candidate > constants.DailyTeachingLimitMinutes {
		return check, &DailyLimitExceededError{RemainingMinutes: remaining}
	}
	return check, nil
}

/* =======================================================
   DB-backed wrapper
   ======================================================= */

// CheckCapacityForUpdate: ambil sesi sesama-hari user (dikunci FOR UPDATE,
// minus sesi yang sedang diedit) lalu jalankan CheckCapacity. Harus
// dipanggil di dalam transaksi tulis.
func CheckCapacityForUpdate(tx *gorm.DB, userID uuid.UUID, date time.Time, start, end dbtime.Tod, excludeID *uuid.UUID) (CapacityCheck, error) {
	siblings, err := sessionRepo.ListByUserAndDateForUpdate(tx, userID, date, excludeID)
	if err != nil {
		return CapacityCheck{}, err
	}
	return CheckCapacity(siblings, start, end)
}

// RemainingCapacity: sisa kapasitas user pada satu tanggal, tanpa kandidat.
// Dipakai tampilan baca (listing & form tambah sesi).
func RemainingCapacity(db *gorm.DB, userID uuid.UUID, date time.Time) (remaining int, limitReached bool, err error) {
	sessions, err := sessionRepo.ListByUserAndDate(db, userID, date, nil)
	if err != nil {
		return 0, false, err
	}
	remaining = RemainingMinutes(SumDurations(sessions))
	return remaining, remaining <= 0, nil
}
