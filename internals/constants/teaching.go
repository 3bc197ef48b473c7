package constants

// Batas total durasi mengajar per user per tanggal: 10 jam.
const DailyTeachingLimitMinutes = 600

// Pesan error fitur jurnal mengajar
const (
	ErrSessionNotOwned    = "❌ Sesi mengajar ini bukan milik Anda."
	ErrSessionNotFound    = "Sesi mengajar tidak ditemukan."
	ErrInvalidDateFormat  = "Format tanggal tidak valid, gunakan YYYY-MM-DD."
	ErrTeachingDateFuture = "Tanggal mengajar tidak boleh di masa depan."
)
