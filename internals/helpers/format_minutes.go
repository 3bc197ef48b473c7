// file: internals/helpers/format_minutes.go
package helper

import "fmt"

// FormatMinutes: format durasi menit ke label jam/menit ("1h 30m", "2h", "45m").
// 0 menit ditampilkan sebagai "0h" supaya konsisten dengan tampilan ringkasan.
func FormatMinutes(minutes int) string {
	if minutes <= 0 {
		return "0h"
	}

	hours := minutes / 60
	mins := minutes % 60

	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}
