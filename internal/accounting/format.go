package accounting

import (
	"fmt"
	"math"
	"time"
)

// FormatHours renders hours with two decimals, e.g. "8.50h".
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.2fh", hours)
}

// FormatDuration renders hours as whole hours and minutes, e.g. "8h 30m".
func FormatDuration(hours float64) string {
	total := int(math.Round(hours * 60))
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}
	return fmt.Sprintf("%s%dh %dm", sign, total/60, total%60)
}

// FormatElapsed renders a running timer as HH:MM:SS.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}
