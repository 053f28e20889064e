package utils

import (
	"fmt"
	"time"
)

// GenerateReceiptNumber derives a receipt number from the wall clock:
// PMT-<yyyymmdd>-<4 digits taken from the millisecond timestamp>. Collisions
// are possible within the same sub-second window and are caught by the
// payments table's unique constraint.
func GenerateReceiptNumber(now time.Time) string {
	return fmt.Sprintf("PMT-%s-%04d", now.Format("20060102"), now.UnixMilli()%10000)
}
