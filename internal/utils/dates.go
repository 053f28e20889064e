package utils

import (
	"time"

	"dormhub-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a time.Time.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}
	return t, nil
}

// FormatDate renders t as yyyy-mm-dd.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ValidateDateRange checks that end is strictly after start. An empty end
// date is allowed (open-ended assignment).
func ValidateDateRange(startStr, endStr string) error {
	start, err := ParseDate(startStr)
	if err != nil {
		return err
	}
	if endStr == "" {
		return nil
	}
	end, err := ParseDate(endStr)
	if err != nil {
		return err
	}
	if !end.After(start) {
		return domain.ErrInvalidDateRange
	}
	return nil
}
