package utils

import (
	"testing"

	"dormhub-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		d, err := ParseDate("2025-01-31")
		assert.NoError(t, err)
		assert.Equal(t, "2025-01-31", FormatDate(d))
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := ParseDate("31/01/2025")
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})
}

func TestValidateDateRange(t *testing.T) {
	t.Run("EndAfterStart", func(t *testing.T) {
		assert.NoError(t, ValidateDateRange("2025-01-01", "2025-06-30"))
	})

	t.Run("OpenEnded", func(t *testing.T) {
		assert.NoError(t, ValidateDateRange("2025-01-01", ""))
	})

	t.Run("EndEqualsStart", func(t *testing.T) {
		err := ValidateDateRange("2025-01-01", "2025-01-01")
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		err := ValidateDateRange("2025-06-30", "2025-01-01")
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	})
}
