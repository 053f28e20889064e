package utils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReceiptNumber(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 30, 0, 123_000_000, time.UTC)

	got := GenerateReceiptNumber(now)
	assert.Regexp(t, `^PMT-20250314-\d{4}$`, got)
	assert.Equal(t, fmt.Sprintf("PMT-20250314-%04d", now.UnixMilli()%10000), got)
}

func TestGenerateReceiptNumber_PadsShortSuffix(t *testing.T) {
	// Millisecond remainder below 1000 must still render four digits.
	now := time.UnixMilli(7).UTC()
	assert.Equal(t, "PMT-19700101-0007", GenerateReceiptNumber(now))
}
