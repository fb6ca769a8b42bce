package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-07-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.July, 5, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("2025-07-05T18:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 18, got.Hour())

	got, err = ParseDate("2025-07-05 18:30")
	require.NoError(t, err)
	assert.Equal(t, 30, got.Minute())

	_, err = ParseDate("next saturday")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestValidClock(t *testing.T) {
	valid := []string{"00:00", "09:30", "18:05", "23:59"}
	for _, s := range valid {
		assert.True(t, ValidClock(s), "ValidClock(%q)", s)
	}

	invalid := []string{"", "9:30", "24:00", "12:60", "1830", "ab:cd", "12-30"}
	for _, s := range invalid {
		assert.False(t, ValidClock(s), "ValidClock(%q)", s)
	}
}
