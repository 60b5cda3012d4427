package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeWithFallback(t *testing.T) {
	cases := []string{
		"2026-08-23T10:30:00Z",                       // RFC3339
		"2026-08-23T10:30:00.123456789Z",             // RFC3339Nano
		"2026-08-23 10:30:00",                        // SQLite default
		"2026-08-23 10:30:00.123456789+07:00",        // SQLite with offset
	}

	for _, raw := range cases {
		got, err := ParseTimeWithFallback(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, 2026, got.Year())
		assert.Equal(t, time.August, got.Month())
		assert.Equal(t, 23, got.Day())
	}
}

func TestParseTimeWithFallbackUnknownFormat(t *testing.T) {
	_, err := ParseTimeWithFallback("23/08/2026")
	assert.Error(t, err)
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "0.386", FormatScore(0.386))
	assert.Equal(t, "1.000", FormatScore(1))
	assert.Equal(t, "0.000", FormatScore(0))
}
