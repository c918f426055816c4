package jognote

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kyoshidajp/jognote/internal/domain"
)

func TestParseDate(t *testing.T) {
	date, err := parseDate("2013年5月10日のワークアウト")
	require.NoError(t, err)
	require.Equal(t, time.Date(2013, time.May, 10, 0, 0, 0, 0, time.UTC), date)
}

func TestParseDateMissingUnit(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no year", "5月10日"},
		{"no month", "2013年10日"},
		{"no day", "2013年5月"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseDate(tt.text)
			require.ErrorIs(t, err, domain.ErrParse)
		})
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.Duration
	}{
		{"all units", "ジョギング 1時間30分5秒", domain.Duration{Hours: 1, Minutes: 30, Seconds: 5}},
		{"minutes only", "ジョギング 45分", domain.Duration{Minutes: 45}},
		{"no units", "ジョギング", domain.Duration{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, parseDuration(tt.text))
		})
	}
}

func TestParseDistance(t *testing.T) {
	d := parseDistance("ジョギング 5.2 km 30分")
	require.NotNil(t, d)
	require.Equal(t, "5.2", *d)
}

func TestParseDistanceAbsentIsNil(t *testing.T) {
	// No distance is nil, never "0"; nil and zero mean different things in
	// the export.
	require.Nil(t, parseDistance("ジョギング 30分"))
	require.Nil(t, parseDistance("5.2 miles"))
}
