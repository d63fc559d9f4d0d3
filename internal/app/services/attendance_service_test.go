package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardhiancalwa/Schola/internal/app/models"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func TestNormalizeAttendanceStatus(t *testing.T) {
	t.Run("canonical statuses pass through", func(t *testing.T) {
		for _, raw := range []string{"present", "Excused", " ABSENT "} {
			status, err := normalizeAttendanceStatus(raw)
			require.NoError(t, err, raw)
			assert.True(t, models.IsValidAttendanceStatus(string(status)))
		}
	})

	t.Run("indonesian labels map to the enum", func(t *testing.T) {
		cases := map[string]models.AttendanceStatus{
			"Hadir": models.StatusPresent,
			"izin":  models.StatusExcused,
			"Alpha": models.StatusAbsent,
		}
		for raw, want := range cases {
			status, err := normalizeAttendanceStatus(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, want, status)
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := normalizeAttendanceStatus("late")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "present, excused, absent")
	})
}

func TestParseAttendanceDate(t *testing.T) {
	date, err := parseAttendanceDate("2026-08-17")
	require.NoError(t, err)
	assert.Equal(t, 2026, date.Year())

	_, err = parseAttendanceDate("17-08-2026")
	assert.Error(t, err)
}

func TestCurrentAcademicTerm(t *testing.T) {
	year, semester := currentAcademicTerm(mustDate(t, "2026-08-30"))
	assert.Equal(t, "2026/2027", year)
	assert.Equal(t, "Ganjil", semester)

	year, semester = currentAcademicTerm(mustDate(t, "2026-03-01"))
	assert.Equal(t, "2025/2026", year)
	assert.Equal(t, "Genap", semester)
}
