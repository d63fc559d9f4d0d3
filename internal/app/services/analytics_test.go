package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ardhiancalwa/Schola/internal/app/models"
)

func TestAttendanceRate(t *testing.T) {
	t.Run("no logs means zero, not a default", func(t *testing.T) {
		assert.Equal(t, 0.0, AttendanceRate(nil))
		assert.Equal(t, 0.0, AttendanceRate([]models.AttendanceStatus{}))
	})

	t.Run("only present counts", func(t *testing.T) {
		statuses := []models.AttendanceStatus{
			models.StatusPresent,
			models.StatusPresent,
			models.StatusExcused,
			models.StatusAbsent,
		}
		assert.Equal(t, 50.0, AttendanceRate(statuses))
	})

	t.Run("all present", func(t *testing.T) {
		statuses := []models.AttendanceStatus{models.StatusPresent, models.StatusPresent}
		assert.Equal(t, 100.0, AttendanceRate(statuses))
	})
}

func TestSubmissionRate(t *testing.T) {
	t.Run("zero scores count as not submitted", func(t *testing.T) {
		s := &models.Student{Task1: 80, Task2: 0, Midterm: 75, FinalExam: 90}
		assert.Equal(t, 50.0, SubmissionRate(s))
	})

	t.Run("both tasks submitted", func(t *testing.T) {
		s := &models.Student{Task1: 80, Task2: 70}
		assert.Equal(t, 100.0, SubmissionRate(s))
	})

	t.Run("exam scores do not count as task submissions", func(t *testing.T) {
		s := &models.Student{Midterm: 75, FinalExam: 90}
		assert.Equal(t, 0.0, SubmissionRate(s))
	})

	t.Run("nothing submitted", func(t *testing.T) {
		assert.Equal(t, 0.0, SubmissionRate(&models.Student{}))
	})
}

func TestFinalGrade(t *testing.T) {
	assert.Equal(t, 80.0, FinalGrade(80, 80, 80, 80))
	assert.Equal(t, 77.5, FinalGrade(80, 70, 75, 85))
}

func TestRoundedFinalGrade(t *testing.T) {
	assert.Equal(t, 78.0, RoundedFinalGrade(80, 70, 75, 85))
	assert.Equal(t, 77.0, RoundedFinalGrade(80, 70, 74, 85))
	assert.Equal(t, 80.0, RoundedFinalGrade(80, 80, 80, 80))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		grade      float64
		attendance float64
		want       string
	}{
		{"high grade and attendance", 90, 95, PerformanceExcellent},
		{"excellent boundary", 85, 90, PerformanceExcellent},
		{"high grade but weak attendance", 90, 85, PerformanceAdequate},
		{"solid middle", 80, 100, PerformanceAdequate},
		{"grade below threshold", 65, 90, PerformanceNeedsGuidance},
		{"attendance below threshold", 80, 70, PerformanceNeedsGuidance},
		{"grade boundary stays adequate", 70, 75, PerformanceAdequate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.grade, tt.attendance))
		})
	}
}

func TestNeedsHelp(t *testing.T) {
	t.Run("grade below 70 always flags", func(t *testing.T) {
		assert.True(t, NeedsHelp(69, 100, false))
		assert.True(t, NeedsHelp(69, 100, true))
	})

	t.Run("strict raises the attendance bar", func(t *testing.T) {
		assert.False(t, NeedsHelp(80, 78, false))
		assert.True(t, NeedsHelp(80, 78, true))
	})

	t.Run("boundaries do not flag", func(t *testing.T) {
		assert.False(t, NeedsHelp(70, 75, false))
		assert.False(t, NeedsHelp(70, 80, true))
	})
}

func studentWithGrade(name string, grade float64, statuses ...models.AttendanceStatus) *models.StudentWithLogs {
	return &models.StudentWithLogs{
		Student:            models.Student{Name: name, FinalGrade: grade},
		AttendanceStatuses: statuses,
	}
}

func TestRankNeedsHelp(t *testing.T) {
	t.Run("worst grade first, capped at limit", func(t *testing.T) {
		students := []*models.StudentWithLogs{
			studentWithGrade("Andi", 65, models.StatusPresent),
			studentWithGrade("Budi", 90, models.StatusPresent),
			studentWithGrade("Citra", 40, models.StatusPresent),
			studentWithGrade("Dewi", 55, models.StatusPresent),
		}

		ranked := RankNeedsHelp(students, false, 2)
		assert.Len(t, ranked, 2)
		assert.Equal(t, "Citra", ranked[0].Name)
		assert.Equal(t, "Dewi", ranked[1].Name)
	})

	t.Run("stable order on equal grades", func(t *testing.T) {
		students := []*models.StudentWithLogs{
			studentWithGrade("Eka", 60, models.StatusPresent),
			studentWithGrade("Fajar", 60, models.StatusPresent),
		}

		ranked := RankNeedsHelp(students, false, 10)
		assert.Equal(t, "Eka", ranked[0].Name)
		assert.Equal(t, "Fajar", ranked[1].Name)
	})

	t.Run("zero attendance logs flag even with a good grade", func(t *testing.T) {
		students := []*models.StudentWithLogs{
			studentWithGrade("Gita", 95),
		}

		ranked := RankNeedsHelp(students, false, 10)
		assert.Len(t, ranked, 1)
	})
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 88, RoundInteger(87.5))
	assert.Equal(t, 87, RoundInteger(87.4))
	assert.Equal(t, 77.6, RoundOneDecimal(77.55))
	assert.Equal(t, 77.5, RoundOneDecimal(77.54))
}
