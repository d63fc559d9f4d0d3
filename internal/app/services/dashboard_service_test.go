package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ardhiancalwa/Schola/internal/app/models"
)

func chartStudent(classID int64, grade float64, statuses ...models.AttendanceStatus) *models.StudentWithLogs {
	return &models.StudentWithLogs{
		Student:            models.Student{ClassID: classID, FinalGrade: grade},
		AttendanceStatuses: statuses,
	}
}

func TestBuildClassChart(t *testing.T) {
	classes := []*models.Class{
		{ID: 1, Name: "X IPA 1"},
		{ID: 2, Name: "X IPA 2"},
	}

	t.Run("attendance weighs students by their log counts", func(t *testing.T) {
		students := []*models.StudentWithLogs{
			chartStudent(1, 80, models.StatusPresent),
			chartStudent(1, 80,
				models.StatusPresent, models.StatusAbsent,
				models.StatusAbsent, models.StatusAbsent),
		}

		points := buildClassChart(classes, students)
		assert.Len(t, points, 2)
		// 2 present logs out of 5, not the 63 a mean of per-student
		// rates (100 and 25) would give.
		assert.Equal(t, 40, points[0].Attendance)
		assert.Equal(t, 80, points[0].Grades)
	})

	t.Run("class without students stays zeroed", func(t *testing.T) {
		points := buildClassChart(classes, nil)
		assert.Equal(t, 0, points[1].Attendance)
		assert.Equal(t, 0, points[1].Grades)
	})

	t.Run("students without logs keep attendance at zero", func(t *testing.T) {
		students := []*models.StudentWithLogs{
			chartStudent(2, 90),
		}

		points := buildClassChart(classes, students)
		assert.Equal(t, 0, points[1].Attendance)
		assert.Equal(t, 90, points[1].Grades)
	})
}
