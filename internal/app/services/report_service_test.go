package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ardhiancalwa/Schola/internal/app/models"
)

func reportStudent(name string, grade float64, statuses ...models.AttendanceStatus) *models.StudentWithLogs {
	return &models.StudentWithLogs{
		Student: models.Student{
			Name:       name,
			Task1:      grade,
			Task2:      grade,
			Midterm:    grade,
			FinalExam:  grade,
			FinalGrade: grade,
		},
		AttendanceStatuses: statuses,
	}
}

func TestComputeReportStats(t *testing.T) {
	t.Run("empty class yields zeroed stats", func(t *testing.T) {
		stats := computeReportStats(nil)
		assert.Equal(t, 0, stats.TotalStudents)
		assert.Equal(t, 0.0, stats.AverageScore)
		assert.Equal(t, 0.0, stats.HighestScore)
		assert.Equal(t, 0, stats.AttendanceRate)
	})

	t.Run("average keeps one decimal", func(t *testing.T) {
		students := []*models.StudentWithLogs{
			reportStudent("Andi", 80, models.StatusPresent),
			reportStudent("Budi", 75, models.StatusPresent),
			reportStudent("Citra", 90, models.StatusPresent),
		}

		stats := computeReportStats(students)
		assert.Equal(t, 81.7, stats.AverageScore)
		assert.Equal(t, 90.0, stats.HighestScore)
		assert.Equal(t, 75.0, stats.LowestScore)
		assert.Equal(t, 3, stats.TotalStudents)
		assert.Equal(t, 100, stats.AttendanceRate)
		assert.Equal(t, 100, stats.SubmissionRate)
	})

	t.Run("students without logs pull the attendance rate down", func(t *testing.T) {
		students := []*models.StudentWithLogs{
			reportStudent("Andi", 80, models.StatusPresent),
			reportStudent("Budi", 80),
		}

		stats := computeReportStats(students)
		assert.Equal(t, 50, stats.AttendanceRate)
	})
}

func TestBuildScoreDistribution(t *testing.T) {
	t.Run("ten buckets with a wide top bucket", func(t *testing.T) {
		buckets := buildScoreDistribution(nil)
		assert.Len(t, buckets, 10)
		assert.Equal(t, "0-9", buckets[0].Range)
		assert.Equal(t, "80-89", buckets[8].Range)
		assert.Equal(t, "90-100", buckets[9].Range)
		for _, b := range buckets {
			assert.Equal(t, 0, b.Count)
		}
	})

	t.Run("boundary grades land in the right buckets", func(t *testing.T) {
		students := []*models.StudentWithLogs{
			reportStudent("a", 0),
			reportStudent("b", 9.9),
			reportStudent("c", 10),
			reportStudent("d", 89.9),
			reportStudent("e", 90),
			reportStudent("f", 100),
		}

		buckets := buildScoreDistribution(students)
		assert.Equal(t, 2, buckets[0].Count)
		assert.Equal(t, 1, buckets[1].Count)
		assert.Equal(t, 1, buckets[8].Count)
		assert.Equal(t, 2, buckets[9].Count)
	})
}

func TestBuildReportNeedsHelp(t *testing.T) {
	t.Run("worst five with submitted-task counts", func(t *testing.T) {
		students := []*models.StudentWithLogs{
			reportStudent("a", 65, models.StatusPresent),
			reportStudent("b", 50, models.StatusPresent),
			reportStudent("c", 55, models.StatusPresent),
			reportStudent("d", 60, models.StatusPresent),
			reportStudent("e", 45, models.StatusPresent),
			reportStudent("f", 68, models.StatusPresent),
			reportStudent("g", 95, models.StatusPresent),
		}

		list := buildReportNeedsHelp(students)
		assert.Len(t, list, 5)
		assert.Equal(t, "e", list[0].Name)
		assert.Equal(t, "b", list[1].Name)
		assert.Equal(t, "f", list[4].Name)
		assert.Equal(t, "2/2", list[0].Tasks)
		assert.Equal(t, PerformanceNeedsGuidance, list[0].Status)
	})

	t.Run("attendance just under 80 does not flag a passing student", func(t *testing.T) {
		s := &models.StudentWithLogs{
			Student: models.Student{Name: "h", FinalGrade: 85},
			AttendanceStatuses: []models.AttendanceStatus{
				models.StatusPresent, models.StatusPresent, models.StatusPresent,
				models.StatusPresent, models.StatusPresent, models.StatusPresent,
				models.StatusPresent, models.StatusAbsent, models.StatusAbsent,
			},
		}

		list := buildReportNeedsHelp([]*models.StudentWithLogs{s})
		assert.Empty(t, list)
	})

	t.Run("attendance under 75 flags regardless of grade", func(t *testing.T) {
		s := &models.StudentWithLogs{
			Student: models.Student{Name: "i", FinalGrade: 85},
			AttendanceStatuses: []models.AttendanceStatus{
				models.StatusPresent, models.StatusPresent,
				models.StatusAbsent, models.StatusAbsent,
			},
		}

		list := buildReportNeedsHelp([]*models.StudentWithLogs{s})
		assert.Len(t, list, 1)
	})
}
