package services

import (
	"math"
	"sort"

	"github.com/ardhiancalwa/Schola/internal/app/models"
)

// Thresholds feeding the needs-help and performance classifications.
// Low attendance flags at 75 everywhere except the stricter class-detail
// variant, which raises the bar to 80.
const (
	GradeHelpThreshold            = 70.0
	AttendanceHelpThreshold       = 75.0
	AttendanceHelpThresholdStrict = 80.0

	GradeExcellentThreshold      = 85.0
	AttendanceExcellentThreshold = 90.0
)

// Performance labels assigned to students
const (
	PerformanceExcellent     = "Excellent"
	PerformanceAdequate      = "Adequate"
	PerformanceNeedsGuidance = "Needs Guidance"
)

// AttendanceRate returns the percentage of logged days a student was present.
// A student with no attendance logs at all has a rate of 0, never a default.
func AttendanceRate(statuses []models.AttendanceStatus) float64 {
	if len(statuses) == 0 {
		return 0
	}
	present := 0
	for _, s := range statuses {
		if s == models.StatusPresent {
			present++
		}
	}
	return float64(present) / float64(len(statuses)) * 100
}

// SubmissionRate returns the percentage of the two task scores a student
// has a nonzero value for. A zero score counts as not submitted.
func SubmissionRate(s *models.Student) float64 {
	return float64(submittedTasks(s)) / 2 * 100
}

// submittedTasks counts the task components with a nonzero score.
func submittedTasks(s *models.Student) int {
	submitted := 0
	for _, score := range []float64{s.Task1, s.Task2} {
		if score > 0 {
			submitted++
		}
	}
	return submitted
}

// FinalGrade computes the arithmetic mean of the four component scores.
func FinalGrade(task1, task2, midterm, finalExam float64) float64 {
	return (task1 + task2 + midterm + finalExam) / 4
}

// RoundedFinalGrade is the final grade as persisted: the component mean
// int-rounded, so 77.5 is stored as 78.
func RoundedFinalGrade(task1, task2, midterm, finalExam float64) float64 {
	return float64(RoundInteger(FinalGrade(task1, task2, midterm, finalExam)))
}

// Classify assigns the performance label for a final grade and attendance rate.
func Classify(grade, attendanceRate float64) string {
	if grade >= GradeExcellentThreshold && attendanceRate >= AttendanceExcellentThreshold {
		return PerformanceExcellent
	}
	if grade < GradeHelpThreshold || attendanceRate < AttendanceHelpThreshold {
		return PerformanceNeedsGuidance
	}
	return PerformanceAdequate
}

// NeedsHelp reports whether a student falls below the help thresholds. The
// strict variant raises the attendance bar from 75 to 80.
func NeedsHelp(grade, attendanceRate float64, strict bool) bool {
	attendanceThreshold := AttendanceHelpThreshold
	if strict {
		attendanceThreshold = AttendanceHelpThresholdStrict
	}
	return grade < GradeHelpThreshold || attendanceRate < attendanceThreshold
}

// RankNeedsHelp filters students below the help thresholds and returns at
// most limit of them, worst final grade first. The sort is stable so students
// on equal grades keep their input order.
func RankNeedsHelp(students []*models.StudentWithLogs, strict bool, limit int) []*models.StudentWithLogs {
	var flagged []*models.StudentWithLogs
	for _, s := range students {
		if NeedsHelp(s.FinalGrade, AttendanceRate(s.AttendanceStatuses), strict) {
			flagged = append(flagged, s)
		}
	}

	sort.SliceStable(flagged, func(i, j int) bool {
		return flagged[i].FinalGrade < flagged[j].FinalGrade
	})

	if len(flagged) > limit {
		flagged = flagged[:limit]
	}
	return flagged
}

// RoundInteger rounds to the nearest integer, halves away from zero.
func RoundInteger(v float64) int {
	return int(math.Round(v))
}

// RoundOneDecimal rounds to one decimal place.
func RoundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
