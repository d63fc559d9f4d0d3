package services

import (
	"context"
	"fmt"

	"github.com/ardhiancalwa/Schola/internal/app/models"
	"github.com/ardhiancalwa/Schola/internal/app/models/dto"
	"github.com/ardhiancalwa/Schola/internal/app/repositories"
)

const scoreBucketCount = 10

// ReportService assembles the per-class report
type ReportService struct {
	classRepo   *repositories.ClassRepository
	studentRepo *repositories.StudentRepository
}

// NewReportService creates a new report service
func NewReportService(classRepo *repositories.ClassRepository, studentRepo *repositories.StudentRepository) *ReportService {
	return &ReportService{
		classRepo:   classRepo,
		studentRepo: studentRepo,
	}
}

// GetReport builds the report for one class, optionally narrowed to a
// semester.
func (s *ReportService) GetReport(ctx context.Context, classID int64, semester string) (*dto.ReportResponse, error) {
	if _, err := s.classRepo.GetByID(ctx, classID); err != nil {
		return nil, err
	}

	students, err := s.studentRepo.ListWithLogs(ctx, repositories.StudentFilter{
		ClassID:  classID,
		Semester: semester,
	})
	if err != nil {
		return nil, err
	}

	return &dto.ReportResponse{
		Stats:             computeReportStats(students),
		ScoreDistribution: buildScoreDistribution(students),
		NeedsHelp:         buildReportNeedsHelp(students),
	}, nil
}

func computeReportStats(students []*models.StudentWithLogs) dto.ReportStats {
	stats := dto.ReportStats{TotalStudents: len(students)}
	if len(students) == 0 {
		return stats
	}

	var gradeSum, attendanceSum, submissionSum float64
	stats.HighestScore = students[0].FinalGrade
	stats.LowestScore = students[0].FinalGrade
	for _, st := range students {
		gradeSum += st.FinalGrade
		attendanceSum += AttendanceRate(st.AttendanceStatuses)
		submissionSum += SubmissionRate(&st.Student)
		if st.FinalGrade > stats.HighestScore {
			stats.HighestScore = st.FinalGrade
		}
		if st.FinalGrade < stats.LowestScore {
			stats.LowestScore = st.FinalGrade
		}
	}

	n := float64(len(students))
	stats.AverageScore = RoundOneDecimal(gradeSum / n)
	stats.AttendanceRate = RoundInteger(attendanceSum / n)
	stats.SubmissionRate = RoundInteger(submissionSum / n)
	return stats
}

// buildScoreDistribution buckets final grades into ten ranges. The last
// bucket is wider so a perfect 100 still lands inside it.
func buildScoreDistribution(students []*models.StudentWithLogs) []dto.ScoreBucket {
	buckets := make([]dto.ScoreBucket, scoreBucketCount)
	for i := range buckets {
		if i == scoreBucketCount-1 {
			buckets[i].Range = "90-100"
		} else {
			buckets[i].Range = fmt.Sprintf("%d-%d", i*10, i*10+9)
		}
	}

	for _, st := range students {
		idx := int(st.FinalGrade / 10)
		if idx < 0 {
			idx = 0
		}
		if idx >= scoreBucketCount {
			idx = scoreBucketCount - 1
		}
		buckets[idx].Count++
	}

	return buckets
}

func buildReportNeedsHelp(students []*models.StudentWithLogs) []dto.ReportNeedsHelpStudent {
	ranked := RankNeedsHelp(students, false, 5)

	list := make([]dto.ReportNeedsHelpStudent, 0, len(ranked))
	for _, st := range ranked {
		list = append(list, dto.ReportNeedsHelpStudent{
			ID:     st.ID,
			NIS:    st.NIS,
			Name:   st.Name,
			Score:  RoundOneDecimal(st.FinalGrade),
			Tasks:  fmt.Sprintf("%d/2", submittedTasks(&st.Student)),
			Status: Classify(st.FinalGrade, AttendanceRate(st.AttendanceStatuses)),
		})
	}
	return list
}
