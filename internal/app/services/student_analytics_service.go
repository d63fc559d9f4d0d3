package services

import (
	"context"
	"strconv"

	"github.com/ardhiancalwa/Schola/internal/app/models"
	"github.com/ardhiancalwa/Schola/internal/app/models/dto"
	"github.com/ardhiancalwa/Schola/internal/app/repositories"
	"github.com/ardhiancalwa/Schola/internal/pkg/helpers"
	"github.com/ardhiancalwa/Schola/internal/pkg/logger"
)

// StudentAnalyticsService produces the student analytics listing
type StudentAnalyticsService struct {
	classRepo   *repositories.ClassRepository
	studentRepo *repositories.StudentRepository
}

// NewStudentAnalyticsService creates a new student analytics service
func NewStudentAnalyticsService(classRepo *repositories.ClassRepository, studentRepo *repositories.StudentRepository) *StudentAnalyticsService {
	return &StudentAnalyticsService{
		classRepo:   classRepo,
		studentRepo: studentRepo,
	}
}

// GetAnalytics aggregates in two passes: the stats block reduces over every
// student in the filtered scope while the listing is paged. A failure while
// fetching degrades to a zeroed payload instead of an error so the view
// still renders.
func (s *StudentAnalyticsService) GetAnalytics(ctx context.Context, filter repositories.StudentFilter, page, size int) (*dto.StudentAnalyticsResponse, error) {
	classCount, err := s.classRepo.Count(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to count classes for analytics")
		return s.zeroedResponse(false, page, size), nil
	}
	if classCount == 0 {
		return s.zeroedResponse(true, page, size), nil
	}

	all, err := s.studentRepo.ListWithLogs(ctx, filter)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list students for analytics")
		return s.zeroedResponse(false, page, size), nil
	}

	stats := computeAnalyticsStats(all)

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	paged, err := s.studentRepo.ListPageWithLogs(ctx, filter, offset, limit)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to page students for analytics")
		return s.zeroedResponse(false, page, size), nil
	}

	rows := make([]dto.StudentAnalyticsRow, 0, len(paged))
	for _, st := range paged {
		attendance := AttendanceRate(st.AttendanceStatuses)
		rows = append(rows, dto.StudentAnalyticsRow{
			ID:             st.ID,
			NIS:            st.NIS,
			Name:           st.Name,
			Gender:         st.Gender,
			ClassName:      st.ClassName,
			AttendanceRate: RoundInteger(attendance),
			SubmissionRate: RoundInteger(SubmissionRate(&st.Student)),
			FinalGrade:     strconv.FormatFloat(st.FinalGrade, 'f', 2, 64),
			Performance:    Classify(st.FinalGrade, attendance),
		})
	}

	return &dto.StudentAnalyticsResponse{
		NoClasses:  false,
		Students:   rows,
		Stats:      stats,
		Pagination: helpers.NewPaginationInfo(stats.TotalStudents, page, size),
	}, nil
}

func computeAnalyticsStats(students []*models.StudentWithLogs) dto.AnalyticsStats {
	stats := dto.AnalyticsStats{TotalStudents: int64(len(students))}
	if len(students) == 0 {
		return stats
	}

	var attendanceSum, gradeSum, submissionSum float64
	for _, st := range students {
		attendance := AttendanceRate(st.AttendanceStatuses)
		attendanceSum += attendance
		gradeSum += st.FinalGrade
		submissionSum += SubmissionRate(&st.Student)
		if NeedsHelp(st.FinalGrade, attendance, false) {
			stats.NeedsHelpCount++
		}
	}

	n := float64(len(students))
	stats.AvgAttendance = RoundInteger(attendanceSum / n)
	stats.AvgGrade = RoundInteger(gradeSum / n)
	stats.SubmissionRate = RoundInteger(submissionSum / n)
	return stats
}

func (s *StudentAnalyticsService) zeroedResponse(noClasses bool, page, size int) *dto.StudentAnalyticsResponse {
	return &dto.StudentAnalyticsResponse{
		NoClasses:  noClasses,
		Students:   []dto.StudentAnalyticsRow{},
		Stats:      dto.AnalyticsStats{},
		Pagination: helpers.NewPaginationInfo(0, page, size),
	}
}
