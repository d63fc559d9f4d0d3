package services

import (
	"context"
	"strings"
	"time"

	"github.com/ardhiancalwa/Schola/internal/app/models"
	"github.com/ardhiancalwa/Schola/internal/app/models/dto"
	"github.com/ardhiancalwa/Schola/internal/app/repositories"
	"github.com/ardhiancalwa/Schola/internal/pkg/apperrors"
	"github.com/ardhiancalwa/Schola/internal/pkg/helpers"
	"github.com/ardhiancalwa/Schola/internal/pkg/logger"
)

const attendanceDateLayout = "2006-01-02"

// Indonesian status labels still arriving from older clients
var attendanceStatusAliases = map[string]models.AttendanceStatus{
	"hadir": models.StatusPresent,
	"izin":  models.StatusExcused,
	"alpha": models.StatusAbsent,
}

// AttendanceService handles the attendance sheet and batch saves
type AttendanceService struct {
	classRepo      *repositories.ClassRepository
	studentRepo    *repositories.StudentRepository
	attendanceRepo *repositories.AttendanceRepository
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(
	classRepo *repositories.ClassRepository,
	studentRepo *repositories.StudentRepository,
	attendanceRepo *repositories.AttendanceRepository,
) *AttendanceService {
	return &AttendanceService{
		classRepo:      classRepo,
		studentRepo:    studentRepo,
		attendanceRepo: attendanceRepo,
	}
}

// GetSheet builds the attendance sheet for a class and date. The student
// listing is paged and searchable while the stats always cover the whole
// class.
func (s *AttendanceService) GetSheet(ctx context.Context, classID int64, dateStr, query string, page, size int) (*dto.AttendanceSheetResponse, error) {
	if _, err := s.classRepo.GetByID(ctx, classID); err != nil {
		return nil, err
	}

	date, err := parseAttendanceDate(dateStr)
	if err != nil {
		return nil, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	students, total, err := s.studentRepo.ListByClass(ctx, classID, query, offset, limit)
	if err != nil {
		return nil, err
	}

	statuses, err := s.attendanceRepo.GetStatusesByClassAndDate(ctx, classID, date)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.AttendanceRow, 0, len(students))
	for _, st := range students {
		row := dto.AttendanceRow{ID: st.ID, Name: st.Name, NIS: st.NIS}
		if status, ok := statuses[st.ID]; ok {
			row.CurrentStatus = string(status)
		}
		rows = append(rows, row)
	}

	present, excused, absent, err := s.attendanceRepo.CountStatusesByClassAndDate(ctx, classID, date)
	if err != nil {
		return nil, err
	}

	classTotal, err := s.studentRepo.Count(ctx, repositories.StudentFilter{ClassID: classID})
	if err != nil {
		return nil, err
	}

	return &dto.AttendanceSheetResponse{
		Students: rows,
		Stats: dto.AttendanceStats{
			Present:       present,
			Excused:       excused,
			Absent:        absent,
			TotalStudents: classTotal,
		},
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

// Save upserts one status per student for the class and date. Saving the
// same date twice overwrites the earlier statuses.
func (s *AttendanceService) Save(ctx context.Context, classID int64, req dto.SaveAttendanceRequest) error {
	if _, err := s.classRepo.GetByID(ctx, classID); err != nil {
		return err
	}

	date, err := parseAttendanceDate(req.Date)
	if err != nil {
		return err
	}

	logs := make([]*models.AttendanceLog, 0, len(req.Records))
	for _, record := range req.Records {
		status, err := normalizeAttendanceStatus(record.Status)
		if err != nil {
			return err
		}
		logs = append(logs, &models.AttendanceLog{
			StudentID: record.StudentID,
			ClassID:   classID,
			Date:      date,
			Status:    status,
		})
	}

	if err := s.attendanceRepo.UpsertLogs(ctx, logs); err != nil {
		return err
	}

	logger.Info().Int64("classId", classID).Str("date", req.Date).Int("records", len(logs)).Msg("Attendance saved")
	return nil
}

func parseAttendanceDate(dateStr string) (time.Time, error) {
	date, err := time.Parse(attendanceDateLayout, dateStr)
	if err != nil {
		return time.Time{}, apperrors.NewBadRequestError("date must be in YYYY-MM-DD format")
	}
	return date, nil
}

func normalizeAttendanceStatus(raw string) (models.AttendanceStatus, error) {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	if models.IsValidAttendanceStatus(lowered) {
		return models.AttendanceStatus(lowered), nil
	}
	if status, ok := attendanceStatusAliases[lowered]; ok {
		return status, nil
	}
	return "", apperrors.NewBadRequestError("status must be one of present, excused, absent")
}
