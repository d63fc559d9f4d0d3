package services

import (
	"context"
	"time"

	"github.com/ardhiancalwa/Schola/internal/app/models"
	"github.com/ardhiancalwa/Schola/internal/app/models/dto"
	"github.com/ardhiancalwa/Schola/internal/app/repositories"
)

// DashboardService assembles the teacher dashboard payload
type DashboardService struct {
	userRepo       *repositories.UserRepository
	classRepo      *repositories.ClassRepository
	studentRepo    *repositories.StudentRepository
	attendanceRepo *repositories.AttendanceRepository
	calendarRepo   *repositories.CalendarRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	userRepo *repositories.UserRepository,
	classRepo *repositories.ClassRepository,
	studentRepo *repositories.StudentRepository,
	attendanceRepo *repositories.AttendanceRepository,
	calendarRepo *repositories.CalendarRepository,
) *DashboardService {
	return &DashboardService{
		userRepo:       userRepo,
		classRepo:      classRepo,
		studentRepo:    studentRepo,
		attendanceRepo: attendanceRepo,
		calendarRepo:   calendarRepo,
	}
}

// GetDashboard builds the full dashboard for a teacher. The calendar widget
// shows the given month padded by a week on both sides so the leading and
// trailing days of adjacent months render too.
func (s *DashboardService) GetDashboard(ctx context.Context, userID int64, month time.Time) (*dto.DashboardResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	classes, err := s.classRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	students, err := s.studentRepo.ListWithLogs(ctx, repositories.StudentFilter{})
	if err != nil {
		return nil, err
	}

	present, totalLogs, err := s.attendanceRepo.CountGlobal(ctx)
	if err != nil {
		return nil, err
	}
	attendanceRate := 0
	if totalLogs > 0 {
		attendanceRate = RoundInteger(float64(present) / float64(totalLogs) * 100)
	}

	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	from := monthStart.AddDate(0, 0, -7)
	to := monthStart.AddDate(0, 1, 0).AddDate(0, 0, 6)
	events, err := s.calendarRepo.ListBetween(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		User: dto.DashboardUser{
			Name: user.FullName,
			Role: "Teacher",
		},
		Stats: dto.DashboardStats{
			TotalStudents:  int64(len(students)),
			AttendanceRate: attendanceRate,
			TotalClasses:   int64(len(classes)),
		},
		ClassList:      buildClassOptions(classes),
		ChartData:      buildClassChart(classes, students),
		CalendarEvents: buildCalendarItems(events),
		NeedsHelp:      buildNeedsHelpWidget(students),
	}, nil
}

func buildClassOptions(classes []*models.Class) []dto.ClassOption {
	options := make([]dto.ClassOption, 0, len(classes))
	for _, c := range classes {
		options = append(options, dto.ClassOption{
			ID:         c.ID,
			Name:       c.Name,
			Department: c.Department,
		})
	}
	return options
}

// buildClassChart reduces every class over its own students: mean final
// grade, and attendance as present logs over total logs so students with
// more logged days weigh proportionally.
func buildClassChart(classes []*models.Class, students []*models.StudentWithLogs) []dto.ClassChartPoint {
	type classAgg struct {
		present   int
		totalLogs int
		gradeSum  float64
		count     int
	}
	aggs := make(map[int64]*classAgg, len(classes))
	for _, st := range students {
		agg, ok := aggs[st.ClassID]
		if !ok {
			agg = &classAgg{}
			aggs[st.ClassID] = agg
		}
		for _, status := range st.AttendanceStatuses {
			agg.totalLogs++
			if status == models.StatusPresent {
				agg.present++
			}
		}
		agg.gradeSum += st.FinalGrade
		agg.count++
	}

	points := make([]dto.ClassChartPoint, 0, len(classes))
	for _, c := range classes {
		point := dto.ClassChartPoint{Name: c.Name, Department: c.Department}
		if agg, ok := aggs[c.ID]; ok && agg.count > 0 {
			point.Grades = RoundInteger(agg.gradeSum / float64(agg.count))
			if agg.totalLogs > 0 {
				point.Attendance = RoundInteger(float64(agg.present) / float64(agg.totalLogs) * 100)
			}
		}
		points = append(points, point)
	}
	return points
}

func buildCalendarItems(events []*models.CalendarEvent) []dto.CalendarEventItem {
	items := make([]dto.CalendarEventItem, 0, len(events))
	for _, e := range events {
		items = append(items, dto.CalendarEventItem{
			ID:        e.ID,
			Title:     e.Title,
			StartDate: e.StartDate.Format("2006-01-02"),
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
			Color:     e.ColorTheme,
		})
	}
	return items
}

func buildNeedsHelpWidget(students []*models.StudentWithLogs) []dto.NeedsHelpStudent {
	ranked := RankNeedsHelp(students, false, 10)

	widget := make([]dto.NeedsHelpStudent, 0, len(ranked))
	for _, st := range ranked {
		widget = append(widget, dto.NeedsHelpStudent{
			ID:             st.ID,
			Name:           st.Name,
			ClassName:      st.ClassName,
			Score:          RoundInteger(st.FinalGrade),
			MaxScore:       100,
			SubmissionRate: RoundInteger(SubmissionRate(&st.Student)),
		})
	}
	return widget
}
