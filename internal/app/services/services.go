package services

import (
	"github.com/ardhiancalwa/Schola/internal/app/repositories"
	"github.com/ardhiancalwa/Schola/internal/pkg/auth"
	"github.com/ardhiancalwa/Schola/internal/pkg/filestorage"
)

// Services contains all service instances
type Services struct {
	AuthService             *AuthService
	ClassService            *ClassService
	StudentService          *StudentService
	AttendanceService       *AttendanceService
	CalendarService         *CalendarService
	DashboardService        *DashboardService
	StudentAnalyticsService *StudentAnalyticsService
	ReportService           *ReportService
	SummarizerService       *SummarizerService
}

// NewServices creates all services over the shared repositories.
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	storage filestorage.FileStorage,
	generator TextGenerator,
	summarizerConfig SummarizerConfig,
) *Services {
	return &Services{
		AuthService:             NewAuthService(repos.UserRepository, jwtService),
		ClassService:            NewClassService(repos.ClassRepository, repos.StudentRepository),
		StudentService:          NewStudentService(repos.StudentRepository),
		AttendanceService:       NewAttendanceService(repos.ClassRepository, repos.StudentRepository, repos.AttendanceRepository),
		CalendarService:         NewCalendarService(repos.CalendarRepository),
		DashboardService:        NewDashboardService(repos.UserRepository, repos.ClassRepository, repos.StudentRepository, repos.AttendanceRepository, repos.CalendarRepository),
		StudentAnalyticsService: NewStudentAnalyticsService(repos.ClassRepository, repos.StudentRepository),
		ReportService:           NewReportService(repos.ClassRepository, repos.StudentRepository),
		SummarizerService:       NewSummarizerService(generator, repos.AnalysisRepository, storage, summarizerConfig),
	}
}
