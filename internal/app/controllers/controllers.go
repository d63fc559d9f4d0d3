package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ardhiancalwa/Schola/internal/app/models/dto"
	"github.com/ardhiancalwa/Schola/internal/app/services"
)

// Controllers contains all controller instances
type Controllers struct {
	AuthController             *AuthController
	DashboardController        *DashboardController
	StudentAnalyticsController *StudentAnalyticsController
	ReportController           *ReportController
	ClassController            *ClassController
	StudentController          *StudentController
	AttendanceController       *AttendanceController
	CalendarController         *CalendarController
	SummarizerController       *SummarizerController
}

// NewControllers creates all controllers over the shared services.
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		AuthController:             NewAuthController(svcs.AuthService),
		DashboardController:        NewDashboardController(svcs.DashboardService),
		StudentAnalyticsController: NewStudentAnalyticsController(svcs.StudentAnalyticsService),
		ReportController:           NewReportController(svcs.ReportService),
		ClassController:            NewClassController(svcs.ClassService),
		StudentController:          NewStudentController(svcs.StudentService),
		AttendanceController:       NewAttendanceController(svcs.AttendanceService),
		CalendarController:         NewCalendarController(svcs.CalendarService),
		SummarizerController:       NewSummarizerController(svcs.SummarizerService),
	}
}

func respondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, dto.APIResponse{Data: data, Timestamp: time.Now()})
}
