package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ardhiancalwa/Schola/internal/app/controllers"
	"github.com/ardhiancalwa/Schola/internal/middleware"
	"github.com/ardhiancalwa/Schola/internal/pkg/auth"
)

// SetupRoutes mounts every API route on the engine. Auth endpoints are
// public; everything else sits behind the JWT middleware.
func SetupRoutes(router *gin.Engine, ctrls *controllers.Controllers, jwtService *auth.JWTService) {
	v1 := router.Group("/api/v1")

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", ctrls.AuthController.Register)
		authGroup.POST("/login", ctrls.AuthController.Login)
	}

	protected := v1.Group("")
	protected.Use(middleware.JWTAuthMiddleware(jwtService))
	{
		protected.GET("/dashboard", ctrls.DashboardController.GetDashboard)

		protected.POST("/classes", ctrls.ClassController.CreateClass)
		protected.GET("/classes", ctrls.ClassController.ListClasses)
		protected.GET("/classes/:classId", ctrls.ClassController.GetClass)
		protected.DELETE("/classes/:classId", ctrls.ClassController.DeleteClass)
		protected.GET("/classes/:classId/attendance", ctrls.AttendanceController.GetSheet)
		protected.POST("/classes/:classId/attendance", ctrls.AttendanceController.SaveAttendance)

		protected.GET("/analytics/students", ctrls.StudentAnalyticsController.GetAnalytics)
		protected.PUT("/students/:id", ctrls.StudentController.UpdateIdentity)
		protected.PUT("/students/:id/grades", ctrls.StudentController.UpdateGrades)
		protected.DELETE("/students/:id", ctrls.StudentController.DeleteStudent)

		protected.GET("/reports/:classId", ctrls.ReportController.GetReport)

		protected.GET("/calendar/events", ctrls.CalendarController.ListEvents)
		protected.POST("/calendar/events", ctrls.CalendarController.CreateEvent)

		protected.POST("/ai/analyze-material", ctrls.SummarizerController.AnalyzeMaterial)
		protected.GET("/ai/analyses/:materialId", ctrls.SummarizerController.GetAnalysis)
		protected.POST("/ai/generate-tips", ctrls.SummarizerController.GenerateTips)
	}
}
