package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ardhiancalwa/Schola/internal/app/repositories"
	"github.com/ardhiancalwa/Schola/internal/app/services"
	"github.com/ardhiancalwa/Schola/internal/middleware"
	"github.com/ardhiancalwa/Schola/internal/pkg/helpers"
)

// StudentAnalyticsController handles the student analytics listing
type StudentAnalyticsController struct {
	analyticsService *services.StudentAnalyticsService
}

// NewStudentAnalyticsController creates a new student analytics controller
func NewStudentAnalyticsController(analyticsService *services.StudentAnalyticsService) *StudentAnalyticsController {
	return &StudentAnalyticsController{analyticsService: analyticsService}
}

// GetAnalytics godoc
// @Summary Get the student analytics listing
// @Description Aggregate stats over the whole filtered scope plus one page of computed student rows
// @Tags analytics
// @Produce json
// @Param classId query int false "Restrict to one class"
// @Param semester query string false "Restrict to one semester"
// @Param q query string false "Search by student name or NIS"
// @Param page query int false "Page number (default 1)"
// @Param size query int false "Page size (default 10)"
// @Success 200 {object} dto.APIResponse{data=dto.StudentAnalyticsResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /analytics/students [get]
func (ctrl *StudentAnalyticsController) GetAnalytics(c *gin.Context) {
	filter := repositories.StudentFilter{
		Semester: c.Query("semester"),
		Query:    c.Query("q"),
	}
	if raw := c.Query("classId"); raw != "" {
		classID, err := strconv.ParseInt(raw, 10, 64)
		if err == nil && classID > 0 {
			filter.ClassID = classID
		}
	}

	page, size := helpers.ParsePaginationParams(c)

	analytics, err := ctrl.analyticsService.GetAnalytics(c.Request.Context(), filter, page, size)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, analytics)
}
