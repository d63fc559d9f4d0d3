package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ardhiancalwa/Schola/internal/app/services"
	"github.com/ardhiancalwa/Schola/internal/middleware"
	"github.com/ardhiancalwa/Schola/internal/pkg/apperrors"
)

// DashboardController handles the teacher dashboard endpoint
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetDashboard godoc
// @Summary Get the teacher dashboard
// @Description Returns the stats row, per-class chart, calendar widget and needs-help list
// @Tags dashboard
// @Produce json
// @Param month query string false "Month to render, YYYY-MM (defaults to current)"
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (ctrl *DashboardController) GetDashboard(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrTokenInvalid)
		return
	}

	month := time.Now()
	if raw := c.Query("month"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			middleware.HandleAPIError(c, apperrors.NewBadRequestError("month must be in YYYY-MM format"))
			return
		}
		month = parsed
	}

	dashboard, err := ctrl.dashboardService.GetDashboard(c.Request.Context(), userID, month)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dashboard)
}
