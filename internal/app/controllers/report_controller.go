package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ardhiancalwa/Schola/internal/app/services"
	"github.com/ardhiancalwa/Schola/internal/middleware"
	"github.com/ardhiancalwa/Schola/internal/pkg/apperrors"
)

// ReportController handles the per-class report endpoint
type ReportController struct {
	reportService *services.ReportService
}

// NewReportController creates a new report controller
func NewReportController(reportService *services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// GetReport godoc
// @Summary Get a class report
// @Description Headline aggregates, score-distribution histogram and the five students most in need of help
// @Tags reports
// @Produce json
// @Param classId path int true "Class ID"
// @Param semester query string false "Restrict to one semester"
// @Success 200 {object} dto.APIResponse{data=dto.ReportResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/{classId} [get]
func (ctrl *ReportController) GetReport(c *gin.Context) {
	classID, err := strconv.ParseInt(c.Param("classId"), 10, 64)
	if err != nil || classID <= 0 {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("classId must be a positive integer"))
		return
	}

	report, err := ctrl.reportService.GetReport(c.Request.Context(), classID, c.Query("semester"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, report)
}
