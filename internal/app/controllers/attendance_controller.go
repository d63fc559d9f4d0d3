package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ardhiancalwa/Schola/internal/app/models/dto"
	"github.com/ardhiancalwa/Schola/internal/app/services"
	"github.com/ardhiancalwa/Schola/internal/middleware"
	"github.com/ardhiancalwa/Schola/internal/pkg/apperrors"
	"github.com/ardhiancalwa/Schola/internal/pkg/helpers"
)

// AttendanceController handles the attendance sheet endpoints
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new attendance controller
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

func parseClassID(c *gin.Context) (int64, bool) {
	classID, err := strconv.ParseInt(c.Param("classId"), 10, 64)
	if err != nil || classID <= 0 {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("classId must be a positive integer"))
		return 0, false
	}
	return classID, true
}

// GetSheet godoc
// @Summary Get the attendance sheet for a class and date
// @Description Paged student listing with the already-logged status per student plus whole-class status counts
// @Tags attendance
// @Produce json
// @Param classId path int true "Class ID"
// @Param date query string false "Date, YYYY-MM-DD (defaults to today)"
// @Param q query string false "Search by student name or NIS"
// @Param page query int false "Page number (default 1)"
// @Param size query int false "Page size (default 10)"
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceSheetResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /classes/{classId}/attendance [get]
func (ctrl *AttendanceController) GetSheet(c *gin.Context) {
	classID, ok := parseClassID(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	page, size := helpers.ParsePaginationParams(c)

	sheet, err := ctrl.attendanceService.GetSheet(c.Request.Context(), classID, date, c.Query("q"), page, size)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, sheet)
}

// SaveAttendance godoc
// @Summary Save attendance for a class and date
// @Description Upserts one status per student; saving the same date again overwrites the earlier statuses
// @Tags attendance
// @Accept json
// @Produce json
// @Param classId path int true "Class ID"
// @Param request body dto.SaveAttendanceRequest true "Attendance payload"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /classes/{classId}/attendance [post]
func (ctrl *AttendanceController) SaveAttendance(c *gin.Context) {
	classID, ok := parseClassID(c)
	if !ok {
		return
	}

	var req dto.SaveAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	if err := ctrl.attendanceService.Save(c.Request.Context(), classID, req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.SuccessResponse{Message: "Attendance saved"})
}
