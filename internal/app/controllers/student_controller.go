package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ardhiancalwa/Schola/internal/app/models/dto"
	"github.com/ardhiancalwa/Schola/internal/app/services"
	"github.com/ardhiancalwa/Schola/internal/middleware"
	"github.com/ardhiancalwa/Schola/internal/pkg/apperrors"
)

// StudentController handles student update and delete endpoints
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new student controller
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

func parseStudentID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("student id must be a positive integer"))
		return 0, false
	}
	return id, true
}

// UpdateIdentity godoc
// @Summary Update a student's identity
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Identity payload"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /students/{id} [put]
func (ctrl *StudentController) UpdateIdentity(c *gin.Context) {
	id, ok := parseStudentID(c)
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	student, err := ctrl.studentService.UpdateIdentity(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, student)
}

// UpdateGrades godoc
// @Summary Update a student's component scores
// @Description Replaces the four component scores; the final grade is recomputed as their mean
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.UpdateGradesRequest true "Grades payload"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /students/{id}/grades [put]
func (ctrl *StudentController) UpdateGrades(c *gin.Context) {
	id, ok := parseStudentID(c)
	if !ok {
		return
	}

	var req dto.UpdateGradesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	student, err := ctrl.studentService.UpdateGrades(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, student)
}

// DeleteStudent godoc
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /students/{id} [delete]
func (ctrl *StudentController) DeleteStudent(c *gin.Context) {
	id, ok := parseStudentID(c)
	if !ok {
		return
	}

	if err := ctrl.studentService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.SuccessResponse{Message: "Student deleted"})
}
