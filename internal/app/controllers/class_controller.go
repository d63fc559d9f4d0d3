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

// ClassController handles class creation and listing endpoints
type ClassController struct {
	classService *services.ClassService
}

// NewClassController creates a new class controller
func NewClassController(classService *services.ClassService) *ClassController {
	return &ClassController{classService: classService}
}

// CreateClass godoc
// @Summary Create a class with its roster
// @Description Creates a class and imports its students in one request
// @Tags classes
// @Accept json
// @Produce json
// @Param request body dto.CreateClassRequest true "Class and roster payload"
// @Success 201 {object} dto.APIResponse{data=models.Class}
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /classes [post]
func (ctrl *ClassController) CreateClass(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	class, err := ctrl.classService.CreateClass(c.Request.Context(), userID, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, class)
}

// GetClass godoc
// @Summary Get a class
// @Tags classes
// @Produce json
// @Param classId path int true "Class ID"
// @Success 200 {object} dto.APIResponse{data=models.Class}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /classes/{classId} [get]
func (ctrl *ClassController) GetClass(c *gin.Context) {
	classID, err := strconv.ParseInt(c.Param("classId"), 10, 64)
	if err != nil || classID <= 0 {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("classId must be a positive integer"))
		return
	}

	class, err := ctrl.classService.GetClass(c.Request.Context(), classID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, class)
}

// DeleteClass godoc
// @Summary Delete a class
// @Description Removes the class, its students and their attendance logs
// @Tags classes
// @Produce json
// @Param classId path int true "Class ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /classes/{classId} [delete]
func (ctrl *ClassController) DeleteClass(c *gin.Context) {
	classID, err := strconv.ParseInt(c.Param("classId"), 10, 64)
	if err != nil || classID <= 0 {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("classId must be a positive integer"))
		return
	}

	if err := ctrl.classService.DeleteClass(c.Request.Context(), classID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.SuccessResponse{Message: "Class deleted"})
}

// ListClasses godoc
// @Summary List all classes
// @Tags classes
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.ClassListItem}
// @Security BearerAuth
// @Router /classes [get]
func (ctrl *ClassController) ListClasses(c *gin.Context) {
	classes, err := ctrl.classService.ListClasses(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, classes)
}
