package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ardhiancalwa/Schola/internal/app/models/dto"
	"github.com/ardhiancalwa/Schola/internal/app/services"
	"github.com/ardhiancalwa/Schola/internal/middleware"
	"github.com/ardhiancalwa/Schola/internal/pkg/apperrors"
)

// maxMaterialSize caps uploaded materials at 20 MB
const maxMaterialSize = 20 << 20

// SummarizerController handles AI material-analysis endpoints
type SummarizerController struct {
	summarizerService *services.SummarizerService
}

// NewSummarizerController creates a new summarizer controller
func NewSummarizerController(summarizerService *services.SummarizerService) *SummarizerController {
	return &SummarizerController{summarizerService: summarizerService}
}

// AnalyzeMaterial godoc
// @Summary Analyze a teaching material
// @Description Extracts the text of an uploaded PDF, summarizes it with the generative model and stores the analysis
// @Tags ai
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Material document (PDF)"
// @Param classId formData int true "Class ID"
// @Param classLevel formData string true "School level: SD, SMP, SMA or SMK"
// @Param gradeNumber formData int true "Grade number"
// @Param learningMethod formData string true "Dominant learning method of the class"
// @Success 201 {object} dto.APIResponse{data=dto.AnalyzeMaterialResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /ai/analyze-material [post]
func (ctrl *SummarizerController) AnalyzeMaterial(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrTokenInvalid)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("a material file is required"))
		return
	}
	if file.Size > maxMaterialSize {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("material file exceeds the 20 MB limit"))
		return
	}
	if ext := strings.ToLower(file.Filename); !strings.HasSuffix(ext, ".pdf") && !strings.HasSuffix(ext, ".txt") {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("material must be a PDF or plain-text file"))
		return
	}

	classID, err := strconv.ParseInt(c.PostForm("classId"), 10, 64)
	if err != nil || classID <= 0 {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("classId must be a positive integer"))
		return
	}

	gradeNumber, err := strconv.Atoi(c.PostForm("gradeNumber"))
	if err != nil || gradeNumber < 1 || gradeNumber > 13 {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("gradeNumber must be between 1 and 13"))
		return
	}

	analysis, err := ctrl.summarizerService.AnalyzeMaterial(c.Request.Context(), userID, services.AnalyzeMaterialInput{
		ClassID:        classID,
		ClassLevel:     c.PostForm("classLevel"),
		GradeNumber:    gradeNumber,
		LearningMethod: c.PostForm("learningMethod"),
		File:           file,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, dto.AnalyzeMaterialResponse{
		AnalysisID: strconv.FormatInt(analysis.ID, 10),
		MaterialID: analysis.MaterialID,
	})
}

// GetAnalysis godoc
// @Summary Get the latest analysis of a material
// @Tags ai
// @Produce json
// @Param materialId path string true "Material ID"
// @Success 200 {object} dto.APIResponse{data=models.MaterialAnalysis}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /ai/analyses/{materialId} [get]
func (ctrl *SummarizerController) GetAnalysis(c *gin.Context) {
	materialID := c.Param("materialId")
	if materialID == "" {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("materialId is required"))
		return
	}

	analysis, err := ctrl.summarizerService.GetAnalysis(c.Request.Context(), materialID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, analysis)
}

// GenerateTips godoc
// @Summary Generate teaching tips
// @Description Produces free-form teaching tips for a topic and learning style
// @Tags ai
// @Accept json
// @Produce json
// @Param request body dto.GenerateTipsRequest true "Tips request"
// @Success 200 {object} dto.APIResponse{data=dto.GenerateTipsResponse}
// @Failure 503 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /ai/generate-tips [post]
func (ctrl *SummarizerController) GenerateTips(c *gin.Context) {
	var req dto.GenerateTipsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	tips, err := ctrl.summarizerService.GenerateTips(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.GenerateTipsResponse{Data: tips})
}
