package dto

// AnalyzeMaterialResponse identifies a completed analysis run
type AnalyzeMaterialResponse struct {
	AnalysisID string `json:"analysisId"`
	MaterialID string `json:"materialId"`
}

// GenerateTipsRequest asks for free-form teaching tips on a topic
type GenerateTipsRequest struct {
	Topic         string `json:"topic" binding:"required"`
	LearningStyle string `json:"learningStyle" binding:"required"`
}

// GenerateTipsResponse wraps the generated text
type GenerateTipsResponse struct {
	Data string `json:"data"`
}
