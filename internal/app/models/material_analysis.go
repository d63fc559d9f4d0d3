package models

import "time"

// ClassLevel enumerates the supported school levels
type ClassLevel string

const (
	LevelSD  ClassLevel = "SD"
	LevelSMP ClassLevel = "SMP"
	LevelSMA ClassLevel = "SMA"
	LevelSMK ClassLevel = "SMK"
)

// IsValidClassLevel reports whether s is a supported school level.
func IsValidClassLevel(s string) bool {
	switch ClassLevel(s) {
	case LevelSD, LevelSMP, LevelSMA, LevelSMK:
		return true
	}
	return false
}

// MaterialSection is one topic block of the summarized material.
type MaterialSection struct {
	Title           string   `json:"title"`
	BackgroundColor string   `json:"backgroundColor"`
	Points          []string `json:"points"`
}

// DifficultArea highlights a part of the material students tend to struggle with.
type DifficultArea struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
}

// TeachingRecommendation ties concrete methods and suggestions to a learning style.
type TeachingRecommendation struct {
	LearningStyle string   `json:"learningStyle"`
	Methods       []string `json:"methods"`
	Suggestions   []string `json:"suggestions"`
}

// SummaryMaterial is the material breakdown half of a summary payload.
type SummaryMaterial struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Sections    []MaterialSection `json:"sections"`
}

// SummaryInsights is the pedagogical-insight half of a summary payload.
type SummaryInsights struct {
	MainTopics              []string                 `json:"mainTopics"`
	DifficultAreas          []DifficultArea          `json:"difficultAreas"`
	TeachingRecommendations []TeachingRecommendation `json:"teachingRecommendations"`
}

// MaterialSummary is the structured payload returned by the generative model.
type MaterialSummary struct {
	Material SummaryMaterial `json:"material"`
	Insights SummaryInsights `json:"insights"`
}

// MaterialAnalysis records one completed summarization run. Rows are
// immutable; re-analyzing a material inserts a new record.
type MaterialAnalysis struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"user_id"`
	ClassID        int64           `json:"class_id"`
	MaterialID     string          `json:"material_id"`
	FileName       string          `json:"file_name"`
	FilePath       string          `json:"file_path"`
	ClassLevel     ClassLevel      `json:"class_level"`
	GradeNumber    int             `json:"grade_number"`
	LearningMethod string          `json:"learning_method"`
	Summary        MaterialSummary `json:"summary"`
	ProcessingTime float64         `json:"processing_time"`
	CreatedAt      time.Time       `json:"created_at"`
}
