package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ardhiancalwa/Schola/internal/app/models"
	"github.com/ardhiancalwa/Schola/internal/pkg/apperrors"
	"github.com/ardhiancalwa/Schola/internal/pkg/dberrors"
)

// AnalysisRepository handles database operations for material analyses
type AnalysisRepository struct {
	db *pgxpool.Pool
}

// NewAnalysisRepository creates a new analysis repository
func NewAnalysisRepository(db *pgxpool.Pool) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// Create inserts a completed analysis. Analyses are append-only; an existing
// row is never updated.
func (r *AnalysisRepository) Create(ctx context.Context, analysis *models.MaterialAnalysis) error {
	summaryJSON, err := json.Marshal(analysis.Summary)
	if err != nil {
		return fmt.Errorf("error encoding summary: %w", err)
	}

	query := `
		INSERT INTO material_analyses (user_id, class_id, material_id, file_name, file_path, class_level, grade_number, learning_method, summary, processing_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err = r.db.QueryRow(ctx, query,
		analysis.UserID,
		analysis.ClassID,
		analysis.MaterialID,
		analysis.FileName,
		analysis.FilePath,
		analysis.ClassLevel,
		analysis.GradeNumber,
		analysis.LearningMethod,
		summaryJSON,
		analysis.ProcessingTime,
	).Scan(&analysis.ID, &analysis.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating analysis: %w", err)
	}

	return nil
}

// GetLatestByMaterialID retrieves the most recent analysis for a material.
func (r *AnalysisRepository) GetLatestByMaterialID(ctx context.Context, materialID string) (*models.MaterialAnalysis, error) {
	query := `
		SELECT id, user_id, class_id, material_id, file_name, file_path, class_level, grade_number, learning_method, summary, processing_time, created_at
		FROM material_analyses
		WHERE material_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var analysis models.MaterialAnalysis
	var summaryJSON []byte
	err := r.db.QueryRow(ctx, query, materialID).Scan(
		&analysis.ID,
		&analysis.UserID,
		&analysis.ClassID,
		&analysis.MaterialID,
		&analysis.FileName,
		&analysis.FilePath,
		&analysis.ClassLevel,
		&analysis.GradeNumber,
		&analysis.LearningMethod,
		&summaryJSON,
		&analysis.ProcessingTime,
		&analysis.CreatedAt,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("error retrieving analysis: %w", err)
	}

	if err := json.Unmarshal(summaryJSON, &analysis.Summary); err != nil {
		return nil, fmt.Errorf("error decoding summary: %w", err)
	}

	return &analysis, nil
}
