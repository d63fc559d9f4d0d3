package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ardhiancalwa/Schola/internal/app/models"
	"github.com/ardhiancalwa/Schola/internal/pkg/apperrors"
	"github.com/ardhiancalwa/Schola/internal/pkg/dberrors"
)

// ClassRepository handles database operations for classes
type ClassRepository struct {
	db *pgxpool.Pool
}

// NewClassRepository creates a new class repository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{db: db}
}

// Create inserts a new class and sets its generated ID.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	query := `
		INSERT INTO classes (teacher_id, name, subject, education_level, department, learning_method, academic_year, semester)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		class.TeacherID,
		class.Name,
		class.Subject,
		class.EducationLevel,
		class.Department,
		class.LearningMethod,
		class.AcademicYear,
		class.Semester,
	).Scan(&class.ID, &class.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating class: %w", err)
	}

	return nil
}

// GetByID retrieves a class by ID.
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*models.Class, error) {
	query := `
		SELECT id, teacher_id, name, subject, education_level, department, learning_method, academic_year, semester, created_at
		FROM classes
		WHERE id = $1
	`

	var class models.Class
	err := r.db.QueryRow(ctx, query, id).Scan(
		&class.ID,
		&class.TeacherID,
		&class.Name,
		&class.Subject,
		&class.EducationLevel,
		&class.Department,
		&class.LearningMethod,
		&class.AcademicYear,
		&class.Semester,
		&class.CreatedAt,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, fmt.Errorf("error retrieving class: %w", err)
	}

	return &class, nil
}

// GetAll retrieves every class ordered by name.
func (r *ClassRepository) GetAll(ctx context.Context) ([]*models.Class, error) {
	query := `
		SELECT id, teacher_id, name, subject, education_level, department, learning_method, academic_year, semester, created_at
		FROM classes
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing classes: %w", err)
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		var class models.Class
		err := rows.Scan(
			&class.ID,
			&class.TeacherID,
			&class.Name,
			&class.Subject,
			&class.EducationLevel,
			&class.Department,
			&class.LearningMethod,
			&class.AcademicYear,
			&class.Semester,
			&class.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning class row: %w", err)
		}
		classes = append(classes, &class)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating class rows: %w", err)
	}

	return classes, nil
}

// Count returns the total number of classes.
func (r *ClassRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM classes`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting classes: %w", err)
	}
	return count, nil
}

// Delete removes a class. Enrolled students and attendance logs go with it
// through ON DELETE CASCADE.
func (r *ClassRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting class: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrClassNotFound
	}
	return nil
}
