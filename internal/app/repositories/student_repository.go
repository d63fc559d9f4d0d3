package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ardhiancalwa/Schola/internal/app/models"
	"github.com/ardhiancalwa/Schola/internal/pkg/apperrors"
	"github.com/ardhiancalwa/Schola/internal/pkg/dberrors"
)

// StudentFilter narrows student queries. Zero values mean "no restriction",
// as does the semester value "all".
type StudentFilter struct {
	ClassID  int64
	Semester string
	Query    string
}

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

const studentWithLogsColumns = `
	s.id, s.class_id, s.nis, s.name, s.gender,
	s.task1, s.task2, s.midterm, s.final_exam, s.final_grade,
	s.semester, s.created_at,
	c.name, c.education_level, c.department,
	COALESCE(array_agg(a.status ORDER BY a.date) FILTER (WHERE a.status IS NOT NULL), '{}')
`

func buildStudentFilter(filter StudentFilter) (string, []interface{}) {
	where := " WHERE 1=1"
	var args []interface{}

	if filter.ClassID > 0 {
		args = append(args, filter.ClassID)
		where += fmt.Sprintf(" AND s.class_id = $%d", len(args))
	}
	if filter.Semester != "" && !strings.EqualFold(filter.Semester, "all") {
		args = append(args, filter.Semester)
		where += fmt.Sprintf(" AND s.semester = $%d", len(args))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		where += fmt.Sprintf(" AND (s.name ILIKE $%d OR s.nis ILIKE $%d)", len(args), len(args))
	}

	return where, args
}

// ListWithLogs retrieves every student matched by the filter joined with its
// class and the full list of its attendance statuses. No pagination; this is
// the row set analytics reduce over.
func (r *StudentRepository) ListWithLogs(ctx context.Context, filter StudentFilter) ([]*models.StudentWithLogs, error) {
	where, args := buildStudentFilter(filter)
	query := `
		SELECT ` + studentWithLogsColumns + `
		FROM students s
		JOIN classes c ON c.id = s.class_id
		LEFT JOIN attendance_logs a ON a.student_id = s.id` +
		where + `
		GROUP BY s.id, c.id
		ORDER BY s.name ASC, s.id ASC
	`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	return scanStudentsWithLogs(rows)
}

// ListPageWithLogs retrieves one page of the same row set ListWithLogs
// produces, under the same filter and ordering.
func (r *StudentRepository) ListPageWithLogs(ctx context.Context, filter StudentFilter, offset, limit int) ([]*models.StudentWithLogs, error) {
	where, args := buildStudentFilter(filter)
	args = append(args, limit, offset)
	query := `
		SELECT ` + studentWithLogsColumns + `
		FROM students s
		JOIN classes c ON c.id = s.class_id
		LEFT JOIN attendance_logs a ON a.student_id = s.id` +
		where + `
		GROUP BY s.id, c.id
		ORDER BY s.name ASC, s.id ASC
	` + fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students page: %w", err)
	}
	defer rows.Close()

	return scanStudentsWithLogs(rows)
}

func scanStudentsWithLogs(rows pgx.Rows) ([]*models.StudentWithLogs, error) {
	var students []*models.StudentWithLogs
	for rows.Next() {
		var s models.StudentWithLogs
		var statuses []string
		err := rows.Scan(
			&s.ID,
			&s.ClassID,
			&s.NIS,
			&s.Name,
			&s.Gender,
			&s.Task1,
			&s.Task2,
			&s.Midterm,
			&s.FinalExam,
			&s.FinalGrade,
			&s.Semester,
			&s.CreatedAt,
			&s.ClassName,
			&s.ClassEducationLevel,
			&s.ClassDepartment,
			&statuses,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		s.AttendanceStatuses = make([]models.AttendanceStatus, len(statuses))
		for i, st := range statuses {
			s.AttendanceStatuses[i] = models.AttendanceStatus(st)
		}
		students = append(students, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}
	return students, nil
}

// Count returns how many students match the filter.
func (r *StudentRepository) Count(ctx context.Context, filter StudentFilter) (int64, error) {
	where, args := buildStudentFilter(filter)
	query := `SELECT COUNT(*) FROM students s` + where

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, class_id, nis, name, gender, task1, task2, midterm, final_exam, final_grade, semester, created_at
		FROM students
		WHERE id = $1
	`

	var s models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.ClassID,
		&s.NIS,
		&s.Name,
		&s.Gender,
		&s.Task1,
		&s.Task2,
		&s.Midterm,
		&s.FinalExam,
		&s.FinalGrade,
		&s.Semester,
		&s.CreatedAt,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &s, nil
}

// ListByClass retrieves the id, name and nis of every student in a class
// matching the optional name/nis query, one page at a time, plus the total.
func (r *StudentRepository) ListByClass(ctx context.Context, classID int64, query string, offset, limit int) ([]*models.Student, int64, error) {
	filter := StudentFilter{ClassID: classID, Query: query}
	where, args := buildStudentFilter(filter)

	var total int64
	countQuery := `SELECT COUNT(*) FROM students s` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting class students: %w", err)
	}

	args = append(args, limit, offset)
	listQuery := `
		SELECT s.id, s.name, s.nis
		FROM students s` + where + `
		ORDER BY s.name ASC, s.id ASC
	` + fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing class students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.NIS); err != nil {
			return nil, 0, fmt.Errorf("error scanning class student row: %w", err)
		}
		students = append(students, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating class student rows: %w", err)
	}

	return students, total, nil
}

// InsertBatch inserts a roster of students for a class in one round trip.
func (r *StudentRepository) InsertBatch(ctx context.Context, students []*models.Student) error {
	if len(students) == 0 {
		return nil
	}

	query := `
		INSERT INTO students (class_id, nis, name, gender, task1, task2, midterm, final_exam, final_grade, semester)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	batch := &pgx.Batch{}
	for _, s := range students {
		batch.Queue(query,
			s.ClassID, s.NIS, s.Name, s.Gender,
			s.Task1, s.Task2, s.Midterm, s.FinalExam, s.FinalGrade,
			s.Semester,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range students {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("error inserting student: %w", err)
		}
	}

	return nil
}

// UpdateIdentity changes a student's name, nis and gender.
func (r *StudentRepository) UpdateIdentity(ctx context.Context, id int64, name, nis, gender string) error {
	query := `
		UPDATE students
		SET name = $2, nis = $3, gender = $4
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, id, name, nis, gender)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// UpdateGrades stores new component scores and the recomputed final grade.
func (r *StudentRepository) UpdateGrades(ctx context.Context, id int64, task1, task2, midterm, finalExam, finalGrade float64) error {
	query := `
		UPDATE students
		SET task1 = $2, task2 = $3, midterm = $4, final_exam = $5, final_grade = $6
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, id, task1, task2, midterm, finalExam, finalGrade)
	if err != nil {
		return fmt.Errorf("error updating student grades: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete removes a student and, through ON DELETE CASCADE, its attendance logs.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
