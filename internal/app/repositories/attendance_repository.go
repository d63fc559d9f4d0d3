package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ardhiancalwa/Schola/internal/app/models"
)

// AttendanceRepository handles database operations for attendance logs
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// UpsertLogs writes one status per student for a class and date. Saving the
// same (student, class, date) again overwrites the previous status.
func (r *AttendanceRepository) UpsertLogs(ctx context.Context, logs []*models.AttendanceLog) error {
	if len(logs) == 0 {
		return nil
	}

	query := `
		INSERT INTO attendance_logs (student_id, class_id, date, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (student_id, class_id, date) DO UPDATE SET status = EXCLUDED.status
	`

	batch := &pgx.Batch{}
	for _, log := range logs {
		batch.Queue(query, log.StudentID, log.ClassID, log.Date, log.Status)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range logs {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("error saving attendance log: %w", err)
		}
	}

	return nil
}

// GetStatusesByClassAndDate maps student IDs to their logged status on one
// date in one class. Students with no log that day are absent from the map.
func (r *AttendanceRepository) GetStatusesByClassAndDate(ctx context.Context, classID int64, date time.Time) (map[int64]models.AttendanceStatus, error) {
	query := `
		SELECT student_id, status
		FROM attendance_logs
		WHERE class_id = $1 AND date = $2
	`

	rows, err := r.db.Query(ctx, query, classID, date)
	if err != nil {
		return nil, fmt.Errorf("error listing attendance logs: %w", err)
	}
	defer rows.Close()

	statuses := make(map[int64]models.AttendanceStatus)
	for rows.Next() {
		var studentID int64
		var status models.AttendanceStatus
		if err := rows.Scan(&studentID, &status); err != nil {
			return nil, fmt.Errorf("error scanning attendance row: %w", err)
		}
		statuses[studentID] = status
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance rows: %w", err)
	}

	return statuses, nil
}

// CountStatusesByClassAndDate counts the logged statuses for a class and date.
func (r *AttendanceRepository) CountStatusesByClassAndDate(ctx context.Context, classID int64, date time.Time) (present, excused, absent int, err error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'present'),
			COUNT(*) FILTER (WHERE status = 'excused'),
			COUNT(*) FILTER (WHERE status = 'absent')
		FROM attendance_logs
		WHERE class_id = $1 AND date = $2
	`

	err = r.db.QueryRow(ctx, query, classID, date).Scan(&present, &excused, &absent)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("error counting attendance statuses: %w", err)
	}
	return present, excused, absent, nil
}

// CountGlobal returns the number of present entries and the total number of
// attendance log entries across all classes.
func (r *AttendanceRepository) CountGlobal(ctx context.Context) (present, total int64, err error) {
	query := `
		SELECT COUNT(*) FILTER (WHERE status = 'present'), COUNT(*)
		FROM attendance_logs
	`

	err = r.db.QueryRow(ctx, query).Scan(&present, &total)
	if err != nil {
		return 0, 0, fmt.Errorf("error counting attendance logs: %w", err)
	}
	return present, total, nil
}
