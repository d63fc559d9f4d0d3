package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ardhiancalwa/Schola/internal/app/models"
)

// CalendarRepository handles database operations for calendar events
type CalendarRepository struct {
	db *pgxpool.Pool
}

// NewCalendarRepository creates a new calendar repository
func NewCalendarRepository(db *pgxpool.Pool) *CalendarRepository {
	return &CalendarRepository{db: db}
}

// Create inserts a new calendar event and sets its generated ID.
func (r *CalendarRepository) Create(ctx context.Context, event *models.CalendarEvent) error {
	query := `
		INSERT INTO calendar_events (user_id, title, start_date, start_time, end_time, color_theme)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		event.UserID,
		event.Title,
		event.StartDate,
		event.StartTime,
		event.EndTime,
		event.ColorTheme,
	).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("error creating calendar event: %w", err)
	}

	return nil
}

// ListBetween retrieves a user's events with start_date inside [from, to],
// ordered by date then start time.
func (r *CalendarRepository) ListBetween(ctx context.Context, userID int64, from, to time.Time) ([]*models.CalendarEvent, error) {
	query := `
		SELECT id, user_id, title, start_date, start_time, end_time, color_theme
		FROM calendar_events
		WHERE user_id = $1 AND start_date BETWEEN $2 AND $3
		ORDER BY start_date ASC, start_time ASC
	`

	rows, err := r.db.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error listing calendar events: %w", err)
	}
	defer rows.Close()

	var events []*models.CalendarEvent
	for rows.Next() {
		var e models.CalendarEvent
		err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Title,
			&e.StartDate,
			&e.StartTime,
			&e.EndTime,
			&e.ColorTheme,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning calendar event row: %w", err)
		}
		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating calendar event rows: %w", err)
	}

	return events, nil
}
