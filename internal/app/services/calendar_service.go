package services

import (
	"context"
	"time"

	"github.com/ardhiancalwa/Schola/internal/app/models"
	"github.com/ardhiancalwa/Schola/internal/app/models/dto"
	"github.com/ardhiancalwa/Schola/internal/app/repositories"
	"github.com/ardhiancalwa/Schola/internal/pkg/apperrors"
)

const defaultEventColor = "blue"

// CalendarService handles the teacher's agenda
type CalendarService struct {
	calendarRepo *repositories.CalendarRepository
}

// NewCalendarService creates a new calendar service
func NewCalendarService(calendarRepo *repositories.CalendarRepository) *CalendarService {
	return &CalendarService{calendarRepo: calendarRepo}
}

// CreateEvent stores a new agenda entry for the user.
func (s *CalendarService) CreateEvent(ctx context.Context, userID int64, req dto.CreateEventRequest) (*models.CalendarEvent, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperrors.NewBadRequestError("date must be in YYYY-MM-DD format")
	}

	color := req.Color
	if color == "" {
		color = defaultEventColor
	}

	event := &models.CalendarEvent{
		UserID:     userID,
		Title:      req.Title,
		StartDate:  date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		ColorTheme: color,
	}

	if err := s.calendarRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// ListMonth retrieves the user's events for a month padded by a week on both
// sides.
func (s *CalendarService) ListMonth(ctx context.Context, userID int64, month time.Time) ([]dto.CalendarEventItem, error) {
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	from := monthStart.AddDate(0, 0, -7)
	to := monthStart.AddDate(0, 1, 0).AddDate(0, 0, 6)

	events, err := s.calendarRepo.ListBetween(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CalendarEventItem, 0, len(events))
	for _, e := range events {
		items = append(items, dto.CalendarEventItem{
			ID:        e.ID,
			Title:     e.Title,
			StartDate: e.StartDate.Format("2006-01-02"),
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
			Color:     e.ColorTheme,
		})
	}
	return items, nil
}
