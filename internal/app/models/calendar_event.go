package models

import "time"

// CalendarEvent represents an agenda entry on the teacher's calendar
type CalendarEvent struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Title      string    `json:"title"`
	StartDate  time.Time `json:"start_date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	ColorTheme string    `json:"color_theme"`
}
