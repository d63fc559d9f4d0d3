package models

import "time"

// AttendanceStatus enumerates the recorded daily statuses
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusExcused AttendanceStatus = "excused"
	StatusAbsent  AttendanceStatus = "absent"
)

// IsValidAttendanceStatus reports whether s is one of the recorded statuses.
func IsValidAttendanceStatus(s string) bool {
	switch AttendanceStatus(s) {
	case StatusPresent, StatusExcused, StatusAbsent:
		return true
	}
	return false
}

// AttendanceLog is one student's status on one date in one class. At most one
// entry exists per (student, class, date); writes are upserts on that key.
type AttendanceLog struct {
	ID        int64            `json:"id"`
	StudentID int64            `json:"student_id"`
	ClassID   int64            `json:"class_id"`
	Date      time.Time        `json:"date"`
	Status    AttendanceStatus `json:"status"`
}
