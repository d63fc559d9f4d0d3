package dto

// AttendanceRow is one student row of the attendance sheet, carrying the
// status already logged for the requested date if any.
type AttendanceRow struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	NIS           string `json:"nis"`
	CurrentStatus string `json:"currentStatus,omitempty"`
}

// AttendanceStats count the logged statuses for the whole class and date,
// ignoring pagination.
type AttendanceStats struct {
	Present       int   `json:"present"`
	Excused       int   `json:"excused"`
	Absent        int   `json:"absent"`
	TotalStudents int64 `json:"totalStudents"`
}

// AttendanceSheetResponse is the paginated attendance sheet for a class+date
type AttendanceSheetResponse struct {
	Students   []AttendanceRow `json:"students"`
	Stats      AttendanceStats `json:"stats"`
	Pagination PaginationInfo  `json:"pagination"`
}

// AttendanceRecord is one student's status in a save request
type AttendanceRecord struct {
	StudentID int64  `json:"studentId" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

// SaveAttendanceRequest batch-saves the statuses for a class on a date.
// Records are upserted on (student, class, date).
type SaveAttendanceRequest struct {
	Date    string             `json:"date" binding:"required"`
	Records []AttendanceRecord `json:"records" binding:"required,min=1"`
}
