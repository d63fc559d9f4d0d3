package dto

// StudentAnalyticsRow is one student in the analytics listing, with every
// computed field the table renders.
type StudentAnalyticsRow struct {
	ID             int64  `json:"id"`
	NIS            string `json:"nis"`
	Name           string `json:"name"`
	Gender         string `json:"gender"`
	ClassName      string `json:"className"`
	AttendanceRate int    `json:"attendanceRate"`
	SubmissionRate int    `json:"submissionRate"`
	FinalGrade     string `json:"finalGrade"`
	Performance    string `json:"performance"`
}

// AnalyticsStats are aggregate totals computed over the entire filtered
// scope, independent of the listing page.
type AnalyticsStats struct {
	TotalStudents  int64 `json:"totalStudents"`
	AvgAttendance  int   `json:"avgAttendance"`
	AvgGrade       int   `json:"avgGrade"`
	SubmissionRate int   `json:"submissionRate"`
	NeedsHelpCount int   `json:"needsHelpCount"`
}

// StudentAnalyticsResponse is the full analytics listing payload.
// NoClasses distinguishes "the system has no classes at all" from "valid
// scope with zero students".
type StudentAnalyticsResponse struct {
	NoClasses  bool                  `json:"noClasses"`
	Students   []StudentAnalyticsRow `json:"students"`
	Stats      AnalyticsStats        `json:"stats"`
	Pagination PaginationInfo        `json:"pagination"`
}
