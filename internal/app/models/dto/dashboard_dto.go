package dto

// DashboardUser identifies the logged-in teacher on the dashboard header
type DashboardUser struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// DashboardStats is the stats row at the top of the dashboard
type DashboardStats struct {
	TotalStudents  int64 `json:"totalStudents"`
	AttendanceRate int   `json:"attendanceRate"`
	TotalClasses   int64 `json:"totalClasses"`
}

// ClassOption is a class entry for selector widgets
type ClassOption struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

// ClassChartPoint is one class bar in the class-statistics chart
type ClassChartPoint struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Attendance int    `json:"attendance"`
	Grades     int    `json:"grades"`
}

// CalendarEventItem is a calendar entry rendered on the dashboard widget
type CalendarEventItem struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Color     string `json:"color"`
}

// NeedsHelpStudent is one entry of the ranked needs-help widget
type NeedsHelpStudent struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	ClassName      string `json:"className"`
	Score          int    `json:"score"`
	MaxScore       int    `json:"maxScore"`
	SubmissionRate int    `json:"taskSubmissionRate"`
}

// DashboardResponse is the full dashboard payload
type DashboardResponse struct {
	User           DashboardUser       `json:"user"`
	Stats          DashboardStats      `json:"stats"`
	ClassList      []ClassOption       `json:"classList"`
	ChartData      []ClassChartPoint   `json:"chartData"`
	CalendarEvents []CalendarEventItem `json:"calendarEvents"`
	NeedsHelp      []NeedsHelpStudent  `json:"needsHelp"`
}
