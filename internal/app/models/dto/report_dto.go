package dto

// ReportStats are the headline aggregates of a class report. AverageScore
// keeps one decimal place; the attendance and submission rates are integer
// percentages.
type ReportStats struct {
	AverageScore   float64 `json:"averageScore"`
	HighestScore   float64 `json:"highestScore"`
	LowestScore    float64 `json:"lowestScore"`
	TotalStudents  int     `json:"totalStudents"`
	AttendanceRate int     `json:"attendanceRate"`
	SubmissionRate int     `json:"submissionRate"`
}

// ScoreBucket is one bar of the score-distribution histogram
type ScoreBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// ReportNeedsHelpStudent is one entry of the report's needs-help list
type ReportNeedsHelpStudent struct {
	ID     int64   `json:"id"`
	NIS    string  `json:"nis"`
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Tasks  string  `json:"tasks"`
	Status string  `json:"status"`
}

// ReportResponse is the full class report payload
type ReportResponse struct {
	Stats             ReportStats              `json:"stats"`
	ScoreDistribution []ScoreBucket            `json:"scoreDistribution"`
	NeedsHelp         []ReportNeedsHelpStudent `json:"needsHelp"`
}
