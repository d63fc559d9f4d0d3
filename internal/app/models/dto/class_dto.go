package dto

// ClassPayload is the class half of a create-class request
type ClassPayload struct {
	Name           string `json:"name" binding:"required"`
	Subject        string `json:"subject" binding:"required"`
	EducationLevel string `json:"educationLevel" binding:"required"`
	Department     string `json:"department"`
	LearningMethod string `json:"learningMethod"`
}

// StudentPayload is one imported roster row of a create-class request.
// Scores default to zero when omitted.
type StudentPayload struct {
	Name      string  `json:"name" binding:"required"`
	NIS       string  `json:"nis"`
	Gender    string  `json:"gender"`
	Task1     float64 `json:"task1"`
	Task2     float64 `json:"task2"`
	Midterm   float64 `json:"midterm"`
	FinalExam float64 `json:"finalExam"`
}

// CreateClassRequest creates a class together with its imported roster
type CreateClassRequest struct {
	Class    ClassPayload     `json:"class" binding:"required"`
	Students []StudentPayload `json:"students"`
}

// ClassListItem is one class in the classes listing
type ClassListItem struct {
	ID             int64  `json:"id"`
	Label          string `json:"label"`
	Name           string `json:"name"`
	Subject        string `json:"subject"`
	EducationLevel string `json:"educationLevel"`
	Department     string `json:"department"`
}

// UpdateStudentRequest updates a student's identity fields
type UpdateStudentRequest struct {
	Name   string `json:"name" binding:"required"`
	NIS    string `json:"nis"`
	Gender string `json:"gender"`
}

// UpdateGradesRequest replaces the four component scores of a student. The
// final grade is recomputed server-side.
type UpdateGradesRequest struct {
	Task1     float64 `json:"task1" binding:"min=0,max=100"`
	Task2     float64 `json:"task2" binding:"min=0,max=100"`
	Midterm   float64 `json:"midterm" binding:"min=0,max=100"`
	FinalExam float64 `json:"finalExam" binding:"min=0,max=100"`
}
