package models

import "time"

// Class represents a class taught by a teacher
type Class struct {
	ID             int64     `json:"id"`
	TeacherID      int64     `json:"teacher_id"`
	Name           string    `json:"name"`
	Subject        string    `json:"subject"`
	EducationLevel string    `json:"education_level"`
	Department     string    `json:"department"`
	LearningMethod string    `json:"learning_method"`
	AcademicYear   string    `json:"academic_year"`
	Semester       string    `json:"semester"`
	CreatedAt      time.Time `json:"created_at"`
}
