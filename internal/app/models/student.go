package models

import "time"

// Student represents a student enrolled in a class. The four component
// scores feed the derived final grade: final_grade is always the arithmetic
// mean of task1, task2, midterm and final_exam, recomputed whenever any
// component changes.
type Student struct {
	ID         int64     `json:"id"`
	ClassID    int64     `json:"class_id"`
	NIS        string    `json:"nis"`
	Name       string    `json:"name"`
	Gender     string    `json:"gender"`
	Task1      float64   `json:"task1"`
	Task2      float64   `json:"task2"`
	Midterm    float64   `json:"midterm"`
	FinalExam  float64   `json:"final_exam"`
	FinalGrade float64   `json:"final_grade"`
	Semester   string    `json:"semester"`
	CreatedAt  time.Time `json:"created_at"`
}

// StudentWithLogs is a student row joined with its class and the statuses of
// all its attendance log entries. This is the row shape the aggregator
// reduces over.
type StudentWithLogs struct {
	Student

	ClassName           string             `json:"class_name"`
	ClassEducationLevel string             `json:"class_education_level"`
	ClassDepartment     string             `json:"class_department"`
	AttendanceStatuses  []AttendanceStatus `json:"attendance_statuses"`
}
