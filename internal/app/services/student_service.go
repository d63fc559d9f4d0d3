package services

import (
	"context"

	"github.com/ardhiancalwa/Schola/internal/app/models"
	"github.com/ardhiancalwa/Schola/internal/app/models/dto"
	"github.com/ardhiancalwa/Schola/internal/app/repositories"
	"github.com/ardhiancalwa/Schola/internal/pkg/logger"
)

// StudentService handles student identity and grade updates
type StudentService struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service
func NewStudentService(studentRepo *repositories.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// UpdateIdentity changes a student's name, nis and gender.
func (s *StudentService) UpdateIdentity(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*models.Student, error) {
	if err := s.studentRepo.UpdateIdentity(ctx, id, req.Name, req.NIS, req.Gender); err != nil {
		return nil, err
	}
	return s.studentRepo.GetByID(ctx, id)
}

// UpdateGrades replaces the component scores and recomputes the final grade,
// storing the int-rounded mean.
func (s *StudentService) UpdateGrades(ctx context.Context, id int64, req dto.UpdateGradesRequest) (*models.Student, error) {
	finalGrade := RoundedFinalGrade(req.Task1, req.Task2, req.Midterm, req.FinalExam)

	err := s.studentRepo.UpdateGrades(ctx, id, req.Task1, req.Task2, req.Midterm, req.FinalExam, finalGrade)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("studentId", id).Float64("finalGrade", finalGrade).Msg("Student grades updated")

	return s.studentRepo.GetByID(ctx, id)
}

// Delete removes a student.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}
