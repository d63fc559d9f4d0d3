package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ardhiancalwa/Schola/internal/app/models"
	"github.com/ardhiancalwa/Schola/internal/app/models/dto"
	"github.com/ardhiancalwa/Schola/internal/app/repositories"
	"github.com/ardhiancalwa/Schola/internal/pkg/apperrors"
	"github.com/ardhiancalwa/Schola/internal/pkg/learningmethod"
	"github.com/ardhiancalwa/Schola/internal/pkg/logger"
)

// ClassService handles class creation and listing
type ClassService struct {
	classRepo   *repositories.ClassRepository
	studentRepo *repositories.StudentRepository
}

// NewClassService creates a new class service
func NewClassService(classRepo *repositories.ClassRepository, studentRepo *repositories.StudentRepository) *ClassService {
	return &ClassService{
		classRepo:   classRepo,
		studentRepo: studentRepo,
	}
}

// CreateClass creates a class together with its imported roster. If the
// roster insert fails the freshly created class is deleted again so a
// half-imported class never survives.
func (s *ClassService) CreateClass(ctx context.Context, teacherID int64, req dto.CreateClassRequest) (*models.Class, error) {
	method := req.Class.LearningMethod
	if method != "" {
		normalized, err := learningmethod.Normalize(method)
		if err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		method = string(normalized)
	}

	academicYear, semester := currentAcademicTerm(time.Now())

	class := &models.Class{
		TeacherID:      teacherID,
		Name:           req.Class.Name,
		Subject:        req.Class.Subject,
		EducationLevel: req.Class.EducationLevel,
		Department:     req.Class.Department,
		LearningMethod: method,
		AcademicYear:   academicYear,
		Semester:       semester,
	}

	if err := s.classRepo.Create(ctx, class); err != nil {
		return nil, err
	}

	students := make([]*models.Student, 0, len(req.Students))
	for _, p := range req.Students {
		students = append(students, &models.Student{
			ClassID:    class.ID,
			NIS:        p.NIS,
			Name:       p.Name,
			Gender:     p.Gender,
			Task1:      p.Task1,
			Task2:      p.Task2,
			Midterm:    p.Midterm,
			FinalExam:  p.FinalExam,
			FinalGrade: RoundedFinalGrade(p.Task1, p.Task2, p.Midterm, p.FinalExam),
			Semester:   semester,
		})
	}

	if err := s.studentRepo.InsertBatch(ctx, students); err != nil {
		if delErr := s.classRepo.Delete(ctx, class.ID); delErr != nil {
			logger.Error().Err(delErr).Int64("classId", class.ID).Msg("Failed to roll back class after roster insert failure")
		}
		return nil, fmt.Errorf("failed to import roster: %w", err)
	}

	logger.Info().Int64("classId", class.ID).Int("students", len(students)).Msg("Class created")

	return class, nil
}

// ListClasses retrieves every class as listing items.
func (s *ClassService) ListClasses(ctx context.Context) ([]dto.ClassListItem, error) {
	classes, err := s.classRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ClassListItem, 0, len(classes))
	for _, c := range classes {
		label := c.Name
		if c.Department != "" {
			label = fmt.Sprintf("%s - %s", c.Name, c.Department)
		}
		items = append(items, dto.ClassListItem{
			ID:             c.ID,
			Label:          label,
			Name:           c.Name,
			Subject:        c.Subject,
			EducationLevel: c.EducationLevel,
			Department:     c.Department,
		})
	}

	return items, nil
}

// GetClass retrieves one class by ID.
func (s *ClassService) GetClass(ctx context.Context, id int64) (*models.Class, error) {
	return s.classRepo.GetByID(ctx, id)
}

// DeleteClass removes a class together with its students and their
// attendance logs.
func (s *ClassService) DeleteClass(ctx context.Context, id int64) error {
	if err := s.classRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("classId", id).Msg("Class deleted")
	return nil
}

// currentAcademicTerm derives the Indonesian school year and semester from a
// date. The odd semester starts in July.
func currentAcademicTerm(now time.Time) (academicYear, semester string) {
	year := now.Year()
	if now.Month() >= time.July {
		return fmt.Sprintf("%d/%d", year, year+1), "Ganjil"
	}
	return fmt.Sprintf("%d/%d", year-1, year), "Genap"
}
