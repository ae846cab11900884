package services

import (
	"context"
	"strings"

	"github.com/eduface/eduface/internal/app/models"
	"github.com/eduface/eduface/internal/app/models/dto"
	"github.com/eduface/eduface/internal/app/repositories"
	"github.com/eduface/eduface/internal/pkg/apperrors"
	"github.com/eduface/eduface/internal/pkg/validation"
)

// StudentService handles student registry operations
type StudentService struct {
	studentRepo repositories.IStudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.IStudentRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
	}
}

// List returns all enrolled students
func (s *StudentService) List(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.StudentResponse, 0, len(students))
	for _, st := range students {
		out = append(out, toStudentResponse(st))
	}
	return out, nil
}

// Create adds a new student. The USN is normalized to uppercase; it is the
// natural key used for de-duplication and display.
func (s *StudentService) Create(ctx context.Context, req *dto.StudentRequest) (int64, error) {
	student, err := studentFromRequest(req)
	if err != nil {
		return 0, err
	}

	return s.studentRepo.Create(ctx, student)
}

// Update rewrites a student's fields. A missing id is a not-found, not a
// silent no-op.
func (s *StudentService) Update(ctx context.Context, id int64, req *dto.StudentRequest) error {
	student, err := studentFromRequest(req)
	if err != nil {
		return err
	}

	affected, err := s.studentRepo.Update(ctx, id, student)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete removes a student. Existing attendance rows are left dangling; the
// ledger keeps history even for departed students.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	affected, err := s.studentRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// studentFromRequest validates and normalizes the request into a model
func studentFromRequest(req *dto.StudentRequest) (*models.Student, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}

	usn := strings.ToUpper(strings.TrimSpace(req.USN))
	if !validation.IsValidUSN(usn) {
		return nil, apperrors.NewValidationError("usn must be 2-30 alphanumeric characters")
	}

	return &models.Student{
		Name:          name,
		USN:           usn,
		ParentNumber:  strings.TrimSpace(req.ParentNumber),
		Section:       strings.TrimSpace(req.Section),
		Department:    strings.TrimSpace(req.Department),
		Sem:           strings.TrimSpace(req.Sem),
		DatasetFolder: strings.TrimSpace(req.DatasetFolder),
	}, nil
}

func toStudentResponse(st *models.Student) dto.StudentResponse {
	return dto.StudentResponse{
		ID:           st.ID,
		Name:         st.Name,
		USN:          st.USN,
		ParentNumber: st.ParentNumber,
		Section:      st.Section,
		Department:   st.Department,
		Sem:          st.Sem,
	}
}
