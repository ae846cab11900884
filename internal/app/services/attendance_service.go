package services

import (
	"context"
	"time"

	"github.com/eduface/eduface/internal/app/models"
	"github.com/eduface/eduface/internal/app/models/dto"
	"github.com/eduface/eduface/internal/app/repositories"
	"github.com/eduface/eduface/internal/pkg/apperrors"
	"github.com/eduface/eduface/internal/pkg/validation"
)

// MarkResult reports the outcome of one attendance mark. AlreadyMarked means
// the day's row existed before the call and was left untouched.
type MarkResult struct {
	ID            int64
	AlreadyMarked bool
}

// AttendanceService handles the per-student per-day attendance ledger
type AttendanceService struct {
	attendanceRepo repositories.IAttendanceRepository
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(attendanceRepo repositories.IAttendanceRepository) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
	}
}

// ListByDate returns all attendance rows for the given day joined with
// student identity. The result is unbounded.
func (s *AttendanceService) ListByDate(ctx context.Context, date string) ([]dto.AttendanceRowResponse, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AttendanceRowResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, dto.AttendanceRowResponse{
			ID:          rec.ID,
			StudentID:   rec.StudentID,
			StudentName: rec.StudentName,
			RollNumber:  rec.USN,
			Date:        rec.Date,
			Time:        rec.Time,
			Status:      string(rec.Status),
		})
	}
	return out, nil
}

// Mark records attendance for (studentID, date). First mark wins: when a row
// already exists the call acknowledges it without mutating status or time.
func (s *AttendanceService) Mark(ctx context.Context, studentID int64, date string, status string) (*MarkResult, error) {
	if studentID <= 0 {
		return nil, apperrors.NewValidationError("studentId is required")
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}

	st := models.AttendanceStatus(status)
	if !st.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	id, inserted, err := s.attendanceRepo.Mark(ctx, studentID, date, st)
	if err != nil {
		return nil, err
	}

	return &MarkResult{
		ID:            id,
		AlreadyMarked: !inserted,
	}, nil
}

// validateDate checks both the YYYY-MM-DD shape and calendar validity
func validateDate(date string) error {
	if !validation.IsValidDate(date) {
		return apperrors.ErrInvalidDate
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return apperrors.ErrInvalidDate
	}
	return nil
}
