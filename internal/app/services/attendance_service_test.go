package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/eduface/eduface/internal/app/models"
	"github.com/eduface/eduface/internal/pkg/apperrors"
)

type fakeAttendanceRepo struct {
	rows    map[string]int64 // "studentID|date" -> row id
	byDate  map[string][]*models.AttendanceRecord
	nextID  int64
	markErr error
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		rows:   map[string]int64{},
		byDate: map[string][]*models.AttendanceRecord{},
		nextID: 1,
	}
}

func (r *fakeAttendanceRepo) ListByDate(_ context.Context, date string) ([]*models.AttendanceRecord, error) {
	return r.byDate[date], nil
}

func (r *fakeAttendanceRepo) Mark(_ context.Context, studentID int64, date string, status models.AttendanceStatus) (int64, bool, error) {
	if r.markErr != nil {
		return 0, false, r.markErr
	}
	key := fmt.Sprintf("%d|%s", studentID, date)
	if _, ok := r.rows[key]; ok {
		return 0, false, nil
	}
	id := r.nextID
	r.nextID++
	r.rows[key] = id
	r.byDate[date] = append(r.byDate[date], &models.AttendanceRecord{
		ID:        id,
		StudentID: studentID,
		Date:      date,
		Status:    status,
	})
	return id, true, nil
}

func TestMarkFirstWins(t *testing.T) {
	svc := NewAttendanceService(newFakeAttendanceRepo())
	ctx := context.Background()

	first, err := svc.Mark(ctx, 7, "2026-03-02", "present")
	if err != nil {
		t.Fatalf("first Mark: %v", err)
	}
	if first.AlreadyMarked {
		t.Error("first mark reported as already marked")
	}
	if first.ID == 0 {
		t.Error("expected row id for first mark")
	}

	// Second mark with a different status must not overwrite the first
	second, err := svc.Mark(ctx, 7, "2026-03-02", "late")
	if err != nil {
		t.Fatalf("second Mark: %v", err)
	}
	if !second.AlreadyMarked {
		t.Error("duplicate mark not reported as already marked")
	}

	rows, err := svc.ListByDate(ctx, "2026-03-02")
	if err != nil {
		t.Fatalf("ListByDate: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Status != "present" {
		t.Errorf("Status = %q, want the original present", rows[0].Status)
	}
}

func TestMarkSameStudentDifferentDates(t *testing.T) {
	svc := NewAttendanceService(newFakeAttendanceRepo())
	ctx := context.Background()

	day1, err := svc.Mark(ctx, 7, "2026-03-02", "present")
	if err != nil {
		t.Fatalf("Mark day1: %v", err)
	}
	day2, err := svc.Mark(ctx, 7, "2026-03-03", "absent")
	if err != nil {
		t.Fatalf("Mark day2: %v", err)
	}
	if day1.AlreadyMarked || day2.AlreadyMarked {
		t.Error("marks on different dates must both insert")
	}
}

func TestMarkValidation(t *testing.T) {
	svc := NewAttendanceService(newFakeAttendanceRepo())
	ctx := context.Background()

	if _, err := svc.Mark(ctx, 0, "2026-03-02", "present"); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("zero studentID: got %v, want validation error", err)
	}
	if _, err := svc.Mark(ctx, 7, "02-03-2026", "present"); !errors.Is(err, apperrors.ErrInvalidDate) {
		t.Errorf("malformed date: got %v, want ErrInvalidDate", err)
	}
	if _, err := svc.Mark(ctx, 7, "2026-02-30", "present"); !errors.Is(err, apperrors.ErrInvalidDate) {
		t.Errorf("impossible date: got %v, want ErrInvalidDate", err)
	}
	if _, err := svc.Mark(ctx, 7, "2026-03-02", "tardy"); !errors.Is(err, apperrors.ErrInvalidStatus) {
		t.Errorf("unknown status: got %v, want ErrInvalidStatus", err)
	}
}

func TestListByDateRejectsBadDate(t *testing.T) {
	svc := NewAttendanceService(newFakeAttendanceRepo())

	if _, err := svc.ListByDate(context.Background(), "yesterday"); !errors.Is(err, apperrors.ErrInvalidDate) {
		t.Fatalf("got %v, want ErrInvalidDate", err)
	}
}

func TestListByDateMapsRollNumber(t *testing.T) {
	repo := newFakeAttendanceRepo()
	repo.byDate["2026-03-02"] = []*models.AttendanceRecord{
		{
			ID:          1,
			StudentID:   7,
			StudentName: "Asha",
			USN:         "1MS21CS001",
			Date:        "2026-03-02",
			Time:        "09:14:02",
			Status:      models.StatusPresent,
		},
	}

	rows, err := NewAttendanceService(repo).ListByDate(context.Background(), "2026-03-02")
	if err != nil {
		t.Fatalf("ListByDate: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].RollNumber != "1MS21CS001" {
		t.Errorf("RollNumber = %q, want 1MS21CS001", rows[0].RollNumber)
	}
	if rows[0].StudentName != "Asha" {
		t.Errorf("StudentName = %q, want Asha", rows[0].StudentName)
	}
}
