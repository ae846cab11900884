package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eduface/eduface/internal/app/models"
)

// IAttendanceRepository defines the interface for attendance database operations
type IAttendanceRepository interface {
	ListByDate(ctx context.Context, date string) ([]*models.AttendanceRecord, error)
	Mark(ctx context.Context, studentID int64, date string, status models.AttendanceStatus) (int64, bool, error)
}

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

// ListByDate returns all attendance rows for a date joined with student
// identity for display. Students deleted after marking drop out of the join.
func (r *AttendanceRepository) ListByDate(ctx context.Context, date string) ([]*models.AttendanceRecord, error) {
	query := `
		SELECT a.id, a.student_id, s.name, s.usn, a.date::text, a.time::text, a.status
		FROM attendance a
		JOIN students s ON a.student_id = s.id
		WHERE a.date = $1
		ORDER BY s.usn
	`

	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("error listing attendance: %w", err)
	}
	defer rows.Close()

	var records []*models.AttendanceRecord
	for rows.Next() {
		var rec models.AttendanceRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.StudentID,
			&rec.StudentName,
			&rec.USN,
			&rec.Date,
			&rec.Time,
			&rec.Status,
		); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Mark inserts an attendance row for (studentID, date) in one atomic
// statement. When a row already exists the insert is a no-op and the first
// mark stays authoritative; the returned bool reports whether a row was
// inserted. The time column is stamped with the database server's current
// time-of-day, never a client-supplied value.
func (r *AttendanceRepository) Mark(ctx context.Context, studentID int64, date string, status models.AttendanceStatus) (int64, bool, error) {
	query := `
		INSERT INTO attendance (student_id, date, time, status)
		VALUES ($1, $2, CURRENT_TIME, $3)
		ON CONFLICT (student_id, date) DO NOTHING
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, studentID, date, string(status)).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Conflict path: already marked for this student and date.
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("error marking attendance: %w", err)
	}

	return id, true, nil
}
