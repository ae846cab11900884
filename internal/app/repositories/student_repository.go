package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eduface/eduface/internal/app/models"
	"github.com/eduface/eduface/internal/pkg/apperrors"
	"github.com/eduface/eduface/internal/pkg/dberrors"
)

// IStudentRepository defines the interface for student-related database operations
type IStudentRepository interface {
	GetAll(ctx context.Context) ([]*models.Student, error)
	Create(ctx context.Context, student *models.Student) (int64, error)
	Update(ctx context.Context, id int64, student *models.Student) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// GetAll retrieves all students ordered by usn. No pagination; the roster of
// one school stays small.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT id, name, usn, parent_number, section, department, sem
		FROM students
		ORDER BY usn
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.USN,
			&student.ParentNumber,
			&student.Section,
			&student.Department,
			&student.Sem,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Create inserts a new student. A usn collision maps to
// apperrors.ErrUSNAlreadyExists through the unique constraint.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	query := `
		INSERT INTO students (name, usn, parent_number, section, department, sem, dataset_folder)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.Name,
		student.USN,
		student.ParentNumber,
		student.Section,
		student.Department,
		student.Sem,
		student.DatasetFolder,
	).Scan(&student.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrUSNAlreadyExists
		}
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return student.ID, nil
}

// Update rewrites the mutable student fields and returns the number of rows
// affected; zero means no such id.
func (r *StudentRepository) Update(ctx context.Context, id int64, student *models.Student) (int64, error) {
	query := `
		UPDATE students
		SET name = $2, usn = $3, parent_number = $4, section = $5, department = $6, sem = $7
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		id,
		student.Name,
		student.USN,
		student.ParentNumber,
		student.Section,
		student.Department,
		student.Sem,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrUSNAlreadyExists
		}
		return 0, fmt.Errorf("error updating student: %w", err)
	}

	return tag.RowsAffected(), nil
}

// Delete removes a student and returns the number of rows affected.
// Attendance rows referencing the student are left in place; there is no
// cascade and no foreign key.
func (r *StudentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("error deleting student: %w", err)
	}

	return tag.RowsAffected(), nil
}
