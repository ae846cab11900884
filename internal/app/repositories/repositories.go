package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	StudentRepository    *StudentRepository
	AttendanceRepository *AttendanceRepository

	pool *pgxpool.Pool
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		StudentRepository:    NewStudentRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
		pool:                 db,
	}
}

// Pool exposes the underlying connection pool for health checks
func (r *Repositories) Pool() *pgxpool.Pool {
	return r.pool
}
