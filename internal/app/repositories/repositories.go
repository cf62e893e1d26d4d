package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all repository instances sharing one connection pool.
type Repositories struct {
	StudentRepository   *StudentRepository
	ProfessorRepository *ProfessorRepository
	ReviewRepository    *ReviewRepository
}

// NewRepositories creates all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:   NewStudentRepository(db),
		ProfessorRepository: NewProfessorRepository(db),
		ReviewRepository:    NewReviewRepository(db),
	}
}
