package services

import (
	"context"
	"time"

	"github.com/profinsights/backend/internal/app/models"
)

// StudentStore defines the student persistence operations the services need.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetByVerificationTokenHash(ctx context.Context, tokenHash string, now time.Time) (*models.Student, error)
	SetVerificationToken(ctx context.Context, studentID int64, tokenHash string, expires time.Time) error
	ClearVerificationToken(ctx context.Context, studentID int64) error
	MarkVerified(ctx context.Context, studentID int64) error
}

// ProfessorStore defines the professor persistence operations the services need.
type ProfessorStore interface {
	Create(ctx context.Context, professor *models.Professor) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Professor, error)
	List(ctx context.Context, nameFilter string) ([]models.Professor, error)
	Update(ctx context.Context, professor *models.Professor) error
	UpdateAggregates(ctx context.Context, professorID int64, averages models.RatingSet, reviewCount int) error
	Delete(ctx context.Context, id int64) error
}

// ReviewStore defines the review persistence operations the services need.
type ReviewStore interface {
	Create(ctx context.Context, review *models.Review) (*models.Review, error)
	GetByID(ctx context.Context, id int64) (*models.Review, error)
	List(ctx context.Context, professorID *int64) ([]models.Review, error)
	ListByProfessor(ctx context.Context, professorID int64) ([]models.Review, error)
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id int64) error
	SetMisconductFlag(ctx context.Context, id int64, flagged bool) error
}

// Services aggregates the application service layer.
type Services struct {
	Auth      *AuthService
	Professor *ProfessorService
	Review    *ReviewService
}
