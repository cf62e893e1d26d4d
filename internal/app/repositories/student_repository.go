package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/profinsights/backend/internal/app/models"
	"github.com/profinsights/backend/internal/pkg/apperrors"
	"github.com/profinsights/backend/internal/pkg/dberrors"
)

const studentColumns = "id, name, email, password, roll_number, department, year, role, is_verified, verify_token_hash, verify_token_expires, created_at, updated_at"

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID, &s.Name, &s.Email, &s.Password, &s.RollNumber, &s.Department,
		&s.Year, &s.Role, &s.IsVerified, &s.VerifyTokenHash, &s.VerifyTokenExpires,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error scanning student: %w", err)
	}
	return s, nil
}

// Create inserts a new student and returns its id.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	query := r.sb.Insert("students").
		Columns("name", "email", "password", "roll_number", "department", "year", "role", "is_verified", "verify_token_hash", "verify_token_expires").
		Values(student.Name, student.Email, student.Password, student.RollNumber,
			student.Department, student.Year, student.Role, student.IsVerified,
			student.VerifyTokenHash, student.VerifyTokenExpires).
		Suffix("RETURNING id")

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "students_roll_number_key") {
			return 0, apperrors.ErrRollNumberAlreadyExists
		}
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return id, nil
}

// GetByID retrieves a student by id.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns).From("students").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}
	return scanStudent(r.db.QueryRow(ctx, sql, args...))
}

// GetByEmail retrieves a student by email.
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns).From("students").Where(squirrel.Eq{"email": email}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}
	return scanStudent(r.db.QueryRow(ctx, sql, args...))
}

// GetByVerificationTokenHash retrieves a student whose stored one-time token hash
// matches and whose expiry timestamp is still in the future. Missing and expired
// tokens are indistinguishable on purpose.
func (r *StudentRepository) GetByVerificationTokenHash(ctx context.Context, tokenHash string, now time.Time) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns).
		From("students").
		Where(squirrel.Eq{"verify_token_hash": tokenHash}).
		Where(squirrel.Gt{"verify_token_expires": now}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrInvalidVerificationToken
		}
		return nil, err
	}
	return student, nil
}

// SetVerificationToken stores a new one-time token hash and expiry on a student.
func (r *StudentRepository) SetVerificationToken(ctx context.Context, studentID int64, tokenHash string, expires time.Time) error {
	sql, args, err := r.sb.Update("students").
		Set("verify_token_hash", tokenHash).
		Set("verify_token_expires", expires).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": studentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error storing verification token: %w", err)
	}
	return nil
}

// ClearVerificationToken removes the one-time token fields from a student.
func (r *StudentRepository) ClearVerificationToken(ctx context.Context, studentID int64) error {
	sql, args, err := r.sb.Update("students").
		Set("verify_token_hash", nil).
		Set("verify_token_expires", nil).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": studentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error clearing verification token: %w", err)
	}
	return nil
}

// MarkVerified flags a student as verified and consumes the one-time token.
func (r *StudentRepository) MarkVerified(ctx context.Context, studentID int64) error {
	sql, args, err := r.sb.Update("students").
		Set("is_verified", true).
		Set("verify_token_hash", nil).
		Set("verify_token_expires", nil).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": studentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error marking student verified: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
