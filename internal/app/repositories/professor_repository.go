package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/profinsights/backend/internal/app/models"
	"github.com/profinsights/backend/internal/pkg/apperrors"
)

const professorColumns = "id, name, course, code, credits, department, next_lecture, review_count, " +
	"avg_clarity, avg_engagement, avg_knowledge, avg_fairness, avg_approachability, " +
	"avg_organization, avg_discussion, avg_workload, avg_respect, avg_real_world, " +
	"created_at, updated_at"

// ProfessorRepository handles professor database operations
type ProfessorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProfessorRepository creates a new ProfessorRepository
func NewProfessorRepository(db *pgxpool.Pool) *ProfessorRepository {
	return &ProfessorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanProfessor(row pgx.Row) (*models.Professor, error) {
	p := &models.Professor{}
	err := row.Scan(
		&p.ID, &p.Name, &p.Course, &p.Code, &p.Credits, &p.Department, &p.NextLecture,
		&p.ReviewCount,
		&p.Averages.Clarity, &p.Averages.Engagement, &p.Averages.Knowledge,
		&p.Averages.Fairness, &p.Averages.Approachability, &p.Averages.Organization,
		&p.Averages.Discussion, &p.Averages.Workload, &p.Averages.Respect,
		&p.Averages.RealWorldConnections,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfessorNotFound
		}
		return nil, fmt.Errorf("error scanning professor: %w", err)
	}
	return p, nil
}

// Create inserts a new professor and returns its id.
func (r *ProfessorRepository) Create(ctx context.Context, professor *models.Professor) (int64, error) {
	query := r.sb.Insert("professors").
		Columns("name", "course", "code", "credits", "department", "next_lecture").
		Values(professor.Name, professor.Course, professor.Code, professor.Credits,
			professor.Department, professor.NextLecture).
		Suffix("RETURNING id")

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating professor: %w", err)
	}
	return id, nil
}

// GetByID retrieves a professor by id.
func (r *ProfessorRepository) GetByID(ctx context.Context, id int64) (*models.Professor, error) {
	sql, args, err := r.sb.Select(professorColumns).From("professors").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}
	return scanProfessor(r.db.QueryRow(ctx, sql, args...))
}

// List retrieves all professors, optionally filtered by a case-insensitive
// substring match on the name.
func (r *ProfessorRepository) List(ctx context.Context, nameFilter string) ([]models.Professor, error) {
	query := r.sb.Select(professorColumns).From("professors").OrderBy("name ASC")

	if nameFilter = strings.TrimSpace(nameFilter); nameFilter != "" {
		query = query.Where(squirrel.ILike{"name": "%" + nameFilter + "%"})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing professors: %w", err)
	}
	defer rows.Close()

	professors := make([]models.Professor, 0)
	for rows.Next() {
		p, err := scanProfessor(rows)
		if err != nil {
			return nil, err
		}
		professors = append(professors, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating professors: %w", err)
	}

	return professors, nil
}

// Update writes a professor's directory fields. Aggregate columns are not
// touched here; they belong to UpdateAggregates.
func (r *ProfessorRepository) Update(ctx context.Context, professor *models.Professor) error {
	sql, args, err := r.sb.Update("professors").
		Set("name", professor.Name).
		Set("course", professor.Course).
		Set("code", professor.Code).
		Set("credits", professor.Credits).
		Set("department", professor.Department).
		Set("next_lecture", professor.NextLecture).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": professor.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating professor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProfessorNotFound
	}
	return nil
}

// UpdateAggregates writes a professor's recomputed aggregate rating fields.
func (r *ProfessorRepository) UpdateAggregates(ctx context.Context, professorID int64, averages models.RatingSet, reviewCount int) error {
	sql, args, err := r.sb.Update("professors").
		Set("review_count", reviewCount).
		Set("avg_clarity", averages.Clarity).
		Set("avg_engagement", averages.Engagement).
		Set("avg_knowledge", averages.Knowledge).
		Set("avg_fairness", averages.Fairness).
		Set("avg_approachability", averages.Approachability).
		Set("avg_organization", averages.Organization).
		Set("avg_discussion", averages.Discussion).
		Set("avg_workload", averages.Workload).
		Set("avg_respect", averages.Respect).
		Set("avg_real_world", averages.RealWorldConnections).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": professorID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating professor aggregates: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProfessorNotFound
	}
	return nil
}

// Delete removes a professor by id.
func (r *ProfessorRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("professors").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting professor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProfessorNotFound
	}
	return nil
}
