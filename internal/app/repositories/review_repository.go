package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/profinsights/backend/internal/app/models"
	"github.com/profinsights/backend/internal/pkg/apperrors"
)

const reviewColumns = "id, professor_id, student_id, professor_name, course_name, semester, " +
	"clarity, engagement, knowledge, fairness, approachability, organization, " +
	"discussion, workload, respect, real_world, " +
	"comment, report_misconduct, allow_analytics, ip_hash, created_at"

// ReviewRepository handles review database operations
type ReviewRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanReview(row pgx.Row) (*models.Review, error) {
	rv := &models.Review{}
	err := row.Scan(
		&rv.ID, &rv.ProfessorID, &rv.StudentID, &rv.ProfessorName, &rv.CourseName, &rv.Semester,
		&rv.Clarity, &rv.Engagement, &rv.Knowledge, &rv.Fairness, &rv.Approachability,
		&rv.Organization, &rv.Discussion, &rv.Workload, &rv.Respect, &rv.RealWorldConnections,
		&rv.Comment, &rv.ReportMisconduct, &rv.AllowAnalytics, &rv.IPHash, &rv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReviewNotFound
		}
		return nil, fmt.Errorf("error scanning review: %w", err)
	}
	return rv, nil
}

// Create inserts a new review and returns it with id and creation time filled in.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	query := r.sb.Insert("reviews").
		Columns("professor_id", "student_id", "professor_name", "course_name", "semester",
			"clarity", "engagement", "knowledge", "fairness", "approachability",
			"organization", "discussion", "workload", "respect", "real_world",
			"comment", "report_misconduct", "allow_analytics", "ip_hash").
		Values(review.ProfessorID, review.StudentID, review.ProfessorName, review.CourseName, review.Semester,
			review.Clarity, review.Engagement, review.Knowledge, review.Fairness, review.Approachability,
			review.Organization, review.Discussion, review.Workload, review.Respect, review.RealWorldConnections,
			review.Comment, review.ReportMisconduct, review.AllowAnalytics, review.IPHash).
		Suffix("RETURNING id, created_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&review.ID, &review.CreatedAt); err != nil {
		return nil, fmt.Errorf("error creating review: %w", err)
	}
	return review, nil
}

// GetByID retrieves a review by id.
func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	sql, args, err := r.sb.Select(reviewColumns).From("reviews").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}
	return scanReview(r.db.QueryRow(ctx, sql, args...))
}

// List retrieves reviews, scoped to one professor when professorID is non-nil.
func (r *ReviewRepository) List(ctx context.Context, professorID *int64) ([]models.Review, error) {
	query := r.sb.Select(reviewColumns).From("reviews").OrderBy("created_at DESC")
	if professorID != nil {
		query = query.Where(squirrel.Eq{"professor_id": *professorID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, *rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, nil
}

// ListByProfessor retrieves every review linked to a professor. This is the
// read side of the aggregate recomputation pass.
func (r *ReviewRepository) ListByProfessor(ctx context.Context, professorID int64) ([]models.Review, error) {
	return r.List(ctx, &professorID)
}

// Update writes a review's mutable fields.
func (r *ReviewRepository) Update(ctx context.Context, review *models.Review) error {
	sql, args, err := r.sb.Update("reviews").
		Set("course_name", review.CourseName).
		Set("semester", review.Semester).
		Set("clarity", review.Clarity).
		Set("engagement", review.Engagement).
		Set("knowledge", review.Knowledge).
		Set("fairness", review.Fairness).
		Set("approachability", review.Approachability).
		Set("organization", review.Organization).
		Set("discussion", review.Discussion).
		Set("workload", review.Workload).
		Set("respect", review.Respect).
		Set("real_world", review.RealWorldConnections).
		Set("comment", review.Comment).
		Set("allow_analytics", review.AllowAnalytics).
		Where(squirrel.Eq{"id": review.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrReviewNotFound
	}
	return nil
}

// Delete removes a review by id.
func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("reviews").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrReviewNotFound
	}
	return nil
}

// SetMisconductFlag marks a review as reporting misconduct.
func (r *ReviewRepository) SetMisconductFlag(ctx context.Context, id int64, flagged bool) error {
	sql, args, err := r.sb.Update("reviews").
		Set("report_misconduct", flagged).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error flagging review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrReviewNotFound
	}
	return nil
}
