package services

import (
	"context"

	"github.com/profinsights/backend/internal/app/models"
	"github.com/profinsights/backend/internal/app/models/dto"
	"github.com/profinsights/backend/internal/pkg/apperrors"
	"github.com/profinsights/backend/internal/pkg/auth"
	"github.com/profinsights/backend/internal/pkg/logger"
)

// ReviewService handles review submission and keeps professor aggregates in sync.
type ReviewService struct {
	reviewRepo    ReviewStore
	professorRepo ProfessorStore
	ipHashSecret  string
}

// NewReviewService creates a new ReviewService
func NewReviewService(reviewRepo ReviewStore, professorRepo ProfessorStore, ipHashSecret string) *ReviewService {
	return &ReviewService{
		reviewRepo:    reviewRepo,
		professorRepo: professorRepo,
		ipHashSecret:  ipHashSecret,
	}
}

// ComputeAggregates returns the per-dimension arithmetic means over a review set
// together with the review count. A dimension with no contributing scores stays
// unset. The result always reflects a full pass over the given reviews.
func ComputeAggregates(reviews []models.Review) (models.RatingSet, int) {
	var sums [10]float64
	var counts [10]int

	for i := range reviews {
		for d, field := range reviews[i].RatingSet.Dimensions() {
			if *field != nil {
				sums[d] += **field
				counts[d]++
			}
		}
	}

	var averages models.RatingSet
	for d, field := range averages.Dimensions() {
		if counts[d] > 0 {
			mean := sums[d] / float64(counts[d])
			*field = &mean
		}
	}
	return averages, len(reviews)
}

// recomputeAggregates runs a full aggregation pass over a professor's reviews
// and persists the result.
func (s *ReviewService) recomputeAggregates(ctx context.Context, professorID int64) error {
	reviews, err := s.reviewRepo.ListByProfessor(ctx, professorID)
	if err != nil {
		return err
	}

	averages, count := ComputeAggregates(reviews)
	if err := s.professorRepo.UpdateAggregates(ctx, professorID, averages, count); err != nil {
		return err
	}

	logger.Debug().Int64("professorId", professorID).Int("reviewCount", count).Msg("Professor aggregates recomputed")
	return nil
}

// Create persists a review and, when it is linked to a professor, recomputes that
// professor's aggregates. A link to an unknown professor fails before anything is
// written. Unlinked submissions are stored without touching any aggregates.
func (s *ReviewService) Create(ctx context.Context, professorID, studentID *int64, req *dto.CreateReviewRequest, clientIP string) (*models.Review, error) {
	if professorID != nil {
		if _, err := s.professorRepo.GetByID(ctx, *professorID); err != nil {
			return nil, err
		}
	}

	review := &models.Review{
		ProfessorID:   professorID,
		StudentID:     studentID,
		ProfessorName: req.ProfessorName,
		CourseName:    req.CourseName,
		Semester:      req.Semester,
		RatingSet: models.RatingSet{
			Clarity:              req.Clarity,
			Engagement:           req.Engagement,
			Knowledge:            req.Knowledge,
			Fairness:             req.Fairness,
			Approachability:      req.Approachability,
			Organization:         req.Organization,
			Discussion:           req.Discussion,
			Workload:             req.Workload,
			Respect:              req.Respect,
			RealWorldConnections: req.RealWorldConnections,
		},
		Comment:          req.Review,
		ReportMisconduct: req.ReportMisconduct,
		AllowAnalytics:   req.AllowAnalytics,
	}

	if clientIP != "" && s.ipHashSecret != "" {
		hash := auth.HashOrigin(clientIP, s.ipHashSecret)
		review.IPHash = &hash
	}

	review, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		return nil, err
	}

	if review.ProfessorID != nil {
		if err := s.recomputeAggregates(ctx, *review.ProfessorID); err != nil {
			return nil, err
		}
	}

	logger.Info().Int64("reviewId", review.ID).Msg("Review created")
	return review, nil
}

// List returns reviews, newest first, optionally scoped to one professor. When a
// professor scope is given the professor must exist.
func (s *ReviewService) List(ctx context.Context, professorID *int64) ([]models.Review, error) {
	if professorID != nil {
		if _, err := s.professorRepo.GetByID(ctx, *professorID); err != nil {
			return nil, err
		}
	}
	return s.reviewRepo.List(ctx, professorID)
}

// GetByID returns one review.
func (s *ReviewService) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	return s.reviewRepo.GetByID(ctx, id)
}

// Update applies the provided fields to a review and recomputes the linked
// professor's aggregates. Only the submitting student or an admin may update.
func (s *ReviewService) Update(ctx context.Context, id int64, callerID int64, callerRole models.RoleType, req *dto.UpdateReviewRequest) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkReviewAccess(review, callerID, callerRole); err != nil {
		return nil, err
	}

	if req.CourseName != nil {
		review.CourseName = *req.CourseName
	}
	if req.Semester != nil {
		review.Semester = *req.Semester
	}
	applyRatingFields(&review.RatingSet, &req.RatingFields)
	if req.Review != nil {
		review.Comment = *req.Review
	}
	if req.AllowAnalytics != nil {
		review.AllowAnalytics = *req.AllowAnalytics
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	if review.ProfessorID != nil {
		if err := s.recomputeAggregates(ctx, *review.ProfessorID); err != nil {
			return nil, err
		}
	}

	logger.Info().Int64("reviewId", id).Msg("Review updated")
	return review, nil
}

// Delete removes a review and recomputes the linked professor's aggregates.
// Only the submitting student or an admin may delete.
func (s *ReviewService) Delete(ctx context.Context, id int64, callerID int64, callerRole models.RoleType) error {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := checkReviewAccess(review, callerID, callerRole); err != nil {
		return err
	}

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		return err
	}

	if review.ProfessorID != nil {
		if err := s.recomputeAggregates(ctx, *review.ProfessorID); err != nil {
			return err
		}
	}

	logger.Info().Int64("reviewId", id).Msg("Review deleted")
	return nil
}

// Report flags a review as reporting misconduct. Ratings are untouched, so no
// aggregate pass runs.
func (s *ReviewService) Report(ctx context.Context, id int64) error {
	if err := s.reviewRepo.SetMisconductFlag(ctx, id, true); err != nil {
		return err
	}
	logger.Info().Int64("reviewId", id).Msg("Review reported")
	return nil
}

// checkReviewAccess allows mutation by the submitting student or an admin.
// Reviews without a submitter can only be mutated by an admin.
func checkReviewAccess(review *models.Review, callerID int64, callerRole models.RoleType) error {
	if callerRole == models.RoleAdmin {
		return nil
	}
	if review.StudentID != nil && *review.StudentID == callerID {
		return nil
	}
	return apperrors.ErrPermissionDenied
}

func applyRatingFields(dst *models.RatingSet, src *dto.RatingFields) {
	patch := models.RatingSet{
		Clarity:              src.Clarity,
		Engagement:           src.Engagement,
		Knowledge:            src.Knowledge,
		Fairness:             src.Fairness,
		Approachability:      src.Approachability,
		Organization:         src.Organization,
		Discussion:           src.Discussion,
		Workload:             src.Workload,
		Respect:              src.Respect,
		RealWorldConnections: src.RealWorldConnections,
	}
	for d, field := range patch.Dimensions() {
		if *field != nil {
			*dst.Dimensions()[d] = *field
		}
	}
}
