package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profinsights/backend/internal/app/models"
	"github.com/profinsights/backend/internal/app/models/dto"
	"github.com/profinsights/backend/internal/pkg/apperrors"
)

func floatPtr(v float64) *float64 { return &v }
func int64Ptr(v int64) *int64     { return &v }

func newTestReviewService() (*ReviewService, *fakeReviewStore, *fakeProfessorStore) {
	reviews := newFakeReviewStore()
	professors := newFakeProfessorStore()
	svc := NewReviewService(reviews, professors, "origin-secret")
	return svc, reviews, professors
}

func seedProfessor(t *testing.T, professors *fakeProfessorStore) int64 {
	t.Helper()
	id, err := professors.Create(context.Background(), &models.Professor{
		Name:       "Mr. Rahul Roy",
		Course:     "Deep Neural Networks",
		Code:       "CS3223",
		Credits:    3,
		Department: "Computer Science",
	})
	require.NoError(t, err)
	return id
}

func TestComputeAggregatesMeanPerDimension(t *testing.T) {
	reviews := []models.Review{
		{RatingSet: models.RatingSet{Clarity: floatPtr(4), Workload: floatPtr(2)}},
		{RatingSet: models.RatingSet{Clarity: floatPtr(5)}},
	}

	averages, count := ComputeAggregates(reviews)
	assert.Equal(t, 2, count)

	// Mean over contributors only: (4+5)/2 for clarity, workload from one review.
	require.NotNil(t, averages.Clarity)
	assert.InDelta(t, 4.5, *averages.Clarity, 1e-9)
	require.NotNil(t, averages.Workload)
	assert.InDelta(t, 2.0, *averages.Workload, 1e-9)

	// Dimensions nobody scored stay unset.
	assert.Nil(t, averages.Engagement)
	assert.Nil(t, averages.Knowledge)
	assert.Nil(t, averages.RealWorldConnections)
}

func TestComputeAggregatesEmptySet(t *testing.T) {
	averages, count := ComputeAggregates(nil)
	assert.Zero(t, count)
	for _, field := range averages.Dimensions() {
		assert.Nil(t, *field)
	}
}

func TestCreateReviewUnknownProfessorPersistsNothing(t *testing.T) {
	svc, reviews, _ := newTestReviewService()

	_, err := svc.Create(context.Background(), int64Ptr(42), nil, &dto.CreateReviewRequest{
		ProfessorName: "Ghost",
		CourseName:    "Nothing",
		Semester:      "Fall 2025",
	}, "")
	assert.ErrorIs(t, err, apperrors.ErrProfessorNotFound)
	assert.Empty(t, reviews.reviews)
}

func TestCreateLinkedReviewRecomputesAggregates(t *testing.T) {
	svc, _, professors := newTestReviewService()
	profID := seedProfessor(t, professors)

	for _, score := range []float64{4, 5} {
		_, err := svc.Create(context.Background(), &profID, int64Ptr(7), &dto.CreateReviewRequest{
			ProfessorName: "Mr. Rahul Roy",
			CourseName:    "Deep Neural Networks",
			Semester:      "Spring 2025",
			RatingFields:  dto.RatingFields{Clarity: floatPtr(score)},
		}, "")
		require.NoError(t, err)
	}

	prof := professors.professors[profID]
	assert.Equal(t, 2, prof.ReviewCount)
	require.NotNil(t, prof.Averages.Clarity)
	assert.InDelta(t, 4.5, *prof.Averages.Clarity, 1e-9)
	assert.Nil(t, prof.Averages.Engagement)
}

func TestCreateUnlinkedReviewSkipsAggregates(t *testing.T) {
	svc, reviews, professors := newTestReviewService()
	profID := seedProfessor(t, professors)

	review, err := svc.Create(context.Background(), nil, nil, &dto.CreateReviewRequest{
		ProfessorName: "Someone Else",
		CourseName:    "Linear Algebra",
		Semester:      "Fall 2025",
		RatingFields:  dto.RatingFields{Clarity: floatPtr(3)},
	}, "")
	require.NoError(t, err)
	assert.Nil(t, review.ProfessorID)
	assert.Len(t, reviews.reviews, 1)

	// The seeded professor's aggregates are untouched.
	assert.Zero(t, professors.professors[profID].ReviewCount)
	assert.Nil(t, professors.professors[profID].Averages.Clarity)
}

func TestCreateReviewHashesOrigin(t *testing.T) {
	svc, reviews, professors := newTestReviewService()
	profID := seedProfessor(t, professors)

	review, err := svc.Create(context.Background(), &profID, nil, &dto.CreateReviewRequest{
		ProfessorName: "Mr. Rahul Roy",
		CourseName:    "Deep Neural Networks",
		Semester:      "Spring 2025",
	}, "203.0.113.10")
	require.NoError(t, err)

	stored := reviews.reviews[review.ID]
	require.NotNil(t, stored.IPHash)
	assert.NotContains(t, *stored.IPHash, "203.0.113.10")
	assert.Len(t, *stored.IPHash, 64)
}

func TestCreateReviewWithoutOriginSecret(t *testing.T) {
	reviews := newFakeReviewStore()
	professors := newFakeProfessorStore()
	svc := NewReviewService(reviews, professors, "")

	review, err := svc.Create(context.Background(), nil, nil, &dto.CreateReviewRequest{
		ProfessorName: "Prof. Salome Benhur",
		CourseName:    "Professional Ethics",
		Semester:      "Fall 2025",
	}, "203.0.113.10")
	require.NoError(t, err)
	assert.Nil(t, reviews.reviews[review.ID].IPHash)
}

func TestUpdateReviewOwnershipAndRecompute(t *testing.T) {
	svc, _, professors := newTestReviewService()
	profID := seedProfessor(t, professors)

	review, err := svc.Create(context.Background(), &profID, int64Ptr(7), &dto.CreateReviewRequest{
		ProfessorName: "Mr. Rahul Roy",
		CourseName:    "Deep Neural Networks",
		Semester:      "Spring 2025",
		RatingFields:  dto.RatingFields{Clarity: floatPtr(2)},
	}, "")
	require.NoError(t, err)

	// Another student cannot touch it.
	_, err = svc.Update(context.Background(), review.ID, 99, models.RoleStudent, &dto.UpdateReviewRequest{})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	// The submitter can, and the aggregates follow.
	updated, err := svc.Update(context.Background(), review.ID, 7, models.RoleStudent, &dto.UpdateReviewRequest{
		RatingFields: dto.RatingFields{Clarity: floatPtr(5)},
	})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, *updated.Clarity, 1e-9)
	assert.InDelta(t, 5.0, *professors.professors[profID].Averages.Clarity, 1e-9)
}

func TestUpdateAnonymousReviewRequiresAdmin(t *testing.T) {
	svc, _, professors := newTestReviewService()
	profID := seedProfessor(t, professors)

	review, err := svc.Create(context.Background(), &profID, nil, &dto.CreateReviewRequest{
		ProfessorName: "Mr. Rahul Roy",
		CourseName:    "Deep Neural Networks",
		Semester:      "Spring 2025",
	}, "")
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), review.ID, 7, models.RoleStudent, &dto.UpdateReviewRequest{})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.Update(context.Background(), review.ID, 1, models.RoleAdmin, &dto.UpdateReviewRequest{
		Semester: stringPtr("Fall 2025"),
	})
	assert.NoError(t, err)
}

func TestDeleteReviewRecomputesAggregates(t *testing.T) {
	svc, reviews, professors := newTestReviewService()
	profID := seedProfessor(t, professors)

	review, err := svc.Create(context.Background(), &profID, int64Ptr(7), &dto.CreateReviewRequest{
		ProfessorName: "Mr. Rahul Roy",
		CourseName:    "Deep Neural Networks",
		Semester:      "Spring 2025",
		RatingFields:  dto.RatingFields{Clarity: floatPtr(4)},
	}, "")
	require.NoError(t, err)
	require.Equal(t, 1, professors.professors[profID].ReviewCount)

	require.NoError(t, svc.Delete(context.Background(), review.ID, 7, models.RoleStudent))
	assert.Empty(t, reviews.reviews)

	// Back to an empty aggregate state.
	assert.Zero(t, professors.professors[profID].ReviewCount)
	assert.Nil(t, professors.professors[profID].Averages.Clarity)
}

func TestDeleteReviewNotFound(t *testing.T) {
	svc, _, _ := newTestReviewService()
	err := svc.Delete(context.Background(), 404, 1, models.RoleAdmin)
	assert.ErrorIs(t, err, apperrors.ErrReviewNotFound)
}

func TestReportSetsMisconductFlag(t *testing.T) {
	svc, reviews, professors := newTestReviewService()
	profID := seedProfessor(t, professors)

	review, err := svc.Create(context.Background(), &profID, nil, &dto.CreateReviewRequest{
		ProfessorName: "Mr. Rahul Roy",
		CourseName:    "Deep Neural Networks",
		Semester:      "Spring 2025",
	}, "")
	require.NoError(t, err)
	require.False(t, reviews.reviews[review.ID].ReportMisconduct)

	require.NoError(t, svc.Report(context.Background(), review.ID))
	assert.True(t, reviews.reviews[review.ID].ReportMisconduct)

	assert.ErrorIs(t, svc.Report(context.Background(), 404), apperrors.ErrReviewNotFound)
}

func TestListScopedToProfessor(t *testing.T) {
	svc, _, professors := newTestReviewService()
	profID := seedProfessor(t, professors)

	_, err := svc.Create(context.Background(), &profID, nil, &dto.CreateReviewRequest{
		ProfessorName: "Mr. Rahul Roy", CourseName: "DNN", Semester: "Spring 2025",
	}, "")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), nil, nil, &dto.CreateReviewRequest{
		ProfessorName: "Someone Else", CourseName: "LA", Semester: "Fall 2025",
	}, "")
	require.NoError(t, err)

	all, err := svc.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := svc.List(context.Background(), &profID)
	require.NoError(t, err)
	assert.Len(t, scoped, 1)

	_, err = svc.List(context.Background(), int64Ptr(404))
	assert.ErrorIs(t, err, apperrors.ErrProfessorNotFound)
}
