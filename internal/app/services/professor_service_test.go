package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profinsights/backend/internal/app/models/dto"
	"github.com/profinsights/backend/internal/pkg/apperrors"
)

func stringPtr(v string) *string { return &v }
func intPtr(v int) *int          { return &v }

func newTestProfessorService() (*ProfessorService, *fakeProfessorStore) {
	professors := newFakeProfessorStore()
	return NewProfessorService(professors), professors
}

func TestProfessorCreateAndGet(t *testing.T) {
	svc, _ := newTestProfessorService()

	created, err := svc.Create(context.Background(), &dto.CreateProfessorRequest{
		Name:        "  Dr. Vivek Kumar Mishra ",
		Course:      "Computational Finance with Applications",
		Code:        "CS3235",
		Credits:     3,
		Department:  "Finance",
		NextLecture: "May 05, 2025 [05:35 PM]",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dr. Vivek Kumar Mishra", created.Name)
	assert.Zero(t, created.ReviewCount)
	assert.Nil(t, created.Averages.Clarity)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrProfessorNotFound)
}

func TestProfessorListFiltersByName(t *testing.T) {
	svc, _ := newTestProfessorService()

	for _, name := range []string{"Dr. Vivek Kumar Mishra", "Veeraiah Talagondapati", "Mr. Rahul Roy"} {
		_, err := svc.Create(context.Background(), &dto.CreateProfessorRequest{
			Name: name, Course: "Course", Code: "CS0000", Credits: 3, Department: "CSE",
		})
		require.NoError(t, err)
	}

	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Substring match, case-insensitive, surrounding space ignored.
	filtered, err := svc.List(context.Background(), " vee ")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Veeraiah Talagondapati", filtered[0].Name)

	none, err := svc.List(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProfessorUpdateAppliesOnlyProvidedFields(t *testing.T) {
	svc, _ := newTestProfessorService()

	created, err := svc.Create(context.Background(), &dto.CreateProfessorRequest{
		Name: "Mr. Rahul Roy", Course: "Deep Neural Networks", Code: "CS3223", Credits: 3, Department: "CSE",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &dto.UpdateProfessorRequest{
		Course:  stringPtr("Advanced Deep Learning"),
		Credits: intPtr(4),
	})
	require.NoError(t, err)
	assert.Equal(t, "Advanced Deep Learning", updated.Course)
	assert.Equal(t, 4, updated.Credits)
	// Untouched fields survive.
	assert.Equal(t, "Mr. Rahul Roy", updated.Name)
	assert.Equal(t, "CS3223", updated.Code)

	_, err = svc.Update(context.Background(), 404, &dto.UpdateProfessorRequest{Name: stringPtr("x")})
	assert.ErrorIs(t, err, apperrors.ErrProfessorNotFound)
}

func TestProfessorDelete(t *testing.T) {
	svc, professors := newTestProfessorService()

	created, err := svc.Create(context.Background(), &dto.CreateProfessorRequest{
		Name: "Dr. Raghu Kishore Neelisetty", Course: "Cryptography", Code: "CS4179", Credits: 3, Department: "CSE",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, professors.professors)

	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), apperrors.ErrProfessorNotFound)
}
