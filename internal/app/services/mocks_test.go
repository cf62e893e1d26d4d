package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/profinsights/backend/internal/app/models"
	"github.com/profinsights/backend/internal/pkg/apperrors"
)

// In-memory fakes for the store and email interfaces used by the services.

type fakeStudentStore struct {
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[int64]*models.Student), nextID: 1}
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) (int64, error) {
	for _, s := range f.students {
		if s.Email == student.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		if s.RollNumber == student.RollNumber {
			return 0, apperrors.ErrRollNumberAlreadyExists
		}
	}
	student.ID = f.nextID
	f.nextID++
	cp := *student
	f.students[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStudentStore) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range f.students {
		if s.Email == email {
			cp := *s
			return &cp, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) GetByVerificationTokenHash(_ context.Context, tokenHash string, now time.Time) (*models.Student, error) {
	for _, s := range f.students {
		if s.VerifyTokenHash != nil && *s.VerifyTokenHash == tokenHash &&
			s.VerifyTokenExpires != nil && s.VerifyTokenExpires.After(now) {
			cp := *s
			return &cp, nil
		}
	}
	return nil, apperrors.ErrInvalidVerificationToken
}

func (f *fakeStudentStore) SetVerificationToken(_ context.Context, studentID int64, tokenHash string, expires time.Time) error {
	s, ok := f.students[studentID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	s.VerifyTokenHash = &tokenHash
	s.VerifyTokenExpires = &expires
	return nil
}

func (f *fakeStudentStore) ClearVerificationToken(_ context.Context, studentID int64) error {
	s, ok := f.students[studentID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	s.VerifyTokenHash = nil
	s.VerifyTokenExpires = nil
	return nil
}

func (f *fakeStudentStore) MarkVerified(_ context.Context, studentID int64) error {
	s, ok := f.students[studentID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	s.IsVerified = true
	s.VerifyTokenHash = nil
	s.VerifyTokenExpires = nil
	return nil
}

type fakeProfessorStore struct {
	professors map[int64]*models.Professor
	nextID     int64
}

func newFakeProfessorStore() *fakeProfessorStore {
	return &fakeProfessorStore{professors: make(map[int64]*models.Professor), nextID: 1}
}

func (f *fakeProfessorStore) Create(_ context.Context, professor *models.Professor) (int64, error) {
	professor.ID = f.nextID
	f.nextID++
	cp := *professor
	f.professors[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeProfessorStore) GetByID(_ context.Context, id int64) (*models.Professor, error) {
	p, ok := f.professors[id]
	if !ok {
		return nil, apperrors.ErrProfessorNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfessorStore) List(_ context.Context, nameFilter string) ([]models.Professor, error) {
	out := make([]models.Professor, 0)
	for _, p := range f.professors {
		if nameFilter == "" || strings.Contains(strings.ToLower(p.Name), strings.ToLower(nameFilter)) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeProfessorStore) Update(_ context.Context, professor *models.Professor) error {
	p, ok := f.professors[professor.ID]
	if !ok {
		return apperrors.ErrProfessorNotFound
	}
	p.Name = professor.Name
	p.Course = professor.Course
	p.Code = professor.Code
	p.Credits = professor.Credits
	p.Department = professor.Department
	p.NextLecture = professor.NextLecture
	return nil
}

func (f *fakeProfessorStore) UpdateAggregates(_ context.Context, professorID int64, averages models.RatingSet, reviewCount int) error {
	p, ok := f.professors[professorID]
	if !ok {
		return apperrors.ErrProfessorNotFound
	}
	p.Averages = averages
	p.ReviewCount = reviewCount
	return nil
}

func (f *fakeProfessorStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.professors[id]; !ok {
		return apperrors.ErrProfessorNotFound
	}
	delete(f.professors, id)
	return nil
}

type fakeReviewStore struct {
	reviews map[int64]*models.Review
	nextID  int64
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{reviews: make(map[int64]*models.Review), nextID: 1}
}

func (f *fakeReviewStore) Create(_ context.Context, review *models.Review) (*models.Review, error) {
	review.ID = f.nextID
	f.nextID++
	review.CreatedAt = time.Now()
	cp := *review
	f.reviews[cp.ID] = &cp
	return review, nil
}

func (f *fakeReviewStore) GetByID(_ context.Context, id int64) (*models.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, apperrors.ErrReviewNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReviewStore) List(_ context.Context, professorID *int64) ([]models.Review, error) {
	out := make([]models.Review, 0)
	for _, r := range f.reviews {
		if professorID == nil || (r.ProfessorID != nil && *r.ProfessorID == *professorID) {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeReviewStore) ListByProfessor(ctx context.Context, professorID int64) ([]models.Review, error) {
	return f.List(ctx, &professorID)
}

func (f *fakeReviewStore) Update(_ context.Context, review *models.Review) error {
	if _, ok := f.reviews[review.ID]; !ok {
		return apperrors.ErrReviewNotFound
	}
	cp := *review
	f.reviews[cp.ID] = &cp
	return nil
}

func (f *fakeReviewStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.reviews[id]; !ok {
		return apperrors.ErrReviewNotFound
	}
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewStore) SetMisconductFlag(_ context.Context, id int64, flagged bool) error {
	r, ok := f.reviews[id]
	if !ok {
		return apperrors.ErrReviewNotFound
	}
	r.ReportMisconduct = flagged
	return nil
}

type sentEmail struct {
	To    string
	Name  string
	Token string
}

type fakeEmailService struct {
	verificationEmails []sentEmail
	welcomeEmails      []sentEmail
	failVerification   bool
}

func (f *fakeEmailService) SendVerificationEmail(toEmail, toName, token string) error {
	if f.failVerification {
		return errors.New("smtp: connection refused")
	}
	f.verificationEmails = append(f.verificationEmails, sentEmail{To: toEmail, Name: toName, Token: token})
	return nil
}

func (f *fakeEmailService) SendWelcomeEmail(toEmail, toName string) error {
	f.welcomeEmails = append(f.welcomeEmails, sentEmail{To: toEmail, Name: toName})
	return nil
}
