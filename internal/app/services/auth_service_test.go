package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/profinsights/backend/internal/app/models/dto"
	"github.com/profinsights/backend/internal/pkg/apperrors"
	"github.com/profinsights/backend/internal/pkg/auth"
)

const testEmailDomain = "@mahindrauniversity.edu.in"

func newTestAuthService() (*AuthService, *fakeStudentStore, *fakeEmailService) {
	students := newFakeStudentStore()
	emails := &fakeEmailService{}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		ExpireDays:  30,
		TokenIssuer: "profinsights.test",
	})
	svc := NewAuthService(students, jwtService, emails, testEmailDomain, 24*time.Hour)
	return svc, students, emails
}

func validRegisterRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:       "Ananya Rao",
		Email:      "ananya@mahindrauniversity.edu.in",
		Password:   "Secret123",
		RollNumber: "SE21UCSE042",
		Department: "Computer Science",
		Year:       3,
	}
}

func TestRegisterRejectsNonInstitutionalEmail(t *testing.T) {
	svc, students, emails := newTestAuthService()

	req := validRegisterRequest()
	req.Email = "ananya@gmail.com"

	err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidEmailDomain)

	// Nothing persisted, nothing sent.
	assert.Empty(t, students.students)
	assert.Empty(t, emails.verificationEmails)
}

func TestRegisterCreatesUnverifiedStudent(t *testing.T) {
	svc, students, emails := newTestAuthService()

	err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	require.Len(t, students.students, 1)
	student := students.students[1]
	assert.False(t, student.IsVerified)
	assert.Equal(t, "ananya@mahindrauniversity.edu.in", student.Email)

	// Password stored as a bcrypt hash, never plaintext.
	assert.NotEqual(t, "Secret123", student.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(student.Password), []byte("Secret123")))

	// The stored hash corresponds to the emailed secret; the secret itself is
	// never persisted.
	require.Len(t, emails.verificationEmails, 1)
	raw := emails.verificationEmails[0].Token
	require.NotNil(t, student.VerifyTokenHash)
	assert.Equal(t, auth.HashOneTimeToken(raw), *student.VerifyTokenHash)
	assert.NotEqual(t, raw, *student.VerifyTokenHash)
	require.NotNil(t, student.VerifyTokenExpires)
	assert.True(t, student.VerifyTokenExpires.After(time.Now()))
}

func TestRegisterClearsTokenWhenEmailFails(t *testing.T) {
	svc, students, emails := newTestAuthService()
	emails.failVerification = true

	err := svc.Register(context.Background(), validRegisterRequest())
	assert.ErrorIs(t, err, apperrors.ErrEmailDeliveryFailed)

	// The account exists but carries no unreachable token.
	require.Len(t, students.students, 1)
	student := students.students[1]
	assert.Nil(t, student.VerifyTokenHash)
	assert.Nil(t, student.VerifyTokenExpires)
	assert.False(t, student.IsVerified)
}

func TestRegisterUnverifiedAgainRefreshesToken(t *testing.T) {
	svc, students, emails := newTestAuthService()

	require.NoError(t, svc.Register(context.Background(), validRegisterRequest()))
	firstHash := *students.students[1].VerifyTokenHash

	require.NoError(t, svc.Register(context.Background(), validRegisterRequest()))

	// Still one account, but a fresh token and a second email.
	require.Len(t, students.students, 1)
	assert.NotEqual(t, firstHash, *students.students[1].VerifyTokenHash)
	assert.Len(t, emails.verificationEmails, 2)
}

func TestRegisterVerifiedEmailConflicts(t *testing.T) {
	svc, students, _ := newTestAuthService()

	require.NoError(t, svc.Register(context.Background(), validRegisterRequest()))
	require.NoError(t, students.MarkVerified(context.Background(), 1))

	err := svc.Register(context.Background(), validRegisterRequest())
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	assert.Len(t, students.students, 1)
}

func TestVerifyEmailConsumesTokenOnce(t *testing.T) {
	svc, students, emails := newTestAuthService()

	require.NoError(t, svc.Register(context.Background(), validRegisterRequest()))
	raw := emails.verificationEmails[0].Token

	session, err := svc.VerifyEmail(context.Background(), raw)
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.True(t, students.students[1].IsVerified)
	assert.Nil(t, students.students[1].VerifyTokenHash)

	// The same link is dead after use.
	_, err = svc.VerifyEmail(context.Background(), raw)
	assert.ErrorIs(t, err, apperrors.ErrInvalidVerificationToken)
}

func TestVerifyEmailRejectsExpiredToken(t *testing.T) {
	svc, students, emails := newTestAuthService()

	require.NoError(t, svc.Register(context.Background(), validRegisterRequest()))
	raw := emails.verificationEmails[0].Token

	expired := time.Now().Add(-time.Minute)
	students.students[1].VerifyTokenExpires = &expired

	_, err := svc.VerifyEmail(context.Background(), raw)
	assert.ErrorIs(t, err, apperrors.ErrInvalidVerificationToken)
	assert.False(t, students.students[1].IsVerified)
}

func TestVerifyEmailRejectsUnknownToken(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.VerifyEmail(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, apperrors.ErrInvalidVerificationToken)

	_, err = svc.VerifyEmail(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidVerificationToken)
}

func TestLoginErrorTaxonomy(t *testing.T) {
	svc, students, _ := newTestAuthService()
	require.NoError(t, svc.Register(context.Background(), validRegisterRequest()))

	tests := []struct {
		name     string
		email    string
		password string
		verify   bool
		wantErr  error
	}{
		{"missing_email", "", "Secret123", true, apperrors.ErrMissingCredentials},
		{"missing_password", "ananya@mahindrauniversity.edu.in", "", true, apperrors.ErrMissingCredentials},
		{"unknown_email", "nobody@mahindrauniversity.edu.in", "Secret123", true, apperrors.ErrInvalidCredentials},
		{"wrong_password", "ananya@mahindrauniversity.edu.in", "WrongPass1", true, apperrors.ErrInvalidCredentials},
		{"not_verified", "ananya@mahindrauniversity.edu.in", "Secret123", false, apperrors.ErrEmailNotVerified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			students.students[1].IsVerified = tt.verify
			_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: tt.email, Password: tt.password})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoginSucceedsForVerifiedStudent(t *testing.T) {
	svc, students, emails := newTestAuthService()

	require.NoError(t, svc.Register(context.Background(), validRegisterRequest()))
	_, err := svc.VerifyEmail(context.Background(), emails.verificationEmails[0].Token)
	require.NoError(t, err)

	session, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "Ananya@MahindraUniversity.edu.in", // address matching is case-insensitive
		Password: "Secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, students.students[1].ID, session.Student.ID)
	assert.Equal(t, "STUDENT", session.Student.Role)
}

func TestGetProfileOmitsSecrets(t *testing.T) {
	svc, _, emails := newTestAuthService()

	require.NoError(t, svc.Register(context.Background(), validRegisterRequest()))
	session, err := svc.VerifyEmail(context.Background(), emails.verificationEmails[0].Token)
	require.NoError(t, err)

	profile, err := svc.GetProfile(context.Background(), session.Student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ananya Rao", profile.Name)
	assert.Equal(t, "SE21UCSE042", profile.RollNumber)

	_, err = svc.GetProfile(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
