package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/profinsights/backend/internal/app/models"
	"github.com/profinsights/backend/internal/app/models/dto"
	"github.com/profinsights/backend/internal/pkg/apperrors"
	"github.com/profinsights/backend/internal/pkg/auth"
	"github.com/profinsights/backend/internal/pkg/email"
	"github.com/profinsights/backend/internal/pkg/logger"
)

// AuthService handles registration, email verification and session issuance.
type AuthService struct {
	studentRepo  StudentStore
	jwtService   *auth.JWTService
	emailService email.EmailService
	emailDomain  string
	tokenTTL     time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(
	studentRepo StudentStore,
	jwtService *auth.JWTService,
	emailService email.EmailService,
	emailDomain string,
	tokenTTL time.Duration,
) *AuthService {
	return &AuthService{
		studentRepo:  studentRepo,
		jwtService:   jwtService,
		emailService: emailService,
		emailDomain:  strings.ToLower(emailDomain),
		tokenTTL:     tokenTTL,
	}
}

// Register creates an unverified student account and sends a verification email.
// Accounts outside the institutional email domain are rejected before any record
// is written. Registering again with an unverified address refreshes the token
// and resends the email instead of creating a duplicate.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) error {
	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))
	if !strings.HasSuffix(emailAddr, s.emailDomain) {
		return apperrors.ErrInvalidEmailDomain
	}

	existing, err := s.studentRepo.GetByEmail(ctx, emailAddr)
	if err != nil && !errors.Is(err, apperrors.ErrStudentNotFound) {
		return err
	}
	if existing != nil {
		if existing.IsVerified {
			return apperrors.ErrEmailAlreadyExists
		}
		// Unverified account registering again: refresh the token and resend.
		return s.issueVerificationToken(ctx, existing)
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	rawToken, tokenHash, err := auth.NewOneTimeToken()
	if err != nil {
		return err
	}
	expires := time.Now().Add(s.tokenTTL)

	student := &models.Student{
		Name:               req.Name,
		Email:              emailAddr,
		Password:           hashedPassword,
		RollNumber:         req.RollNumber,
		Department:         req.Department,
		Year:               req.Year,
		Role:               models.RoleStudent,
		IsVerified:         false,
		VerifyTokenHash:    &tokenHash,
		VerifyTokenExpires: &expires,
	}

	studentID, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		return err
	}

	if err := s.emailService.SendVerificationEmail(emailAddr, req.Name, rawToken); err != nil {
		logger.Error().Err(err).Str("email", emailAddr).Msg("Failed to send verification email")
		// The token secret is lost with the failed email; drop the hash so the
		// account cannot sit behind an unreachable token.
		if clearErr := s.studentRepo.ClearVerificationToken(ctx, studentID); clearErr != nil {
			logger.Error().Err(clearErr).Int64("studentId", studentID).Msg("Failed to clear verification token")
		}
		return apperrors.ErrEmailDeliveryFailed
	}

	logger.Info().Str("email", emailAddr).Int64("studentId", studentID).Msg("Student registered, verification email sent")
	return nil
}

// issueVerificationToken stores a fresh one-time token for an existing student
// and emails the secret. Any previously stored hash is replaced.
func (s *AuthService) issueVerificationToken(ctx context.Context, student *models.Student) error {
	rawToken, tokenHash, err := auth.NewOneTimeToken()
	if err != nil {
		return err
	}

	expires := time.Now().Add(s.tokenTTL)
	if err := s.studentRepo.SetVerificationToken(ctx, student.ID, tokenHash, expires); err != nil {
		return err
	}

	if err := s.emailService.SendVerificationEmail(student.Email, student.Name, rawToken); err != nil {
		logger.Error().Err(err).Str("email", student.Email).Msg("Failed to send verification email")
		if clearErr := s.studentRepo.ClearVerificationToken(ctx, student.ID); clearErr != nil {
			logger.Error().Err(clearErr).Int64("studentId", student.ID).Msg("Failed to clear verification token")
		}
		return apperrors.ErrEmailDeliveryFailed
	}

	logger.Info().Str("email", student.Email).Msg("Verification email resent")
	return nil
}

// VerifyEmail consumes a one-time verification token, marks the account verified
// and opens a session. The token is matched by its hash and invalidated on use,
// so a second attempt with the same link fails.
func (s *AuthService) VerifyEmail(ctx context.Context, rawToken string) (*dto.SessionResponse, error) {
	if rawToken == "" {
		return nil, apperrors.ErrInvalidVerificationToken
	}

	tokenHash := auth.HashOneTimeToken(rawToken)
	student, err := s.studentRepo.GetByVerificationTokenHash(ctx, tokenHash, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.studentRepo.MarkVerified(ctx, student.ID); err != nil {
		return nil, err
	}
	student.IsVerified = true
	student.VerifyTokenHash = nil
	student.VerifyTokenExpires = nil

	// Best effort; verification already succeeded.
	if err := s.emailService.SendWelcomeEmail(student.Email, student.Name); err != nil {
		logger.Warn().Err(err).Str("email", student.Email).Msg("Failed to send welcome email")
	}

	logger.Info().Int64("studentId", student.ID).Msg("Email verified")
	return s.newSession(student)
}

// Login authenticates a student and opens a session. Unknown addresses and wrong
// passwords collapse into the same error; an unverified account is reported
// distinctly so the client can prompt for verification.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))
	if emailAddr == "" || req.Password == "" {
		return nil, apperrors.ErrMissingCredentials
	}

	student, err := s.studentRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(student.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !student.IsVerified {
		return nil, apperrors.ErrEmailNotVerified
	}

	logger.Info().Int64("studentId", student.ID).Msg("Student logged in")
	return s.newSession(student)
}

// GetProfile returns the public profile of a student.
func (s *AuthService) GetProfile(ctx context.Context, studentID int64) (*dto.StudentProfile, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	profile := toStudentProfile(student)
	return &profile, nil
}

func (s *AuthService) newSession(student *models.Student) (*dto.SessionResponse, error) {
	token, err := s.jwtService.GenerateToken(student)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{
		Token:   token,
		Student: toStudentProfile(student),
	}, nil
}

func toStudentProfile(student *models.Student) dto.StudentProfile {
	return dto.StudentProfile{
		ID:         student.ID,
		Name:       student.Name,
		Email:      student.Email,
		RollNumber: student.RollNumber,
		Department: student.Department,
		Year:       student.Year,
		Role:       string(student.Role),
	}
}
