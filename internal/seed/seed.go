package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/profinsights/backend/internal/app/models"
	appRepos "github.com/profinsights/backend/internal/app/repositories"
	"github.com/profinsights/backend/internal/pkg/apperrors"
	"github.com/profinsights/backend/internal/pkg/auth"
)

// seedProfessors is the initial course catalog for the directory.
var seedProfessors = []appModels.Professor{
	{
		Name:        "Dr. Vivek Kumar Mishra",
		Course:      "Computational Finance with Applications",
		Code:        "CS3235",
		Credits:     3,
		Department:  "Finance",
		NextLecture: "May 05, 2025 [05:35 PM]",
	},
	{
		Name:        "Veeraiah Talagondapati",
		Course:      "Computer Networks",
		Code:        "CS2202",
		Credits:     4,
		Department:  "Computer Science",
		NextLecture: "May 05, 2025 [03:35 PM]",
	},
	{
		Name:        "Mr. Rahul Roy",
		Course:      "Deep Neural Networks",
		Code:        "CS3223",
		Credits:     4,
		Department:  "AI/ML",
		NextLecture: "May 05, 2025 [01:35 PM]",
	},
	{
		Name:        "Dr. Raghu Kishore Neelisetty",
		Course:      "Information Security Risk Assessment and Assurance",
		Code:        "CS4179",
		Credits:     3,
		Department:  "Cybersecurity",
		NextLecture: "May 08, 2025 [11:35 AM]",
	},
	{
		Name:        "Prof. Salome Benhur",
		Course:      "Introduction to Professional Development",
		Code:        "HS3201",
		Credits:     2,
		Department:  "Humanities",
		NextLecture: "May 06, 2025 [10:35 AM]",
	},
	{
		Name:        "Dr. Yajulu Medury, Dr. Shivdasini S Amin",
		Course:      "Organizational Behaviour",
		Code:        "HS3226",
		Credits:     2,
		Department:  "Humanities",
		NextLecture: "May 08, 2025 [09:25 AM]",
	},
	{
		Name:        "Mrs. Sowmini Devi Veeramachaneni, Mr. Murali Krishna Bukkasamudram, Ms. Nartkannai K",
		Course:      "Programming Workshop",
		Code:        "CS3204",
		Credits:     1,
		Department:  "Computer Science",
		NextLecture: "May 05, 2025 [10:35 AM]",
	},
	{
		Name:        "Dr. Vijay Rao Duddu",
		Course:      "Software Engineering",
		Code:        "CS3201",
		Credits:     3,
		Department:  "Computer Science",
		NextLecture: "May 05, 2025 [02:35 PM]",
	},
}

// CreateDefaultData seeds the professor directory and a default admin account.
// Both inserts are idempotent: existing records are left alone.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	professorRepo := appRepos.NewProfessorRepository(dbPool)
	studentRepo := appRepos.NewStudentRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (professors/admin)...")
	var finalErr error

	existing, err := professorRepo.List(ctx, "")
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing professors for seeding")
		return err
	}

	present := make(map[string]bool, len(existing))
	for _, p := range existing {
		present[p.Code] = true
	}

	for i := range seedProfessors {
		if present[seedProfessors[i].Code] {
			continue
		}
		if _, err := professorRepo.Create(ctx, &seedProfessors[i]); err != nil {
			lgr.Error().Err(err).Str("name", seedProfessors[i].Name).Msg("Error seeding professor")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if err := createDefaultAdmin(ctx, studentRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

// createDefaultAdmin inserts a verified admin account when none exists. The
// password comes from ADMIN_PASSWORD; without it no account is created.
func createDefaultAdmin(ctx context.Context, studentRepo *appRepos.StudentRepository, lgr zerolog.Logger) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@mahindrauniversity.edu.in"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		lgr.Warn().Msg("ADMIN_PASSWORD not set, skipping default admin creation")
		return nil
	}

	if _, err := studentRepo.GetByEmail(ctx, adminEmail); err == nil {
		return nil
	} else if !errors.Is(err, apperrors.ErrStudentNotFound) {
		return err
	}

	hashed, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	admin := &appModels.Student{
		Name:       "Platform Admin",
		Email:      adminEmail,
		Password:   hashed,
		RollNumber: "ADMIN000",
		Department: "Administration",
		Year:       1,
		Role:       appModels.RoleAdmin,
		IsVerified: true,
	}

	if _, err := studentRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Str("email", adminEmail).Msg("Error creating default admin")
		return err
	}

	lgr.Info().Str("email", adminEmail).Msg("Default admin account created")
	return nil
}
