package services

import (
	"context"
	"strings"

	"github.com/profinsights/backend/internal/app/models"
	"github.com/profinsights/backend/internal/app/models/dto"
	"github.com/profinsights/backend/internal/pkg/logger"
)

// ProfessorService handles the professor directory.
type ProfessorService struct {
	professorRepo ProfessorStore
}

// NewProfessorService creates a new ProfessorService
func NewProfessorService(professorRepo ProfessorStore) *ProfessorService {
	return &ProfessorService{professorRepo: professorRepo}
}

// List returns professors ordered by name, optionally filtered by a
// case-insensitive name substring.
func (s *ProfessorService) List(ctx context.Context, nameFilter string) ([]models.Professor, error) {
	return s.professorRepo.List(ctx, strings.TrimSpace(nameFilter))
}

// GetByID returns one professor with its current aggregates.
func (s *ProfessorService) GetByID(ctx context.Context, id int64) (*models.Professor, error) {
	return s.professorRepo.GetByID(ctx, id)
}

// Create adds a professor to the directory. Aggregates start empty.
func (s *ProfessorService) Create(ctx context.Context, req *dto.CreateProfessorRequest) (*models.Professor, error) {
	professor := &models.Professor{
		Name:        strings.TrimSpace(req.Name),
		Course:      req.Course,
		Code:        req.Code,
		Credits:     req.Credits,
		Department:  req.Department,
		NextLecture: req.NextLecture,
	}

	id, err := s.professorRepo.Create(ctx, professor)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("professorId", id).Str("name", professor.Name).Msg("Professor created")
	return s.professorRepo.GetByID(ctx, id)
}

// Update applies the provided directory fields to a professor. Aggregate fields
// are not touched here; they belong to the review service.
func (s *ProfessorService) Update(ctx context.Context, id int64, req *dto.UpdateProfessorRequest) (*models.Professor, error) {
	professor, err := s.professorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		professor.Name = strings.TrimSpace(*req.Name)
	}
	if req.Course != nil {
		professor.Course = *req.Course
	}
	if req.Code != nil {
		professor.Code = *req.Code
	}
	if req.Credits != nil {
		professor.Credits = *req.Credits
	}
	if req.Department != nil {
		professor.Department = *req.Department
	}
	if req.NextLecture != nil {
		professor.NextLecture = *req.NextLecture
	}

	if err := s.professorRepo.Update(ctx, professor); err != nil {
		return nil, err
	}

	logger.Info().Int64("professorId", id).Msg("Professor updated")
	return s.professorRepo.GetByID(ctx, id)
}

// Delete removes a professor. Linked reviews keep their snapshot fields and lose
// only the professor reference.
func (s *ProfessorService) Delete(ctx context.Context, id int64) error {
	if err := s.professorRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("professorId", id).Msg("Professor deleted")
	return nil
}
