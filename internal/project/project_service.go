package project

import (
	"context"

	"flowdeck-api/db"
	"flowdeck-api/models"
)

type ProjectService struct {
	repo     db.ProjectRepository
	userRepo db.UserRepository
}

func NewProjectService(repo db.ProjectRepository, userRepo db.UserRepository) *ProjectService {
	return &ProjectService{repo: repo, userRepo: userRepo}
}

func (s *ProjectService) GetAll(ctx context.Context) ([]*models.Project, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProjectService) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err == db.ErrNotFound {
		return nil, nil
	}
	return project, err
}

func (s *ProjectService) GetByUserID(ctx context.Context, userID int64) ([]*models.Project, error) {
	return s.repo.FindByUserID(ctx, userID)
}

// Save creates the project when payload.ID is zero, otherwise updates
// the existing row. The name must be unique among the owning user's
// projects, and the owning user must exist.
func (s *ProjectService) Save(ctx context.Context, payload *models.Project) error {
	taken, err := s.repo.NameTaken(ctx, payload.Name, payload.UserID, payload.ID)
	if err != nil {
		return err
	}
	if taken {
		return models.NewDuplicateError("name", "Project '%s' already exists for this user.", payload.Name)
	}

	if _, err := s.userRepo.FindByID(ctx, payload.UserID); err != nil {
		if err == db.ErrNotFound {
			return models.NewReferenceError("User with ID %d not found.", payload.UserID)
		}
		return err
	}

	if payload.ID == 0 {
		return s.repo.Create(ctx, payload)
	}

	existing, err := s.repo.FindByID(ctx, payload.ID)
	if err != nil {
		if err == db.ErrNotFound {
			return models.NewNotFoundError("Project with ID %d not found.", payload.ID)
		}
		return err
	}

	existing.Name = payload.Name
	existing.UserID = payload.UserID
	return s.repo.Update(ctx, existing)
}

// Delete removes a project by id, reporting whether a row existed
func (s *ProjectService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.DeleteByID(ctx, id)
}

func (s *ProjectService) NameExistsForUser(ctx context.Context, name string, userID int64) (bool, error) {
	return s.repo.NameTaken(ctx, name, userID, 0)
}

func (s *ProjectService) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, id)
}
