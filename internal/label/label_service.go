package label

import (
	"context"

	"flowdeck-api/db"
	"flowdeck-api/models"
)

type LabelService struct {
	repo db.LabelRepository
}

func NewLabelService(repo db.LabelRepository) *LabelService {
	return &LabelService{repo: repo}
}

func (s *LabelService) GetAll(ctx context.Context) ([]*models.Label, error) {
	return s.repo.FindAll(ctx)
}

func (s *LabelService) GetByID(ctx context.Context, id int64) (*models.Label, error) {
	label, err := s.repo.FindByID(ctx, id)
	if err == db.ErrNotFound {
		return nil, nil
	}
	return label, err
}

// Save creates the label when payload.ID is zero, otherwise updates the
// existing row. Label names are unique across all labels.
func (s *LabelService) Save(ctx context.Context, payload *models.Label) error {
	taken, err := s.repo.NameTaken(ctx, payload.Name, payload.ID)
	if err != nil {
		return err
	}
	if taken {
		return models.NewDuplicateError("name", "Label '%s' already exists.", payload.Name)
	}

	if payload.ID == 0 {
		return s.repo.Create(ctx, payload)
	}

	existing, err := s.repo.FindByID(ctx, payload.ID)
	if err != nil {
		if err == db.ErrNotFound {
			return models.NewNotFoundError("Label with ID %d not found.", payload.ID)
		}
		return err
	}

	existing.Name = payload.Name
	return s.repo.Update(ctx, existing)
}

// Delete removes a label by id, reporting whether a row existed
func (s *LabelService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.DeleteByID(ctx, id)
}
