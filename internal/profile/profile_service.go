package profile

import (
	"context"

	"flowdeck-api/db"
	"flowdeck-api/internal/hashutil"
	"flowdeck-api/models"
)

// ProfileService is the self-service variant of the user save logic,
// always scoped to the authenticated user's own row.
type ProfileService struct {
	repo db.UserRepository
}

func NewProfileService(repo db.UserRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == db.ErrNotFound {
			return nil, models.NewNotFoundError("User with ID %d not found.", id)
		}
		return nil, err
	}
	return user, nil
}

// Save updates the caller's own display name and username, with the
// same duplicate-username check applied against all other users.
func (s *ProfileService) Save(ctx context.Context, payload *models.User) error {
	existing, err := s.repo.FindByID(ctx, payload.ID)
	if err != nil {
		if err == db.ErrNotFound {
			return models.NewNotFoundError("User with ID %d not found.", payload.ID)
		}
		return err
	}

	taken, err := s.repo.UsernameTaken(ctx, payload.Username, payload.ID)
	if err != nil {
		return err
	}
	if taken {
		return models.NewDuplicateError("username", "Username '%s' already exists.", payload.Username)
	}

	existing.Name = payload.Name
	existing.Username = payload.Username
	return s.repo.Update(ctx, existing)
}

// ChangePassword re-hashes and stores the new password unconditionally.
// The caller is already authenticated by the bearer token; the current
// password is not re-verified.
func (s *ProfileService) ChangePassword(ctx context.Context, id int64, password string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == db.ErrNotFound {
			return models.NewNotFoundError("User with ID %d not found.", id)
		}
		return err
	}
	return s.repo.UpdatePassword(ctx, id, hashutil.MD5Hash(password))
}
