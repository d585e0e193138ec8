package user

import (
	"context"

	"flowdeck-api/db"
	"flowdeck-api/internal/hashutil"
	"flowdeck-api/models"
)

type UserService struct {
	repo db.UserRepository
}

func NewUserService(repo db.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetAll(ctx context.Context) ([]*models.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err == db.ErrNotFound {
		return nil, nil
	}
	return user, err
}

// Save creates the user when payload.ID is zero, otherwise updates the
// existing row. The username must not be carried by any other user.
// New users get the default password, hashed; updates never touch the
// password through this path.
func (s *UserService) Save(ctx context.Context, payload *models.User) error {
	taken, err := s.repo.UsernameTaken(ctx, payload.Username, payload.ID)
	if err != nil {
		return err
	}
	if taken {
		return models.NewDuplicateError("username", "Username '%s' already exists.", payload.Username)
	}

	if payload.ID == 0 {
		payload.Password = hashutil.MD5Hash(hashutil.DefaultPassword)
		return s.repo.Create(ctx, payload)
	}

	existing, err := s.repo.FindByID(ctx, payload.ID)
	if err != nil {
		if err == db.ErrNotFound {
			return models.NewNotFoundError("User with ID %d not found.", payload.ID)
		}
		return err
	}

	existing.Name = payload.Name
	existing.Username = payload.Username
	return s.repo.Update(ctx, existing)
}

// Delete removes a user by id, reporting whether a row existed. The
// seeded administrator can never be deleted, present or not.
func (s *UserService) Delete(ctx context.Context, id int64) (bool, error) {
	if id == models.AdminUserID {
		return false, models.ErrAdminDelete
	}
	return s.repo.DeleteByID(ctx, id)
}

func (s *UserService) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.repo.UsernameExists(ctx, username)
}
