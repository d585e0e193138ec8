package auth

import (
	"context"
	"strings"

	"flowdeck-api/db"
	"flowdeck-api/internal/hashutil"
	"flowdeck-api/models"
)

// LoginService validates username/password pairs against stored credentials
type LoginService struct {
	userRepo db.UserRepository
}

func NewLoginService(userRepo db.UserRepository) *LoginService {
	return &LoginService{userRepo: userRepo}
}

// Authenticate returns the matching user or models.ErrInvalidCredentials.
// The error is identical for an unknown username and a wrong password.
func (s *LoginService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, models.NewValidationError("Username cannot be empty")
	}
	if strings.TrimSpace(password) == "" {
		return nil, models.NewValidationError("Password cannot be empty")
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if err == db.ErrNotFound {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Password != hashutil.MD5Hash(password) {
		return nil, models.ErrInvalidCredentials
	}

	return user, nil
}
