package testutils

import (
	"context"
	"testing"

	"flowdeck-api/db"
	"flowdeck-api/internal/hashutil"
	"flowdeck-api/models"

	"github.com/stretchr/testify/require"
)

// CreateTestUser inserts a user with the given credentials and returns it
func CreateTestUser(t *testing.T, repo db.UserRepository, name, username, password string) *models.User {
	user := &models.User{
		Name:     name,
		Username: username,
		Password: hashutil.MD5Hash(password),
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

// CreateTestProject inserts a project owned by the given user and returns it
func CreateTestProject(t *testing.T, repo db.ProjectRepository, name string, userID int64) *models.Project {
	project := &models.Project{
		Name:   name,
		UserID: userID,
	}
	require.NoError(t, repo.Create(context.Background(), project))
	return project
}

// CreateTestLabel inserts a label and returns it
func CreateTestLabel(t *testing.T, repo db.LabelRepository, name string) *models.Label {
	label := &models.Label{Name: name}
	require.NoError(t, repo.Create(context.Background(), label))
	return label
}
