package integration

import (
	"context"
	"testing"

	"flowdeck-api/internal/auth"
	"flowdeck-api/internal/hashutil"
	"flowdeck-api/internal/profile"
	"flowdeck-api/models"
	"flowdeck-api/tests/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_Save(t *testing.T) {
	factory := testutils.SetupTestRepositoryFactory(t)
	userRepo := factory.NewUserRepository()
	service := profile.NewProfileService(userRepo)
	ctx := context.Background()

	ann := testutils.CreateTestUser(t, userRepo, "Ann", "ann", "s3cret")
	testutils.CreateTestUser(t, userRepo, "Bob", "bob", "s3cret")

	t.Run("UpdateOwnNameAndUsername", func(t *testing.T) {
		require.NoError(t, service.Save(ctx, &models.User{ID: ann.ID, Name: "Ann Smith", Username: "annsmith"}))

		saved, err := service.Get(ctx, ann.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ann Smith", saved.Name)
		assert.Equal(t, "annsmith", saved.Username)
	})

	t.Run("TakenUsernameFails", func(t *testing.T) {
		err := service.Save(ctx, &models.User{ID: ann.ID, Name: "Ann Smith", Username: "bob"})
		var duplicateErr *models.DuplicateError
		require.ErrorAs(t, err, &duplicateErr)
	})

	t.Run("MissingUserFails", func(t *testing.T) {
		err := service.Save(ctx, &models.User{ID: 9999, Name: "Ghost", Username: "ghost"})
		var notFoundErr *models.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
	})
}

func TestProfileService_ChangePassword(t *testing.T) {
	factory := testutils.SetupTestRepositoryFactory(t)
	userRepo := factory.NewUserRepository()
	service := profile.NewProfileService(userRepo)
	loginService := auth.NewLoginService(userRepo)
	ctx := context.Background()

	ann := testutils.CreateTestUser(t, userRepo, "Ann", "ann", "old-password")

	require.NoError(t, service.ChangePassword(ctx, ann.ID, "new-password"))

	// Old password no longer works, the new one does
	_, err := loginService.Authenticate(ctx, "ann", "old-password")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	user, err := loginService.Authenticate(ctx, "ann", "new-password")
	require.NoError(t, err)
	assert.Equal(t, hashutil.MD5Hash("new-password"), user.Password)

	t.Run("MissingUserFails", func(t *testing.T) {
		err := service.ChangePassword(ctx, 9999, "whatever")
		var notFoundErr *models.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
	})
}
