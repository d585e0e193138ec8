package integration

import (
	"context"
	"testing"

	"flowdeck-api/internal/project"
	"flowdeck-api/models"
	"flowdeck-api/tests/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_Save(t *testing.T) {
	factory := testutils.SetupTestRepositoryFactory(t)
	userRepo := factory.NewUserRepository()
	service := project.NewProjectService(factory.NewProjectRepository(), userRepo)
	ctx := context.Background()

	ann := testutils.CreateTestUser(t, userRepo, "Ann", "ann", "123456")
	bob := testutils.CreateTestUser(t, userRepo, "Bob", "bob", "123456")

	t.Run("CreateAssignsID", func(t *testing.T) {
		payload := &models.Project{Name: "Website", UserID: ann.ID}
		require.NoError(t, service.Save(ctx, payload))
		assert.Greater(t, payload.ID, int64(0))

		saved, err := service.GetByID(ctx, payload.ID)
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "Website", saved.Name)
		assert.Equal(t, ann.ID, saved.UserID)
		require.NotNil(t, saved.User)
		assert.Equal(t, "ann", saved.User.Username)
	})

	t.Run("SameNameDifferentOwnersBothSucceed", func(t *testing.T) {
		payload := &models.Project{Name: "Website", UserID: bob.ID}
		require.NoError(t, service.Save(ctx, payload))
	})

	t.Run("SameNameSameOwnerFails", func(t *testing.T) {
		payload := &models.Project{Name: "Website", UserID: ann.ID}
		err := service.Save(ctx, payload)

		var duplicateErr *models.DuplicateError
		require.ErrorAs(t, err, &duplicateErr)
		assert.Equal(t, "Project 'Website' already exists for this user.", duplicateErr.Message)
	})

	t.Run("UnknownOwnerFails", func(t *testing.T) {
		payload := &models.Project{Name: "Orphan", UserID: 9999}
		err := service.Save(ctx, payload)

		var referenceErr *models.ReferenceError
		require.ErrorAs(t, err, &referenceErr)
		assert.Equal(t, "User with ID 9999 not found.", referenceErr.Message)
	})

	t.Run("UpdateRenameAndReassign", func(t *testing.T) {
		payload := &models.Project{Name: "Backend", UserID: ann.ID}
		require.NoError(t, service.Save(ctx, payload))

		payload.Name = "Backend v2"
		payload.UserID = bob.ID
		require.NoError(t, service.Save(ctx, payload))

		saved, err := service.GetByID(ctx, payload.ID)
		require.NoError(t, err)
		assert.Equal(t, "Backend v2", saved.Name)
		assert.Equal(t, bob.ID, saved.UserID)
	})

	t.Run("UpdateMissingProjectFails", func(t *testing.T) {
		payload := &models.Project{ID: 9999, Name: "Ghost", UserID: ann.ID}
		err := service.Save(ctx, payload)

		var notFoundErr *models.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
	})
}

func TestProjectService_Queries(t *testing.T) {
	factory := testutils.SetupTestRepositoryFactory(t)
	userRepo := factory.NewUserRepository()
	projectRepo := factory.NewProjectRepository()
	service := project.NewProjectService(projectRepo, userRepo)
	ctx := context.Background()

	ann := testutils.CreateTestUser(t, userRepo, "Ann", "ann", "123456")
	bob := testutils.CreateTestUser(t, userRepo, "Bob", "bob", "123456")
	first := testutils.CreateTestProject(t, projectRepo, "Alpha", ann.ID)
	testutils.CreateTestProject(t, projectRepo, "Beta", ann.ID)
	testutils.CreateTestProject(t, projectRepo, "Gamma", bob.ID)

	t.Run("GetByUserID", func(t *testing.T) {
		projects, err := service.GetByUserID(ctx, ann.ID)
		require.NoError(t, err)
		require.Len(t, projects, 2)
		for _, p := range projects {
			assert.Equal(t, ann.ID, p.UserID)
			require.NotNil(t, p.User)
		}
	})

	t.Run("GetAllJoinsOwners", func(t *testing.T) {
		projects, err := service.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, projects, 3)
		for _, p := range projects {
			require.NotNil(t, p.User)
		}
	})

	t.Run("Exists", func(t *testing.T) {
		exists, err := service.Exists(ctx, first.ID)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = service.Exists(ctx, 9999)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("NameExistsForUser", func(t *testing.T) {
		exists, err := service.NameExistsForUser(ctx, "Alpha", ann.ID)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = service.NameExistsForUser(ctx, "Alpha", bob.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("DeleteMissingReturnsFalse", func(t *testing.T) {
		deleted, err := service.Delete(ctx, 9999)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("DeleteExisting", func(t *testing.T) {
		deleted, err := service.Delete(ctx, first.ID)
		require.NoError(t, err)
		assert.True(t, deleted)
	})
}
