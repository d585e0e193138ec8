package integration

import (
	"io"
	"log"
	"testing"

	"flowdeck-api/db"
	"flowdeck-api/internal/auth"
	"flowdeck-api/internal/label"
	"flowdeck-api/internal/profile"
	"flowdeck-api/internal/project"
	"flowdeck-api/internal/user"
	"flowdeck-api/internal/web"
	"flowdeck-api/middleware"
	"flowdeck-api/tests/testutils"

	"github.com/stretchr/testify/require"
)

type testApp struct {
	factory      *db.RepositoryFactory
	tokenService *auth.TokenService
	server       *testutils.TestServer
}

// setupApp wires the whole stack against a temp database, mirroring the
// construction order in cmd/main.go.
func setupApp(t *testing.T) *testApp {
	cfg := testutils.GetTestConfig()
	factory := testutils.SetupTestRepositoryFactory(t)

	userRepo := factory.NewUserRepository()
	projectRepo := factory.NewProjectRepository()
	labelRepo := factory.NewLabelRepository()

	logger := log.New(io.Discard, "", 0)

	loginService := auth.NewLoginService(userRepo)
	tokenService := auth.NewTokenService(cfg)
	userService := user.NewUserService(userRepo)
	projectService := project.NewProjectService(projectRepo, userRepo)
	labelService := label.NewLabelService(labelRepo)
	profileService := profile.NewProfileService(userRepo)

	authHandlers := auth.NewAuthHandlers(loginService, tokenService, logger)
	userHandlers := user.NewUserHandlers(userService, logger)
	projectHandlers := project.NewProjectHandlers(projectService, logger)
	labelHandlers := label.NewLabelHandlers(labelService, logger)
	profileHandlers := profile.NewProfileHandlers(profileService, logger)

	mw := middleware.NewMiddleware(tokenService)
	router := web.NewRouter(authHandlers, userHandlers, projectHandlers, labelHandlers, profileHandlers, mw)

	return &testApp{
		factory:      factory,
		tokenService: tokenService,
		server:       testutils.NewTestServer(t, router.SetupRoutes()),
	}
}

// adminServer returns a server view authenticated as the seeded admin
func (a *testApp) adminServer(t *testing.T) *testutils.TestServer {
	token, err := a.tokenService.GenerateToken(1, "admin")
	require.NoError(t, err)
	return a.server.WithToken(token)
}

// userServer returns a server view authenticated as the given user
func (a *testApp) userServer(t *testing.T, userID int64, username string) *testutils.TestServer {
	token, err := a.tokenService.GenerateToken(userID, username)
	require.NoError(t, err)
	return a.server.WithToken(token)
}
