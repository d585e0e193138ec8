package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flowdeck-api/db"
	"flowdeck-api/internal/auth"
	"flowdeck-api/internal/config"
	"flowdeck-api/internal/label"
	"flowdeck-api/internal/profile"
	"flowdeck-api/internal/project"
	"flowdeck-api/internal/user"
	"flowdeck-api/internal/web"
	"flowdeck-api/middleware"
)

func main() {
	infoLogger := log.New(os.Stdout, "", log.LstdFlags)
	errorLogger := log.New(os.Stderr, "", log.LstdFlags)

	cfg, err := config.LoadConfig()
	if err != nil {
		errorLogger.Fatalf("Failed to load configuration: %v", err)
	}

	sqliteDB, err := db.ConnectToSQLite(cfg.SQLitePath)
	if err != nil {
		errorLogger.Fatalf("Failed to connect to SQLite: %v", err)
	}
	defer sqliteDB.Close()
	infoLogger.Println("Connected to SQLite database")

	if err := db.InitializeSchema(sqliteDB); err != nil {
		errorLogger.Fatalf("Failed to initialize database schema: %v", err)
	}
	if err := db.SeedAdminUser(context.Background(), sqliteDB); err != nil {
		errorLogger.Fatalf("Failed to seed admin user: %v", err)
	}
	infoLogger.Println("Database schema initialized")

	// Create repositories
	repoFactory := db.NewRepositoryFactory(sqliteDB)
	userRepo := repoFactory.NewUserRepository()
	projectRepo := repoFactory.NewProjectRepository()
	labelRepo := repoFactory.NewLabelRepository()

	// Initialize services with repositories
	loginService := auth.NewLoginService(userRepo)
	tokenService := auth.NewTokenService(cfg)
	userService := user.NewUserService(userRepo)
	projectService := project.NewProjectService(projectRepo, userRepo)
	labelService := label.NewLabelService(labelRepo)
	profileService := profile.NewProfileService(userRepo)

	// Initialize handlers
	authHandlers := auth.NewAuthHandlers(loginService, tokenService, infoLogger)
	userHandlers := user.NewUserHandlers(userService, errorLogger)
	projectHandlers := project.NewProjectHandlers(projectService, errorLogger)
	labelHandlers := label.NewLabelHandlers(labelService, errorLogger)
	profileHandlers := profile.NewProfileHandlers(profileService, errorLogger)

	mw := middleware.NewMiddleware(tokenService)
	router := web.NewRouter(authHandlers, userHandlers, projectHandlers, labelHandlers, profileHandlers, mw)

	handler := middleware.LoggingMiddleware(infoLogger)(middleware.SetupCORS()(router.SetupRoutes()))

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		infoLogger.Printf("Server is starting on port %s...", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errorLogger.Fatalf("Server ListenAndServe error: %v", err)
		}
	}()

	waitForShutdown(server, infoLogger, errorLogger)
}

func waitForShutdown(server *http.Server, infoLogger, errorLogger *log.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	sig := <-stop
	infoLogger.Printf("Received shutdown signal: %v", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	infoLogger.Println("Shutting down the server...")
	if err := server.Shutdown(shutdownCtx); err != nil {
		errorLogger.Printf("Server Shutdown error: %v", err)
		os.Exit(1)
	}
	infoLogger.Println("Server stopped")
}
