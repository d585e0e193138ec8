package db

import (
	"context"
	"database/sql"
	"errors"

	"flowdeck-api/models"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Repository defines a common interface for all repositories
type Repository interface {
	Close() error
}

// UserRepository defines the interface for user operations
type UserRepository interface {
	Repository
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindAll(ctx context.Context) ([]*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// ProjectRepository defines the interface for project operations
type ProjectRepository interface {
	Repository
	FindByID(ctx context.Context, id int64) (*models.Project, error)
	FindAll(ctx context.Context) ([]*models.Project, error)
	FindByUserID(ctx context.Context, userID int64) ([]*models.Project, error)
	Exists(ctx context.Context, id int64) (bool, error)
	NameTaken(ctx context.Context, name string, userID, excludeID int64) (bool, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// LabelRepository defines the interface for label operations
type LabelRepository interface {
	Repository
	FindByID(ctx context.Context, id int64) (*models.Label, error)
	FindAll(ctx context.Context) ([]*models.Label, error)
	NameTaken(ctx context.Context, name string, excludeID int64) (bool, error)
	Create(ctx context.Context, label *models.Label) error
	Update(ctx context.Context, label *models.Label) error
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// RepositoryFactory creates SQLite-backed repositories sharing one connection
type RepositoryFactory struct {
	SQLiteDB *sql.DB
}

// NewRepositoryFactory creates a new repository factory
func NewRepositoryFactory(sqliteDB *sql.DB) *RepositoryFactory {
	return &RepositoryFactory{SQLiteDB: sqliteDB}
}

// NewUserRepository creates a new user repository
func (f *RepositoryFactory) NewUserRepository() UserRepository {
	return NewSQLiteUserRepository(f.SQLiteDB)
}

// NewProjectRepository creates a new project repository
func (f *RepositoryFactory) NewProjectRepository() ProjectRepository {
	return NewSQLiteProjectRepository(f.SQLiteDB)
}

// NewLabelRepository creates a new label repository
func (f *RepositoryFactory) NewLabelRepository() LabelRepository {
	return NewSQLiteLabelRepository(f.SQLiteDB)
}
