package db

import (
	"context"
	"database/sql"
	"fmt"

	"flowdeck-api/models"
)

// SQLiteUserRepository implements the UserRepository interface for SQLite
type SQLiteUserRepository struct {
	db *sql.DB
}

// NewSQLiteUserRepository creates a new SQLiteUserRepository
func NewSQLiteUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

// Close closes the database connection
func (r *SQLiteUserRepository) Close() error {
	return r.db.Close()
}

func scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.Username, &user.Password)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error scanning user: %w", err)
	}
	return &user, nil
}

// FindByID finds a user by ID
func (r *SQLiteUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT id, name, username, password FROM users WHERE id = ?`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

// FindByUsername finds a user by exact username
func (r *SQLiteUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT id, name, username, password FROM users WHERE username = ?`
	return scanUser(r.db.QueryRowContext(ctx, query, username))
}

// FindAll finds all users
func (r *SQLiteUserRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	query := `SELECT id, name, username, password FROM users ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Username, &user.Password); err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}

// UsernameExists reports whether any user has the given username
func (r *SQLiteUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	return r.UsernameTaken(ctx, username, 0)
}

// UsernameTaken reports whether a user other than excludeID has the given username
func (r *SQLiteUserRepository) UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error) {
	query := `SELECT COUNT(*) FROM users WHERE username = ? AND id != ?`
	var count int
	if err := r.db.QueryRowContext(ctx, query, username, excludeID).Scan(&count); err != nil {
		return false, fmt.Errorf("error checking username: %w", err)
	}
	return count > 0, nil
}

// Create inserts a new user and writes the generated id back
func (r *SQLiteUserRepository) Create(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (name, username, password) VALUES (?, ?, ?)`
	result, err := r.db.ExecContext(ctx, query, user.Name, user.Username, user.Password)
	if err != nil {
		return fmt.Errorf("error inserting user: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("error reading inserted user id: %w", err)
	}
	user.ID = id
	return nil
}

// Update persists name and username of an existing user. The password
// column is never touched by this path.
func (r *SQLiteUserRepository) Update(ctx context.Context, user *models.User) error {
	query := `UPDATE users SET name = ?, username = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, user.Name, user.Username, user.ID)
	if err != nil {
		return fmt.Errorf("error updating user: %w", err)
	}
	return nil
}

// UpdatePassword stores a new password hash for the user
func (r *SQLiteUserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	query := `UPDATE users SET password = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("error updating user password: %w", err)
	}
	return nil
}

// DeleteByID deletes a user by ID, reporting whether a row existed
func (r *SQLiteUserRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error reading deleted rows: %w", err)
	}
	return affected > 0, nil
}

// SQLiteProjectRepository implements the ProjectRepository interface for SQLite
type SQLiteProjectRepository struct {
	db *sql.DB
}

// NewSQLiteProjectRepository creates a new SQLiteProjectRepository
func NewSQLiteProjectRepository(db *sql.DB) *SQLiteProjectRepository {
	return &SQLiteProjectRepository{db: db}
}

// Close closes the database connection
func (r *SQLiteProjectRepository) Close() error {
	return r.db.Close()
}

const projectSelect = `
	SELECT p.id, p.name, p.user_id, u.id, u.name, u.username
	FROM projects p
	JOIN users u ON u.id = p.user_id`

func scanProjectRow(scan func(dest ...interface{}) error) (*models.Project, error) {
	var project models.Project
	var owner models.User
	err := scan(&project.ID, &project.Name, &project.UserID, &owner.ID, &owner.Name, &owner.Username)
	if err != nil {
		return nil, err
	}
	project.User = &owner
	return &project, nil
}

// FindByID finds a project by ID with its owning user joined
func (r *SQLiteProjectRepository) FindByID(ctx context.Context, id int64) (*models.Project, error) {
	row := r.db.QueryRowContext(ctx, projectSelect+` WHERE p.id = ?`, id)
	project, err := scanProjectRow(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error scanning project: %w", err)
	}
	return project, nil
}

// FindAll finds all projects with their owning users joined
func (r *SQLiteProjectRepository) FindAll(ctx context.Context) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx, projectSelect+` ORDER BY p.id`)
	if err != nil {
		return nil, fmt.Errorf("error querying projects: %w", err)
	}
	defer rows.Close()
	return collectProjects(rows)
}

// FindByUserID finds all projects owned by the given user
func (r *SQLiteProjectRepository) FindByUserID(ctx context.Context, userID int64) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx, projectSelect+` WHERE p.user_id = ? ORDER BY p.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying projects for user: %w", err)
	}
	defer rows.Close()
	return collectProjects(rows)
}

func collectProjects(rows *sql.Rows) ([]*models.Project, error) {
	var projects []*models.Project
	for rows.Next() {
		project, err := scanProjectRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("error scanning project: %w", err)
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

// Exists reports whether a project with the given id exists
func (r *SQLiteProjectRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects WHERE id = ?`, id).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("error checking project existence: %w", err)
	}
	return count > 0, nil
}

// NameTaken reports whether another project of the same user carries the name
func (r *SQLiteProjectRepository) NameTaken(ctx context.Context, name string, userID, excludeID int64) (bool, error) {
	query := `SELECT COUNT(*) FROM projects WHERE name = ? AND user_id = ? AND id != ?`
	var count int
	if err := r.db.QueryRowContext(ctx, query, name, userID, excludeID).Scan(&count); err != nil {
		return false, fmt.Errorf("error checking project name: %w", err)
	}
	return count > 0, nil
}

// Create inserts a new project and writes the generated id back
func (r *SQLiteProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := `INSERT INTO projects (name, user_id) VALUES (?, ?)`
	result, err := r.db.ExecContext(ctx, query, project.Name, project.UserID)
	if err != nil {
		return fmt.Errorf("error inserting project: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("error reading inserted project id: %w", err)
	}
	project.ID = id
	return nil
}

// Update persists name and owner of an existing project
func (r *SQLiteProjectRepository) Update(ctx context.Context, project *models.Project) error {
	query := `UPDATE projects SET name = ?, user_id = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, project.Name, project.UserID, project.ID)
	if err != nil {
		return fmt.Errorf("error updating project: %w", err)
	}
	return nil
}

// DeleteByID deletes a project by ID, reporting whether a row existed
func (r *SQLiteProjectRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting project: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error reading deleted rows: %w", err)
	}
	return affected > 0, nil
}

// SQLiteLabelRepository implements the LabelRepository interface for SQLite
type SQLiteLabelRepository struct {
	db *sql.DB
}

// NewSQLiteLabelRepository creates a new SQLiteLabelRepository
func NewSQLiteLabelRepository(db *sql.DB) *SQLiteLabelRepository {
	return &SQLiteLabelRepository{db: db}
}

// Close closes the database connection
func (r *SQLiteLabelRepository) Close() error {
	return r.db.Close()
}

// FindByID finds a label by ID
func (r *SQLiteLabelRepository) FindByID(ctx context.Context, id int64) (*models.Label, error) {
	var label models.Label
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM labels WHERE id = ?`, id).
		Scan(&label.ID, &label.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error scanning label: %w", err)
	}
	return &label, nil
}

// FindAll finds all labels
func (r *SQLiteLabelRepository) FindAll(ctx context.Context) ([]*models.Label, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM labels ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error querying labels: %w", err)
	}
	defer rows.Close()

	var labels []*models.Label
	for rows.Next() {
		var label models.Label
		if err := rows.Scan(&label.ID, &label.Name); err != nil {
			return nil, fmt.Errorf("error scanning label: %w", err)
		}
		labels = append(labels, &label)
	}
	return labels, rows.Err()
}

// NameTaken reports whether a label other than excludeID carries the name
func (r *SQLiteLabelRepository) NameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	query := `SELECT COUNT(*) FROM labels WHERE name = ? AND id != ?`
	var count int
	if err := r.db.QueryRowContext(ctx, query, name, excludeID).Scan(&count); err != nil {
		return false, fmt.Errorf("error checking label name: %w", err)
	}
	return count > 0, nil
}

// Create inserts a new label and writes the generated id back
func (r *SQLiteLabelRepository) Create(ctx context.Context, label *models.Label) error {
	result, err := r.db.ExecContext(ctx, `INSERT INTO labels (name) VALUES (?)`, label.Name)
	if err != nil {
		return fmt.Errorf("error inserting label: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("error reading inserted label id: %w", err)
	}
	label.ID = id
	return nil
}

// Update persists the name of an existing label
func (r *SQLiteLabelRepository) Update(ctx context.Context, label *models.Label) error {
	_, err := r.db.ExecContext(ctx, `UPDATE labels SET name = ? WHERE id = ?`, label.Name, label.ID)
	if err != nil {
		return fmt.Errorf("error updating label: %w", err)
	}
	return nil
}

// DeleteByID deletes a label by ID, reporting whether a row existed
func (r *SQLiteLabelRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM labels WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting label: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error reading deleted rows: %w", err)
	}
	return affected > 0, nil
}
