package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"flowdeck-api/internal/hashutil"
	"flowdeck-api/models"

	_ "github.com/mattn/go-sqlite3"
)

// ConnectToSQLite initializes and returns a SQLite connection
func ConnectToSQLite(dbPath string) (*sql.DB, error) {
	// Ensure the directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory for SQLite: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return db, nil
}

// InitializeSchema creates all the necessary tables if they don't exist.
// The UNIQUE constraints are the storage-level backstop for the
// query-time uniqueness checks in the services.
func InitializeSchema(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}

	_, err = db.Exec(`
	CREATE TABLE IF NOT EXISTS projects (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		user_id INTEGER NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id),
		UNIQUE (name, user_id)
	)`)
	if err != nil {
		return fmt.Errorf("failed to create projects table: %w", err)
	}

	_, err = db.Exec(`
	CREATE TABLE IF NOT EXISTS labels (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	)`)
	if err != nil {
		return fmt.Errorf("failed to create labels table: %w", err)
	}

	return nil
}

// SeedAdminUser inserts the administrator account on first run. The row
// keeps id 1 so the delete guard can address it.
func SeedAdminUser(ctx context.Context, db *sql.DB) error {
	var id int64
	err := db.QueryRowContext(ctx, `SELECT id FROM users WHERE id = ?`, models.AdminUserID).Scan(&id)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO users (id, name, username, password) VALUES (?, ?, ?, ?)`,
		models.AdminUserID, "Administrator", "admin", hashutil.MD5Hash("admin"))
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	return nil
}
