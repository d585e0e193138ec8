package models

// AdminUserID is the seeded administrator row, created on first run.
// It can never be deleted.
const AdminUserID int64 = 1

// User represents an account that can log in and own projects
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"-"` // Never serialize password
}
