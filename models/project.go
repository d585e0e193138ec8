package models

// Project represents a project owned by a single user. The same name
// may exist under different owners but only once per owner.
type Project struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	UserID int64  `json:"userId"`
	User   *User  `json:"user,omitempty"`
}
