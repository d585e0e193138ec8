package models

// Label represents a tag with a globally unique name
type Label struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
