package models

// Role defines a user role based on the 'roles' table
type Role struct {
	ID   int64  `json:"id" db:"id" example:"1"`
	Name string `json:"name" db:"name" example:"admin"`
}
