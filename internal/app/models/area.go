package models

// Area defines an action area (category) based on the 'areas' table.
// Instructors and courses are categorized by areas.
type Area struct {
	ID   int64  `json:"id" db:"id" example:"1"`
	Name string `json:"name" db:"name" example:"Mathematics"`
}
