package models

// User defines the user model based on the 'users' table
type User struct {
	ID       int64  `json:"id" db:"id" example:"1"`       // Unique identifier for the user
	Login    string `json:"login" db:"login"`             // Unique login name
	Password string `json:"-" db:"password"`              // Hashed password (excluded from JSON)
	RoleID   *int64 `json:"roleId,omitempty" db:"role_id"` // Optional role reference (nullable)
	Role     *Role  `json:"role,omitempty"`               // Relation, no db tag
}
