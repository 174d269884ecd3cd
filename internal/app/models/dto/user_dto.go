package dto

// RegisterUserRequest represents user registration data
type RegisterUserRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
	RoleID   *int64 `json:"roleId,omitempty" binding:"omitempty,gt=0"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents basic user information
type UserResponse struct {
	ID     int64  `json:"id"`
	Login  string `json:"login"`
	RoleID *int64 `json:"roleId,omitempty"`
}
