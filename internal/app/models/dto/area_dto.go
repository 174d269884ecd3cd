package dto

// CreateAreaRequest represents area creation data
type CreateAreaRequest struct {
	Name string `json:"name" binding:"required"`
}

// AreaResponse represents basic area information
type AreaResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AreaListResponse represents a list of areas
type AreaListResponse struct {
	Areas []AreaResponse `json:"areas"`
}
