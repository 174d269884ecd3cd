package models

// Instructor defines the instructor model based on the 'instructors' table.
// Pfp and Banner hold raw image bytes; API responses expose them as base64
// data URIs instead of raw blobs.
type Instructor struct {
	ID        int64   `json:"id" db:"id"`
	Name      string  `json:"name" db:"name"`
	Biography string  `json:"biography" db:"biography"`
	Pfp       []byte  `json:"-" db:"pfp"`
	Banner    []byte  `json:"-" db:"banner"`
	UserID    *int64  `json:"userId,omitempty" db:"user_id"` // Optional owning user (nullable)
	Areas     []*Area `json:"areas,omitempty"`               // Relation via instructor_areas, no db tag
}
