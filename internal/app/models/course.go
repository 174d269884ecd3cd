package models

// Course defines the course model based on the 'courses' table.
// Banner and Video hold raw bytes; API responses expose them as base64
// data URIs.
type Course struct {
	ID           int64       `json:"id" db:"id"`
	Name         string      `json:"name" db:"name"`
	Description  string      `json:"description" db:"description"`
	Banner       []byte      `json:"-" db:"banner"`
	Video        []byte      `json:"-" db:"video"`
	InstructorID int64       `json:"instructorId" db:"instructor_id"`
	AreaID       *int64      `json:"areaId,omitempty" db:"area_id"` // Optional category (nullable)
	Instructor   *Instructor `json:"instructor,omitempty"`          // Relation, no db tag
}
