package models

// InstructorArea defines the join row between instructors and areas
// based on the 'instructor_areas' table. (instructor_id, area_id) is unique.
type InstructorArea struct {
	ID           int64 `json:"id" db:"id"`
	InstructorID int64 `json:"instructorId" db:"instructor_id"`
	AreaID       int64 `json:"areaId" db:"area_id"`
}
