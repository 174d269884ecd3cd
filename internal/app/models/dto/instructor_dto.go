package dto

import (
	"github.com/coursecat/api/internal/app/models"
	"github.com/coursecat/api/internal/pkg/mediacodec"
)

// CreateInstructorForm represents the multipart form for instructor creation.
// The pfp and banner files are bound separately by the controller.
type CreateInstructorForm struct {
	Name      string  `form:"name" binding:"required"`
	Biography string  `form:"biography"`
	AreasID   []int64 `form:"areas_id"`
	UserID    *int64  `form:"user_id" binding:"omitempty,gt=0"`
}

// UpdateInstructorRequest represents instructor partial update data.
// Only non-nil fields are applied; binary fields arrive base64 encoded.
type UpdateInstructorRequest struct {
	Name      *string  `json:"name,omitempty"`
	Biography *string  `json:"biography,omitempty"`
	Pfp       *string  `json:"pfp,omitempty"`
	Banner    *string  `json:"banner,omitempty"`
	AreasID   *[]int64 `json:"areas_id,omitempty"`
}

// ApplyTo merges the present fields into an existing instructor, leaving
// omitted fields untouched. The areas_id set is handled by the service
// because it lives in the join table, not on the instructor row.
func (r *UpdateInstructorRequest) ApplyTo(instructor *models.Instructor) error {
	if r.Name != nil {
		instructor.Name = *r.Name
	}
	if r.Biography != nil {
		instructor.Biography = *r.Biography
	}
	if r.Pfp != nil {
		data, err := mediacodec.Decode(*r.Pfp)
		if err != nil {
			return err
		}
		instructor.Pfp = data
	}
	if r.Banner != nil {
		data, err := mediacodec.Decode(*r.Banner)
		if err != nil {
			return err
		}
		instructor.Banner = data
	}
	return nil
}

// InstructorResponse represents instructor information with embedded areas
// and binary fields rendered as base64 data URIs.
type InstructorResponse struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Biography string         `json:"biography"`
	Pfp       *string        `json:"pfp"`
	Banner    *string        `json:"banner"`
	UserID    *int64         `json:"userId,omitempty"`
	Areas     []AreaResponse `json:"areas"`
}

// InstructorListResponse represents a list of instructors
type InstructorListResponse struct {
	Instructors []InstructorResponse `json:"instructors"`
}

// FromInstructor converts an Instructor model to an InstructorResponse
func FromInstructor(instructor *models.Instructor) InstructorResponse {
	resp := InstructorResponse{
		ID:        instructor.ID,
		Name:      instructor.Name,
		Biography: instructor.Biography,
		Pfp:       mediacodec.Encode(instructor.Pfp),
		Banner:    mediacodec.Encode(instructor.Banner),
		UserID:    instructor.UserID,
		Areas:     make([]AreaResponse, 0, len(instructor.Areas)),
	}
	for _, area := range instructor.Areas {
		resp.Areas = append(resp.Areas, AreaResponse{ID: area.ID, Name: area.Name})
	}
	return resp
}
