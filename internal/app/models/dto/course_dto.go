package dto

import (
	"github.com/coursecat/api/internal/app/models"
	"github.com/coursecat/api/internal/pkg/mediacodec"
)

// CreateCourseForm represents the multipart form for course creation.
// The banner and video files are bound separately by the controller.
type CreateCourseForm struct {
	Name         string `form:"name" binding:"required"`
	Description  string `form:"description"`
	InstructorID int64  `form:"instructor_id" binding:"required,gt=0"`
	AreaID       *int64 `form:"area_id" binding:"omitempty,gt=0"`
}

// UpdateCourseRequest represents course partial update data.
// Only non-nil fields are applied; binary fields arrive base64 encoded.
type UpdateCourseRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Banner       *string `json:"banner,omitempty"`
	Video        *string `json:"video,omitempty"`
	InstructorID *int64  `json:"instructor_id,omitempty"`
	AreaID       *int64  `json:"area_id,omitempty"`
}

// ApplyTo merges the present fields into an existing course, leaving
// omitted fields untouched.
func (r *UpdateCourseRequest) ApplyTo(course *models.Course) error {
	if r.Name != nil {
		course.Name = *r.Name
	}
	if r.Description != nil {
		course.Description = *r.Description
	}
	if r.Banner != nil {
		data, err := mediacodec.Decode(*r.Banner)
		if err != nil {
			return err
		}
		course.Banner = data
	}
	if r.Video != nil {
		data, err := mediacodec.Decode(*r.Video)
		if err != nil {
			return err
		}
		course.Video = data
	}
	if r.InstructorID != nil {
		course.InstructorID = *r.InstructorID
	}
	if r.AreaID != nil {
		course.AreaID = r.AreaID
	}
	return nil
}

// CourseResponse represents course information with binary fields rendered
// as base64 data URIs.
type CourseResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Banner       *string `json:"banner"`
	Video        *string `json:"video"`
	InstructorID int64   `json:"instructorId"`
	AreaID       *int64  `json:"areaId,omitempty"`
}

// CourseListResponse represents a list of courses
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
}

// FromCourse converts a Course model to a CourseResponse
func FromCourse(course *models.Course) CourseResponse {
	return CourseResponse{
		ID:           course.ID,
		Name:         course.Name,
		Description:  course.Description,
		Banner:       mediacodec.Encode(course.Banner),
		Video:        mediacodec.Encode(course.Video),
		InstructorID: course.InstructorID,
		AreaID:       course.AreaID,
	}
}
