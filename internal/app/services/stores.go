package services

import (
	"context"

	"github.com/coursecat/api/internal/app/models"
)

// Store interfaces decouple services from the pgx repositories so the
// store implementation is injected once at process start and never
// reached through ambient state. The repositories package provides the
// production implementations.

// RoleStore provides persistence for roles
type RoleStore interface {
	GetByID(ctx context.Context, id int64) (*models.Role, error)
}

// UserStore provides persistence for users
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByLogin(ctx context.Context, login string) (*models.User, error)
	LoginExists(ctx context.Context, login string) (bool, error)
}

// AreaStore provides persistence for action areas
type AreaStore interface {
	Create(ctx context.Context, area *models.Area) error
	GetByID(ctx context.Context, id int64) (*models.Area, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, offset, limit int) ([]*models.Area, error)
}

// InstructorStore provides persistence for instructors and their area links
type InstructorStore interface {
	CreateWithAreas(ctx context.Context, instructor *models.Instructor, areaIDs []int64) error
	GetByID(ctx context.Context, id int64) (*models.Instructor, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context, offset, limit int) ([]*models.Instructor, error)
	Update(ctx context.Context, instructor *models.Instructor) error
	ReplaceAreas(ctx context.Context, instructorID int64, areaIDs []int64) error
	CountCourses(ctx context.Context, instructorID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// CourseStore provides persistence for courses
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context, offset, limit int) ([]*models.Course, error)
	ListByArea(ctx context.Context, areaID int64, offset, limit int) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}
