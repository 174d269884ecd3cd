package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	RoleRepository       *RoleRepository
	UserRepository       *UserRepository
	AreaRepository       *AreaRepository
	InstructorRepository *InstructorRepository
	CourseRepository     *CourseRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		RoleRepository:       NewRoleRepository(db),
		UserRepository:       NewUserRepository(db),
		AreaRepository:       NewAreaRepository(db),
		InstructorRepository: NewInstructorRepository(db),
		CourseRepository:     NewCourseRepository(db),
	}
}
