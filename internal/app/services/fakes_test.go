package services

import (
	"context"
	"sort"

	"github.com/coursecat/api/internal/app/models"
	"github.com/coursecat/api/internal/pkg/apperrors"
)

// In-memory store implementations used by the service tests.

type fakeRoleStore struct {
	roles map[int64]*models.Role
}

func newFakeRoleStore(names ...string) *fakeRoleStore {
	s := &fakeRoleStore{roles: map[int64]*models.Role{}}
	for i, name := range names {
		id := int64(i + 1)
		s.roles[id] = &models.Role{ID: id, Name: name}
	}
	return s
}

func (s *fakeRoleStore) GetByID(_ context.Context, id int64) (*models.Role, error) {
	role, ok := s.roles[id]
	if !ok {
		return nil, apperrors.ErrRoleNotFound
	}
	return role, nil
}

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]*models.User{}}
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	for _, existing := range s.users {
		if existing.Login == user.Login {
			return apperrors.ErrLoginAlreadyTaken
		}
	}
	s.nextID++
	user.ID = s.nextID
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (s *fakeUserStore) GetByLogin(_ context.Context, login string) (*models.User, error) {
	for _, user := range s.users {
		if user.Login == login {
			clone := *user
			return &clone, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *fakeUserStore) LoginExists(_ context.Context, login string) (bool, error) {
	for _, user := range s.users {
		if user.Login == login {
			return true, nil
		}
	}
	return false, nil
}

type fakeAreaStore struct {
	areas      map[int64]*models.Area
	nextID     int64
	lastOffset int
	lastLimit  int
}

func newFakeAreaStore() *fakeAreaStore {
	return &fakeAreaStore{areas: map[int64]*models.Area{}}
}

func (s *fakeAreaStore) Create(_ context.Context, area *models.Area) error {
	for _, existing := range s.areas {
		if existing.Name == area.Name {
			return apperrors.ErrAreaAlreadyExists
		}
	}
	s.nextID++
	area.ID = s.nextID
	clone := *area
	s.areas[area.ID] = &clone
	return nil
}

func (s *fakeAreaStore) GetByID(_ context.Context, id int64) (*models.Area, error) {
	area, ok := s.areas[id]
	if !ok {
		return nil, apperrors.ErrAreaNotFound
	}
	clone := *area
	return &clone, nil
}

func (s *fakeAreaStore) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, area := range s.areas {
		if area.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeAreaStore) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := s.areas[id]
	return ok, nil
}

func (s *fakeAreaStore) List(_ context.Context, offset, limit int) ([]*models.Area, error) {
	s.lastOffset = offset
	s.lastLimit = limit

	ids := sortedKeys(s.areas)
	result := make([]*models.Area, 0, len(ids))
	for i, id := range ids {
		if i < offset {
			continue
		}
		if len(result) >= limit {
			break
		}
		clone := *s.areas[id]
		result = append(result, &clone)
	}
	return result, nil
}

type fakeInstructorStore struct {
	instructors  map[int64]*models.Instructor
	areaLinks    map[int64][]int64
	courseCounts map[int64]int64
	areaStore    *fakeAreaStore
	nextID       int64
	createCalls  int
}

func newFakeInstructorStore(areaStore *fakeAreaStore) *fakeInstructorStore {
	return &fakeInstructorStore{
		instructors:  map[int64]*models.Instructor{},
		areaLinks:    map[int64][]int64{},
		courseCounts: map[int64]int64{},
		areaStore:    areaStore,
	}
}

func (s *fakeInstructorStore) CreateWithAreas(_ context.Context, instructor *models.Instructor, areaIDs []int64) error {
	s.createCalls++
	for _, existing := range s.instructors {
		if existing.Name == instructor.Name {
			return apperrors.ErrInstructorAlreadyExists
		}
	}
	s.nextID++
	instructor.ID = s.nextID
	clone := *instructor
	clone.Areas = nil
	s.instructors[instructor.ID] = &clone
	s.areaLinks[instructor.ID] = append([]int64(nil), areaIDs...)
	return nil
}

func (s *fakeInstructorStore) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	instructor, ok := s.instructors[id]
	if !ok {
		return nil, apperrors.ErrInstructorNotFound
	}
	clone := *instructor
	clone.Areas = make([]*models.Area, 0, len(s.areaLinks[id]))
	for _, areaID := range s.areaLinks[id] {
		area, err := s.areaStore.GetByID(ctx, areaID)
		if err != nil {
			return nil, err
		}
		clone.Areas = append(clone.Areas, area)
	}
	return &clone, nil
}

func (s *fakeInstructorStore) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, instructor := range s.instructors {
		if instructor.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeInstructorStore) List(ctx context.Context, offset, limit int) ([]*models.Instructor, error) {
	ids := sortedKeys(s.instructors)
	result := make([]*models.Instructor, 0, len(ids))
	for i, id := range ids {
		if i < offset {
			continue
		}
		if len(result) >= limit {
			break
		}
		instructor, err := s.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		result = append(result, instructor)
	}
	return result, nil
}

func (s *fakeInstructorStore) Update(_ context.Context, instructor *models.Instructor) error {
	if _, ok := s.instructors[instructor.ID]; !ok {
		return apperrors.ErrInstructorNotFound
	}
	for _, existing := range s.instructors {
		if existing.ID != instructor.ID && existing.Name == instructor.Name {
			return apperrors.ErrInstructorAlreadyExists
		}
	}
	clone := *instructor
	clone.Areas = nil
	s.instructors[instructor.ID] = &clone
	return nil
}

func (s *fakeInstructorStore) ReplaceAreas(_ context.Context, instructorID int64, areaIDs []int64) error {
	if _, ok := s.instructors[instructorID]; !ok {
		return apperrors.ErrInstructorNotFound
	}
	s.areaLinks[instructorID] = append([]int64(nil), areaIDs...)
	return nil
}

func (s *fakeInstructorStore) CountCourses(_ context.Context, instructorID int64) (int64, error) {
	return s.courseCounts[instructorID], nil
}

func (s *fakeInstructorStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.instructors[id]; !ok {
		return apperrors.ErrInstructorNotFound
	}
	delete(s.instructors, id)
	delete(s.areaLinks, id)
	return nil
}

type fakeCourseStore struct {
	courses map[int64]*models.Course
	nextID  int64
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: map[int64]*models.Course{}}
}

func (s *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	for _, existing := range s.courses {
		if existing.Name == course.Name {
			return apperrors.ErrCourseAlreadyExists
		}
	}
	s.nextID++
	course.ID = s.nextID
	clone := *course
	s.courses[course.ID] = &clone
	return nil
}

func (s *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	clone := *course
	return &clone, nil
}

func (s *fakeCourseStore) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, course := range s.courses {
		if course.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeCourseStore) List(_ context.Context, offset, limit int) ([]*models.Course, error) {
	return s.listFiltered(offset, limit, nil), nil
}

func (s *fakeCourseStore) ListByArea(_ context.Context, areaID int64, offset, limit int) ([]*models.Course, error) {
	return s.listFiltered(offset, limit, &areaID), nil
}

func (s *fakeCourseStore) listFiltered(offset, limit int, areaID *int64) []*models.Course {
	ids := sortedKeys(s.courses)
	matched := 0
	result := make([]*models.Course, 0)
	for _, id := range ids {
		course := s.courses[id]
		if areaID != nil && (course.AreaID == nil || *course.AreaID != *areaID) {
			continue
		}
		matched++
		if matched <= offset {
			continue
		}
		if len(result) >= limit {
			break
		}
		clone := *course
		result = append(result, &clone)
	}
	return result
}

func (s *fakeCourseStore) Update(_ context.Context, course *models.Course) error {
	if _, ok := s.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	for _, existing := range s.courses {
		if existing.ID != course.ID && existing.Name == course.Name {
			return apperrors.ErrCourseAlreadyExists
		}
	}
	clone := *course
	s.courses[course.ID] = &clone
	return nil
}

func (s *fakeCourseStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(s.courses, id)
	return nil
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
