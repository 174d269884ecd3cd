package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/coursecat/api/internal/app/controllers"
	"github.com/coursecat/api/internal/app/models"
	"github.com/coursecat/api/internal/app/routes"
	"github.com/coursecat/api/internal/app/services"
	"github.com/coursecat/api/internal/pkg/apperrors"
)

// In-memory stores backing the HTTP tests. They mirror the behavior of
// the pgx repositories closely enough for endpoint semantics: unique
// names, id-ordered listings and sentinel errors.

type memRoleStore struct{ roles map[int64]*models.Role }

func (s *memRoleStore) GetByID(_ context.Context, id int64) (*models.Role, error) {
	role, ok := s.roles[id]
	if !ok {
		return nil, apperrors.ErrRoleNotFound
	}
	return role, nil
}

type memUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func (s *memUserStore) Create(_ context.Context, user *models.User) error {
	for _, u := range s.users {
		if u.Login == user.Login {
			return apperrors.ErrLoginAlreadyTaken
		}
	}
	s.nextID++
	user.ID = s.nextID
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *memUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (s *memUserStore) GetByLogin(_ context.Context, login string) (*models.User, error) {
	for _, user := range s.users {
		if user.Login == login {
			clone := *user
			return &clone, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *memUserStore) LoginExists(_ context.Context, login string) (bool, error) {
	_, err := s.GetByLogin(context.Background(), login)
	return err == nil, nil
}

type memAreaStore struct {
	areas  map[int64]*models.Area
	nextID int64
}

func (s *memAreaStore) Create(_ context.Context, area *models.Area) error {
	for _, a := range s.areas {
		if a.Name == area.Name {
			return apperrors.ErrAreaAlreadyExists
		}
	}
	s.nextID++
	area.ID = s.nextID
	clone := *area
	s.areas[area.ID] = &clone
	return nil
}

func (s *memAreaStore) GetByID(_ context.Context, id int64) (*models.Area, error) {
	area, ok := s.areas[id]
	if !ok {
		return nil, apperrors.ErrAreaNotFound
	}
	clone := *area
	return &clone, nil
}

func (s *memAreaStore) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, a := range s.areas {
		if a.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *memAreaStore) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := s.areas[id]
	return ok, nil
}

func (s *memAreaStore) List(_ context.Context, offset, limit int) ([]*models.Area, error) {
	result := make([]*models.Area, 0, len(s.areas))
	for _, id := range memSortedKeys(s.areas) {
		clone := *s.areas[id]
		result = append(result, &clone)
	}
	return memWindow(result, offset, limit), nil
}

type memInstructorStore struct {
	instructors map[int64]*models.Instructor
	areaLinks   map[int64][]int64
	areaStore   *memAreaStore
	courseStore *memCourseStore
	nextID      int64
}

func (s *memInstructorStore) CreateWithAreas(_ context.Context, instructor *models.Instructor, areaIDs []int64) error {
	for _, i := range s.instructors {
		if i.Name == instructor.Name {
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

func (s *memInstructorStore) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
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

func (s *memInstructorStore) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, i := range s.instructors {
		if i.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *memInstructorStore) List(ctx context.Context, offset, limit int) ([]*models.Instructor, error) {
	result := make([]*models.Instructor, 0, len(s.instructors))
	for _, id := range memSortedKeys(s.instructors) {
		instructor, err := s.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		result = append(result, instructor)
	}
	return memWindow(result, offset, limit), nil
}

func (s *memInstructorStore) Update(_ context.Context, instructor *models.Instructor) error {
	if _, ok := s.instructors[instructor.ID]; !ok {
		return apperrors.ErrInstructorNotFound
	}
	clone := *instructor
	clone.Areas = nil
	s.instructors[instructor.ID] = &clone
	return nil
}

func (s *memInstructorStore) ReplaceAreas(_ context.Context, instructorID int64, areaIDs []int64) error {
	s.areaLinks[instructorID] = append([]int64(nil), areaIDs...)
	return nil
}

func (s *memInstructorStore) CountCourses(_ context.Context, instructorID int64) (int64, error) {
	var count int64
	for _, course := range s.courseStore.courses {
		if course.InstructorID == instructorID {
			count++
		}
	}
	return count, nil
}

func (s *memInstructorStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.instructors[id]; !ok {
		return apperrors.ErrInstructorNotFound
	}
	delete(s.instructors, id)
	delete(s.areaLinks, id)
	return nil
}

type memCourseStore struct {
	courses map[int64]*models.Course
	nextID  int64
}

func (s *memCourseStore) Create(_ context.Context, course *models.Course) error {
	for _, c := range s.courses {
		if c.Name == course.Name {
			return apperrors.ErrCourseAlreadyExists
		}
	}
	s.nextID++
	course.ID = s.nextID
	clone := *course
	s.courses[course.ID] = &clone
	return nil
}

func (s *memCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	clone := *course
	return &clone, nil
}

func (s *memCourseStore) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, c := range s.courses {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *memCourseStore) List(_ context.Context, offset, limit int) ([]*models.Course, error) {
	result := make([]*models.Course, 0, len(s.courses))
	for _, id := range memSortedKeys(s.courses) {
		clone := *s.courses[id]
		result = append(result, &clone)
	}
	return memWindow(result, offset, limit), nil
}

func (s *memCourseStore) ListByArea(_ context.Context, areaID int64, offset, limit int) ([]*models.Course, error) {
	result := make([]*models.Course, 0)
	for _, id := range memSortedKeys(s.courses) {
		course := s.courses[id]
		if course.AreaID == nil || *course.AreaID != areaID {
			continue
		}
		clone := *course
		result = append(result, &clone)
	}
	return memWindow(result, offset, limit), nil
}

func (s *memCourseStore) Update(_ context.Context, course *models.Course) error {
	if _, ok := s.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	clone := *course
	s.courses[course.ID] = &clone
	return nil
}

func (s *memCourseStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(s.courses, id)
	return nil
}

func memSortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func memWindow[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items
}

type testEnv struct {
	router      *gin.Engine
	roles       *memRoleStore
	users       *memUserStore
	areas       *memAreaStore
	instructors *memInstructorStore
	courses     *memCourseStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	roles := &memRoleStore{roles: map[int64]*models.Role{
		1: {ID: 1, Name: "admin"},
		2: {ID: 2, Name: "user"},
	}}
	users := &memUserStore{users: map[int64]*models.User{}}
	areas := &memAreaStore{areas: map[int64]*models.Area{}}
	courses := &memCourseStore{courses: map[int64]*models.Course{}}
	instructors := &memInstructorStore{
		instructors: map[int64]*models.Instructor{},
		areaLinks:   map[int64][]int64{},
		areaStore:   areas,
		courseStore: courses,
	}

	userController := controllers.NewUserController(services.NewUserService(users, roles))
	areaController := controllers.NewAreaController(services.NewAreaService(areas))
	instructorController := controllers.NewInstructorController(services.NewInstructorService(instructors, areas, users))
	courseController := controllers.NewCourseController(services.NewCourseService(courses, instructors, areas))

	router := gin.New()
	routes.SetupRouter(router, userController, areaController, instructorController, courseController)

	return &testEnv{
		router:      router,
		roles:       roles,
		users:       users,
		areas:       areas,
		instructors: instructors,
		courses:     courses,
	}
}

func (e *testEnv) doJSON(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// doMultipart posts a multipart form with string fields and file fields.
func (e *testEnv) doMultipart(t *testing.T, path string, fields map[string][]string, files map[string][]byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for field, values := range fields {
		for _, value := range values {
			require.NoError(t, writer.WriteField(field, value))
		}
	}
	for field, content := range files {
		part, err := writer.CreateFormFile(field, field+".bin")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the "data" field of the success envelope into out.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Data)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

// errorMessage extracts the message of the error envelope.
func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Error.Message
}
