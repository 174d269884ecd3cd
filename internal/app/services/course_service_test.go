package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursecat/api/internal/app/models"
	"github.com/coursecat/api/internal/app/models/dto"
	"github.com/coursecat/api/internal/pkg/apperrors"
)

func newCourseFixture(t *testing.T) (*CourseService, *fakeCourseStore, int64) {
	t.Helper()
	ctx := context.Background()

	areaStore := newFakeAreaStore()
	for _, name := range []string{"Programming", "Design"} {
		require.NoError(t, areaStore.Create(ctx, &models.Area{Name: name}))
	}
	instructorStore := newFakeInstructorStore(areaStore)
	instructor := models.Instructor{Name: "Ada"}
	require.NoError(t, instructorStore.CreateWithAreas(ctx, &instructor, nil))

	courseStore := newFakeCourseStore()
	svc := NewCourseService(courseStore, instructorStore, areaStore)
	return svc, courseStore, instructor.ID
}

func TestCourseService_CreateCourse(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, _, instructorID := newCourseFixture(t)

		areaID := int64(1)
		course := models.Course{Name: "Go Basics", InstructorID: instructorID, AreaID: &areaID}
		require.NoError(t, svc.CreateCourse(ctx, &course))
		assert.NotZero(t, course.ID)
	})

	t.Run("unknown instructor is rejected", func(t *testing.T) {
		svc, _, _ := newCourseFixture(t)

		course := models.Course{Name: "Go Basics", InstructorID: 404}
		err := svc.CreateCourse(ctx, &course)
		require.ErrorIs(t, err, apperrors.ErrBadRequest)
		assert.Equal(t, "Instructor not found", err.Error())
	})

	t.Run("unknown area is rejected", func(t *testing.T) {
		svc, _, instructorID := newCourseFixture(t)

		areaID := int64(99)
		course := models.Course{Name: "Go Basics", InstructorID: instructorID, AreaID: &areaID}
		err := svc.CreateCourse(ctx, &course)
		require.ErrorIs(t, err, apperrors.ErrBadRequest)
		assert.Equal(t, "Area not found", err.Error())
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		svc, _, instructorID := newCourseFixture(t)

		require.NoError(t, svc.CreateCourse(ctx, &models.Course{Name: "Go Basics", InstructorID: instructorID}))
		err := svc.CreateCourse(ctx, &models.Course{Name: "Go Basics", InstructorID: instructorID})
		assert.ErrorIs(t, err, apperrors.ErrCourseAlreadyExists)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		svc, _, instructorID := newCourseFixture(t)

		err := svc.CreateCourse(ctx, &models.Course{Name: " ", InstructorID: instructorID})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestCourseService_GetCoursesByArea(t *testing.T) {
	ctx := context.Background()
	svc, _, instructorID := newCourseFixture(t)

	areaOne, areaTwo := int64(1), int64(2)
	require.NoError(t, svc.CreateCourse(ctx, &models.Course{Name: "Go Basics", InstructorID: instructorID, AreaID: &areaOne}))
	require.NoError(t, svc.CreateCourse(ctx, &models.Course{Name: "UI Design", InstructorID: instructorID, AreaID: &areaTwo}))
	require.NoError(t, svc.CreateCourse(ctx, &models.Course{Name: "Go Advanced", InstructorID: instructorID, AreaID: &areaOne}))

	t.Run("filters by area in id order", func(t *testing.T) {
		courses, err := svc.GetCoursesByArea(ctx, areaOne, 0, 10)
		require.NoError(t, err)
		require.Len(t, courses, 2)
		assert.Equal(t, "Go Basics", courses[0].Name)
		assert.Equal(t, "Go Advanced", courses[1].Name)
	})

	t.Run("unknown area yields empty list", func(t *testing.T) {
		courses, err := svc.GetCoursesByArea(ctx, 999, 0, 10)
		require.NoError(t, err)
		assert.Empty(t, courses)
	})
}

func TestCourseService_UpdateCourse(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*CourseService, *fakeCourseStore, int64, int64) {
		t.Helper()
		svc, store, instructorID := newCourseFixture(t)
		course := models.Course{Name: "Go Basics", Description: "Intro", InstructorID: instructorID}
		require.NoError(t, svc.CreateCourse(ctx, &course))
		return svc, store, course.ID, instructorID
	}

	t.Run("partial update keeps omitted fields", func(t *testing.T) {
		svc, _, id, instructorID := setup(t)

		desc := "Updated description"
		updated, err := svc.UpdateCourse(ctx, id, &dto.UpdateCourseRequest{Description: &desc})
		require.NoError(t, err)

		assert.Equal(t, "Go Basics", updated.Name)
		assert.Equal(t, "Updated description", updated.Description)
		assert.Equal(t, instructorID, updated.InstructorID)
	})

	t.Run("empty patch changes nothing", func(t *testing.T) {
		svc, _, id, _ := setup(t)

		updated, err := svc.UpdateCourse(ctx, id, &dto.UpdateCourseRequest{})
		require.NoError(t, err)
		assert.Equal(t, "Go Basics", updated.Name)
		assert.Equal(t, "Intro", updated.Description)
	})

	t.Run("changing instructor revalidates the reference", func(t *testing.T) {
		svc, _, id, _ := setup(t)

		badInstructor := int64(404)
		_, err := svc.UpdateCourse(ctx, id, &dto.UpdateCourseRequest{InstructorID: &badInstructor})
		require.ErrorIs(t, err, apperrors.ErrBadRequest)
		assert.Equal(t, "Instructor not found", err.Error())
	})

	t.Run("changing area revalidates the reference", func(t *testing.T) {
		svc, _, id, _ := setup(t)

		badArea := int64(99)
		_, err := svc.UpdateCourse(ctx, id, &dto.UpdateCourseRequest{AreaID: &badArea})
		require.ErrorIs(t, err, apperrors.ErrBadRequest)
		assert.Equal(t, "Area not found", err.Error())
	})

	t.Run("renaming onto an existing course is rejected", func(t *testing.T) {
		svc, _, id, instructorID := setup(t)
		require.NoError(t, svc.CreateCourse(ctx, &models.Course{Name: "UI Design", InstructorID: instructorID}))

		name := "UI Design"
		_, err := svc.UpdateCourse(ctx, id, &dto.UpdateCourseRequest{Name: &name})
		assert.ErrorIs(t, err, apperrors.ErrCourseAlreadyExists)
	})

	t.Run("unknown course", func(t *testing.T) {
		svc, _, _, _ := setup(t)

		_, err := svc.UpdateCourse(ctx, 404, &dto.UpdateCourseRequest{})
		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})
}

func TestCourseService_DeleteCourse(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, store, instructorID := newCourseFixture(t)
		course := models.Course{Name: "Go Basics", InstructorID: instructorID}
		require.NoError(t, svc.CreateCourse(ctx, &course))

		require.NoError(t, svc.DeleteCourse(ctx, course.ID))
		assert.Empty(t, store.courses)
	})

	t.Run("unknown course", func(t *testing.T) {
		svc, _, _ := newCourseFixture(t)

		err := svc.DeleteCourse(ctx, 404)
		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})
}
