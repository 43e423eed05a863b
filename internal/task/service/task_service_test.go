package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	autherror "github.com/ivanausecha/tidytask-backend/internal/errors"
	"github.com/ivanausecha/tidytask-backend/internal/mocks"
	"github.com/ivanausecha/tidytask-backend/internal/task/domain"
	"github.com/ivanausecha/tidytask-backend/internal/task/dto"
)

func newTestTaskService(t *testing.T) (*TaskService, *mocks.MockTaskRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockTaskRepository(ctrl)
	return NewTaskService(repo), repo
}

func strPtr(s string) *string { return &s }

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo := newTestTaskService(t)

		var created *domain.Task
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, task *domain.Task) error {
				created = task
				return nil
			})

		out, err := svc.Create(ctx, "owner-1", dto.CreateTaskInput{
			Title:  "Buy groceries",
			Detail: "Milk and eggs",
			Date:   "2026-09-15",
			Time:   "14:30",
			Status: "in_progress",
		})
		require.NoError(t, err)

		assert.Equal(t, "owner-1", out.OwnerID)
		assert.Equal(t, "Buy groceries", out.Title)
		assert.Equal(t, "2026-09-15", out.Date)
		assert.Equal(t, "14:30", out.Time)
		assert.Equal(t, "in_progress", out.Status)

		require.NotNil(t, created)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), created.Date)
	})

	t.Run("status defaults to pending", func(t *testing.T) {
		svc, repo := newTestTaskService(t)

		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		out, err := svc.Create(ctx, "owner-1", dto.CreateTaskInput{
			Title: "Buy groceries",
			Date:  "2026-09-15",
		})
		require.NoError(t, err)
		assert.Equal(t, "pending", out.Status)
		assert.Empty(t, out.Time)
	})

	t.Run("time of day validation", func(t *testing.T) {
		valid := []string{"00:00", "09:05", "14:30", "19:59", "20:00", "23:59"}
		invalid := []string{"24:00", "23:60", "9:05", "14:3", "14:300", "1430", "14-30", "noon", "14:30:00"}

		for _, value := range valid {
			t.Run("accepts "+value, func(t *testing.T) {
				svc, repo := newTestTaskService(t)
				repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

				_, err := svc.Create(ctx, "owner-1", dto.CreateTaskInput{
					Title: "t", Date: "2026-09-15", Time: value,
				})
				assert.NoError(t, err)
			})
		}

		for _, value := range invalid {
			t.Run("rejects "+value, func(t *testing.T) {
				svc, _ := newTestTaskService(t)

				out, err := svc.Create(ctx, "owner-1", dto.CreateTaskInput{
					Title: "t", Date: "2026-09-15", Time: value,
				})
				assert.Nil(t, out)
				assert.ErrorIs(t, err, autherror.ErrInvalidTimeFormat)
			})
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		svc, _ := newTestTaskService(t)

		out, err := svc.Create(ctx, "owner-1", dto.CreateTaskInput{
			Title: "t", Date: "2026-09-15", Status: "archived",
		})
		assert.Nil(t, out)
		assert.ErrorIs(t, err, autherror.ErrInvalidTaskStatus)
	})

	t.Run("invalid date", func(t *testing.T) {
		svc, _ := newTestTaskService(t)

		for _, value := range []string{"15-09-2026", "2026/09/15", "2026-13-01", "tomorrow", ""} {
			out, err := svc.Create(ctx, "owner-1", dto.CreateTaskInput{Title: "t", Date: value})
			assert.Nil(t, out)
			assert.ErrorIs(t, err, autherror.ErrInvalidDateFormat)
		}
	})
}

func TestTaskService_List(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestTaskService(t)

	repo.EXPECT().GetByOwner(ctx, "owner-1").Return([]domain.Task{
		{ID: "t-1", OwnerID: "owner-1", Title: "First", Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), Status: "pending"},
		{ID: "t-2", OwnerID: "owner-1", Title: "Second", Date: time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC), Status: "done"},
	}, nil)

	out, err := svc.List(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "t-1", out[0].ID)
	assert.Equal(t, "2026-09-15", out[0].Date)
	assert.Equal(t, "t-2", out[1].ID)
}

func TestTaskService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo := newTestTaskService(t)

		repo.EXPECT().GetByID(ctx, "t-1", "owner-1").Return(&domain.Task{
			ID: "t-1", OwnerID: "owner-1", Title: "First",
			Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), Status: "pending",
		}, nil)

		out, err := svc.Get(ctx, "owner-1", "t-1")
		require.NoError(t, err)
		assert.Equal(t, "First", out.Title)
	})

	t.Run("missing and foreign tasks are indistinguishable", func(t *testing.T) {
		svc, repo := newTestTaskService(t)

		// The repository filters by owner, so a task owned by someone else
		// comes back as no match.
		repo.EXPECT().GetByID(ctx, "t-1", "intruder").Return(nil, nil)

		out, err := svc.Get(ctx, "intruder", "t-1")
		assert.Nil(t, out)
		assert.ErrorIs(t, err, autherror.ErrTaskNotFound)
	})
}

func TestTaskService_Update(t *testing.T) {
	ctx := context.Background()

	existing := func() *domain.Task {
		return &domain.Task{
			ID:      "t-1",
			OwnerID: "owner-1",
			Title:   "Original",
			Detail:  "Original detail",
			Date:    time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			Time:    "14:30",
			Status:  "pending",
		}
	}

	t.Run("partial update leaves other fields untouched", func(t *testing.T) {
		svc, repo := newTestTaskService(t)

		repo.EXPECT().GetByID(ctx, "t-1", "owner-1").Return(existing(), nil)

		var updated *domain.Task
		repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, task *domain.Task) error {
				updated = task
				return nil
			})

		out, err := svc.Update(ctx, "owner-1", "t-1", dto.UpdateTaskInput{
			Status: strPtr("done"),
		})
		require.NoError(t, err)

		assert.Equal(t, "done", out.Status)
		assert.Equal(t, "Original", out.Title)
		assert.Equal(t, "2026-09-15", out.Date)
		assert.Equal(t, "14:30", out.Time)
		require.NotNil(t, updated)
		assert.Equal(t, "Original detail", updated.Detail)
	})

	t.Run("empty time string clears the time of day", func(t *testing.T) {
		svc, repo := newTestTaskService(t)

		repo.EXPECT().GetByID(ctx, "t-1", "owner-1").Return(existing(), nil)
		repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		out, err := svc.Update(ctx, "owner-1", "t-1", dto.UpdateTaskInput{
			Time: strPtr(""),
		})
		require.NoError(t, err)
		assert.Empty(t, out.Time)
	})

	t.Run("invalid new time is rejected before the write", func(t *testing.T) {
		svc, repo := newTestTaskService(t)

		repo.EXPECT().GetByID(ctx, "t-1", "owner-1").Return(existing(), nil)

		out, err := svc.Update(ctx, "owner-1", "t-1", dto.UpdateTaskInput{
			Time: strPtr("25:00"),
		})
		assert.Nil(t, out)
		assert.ErrorIs(t, err, autherror.ErrInvalidTimeFormat)
	})

	t.Run("invalid new date is rejected before the write", func(t *testing.T) {
		svc, repo := newTestTaskService(t)

		repo.EXPECT().GetByID(ctx, "t-1", "owner-1").Return(existing(), nil)

		out, err := svc.Update(ctx, "owner-1", "t-1", dto.UpdateTaskInput{
			Date: strPtr("15/09/2026"),
		})
		assert.Nil(t, out)
		assert.ErrorIs(t, err, autherror.ErrInvalidDateFormat)
	})

	t.Run("unknown new status is rejected before the write", func(t *testing.T) {
		svc, repo := newTestTaskService(t)

		repo.EXPECT().GetByID(ctx, "t-1", "owner-1").Return(existing(), nil)

		out, err := svc.Update(ctx, "owner-1", "t-1", dto.UpdateTaskInput{
			Status: strPtr("archived"),
		})
		assert.Nil(t, out)
		assert.ErrorIs(t, err, autherror.ErrInvalidTaskStatus)
	})

	t.Run("task not found", func(t *testing.T) {
		svc, repo := newTestTaskService(t)

		repo.EXPECT().GetByID(ctx, "ghost", "owner-1").Return(nil, nil)

		out, err := svc.Update(ctx, "owner-1", "ghost", dto.UpdateTaskInput{Title: strPtr("x")})
		assert.Nil(t, out)
		assert.ErrorIs(t, err, autherror.ErrTaskNotFound)
	})
}

func TestTaskService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo := newTestTaskService(t)

		repo.EXPECT().Delete(ctx, "t-1", "owner-1").Return(true, nil)

		assert.NoError(t, svc.Delete(ctx, "owner-1", "t-1"))
	})

	t.Run("nothing deleted means not found", func(t *testing.T) {
		svc, repo := newTestTaskService(t)

		repo.EXPECT().Delete(ctx, "ghost", "owner-1").Return(false, nil)

		assert.ErrorIs(t, svc.Delete(ctx, "owner-1", "ghost"), autherror.ErrTaskNotFound)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, repo := newTestTaskService(t)

		repo.EXPECT().Delete(ctx, "t-1", "owner-1").Return(false, errors.New("db down"))

		assert.EqualError(t, svc.Delete(ctx, "owner-1", "t-1"), "db down")
	})
}
