package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"

	"github.com/ivanausecha/tidytask-backend/db"
	"github.com/ivanausecha/tidytask-backend/internal/task/domain"
)

func setupTestRepo(t *testing.T) *MongoTaskRepository {
	t.Helper()
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate mongo container: %v", err)
		}
	})

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := db.NewMongoClient(ctx, uri)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	return NewMongoTaskRepository(client.Database("tidytask_test"))
}

func insertTask(t *testing.T, repo *MongoTaskRepository, id, ownerID string, date time.Time) {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Millisecond)
	task := &domain.Task{
		ID:        id,
		OwnerID:   ownerID,
		Title:     "task " + id,
		Date:      date,
		Status:    "pending",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(context.Background(), task))
}

func TestMongoTaskRepository_OwnershipScoping(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	repo := setupTestRepo(t)

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	insertTask(t, repo, "t-1", "owner-1", date)

	t.Run("GetByID resolves for the owner", func(t *testing.T) {
		task, err := repo.GetByID(ctx, "t-1", "owner-1")
		require.NoError(t, err)
		require.NotNil(t, task)
		assert.Equal(t, "t-1", task.ID)
	})

	t.Run("GetByID misses for a different owner", func(t *testing.T) {
		task, err := repo.GetByID(ctx, "t-1", "intruder")
		require.NoError(t, err)
		assert.Nil(t, task)
	})

	t.Run("Delete by a different owner removes nothing", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, "t-1", "intruder")
		require.NoError(t, err)
		assert.False(t, deleted)

		task, err := repo.GetByID(ctx, "t-1", "owner-1")
		require.NoError(t, err)
		require.NotNil(t, task)
	})

	t.Run("Delete by the owner removes the task", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, "t-1", "owner-1")
		require.NoError(t, err)
		assert.True(t, deleted)

		task, err := repo.GetByID(ctx, "t-1", "owner-1")
		require.NoError(t, err)
		assert.Nil(t, task)
	})
}

func TestMongoTaskRepository_OwnerQueries(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	repo := setupTestRepo(t)

	insertTask(t, repo, "t-later", "owner-1", time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC))
	insertTask(t, repo, "t-sooner", "owner-1", time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC))
	insertTask(t, repo, "t-other", "owner-2", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	t.Run("GetByOwner returns only the owner's tasks ordered by date", func(t *testing.T) {
		tasks, err := repo.GetByOwner(ctx, "owner-1")
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, "t-sooner", tasks[0].ID)
		assert.Equal(t, "t-later", tasks[1].ID)
	})

	t.Run("Update only touches the named fields", func(t *testing.T) {
		task, err := repo.GetByID(ctx, "t-sooner", "owner-1")
		require.NoError(t, err)
		require.NotNil(t, task)

		task.Status = "done"
		task.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)
		require.NoError(t, repo.Update(ctx, task))

		stored, err := repo.GetByID(ctx, "t-sooner", "owner-1")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "done", stored.Status)
		assert.Equal(t, "task t-sooner", stored.Title)
	})

	t.Run("DeleteByOwner removes every task of that owner and nothing else", func(t *testing.T) {
		require.NoError(t, repo.DeleteByOwner(ctx, "owner-1"))

		tasks, err := repo.GetByOwner(ctx, "owner-1")
		require.NoError(t, err)
		assert.Empty(t, tasks)

		others, err := repo.GetByOwner(ctx, "owner-2")
		require.NoError(t, err)
		assert.Len(t, others, 1)
	})
}
