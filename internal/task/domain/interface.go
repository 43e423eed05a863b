package domain

import "context"

// TaskRepository is the persistence boundary for tasks. GetByID returns
// (nil, nil) and Delete returns false when no task matches the (id, owner)
// pair, so a task owned by someone else looks exactly like a missing one.
type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	GetByOwner(ctx context.Context, ownerID string) ([]Task, error)
	GetByID(ctx context.Context, id, ownerID string) (*Task, error)
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, id, ownerID string) (bool, error)
	DeleteByOwner(ctx context.Context, ownerID string) error
}
