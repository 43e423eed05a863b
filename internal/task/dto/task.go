package dto

import (
	"time"

	"github.com/ivanausecha/tidytask-backend/internal/task/domain"
	"github.com/ivanausecha/tidytask-backend/pkg/constant"
)

type CreateTaskInput struct {
	Title  string `json:"title" validate:"required"`
	Detail string `json:"detail"`
	Date   string `json:"date" validate:"required"`
	Time   string `json:"time"`
	Status string `json:"status" validate:"omitempty,oneof=pending in_progress done"`
}

// UpdateTaskInput is a partial update: nil fields are left untouched. An empty
// Time string clears the time-of-day.
type UpdateTaskInput struct {
	Title  *string `json:"title" validate:"omitempty,min=1"`
	Detail *string `json:"detail"`
	Date   *string `json:"date"`
	Time   *string `json:"time"`
	Status *string `json:"status" validate:"omitempty,oneof=pending in_progress done"`
}

type TaskOutput struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Title     string    `json:"title"`
	Detail    string    `json:"detail,omitempty"`
	Date      string    `json:"date"`
	Time      string    `json:"time,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewTaskOutput(t *domain.Task) *TaskOutput {
	return &TaskOutput{
		ID:        t.ID,
		OwnerID:   t.OwnerID,
		Title:     t.Title,
		Detail:    t.Detail,
		Date:      t.Date.Format(constant.TaskDateLayout),
		Time:      t.Time,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
