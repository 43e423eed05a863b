package service

//go:generate mockgen -destination=../../mocks/mock_task_repository.go -package=mocks github.com/ivanausecha/tidytask-backend/internal/task/domain TaskRepository

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"

	autherror "github.com/ivanausecha/tidytask-backend/internal/errors"
	"github.com/ivanausecha/tidytask-backend/internal/task/domain"
	"github.com/ivanausecha/tidytask-backend/internal/task/dto"
	"github.com/ivanausecha/tidytask-backend/pkg/constant"
)

// timePattern is the strict 24-hour HH:MM shape: both fields zero-padded,
// hours 00-23, minutes 00-59.
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type TaskService struct {
	repo domain.TaskRepository
}

func NewTaskService(repo domain.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) Create(ctx context.Context, ownerID string, input dto.CreateTaskInput) (*dto.TaskOutput, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, err
	}
	if err := validateTime(input.Time); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = constant.TaskStatusPending
	}
	if err := validateStatus(status); err != nil {
		return nil, err
	}

	now := time.Now()
	task := &domain.Task{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Title:     input.Title,
		Detail:    input.Detail,
		Date:      date,
		Time:      input.Time,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	return dto.NewTaskOutput(task), nil
}

func (s *TaskService) List(ctx context.Context, ownerID string) ([]*dto.TaskOutput, error) {
	tasks, err := s.repo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.TaskOutput, 0, len(tasks))
	for i := range tasks {
		out = append(out, dto.NewTaskOutput(&tasks[i]))
	}
	return out, nil
}

func (s *TaskService) Get(ctx context.Context, ownerID, taskID string) (*dto.TaskOutput, error) {
	task, err := s.repo.GetByID(ctx, taskID, ownerID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, autherror.ErrTaskNotFound
	}

	return dto.NewTaskOutput(task), nil
}

// Update applies a partial update to a task the caller owns. A task that does
// not exist and a task owned by someone else fail the same way.
func (s *TaskService) Update(ctx context.Context, ownerID, taskID string, input dto.UpdateTaskInput) (*dto.TaskOutput, error) {
	task, err := s.repo.GetByID(ctx, taskID, ownerID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, autherror.ErrTaskNotFound
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Detail != nil {
		task.Detail = *input.Detail
	}
	if input.Date != nil {
		date, err := parseDate(*input.Date)
		if err != nil {
			return nil, err
		}
		task.Date = date
	}
	if input.Time != nil {
		if err := validateTime(*input.Time); err != nil {
			return nil, err
		}
		task.Time = *input.Time
	}
	if input.Status != nil {
		if err := validateStatus(*input.Status); err != nil {
			return nil, err
		}
		task.Status = *input.Status
	}
	task.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	return dto.NewTaskOutput(task), nil
}

func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) error {
	deleted, err := s.repo.Delete(ctx, taskID, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return autherror.ErrTaskNotFound
	}
	return nil
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(constant.TaskDateLayout, value)
	if err != nil {
		return time.Time{}, autherror.ErrInvalidDateFormat
	}
	return date, nil
}

// validateTime accepts the empty string as "no time of day".
func validateTime(value string) error {
	if value == "" {
		return nil
	}
	if !timePattern.MatchString(value) {
		return autherror.ErrInvalidTimeFormat
	}
	return nil
}

func validateStatus(value string) error {
	switch value {
	case constant.TaskStatusPending, constant.TaskStatusInProgress, constant.TaskStatusDone:
		return nil
	default:
		return autherror.ErrInvalidTaskStatus
	}
}
