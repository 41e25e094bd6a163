package interpreter

import (
	"context"
	"taskcli/internal/models/task"

	"github.com/google/uuid"
)

type TaskService interface {
	CreateTask(context.Context, string) (*task.Task, error)
	UpdateDescription(context.Context, uuid.UUID, string) error
	ChangeStatus(context.Context, uuid.UUID, task.Status) error
	DeleteTask(context.Context, uuid.UUID) error
	ListTasks(context.Context, *task.Status) ([]*task.Task, error)
}
