package service

import (
	"context"
	"taskcli/internal/models/task"

	"github.com/google/uuid"
)

type TaskRepository interface {
	HealthCheck(context.Context) error
	Add(context.Context, string) (*task.Task, error)
	GetByID(context.Context, uuid.UUID) (*task.Task, error)
	UpdateDescription(context.Context, uuid.UUID, string) error
	ChangeStatus(context.Context, uuid.UUID, task.Status) error
	Delete(context.Context, uuid.UUID) error
	List(context.Context, *task.Status) ([]*task.Task, error)
}
