package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"taskcli/internal/logger"
	"taskcli/internal/models/task"
	rep "taskcli/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// здесь происходит проверка ошибок бизнес-логики

const resourceTask = "task"

type TaskService struct {
	repo TaskRepository
}

func NewTaskService(repo TaskRepository) TaskService {
	return TaskService{
		repo: repo,
	}
}

func (s *TaskService) HealthCheck(ctx context.Context) error {
	if err := s.repo.HealthCheck(ctx); err != nil {
		return fmt.Errorf("service health check: %w", err)
	}
	return nil
}

func (s *TaskService) CreateTask(ctx context.Context, description string) (*task.Task, error) {
	if strings.TrimSpace(description) == "" {
		logger.Warn("Service: Пустое описание задачи")
		return nil, NewValidationError("description", "must not be empty")
	}

	created, err := s.repo.Add(ctx, description)
	if err != nil {
		return nil, s.classify(err, "add", uuid.Nil)
	}

	logger.Info("Service: Задача создана", zap.String("task_id", created.ID.String()))
	return created, nil
}

func (s *TaskService) GetTaskByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.classify(err, "get", id)
	}
	return found, nil
}

func (s *TaskService) UpdateDescription(ctx context.Context, id uuid.UUID, description string) error {
	if strings.TrimSpace(description) == "" {
		logger.Warn("Service: Пустое описание задачи", zap.String("task_id", id.String()))
		return NewValidationError("description", "must not be empty")
	}

	if err := s.repo.UpdateDescription(ctx, id, description); err != nil {
		return s.classify(err, "update", id)
	}
	return nil
}

func (s *TaskService) ChangeStatus(ctx context.Context, id uuid.UUID, status task.Status) error {
	if !status.Valid() {
		return NewValidationError("status", fmt.Sprintf("%q is not one of todo, in-progress, done", status))
	}

	if err := s.repo.ChangeStatus(ctx, id, status); err != nil {
		return s.classify(err, "status change", id)
	}
	return nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.classify(err, "delete", id)
	}
	return nil
}

func (s *TaskService) ListTasks(ctx context.Context, filter *task.Status) ([]*task.Task, error) {
	tasks, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, s.classify(err, "list", uuid.Nil)
	}
	return tasks, nil
}

// classify переводит ошибки хранилища в BusinessError
func (s *TaskService) classify(err error, operation string, id uuid.UUID) error {
	switch {
	case errors.Is(err, rep.ErrNotFound):
		logger.Info("Service: Задача не найдена", zap.String("target_id", id.String()))
		return NewNotFound(resourceTask, id.String(), err)
	case errors.Is(err, rep.ErrPersistence):
		logger.Error("Service: Ошибка сохранения", err, zap.String("operation", operation))
		return NewPersistenceError(operation, err)
	case errors.Is(err, task.ErrInvalidStatus):
		return NewValidationError("status", err.Error())
	}

	logger.Error("Service: Неизвестная ошибка хранилища", err, zap.String("operation", operation))
	return fmt.Errorf("%s: %w", operation, err)
}
