package inmemory

import (
	"context"
	"sync"
	"taskcli/internal/models/task"
	repo "taskcli/internal/repository"
	"time"

	"github.com/google/uuid"
)

// TaskStorage хранит задачи в порядке добавления.
// Наружу отдаются только копии, живые задачи остаются внутри.
type TaskStorage struct {
	storage map[uuid.UUID]*task.Task
	mtx     *sync.RWMutex
	ids     []uuid.UUID
}

func NewTaskStorage() *TaskStorage {
	return &TaskStorage{
		storage: make(map[uuid.UUID]*task.Task),
		mtx:     &sync.RWMutex{},
		ids:     []uuid.UUID{},
	}
}

func (s *TaskStorage) HealthCheck(ctx context.Context) error {
	return nil
}

func (s *TaskStorage) Len() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return len(s.ids)
}

func (s *TaskStorage) Contains(id uuid.UUID) bool {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	_, ok := s.storage[id]
	return ok
}

// Create добавляет задачу в конец последовательности
func (s *TaskStorage) Create(ctx context.Context, taskToCreate *task.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.storage[taskToCreate.ID]; ok {
		return repo.ErrAlreadyExists
	}

	s.storage[taskToCreate.ID] = taskToCreate.Clone()
	s.ids = append(s.ids, taskToCreate.ID)
	return nil
}

// Update применяет опции к задаче на месте, позиция в последовательности не меняется
func (s *TaskStorage) Update(ctx context.Context, id uuid.UUID, now time.Time, options ...task.TaskOption) (*task.Task, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	taskToUpdate, ok := s.storage[id]
	if !ok {
		return nil, repo.ErrNotFound
	}

	taskToUpdate.Apply(now, options...)
	return taskToUpdate.Clone(), nil
}

func (s *TaskStorage) GetByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	taskToGet, ok := s.storage[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return taskToGet.Clone(), nil
}

// Delete удаляет задачу и возвращает её последнее состояние
func (s *TaskStorage) Delete(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	taskToDelete, ok := s.storage[id]
	if !ok {
		return nil, repo.ErrNotFound
	}

	delete(s.storage, id)
	for ind, val := range s.ids {
		if val == id {
			s.ids = append(s.ids[:ind], s.ids[ind+1:]...)
			break
		}
	}
	return taskToDelete, nil
}

// List возвращает копии задач; filter == nil - все задачи
func (s *TaskStorage) List(ctx context.Context, filter *task.Status) []*task.Task {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := make([]*task.Task, 0, len(s.ids))
	for _, id := range s.ids {
		taskToGet := s.storage[id]
		if filter != nil && taskToGet.Status != *filter {
			continue
		}
		res = append(res, taskToGet.Clone())
	}
	return res
}
