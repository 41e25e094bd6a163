package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"taskcli/internal/logger"
	"taskcli/internal/models/task"
	repo "taskcli/internal/repository"
	"taskcli/internal/repository/task/inmemory"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultPath = "tasks.json"

const maxIDAttempts = 10

// Storage - авторитетное хранилище задач.
// После каждой успешной мутации файл полностью перезаписывается.
type Storage struct {
	path  string
	tasks *inmemory.TaskStorage
	mtx   sync.Mutex
	now   func() time.Time
	newID func() uuid.UUID
}

type Option func(*Storage)

func WithClock(now func() time.Time) Option {
	return func(s *Storage) {
		s.now = now
	}
}

func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(s *Storage) {
		s.newID = gen
	}
}

// New открывает хранилище и читает файл.
// Повреждённый файл - фатальная ошибка (ErrCorruptFile), пустым хранилище не становится.
func New(ctx context.Context, path string, opts ...Option) (*Storage, error) {
	if path == "" {
		path = DefaultPath
	}

	s := &Storage{
		path:  path,
		tasks: inmemory.NewTaskStorage(),
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.load(ctx); err != nil {
		logger.Error("Repository: Не удалось загрузить задачи", err, zap.String("path", path))
		return nil, err
	}

	logger.Info("Repository: Задачи загружены",
		zap.String("path", path),
		zap.Int("count", s.tasks.Len()))
	return s, nil
}

func (s *Storage) Path() string {
	return s.path
}

func (s *Storage) Len() int {
	return s.tasks.Len()
}

func (s *Storage) HealthCheck(ctx context.Context) error {
	dir := filepath.Dir(s.path)
	info, err := os.Stat(dir)
	if err == nil && !info.IsDir() {
		err = errors.New("not a directory")
	}
	if err != nil {
		logger.Error("Repository: Каталог хранилища недоступен", err)
		return fmt.Errorf("%w: directory %s: %w", repo.ErrPersistence, dir, err)
	}
	return s.tasks.HealthCheck(ctx)
}

func (s *Storage) load(ctx context.Context) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Info("Repository: Файл задач не найден, начинаем с пустого списка", zap.String("path", s.path))
			return nil
		}
		return fmt.Errorf("%w: read %s: %w", repo.ErrPersistence, s.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var loaded []*task.Task
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("%w: %s: %w", repo.ErrCorruptFile, s.path, err)
	}

	for i, t := range loaded {
		if t == nil {
			return fmt.Errorf("%w: %s: record %d is null", repo.ErrCorruptFile, s.path, i)
		}
		if err := t.Validate(); err != nil {
			return fmt.Errorf("%w: %s: record %d: %w", repo.ErrCorruptFile, s.path, i, err)
		}
		if err := s.tasks.Create(ctx, t); err != nil {
			return fmt.Errorf("%w: %s: record %d: %w", repo.ErrCorruptFile, s.path, i, err)
		}
	}
	return nil
}

// persist сериализует всю коллекцию и заменяет файл целиком
func (s *Storage) persist(ctx context.Context) error {
	start := time.Now()

	data, err := json.MarshalIndent(s.tasks.List(ctx, nil), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal tasks: %w", repo.ErrPersistence, err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(s.path, data, 0o644); err != nil {
		logger.Error("Repository: Не удалось записать файл задач", err, zap.String("path", s.path))
		return fmt.Errorf("%w: write %s: %w", repo.ErrPersistence, s.path, err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленная запись", zap.Duration("ms", time.Since(start)))
	}
	return nil
}

func (s *Storage) nextID() (uuid.UUID, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.newID()
		if id != uuid.Nil && !s.tasks.Contains(id) {
			return id, nil
		}
	}
	return uuid.Nil, fmt.Errorf("generate unique id: %w", repo.ErrAlreadyExists)
}

// Add не проверяет описание: пустое описание отсекается выше
func (s *Storage) Add(ctx context.Context, description string) (*task.Task, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	id, err := s.nextID()
	if err != nil {
		return nil, err
	}

	created := task.New(id, description, s.now())
	if err := s.tasks.Create(ctx, created); err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}

	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	logger.Info("Repository: Задача добавлена", zap.String("task_id", id.String()))
	return created.Clone(), nil
}

func (s *Storage) GetByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *Storage) UpdateDescription(ctx context.Context, id uuid.UUID, description string) error {
	return s.update(ctx, id, task.WithDescription(description))
}

func (s *Storage) ChangeStatus(ctx context.Context, id uuid.UUID, status task.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", task.ErrInvalidStatus, status)
	}
	return s.update(ctx, id, task.WithStatus(status))
}

func (s *Storage) update(ctx context.Context, id uuid.UUID, options ...task.TaskOption) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	updated, err := s.tasks.Update(ctx, id, s.now(), options...)
	if err != nil {
		return err
	}

	if err := s.persist(ctx); err != nil {
		return err
	}

	logger.Info("Repository: Задача обновлена",
		zap.String("task_id", id.String()),
		zap.String("status", string(updated.Status)))
	return nil
}

func (s *Storage) Delete(ctx context.Context, id uuid.UUID) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.persist(ctx); err != nil {
		return err
	}

	logger.Info("Repository: Задача удалена", zap.String("task_id", id.String()))
	return nil
}

// List возвращает снимок задач в порядке добавления
func (s *Storage) List(ctx context.Context, filter *task.Status) ([]*task.Task, error) {
	if filter != nil && !filter.Valid() {
		return nil, fmt.Errorf("%w: %q", task.ErrInvalidStatus, *filter)
	}
	return s.tasks.List(ctx, filter), nil
}
