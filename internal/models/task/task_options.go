package task

import (
	"time"
)

// TaskOption изменяет задачу; nil означает, что изменять нечего
type TaskOption func(*Task)

func WithDescription(description string) TaskOption {
	return func(task *Task) {
		task.Description = description
	}
}

func WithStatus(status Status) TaskOption {
	if !status.Valid() {
		return nil
	}
	return func(task *Task) {
		task.Status = status
	}
}

// Apply применяет опции и обновляет UpdatedAt.
// UpdatedAt строго растёт, даже если часы не сдвинулись с прошлой мутации.
func (t *Task) Apply(now time.Time, options ...TaskOption) {
	for _, opt := range options {
		if opt != nil {
			opt(t)
		}
	}

	if !now.After(t.UpdatedAt) {
		now = t.UpdatedAt.Add(time.Nanosecond)
	}
	t.UpdatedAt = now
}
