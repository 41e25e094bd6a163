package task

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Status string

const StatusTodo Status = "todo"
const StatusInProgress Status = "in_progress"
const StatusDone Status = "done"

var ErrInvalidStatus = errors.New("invalid status")

// New создаёт задачу в статусе todo, обе метки времени равны now
func New(id uuid.UUID, description string, now time.Time) *Task {
	return &Task{
		ID:          id,
		Description: description,
		Status:      StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Label - написание статуса в командной строке
func (s Status) Label() string {
	if s == StatusInProgress {
		return "in-progress"
	}
	return string(s)
}

// ParseStatus принимает все варианты написания статуса и приводит их к каноническому
func ParseStatus(raw string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))

	switch normalized {
	case "todo":
		return StatusTodo, nil
	case "in-progress", "in_progress", "in progress", "inprogress":
		return StatusInProgress, nil
	case "done":
		return StatusDone, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
}

func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// Validate проверяет инварианты задачи, прочитанной из хранилища
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return fmt.Errorf("empty id")
	}
	if !t.Status.Valid() {
		return fmt.Errorf("task %s: %w: %q", t.ID, ErrInvalidStatus, t.Status)
	}
	if t.UpdatedAt.Before(t.CreatedAt) {
		return fmt.Errorf("task %s: updated_at before created_at", t.ID)
	}
	return nil
}
