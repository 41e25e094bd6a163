package dto

import (
	"taskcli/internal/models/task"
	"time"
)

const TimeLayout = "2006-01-02 15:04:05"

// TaskRow - строка таблицы вывода, все поля уже отформатированы
type TaskRow struct {
	ID          string
	Description string
	Status      string
	CreatedAt   string
	UpdatedAt   string
}

func FromTask(t *task.Task) TaskRow {
	return TaskRow{
		ID:          t.ID.String(),
		Description: t.Description,
		Status:      t.Status.Label(),
		CreatedAt:   formatTime(t.CreatedAt),
		UpdatedAt:   formatTime(t.UpdatedAt),
	}
}

func FromTaskList(tasks []*task.Task) []TaskRow {
	result := make([]TaskRow, len(tasks))
	for i, t := range tasks {
		result[i] = FromTask(t)
	}
	return result
}

func formatTime(t time.Time) string {
	return t.Local().Format(TimeLayout)
}
