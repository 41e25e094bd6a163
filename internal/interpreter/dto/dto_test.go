package dto_test

import (
	"testing"
	"time"

	"taskcli/internal/interpreter/dto"
	"taskcli/internal/models/task"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTask(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	tsk := task.New(uuid.New(), "buy milk", created)
	tsk.Status = task.StatusInProgress
	tsk.UpdatedAt = created.Add(90 * time.Second)

	row := dto.FromTask(tsk)

	assert.Equal(t, tsk.ID.String(), row.ID)
	assert.Equal(t, "buy milk", row.Description)
	assert.Equal(t, "in-progress", row.Status)
	assert.Equal(t, created.Local().Format(dto.TimeLayout), row.CreatedAt)
	assert.Equal(t, created.Add(90*time.Second).Local().Format(dto.TimeLayout), row.UpdatedAt)
}

func TestFromTaskList(t *testing.T) {
	now := time.Now()
	tasks := []*task.Task{
		task.New(uuid.New(), "a", now),
		task.New(uuid.New(), "b", now),
	}

	rows := dto.FromTaskList(tasks)
	require.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0].Description)
	assert.Equal(t, "b", rows[1].Description)
	assert.Equal(t, "todo", rows[1].Status)

	assert.Empty(t, dto.FromTaskList(nil))
}
