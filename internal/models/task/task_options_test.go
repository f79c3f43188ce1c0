package task_test

import (
	"testing"

	"kanbanTracker/internal/models/task"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTaskOptions тестирует опции частичного обновления
func TestTaskOptions(t *testing.T) {
	t.Run("WithTitle trims and rejects empty", func(t *testing.T) {
		tk := &task.Task{Title: "Old"}

		opt := task.WithTitle("  New  ")
		require.NotNil(t, opt)
		opt(tk)
		assert.Equal(t, "New", tk.Title)

		assert.Nil(t, task.WithTitle("   "))
	})

	t.Run("WithStatus keeps completed_at consistent", func(t *testing.T) {
		tk := &task.Task{Status: task.StatusTodo}

		task.WithStatus(task.StatusDone)(tk)
		assert.NotNil(t, tk.CompletedAt)

		task.WithStatus(task.StatusPending)(tk)
		assert.Nil(t, tk.CompletedAt)
	})

	t.Run("WithDescription and WithType", func(t *testing.T) {
		tk := &task.Task{}

		task.WithDescription("  описание  ")(tk)
		task.WithType(task.TypeRefactoring)(tk)

		assert.Equal(t, "описание", tk.Description)
		assert.Equal(t, task.TypeRefactoring, tk.Type)
	})
}
