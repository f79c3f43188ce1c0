package task

import (
	"strings"
	"time"
)

type TaskOption func(*Task)

func WithTitle(title string) TaskOption {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}
	return func(task *Task) {
		task.Title = title
	}
}

func WithDescription(description string) TaskOption {
	return func(task *Task) {
		task.Description = strings.TrimSpace(description)
	}
}

func WithStatus(status Status) TaskOption {
	return func(task *Task) {
		task.ApplyStatus(status, time.Now())
	}
}

func WithType(taskType Type) TaskOption {
	return func(task *Task) {
		task.Type = taskType
	}
}
