package handlers

import (
	"context"

	"kanbanTracker/internal/models/task"
	"kanbanTracker/internal/service"

	"github.com/google/uuid"
)

type TaskService interface {
	HealthCheck(ctx context.Context) error
	CreateTask(ctx context.Context, ownerID uuid.UUID, input service.CreateTaskInput) (*task.Task, error)
	UpdateTask(ctx context.Context, ownerID, id uuid.UUID, input service.UpdateTaskInput) (*task.Task, error)
	DeleteTask(ctx context.Context, ownerID, id uuid.UUID) error
	GetTask(ctx context.Context, ownerID, id uuid.UUID) (*task.Task, error)
	GetUserTasks(ctx context.Context, ownerID uuid.UUID) ([]*task.Task, error)
	GetTaskStats(ctx context.Context, ownerID uuid.UUID) (*service.TaskStats, error)
}
