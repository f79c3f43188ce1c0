package service

import (
	"context"

	"kanbanTracker/internal/models/task"

	"github.com/google/uuid"
)

type TaskRepository interface {
	HealthCheck(ctx context.Context) error
	CreateTask(ctx context.Context, t *task.Task) error
	UpdateTask(ctx context.Context, t *task.Task) error
	DeleteTask(ctx context.Context, id, ownerID uuid.UUID) error
	GetTaskByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*task.Task, error)
	GetTasksByOwner(ctx context.Context, ownerID uuid.UUID) ([]*task.Task, error)
	CountTasksByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
	CountTasksByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status task.Status) (int, error)
	CountTasksByOwnerAndType(ctx context.Context, ownerID uuid.UUID, taskType task.Type) (int, error)
}
