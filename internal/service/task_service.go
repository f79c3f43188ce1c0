package service

// здесь живёт машина состояний задачи и проверка прав владельца

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"kanbanTracker/internal/logger"
	"kanbanTracker/internal/models/task"
	repo "kanbanTracker/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TaskService struct {
	repo TaskRepository
}

func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{
		repo: repo,
	}
}

func (s *TaskService) HealthCheck(ctx context.Context) error {
	if err := s.repo.HealthCheck(ctx); err != nil {
		return fmt.Errorf("проверка здоровья сервиса: %w", err)
	}
	return nil
}

type CreateTaskInput struct {
	Title       string
	Description string
	Status      string // пустая строка - статус по умолчанию todo
	Type        string // пустая строка - тип по умолчанию other
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
	Type        *string
}

func (s *TaskService) CreateTask(ctx context.Context, ownerID uuid.UUID, input CreateTaskInput) (*task.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, NewValidationError("title", "error.empty_title")
	}

	status := task.StatusTodo
	if input.Status != "" {
		parsed, ok := task.ParseStatus(input.Status)
		if !ok {
			return nil, NewValidationError("status", "error.invalid_status")
		}
		status = parsed
	}

	taskType := task.TypeOther
	if input.Type != "" {
		parsed, ok := task.ParseType(input.Type)
		if !ok {
			return nil, NewValidationError("type", "error.invalid_task_type")
		}
		taskType = parsed
	}

	now := time.Now()
	t := &task.Task{
		ID:          uuid.New(),
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Status:      task.StatusTodo,
		Type:        taskType,
		CreatedAt:   now,
		OwnerID:     ownerID,
	}
	// создание сразу в done тоже проставляет completed_at
	if status != task.StatusTodo {
		t.ApplyStatus(status, now)
	}

	if err := s.repo.CreateTask(ctx, t); err != nil {
		return nil, fmt.Errorf("создание задачи: %w", err)
	}

	logger.Info("Service: Задача создана",
		zap.String("task_id", t.ID.String()),
		zap.String("owner_id", ownerID.String()))
	return t, nil
}

// UpdateTask применяет частичное обновление: сначала проверяются все
// переданные поля, мутация происходит только если валидны все разом
func (s *TaskService) UpdateTask(ctx context.Context, ownerID, id uuid.UUID, input UpdateTaskInput) (*task.Task, error) {
	options := []task.TaskOption{}

	if input.Title != nil {
		opt := task.WithTitle(*input.Title)
		if opt == nil {
			return nil, NewValidationError("title", "error.empty_title")
		}
		options = append(options, opt)
	}

	if input.Description != nil {
		options = append(options, task.WithDescription(*input.Description))
	}

	if input.Status != nil {
		status, ok := task.ParseStatus(*input.Status)
		if !ok {
			return nil, NewValidationError("status", "error.invalid_status")
		}
		options = append(options, task.WithStatus(status))
	}

	if input.Type != nil {
		taskType, ok := task.ParseType(*input.Type)
		if !ok {
			return nil, NewValidationError("type", "error.invalid_task_type")
		}
		options = append(options, task.WithType(taskType))
	}

	t, err := s.repo.GetTaskByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			logger.Info("Service: Задача не найдена", zap.String("target_id", id.String()))
			return nil, NewNotFound("task", id.String())
		}
		return nil, fmt.Errorf("получение задачи: %w", err)
	}

	for _, opt := range options {
		opt(t)
	}

	if err := s.repo.UpdateTask(ctx, t); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewNotFound("task", id.String())
		}
		return nil, fmt.Errorf("обновление задачи: %w", err)
	}

	return t, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.DeleteTask(ctx, id, ownerID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			logger.Info("Service: Задача не найдена", zap.String("target_id", id.String()))
			return NewNotFound("task", id.String())
		}
		return fmt.Errorf("удаление задачи: %w", err)
	}

	logger.Info("Service: Задача удалена", zap.String("task_id", id.String()))
	return nil
}

func (s *TaskService) GetTask(ctx context.Context, ownerID, id uuid.UUID) (*task.Task, error) {
	t, err := s.repo.GetTaskByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			logger.Info("Service: Задача не найдена", zap.String("target_id", id.String()))
			return nil, NewNotFound("task", id.String())
		}
		return nil, fmt.Errorf("получение задачи: %w", err)
	}
	return t, nil
}

func (s *TaskService) GetUserTasks(ctx context.Context, ownerID uuid.UUID) ([]*task.Task, error) {
	tasks, err := s.repo.GetTasksByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("получение задач: %w", err)
	}
	return tasks, nil
}
