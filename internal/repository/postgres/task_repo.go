package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kanbanTracker/internal/logger"
	"kanbanTracker/internal/models/task"
	repo "kanbanTracker/internal/repository"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var taskColumns = []string{
	"id",
	"title",
	"description",
	"status",
	"type",
	"created_at",
	"completed_at",
	"owner_id",
}

func (s *Storage) CreateTask(ctx context.Context, t *task.Task) error {
	start := time.Now()

	query, args, err := s.builder.
		Insert("tasks").
		Columns(taskColumns...).
		Values(t.ID, t.Title, t.Description, t.Status, t.Type, t.CreatedAt, t.CompletedAt, t.OwnerID).
		ToSql()
	if err != nil {
		return fmt.Errorf("сборка запроса: %w", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		logger.Error("Repository: Не удалось добавить задачу", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("добавление задачи: %w", err)
	}

	if time.Since(start) > time.Millisecond*50 {
		logger.Warn("Repository: Медленный запрос", zap.Duration("ms", time.Since(start)))
	}
	return nil
}

// обновление строго в пределах владельца: чужая задача неотличима от отсутствующей
func (s *Storage) UpdateTask(ctx context.Context, t *task.Task) error {
	start := time.Now()

	query, args, err := s.builder.
		Update("tasks").
		Set("title", t.Title).
		Set("description", t.Description).
		Set("status", t.Status).
		Set("type", t.Type).
		Set("completed_at", t.CompletedAt).
		Where(squirrel.Eq{"id": t.ID, "owner_id": t.OwnerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("сборка запроса: %w", err)
	}

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		logger.Error("Repository: Не удалось обновить задачу", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("обновление задачи: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленная операция", zap.Duration("ms", time.Since(start)))
	}
	return nil
}

func (s *Storage) DeleteTask(ctx context.Context, id, ownerID uuid.UUID) error {
	start := time.Now()

	query, args, err := s.builder.
		Delete("tasks").
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("сборка запроса: %w", err)
	}

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		logger.Error("Repository: Не удалось удалить задачу", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("удаление задачи: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (s *Storage) GetTaskByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*task.Task, error) {
	start := time.Now()

	query, args, err := s.builder.
		Select(taskColumns...).
		From("tasks").
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("сборка запроса: %w", err)
	}

	t := &task.Task{}
	err = s.pool.QueryRow(ctx, query, args...).Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Status,
		&t.Type,
		&t.CreatedAt,
		&t.CompletedAt,
		&t.OwnerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		logger.Error("Repository: Не удалось получить задачу", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("получение задачи: %w", err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленный запрос", zap.Duration("ms", time.Since(start)))
	}
	return t, nil
}

func (s *Storage) GetTasksByOwner(ctx context.Context, ownerID uuid.UUID) ([]*task.Task, error) {
	start := time.Now()

	query, args, err := s.builder.
		Select(taskColumns...).
		From("tasks").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("сборка запроса: %w", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Error("Repository: Не удалось получить задачи", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("получение задач: %w", err)
	}
	defer rows.Close()

	tasks := []*task.Task{}
	for rows.Next() {
		t := &task.Task{}
		err := rows.Scan(
			&t.ID,
			&t.Title,
			&t.Description,
			&t.Status,
			&t.Type,
			&t.CreatedAt,
			&t.CompletedAt,
			&t.OwnerID,
		)
		if err != nil {
			logger.Warn("Repository: Ошибка сканирования задачи", zap.Error(err))
			continue
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		logger.Error("Repository: Ошибка итерации по строкам", err)
		return nil, fmt.Errorf("итерация по строкам: %w", err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленный запрос", zap.Duration("ms", time.Since(start)))
	}
	return tasks, nil
}

func (s *Storage) CountTasksByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status task.Status) (int, error) {
	query, args, err := s.builder.
		Select("COUNT(*)").
		From("tasks").
		Where(squirrel.Eq{"owner_id": ownerID, "status": status}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("сборка запроса: %w", err)
	}

	var count int
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		logger.Error("Repository: Не удалось посчитать задачи по статусу", err)
		return 0, fmt.Errorf("подсчёт задач по статусу: %w", err)
	}
	return count, nil
}

func (s *Storage) CountTasksByOwnerAndType(ctx context.Context, ownerID uuid.UUID, taskType task.Type) (int, error) {
	query, args, err := s.builder.
		Select("COUNT(*)").
		From("tasks").
		Where(squirrel.Eq{"owner_id": ownerID, "type": taskType}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("сборка запроса: %w", err)
	}

	var count int
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		logger.Error("Repository: Не удалось посчитать задачи по типу", err)
		return 0, fmt.Errorf("подсчёт задач по типу: %w", err)
	}
	return count, nil
}

func (s *Storage) CountTasksByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	query, args, err := s.builder.
		Select("COUNT(*)").
		From("tasks").
		Where(squirrel.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("сборка запроса: %w", err)
	}

	var count int
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		logger.Error("Repository: Не удалось посчитать задачи", err)
		return 0, fmt.Errorf("подсчёт задач: %w", err)
	}
	return count, nil
}
