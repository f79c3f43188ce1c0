package service

import (
	"context"
	"fmt"
	"math"

	"kanbanTracker/internal/models/task"

	"github.com/google/uuid"
)

// TaskStats - срез статистики, считается заново на каждый запрос
type TaskStats struct {
	Total          int               `json:"total_tasks"`
	Todo           int               `json:"todo_tasks"`
	Pending        int               `json:"pending_tasks"`
	Done           int               `json:"done_tasks"`
	CompletionRate float64           `json:"completion_rate"`
	ByType         map[task.Type]int `json:"by_type"`
}

func (s *TaskService) GetTaskStats(ctx context.Context, ownerID uuid.UUID) (*TaskStats, error) {
	total, err := s.repo.CountTasksByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("подсчёт задач: %w", err)
	}

	stats := &TaskStats{
		Total:  total,
		ByType: make(map[task.Type]int, len(task.AllTypes())),
	}

	for _, status := range task.AllStatuses() {
		count, err := s.repo.CountTasksByOwnerAndStatus(ctx, ownerID, status)
		if err != nil {
			return nil, fmt.Errorf("подсчёт задач по статусу %s: %w", status, err)
		}
		switch status {
		case task.StatusTodo:
			stats.Todo = count
		case task.StatusPending:
			stats.Pending = count
		case task.StatusDone:
			stats.Done = count
		}
	}

	// в карте типов присутствует каждый известный тип, даже с нулём
	for _, taskType := range task.AllTypes() {
		count, err := s.repo.CountTasksByOwnerAndType(ctx, ownerID, taskType)
		if err != nil {
			return nil, fmt.Errorf("подсчёт задач по типу %s: %w", taskType, err)
		}
		stats.ByType[taskType] = count
	}

	if total > 0 {
		stats.CompletionRate = math.Round(float64(stats.Done)/float64(total)*100*100) / 100
	}

	return stats, nil
}
