package board

import (
	"context"
	"fmt"
	"sync"

	"kanbanTracker/internal/handlers/dto"
	"kanbanTracker/internal/logger"
	"kanbanTracker/internal/models/task"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Columns - три колонки доски. Карточки внутри колонки хранятся
// в порядке, который вернул сервер; перенесённые встают в конец колонки.
type Columns map[task.Status][]dto.TaskResponse

// Board держит локальный снимок задач пользователя и синхронизирует
// его с сервером. Перенос карточки применяется оптимистично: колонка
// меняется сразу, а при отказе сервера снимок целиком перечитывается,
// чтобы не гадать, в каком состоянии осталась задача. Создание,
// редактирование и удаление, наоборот, попадают в снимок только после
// подтверждения сервером.
type Board struct {
	mtx     sync.RWMutex
	client  Client
	columns Columns
}

func New(client Client) *Board {
	return &Board{
		client:  client,
		columns: emptyColumns(),
	}
}

// Load перечитывает все задачи с сервера и заменяет снимок целиком.
func (b *Board) Load(ctx context.Context) error {
	tasks, err := b.client.ListTasks(ctx)
	if err != nil {
		return fmt.Errorf("загрузка доски: %w", err)
	}

	b.mtx.Lock()
	b.columns = groupByStatus(tasks)
	b.mtx.Unlock()
	return nil
}

// Snapshot возвращает копию колонок. Мутации копии на доску не влияют.
func (b *Board) Snapshot() Columns {
	b.mtx.RLock()
	defer b.mtx.RUnlock()
	return cloneColumns(b.columns)
}

func (b *Board) Count() int {
	b.mtx.RLock()
	defer b.mtx.RUnlock()

	total := 0
	for _, cards := range b.columns {
		total += len(cards)
	}
	return total
}

// MoveTask переносит карточку в другую колонку. Локальный снимок
// меняется до ответа сервера. Если сервер отверг перенос, снимок
// перечитывается заново и возвращается исходная ошибка.
func (b *Board) MoveTask(ctx context.Context, id uuid.UUID, target task.Status) error {
	b.mtx.Lock()
	moved, ok := moveCard(b.columns, id, target)
	b.mtx.Unlock()

	if !ok {
		return fmt.Errorf("карточка %s не найдена на доске", id)
	}
	if !moved {
		// карточка уже в целевой колонке, серверу сообщать нечего
		return nil
	}

	status := string(target)
	updated, err := b.client.UpdateTask(ctx, id, dto.UpdateTaskRequest{Status: &status})
	if err != nil {
		logger.Warn("Board: Сервер отверг перенос, перечитываем доску",
			zap.String("task_id", id.String()),
			zap.String("target", status),
			zap.Error(err))
		if reloadErr := b.Load(ctx); reloadErr != nil {
			return fmt.Errorf("перенос отвергнут (%w), доска не перечитана: %w", err, reloadErr)
		}
		return err
	}

	// сервер вернул авторитетную карточку, например с проставленным completed_at
	b.mtx.Lock()
	replaceCard(b.columns, updated)
	b.mtx.Unlock()
	return nil
}

// CreateTask добавляет карточку на доску только после подтверждения сервером.
func (b *Board) CreateTask(ctx context.Context, request dto.CreateTaskRequest) (dto.TaskResponse, error) {
	created, err := b.client.CreateTask(ctx, request)
	if err != nil {
		return dto.TaskResponse{}, err
	}

	b.mtx.Lock()
	status := statusOf(created)
	b.columns[status] = append(b.columns[status], created)
	b.mtx.Unlock()
	return created, nil
}

// UpdateTask редактирует карточку, дожидаясь подтверждения сервером.
func (b *Board) UpdateTask(ctx context.Context, id uuid.UUID, request dto.UpdateTaskRequest) (dto.TaskResponse, error) {
	updated, err := b.client.UpdateTask(ctx, id, request)
	if err != nil {
		return dto.TaskResponse{}, err
	}

	b.mtx.Lock()
	replaceCard(b.columns, updated)
	b.mtx.Unlock()
	return updated, nil
}

// DeleteTask убирает карточку с доски после подтверждения сервером.
func (b *Board) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if err := b.client.DeleteTask(ctx, id); err != nil {
		return err
	}

	b.mtx.Lock()
	removeCard(b.columns, id)
	b.mtx.Unlock()
	return nil
}

func emptyColumns() Columns {
	return Columns{
		task.StatusTodo:    {},
		task.StatusPending: {},
		task.StatusDone:    {},
	}
}

func groupByStatus(tasks []dto.TaskResponse) Columns {
	columns := emptyColumns()
	for _, t := range tasks {
		status := statusOf(t)
		columns[status] = append(columns[status], t)
	}
	return columns
}

func cloneColumns(columns Columns) Columns {
	clone := make(Columns, len(columns))
	for status, cards := range columns {
		clone[status] = append([]dto.TaskResponse(nil), cards...)
	}
	return clone
}

func statusOf(t dto.TaskResponse) task.Status {
	if status, ok := task.ParseStatus(t.Status); ok {
		return status
	}
	return task.StatusTodo
}

// moveCard переставляет карточку между колонками: убирает из исходной
// и дописывает в конец целевой. Возвращает (переносили ли, нашли ли).
// Карточка в целевой колонке остаётся на месте.
func moveCard(columns Columns, id uuid.UUID, target task.Status) (moved, found bool) {
	for status, cards := range columns {
		for i, card := range cards {
			if card.ID != id {
				continue
			}
			if status == target {
				return false, true
			}

			columns[status] = append(cards[:i:i], cards[i+1:]...)
			card.Status = string(target)
			columns[target] = append(columns[target], card)
			return true, true
		}
	}
	return false, false
}

// replaceCard подменяет карточку авторитетной серверной версией, не
// трогая её позицию. Если статус поменялся, карточка переезжает в конец
// новой колонки; отсутствующая просто дописывается.
func replaceCard(columns Columns, updated dto.TaskResponse) {
	target := statusOf(updated)
	for status, cards := range columns {
		for i, card := range cards {
			if card.ID != updated.ID {
				continue
			}
			if status == target {
				cards[i] = updated
				return
			}
			columns[status] = append(cards[:i:i], cards[i+1:]...)
			columns[target] = append(columns[target], updated)
			return
		}
	}
	columns[target] = append(columns[target], updated)
}

func removeCard(columns Columns, id uuid.UUID) {
	for status, cards := range columns {
		for i, card := range cards {
			if card.ID == id {
				columns[status] = append(cards[:i:i], cards[i+1:]...)
				return
			}
		}
	}
}
