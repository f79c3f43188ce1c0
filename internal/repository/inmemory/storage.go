package inmemory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"kanbanTracker/internal/models/task"
	"kanbanTracker/internal/models/user"
	repo "kanbanTracker/internal/repository"

	"github.com/google/uuid"
)

// Storage - хранилище в памяти для режима разработки и юнит-тестов
type Storage struct {
	tasks map[uuid.UUID]*task.Task
	users map[uuid.UUID]*user.User
	mtx   sync.RWMutex
}

func NewStorage() *Storage {
	return &Storage{
		tasks: make(map[uuid.UUID]*task.Task),
		users: make(map[uuid.UUID]*user.User),
	}
}

func (s *Storage) HealthCheck(ctx context.Context) error {
	return nil
}

func (s *Storage) CreateTask(ctx context.Context, t *task.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	copied := *t
	s.tasks[t.ID] = &copied
	return nil
}

func (s *Storage) UpdateTask(ctx context.Context, t *task.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	existing, ok := s.tasks[t.ID]
	if !ok || existing.OwnerID != t.OwnerID {
		return repo.ErrNotFound
	}

	copied := *t
	s.tasks[t.ID] = &copied
	return nil
}

func (s *Storage) DeleteTask(ctx context.Context, id, ownerID uuid.UUID) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	existing, ok := s.tasks[id]
	if !ok || existing.OwnerID != ownerID {
		return repo.ErrNotFound
	}

	delete(s.tasks, id)
	return nil
}

func (s *Storage) GetTaskByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	existing, ok := s.tasks[id]
	if !ok || existing.OwnerID != ownerID {
		return nil, repo.ErrNotFound
	}

	copied := *existing
	return &copied, nil
}

func (s *Storage) GetTasksByOwner(ctx context.Context, ownerID uuid.UUID) ([]*task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*task.Task{}
	for _, t := range s.tasks {
		if t.OwnerID != ownerID {
			continue
		}
		copied := *t
		res = append(res, &copied)
	}

	// новые сверху, как в постгресовом запросе
	sort.Slice(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res, nil
}

func (s *Storage) CountTasksByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	count := 0
	for _, t := range s.tasks {
		if t.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

func (s *Storage) CountTasksByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status task.Status) (int, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	count := 0
	for _, t := range s.tasks {
		if t.OwnerID == ownerID && t.Status == status {
			count++
		}
	}
	return count, nil
}

func (s *Storage) CountTasksByOwnerAndType(ctx context.Context, ownerID uuid.UUID, taskType task.Type) (int, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	count := 0
	for _, t := range s.tasks {
		if t.OwnerID == ownerID && t.Type == taskType {
			count++
		}
	}
	return count, nil
}

func (s *Storage) CreateUser(ctx context.Context, u *user.User) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return repo.ErrAlreadyExists
		}
	}

	copied := *u
	s.users[u.ID] = &copied
	return nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (s *Storage) GetUserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *Storage) UpdateUser(ctx context.Context, u *user.User) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	existing, ok := s.users[u.ID]
	if !ok {
		return repo.ErrNotFound
	}

	for _, other := range s.users {
		if other.ID != u.ID && strings.EqualFold(other.Email, u.Email) {
			return repo.ErrAlreadyExists
		}
	}

	copied := *u
	copied.Setting = existing.Setting
	s.users[u.ID] = &copied
	return nil
}

func (s *Storage) UpdateSetting(ctx context.Context, userID uuid.UUID, setting user.Setting) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return repo.ErrNotFound
	}
	u.Setting = setting
	return nil
}
