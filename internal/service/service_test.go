package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"kanbanTracker/internal/auth"
	"kanbanTracker/internal/models/task"
	"kanbanTracker/internal/models/user"
	repo "kanbanTracker/internal/repository"
	"kanbanTracker/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTaskRepository - мок репозитория задач
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTaskRepository) CreateTask(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) UpdateTask(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) DeleteTask(ctx context.Context, id, ownerID uuid.UUID) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *MockTaskRepository) GetTaskByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*task.Task, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}

func (m *MockTaskRepository) GetTasksByOwner(ctx context.Context, ownerID uuid.UUID) ([]*task.Task, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}

func (m *MockTaskRepository) CountTasksByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}

func (m *MockTaskRepository) CountTasksByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status task.Status) (int, error) {
	args := m.Called(ctx, ownerID, status)
	return args.Int(0), args.Error(1)
}

func (m *MockTaskRepository) CountTasksByOwnerAndType(ctx context.Context, ownerID uuid.UUID, taskType task.Type) (int, error) {
	args := m.Called(ctx, ownerID, taskType)
	return args.Int(0), args.Error(1)
}

var _ service.TaskRepository = (*MockTaskRepository)(nil)

// MockUserRepository - мок репозитория пользователей
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateSetting(ctx context.Context, userID uuid.UUID, setting user.Setting) error {
	args := m.Called(ctx, userID, setting)
	return args.Error(0)
}

var _ service.UserRepository = (*MockUserRepository)(nil)

func businessCode(t *testing.T, err error) string {
	t.Helper()
	var bizErr *service.BusinessError
	require.ErrorAs(t, err, &bizErr)
	return bizErr.Code
}

// TestTaskService_HealthCheck тестирует HealthCheck
func TestTaskService_HealthCheck(t *testing.T) {
	tests := []struct {
		name        string
		setupMock   func(*MockTaskRepository)
		expectError bool
	}{
		{
			name: "success - health check passes",
			setupMock: func(m *MockTaskRepository) {
				m.On("HealthCheck", mock.Anything).Return(nil)
			},
			expectError: false,
		},
		{
			name: "error - health check fails",
			setupMock: func(m *MockTaskRepository) {
				m.On("HealthCheck", mock.Anything).Return(errors.New("db connection failed"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTaskRepository)
			tt.setupMock(mockRepo)

			svc := service.NewTaskService(mockRepo)
			err := svc.HealthCheck(context.Background())

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "проверка здоровья сервиса")
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

// TestTaskService_CreateTask тестирует создание задачи
func TestTaskService_CreateTask(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("success - defaults to todo and other", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("CreateTask", mock.Anything, mock.MatchedBy(func(tk *task.Task) bool {
			return tk.Title == "Test" &&
				tk.Status == task.StatusTodo &&
				tk.Type == task.TypeOther &&
				tk.OwnerID == ownerID &&
				tk.CompletedAt == nil
		})).Return(nil)

		svc := service.NewTaskService(mockRepo)
		result, err := svc.CreateTask(ctx, ownerID, service.CreateTaskInput{Title: "Test"})

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.NotEqual(t, uuid.Nil, result.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("success - title and description trimmed", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("CreateTask", mock.Anything, mock.MatchedBy(func(tk *task.Task) bool {
			return tk.Title == "Test" && tk.Description == "Desc"
		})).Return(nil)

		svc := service.NewTaskService(mockRepo)
		_, err := svc.CreateTask(ctx, ownerID, service.CreateTaskInput{
			Title:       "  Test  ",
			Description: "  Desc  ",
		})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("success - create directly in done sets completed_at", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("CreateTask", mock.Anything, mock.MatchedBy(func(tk *task.Task) bool {
			return tk.Status == task.StatusDone && tk.CompletedAt != nil
		})).Return(nil)

		svc := service.NewTaskService(mockRepo)
		result, err := svc.CreateTask(ctx, ownerID, service.CreateTaskInput{
			Title:  "Done from start",
			Status: "done",
			Type:   "fix",
		})

		assert.NoError(t, err)
		assert.Equal(t, task.TypeFix, result.Type)
		require.NotNil(t, result.CompletedAt)
		mockRepo.AssertExpectations(t)
	})

	tests := []struct {
		name  string
		input service.CreateTaskInput
	}{
		{
			name:  "error - empty title",
			input: service.CreateTaskInput{Title: "   "},
		},
		{
			name:  "error - unknown status",
			input: service.CreateTaskInput{Title: "Test", Status: "archived"},
		},
		{
			name:  "error - unknown type",
			input: service.CreateTaskInput{Title: "Test", Type: "epic"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTaskRepository)

			svc := service.NewTaskService(mockRepo)
			result, err := svc.CreateTask(ctx, ownerID, tt.input)

			assert.Nil(t, result)
			assert.Equal(t, service.CodeValidation, businessCode(t, err))
			mockRepo.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
		})
	}
}

// TestTaskService_UpdateTask тестирует частичное обновление
func TestTaskService_UpdateTask(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	taskID := uuid.New()

	ptr := func(s string) *string { return &s }

	existing := func() *task.Task {
		return &task.Task{
			ID:        taskID,
			Title:     "Old Title",
			Status:    task.StatusTodo,
			Type:      task.TypeFeature,
			CreatedAt: time.Now().Add(-time.Hour),
			OwnerID:   ownerID,
		}
	}

	t.Run("success - update title and status", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("GetTaskByIDAndOwner", mock.Anything, taskID, ownerID).Return(existing(), nil)
		mockRepo.On("UpdateTask", mock.Anything, mock.MatchedBy(func(tk *task.Task) bool {
			return tk.Title == "New Title" && tk.Status == task.StatusPending
		})).Return(nil)

		svc := service.NewTaskService(mockRepo)
		result, err := svc.UpdateTask(ctx, ownerID, taskID, service.UpdateTaskInput{
			Title:  ptr("New Title"),
			Status: ptr("pending"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "New Title", result.Title)
		assert.Equal(t, task.StatusPending, result.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("success - move to done sets completed_at", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("GetTaskByIDAndOwner", mock.Anything, taskID, ownerID).Return(existing(), nil)
		mockRepo.On("UpdateTask", mock.Anything, mock.MatchedBy(func(tk *task.Task) bool {
			return tk.Status == task.StatusDone && tk.CompletedAt != nil
		})).Return(nil)

		svc := service.NewTaskService(mockRepo)
		result, err := svc.UpdateTask(ctx, ownerID, taskID, service.UpdateTaskInput{
			Status: ptr("done"),
		})

		assert.NoError(t, err)
		require.NotNil(t, result.CompletedAt)
		mockRepo.AssertExpectations(t)
	})

	t.Run("success - leave done clears completed_at", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		completed := time.Now().Add(-time.Minute)
		done := existing()
		done.Status = task.StatusDone
		done.CompletedAt = &completed

		mockRepo.On("GetTaskByIDAndOwner", mock.Anything, taskID, ownerID).Return(done, nil)
		mockRepo.On("UpdateTask", mock.Anything, mock.MatchedBy(func(tk *task.Task) bool {
			return tk.Status == task.StatusTodo && tk.CompletedAt == nil
		})).Return(nil)

		svc := service.NewTaskService(mockRepo)
		result, err := svc.UpdateTask(ctx, ownerID, taskID, service.UpdateTaskInput{
			Status: ptr("todo"),
		})

		assert.NoError(t, err)
		assert.Nil(t, result.CompletedAt)
		mockRepo.AssertExpectations(t)
	})

	t.Run("success - empty update is a no-op write", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("GetTaskByIDAndOwner", mock.Anything, taskID, ownerID).Return(existing(), nil)
		mockRepo.On("UpdateTask", mock.Anything, mock.MatchedBy(func(tk *task.Task) bool {
			return tk.Title == "Old Title" && tk.Status == task.StatusTodo
		})).Return(nil)

		svc := service.NewTaskService(mockRepo)
		result, err := svc.UpdateTask(ctx, ownerID, taskID, service.UpdateTaskInput{})

		assert.NoError(t, err)
		assert.Equal(t, "Old Title", result.Title)
		mockRepo.AssertExpectations(t)
	})

	t.Run("error - invalid status rejected before repository is touched", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)

		svc := service.NewTaskService(mockRepo)
		_, err := svc.UpdateTask(ctx, ownerID, taskID, service.UpdateTaskInput{
			Status: ptr("blocked"),
		})

		assert.Equal(t, service.CodeValidation, businessCode(t, err))
		mockRepo.AssertNotCalled(t, "GetTaskByIDAndOwner", mock.Anything, mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything)
	})

	t.Run("error - empty title rejected", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)

		svc := service.NewTaskService(mockRepo)
		_, err := svc.UpdateTask(ctx, ownerID, taskID, service.UpdateTaskInput{
			Title: ptr("   "),
		})

		assert.Equal(t, service.CodeValidation, businessCode(t, err))
		mockRepo.AssertNotCalled(t, "GetTaskByIDAndOwner", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error - foreign task looks like missing task", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("GetTaskByIDAndOwner", mock.Anything, taskID, ownerID).Return(nil, repo.ErrNotFound)

		svc := service.NewTaskService(mockRepo)
		_, err := svc.UpdateTask(ctx, ownerID, taskID, service.UpdateTaskInput{
			Title: ptr("New Title"),
		})

		assert.Equal(t, service.CodeNotFound, businessCode(t, err))
		mockRepo.AssertExpectations(t)
	})
}

// TestTaskService_DeleteTask тестирует удаление
func TestTaskService_DeleteTask(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	taskID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("DeleteTask", mock.Anything, taskID, ownerID).Return(nil)

		svc := service.NewTaskService(mockRepo)
		assert.NoError(t, svc.DeleteTask(ctx, ownerID, taskID))
		mockRepo.AssertExpectations(t)
	})

	t.Run("error - not found", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("DeleteTask", mock.Anything, taskID, ownerID).Return(repo.ErrNotFound)

		svc := service.NewTaskService(mockRepo)
		err := svc.DeleteTask(ctx, ownerID, taskID)

		assert.Equal(t, service.CodeNotFound, businessCode(t, err))
		mockRepo.AssertExpectations(t)
	})
}

// TestTaskService_GetTaskStats тестирует статистику
func TestTaskService_GetTaskStats(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("4 tasks, 2 done - rate 50.00", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("CountTasksByOwner", mock.Anything, ownerID).Return(4, nil)
		mockRepo.On("CountTasksByOwnerAndStatus", mock.Anything, ownerID, task.StatusTodo).Return(1, nil)
		mockRepo.On("CountTasksByOwnerAndStatus", mock.Anything, ownerID, task.StatusPending).Return(1, nil)
		mockRepo.On("CountTasksByOwnerAndStatus", mock.Anything, ownerID, task.StatusDone).Return(2, nil)
		for _, taskType := range task.AllTypes() {
			mockRepo.On("CountTasksByOwnerAndType", mock.Anything, ownerID, taskType).Return(0, nil)
		}

		svc := service.NewTaskService(mockRepo)
		stats, err := svc.GetTaskStats(ctx, ownerID)

		require.NoError(t, err)
		assert.Equal(t, 4, stats.Total)
		assert.Equal(t, 1, stats.Todo)
		assert.Equal(t, 1, stats.Pending)
		assert.Equal(t, 2, stats.Done)
		assert.InDelta(t, 50.0, stats.CompletionRate, 0.001)
		mockRepo.AssertExpectations(t)
	})

	t.Run("1 of 3 done - rate rounded to 33.33", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("CountTasksByOwner", mock.Anything, ownerID).Return(3, nil)
		mockRepo.On("CountTasksByOwnerAndStatus", mock.Anything, ownerID, task.StatusTodo).Return(2, nil)
		mockRepo.On("CountTasksByOwnerAndStatus", mock.Anything, ownerID, task.StatusPending).Return(0, nil)
		mockRepo.On("CountTasksByOwnerAndStatus", mock.Anything, ownerID, task.StatusDone).Return(1, nil)
		for _, taskType := range task.AllTypes() {
			mockRepo.On("CountTasksByOwnerAndType", mock.Anything, ownerID, taskType).Return(0, nil)
		}

		svc := service.NewTaskService(mockRepo)
		stats, err := svc.GetTaskStats(ctx, ownerID)

		require.NoError(t, err)
		assert.InDelta(t, 33.33, stats.CompletionRate, 0.001)
	})

	t.Run("no tasks - rate 0, all types present with zeros", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("CountTasksByOwner", mock.Anything, ownerID).Return(0, nil)
		for _, status := range task.AllStatuses() {
			mockRepo.On("CountTasksByOwnerAndStatus", mock.Anything, ownerID, status).Return(0, nil)
		}
		for _, taskType := range task.AllTypes() {
			mockRepo.On("CountTasksByOwnerAndType", mock.Anything, ownerID, taskType).Return(0, nil)
		}

		svc := service.NewTaskService(mockRepo)
		stats, err := svc.GetTaskStats(ctx, ownerID)

		require.NoError(t, err)
		assert.Zero(t, stats.CompletionRate)
		assert.Len(t, stats.ByType, len(task.AllTypes()))
		for _, taskType := range task.AllTypes() {
			count, ok := stats.ByType[taskType]
			assert.True(t, ok)
			assert.Zero(t, count)
		}
	})
}

// TestUserService_Register тестирует регистрацию
func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	manager := auth.NewManager("test-secret", time.Hour)

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *user.User) bool {
			return u.Name == "Alice" &&
				u.Email == "alice@example.com" &&
				u.Role == user.RoleUser &&
				u.PasswordHash != "secret123" &&
				u.Setting == user.DefaultSetting()
		})).Return(nil)

		svc := service.NewUserService(mockRepo, manager)
		u, err := svc.Register(ctx, service.RegisterInput{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "secret123",
		})

		require.NoError(t, err)
		assert.True(t, auth.CheckPasswordHash("secret123", u.PasswordHash))
		mockRepo.AssertExpectations(t)
	})

	tests := []struct {
		name  string
		input service.RegisterInput
	}{
		{
			name:  "error - empty fields",
			input: service.RegisterInput{Name: " ", Email: "a@b.c", Password: "secret123"},
		},
		{
			name:  "error - invalid email",
			input: service.RegisterInput{Name: "Alice", Email: "not-an-email", Password: "secret123"},
		},
		{
			name:  "error - short password",
			input: service.RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "12345"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)

			svc := service.NewUserService(mockRepo, manager)
			_, err := svc.Register(ctx, tt.input)

			assert.Equal(t, service.CodeValidation, businessCode(t, err))
			mockRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
		})
	}

	t.Run("error - duplicate email", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("CreateUser", mock.Anything, mock.Anything).Return(repo.ErrAlreadyExists)

		svc := service.NewUserService(mockRepo, manager)
		_, err := svc.Register(ctx, service.RegisterInput{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "secret123",
		})

		assert.Equal(t, service.CodeAlreadyExists, businessCode(t, err))
		mockRepo.AssertExpectations(t)
	})
}

// TestUserService_Login тестирует вход
func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	manager := auth.NewManager("test-secret", time.Hour)

	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	existing := &user.User{
		ID:           uuid.New(),
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
		Role:         user.RoleUser,
	}

	t.Run("success - token carries user id", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetUserByEmail", mock.Anything, "alice@example.com").Return(existing, nil)

		svc := service.NewUserService(mockRepo, manager)
		token, u, err := svc.Login(ctx, "alice@example.com", "secret123")

		require.NoError(t, err)
		assert.Equal(t, existing.ID, u.ID)

		claims, err := manager.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, existing.ID, claims.UserID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("error - wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetUserByEmail", mock.Anything, "alice@example.com").Return(existing, nil)

		svc := service.NewUserService(mockRepo, manager)
		_, _, err := svc.Login(ctx, "alice@example.com", "wrong-pass")

		assert.Equal(t, service.CodeUnauthorized, businessCode(t, err))
	})

	t.Run("error - unknown email gives the same answer", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, repo.ErrNotFound)

		svc := service.NewUserService(mockRepo, manager)
		_, _, err := svc.Login(ctx, "ghost@example.com", "secret123")

		assert.Equal(t, service.CodeUnauthorized, businessCode(t, err))
	})
}

// TestUserService_ChangePassword тестирует смену пароля
func TestUserService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	manager := auth.NewManager("test-secret", time.Hour)
	userID := uuid.New()

	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	existing := func() *user.User {
		return &user.User{
			ID:           userID,
			Email:        "alice@example.com",
			PasswordHash: hash,
		}
	}

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetUserByID", mock.Anything, userID).Return(existing(), nil)
		mockRepo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u *user.User) bool {
			return auth.CheckPasswordHash("newsecret", u.PasswordHash)
		})).Return(nil)

		svc := service.NewUserService(mockRepo, manager)
		assert.NoError(t, svc.ChangePassword(ctx, userID, "secret123", "newsecret"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("error - wrong current password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetUserByID", mock.Anything, userID).Return(existing(), nil)

		svc := service.NewUserService(mockRepo, manager)
		err := svc.ChangePassword(ctx, userID, "wrong", "newsecret")

		assert.Equal(t, service.CodeValidation, businessCode(t, err))
		mockRepo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
	})

	t.Run("error - short new password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetUserByID", mock.Anything, userID).Return(existing(), nil)

		svc := service.NewUserService(mockRepo, manager)
		err := svc.ChangePassword(ctx, userID, "secret123", "123")

		assert.Equal(t, service.CodeValidation, businessCode(t, err))
		mockRepo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
	})
}

// TestUserService_UpdateSettings тестирует настройки
func TestUserService_UpdateSettings(t *testing.T) {
	ctx := context.Background()
	manager := auth.NewManager("test-secret", time.Hour)
	userID := uuid.New()

	ptr := func(s string) *string { return &s }

	existing := func() *user.User {
		return &user.User{
			ID:      userID,
			Email:   "alice@example.com",
			Setting: user.DefaultSetting(),
		}
	}

	t.Run("success - partial update keeps the other field", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetUserByID", mock.Anything, userID).Return(existing(), nil)
		mockRepo.On("UpdateSetting", mock.Anything, userID, user.Setting{
			Language: user.LanguageFR,
			Theme:    user.ThemeDark,
		}).Return(nil)

		svc := service.NewUserService(mockRepo, manager)
		setting, err := svc.UpdateSettings(ctx, userID, service.UpdateSettingsInput{
			Theme: ptr("dark"),
		})

		require.NoError(t, err)
		assert.Equal(t, user.LanguageFR, setting.Language)
		assert.Equal(t, user.ThemeDark, setting.Theme)
		mockRepo.AssertExpectations(t)
	})

	t.Run("error - unknown language", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetUserByID", mock.Anything, userID).Return(existing(), nil)

		svc := service.NewUserService(mockRepo, manager)
		_, err := svc.UpdateSettings(ctx, userID, service.UpdateSettingsInput{
			Language: ptr("klingon"),
		})

		assert.Equal(t, service.CodeValidation, businessCode(t, err))
		mockRepo.AssertNotCalled(t, "UpdateSetting", mock.Anything, mock.Anything, mock.Anything)
	})
}
