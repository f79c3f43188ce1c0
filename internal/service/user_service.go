package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"kanbanTracker/internal/auth"
	"kanbanTracker/internal/logger"
	"kanbanTracker/internal/models/user"
	repo "kanbanTracker/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const minPasswordLength = 6

type UserService struct {
	repo UserRepository
	auth *auth.Manager
}

func NewUserService(repo UserRepository, auth *auth.Manager) *UserService {
	return &UserService{
		repo: repo,
		auth: auth,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type UpdateProfileInput struct {
	Name  *string
	Email *string
}

type UpdateSettingsInput struct {
	Language *string
	Theme    *string
}

func (s *UserService) Register(ctx context.Context, input RegisterInput) (*user.User, error) {
	if strings.TrimSpace(input.Name) == "" || input.Email == "" || input.Password == "" {
		return nil, NewValidationError("name", "error.empty_fields")
	}

	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, NewValidationError("email", "error.invalid_email")
	}

	if len(input.Password) < minPasswordLength {
		return nil, NewValidationError("password", "error.short_password")
	}

	role := user.RoleUser
	if input.Role == string(user.RoleAdmin) {
		role = user.RoleAdmin
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("хеширование пароля: %w", err)
	}

	u := &user.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(input.Name),
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		Setting:      user.DefaultSetting(),
	}

	if err := s.repo.CreateUser(ctx, u); err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return nil, NewAlreadyExists("user", "error.user_already_exist")
		}
		return nil, fmt.Errorf("регистрация пользователя: %w", err)
	}

	logger.Info("Service: Пользователь зарегистрирован", zap.String("user_id", u.ID.String()))
	return u, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (string, *user.User, error) {
	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil || !auth.CheckPasswordHash(password, u.PasswordHash) {
		// один ответ на незнакомый email и на неверный пароль
		return "", nil, NewUnauthorized("error.invalid_credentials")
	}

	token, err := s.auth.GenerateToken(u)
	if err != nil {
		return "", nil, fmt.Errorf("выпуск токена: %w", err)
	}
	return token, u, nil
}

func (s *UserService) GetProfile(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewNotFound("user", id.String())
		}
		return nil, fmt.Errorf("получение профиля: %w", err)
	}
	return u, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*user.User, error) {
	u, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, NewValidationError("name", "error.empty_fields")
		}
		u.Name = strings.TrimSpace(*input.Name)
	}

	if input.Email != nil {
		if _, err := mail.ParseAddress(*input.Email); err != nil {
			return nil, NewValidationError("email", "error.invalid_email")
		}
		u.Email = *input.Email
	}

	if err := s.repo.UpdateUser(ctx, u); err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return nil, NewAlreadyExists("email", "error.email_already_used")
		}
		return nil, fmt.Errorf("обновление профиля: %w", err)
	}
	return u, nil
}

func (s *UserService) ChangePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return NewValidationError("password", "error.missing_password_fields")
	}

	u, err := s.GetProfile(ctx, id)
	if err != nil {
		return err
	}

	if !auth.CheckPasswordHash(currentPassword, u.PasswordHash) {
		return NewValidationError("current_password", "error.invalid_current_password")
	}

	if len(newPassword) < minPasswordLength {
		return NewValidationError("new_password", "error.short_new_password")
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("хеширование пароля: %w", err)
	}

	u.PasswordHash = hash
	if err := s.repo.UpdateUser(ctx, u); err != nil {
		return fmt.Errorf("смена пароля: %w", err)
	}

	logger.Info("Service: Пароль изменён", zap.String("user_id", id.String()))
	return nil
}

func (s *UserService) GetSettings(ctx context.Context, id uuid.UUID) (user.Setting, error) {
	u, err := s.GetProfile(ctx, id)
	if err != nil {
		return user.Setting{}, err
	}
	return u.Setting, nil
}

func (s *UserService) UpdateSettings(ctx context.Context, id uuid.UUID, input UpdateSettingsInput) (user.Setting, error) {
	u, err := s.GetProfile(ctx, id)
	if err != nil {
		return user.Setting{}, err
	}

	setting := u.Setting
	if input.Language != nil {
		language, ok := user.ParseLanguage(*input.Language)
		if !ok {
			return user.Setting{}, NewValidationError("language", "error.invalid_language")
		}
		setting.Language = language
	}

	if input.Theme != nil {
		theme, ok := user.ParseTheme(*input.Theme)
		if !ok {
			return user.Setting{}, NewValidationError("theme", "error.invalid_theme")
		}
		setting.Theme = theme
	}

	if err := s.repo.UpdateSetting(ctx, id, setting); err != nil {
		return user.Setting{}, fmt.Errorf("обновление настроек: %w", err)
	}
	return setting, nil
}
