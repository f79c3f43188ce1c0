package handlers

import (
	"context"

	"kanbanTracker/internal/models/user"
	"kanbanTracker/internal/service"

	"github.com/google/uuid"
)

type UserService interface {
	Register(ctx context.Context, input service.RegisterInput) (*user.User, error)
	Login(ctx context.Context, email, password string) (string, *user.User, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input service.UpdateProfileInput) (*user.User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) error
	GetSettings(ctx context.Context, id uuid.UUID) (user.Setting, error)
	UpdateSettings(ctx context.Context, id uuid.UUID, input service.UpdateSettingsInput) (user.Setting, error)
}
